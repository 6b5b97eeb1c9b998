package core

// Color is the semantic role of a screen cell. The platform maps roles to
// concrete terminal colors from the configured theme.
type Color uint8

const (
	ColorDefault Color = iota
	ColorSnakeHead
	ColorSnakeBody
	ColorApple
	ColorBorder
	ColorHUD
)

// String returns the theme key for the color role.
func (c Color) String() string {
	switch c {
	case ColorSnakeHead:
		return "head"
	case ColorSnakeBody:
		return "snake"
	case ColorApple:
		return "apple"
	case ColorBorder:
		return "border"
	case ColorHUD:
		return "hud"
	default:
		return "default"
	}
}
