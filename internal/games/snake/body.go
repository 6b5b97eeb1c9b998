package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// SnakeOptions is the fixed starting configuration a Snake resets to.
type SnakeOptions struct {
	InitialLength int
	Start         core.Point
	Direction     Direction
}

// Snake owns the ordered body, the current and pending direction and the
// length the body is growing towards. Head is at index 0.
type Snake struct {
	grid core.Grid
	opts SnakeOptions

	segments     []core.Point
	direction    Direction
	pending      Direction
	hasPending   bool
	targetLength int
}

// NewSnake creates a snake in its reset state: a single segment at the
// start cell. It panics on options no game could start from.
func NewSnake(grid core.Grid, opts SnakeOptions) *Snake {
	if opts.InitialLength < 1 {
		panic(fmt.Sprintf("snake: initial length must be at least 1, got %d", opts.InitialLength))
	}
	if !grid.Contains(opts.Start) {
		panic(fmt.Sprintf("snake: start %v outside %dx%d grid", opts.Start, grid.Width, grid.Height))
	}
	s := &Snake{grid: grid, opts: opts}
	s.Reset()
	return s
}

// Reset reinitializes the snake to its starting configuration.
// The initial and the post-collision state are the same state.
func (s *Snake) Reset() {
	s.segments = append(s.segments[:0], s.opts.Start)
	s.direction = s.opts.Direction
	s.hasPending = false
	s.targetLength = s.opts.InitialLength
}

// QueueDirection records d as the direction for the next Advance unless it
// reverses the current direction. Only the latest accepted request is kept.
// Returns false when the request was dropped.
func (s *Snake) QueueDirection(d Direction) bool {
	if d == s.direction.Opposite() {
		return false
	}
	s.pending = d
	s.hasPending = true
	return true
}

// Pending returns the queued direction, if any.
func (s *Snake) Pending() (Direction, bool) {
	return s.pending, s.hasPending
}

// Advance performs one simulation step: apply the pending direction, push
// the wrapped new head and drop the tail once the body exceeds its target
// length. The dropped cell is returned so renderers can erase it.
func (s *Snake) Advance() (displaced core.Point, ok bool) {
	if s.hasPending {
		s.direction = s.pending
		s.hasPending = false
	}

	head := s.grid.Wrap(s.segments[0].Add(s.direction.Vector()))

	s.segments = append(s.segments, core.Point{})
	copy(s.segments[1:], s.segments)
	s.segments[0] = head

	if len(s.segments) > s.targetLength {
		displaced = s.segments[len(s.segments)-1]
		s.segments = s.segments[:len(s.segments)-1]
		ok = true
	}

	s.checkInvariants()
	return displaced, ok
}

// Grow makes the body one segment longer. The segment appears on the next
// Advance, which keeps the tail in place.
func (s *Snake) Grow() {
	s.targetLength++
}

// SelfCollision reports whether the head shares a cell with any other segment.
func (s *Snake) SelfCollision() bool {
	head := s.segments[0]
	for _, seg := range s.segments[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// Head returns the head position.
func (s *Snake) Head() core.Point {
	return s.segments[0]
}

// Segments returns a copy of the body, head first.
func (s *Snake) Segments() []core.Point {
	out := make([]core.Point, len(s.segments))
	copy(out, s.segments)
	return out
}

// Len returns the current number of segments.
func (s *Snake) Len() int {
	return len(s.segments)
}

// TargetLength returns the length the body grows towards.
func (s *Snake) TargetLength() int {
	return s.targetLength
}

// Direction returns the direction applied on the most recent Advance.
func (s *Snake) Direction() Direction {
	return s.direction
}

// Occupies reports whether any segment is on p.
func (s *Snake) Occupies(p core.Point) bool {
	for _, seg := range s.segments {
		if seg == p {
			return true
		}
	}
	return false
}

// Occupied returns the set of cells covered by the body.
func (s *Snake) Occupied() map[core.Point]struct{} {
	set := make(map[core.Point]struct{}, len(s.segments))
	for _, seg := range s.segments {
		set[seg] = struct{}{}
	}
	return set
}

// checkInvariants panics when the state can only be the result of a bug.
// The head may overlap the body transiently (that is a collision), but the
// body behind it must never overlap itself.
func (s *Snake) checkInvariants() {
	if s.targetLength < s.opts.InitialLength {
		panic(fmt.Sprintf("snake: invariant violated: target length %d below initial %d",
			s.targetLength, s.opts.InitialLength))
	}
	if len(s.segments) > s.targetLength {
		panic(fmt.Sprintf("snake: invariant violated: %d segments exceed target length %d",
			len(s.segments), s.targetLength))
	}
	seen := make(map[core.Point]struct{}, len(s.segments))
	for _, seg := range s.segments[1:] {
		if !s.grid.Contains(seg) {
			panic(fmt.Sprintf("snake: invariant violated: segment %v outside grid", seg))
		}
		if _, dup := seen[seg]; dup {
			panic(fmt.Sprintf("snake: invariant violated: duplicate body segment %v", seg))
		}
		seen[seg] = struct{}{}
	}
}
