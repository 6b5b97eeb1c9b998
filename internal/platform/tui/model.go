package tui

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/capture"
)

// footerHeight is the number of lines below the board in the short help view.
const footerHeight = 1

// Options configures a game session.
type Options struct {
	Runtime core.RuntimeConfig
	Theme   config.ThemeConfig

	// CaptureDir is where ctrl+s writes PNG snapshots. Empty disables capture.
	CaptureDir string

	// WatchPath, when set, reloads tick rate and theme from this file while
	// the session runs.
	WatchPath string

	// FixedTickRate pins the tick rate (the --fps flag); reloaded configs
	// cannot change it. Zero follows the config.
	FixedTickRate int

	Logger   *log.Logger
	Renderer *lipgloss.Renderer
}

// ConfigReloadMsg carries a configuration re-read from disk.
type ConfigReloadMsg struct {
	Config config.Config
}

// captureMsg reports the result of a PNG capture.
type captureMsg struct {
	path string
	err  error
}

// Model is the Bubble Tea model for one snake session.
type Model struct {
	game     *snake.Game
	screen   *core.Screen
	renderer *lipgloss.Renderer
	theme    Theme
	palette  capture.Palette
	keys     KeyMap
	help     help.Model
	logger   *log.Logger

	config     core.RuntimeConfig
	fixedRate  int
	captureDir string
	inputFrame core.InputFrame
	gameState  core.GameState
	status     string
	quitting   bool
}

// NewModel creates a new Bubble Tea model and starts a fresh game.
func NewModel(game *snake.Game, opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.FixedTickRate > 0 {
		cfg.TickRate = opts.FixedTickRate
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerHeight, 0)),
		renderer:   opts.Renderer,
		theme:      NewTheme(opts.Renderer, opts.Theme),
		palette:    capture.PaletteFromTheme(opts.Theme),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     logger,
		config:     cfg,
		fixedRate:  opts.FixedTickRate,
		captureDir: opts.CaptureDir,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started", "seed", m.config.Seed, "tick_rate", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-footerHeight, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()

	case ConfigReloadMsg:
		return m.handleReload(msg.Config)

	case captureMsg:
		if msg.err != nil {
			m.logger.Error("capture failed", "error", msg.err)
			m.status = "Capture failed: " + msg.err.Error()
		} else {
			m.logger.Info("board captured", "path", msg.path)
			m.status = "Saved " + msg.path
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input. Game actions are buffered until the
// next tick; everything else takes effect immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Info("game quit", "apples", m.gameState.Score)
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Capture):
		return m, m.captureCmd()
	}

	m.inputFrame.Set(m.keys.Action(msg))
	return m, nil
}

// handleTick runs exactly one simulation step with the input collected since
// the previous tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	for _, ev := range result.Events {
		snap := m.game.Snapshot()
		m.logger.Debug("game event",
			"event", string(ev),
			"tick", snap.Tick,
			"length", snap.SnakeLen,
			"head", snap.Head.String(),
			"apple", snap.Apple.String(),
		)
	}

	return m, tickCmd(m.config.TickRate)
}

// handleReload applies the settings that may change mid-session. Grid
// geometry stays fixed until the game is restarted, and a fixed tick rate
// wins over the file.
func (m Model) handleReload(cfg config.Config) (tea.Model, tea.Cmd) {
	if m.fixedRate == 0 {
		m.config.TickRate = cfg.TickRate
	}
	m.theme = NewTheme(m.renderer, cfg.Theme)
	m.palette = capture.PaletteFromTheme(cfg.Theme)
	m.status = "Config reloaded"
	m.logger.Info("config reloaded", "tick_rate", m.config.TickRate)
	return m, nil
}

// captureCmd writes the current board to a PNG file off the update loop.
func (m Model) captureCmd() tea.Cmd {
	if m.captureDir == "" {
		return func() tea.Msg {
			return captureMsg{err: errCaptureDisabled}
		}
	}
	dir := m.captureDir
	palette := m.palette
	board := boardSnapshot{
		grid:     m.game.Grid(),
		segments: m.game.Segments(),
		apple:    m.game.ApplePosition(),
	}
	return func() tea.Msg {
		path, err := capture.SaveFile(dir, board, palette)
		return captureMsg{path: path, err: err}
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.help.View(m.keys)
	if m.status != "" && !m.help.ShowAll {
		footer = m.status
	}

	// The full help spans several lines; the board gets what is left.
	m.screen.Resize(m.config.ScreenW, max(m.config.ScreenH-lipgloss.Height(footer), 0))
	m.game.Render(m.screen)
	return RenderScreen(m.screen, m.theme) + "\n" + footer
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program and blocks until the player quits or ctx
// is cancelled.
func Run(ctx context.Context, game *snake.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if opts.WatchPath != "" {
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			err := config.Watch(watchCtx, opts.WatchPath,
				func(cfg config.Config) { p.Send(ConfigReloadMsg{Config: cfg}) },
				func(err error) { model.logger.Warn("config reload failed", "error", err) },
			)
			if err != nil {
				model.logger.Error("config watcher stopped", "error", err)
			}
		}()
	}

	_, err := p.Run()
	return err
}
