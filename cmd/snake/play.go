package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/capture"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagWatch      bool
	flagLogFile    string
	flagCaptureDir string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Arrows/WASD/hjkl - Steer
  P/Esc            - Pause
  R                - Restart (after the board fills up)
  Ctrl+S           - Save the board as PNG
  ?                - Show all keys
  Q/Ctrl+C         - Quit

The terminal belongs to the game while it runs, so logs go to --log-file
or are discarded.

Examples:
  snake play
  snake play --seed 42
  snake play --config ./my-snake.yaml --watch
  snake play --log-file snake.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload tick rate and theme when the --config file changes")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	playCmd.Flags().StringVar(&flagCaptureDir, "capture-dir", capture.DefaultDir(), "Directory for Ctrl+S PNG captures")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagWatch && flagConfig == "" {
		return errors.New("--watch needs --config")
	}

	out, closeLog, err := openLogFile(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	logger, err := newLogger(out, "snake")
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game, err := snake.New(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	opts := tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.TickRate,
			Seed:     flagSeed,
		},
		Theme:         cfg.Theme,
		CaptureDir:    flagCaptureDir,
		FixedTickRate: flagFPS,
		Logger:        logger,
	}
	if flagWatch {
		opts.WatchPath = flagConfig
	}

	if err := tui.Run(ctx, game, opts); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
