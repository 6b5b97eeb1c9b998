// snake is a terminal snake game on a wrap-around board.
//
// Usage:
//
//	snake play      - Play in this terminal
//	snake serve     - Start SSH server for remote play
//	snake config    - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Game config YAML (default search: ~/.snake/config.yaml, ./configs/snake.yaml)
//	--fps <rate>        - Override the tick rate from the config
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - eat apples on a wrap-around board",
	Long: `Snake runs the classic game in your terminal. The board wraps at every
edge; biting yourself starts a new snake instead of ending the session.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  snake play
  snake play --seed 42 --fps 15
  snake play --config ./my-snake.yaml --watch
  snake serve --ssh :2222
  snake config > ~/.snake/config.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config tick_rate)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
