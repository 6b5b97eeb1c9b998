package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, after the search order
(--config, ~/.snake/config.yaml, ./configs/snake.yaml, built-in defaults)
and the --fps override are applied.

Examples:
  snake config
  snake config --config ./my-snake.yaml
  snake config > ~/.snake/config.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}

// loadConfig reads the game config and applies the --fps override.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	return cfg, nil
}
