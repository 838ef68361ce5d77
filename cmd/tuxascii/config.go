package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tuxascii/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in default configuration as YAML.

Save it to ~/.tuxascii/config.yaml or ./configs/tuxascii.yaml and edit it
to change the tick rate, star count, seed or key bindings.

Examples:
  tuxascii config
  tuxascii config > ~/.tuxascii/config.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}
