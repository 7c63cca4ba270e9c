package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/turtle-racer/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default race configuration",
	Long: `Prints the built-in configuration as YAML. Save it to
~/.turtlerace/race.yaml or ./configs/race.yaml and edit it, or pass any
file with --config.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}
