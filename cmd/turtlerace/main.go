// turtlerace animates a race of turtles across a window.
//
// Usage:
//
//	turtlerace list                 - List available frontends
//	turtlerace play [frontend]      - Watch a race (default: window)
//	turtlerace snapshot --out f.png - Render a race to an image without a window
//	turtlerace history              - Show recent race results
//	turtlerace config               - Print the default race configuration
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for a reproducible race
//	--config <path>     - Race configuration YAML
//	--fps <rate>        - Cap the frame rate (default: config, 0 = unthrottled)
//	--log-level <level> - debug, info, warn or error
//	--db <path>         - Race history database (default: ~/.turtlerace/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/turtle-racer/internal/config"
	"github.com/vovakirdan/turtle-racer/internal/core"
	"github.com/vovakirdan/turtle-racer/internal/logging"
	"github.com/vovakirdan/turtle-racer/internal/registry"
	"github.com/vovakirdan/turtle-racer/internal/storage"

	// Import frontends to register them
	_ "github.com/vovakirdan/turtle-racer/internal/platform/tui"
	_ "github.com/vovakirdan/turtle-racer/internal/platform/window"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagDBPath   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "turtlerace",
	Short: "Turtle Racer - watch turtles race across the screen",
	Long: `Turtle Racer draws ten turtles on a white field and races them from
left to right with random speeds. When one reaches the right edge the race
stops. Click anywhere to start a new race.

Available commands:
  list      - Show all frontends
  play      - Watch a race
  snapshot  - Render a race to PNG or SVG
  history   - Show recent results
  config    - Print the default configuration

Examples:
  turtlerace play
  turtlerace play terminal --fps 30
  turtlerace snapshot --seed 7 --until-finish --out finish.png
  turtlerace config > ~/.turtlerace/race.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate cap (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to race config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.turtlerace/results.db", "Path to race history database (empty = no history)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}

// environment builds the logger, configuration, runtime settings and race
// history shared by every command that runs a race. The returned function
// closes the history database.
func environment(cmd *cobra.Command, frontend string) (registry.Env, func(), error) {
	logger, err := logging.New(cmd.ErrOrStderr(), flagLogLevel)
	if err != nil {
		return registry.Env{}, nil, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return registry.Env{}, nil, err
	}
	logger.Debug("config loaded",
		"path", flagConfig,
		"width", cfg.Window.Width,
		"height", cfg.Window.Height,
		"racers", len(cfg.Palette),
	)

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed

	env := registry.Env{Runtime: rt, Config: cfg, Logger: logger}
	cleanup := func() {}

	if flagDBPath != "" {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			// Races still run without history
			logger.Warn("race history disabled", "err", err)
		} else {
			env.Recorder = store.Recorder(frontend)
			cleanup = func() { store.Close() }
		}
	}

	return env, cleanup, nil
}

// fatal logs err and wraps it for cobra to print.
func fatal(logger *log.Logger, msg string, err error) error {
	logger.Error(msg, "err", err)
	return fmt.Errorf("%s: %w", msg, err)
}
