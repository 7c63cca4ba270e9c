package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/turtle-racer/internal/canvas"
	"github.com/vovakirdan/turtle-racer/internal/logging"
)

var (
	flagOut         string
	flagFrames      int
	flagUntilFinish bool
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render a race to an image",
	Long: `Run a race without a window and write its last frame to a file.
The format follows the extension: .png (anti-aliased raster) or .svg.

Use --seed for a reproducible picture.

Examples:
  turtlerace snapshot --out race.png
  turtlerace snapshot --seed 7 --frames 2000 --out race.svg
  turtlerace snapshot --seed 7 --until-finish --out finish.png`,
	Args: cobra.NoArgs,
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().StringVarP(&flagOut, "out", "o", "race.png", "Output file (.png or .svg)")
	snapshotCmd.Flags().IntVar(&flagFrames, "frames", 600, "Number of frames to simulate")
	snapshotCmd.Flags().BoolVar(&flagUntilFinish, "until-finish", false, "Run until a turtle crosses the finish line (ignores --frames)")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	format, err := canvas.FormatFromPath(flagOut)
	if err != nil {
		return err
	}
	if !flagUntilFinish && flagFrames <= 0 {
		return fmt.Errorf("--frames must be positive, got %d", flagFrames)
	}

	env, cleanup, err := environment(cmd, "snapshot")
	if err != nil {
		return err
	}
	defer cleanup()
	gg.SetLogger(logging.Slog(env.Logger))

	// Snapshots never wait between frames.
	env.Runtime.TickRate = 0
	env.Config.Window.FrameRate = 0
	l, _ := env.NewLoop()

	f, err := os.Create(flagOut)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}

	driver := &canvas.Headless{Format: format, Output: f}
	if flagUntilFinish {
		driver.Stop = func() bool {
			r := l.Race()
			return r != nil && r.Finished()
		}
	} else {
		driver.MaxFrames = flagFrames
	}

	runErr := l.Run(context.Background(), driver)
	if cerr := f.Close(); runErr == nil {
		runErr = cerr
	}
	if runErr != nil {
		//nolint:errcheck // Best-effort cleanup of a partial file
		os.Remove(flagOut)
		return fatal(env.Logger, "snapshot failed", runErr)
	}

	env.Logger.Info("snapshot written", "path", flagOut, "format", format, "frames", driver.Frames())
	return nil
}
