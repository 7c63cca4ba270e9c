package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/turtle-racer/internal/config"
	"github.com/vovakirdan/turtle-racer/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent race results",
	Long: `Display the most recent finished races and how often each color won.

Examples:
  turtlerace history
  turtlerace history --limit 50
  turtlerace history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of races to show")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the whole history")
}

func runHistory(cmd *cobra.Command, args []string) error {
	if flagDBPath == "" {
		return fmt.Errorf("no history database (--db is empty)")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClear {
		if err := store.ClearResults(); err != nil {
			return err
		}
		fmt.Fprintln(out, "Race history cleared.")
		return nil
	}

	// Palette names make the table readable; fall back to hex without a config.
	names := config.Default().ColorNames()
	if cfg, err := config.Load(flagConfig); err == nil {
		names = cfg.ColorNames()
	}

	results, err := store.RecentResults(flagLimit)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Recent races")
	fmt.Fprintln(out)

	if len(results) == 0 {
		fmt.Fprintln(out, "No races finished yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'turtlerace play' and watch one to the end!")
		return nil
	}

	fmt.Fprintf(out, "  %-16s  %-14s  %-8s  %-20s  %s\n", "Date", "Winner", "Frames", "Seed", "Frontend")
	fmt.Fprintf(out, "  %-16s  %-14s  %-8s  %-20s  %s\n", "----", "------", "------", "----", "--------")

	for _, r := range results {
		fmt.Fprintf(out, "  %-16s  %-14s  %-8d  %-20d  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			storage.ColorName(r.Color, names),
			r.Frames,
			r.Seed,
			r.Frontend,
		)
	}

	wins, err := store.WinsByColor()
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Wins by color")
	for _, w := range wins {
		fmt.Fprintf(out, "  %-14s  %d\n", storage.ColorName(w.Color, names), w.Wins)
	}
	return nil
}
