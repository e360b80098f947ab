package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
	"github.com/vovakirdan/tui-crossing/internal/platform/tui"
)

var flagLimit int

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "Browse recorded runs",
	Long: `Show the most recent recorded runs. Select one with Enter to watch it,
or press X to delete it.

Runs are recorded with 'crossing play --record'.

Examples:
  crossing replays
  crossing replays --limit 50`,
	Args: cobra.NoArgs,
	Run:  runReplays,
}

func init() {
	replaysCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of runs to list")
}

func runReplays(cmd *cobra.Command, args []string) {
	logger := newLogger()

	tuning, err := loadTuning()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg := runtimeConfig(tuning)

	store := openJournal(logger)
	defer store.Close()

	id, err := tui.RunBrowser(store, crossing.GameID, flagLimit, cfg.TickRate, cfg.ScreenW, cfg.ScreenH)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running replay browser: %v\n", err)
		os.Exit(1)
	}
	if id == 0 {
		return
	}

	if err := watchReplay(store, id, cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
