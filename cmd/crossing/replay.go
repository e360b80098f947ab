package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
	"github.com/vovakirdan/tui-crossing/internal/platform/tui"
	"github.com/vovakirdan/tui-crossing/internal/storage"
)

var flagWatch bool

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate a recorded run",
	Long: `Re-run a recorded run through the engine with the tuning it was
played with, and print the final snapshot. With --watch the run is
played back in the terminal instead.

Examples:
  crossing replay 3
  crossing replay 3 --watch`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagWatch, "watch", false, "Play the run back in the terminal")
}

func runReplay(cmd *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		fmt.Fprintf(os.Stderr, "Error: invalid replay id %q\n", args[0])
		os.Exit(1)
	}

	logger := newLogger()
	store := openJournal(logger)
	defer store.Close()

	if flagWatch {
		tuning, err := loadTuning()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := watchReplay(store, id, runtimeConfig(tuning), logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	replay, err := loadReplay(store, id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg, err := crossing.ReplayConfig(replay)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	final, err := crossing.Simulate(cfg, replay.Records)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Replay %d - %s (%s)\n", replay.ID, replay.CreatedAt.Format("2006-01-02 15:04"), replay.Difficulty)
	fmt.Println()
	fmt.Printf("  Ticks:  %d\n", replay.Ticks)
	fmt.Printf("  Best:   %d\n", replay.BestScore)
	fmt.Printf("  Final:  %s\n", crossing.Summarize(final))

	if final.HighScore != replay.BestScore {
		logger.Warn("re-simulated high score differs from the recorded one",
			"recorded", replay.BestScore, "simulated", final.HighScore)
	}
}

// loadReplay fetches a replay, treating a missing ID as an error.
func loadReplay(store *storage.Store, id int64) (*storage.Replay, error) {
	replay, err := store.LoadReplay(id)
	if err != nil {
		return nil, err
	}
	if replay == nil {
		return nil, fmt.Errorf("replay %d not found", id)
	}
	return replay, nil
}

// watchReplay plays a recorded run back in the TUI.
func watchReplay(store *storage.Store, id int64, runtime core.RuntimeConfig, logger *log.Logger) error {
	replay, err := loadReplay(store, id)
	if err != nil {
		return err
	}
	cfg, err := crossing.ReplayConfig(replay)
	if err != nil {
		return err
	}
	events, err := crossing.Events(replay.Records)
	if err != nil {
		return err
	}

	logger.Debug("watching replay", "id", id, "events", len(events))
	_, err = tui.Run(crossing.NewPlayback(cfg, events, replay.ID), runtime, tui.Options{
		Logger: sessionLogger(logger),
	})
	return err
}
