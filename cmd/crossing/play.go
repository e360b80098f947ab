package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
	"github.com/vovakirdan/tui-crossing/internal/platform/tui"
	"github.com/vovakirdan/tui-crossing/internal/registry"
	"github.com/vovakirdan/tui-crossing/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagRecord     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game of River Crossing.

Controls:
  Arrows/WASD/HJKL - Hop
  R                - Restart
  P/Esc            - Pause
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Traffic and river speed up slowly with each level
  normal - Default speed-up per level
  hard   - Speed-up per level doubled
  fixed  - No speed-up, every level plays like the first

Examples:
  crossing play
  crossing play --difficulty easy
  crossing play --difficulty hard --record
  crossing play --config ./my-crossing.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagRecord, "record", false, "Journal the session so it can be replayed")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := newLogger()

	tuning, err := loadTuning()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set config path and difficulty for the game before creation
	crossing.SetConfigPath(flagConfig)
	crossing.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(crossing.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open replay journal
	var store *storage.Store
	if flagRecord {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open replay journal, recording disabled", "path", flagDBPath, "error", err)
			// Continue without storage - game still works
			store = nil
		}
	}

	final, runErr := tui.Run(game, runtimeConfig(tuning), tui.Options{
		Store:  store,
		Logger: sessionLogger(logger),
		Record: flagRecord,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	state := final.State()
	fmt.Printf("Score: %d  High: %d  Level: %d\n", state.Score, state.HighScore, state.Level)
	if id := final.ReplayID(); id != 0 {
		fmt.Printf("Run saved as replay %d. Watch it with 'crossing replay %d --watch'.\n", id, id)
	}
}

// loadTuning loads and validates the tuning named by --config and --difficulty.
func loadTuning() (config.CrossingConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.CrossingConfig{}, err
	}
	tuning, err := config.LoadCrossing(flagConfig)
	if err != nil {
		return config.CrossingConfig{}, err
	}
	config.ApplyCrossingPreset(&tuning, preset)
	return tuning, nil
}

// runtimeConfig sizes the session to the terminal. --fps overrides the
// tuning's tick rate.
func runtimeConfig(tuning config.CrossingConfig) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = tuning.TickRate
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	return cfg
}

// openJournal opens the replay journal or exits.
func openJournal(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Error("could not open replay journal", "path", flagDBPath, "error", err)
		os.Exit(1)
	}
	return store
}
