// crossing is a terminal river crossing arcade game.
//
// Usage:
//
//	crossing play              - Play the game
//	crossing replays           - Browse recorded runs
//	crossing replay <id>       - Re-simulate a recorded run
//	crossing config            - Print the effective tuning
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: the config's tick_rate)
//	--db <path>        - Set replay journal path (default: ~/.arcade/crossing.db)
//	--log-file <path>  - Write a rotated debug log to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-crossing/internal/games/crossing"
)

var (
	// Global flags
	flagFPS     int
	flagDBPath  string
	flagLogFile string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crossing",
	Short: "River Crossing - Hop across the road and river in your terminal",
	Long: `River Crossing is a terminal arcade game. Dodge the traffic, ride the
logs and turtles across the river and fill all five home slots.

Available commands:
  play     - Play the game
  replays  - Browse recorded runs
  replay   - Re-simulate or watch a recorded run
  config   - Print the effective tuning

Examples:
  crossing play
  crossing play --difficulty hard --record
  crossing replays
  crossing replay 3 --watch
  crossing config > my-crossing.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = config's tick_rate)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/crossing.db", "Path to replay journal")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write a rotated debug log to this file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}
