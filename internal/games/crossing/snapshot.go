package crossing

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-crossing/internal/games/crossing/engine"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying       GameStateType = "playing"
	StateGameOver      GameStateType = "game_over"
	StateLevelComplete GameStateType = "level_complete"
)

// Snapshot is a flat summary of a World for determinism tests and the
// replay command.
type Snapshot struct {
	Score     int
	HighScore int
	Level     int
	Filled    []int // Sorted slot indices
	PlayerX   float64
	PlayerY   float64
	State     GameStateType
}

// Summarize flattens a world into a Snapshot.
func Summarize(w engine.World) Snapshot {
	state := StatePlaying
	switch {
	case w.GameOver:
		state = StateGameOver
	case engine.Full(w.Filled):
		state = StateLevelComplete
	}

	filled := slices.Clone(w.Filled)
	slices.Sort(filled)

	return Snapshot{
		Score:     w.Score,
		HighScore: w.HighScore,
		Level:     w.Level,
		Filled:    filled,
		PlayerX:   w.Player.X,
		PlayerY:   w.Player.Y,
		State:     state,
	}
}

// String renders the snapshot as a single summary line.
func (s Snapshot) String() string {
	return fmt.Sprintf("state=%s score=%d high=%d level=%d slots=%v player=(%g,%g)",
		s.State, s.Score, s.HighScore, s.Level, s.Filled, s.PlayerX, s.PlayerY)
}
