package engine

import "slices"

// World is one complete, immutable game snapshot. The reducer never
// modifies a World it receives; every returned World owns its slices.
type World struct {
	Player    Player
	Obstacles []Body
	Platforms []Body
	Targets   []Body
	Filled    []int // Filled slot indices in fill order
	Score     int
	HighScore int
	Level     int
	GameOver  bool
}

// Initial returns the start-of-session snapshot.
func Initial(cfg Config) World {
	return fresh(cfg, 0)
}

// fresh builds a new life with the given high score carried over.
func fresh(cfg Config, highScore int) World {
	return World{
		Player:    InitialPlayer(cfg),
		Obstacles: Obstacles(cfg),
		Platforms: Platforms(cfg),
		Targets:   Targets(cfg),
		Filled:    []int{},
		HighScore: highScore,
	}
}

// Clone returns a deep copy of the world.
func (w World) Clone() World {
	w.Obstacles = slices.Clone(w.Obstacles)
	w.Platforms = slices.Clone(w.Platforms)
	w.Targets = slices.Clone(w.Targets)
	w.Filled = slices.Clone(w.Filled)
	if w.Filled == nil {
		w.Filled = []int{}
	}
	return w
}

// IsFilled reports whether a slot index has been filled.
func (w World) IsFilled(idx int) bool {
	return slices.Contains(w.Filled, idx)
}
