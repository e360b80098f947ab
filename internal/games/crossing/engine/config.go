// Package engine implements the pure state-transition core of the river
// crossing game. It builds entities, moves them with torus wrap, detects
// collisions, tracks progress and reduces events into new World snapshots.
//
// Nothing in this package touches a terminal, clock or input device.
package engine

// Gameplay constants that are not tunable.
const (
	SlotCount   = 5   // Target slots in the goal row
	SlotAward   = 100 // Points for the first fill of a slot
	RideSteps   = 3   // Width of the riding band, in player steps
	GoalRow     = 0   // Row holding the target slots and bushes
	RiverTop    = 1   // Farthest river row
	RiverBottom = 3   // Nearest river row
	MedianRow   = 4   // Safe bank between river and road
	StartRow    = 8   // Row the player starts on
	StartCol    = 4   // Column the player starts on
	BushCount   = SlotCount - 1
	LayoutRows  = 9
)

// Lane describes one row of moving bodies.
type Lane struct {
	Row     int
	Kind    Kind
	Count   int
	Spacing float64
	Width   float64
}

// Speeds holds the base speed of each moving kind, in units per tick.
type Speeds struct {
	Car    float64
	Truck  float64
	Log    float64
	Turtle float64
}

// Config holds the geometry and tuning the engine runs with.
// Geometry is fixed by the layout; speeds are tunable.
type Config struct {
	Canvas         float64 // Width and height of the square play field
	Step           float64 // Player step and row height
	PlayerSize     float64
	Speeds         Speeds
	SpeedIncrement float64 // Added to every base speed per level
	Lanes          []Lane
}

// DefaultLanes returns the fixed row layout, river first then road.
func DefaultLanes() []Lane {
	return []Lane{
		{Row: 1, Kind: KindLog, Count: 2, Spacing: 225, Width: 150},
		{Row: 2, Kind: KindTurtle, Count: 2, Spacing: 225, Width: 150},
		{Row: 3, Kind: KindLog, Count: 2, Spacing: 225, Width: 150},
		{Row: 5, Kind: KindTruck, Count: 2, Spacing: 225, Width: 100},
		{Row: 6, Kind: KindCar, Count: 3, Spacing: 150, Width: 50},
		{Row: 7, Kind: KindCar, Count: 3, Spacing: 150, Width: 50},
	}
}

// DefaultConfig returns the standard 9x9 layout with default speeds.
func DefaultConfig() Config {
	return Config{
		Canvas:     450,
		Step:       50,
		PlayerSize: 50,
		Speeds: Speeds{
			Car:    1.5,
			Truck:  1.0,
			Log:    1.0,
			Turtle: 1.25,
		},
		SpeedIncrement: 0.25,
		Lanes:          DefaultLanes(),
	}
}

// RowY returns the y coordinate of a row.
func (c Config) RowY(row int) float64 {
	return float64(row) * c.Step
}

// BaseSpeed returns the configured speed for a moving kind.
func (c Config) BaseSpeed(k Kind) float64 {
	switch k {
	case KindCar:
		return c.Speeds.Car
	case KindTruck:
		return c.Speeds.Truck
	case KindLog:
		return c.Speeds.Log
	case KindTurtle:
		return c.Speeds.Turtle
	default:
		return 0
	}
}
