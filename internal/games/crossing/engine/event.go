package engine

import "fmt"

// Event is one input to the reducer. The set of events is closed:
// Move, Tick and Restart are the only implementations.
type Event interface {
	event()
	fmt.Stringer
}

// Move requests one step of the player along one axis.
type Move struct {
	DX, DY float64
}

// Tick is the periodic clock pulse.
type Tick struct {
	Seq uint64
}

// Restart requests a reset of the current life.
type Restart struct{}

func (Move) event()    {}
func (Tick) event()    {}
func (Restart) event() {}

func (m Move) String() string {
	return fmt.Sprintf("move(%g,%g)", m.DX, m.DY)
}

func (t Tick) String() string {
	return fmt.Sprintf("tick(%d)", t.Seq)
}

func (Restart) String() string {
	return "restart"
}

// Direction helpers for the input collaborator.

// Up returns a one-step move towards the goal row.
func Up(cfg Config) Move { return Move{DY: -cfg.Step} }

// Down returns a one-step move towards the start bank.
func Down(cfg Config) Move { return Move{DY: cfg.Step} }

// Left returns a one-step move to the left.
func Left(cfg Config) Move { return Move{DX: -cfg.Step} }

// Right returns a one-step move to the right.
func Right(cfg Config) Move { return Move{DX: cfg.Step} }
