package engine

import "fmt"

// Kind tags what a body is. Behaviour that differs between bodies is
// selected by kind, never by separate types.
type Kind int

const (
	KindCar Kind = iota
	KindTruck
	KindLog
	KindTurtle
	KindSlot
)

// Category groups kinds by how they interact with the player.
type Category int

const (
	CategoryObstacle Category = iota // Ends the life on contact
	CategoryPlatform                 // Carries the player across the river
	CategoryTarget                   // Goal slot
)

// Category returns the interaction category of the kind.
func (k Kind) Category() Category {
	switch k {
	case KindLog, KindTurtle:
		return CategoryPlatform
	case KindSlot:
		return CategoryTarget
	default:
		return CategoryObstacle
	}
}

func (k Kind) String() string {
	switch k {
	case KindCar:
		return "car"
	case KindTruck:
		return "truck"
	case KindLog:
		return "log"
	case KindTurtle:
		return "turtle"
	case KindSlot:
		return "slot"
	default:
		return "unknown"
	}
}

// Body is any non-player entity: a vehicle, a float or a target slot.
type Body struct {
	ID        string // Human-readable, for display and tracing only
	Kind      Kind
	Row       int
	Index     int
	Slot      int // 0-based slot index for targets, -1 otherwise
	X, Y      float64
	W, H      float64
	Rightward bool
}

// Right returns the x coordinate just past the body's right edge.
func (b Body) Right() float64 {
	return b.X + b.W
}

// Player is the single controllable entity.
type Player struct {
	ID   string
	X, Y float64
	W, H float64
}

// Center returns the x coordinate of the player's centre.
func (p Player) Center() float64 {
	return p.X + p.W/2
}

// rightward reports the flow direction of a row: odd rows flow right.
func rightward(row int) bool {
	return row%2 == 1
}

// Row builds the bodies of one lane, ordered by index.
func Row(cfg Config, lane Lane) []Body {
	bodies := make([]Body, 0, lane.Count)
	for i := range lane.Count {
		bodies = append(bodies, Body{
			ID:        fmt.Sprintf("%s-r%d-%d", lane.Kind, lane.Row, i),
			Kind:      lane.Kind,
			Row:       lane.Row,
			Index:     i,
			Slot:      -1,
			X:         float64(i) * lane.Spacing,
			Y:         cfg.RowY(lane.Row),
			W:         lane.Width,
			H:         cfg.Step,
			Rightward: rightward(lane.Row),
		})
	}
	return bodies
}

// bodiesOf concatenates the rows of every lane in the given category,
// in layout order.
func bodiesOf(cfg Config, cat Category) []Body {
	var out []Body
	for _, lane := range cfg.Lanes {
		if lane.Kind.Category() == cat {
			out = append(out, Row(cfg, lane)...)
		}
	}
	if out == nil {
		out = []Body{}
	}
	return out
}

// Obstacles builds every vehicle, row by row.
func Obstacles(cfg Config) []Body {
	return bodiesOf(cfg, CategoryObstacle)
}

// Platforms builds every log and turtle group, row by row.
func Platforms(cfg Config) []Body {
	return bodiesOf(cfg, CategoryPlatform)
}

// Targets builds the five goal slots. Slots sit every second column,
// centred on the player's start column, so bushes fill the gaps.
func Targets(cfg Config) []Body {
	start := InitialPlayer(cfg)
	slots := make([]Body, 0, SlotCount)
	for i := range SlotCount {
		slots = append(slots, Body{
			ID:    fmt.Sprintf("slot-%d", i+1),
			Kind:  KindSlot,
			Row:   GoalRow,
			Index: i,
			Slot:  i,
			X:     start.X + float64(i-SlotCount/2)*2*cfg.Step,
			Y:     cfg.RowY(GoalRow),
			W:     cfg.PlayerSize,
			H:     cfg.Step,
		})
	}
	return slots
}

// Bushes returns the x coordinates of the four bushes between the slots.
func Bushes(cfg Config) []float64 {
	slots := Targets(cfg)
	xs := make([]float64, 0, BushCount)
	for i := range BushCount {
		xs = append(xs, slots[i].X+cfg.Step)
	}
	return xs
}

// InitialPlayer returns the player at its start position.
func InitialPlayer(cfg Config) Player {
	return Player{
		ID: "player",
		X:  float64(StartCol) * cfg.Step,
		Y:  cfg.RowY(StartRow),
		W:  cfg.PlayerSize,
		H:  cfg.PlayerSize,
	}
}
