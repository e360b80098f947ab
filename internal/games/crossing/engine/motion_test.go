package engine

import "testing"

func TestAdvance(t *testing.T) {
	const canvas = 450.0

	tests := []struct {
		name      string
		x, w      float64
		rightward bool
		velocity  float64
		expected  float64
	}{
		{"rightward normal", 10, 50, true, 2, 12},
		{"rightward just inside", 448, 50, true, 1.5, 449.5},
		{"rightward exits", 449, 50, true, 1.5, -25},
		{"rightward lands on edge", 449, 50, true, 1, -25},
		{"leftward normal", 100, 50, false, -1.25, 98.75},
		{"leftward just inside", -49, 50, false, -0.5, -49.5},
		{"leftward exits", -49, 50, false, -1, 425},
		{"wide leftward exits", -149.5, 150, false, -1, 375},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Body{X: tc.x, Y: 100, W: tc.w, H: 50}
			got := Advance(canvas, b, tc.rightward, tc.velocity)
			if got.X != tc.expected {
				t.Errorf("Advance() X = %v, expected %v", got.X, tc.expected)
			}
			if got.Y != 100 {
				t.Errorf("Advance() changed Y to %v", got.Y)
			}
		})
	}
}

func TestAdvanceNeverLeavesCanvas(t *testing.T) {
	cfg := DefaultConfig()
	velocities := []float64{0.25, 1, 1.75, 3, 7.5}

	for _, lane := range cfg.Lanes {
		for _, v := range velocities {
			for _, b := range Row(cfg, lane) {
				signed := v
				if !b.Rightward {
					signed = -v
				}
				for step := range 2000 {
					b = Advance(cfg.Canvas, b, b.Rightward, signed)
					if b.X >= cfg.Canvas || b.Right() <= 0 {
						t.Fatalf("%s v=%v step %d: body at X=%v is outside the canvas", b.ID, v, step, b.X)
					}
				}
			}
		}
	}
}

func TestVelocity(t *testing.T) {
	cfg := DefaultConfig()

	if v := Velocity(cfg, KindCar, true, 0); v != cfg.Speeds.Car {
		t.Errorf("level 0 rightward car = %v, expected %v", v, cfg.Speeds.Car)
	}
	if v := Velocity(cfg, KindLog, false, 0); v != -cfg.Speeds.Log {
		t.Errorf("level 0 leftward log = %v, expected %v", v, -cfg.Speeds.Log)
	}

	want := cfg.Speeds.Turtle + 2*cfg.SpeedIncrement
	if v := Velocity(cfg, KindTurtle, false, 2); v != -want {
		t.Errorf("level 2 leftward turtle = %v, expected %v", v, -want)
	}
	if v := Velocity(cfg, KindSlot, true, 3); v != 3*cfg.SpeedIncrement {
		t.Errorf("slot velocity = %v, expected only the level bias", v)
	}
}

func TestAdvanceAllCopies(t *testing.T) {
	cfg := DefaultConfig()
	before := Obstacles(cfg)
	orig := before[0].X

	after := AdvanceAll(cfg, before, 0)
	if before[0].X != orig {
		t.Error("AdvanceAll mutated its input")
	}
	if after[0].X == orig {
		t.Error("AdvanceAll did not move the body")
	}
	if len(after) != len(before) {
		t.Errorf("AdvanceAll changed length: %d vs %d", len(after), len(before))
	}
}
