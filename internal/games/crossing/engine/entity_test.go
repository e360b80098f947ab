package engine

import "testing"

func TestRowConstruction(t *testing.T) {
	cfg := DefaultConfig()
	lane := Lane{Row: 6, Kind: KindCar, Count: 3, Spacing: 150, Width: 50}

	bodies := Row(cfg, lane)
	if len(bodies) != 3 {
		t.Fatalf("Row() returned %d bodies, expected 3", len(bodies))
	}

	seen := make(map[string]bool)
	for i, b := range bodies {
		if seen[b.ID] {
			t.Errorf("duplicate id %q", b.ID)
		}
		seen[b.ID] = true

		if b.X != float64(i)*150 {
			t.Errorf("body %d: X = %v, expected %v", i, b.X, float64(i)*150)
		}
		if b.Y != 300 {
			t.Errorf("body %d: Y = %v, expected 300", i, b.Y)
		}
		if b.Row != 6 || b.Index != i {
			t.Errorf("body %d: Row/Index = %d/%d", i, b.Row, b.Index)
		}
		if b.Rightward {
			t.Errorf("body %d: even row should flow leftward", i)
		}
		if b.Slot != -1 {
			t.Errorf("body %d: Slot = %d, expected -1", i, b.Slot)
		}
	}

	if bodies[1].ID != "car-r6-1" {
		t.Errorf("ID = %q, expected car-r6-1", bodies[1].ID)
	}
}

func TestRowEmpty(t *testing.T) {
	cfg := DefaultConfig()
	bodies := Row(cfg, Lane{Row: 1, Kind: KindLog, Count: 0, Spacing: 100, Width: 150})
	if len(bodies) != 0 {
		t.Errorf("Row() with count 0 returned %d bodies", len(bodies))
	}
}

func TestRowParity(t *testing.T) {
	cfg := DefaultConfig()
	odd := Row(cfg, Lane{Row: 5, Kind: KindTruck, Count: 1, Spacing: 0, Width: 100})
	even := Row(cfg, Lane{Row: 2, Kind: KindTurtle, Count: 1, Spacing: 0, Width: 150})

	if !odd[0].Rightward {
		t.Error("odd row should flow rightward")
	}
	if even[0].Rightward {
		t.Error("even row should flow leftward")
	}
}

func TestCollectionsOrdered(t *testing.T) {
	cfg := DefaultConfig()

	obstacles := Obstacles(cfg)
	if len(obstacles) != 8 {
		t.Fatalf("expected 8 obstacles, got %d", len(obstacles))
	}
	for i := 1; i < len(obstacles); i++ {
		if obstacles[i].Row < obstacles[i-1].Row {
			t.Errorf("obstacles out of row order at %d", i)
		}
		if obstacles[i].Kind.Category() != CategoryObstacle {
			t.Errorf("obstacle %d has category %v", i, obstacles[i].Kind.Category())
		}
	}

	platforms := Platforms(cfg)
	if len(platforms) != 6 {
		t.Fatalf("expected 6 platforms, got %d", len(platforms))
	}
	wantRows := []int{1, 1, 2, 2, 3, 3}
	for i, b := range platforms {
		if b.Row != wantRows[i] {
			t.Errorf("platform %d: row %d, expected %d", i, b.Row, wantRows[i])
		}
	}
	if platforms[2].Kind != KindTurtle {
		t.Errorf("row 2 should hold turtles, got %s", platforms[2].Kind)
	}
}

func TestTargetsLayout(t *testing.T) {
	cfg := DefaultConfig()
	slots := Targets(cfg)

	if len(slots) != SlotCount {
		t.Fatalf("expected %d slots, got %d", SlotCount, len(slots))
	}

	wantX := []float64{0, 100, 200, 300, 400}
	wantID := []string{"slot-1", "slot-2", "slot-3", "slot-4", "slot-5"}
	for i, s := range slots {
		if s.X != wantX[i] {
			t.Errorf("slot %d: X = %v, expected %v", i, s.X, wantX[i])
		}
		if s.ID != wantID[i] {
			t.Errorf("slot %d: ID = %q, expected %q", i, s.ID, wantID[i])
		}
		if s.Slot != i {
			t.Errorf("slot %d: Slot = %d", i, s.Slot)
		}
		if s.Y != 0 {
			t.Errorf("slot %d: Y = %v, expected goal row", i, s.Y)
		}
	}

	// The middle slot lines up with the start column
	if slots[2].X != InitialPlayer(cfg).X {
		t.Errorf("middle slot X = %v, player start X = %v", slots[2].X, InitialPlayer(cfg).X)
	}
}

func TestBushesBetweenSlots(t *testing.T) {
	cfg := DefaultConfig()
	bushes := Bushes(cfg)

	want := []float64{50, 150, 250, 350}
	if len(bushes) != len(want) {
		t.Fatalf("expected %d bushes, got %d", len(want), len(bushes))
	}
	for i := range want {
		if bushes[i] != want[i] {
			t.Errorf("bush %d: X = %v, expected %v", i, bushes[i], want[i])
		}
	}
}

func TestKindCategory(t *testing.T) {
	tests := []struct {
		kind Kind
		want Category
	}{
		{KindCar, CategoryObstacle},
		{KindTruck, CategoryObstacle},
		{KindLog, CategoryPlatform},
		{KindTurtle, CategoryPlatform},
		{KindSlot, CategoryTarget},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			if got := tc.kind.Category(); got != tc.want {
				t.Errorf("Category() = %v, expected %v", got, tc.want)
			}
		})
	}
}
