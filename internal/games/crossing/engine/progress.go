package engine

import (
	"fmt"
	"math"
	"slices"
)

// InTarget reports whether the player occupies one of the slot gaps.
func InTarget(cfg Config, w World) bool {
	return w.Player.Y == cfg.RowY(GoalRow) && !InBush(cfg, w.Player)
}

// NearestSlot returns the target slot closest to the player's x.
// Equal distances keep the first slot encountered.
func NearestSlot(targets []Body, p Player) Body {
	if len(targets) == 0 {
		panic("engine: nearest slot of empty target set")
	}
	best := targets[0]
	bestDist := math.Abs(best.X - p.X)
	for _, t := range targets[1:] {
		if d := math.Abs(t.X - p.X); d < bestDist {
			best, bestDist = t, d
		}
	}
	return best
}

// SlotIndex returns the 0-based slot index of a target body.
// Bodies not built by Targets are a programming error.
func SlotIndex(b Body) int {
	if b.Kind != KindSlot || b.Slot < 0 || b.Slot >= SlotCount {
		panic(fmt.Sprintf("engine: malformed target %q (kind %s, slot %d)", b.ID, b.Kind, b.Slot))
	}
	return b.Slot
}

// Fill adds a slot to the filled set. The award is granted once per slot;
// filling an already-filled slot returns the inputs unchanged.
func Fill(filled []int, score, idx int) ([]int, int) {
	if slices.Contains(filled, idx) {
		return slices.Clone(filled), score
	}
	out := make([]int, len(filled), len(filled)+1)
	copy(out, filled)
	return append(out, idx), score + SlotAward
}

// Full reports whether every slot has been filled.
func Full(filled []int) bool {
	return len(filled) >= SlotCount
}

// UpdateHighScore returns the new high score; it never decreases.
func UpdateHighScore(score, high int) int {
	return max(score, high)
}

// freshSlot reports whether the player stands in a slot not yet filled,
// and which one.
func freshSlot(cfg Config, w World) (int, bool) {
	if !InTarget(cfg, w) {
		return -1, false
	}
	idx := SlotIndex(NearestSlot(w.Targets, w.Player))
	return idx, !slices.Contains(w.Filled, idx)
}
