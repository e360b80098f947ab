package engine

// Advance moves a body horizontally by a signed velocity. A body that fully
// leaves the canvas in its direction of travel re-enters half-visible on the
// opposite edge. Y is never changed.
func Advance(canvasW float64, b Body, movingRightward bool, velocity float64) Body {
	newX := b.X + velocity
	switch {
	case movingRightward && newX >= canvasW:
		b.X = -b.W / 2
	case !movingRightward && newX+b.W <= 0:
		b.X = canvasW - b.W/2
	default:
		b.X = newX
	}
	return b
}

// Velocity returns the signed per-tick velocity of a kind at a level.
// Speed grows by the configured increment per level; leftward bodies
// travel with a negative velocity.
func Velocity(cfg Config, k Kind, movingRightward bool, level int) float64 {
	speed := cfg.BaseSpeed(k) + float64(level)*cfg.SpeedIncrement
	if movingRightward {
		return speed
	}
	return -speed
}

// RowVelocity returns the velocity shared by every body in a lane.
func RowVelocity(cfg Config, lane Lane, level int) float64 {
	return Velocity(cfg, lane.Kind, rightward(lane.Row), level)
}

// AdvanceAll returns a new collection with every body advanced one step.
func AdvanceAll(cfg Config, bodies []Body, level int) []Body {
	out := make([]Body, len(bodies))
	for i, b := range bodies {
		out[i] = Advance(cfg.Canvas, b, b.Rightward, Velocity(cfg, b.Kind, b.Rightward, level))
	}
	return out
}
