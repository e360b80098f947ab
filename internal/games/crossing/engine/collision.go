package engine

// Strikes reports whether an obstacle overlaps the player. Spans are
// half-open, so touching edges do not collide, and containment in either
// direction does. Both must share the same row.
func Strikes(p Player, o Body) bool {
	return p.Y == o.Y && p.X < o.Right() && o.X < p.X+p.W
}

// ObstacleStrike reports whether any obstacle strikes the player.
func ObstacleStrike(p Player, obstacles []Body) bool {
	for _, o := range obstacles {
		if Strikes(p, o) {
			return true
		}
	}
	return false
}

// OnWaterObject reports whether the player stands on a platform: its x lies
// in the leading band of RideSteps steps and the rows match.
func OnWaterObject(cfg Config, p Player, b Body) bool {
	band := RideSteps * cfg.Step
	return p.Y == b.Y && p.X >= b.X && p.X < b.X+band
}

func onKind(cfg Config, p Player, platforms []Body, k Kind) bool {
	for _, b := range platforms {
		if b.Kind == k && OnWaterObject(cfg, p, b) {
			return true
		}
	}
	return false
}

// OnLog reports whether the player rides any log.
func OnLog(cfg Config, p Player, platforms []Body) bool {
	return onKind(cfg, p, platforms, KindLog)
}

// OnTurtle reports whether the player rides any turtle group.
func OnTurtle(cfg Config, p Player, platforms []Body) bool {
	return onKind(cfg, p, platforms, KindTurtle)
}

// Riding reports whether the player rides any platform.
func Riding(cfg Config, p Player, platforms []Body) bool {
	return OnLog(cfg, p, platforms) || OnTurtle(cfg, p, platforms)
}

// InRiver reports whether the player's row lies in the river band.
func InRiver(cfg Config, p Player) bool {
	return p.Y >= cfg.RowY(RiverTop) && p.Y <= cfg.RowY(RiverBottom)
}

// Drowning reports whether the player is in the river without a platform.
func Drowning(cfg Config, p Player, platforms []Body) bool {
	return InRiver(cfg, p) && !Riding(cfg, p, platforms)
}

// UnsafeBoundary reports whether half of the player has crossed either
// canvas edge. Only fatal while riding: a platform wraps, the player doesn't.
func UnsafeBoundary(cfg Config, p Player) bool {
	c := p.Center()
	return c < 0 || c > cfg.Canvas
}

// InBush reports whether the player sits in a bush rather than a slot gap.
// Each bush tolerates a quarter player width of overlap on either side.
func InBush(cfg Config, p Player) bool {
	if p.Y != cfg.RowY(GoalRow) {
		return false
	}
	tol := p.W / 4
	for _, x := range Bushes(cfg) {
		if p.X >= x-tol && p.X <= x+tol {
			return true
		}
	}
	return false
}

// Fatal is the composite collision verdict for a candidate world.
func Fatal(cfg Config, w World) bool {
	p := w.Player
	riding := Riding(cfg, p, w.Platforms)
	switch {
	case ObstacleStrike(p, w.Obstacles):
		return true
	case InRiver(cfg, p) && !riding:
		return true
	case riding && UnsafeBoundary(cfg, p):
		return true
	case InBush(cfg, p):
		return true
	}
	return false
}
