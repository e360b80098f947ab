package engine

import "fmt"

// Reduce returns the snapshot that follows w after event e.
func Reduce(cfg Config, w World, e Event) World {
	switch ev := e.(type) {
	case Move:
		return move(cfg, w, ev)
	case Tick:
		return tick(cfg, w)
	case Restart:
		return fresh(cfg, w.HighScore)
	default:
		panic(fmt.Sprintf("engine: unknown event %T", e))
	}
}

// ReduceAll folds a sequence of events over w.
func ReduceAll(cfg Config, w World, events []Event) World {
	for _, e := range events {
		w = Reduce(cfg, w, e)
	}
	return w
}

// move commits each axis of the step independently, rejecting any axis
// that would leave the play field. Collisions wait for the next tick.
func move(cfg Config, w World, m Move) World {
	next := w.Clone()
	p := w.Player

	if x := p.X + m.DX; x >= 0 && x+p.W <= cfg.Canvas {
		next.Player.X = x
	}
	if y := p.Y + m.DY; y >= 0 && y+p.H <= cfg.Canvas {
		next.Player.Y = y
	}
	return next
}

// tick advances the world by one clock pulse. Progress is read from the
// pre-motion snapshot; collisions are judged on the moved candidate.
func tick(cfg Config, w World) World {
	if w.GameOver {
		return fresh(cfg, w.HighScore)
	}

	next := w.Clone()
	if Full(w.Filled) {
		next.Level = w.Level + 1
		next.Filled = []int{}
		next.Obstacles = Obstacles(cfg)
		next.Platforms = Platforms(cfg)
		next.Targets = Targets(cfg)
	} else {
		idx, entered := freshSlot(cfg, w)
		if entered {
			next.Filled, next.Score = Fill(w.Filled, w.Score, idx)
		}
		next.Obstacles = AdvanceAll(cfg, w.Obstacles, w.Level)
		next.Platforms = AdvanceAll(cfg, w.Platforms, w.Level)
		if entered {
			next.Player = InitialPlayer(cfg)
		} else {
			next.Player = carry(cfg, w)
		}
	}

	next.HighScore = UpdateHighScore(next.Score, w.HighScore)
	next.GameOver = Fatal(cfg, next)
	return next
}

// carry moves the player with the platform it stands on. Platform rows are
// checked in layout order and the first row the player rides wins.
func carry(cfg Config, w World) Player {
	p := w.Player
	for _, lane := range cfg.Lanes {
		if lane.Kind.Category() != CategoryPlatform || p.Y != cfg.RowY(lane.Row) {
			continue
		}
		for _, b := range w.Platforms {
			if b.Row == lane.Row && OnWaterObject(cfg, p, b) {
				p.X += RowVelocity(cfg, lane, w.Level)
				return p
			}
		}
	}
	return p
}
