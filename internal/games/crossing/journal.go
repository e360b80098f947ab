package crossing

import (
	"fmt"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/games/crossing/engine"
	"github.com/vovakirdan/tui-crossing/internal/storage"
)

// EventRecord converts an engine event into its journal form.
func EventRecord(e engine.Event) storage.Record {
	switch ev := e.(type) {
	case engine.Move:
		return storage.Record{Kind: storage.KindMove, DX: ev.DX, DY: ev.DY, Repeat: 1}
	case engine.Tick:
		return storage.Record{Kind: storage.KindTick, Repeat: 1}
	case engine.Restart:
		return storage.Record{Kind: storage.KindRestart, Repeat: 1}
	default:
		panic(fmt.Sprintf("crossing: unknown event %T", e))
	}
}

// Events decodes a journal into engine events. Tick runs are expanded and
// renumbered from zero, matching the numbering of a live session.
func Events(records []storage.Record) ([]engine.Event, error) {
	var seq uint64
	events := make([]engine.Event, 0, len(records))
	for i, r := range storage.Expand(records) {
		switch r.Kind {
		case storage.KindMove:
			events = append(events, engine.Move{DX: r.DX, DY: r.DY})
		case storage.KindTick:
			events = append(events, engine.Tick{Seq: seq})
			seq++
		case storage.KindRestart:
			events = append(events, engine.Restart{})
		default:
			return nil, fmt.Errorf("crossing: record %d has unknown kind %q", i, r.Kind)
		}
	}
	return events, nil
}

// ReplayConfig rebuilds the engine configuration a replay was recorded with.
// Replays without tuning use the defaults.
func ReplayConfig(r *storage.Replay) (engine.Config, error) {
	if r.Tuning == "" {
		return config.DefaultCrossingConfig().EngineConfig(), nil
	}
	tuning, err := config.ParseCrossing([]byte(r.Tuning))
	if err != nil {
		return engine.Config{}, fmt.Errorf("crossing: replay %d: %w", r.ID, err)
	}
	return tuning.EngineConfig(), nil
}

// Simulate re-runs a journal from the initial snapshot and returns the
// final snapshot.
func Simulate(cfg engine.Config, records []storage.Record) (engine.World, error) {
	events, err := Events(records)
	if err != nil {
		return engine.World{}, err
	}
	return engine.ReduceAll(cfg, engine.Initial(cfg), events), nil
}
