package crossing

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/games/crossing/engine"
	"github.com/vovakirdan/tui-crossing/internal/registry"
	"github.com/vovakirdan/tui-crossing/internal/storage"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.start(config.DefaultCrossingConfig(), "", core.DefaultConfig())
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func kinds(records []storage.Record) []storage.RecordKind {
	out := make([]storage.RecordKind, len(records))
	for i, r := range records {
		out[i] = r.Kind
	}
	return out
}

func TestRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatalf("%q should be registered", GameID)
	}
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, ok := g.(*Game); !ok {
		t.Errorf("Create() returned %T, expected *Game", g)
	}
}

func TestStepAppliesMovesBeforeTick(t *testing.T) {
	g := newTestGame(t)

	g.Step(frame(core.ActionLeft))

	if x := g.World().Player.X; x != 150 {
		t.Errorf("player X = %v, expected 150", x)
	}
	want := []storage.RecordKind{storage.KindMove, storage.KindTick}
	if got := kinds(g.Records()); !reflect.DeepEqual(got, want) {
		t.Errorf("records = %v, expected %v", got, want)
	}
}

func TestStepKeepsArrivalOrder(t *testing.T) {
	g := newTestGame(t)

	g.Step(frame(core.ActionRight, core.ActionLeft))

	records := g.Records()
	if len(records) != 3 || records[0].DX != 50 || records[1].DX != -50 {
		t.Fatalf("records = %+v, expected right, left, tick", records)
	}
	if x := g.World().Player.X; x != 200 {
		t.Errorf("player X = %v, expected 200", x)
	}
}

func TestEmptyFrameStillTicks(t *testing.T) {
	g := newTestGame(t)
	before := g.World().Obstacles[0].X

	g.Step(core.NewInputFrame())

	if g.World().Obstacles[0].X == before {
		t.Error("an empty frame should still advance the world")
	}
	if n := len(g.Records()); n != 1 {
		t.Errorf("recorded %d events, expected 1", n)
	}
}

func TestDeathPause(t *testing.T) {
	g := newTestGame(t)

	// Hopping into the near car lane at the start gets hit on the first tick
	g.Step(frame(core.ActionUp))
	if !g.State().GameOver {
		t.Fatal("expected the hop into traffic to end the life")
	}

	for i := range DeathPause - 1 {
		g.Step(frame(core.ActionLeft))
		if !g.State().GameOver {
			t.Fatalf("step %d: death should still be showing", i)
		}
	}
	if n := len(g.Records()); n != 2 {
		t.Errorf("recorded %d events during the pause, expected 2", n)
	}

	g.Step(core.NewInputFrame())
	if g.State().GameOver {
		t.Error("the pause should end with the reset tick")
	}
	if g.World().Player != engine.InitialPlayer(g.cfg) {
		t.Errorf("player = %+v, expected start position", g.World().Player)
	}
}

func TestRestartSkipsDeathPause(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame(core.ActionUp))

	g.Step(frame(core.ActionRestart))

	want := []storage.RecordKind{storage.KindMove, storage.KindTick, storage.KindRestart, storage.KindTick}
	if got := kinds(g.Records()); !reflect.DeepEqual(got, want) {
		t.Errorf("records = %v, expected %v", got, want)
	}
	if g.State().GameOver {
		t.Error("restart should start a new life")
	}
}

func TestPauseHoldsSimulation(t *testing.T) {
	g := newTestGame(t)

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused state")
	}

	g.Step(frame(core.ActionLeft))
	if len(g.Records()) != 0 || g.World().Player.X != 200 {
		t.Error("a paused game should not dispatch events")
	}

	g.Step(frame(core.ActionPause, core.ActionLeft))
	if g.State().Paused {
		t.Error("second pause should resume")
	}
	if g.World().Player.X != 150 {
		t.Errorf("player X = %v, expected 150 after resuming", g.World().Player.X)
	}
}

func TestTooSmallHoldsSimulation(t *testing.T) {
	g := New()
	g.start(config.DefaultCrossingConfig(), "", core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 30})

	g.Step(frame(core.ActionLeft))
	if len(g.Records()) != 0 {
		t.Error("a game that does not fit should hold still")
	}

	g.Resize(BoardWidth, BoardHeight+hudHeight)
	g.Step(frame(core.ActionLeft))
	if len(g.Records()) != 2 {
		t.Errorf("recorded %d events after resize, expected 2", len(g.Records()))
	}
}

func TestDifficultyLabel(t *testing.T) {
	g := newTestGame(t)
	if g.Difficulty() != "config" {
		t.Errorf("Difficulty() = %q, expected config", g.Difficulty())
	}

	tuning := config.DefaultCrossingConfig()
	config.ApplyCrossingPreset(&tuning, config.DifficultyHard)
	g.start(tuning, config.DifficultyHard, core.DefaultConfig())
	if g.Difficulty() != "hard" {
		t.Errorf("Difficulty() = %q, expected hard", g.Difficulty())
	}
	if g.cfg.SpeedIncrement != 0.5 {
		t.Errorf("engine increment = %v, expected 0.5", g.cfg.SpeedIncrement)
	}
}

// playRandom drives a game with seeded random input.
func playRandom(g *Game, seed int64, steps int) {
	rng := rand.New(rand.NewSource(seed))
	actions := []core.Action{
		core.ActionNone, core.ActionNone, core.ActionNone,
		core.ActionUp, core.ActionUp, core.ActionDown,
		core.ActionLeft, core.ActionRight,
	}
	for i := range steps {
		f := core.NewInputFrame()
		f.Set(actions[rng.Intn(len(actions))])
		if i%997 == 0 {
			f.Set(core.ActionRestart)
		}
		g.Step(f)
	}
}

func TestRecordedSessionReplays(t *testing.T) {
	g := newTestGame(t)
	playRandom(g, 42, 3000)

	cfg, err := ReplayConfig(&storage.Replay{Tuning: g.Tuning()})
	if err != nil {
		t.Fatalf("ReplayConfig() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, g.cfg) {
		t.Fatalf("replayed config = %+v, expected %+v", cfg, g.cfg)
	}

	// The journal round-trips through compaction the way storage saves it
	final, err := Simulate(cfg, storage.Compact(g.Records()))
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}
	if !reflect.DeepEqual(final, g.World()) {
		t.Errorf("replayed world differs:\n got %v\nwant %v", Summarize(final), Summarize(g.World()))
	}
}

func TestPlaybackMatchesLiveSession(t *testing.T) {
	g := newTestGame(t)
	playRandom(g, 7, 1500)

	events, err := Events(g.Records())
	if err != nil {
		t.Fatalf("Events() error = %v", err)
	}

	p := NewPlayback(g.cfg, events, 1)
	p.Reset(core.DefaultConfig())

	steps := 0
	for !p.Finished() {
		p.Step(core.NewInputFrame())
		steps++
	}
	if steps != storage.Ticks(g.Records()) {
		t.Errorf("playback took %d steps, expected one per tick (%d)", steps, storage.Ticks(g.Records()))
	}
	if !reflect.DeepEqual(p.World(), g.World()) {
		t.Errorf("playback world differs:\n got %v\nwant %v", Summarize(p.World()), Summarize(g.World()))
	}
	if !p.State().Finished {
		t.Error("State() should report a finished playback")
	}

	p.Step(frame(core.ActionRestart, core.ActionPause))
	if p.Finished() || !p.State().Paused {
		t.Error("restart should rewind and pause should hold the playback")
	}
}

func TestEventsRejectsUnknownKind(t *testing.T) {
	_, err := Events([]storage.Record{{Kind: storage.KindTick}, {Kind: "jump"}})
	if err == nil || !strings.Contains(err.Error(), "jump") {
		t.Errorf("Events() error = %v, expected unknown kind", err)
	}
}

func TestEventsNumbersTicks(t *testing.T) {
	events, err := Events([]storage.Record{
		{Kind: storage.KindTick, Repeat: 2},
		{Kind: storage.KindMove, DY: -50},
		{Kind: storage.KindTick},
	})
	if err != nil {
		t.Fatalf("Events() error = %v", err)
	}
	want := []engine.Event{engine.Tick{Seq: 0}, engine.Tick{Seq: 1}, engine.Move{DY: -50}, engine.Tick{Seq: 2}}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("Events() = %v, expected %v", events, want)
	}
}

func TestReplayConfigRejectsBadTuning(t *testing.T) {
	if _, err := ReplayConfig(&storage.Replay{ID: 3, Tuning: "speeds:\n  car: -1\n"}); err == nil {
		t.Error("ReplayConfig() should reject invalid tuning")
	}
	cfg, err := ReplayConfig(&storage.Replay{})
	if err != nil || !reflect.DeepEqual(cfg, engine.DefaultConfig()) {
		t.Errorf("empty tuning = %+v, %v; expected defaults", cfg, err)
	}
}
