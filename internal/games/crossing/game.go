// Package crossing adapts the river crossing engine to the arcade platform.
// It turns input frames into engine events, holds the current snapshot,
// journals the event stream and draws snapshots onto a core.Screen.
package crossing

import (
	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/games/crossing/engine"
	"github.com/vovakirdan/tui-crossing/internal/registry"
	"github.com/vovakirdan/tui-crossing/internal/storage"
)

// GameID is the registry and journal identifier of the game.
const GameID = "crossing"

// DeathPause is how many ticks a lost life stays on screen before the
// reset tick is dispatched. Restart skips the pause.
const DeathPause = 30

// Game implements registry.Game for live play.
type Game struct {
	cfg      engine.Config
	tuning   config.CrossingConfig
	preset   config.DifficultyPreset
	world    engine.World
	seq      uint64 // Ticks dispatched since Reset
	records  []storage.Record
	paused   bool
	tooSmall bool
	deathFor int // Ticks the current death has been shown
	screenW  int
	screenH  int
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
// Unknown names fall back to the config file's difficulty.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// New creates a new crossing game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "River Crossing"
}

// Reset loads the tuning and starts a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadCrossing(configPath)
	if err != nil {
		cfg = config.DefaultCrossingConfig()
	}
	config.ApplyCrossingPreset(&cfg, difficultyPreset)
	g.start(cfg, difficultyPreset, runtime)
}

// start begins a session with an explicit tuning.
func (g *Game) start(tuning config.CrossingConfig, preset config.DifficultyPreset, runtime core.RuntimeConfig) {
	g.tuning = tuning
	g.preset = preset
	g.cfg = tuning.EngineConfig()
	g.world = engine.Initial(g.cfg)
	g.seq = 0
	g.records = nil
	g.paused = false
	g.deathFor = 0
	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

// Resize records the terminal size. The game holds still while the
// board does not fit.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < BoardWidth || h < BoardHeight+hudHeight
}

// Step applies the frame's actions in arrival order, then one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && !g.world.GameOver {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions() {
		if e, ok := g.eventFor(a); ok {
			g.dispatch(e)
		}
	}

	if g.world.GameOver {
		g.deathFor++
		if g.deathFor < DeathPause {
			return core.StepResult{State: g.State()}
		}
	}

	g.dispatch(engine.Tick{Seq: g.seq})
	g.seq++
	return core.StepResult{State: g.State()}
}

// eventFor maps an action to an engine event. Moves are dropped while
// the death pause is showing.
func (g *Game) eventFor(a core.Action) (engine.Event, bool) {
	if a == core.ActionRestart {
		return engine.Restart{}, true
	}
	if g.world.GameOver {
		return nil, false
	}
	switch a {
	case core.ActionUp:
		return engine.Up(g.cfg), true
	case core.ActionDown:
		return engine.Down(g.cfg), true
	case core.ActionLeft:
		return engine.Left(g.cfg), true
	case core.ActionRight:
		return engine.Right(g.cfg), true
	default:
		return nil, false
	}
}

// dispatch reduces one event and journals it.
func (g *Game) dispatch(e engine.Event) {
	g.world = engine.Reduce(g.cfg, g.world, e)
	g.records = append(g.records, EventRecord(e))
	if !g.world.GameOver {
		g.deathFor = 0
	}
}

// Render draws the current snapshot.
func (g *Game) Render(dst *core.Screen) {
	RenderWorld(dst, g.cfg, g.world, Overlay{
		TooSmall: g.tooSmall,
		Paused:   g.paused,
		Title:    g.Title(),
	})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.world.Score,
		HighScore: g.world.HighScore,
		Level:     g.world.Level,
		GameOver:  g.world.GameOver,
		Paused:    g.paused,
	}
}

// World returns the current snapshot.
func (g *Game) World() engine.World {
	return g.world
}

// Records returns a copy of the events dispatched since Reset.
func (g *Game) Records() []storage.Record {
	return append([]storage.Record(nil), g.records...)
}

// Difficulty returns the preset name the session was started with.
func (g *Game) Difficulty() string {
	if g.preset == "" {
		return "config"
	}
	return string(g.preset)
}

// Tuning returns the YAML tuning of the session.
func (g *Game) Tuning() string {
	data, err := g.tuning.YAML()
	if err != nil {
		return ""
	}
	return string(data)
}

var (
	_ registry.Game      = (*Game)(nil)
	_ registry.Resizable = (*Game)(nil)
	_ registry.Recorder  = (*Game)(nil)
)
