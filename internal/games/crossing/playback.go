package crossing

import (
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/games/crossing/engine"
	"github.com/vovakirdan/tui-crossing/internal/registry"
)

// Playback is a Game driven by a recorded event stream instead of input.
// Each Step replays the recorded events up to and including the next tick.
type Playback struct {
	cfg      engine.Config
	events   []engine.Event
	pos      int
	world    engine.World
	replayID int64
	paused   bool
	tooSmall bool
}

// NewPlayback creates a playback of decoded events.
func NewPlayback(cfg engine.Config, events []engine.Event, replayID int64) *Playback {
	return &Playback{
		cfg:      cfg,
		events:   events,
		replayID: replayID,
		world:    engine.Initial(cfg),
	}
}

// ID returns the game identifier the replay was recorded under.
func (p *Playback) ID() string {
	return GameID
}

// Title returns the display name.
func (p *Playback) Title() string {
	return "Replay"
}

// Reset rewinds to the start of the recording.
func (p *Playback) Reset(runtime core.RuntimeConfig) {
	p.pos = 0
	p.paused = false
	p.world = engine.Initial(p.cfg)
	p.Resize(runtime.ScreenW, runtime.ScreenH)
}

// Resize records the terminal size.
func (p *Playback) Resize(w, h int) {
	p.tooSmall = w < BoardWidth || h < BoardHeight+hudHeight
}

// Step plays back one recorded tick. Pause holds playback and Restart
// rewinds it; movement input is ignored.
func (p *Playback) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		p.pos = 0
		p.world = engine.Initial(p.cfg)
	}
	if in.Has(core.ActionPause) {
		p.paused = !p.paused
	}
	if p.paused || p.tooSmall {
		return core.StepResult{State: p.State()}
	}

	for p.pos < len(p.events) {
		e := p.events[p.pos]
		p.world = engine.Reduce(p.cfg, p.world, e)
		p.pos++
		if _, ok := e.(engine.Tick); ok {
			break
		}
	}
	return core.StepResult{State: p.State()}
}

// Finished reports whether every recorded event has been played.
func (p *Playback) Finished() bool {
	return p.pos >= len(p.events)
}

// Render draws the current snapshot.
func (p *Playback) Render(dst *core.Screen) {
	RenderWorld(dst, p.cfg, p.world, Overlay{
		Title:    p.Title(),
		TooSmall: p.tooSmall,
		Paused:   p.paused,
		Finished: p.Finished(),
	})
}

// State returns the current game state.
func (p *Playback) State() core.GameState {
	return core.GameState{
		Score:     p.world.Score,
		HighScore: p.world.HighScore,
		Level:     p.world.Level,
		GameOver:  p.world.GameOver,
		Paused:    p.paused,
		Finished:  p.Finished(),
	}
}

// World returns the current snapshot.
func (p *Playback) World() engine.World {
	return p.world
}

// ReplayID returns the journal ID being played back.
func (p *Playback) ReplayID() int64 {
	return p.replayID
}

var (
	_ registry.Game      = (*Playback)(nil)
	_ registry.Resizable = (*Playback)(nil)
)
