package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game adapts a World to the game registry: it maps platform actions to
// key state, forwards world events to an Engine and renders the world.
type Game struct {
	mode Mode

	runtime  core.RuntimeConfig
	cfg      config.PlatformerConfig
	fixedCfg bool // cfg was supplied by the caller, skip loading
	world    *World
	engine   Engine

	paused     bool
	stopped    bool
	hurtFlash  int
	lastEvents Events
}

// New creates a classic platformer game.
func New() *Game {
	return &Game{mode: ModeClassic, engine: NopEngine{}}
}

// NewSkies creates a platformer with floating platforms and stars.
func NewSkies() *Game {
	return &Game{mode: ModeSkies, engine: NopEngine{}}
}

// NewWithConfig creates a game that uses cfg instead of loading one.
func NewWithConfig(cfg config.PlatformerConfig, mode Mode) *Game {
	return &Game{mode: mode, cfg: cfg, fixedCfg: true, engine: NopEngine{}}
}

// SetEngine attaches the presentation engine. Takes effect on the next Reset.
func (g *Game) SetEngine(e Engine) {
	if e == nil {
		e = NopEngine{}
	}
	g.engine = e
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeSkies {
		return "platformer_skies"
	}
	return "platformer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeSkies {
		return "Platformer: Skies"
	}
	return "Platformer"
}

// Reset generates a fresh level from the runtime seed and starts a new session.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc

	if !g.fixedCfg {
		cfg, err := config.LoadPlatformer(configPath)
		if err != nil {
			cfg = config.DefaultPlatformerConfig()
		}
		config.ApplyPlatformerPreset(&cfg, difficultyPreset)
		g.cfg = cfg
	}

	level := GenerateLevel(g.cfg, rc.Seed, g.mode)
	g.world = NewWorld(g.cfg, level)
	g.paused = false
	g.stopped = false
	g.hurtFlash = 0
	g.lastEvents = Events{}

	for _, v := range level.Entities() {
		g.engine.Spawn(v)
	}
	g.engine.SetHUD(g.world.Score(), g.world.Lives())
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil || g.world.GameOver() {
		return core.StepResult{State: g.State()}
	}

	// A pause toggle consumes the frame in both directions.
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		return core.StepResult{State: g.State()}
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.hurtFlash > 0 {
		g.hurtFlash--
	}

	ev := g.world.Update(Input{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Jump:  in.Has(core.ActionJump),
	})
	g.lastEvents = ev
	g.dispatch(ev)

	if ev.Respawned() {
		g.hurtFlash = g.cfg.Gameplay.HurtFlashTicks
	}

	return core.StepResult{State: g.State()}
}

// dispatch forwards the outcome of one tick to the engine.
func (g *Game) dispatch(ev Events) {
	for _, id := range ev.Removed {
		g.engine.Remove(id)
	}
	if ev.ScoreChanged || ev.LivesChanged {
		g.engine.SetHUD(g.world.Score(), g.world.Lives())
	}
	if ev.GameOver && !g.stopped {
		g.stopped = true
		g.engine.Stop()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{Paused: g.paused}
	}
	return core.GameState{
		Score:    g.world.Score(),
		Lives:    g.world.Lives(),
		GameOver: g.world.GameOver(),
		Paused:   g.paused,
	}
}

// World returns the running simulation, or nil before Reset.
func (g *Game) World() *World {
	return g.world
}

// Config returns the config the current session was built from.
func (g *Game) Config() config.PlatformerConfig {
	return g.cfg
}

// LastEvents returns the events of the most recent simulated tick.
func (g *Game) LastEvents() Events {
	return g.lastEvents
}

// Hurt reports whether the hurt flash is showing.
func (g *Game) Hurt() bool {
	return g.hurtFlash > 0
}

func init() {
	registry.Register("platformer", func() registry.Game { return New() })
	registry.Register("platformer_skies", func() registry.Game { return NewSkies() })
}
