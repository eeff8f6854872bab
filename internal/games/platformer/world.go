// Package platformer implements a side-scrolling platformer.
//
// The simulation lives in World: a single owned struct that holds the player,
// the level geometry, enemies, collectibles, score and lives. World.Update
// advances it by exactly one fixed tick. Game adapts a World to the game
// registry and renders it into a character screen.
package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Key is a player control understood by the world.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyJump
	keyCount
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyJump:
		return "jump"
	default:
		return "unknown"
	}
}

// Input is the held state of every control for one tick.
type Input struct {
	Left  bool
	Right bool
	Jump  bool
}

// Held reports whether k is held in this input.
func (in Input) Held(k Key) bool {
	switch k {
	case KeyLeft:
		return in.Left
	case KeyRight:
		return in.Right
	case KeyJump:
		return in.Jump
	default:
		return false
	}
}

// Controller is the contract between a host frame loop and the simulation.
// Key callbacks may arrive between ticks; Update runs once per frame.
type Controller interface {
	OnKeyDown(k Key)
	OnKeyUp(k Key)
	Update(in Input) Events
}

// Player is the controllable character.
type Player struct {
	Box      core.Rect // position and size in world units
	VX, VY   int
	Grounded bool
}

// World is the complete mutable state of one play session.
type World struct {
	cfg   config.PlatformerConfig
	level *Level

	player       Player
	enemies      []Enemy
	collectibles []Collectible

	held     [keyCount]bool
	score    int
	lives    int
	gameOver bool
	tick     int
}

var _ Controller = (*World)(nil)

// NewWorld creates a world for the given level. The level's transient
// entities are copied, so the level itself stays untouched.
func NewWorld(cfg config.PlatformerConfig, level *Level) *World {
	w := &World{
		cfg:          cfg,
		level:        level,
		enemies:      append([]Enemy(nil), level.Enemies...),
		collectibles: append([]Collectible(nil), level.Collectibles...),
		lives:        cfg.Gameplay.Lives,
	}
	w.player.Box = core.NewRect(cfg.Player.StartX, cfg.Player.StartY, cfg.Player.Width, cfg.Player.Height)
	w.player.Grounded = w.player.Box.Bottom() >= level.GroundY
	return w
}

// Player returns a copy of the player state.
func (w *World) Player() Player {
	return w.player
}

// Enemies returns the enemies still in play. The slice must not be modified.
func (w *World) Enemies() []Enemy {
	return w.enemies
}

// Collectibles returns the collectibles still in play. The slice must not be modified.
func (w *World) Collectibles() []Collectible {
	return w.collectibles
}

// Level returns the static level geometry.
func (w *World) Level() *Level {
	return w.level
}

// Score returns the current score.
func (w *World) Score() int {
	return w.score
}

// Lives returns the remaining lives.
func (w *World) Lives() int {
	return w.lives
}

// GameOver reports whether the session has ended.
func (w *World) GameOver() bool {
	return w.gameOver
}

// Tick returns the number of ticks simulated so far.
func (w *World) Tick() int {
	return w.tick
}

// Held returns the controls the world currently considers held.
func (w *World) Held() Input {
	return Input{
		Left:  w.held[KeyLeft],
		Right: w.held[KeyRight],
		Jump:  w.held[KeyJump],
	}
}
