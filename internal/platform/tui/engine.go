package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

// LogEngine is the terminal's platformer.Engine. The screen is redrawn from
// the world every frame, so it only keeps the bookkeeping the session needs:
// the live entities, what was collected and the last HUD values.
type LogEngine struct {
	logger *log.Logger

	kinds     map[platformer.EntityID]platformer.EntityKind
	live      map[platformer.EntityKind]int
	collected map[platformer.EntityKind]int
	score     int
	lives     int
	stopped   bool
}

// NewLogEngine creates an engine that reports to logger. A nil logger discards.
func NewLogEngine(logger *log.Logger) *LogEngine {
	e := &LogEngine{logger: logger}
	e.Reset()
	return e
}

// Reset forgets the previous session. Call it before the game is reset.
func (e *LogEngine) Reset() {
	e.kinds = make(map[platformer.EntityID]platformer.EntityKind)
	e.live = make(map[platformer.EntityKind]int)
	e.collected = make(map[platformer.EntityKind]int)
	e.score, e.lives = 0, 0
	e.stopped = false
}

// Spawn records a new entity. Ground tiles share the zero ID and are
// never removed.
func (e *LogEngine) Spawn(v platformer.EntityView) {
	if v.ID != 0 {
		e.kinds[v.ID] = v.Kind
	}
	e.live[v.Kind]++
}

// Remove forgets an entity that left the world.
func (e *LogEngine) Remove(id platformer.EntityID) {
	kind, ok := e.kinds[id]
	if !ok {
		if e.logger != nil {
			e.logger.Warn("remove of unknown entity", "id", id)
		}
		return
	}
	delete(e.kinds, id)
	e.live[kind]--
	e.collected[kind]++
	if e.logger != nil {
		e.logger.Debug("entity removed", "id", id, "kind", kind)
	}
}

// SetHUD stores the values shown in the status line.
func (e *LogEngine) SetHUD(score, lives int) {
	e.score, e.lives = score, lives
}

// Stop marks the end of the session.
func (e *LogEngine) Stop() {
	e.stopped = true
	if e.logger != nil {
		e.logger.Info("game over", "score", e.score, "lives", e.lives)
	}
}

// Live returns how many entities of kind are still in the world.
func (e *LogEngine) Live(kind platformer.EntityKind) int {
	return e.live[kind]
}

// Collected returns how many entities of kind were removed this session.
func (e *LogEngine) Collected(kind platformer.EntityKind) int {
	return e.collected[kind]
}

// HUD returns the last score and lives pushed by the game.
func (e *LogEngine) HUD() (score, lives int) {
	return e.score, e.lives
}

// Stopped reports whether the game signalled its end.
func (e *LogEngine) Stopped() bool {
	return e.stopped
}
