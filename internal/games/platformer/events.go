package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// EntityID identifies a level entity for the lifetime of a session.
type EntityID int

// EntityKind classifies level entities.
type EntityKind int

const (
	KindGround EntityKind = iota
	KindObstacle
	KindHole
	KindPlatform
	KindEnemy
	KindCoin
	KindStar
)

// String returns the kind name used in logs.
func (k EntityKind) String() string {
	switch k {
	case KindGround:
		return "ground"
	case KindObstacle:
		return "obstacle"
	case KindHole:
		return "hole"
	case KindPlatform:
		return "platform"
	case KindEnemy:
		return "enemy"
	case KindCoin:
		return "coin"
	case KindStar:
		return "star"
	default:
		return "unknown"
	}
}

// EntityView describes an entity to the engine when it is created.
type EntityView struct {
	ID   EntityID
	Kind EntityKind
	Box  core.Rect
}

// Events summarizes what happened during one tick.
type Events struct {
	CoinsCollected int
	EnemiesStomped int
	HazardHits     int
	DamageHits     int
	ScoreChanged   bool
	LivesChanged   bool
	GameOver       bool // the world entered game over during this tick
	Removed        []EntityID
}

// Respawned reports whether the player was sent back to the start this tick.
func (e Events) Respawned() bool {
	return e.HazardHits+e.DamageHits > 0
}

// Engine is the presentation side of the game: it owns visuals for entities,
// the HUD and the frame clock. The simulation never calls it directly; Game
// forwards world events to it.
type Engine interface {
	Spawn(e EntityView)
	Remove(id EntityID)
	SetHUD(score, lives int)
	Stop()
}

// NopEngine ignores every call.
type NopEngine struct{}

func (NopEngine) Spawn(EntityView) {}
func (NopEngine) Remove(EntityID)  {}
func (NopEngine) SetHUD(_, _ int)  {}
func (NopEngine) Stop()            {}
