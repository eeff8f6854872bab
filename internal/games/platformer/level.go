package platformer

import (
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Mode selects the level layout.
type Mode int

const (
	ModeClassic Mode = iota // flat ground, holes, obstacles, coins
	ModeSkies               // classic plus floating platforms with stars
)

// TileKind is the content of one ground column.
type TileKind int

const (
	TileGround TileKind = iota
	TileObstacle
	TileHole
)

// Obstacle is a solid block standing on the ground.
type Obstacle struct {
	ID  EntityID
	Box core.Rect
}

// Hole is a contiguous run of missing ground tiles, spanning [X0, X1).
// Y is the line at or below which the player falls in.
type Hole struct {
	ID     EntityID
	X0, X1 int
	Y      int
}

// Platform is a floating one-way surface: it can be landed on from above.
type Platform struct {
	ID  EntityID
	Box core.Rect
}

// Enemy patrols horizontally, reversing at the level edges.
type Enemy struct {
	ID    EntityID
	Box   core.Rect
	Dir   int // +1 or -1
	Speed int // world units per tick
}

// Collectible awards points once when touched.
type Collectible struct {
	ID     EntityID
	Kind   EntityKind
	Box    core.Rect
	Points int
}

// Level is the generated layout of one session.
type Level struct {
	Mode     Mode
	TileSize int
	Width    int
	Height   int
	GroundY  int

	Tiles        []TileKind
	Obstacles    []Obstacle
	Holes        []Hole
	Platforms    []Platform
	Enemies      []Enemy
	Collectibles []Collectible

	nextID EntityID
}

func (l *Level) newID() EntityID {
	l.nextID++
	return l.nextID
}

// Entities lists every entity of the level for the engine, static geometry first.
func (l *Level) Entities() []EntityView {
	views := make([]EntityView, 0, len(l.Tiles)+len(l.Enemies)+len(l.Collectibles))
	for i, t := range l.Tiles {
		if t == TileHole {
			continue
		}
		views = append(views, EntityView{
			Kind: KindGround,
			Box:  core.NewRect(i*l.TileSize, l.GroundY, l.TileSize, l.Height-l.GroundY),
		})
	}
	for _, h := range l.Holes {
		views = append(views, EntityView{ID: h.ID, Kind: KindHole, Box: core.NewRect(h.X0, h.Y, h.X1-h.X0, l.Height-h.Y)})
	}
	for _, o := range l.Obstacles {
		views = append(views, EntityView{ID: o.ID, Kind: KindObstacle, Box: o.Box})
	}
	for _, p := range l.Platforms {
		views = append(views, EntityView{ID: p.ID, Kind: KindPlatform, Box: p.Box})
	}
	for _, e := range l.Enemies {
		views = append(views, EntityView{ID: e.ID, Kind: KindEnemy, Box: e.Box})
	}
	for _, c := range l.Collectibles {
		views = append(views, EntityView{ID: c.ID, Kind: c.Kind, Box: c.Box})
	}
	return views
}

// GenerateLevel builds a level from the config. The same seed, config and
// mode always produce the same level.
func GenerateLevel(cfg config.PlatformerConfig, seed int64, mode Mode) *Level {
	rng := rand.New(rand.NewSource(seed))
	diff := config.NewDifficultyManager(cfg.Difficulty)
	lc := cfg.Level
	t := lc.TileSize

	l := &Level{
		Mode:     mode,
		TileSize: t,
		Width:    cfg.LevelWidth(),
		Height:   lc.WorldHeight,
		GroundY:  cfg.GroundY(),
	}

	l.Tiles = rollTiles(rng, lc, diff)

	for i, kind := range l.Tiles {
		x := i * t
		switch kind {
		case TileGround:
			if rng.Float64() < lc.CoinChance {
				l.Collectibles = append(l.Collectibles, Collectible{
					ID:     l.newID(),
					Kind:   KindCoin,
					Box:    core.NewRect(x+t/4, l.GroundY-t+t/4, t/2, t/2),
					Points: cfg.Gameplay.CoinPoints,
				})
			}
		case TileObstacle:
			l.Obstacles = append(l.Obstacles, Obstacle{
				ID:  l.newID(),
				Box: core.NewRect(x, l.GroundY-t, t, t),
			})
		case TileHole:
			if n := len(l.Holes); n > 0 && l.Holes[n-1].X1 == x {
				l.Holes[n-1].X1 = x + t
				continue
			}
			l.Holes = append(l.Holes, Hole{ID: l.newID(), X0: x, X1: x + t, Y: l.GroundY})
		}
	}

	l.placeEnemies(rng, cfg, diff.EnemyCount(lc.EnemyCount))

	if mode == ModeSkies {
		l.placePlatforms(cfg, seed)
	}

	return l
}

// rollTiles lays out ground, obstacle and hole tiles column by column.
func rollTiles(rng *rand.Rand, lc config.PlatformerLevel, diff *config.DifficultyManager) []TileKind {
	count := lc.ScreenTiles * lc.Screens
	holeChance := diff.HoleChance(lc.HoleChance)
	obstacleChance := diff.ObstacleChance(lc.ObstacleChance)

	tiles := make([]TileKind, 0, count)
	for len(tiles) < count {
		if len(tiles) < lc.SafeTiles {
			tiles = append(tiles, TileGround)
			continue
		}

		r := rng.Float64()
		switch {
		case r < holeChance:
			n := lc.MinHoleLen + rng.Intn(lc.MaxHoleLen-lc.MinHoleLen+1)
			for k := 0; k < n && len(tiles) < count; k++ {
				tiles = append(tiles, TileHole)
			}
		case r < holeChance+obstacleChance:
			tiles = append(tiles, TileObstacle)
		default:
			tiles = append(tiles, TileGround)
		}
	}
	return tiles
}

// placeEnemies puts enemies on distinct ground tiles, preferring tiles past
// the first screen so the start area stays clear.
func (l *Level) placeEnemies(rng *rand.Rand, cfg config.PlatformerConfig, count int) {
	t := l.TileSize
	screenW := cfg.Level.ScreenTiles * t

	var ground, far []int
	for i, kind := range l.Tiles {
		if kind != TileGround {
			continue
		}
		ground = append(ground, i)
		if i > cfg.Level.ScreenTiles {
			far = append(far, i)
		}
	}
	candidates := far
	if len(candidates) == 0 {
		candidates = ground
	}

	count = min(count, len(candidates))
	for _, k := range rng.Perm(len(candidates))[:count] {
		x := candidates[k] * t
		dir := -1
		if x <= screenW && rng.Intn(2) == 1 {
			dir = 1
		}
		l.Enemies = append(l.Enemies, Enemy{
			ID:    l.newID(),
			Box:   core.NewRect(x, l.GroundY-t, t, t),
			Dir:   dir,
			Speed: cfg.Physics.EnemySpeed,
		})
	}
}

// placePlatforms lays floating platforms at regular intervals with heights
// taken from 1-D Perlin noise, and a star above each one.
func (l *Level) placePlatforms(cfg config.PlatformerConfig, seed int64) {
	lc := cfg.Level
	t := l.TileSize
	if lc.PlatformWidth <= 0 || lc.PlatformSpacing <= 0 {
		return
	}

	noise := perlin.NewPerlin(2, 2, 3, seed)
	riseRange := float64(lc.PlatformMaxRise - lc.PlatformMinRise)

	for start := lc.SafeTiles; start+lc.PlatformWidth <= len(l.Tiles); start += lc.PlatformSpacing {
		n := noise.Noise1D(float64(start) / float64(len(l.Tiles)))
		unit := math.Max(0, math.Min(1, (n+1)/2))
		rise := lc.PlatformMinRise + int(math.Round(unit*riseRange))

		box := core.NewRect(start*t, l.GroundY-rise*t, lc.PlatformWidth*t, t/2)
		l.Platforms = append(l.Platforms, Platform{ID: l.newID(), Box: box})

		cx := box.X + box.W/2
		l.Collectibles = append(l.Collectibles, Collectible{
			ID:     l.newID(),
			Kind:   KindStar,
			Box:    core.NewRect(cx-t/4, box.Y-t+t/4, t/2, t/2),
			Points: cfg.Gameplay.CoinPoints,
		})
	}
}
