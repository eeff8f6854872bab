package platformer

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// flatLevel returns a level that is ground everywhere with no entities.
func flatLevel(cfg config.PlatformerConfig) *Level {
	return &Level{
		Mode:     ModeClassic,
		TileSize: cfg.Level.TileSize,
		Width:    cfg.LevelWidth(),
		Height:   cfg.Level.WorldHeight,
		GroundY:  cfg.GroundY(),
		Tiles:    make([]TileKind, cfg.Level.ScreenTiles*cfg.Level.Screens),
	}
}

func (l *Level) addHole(from, to int) EntityID {
	for i := from; i <= to; i++ {
		l.Tiles[i] = TileHole
	}
	id := l.newID()
	l.Holes = append(l.Holes, Hole{ID: id, X0: from * l.TileSize, X1: (to + 1) * l.TileSize, Y: l.GroundY})
	return id
}

func (l *Level) addObstacle(tile int) EntityID {
	l.Tiles[tile] = TileObstacle
	id := l.newID()
	l.Obstacles = append(l.Obstacles, Obstacle{ID: id, Box: core.NewRect(tile*l.TileSize, l.GroundY-l.TileSize, l.TileSize, l.TileSize)})
	return id
}

func (l *Level) addCoin(x, y int) EntityID {
	id := l.newID()
	l.Collectibles = append(l.Collectibles, Collectible{ID: id, Kind: KindCoin, Box: core.NewRect(x, y, 20, 20), Points: 10})
	return id
}

func (l *Level) addEnemy(x, dir int) EntityID {
	id := l.newID()
	l.Enemies = append(l.Enemies, Enemy{ID: id, Box: core.NewRect(x, l.GroundY-l.TileSize, l.TileSize, l.TileSize), Dir: dir, Speed: 2})
	return id
}

func (w *World) place(x, y, vy int) {
	w.player.Box = w.player.Box.MoveTo(x, y)
	w.player.VY = vy
	w.player.Grounded = false
}

func TestRestingPlayerStaysPut(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	w := NewWorld(cfg, flatLevel(cfg))
	start := w.Player()

	for i := 0; i < 10; i++ {
		w.Update(Input{})
	}

	p := w.Player()
	if p != start {
		t.Errorf("player = %+v, want unchanged %+v", p, start)
	}
	if !p.Grounded {
		t.Error("player should stay grounded")
	}
	if w.Lives() != 3 || w.Score() != 0 {
		t.Errorf("lives/score = %d/%d, want 3/0", w.Lives(), w.Score())
	}
	if w.Tick() != 10 {
		t.Errorf("Tick() = %d, want 10", w.Tick())
	}
}

func TestFallSpeedIsClamped(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	w := NewWorld(cfg, flatLevel(cfg))
	w.place(1000, 0, 0)

	sawMax := false
	for i := 0; i < 60; i++ {
		w.Update(Input{})
		vy := w.Player().VY
		if vy > cfg.Physics.MaxFallSpeed {
			t.Fatalf("tick %d: vy = %d exceeds max fall speed %d", i+1, vy, cfg.Physics.MaxFallSpeed)
		}
		if vy == cfg.Physics.MaxFallSpeed {
			sawMax = true
		}
	}
	if !sawMax {
		t.Error("player never reached max fall speed")
	}
	if p := w.Player(); !p.Grounded || p.Box.Y != 520 {
		t.Errorf("player should have landed at y=520, got y=%d grounded=%v", p.Box.Y, p.Grounded)
	}
}

func TestJumpAppliesOncePerPress(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	w := NewWorld(cfg, flatLevel(cfg))
	hold := Input{Jump: true}

	w.Update(hold)
	p := w.Player()
	if p.VY != cfg.Physics.JumpForce+cfg.Physics.Gravity {
		t.Fatalf("vy after jump tick = %d, want %d", p.VY, cfg.Physics.JumpForce+cfg.Physics.Gravity)
	}
	if p.Grounded {
		t.Fatal("player should be airborne after jumping")
	}
	if p.Box.Y != 506 {
		t.Errorf("y after jump tick = %d, want 506", p.Box.Y)
	}

	for tick := 2; tick <= 28; tick++ {
		w.Update(hold)
		p := w.Player()
		if p.Grounded {
			t.Fatalf("tick %d: landed too early", tick)
		}
		if want := cfg.Physics.JumpForce + tick; p.VY != want {
			t.Fatalf("tick %d: vy = %d, want %d (jump reapplied?)", tick, p.VY, want)
		}
	}

	w.Update(hold)
	if p := w.Player(); !p.Grounded || p.Box.Y != 520 {
		t.Fatalf("tick 29: want landed at 520, got y=%d grounded=%v", p.Box.Y, p.Grounded)
	}

	// Still holding: no new press edge, no new jump.
	for i := 0; i < 10; i++ {
		w.Update(hold)
	}
	w.OnKeyDown(KeyJump) // auto-repeat without a release
	if p := w.Player(); !p.Grounded || p.VY != 0 {
		t.Errorf("held jump must not reapply: vy=%d grounded=%v", p.VY, p.Grounded)
	}

	w.Update(Input{})
	w.Update(hold)
	if p := w.Player(); p.VY != cfg.Physics.JumpForce+cfg.Physics.Gravity {
		t.Errorf("fresh press should jump again, vy = %d", p.VY)
	}
}

func TestJumpRequiresGround(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	w := NewWorld(cfg, flatLevel(cfg))
	w.place(1000, 300, 3)

	w.OnKeyDown(KeyJump)
	if p := w.Player(); p.VY != 3 {
		t.Errorf("airborne jump changed vy to %d", p.VY)
	}
}

func TestHorizontalMovement(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	w := NewWorld(cfg, flatLevel(cfg))

	steps := []struct {
		name  string
		in    Input
		wantV int
		wantX int
	}{
		{"press right", Input{Right: true}, 5, 105},
		{"add left", Input{Left: true, Right: true}, -5, 100},
		{"release left", Input{Right: true}, 5, 105},
		{"release right", Input{}, 0, 105},
		{"press left", Input{Left: true}, -5, 100},
		{"swap to right", Input{Right: true}, 5, 105},
	}

	for _, s := range steps {
		w.Update(s.in)
		p := w.Player()
		if p.VX != s.wantV || p.Box.X != s.wantX {
			t.Errorf("%s: vx=%d x=%d, want vx=%d x=%d", s.name, p.VX, p.Box.X, s.wantV, s.wantX)
		}
	}
}

func TestKeyUpHonorsOtherHeldKey(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	w := NewWorld(cfg, flatLevel(cfg))

	w.OnKeyDown(KeyLeft)
	w.OnKeyDown(KeyRight)
	w.OnKeyUp(KeyRight)
	if vx := w.Player().VX; vx != -5 {
		t.Errorf("vx = %d after releasing right with left held, want -5", vx)
	}
	w.OnKeyUp(KeyLeft)
	if vx := w.Player().VX; vx != 0 {
		t.Errorf("vx = %d after releasing both, want 0", vx)
	}
	if w.Held() != (Input{}) {
		t.Errorf("Held() = %+v, want nothing held", w.Held())
	}
}

func TestPlayerStaysInsideLevel(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	w := NewWorld(cfg, flatLevel(cfg))

	w.place(2, 520, 0)
	w.Update(Input{Left: true})
	if x := w.Player().Box.X; x != 0 {
		t.Errorf("left clamp: x = %d, want 0", x)
	}

	w.Update(Input{})
	w.place(2358, 520, 0)
	w.Update(Input{Right: true})
	if x := w.Player().Box.X; x != cfg.LevelWidth()-cfg.Player.Width {
		t.Errorf("right clamp: x = %d, want %d", x, cfg.LevelWidth()-cfg.Player.Width)
	}
}

func TestHazardRespawnsPlayer(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	level := flatLevel(cfg)
	level.addHole(6, 7) // [240, 320)
	w := NewWorld(cfg, level)

	var ev Events
	ticks := 0
	for ev.HazardHits == 0 && ticks < 100 {
		ev = w.Update(Input{Right: true})
		ticks++
	}

	// The right edge first passes x=240 when x reaches 205.
	if ticks != 21 {
		t.Errorf("hazard after %d ticks, want 21", ticks)
	}
	if !ev.LivesChanged || !ev.Respawned() || ev.DamageHits != 0 {
		t.Errorf("events = %+v, want a single hazard respawn", ev)
	}
	if w.Lives() != 2 {
		t.Errorf("lives = %d, want 2", w.Lives())
	}

	p := w.Player()
	if p.Box.X != cfg.Player.StartX || p.Box.Y != cfg.Player.StartY {
		t.Errorf("respawn at (%d,%d), want (%d,%d)", p.Box.X, p.Box.Y, cfg.Player.StartX, cfg.Player.StartY)
	}
	if p.VX != 0 || p.VY != 0 {
		t.Errorf("respawn velocity = (%d,%d), want (0,0)", p.VX, p.VY)
	}
	if !p.Grounded {
		t.Error("respawned player should be grounded")
	}

	// Holding through the respawn does not resume movement.
	w.Update(Input{Right: true})
	if x := w.Player().Box.X; x != cfg.Player.StartX {
		t.Errorf("x = %d after respawn while held, want %d", x, cfg.Player.StartX)
	}
	w.Update(Input{})
	w.Update(Input{Right: true})
	if x := w.Player().Box.X; x != cfg.Player.StartX+5 {
		t.Errorf("x = %d after a new press, want %d", x, cfg.Player.StartX+5)
	}
}

func TestHazardRequiresOverlapAndDepth(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()

	tests := []struct {
		name   string
		x, y   int
		hazard bool
	}{
		{"standing over hole", 250, 520, true},
		{"edge touching hole", 200, 520, false},
		{"past hole", 320, 520, false},
		{"jumping over hole", 250, 300, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			level := flatLevel(cfg)
			level.addHole(6, 7)
			w := NewWorld(cfg, level)
			w.place(tc.x, tc.y, 0)

			ev := w.Update(Input{})
			if got := ev.HazardHits > 0; got != tc.hazard {
				t.Errorf("hazard = %v, want %v", got, tc.hazard)
			}
		})
	}
}

func TestGameOverIsAbsorbing(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	cfg.Gameplay.Lives = 1
	level := flatLevel(cfg)
	level.addHole(6, 7)
	level.addEnemy(2000, -1)
	level.addCoin(1500, 530)
	w := NewWorld(cfg, level)
	w.place(250, 520, 0)

	ev := w.Update(Input{})
	if w.Lives() != 0 {
		t.Fatalf("lives = %d, want 0", w.Lives())
	}
	if !w.GameOver() || !ev.GameOver {
		t.Fatal("game over should trigger on the same tick")
	}

	frozen := w.Snapshot()
	inputs := []Input{{}, {Left: true}, {Right: true, Jump: true}, {Jump: true}}
	for i := 0; i < 20; i++ {
		w.OnKeyDown(KeyRight)
		w.OnKeyUp(KeyLeft)
		ev := w.Update(inputs[i%len(inputs)])
		if !reflect.DeepEqual(ev, Events{}) {
			t.Fatalf("update %d after game over returned events %+v", i, ev)
		}
	}
	if got := w.Snapshot(); !reflect.DeepEqual(got, frozen) {
		t.Errorf("state changed after game over:\n got %+v\nwant %+v", got, frozen)
	}
}

func TestLivesNeverNegative(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	w := NewWorld(cfg, flatLevel(cfg))
	w.lives = 0

	var ev Events
	w.loseLife(&ev)
	if w.Lives() != 0 {
		t.Errorf("lives = %d, want floor at 0", w.Lives())
	}
}

func TestObstacleBlocksLeadingCorner(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()

	tests := []struct {
		name  string
		x, y  int
		in    Input
		ticks int
		wantX int
	}{
		{"walking into obstacle", 160, 520, Input{Right: true}, 10, 160},
		{"overlap from the right is not a leading corner", 230, 520, Input{Left: true}, 1, 225},
		{"pushed back once the corner is reached", 210, 520, Input{Left: true}, 3, 205},
		{"airborne above obstacle", 160, 300, Input{Right: true}, 1, 165},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			level := flatLevel(cfg)
			level.addObstacle(5) // [200, 240) x [520, 560)
			w := NewWorld(cfg, level)
			w.place(tc.x, tc.y, 0)

			for i := 0; i < tc.ticks; i++ {
				w.Update(tc.in)
			}
			if x := w.Player().Box.X; x != tc.wantX {
				t.Errorf("x = %d, want %d", x, tc.wantX)
			}
		})
	}
}

func TestCollectiblesScoreExactlyOnce(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	level := flatLevel(cfg)
	a := level.addCoin(110, 530)
	b := level.addCoin(120, 530)
	far := level.addCoin(1000, 530)
	w := NewWorld(cfg, level)

	ev := w.Update(Input{})
	if ev.CoinsCollected != 2 || w.Score() != 20 {
		t.Fatalf("collected %d coins, score %d; want 2 coins, 20 points", ev.CoinsCollected, w.Score())
	}
	if !reflect.DeepEqual(ev.Removed, []EntityID{a, b}) {
		t.Errorf("Removed = %v, want [%d %d]", ev.Removed, a, b)
	}
	if got := w.Collectibles(); len(got) != 1 || got[0].ID != far {
		t.Errorf("remaining collectibles = %+v, want only %d", got, far)
	}

	for i := 0; i < 20; i++ {
		w.Update(Input{})
	}
	if w.Score() != 20 {
		t.Errorf("score = %d after standing still, want 20", w.Score())
	}
	if len(level.Collectibles) != 3 {
		t.Error("world must not modify the level's collectibles")
	}
}

func TestCollectibleAnchorUsesClosedBox(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"inside", 110, 530, true},
		{"bottom-right edge", 140, 560, true},
		{"top-left edge", 100, 520, true},
		{"just right", 141, 530, false},
		{"just above", 110, 519, false},
		{"box overlaps but anchor outside", 90, 530, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			level := flatLevel(cfg)
			level.addCoin(tc.x, tc.y)
			w := NewWorld(cfg, level)

			ev := w.Update(Input{})
			if got := ev.CoinsCollected == 1; got != tc.want {
				t.Errorf("collected = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestEnemyReversesAtLevelBounds(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()

	tests := []struct {
		name    string
		x, dir  int
		wantX   int
		wantDir int
	}{
		{"would cross right bound", 2359, 1, 2357, -1},
		{"lands on right bound", 2358, 1, 2360, 1},
		{"would cross left bound", 1, -1, 3, 1},
		{"lands on left bound", 2, -1, 0, -1},
		{"open ground", 1000, 1, 1002, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			level := flatLevel(cfg)
			level.addEnemy(tc.x, tc.dir)
			w := NewWorld(cfg, level)
			w.place(600, 520, 0)

			w.Update(Input{})
			e := w.Enemies()[0]
			if e.Box.X != tc.wantX || e.Dir != tc.wantDir {
				t.Errorf("enemy x=%d dir=%d, want x=%d dir=%d", e.Box.X, e.Dir, tc.wantX, tc.wantDir)
			}
		})
	}
}

func TestEnemyDirectionChangesOnlyAtBounds(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	cfg.Gameplay.Lives = 1 << 20
	level := flatLevel(cfg)
	level.addEnemy(2300, 1)
	w := NewWorld(cfg, level)

	flips := 0
	for i := 0; i < 3000; i++ {
		before := w.Enemies()[0]
		w.Update(Input{})
		after := w.Enemies()[0]

		next := before.Box.X + before.Dir*before.Speed
		wantFlip := next < 0 || next+before.Box.W > level.Width
		if gotFlip := after.Dir != before.Dir; gotFlip != wantFlip {
			t.Fatalf("tick %d: flip=%v at x=%d dir=%d, want flip=%v", i+1, gotFlip, before.Box.X, before.Dir, wantFlip)
		}
		if after.Box.X < 0 || after.Box.Right() > level.Width {
			t.Fatalf("tick %d: enemy left the level at x=%d", i+1, after.Box.X)
		}
		if wantFlip {
			flips++
		}
	}
	if flips < 2 {
		t.Errorf("expected the enemy to bounce off both bounds, got %d flips", flips)
	}
}

func TestEnemyContactResolution(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()

	tests := []struct {
		name        string
		px, py, pvy int
		ex, edir    int
		stomp       bool
	}{
		{"falling onto enemy", 1000, 480, 5, 1008, 1, true},
		{"grounded, top-left corner", 1000, 520, 0, 1038, -1, false},
		{"grounded, bottom-right corner", 1000, 520, 0, 960, 1, false},
		{"rising into enemy", 1000, 490, -5, 1038, -1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			level := flatLevel(cfg)
			id := level.addEnemy(tc.ex, tc.edir)
			w := NewWorld(cfg, level)
			w.place(tc.px, tc.py, tc.pvy)
			if tc.pvy == 0 {
				w.player.Grounded = true
			}

			ev := w.Update(Input{})

			if tc.stomp {
				if ev.EnemiesStomped != 1 || w.Score() != cfg.Gameplay.StompPoints {
					t.Fatalf("want stomp, got events %+v score %d", ev, w.Score())
				}
				if len(w.Enemies()) != 0 || !reflect.DeepEqual(ev.Removed, []EntityID{id}) {
					t.Errorf("stomped enemy should be removed, enemies=%v removed=%v", w.Enemies(), ev.Removed)
				}
				if vy := w.Player().VY; vy != -8 {
					t.Errorf("bounce vy = %d, want -8", vy)
				}
				if w.Lives() != cfg.Gameplay.Lives {
					t.Errorf("stomp cost a life")
				}
				return
			}

			if ev.DamageHits != 1 || w.Lives() != cfg.Gameplay.Lives-1 {
				t.Fatalf("want damage, got events %+v lives %d", ev, w.Lives())
			}
			if len(w.Enemies()) != 1 || w.Score() != 0 {
				t.Errorf("damage must keep the enemy and the score, enemies=%d score=%d", len(w.Enemies()), w.Score())
			}
			p := w.Player()
			if p.Box.X != cfg.Player.StartX || p.Box.Y != cfg.Player.StartY || p.VX != 0 || p.VY != 0 {
				t.Errorf("player not reset after damage: %+v", p)
			}
		})
	}
}

func TestBounceTurnsSecondContactIntoDamage(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	level := flatLevel(cfg)
	first := level.addEnemy(1008, 1)
	second := level.addEnemy(1028, 1)
	w := NewWorld(cfg, level)
	w.place(1000, 480, 5)

	ev := w.Update(Input{})

	if ev.EnemiesStomped != 1 || ev.DamageHits != 1 {
		t.Fatalf("events = %+v, want one stomp and one damage", ev)
	}
	if w.Score() != 50 || w.Lives() != 2 {
		t.Errorf("score/lives = %d/%d, want 50/2", w.Score(), w.Lives())
	}
	enemies := w.Enemies()
	if len(enemies) != 1 || enemies[0].ID != second {
		t.Errorf("remaining enemies = %+v, want only %d", enemies, second)
	}
	if !reflect.DeepEqual(ev.Removed, []EntityID{first}) {
		t.Errorf("Removed = %v, want [%d]", ev.Removed, first)
	}
}

func TestLandingOnFloatingPlatform(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	level := flatLevel(cfg)
	level.Mode = ModeSkies
	level.Platforms = []Platform{{ID: level.newID(), Box: core.NewRect(1000, 440, 120, 20)}}

	w := NewWorld(cfg, level)
	w.place(1020, 390, 5)

	w.Update(Input{})
	if w.Player().Grounded {
		t.Fatal("should still be falling after one tick")
	}
	w.Update(Input{})
	p := w.Player()
	if !p.Grounded || p.Box.Bottom() != 440 || p.VY != 0 {
		t.Fatalf("want resting on platform top 440, got bottom=%d vy=%d grounded=%v", p.Box.Bottom(), p.VY, p.Grounded)
	}

	for i := 0; i < 10; i++ {
		w.Update(Input{})
	}
	if p := w.Player(); !p.Grounded || p.Box.Bottom() != 440 {
		t.Errorf("player slipped off platform: %+v", p)
	}

	w.OnKeyDown(KeyJump)
	if vy := w.Player().VY; vy != cfg.Physics.JumpForce {
		t.Errorf("jump from platform: vy = %d, want %d", vy, cfg.Physics.JumpForce)
	}
}

func TestPlatformIsOneWay(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	level := flatLevel(cfg)
	level.Platforms = []Platform{{ID: level.newID(), Box: core.NewRect(1000, 440, 120, 20)}}

	w := NewWorld(cfg, level)
	w.place(1020, 445, -10)

	w.Update(Input{})
	p := w.Player()
	if p.Grounded || p.Box.Y != 436 {
		t.Errorf("rising player should pass through: y=%d grounded=%v", p.Box.Y, p.Grounded)
	}
}

func TestRemoveIndices(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		idx  []int
		want []int
	}{
		{"none", []int{1, 2, 3}, nil, []int{1, 2, 3}},
		{"first", []int{1, 2, 3}, []int{0}, []int{2, 3}},
		{"middle and last", []int{1, 2, 3, 4}, []int{1, 3}, []int{1, 3}},
		{"all", []int{1, 2}, []int{0, 1}, []int{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := removeIndices(append([]int(nil), tc.in...), tc.idx)
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("got %v, want %v", got, tc.want)
				}
			}
		})
	}
}
