package platformer

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// emptyConfig generates a flat level with nothing on it.
func emptyConfig() config.PlatformerConfig {
	cfg := config.DefaultPlatformerConfig()
	cfg.Level.HoleChance = 0
	cfg.Level.ObstacleChance = 0
	cfg.Level.CoinChance = 0
	cfg.Level.EnemyCount = 0
	return cfg
}

func renderGame(g *Game, w, h int) *core.Screen {
	dst := core.NewScreen(w, h)
	g.Render(dst)
	return dst
}

func TestRenderHUDAndGround(t *testing.T) {
	g := NewWithConfig(emptyConfig(), ModeClassic)
	g.Reset(runtimeConfig(1))
	dst := renderGame(g, 80, 24)

	if hud := dst.Row(0); !strings.Contains(hud, "Score: 0  Lives: 3") || !strings.Contains(hud, "Platformer") {
		t.Errorf("HUD row = %q", hud)
	}
	for x := 0; x < 80; x++ {
		if dst.Get(x, 22) != GrassChar || dst.Get(x, 23) != GroundChar {
			t.Fatalf("column %d: ground rows = %q/%q", x, dst.Get(x, 22), dst.Get(x, 23))
		}
	}

	// Start (100, 520) with 10 units per column and 20 per row.
	for _, pos := range [][2]int{{10, 20}, {13, 20}, {10, 21}, {13, 21}} {
		cell := dst.GetCell(pos[0], pos[1])
		if cell.Rune != PlayerChar || cell.Color != core.ColorBrightBlue {
			t.Errorf("cell %v = %+v, want player", pos, cell)
		}
	}
	if dst.Get(14, 20) == PlayerChar || dst.Get(10, 19) == PlayerChar {
		t.Error("player drawn outside its box")
	}
}

func TestRenderCameraFollowsPlayer(t *testing.T) {
	tests := []struct {
		name    string
		x       int
		wantCol int
	}{
		{"left edge", 100, 10},
		{"middle", 1200, 38},
		{"right edge", 2360, 76},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewWithConfig(emptyConfig(), ModeClassic)
			g.Reset(runtimeConfig(1))
			g.World().place(tc.x, 520, 0)

			dst := renderGame(g, 80, 24)
			if dst.Get(tc.wantCol, 20) != PlayerChar {
				t.Errorf("player not at column %d:\n%s", tc.wantCol, dst.Row(20))
			}
			if tc.wantCol > 0 && dst.Get(tc.wantCol-1, 20) == PlayerChar {
				t.Errorf("player starts before column %d:\n%s", tc.wantCol, dst.Row(20))
			}
		})
	}
}

func TestRenderHolesAndPlatforms(t *testing.T) {
	cfg := emptyConfig()
	cfg.Level.HoleChance = 1

	g := NewWithConfig(cfg, ModeSkies)
	g.Reset(runtimeConfig(1))
	dst := renderGame(g, 80, 24)

	// Holes start after the four safe tiles, at column 16.
	if dst.Get(15, 23) != GroundChar || dst.Get(16, 23) != ' ' {
		t.Errorf("ground/hole boundary = %q%q", dst.Get(15, 23), dst.Get(16, 23))
	}
	if !strings.Contains(dst.String(), string(PlatformChar)) {
		t.Error("skies level should show a platform on the first screen")
	}
	if !strings.Contains(dst.String(), string(StarChar)) {
		t.Error("skies level should show a star on the first screen")
	}
}

func TestRenderOverlays(t *testing.T) {
	t.Run("paused", func(t *testing.T) {
		g := NewWithConfig(emptyConfig(), ModeClassic)
		g.Reset(runtimeConfig(1))
		g.Step(frame(core.ActionPause))

		if out := renderGame(g, 80, 24).String(); !strings.Contains(out, "PAUSED") {
			t.Errorf("missing pause box:\n%s", out)
		}
	})

	t.Run("game over", func(t *testing.T) {
		cfg := emptyConfig()
		cfg.Level.HoleChance = 1
		cfg.Gameplay.Lives = 1

		g := NewWithConfig(cfg, ModeClassic)
		g.Reset(runtimeConfig(1))
		for i := 0; i < 20 && !g.State().GameOver; i++ {
			g.Step(frame(core.ActionRight))
		}

		out := renderGame(g, 80, 24).String()
		if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "Lives: 0") {
			t.Errorf("missing game over box:\n%s", out)
		}
	})

	t.Run("too small", func(t *testing.T) {
		g := NewWithConfig(emptyConfig(), ModeClassic)
		g.Reset(runtimeConfig(1))

		if out := renderGame(g, 20, 5).String(); !strings.Contains(out, "Terminal too small") {
			t.Errorf("missing size warning:\n%s", out)
		}
	})
}

func TestRenderHurtFlash(t *testing.T) {
	g := NewWithConfig(emptyConfig(), ModeClassic)
	g.Reset(runtimeConfig(1))
	g.hurtFlash = 2

	if c := renderGame(g, 80, 24).GetCell(10, 20); c.Color != core.ColorBrightBlue {
		t.Errorf("flash phase 0: color %d", c.Color)
	}
	g.hurtFlash = 1
	if c := renderGame(g, 80, 24).GetCell(10, 20); c.Color != core.ColorBrightRed {
		t.Errorf("flash phase 1: color %d, want red", c.Color)
	}
}
