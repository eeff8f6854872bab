package platformer

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	GroundChar   = '█'
	GrassChar    = '▀'
	ObstacleChar = '▒'
	PlatformChar = '▔'
	EnemyChar    = '▆'
	CoinChar     = 'o'
	StarChar     = '*'
)

// Layout limits. Each tile is drawn as 4 columns by 2 rows.
const (
	hudRows    = 1
	tileCols   = 4
	tileRows   = 2
	MinScreenW = 24
	MinScreenH = 8
)

// viewport maps world units to screen cells.
type viewport struct {
	colUnits int // world units per column
	rowUnits int // world units per row
	camX     int // first visible column
	topRow   int // world row drawn just below the HUD
	w, h     int
}

func (g *Game) viewport(dst *core.Screen) viewport {
	level := g.world.Level()
	v := viewport{
		colUnits: max(1, level.TileSize/tileCols),
		rowUnits: max(1, level.TileSize/tileRows),
		w:        dst.Width(),
		h:        dst.Height(),
	}

	worldRows := core.CeilDiv(level.Height, v.rowUnits)
	v.topRow = worldRows - (v.h - hudRows)

	p := g.world.Player().Box
	center := core.FloorDiv(p.X+p.W/2, v.colUnits)
	levelCols := core.CeilDiv(level.Width, v.colUnits)
	v.camX = core.Clamp(center-v.w/2, 0, max(0, levelCols-v.w))
	return v
}

// cells converts a world rectangle to the screen cells it covers.
func (v viewport) cells(r core.Rect) core.Rect {
	x0 := core.FloorDiv(r.X, v.colUnits) - v.camX
	x1 := core.CeilDiv(r.Right(), v.colUnits) - v.camX
	y0 := core.FloorDiv(r.Y, v.rowUnits) - v.topRow + hudRows
	y1 := core.CeilDiv(r.Bottom(), v.rowUnits) - v.topRow + hudRows
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// fill draws r below the HUD line.
func (v viewport) fill(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	cr := v.cells(r)
	for y := max(cr.Y, hudRows); y < cr.Bottom(); y++ {
		for x := max(cr.X, 0); x < min(cr.Right(), v.w); x++ {
			dst.SetCell(x, y, ch, c)
		}
	}
}

// Render draws the world, the HUD and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}
	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	v := g.viewport(dst)
	level := g.world.Level()
	t := level.TileSize

	for i, kind := range level.Tiles {
		if kind == TileHole {
			continue
		}
		ground := core.NewRect(i*t, level.GroundY, t, level.Height-level.GroundY)
		v.fill(dst, ground, GroundChar, core.ColorBrown)
		v.fill(dst, core.NewRect(ground.X, ground.Y, t, v.rowUnits), GrassChar, core.ColorGreen)
	}
	for _, p := range level.Platforms {
		v.fill(dst, p.Box, PlatformChar, core.ColorCyan)
	}
	for _, o := range level.Obstacles {
		v.fill(dst, o.Box, ObstacleChar, core.ColorGray)
	}
	for _, c := range g.world.Collectibles() {
		if c.Kind == KindStar {
			v.fill(dst, c.Box, StarChar, core.ColorBrightYellow)
		} else {
			v.fill(dst, c.Box, CoinChar, core.ColorYellow)
		}
	}
	for _, e := range g.world.Enemies() {
		v.fill(dst, e.Box, EnemyChar, core.ColorRed)
	}

	playerColor := core.ColorBrightBlue
	if g.hurtFlash > 0 && g.hurtFlash%4 < 2 {
		playerColor = core.ColorBrightRed
	}
	v.fill(dst, g.world.Player().Box, PlayerChar, playerColor)

	g.drawHUD(dst)

	if g.paused {
		drawMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.world.GameOver() {
		drawMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d", g.world.Score()), "R restart  Q quit")
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)
	dst.DrawTextColor(1, 0, fmt.Sprintf("Score: %d  Lives: %d", g.world.Score(), g.world.Lives()), core.ColorBrightWhite)

	title := g.Title()
	dst.DrawTextColor(dst.Width()-len([]rune(title))-1, 0, title, core.ColorGray)
}

// drawMessage draws a bordered box with centered lines in the middle of the screen.
func drawMessage(dst *core.Screen, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	box := core.NewRect(0, 0, width+4, len(lines)+2)
	box.X = (dst.Width() - box.W) / 2
	box.Y = (dst.Height() - box.H) / 2

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)
	for i, l := range lines {
		x := box.X + (box.W-len([]rune(l)))/2
		dst.DrawTextColor(x, box.Y+1+i, l, core.ColorBrightWhite)
	}
}
