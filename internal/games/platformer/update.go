package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// OnKeyDown handles a key press edge.
func (w *World) OnKeyDown(k Key) {
	if w.gameOver || k < 0 || k >= keyCount {
		return
	}
	wasHeld := w.held[k]
	w.held[k] = true

	p := &w.player
	switch k {
	case KeyLeft:
		p.VX = -w.cfg.Physics.MoveSpeed
	case KeyRight:
		p.VX = w.cfg.Physics.MoveSpeed
	case KeyJump:
		if !wasHeld && p.Grounded {
			p.VY = w.cfg.Physics.JumpForce
			p.Grounded = false
		}
	}
}

// OnKeyUp handles a key release edge. Releasing one direction while the other
// is still held keeps moving that way.
func (w *World) OnKeyUp(k Key) {
	if w.gameOver || k < 0 || k >= keyCount {
		return
	}
	w.held[k] = false

	p := &w.player
	switch k {
	case KeyLeft, KeyRight:
		switch {
		case w.held[KeyLeft]:
			p.VX = -w.cfg.Physics.MoveSpeed
		case w.held[KeyRight]:
			p.VX = w.cfg.Physics.MoveSpeed
		default:
			p.VX = 0
		}
	}
}

// applyInput turns the difference between the tracked and the given held
// state into key edges. Releases go first so a direction swap within one
// frame ends up moving the new way.
func (w *World) applyInput(in Input) {
	for k := Key(0); k < keyCount; k++ {
		if w.held[k] && !in.Held(k) {
			w.OnKeyUp(k)
		}
	}
	for k := Key(0); k < keyCount; k++ {
		if !w.held[k] && in.Held(k) {
			w.OnKeyDown(k)
		}
	}
}

// Update advances the world by one tick. A world in game over is frozen:
// Update returns zero Events and changes nothing.
func (w *World) Update(in Input) Events {
	var ev Events
	if w.gameOver {
		return ev
	}

	w.applyInput(in)
	w.tick++

	phys := w.cfg.Physics
	p := &w.player

	// Gravity.
	p.VY += phys.Gravity
	if p.VY > phys.MaxFallSpeed {
		p.VY = phys.MaxFallSpeed
	}

	// Integration.
	prevBottom := p.Box.Bottom()
	p.Box.X += p.VX
	p.Box.Y += p.VY
	if maxX := w.level.Width - p.Box.W; p.Box.X > maxX {
		p.Box.X = maxX
	}
	if p.Box.X < 0 {
		p.Box.X = 0
	}

	// Ground line.
	groundY := w.level.GroundY
	if p.Box.Bottom() >= groundY {
		p.Box.Y = groundY - p.Box.H
		p.VY = 0
		p.Grounded = true
	} else {
		p.Grounded = false
		w.landOnPlatforms(prevBottom)
	}

	// Holes.
	for _, h := range w.level.Holes {
		if p.Box.OverlapsX(h.X0, h.X1) && p.Box.Bottom() >= h.Y {
			ev.HazardHits++
			w.loseLife(&ev)
			break
		}
	}

	// Obstacles: leading corner only.
	for _, o := range w.level.Obstacles {
		if p.Box.ContainsClosed(o.Box.X+1, o.Box.Y+1) {
			p.Box.X -= p.VX
		}
	}

	// Collectibles.
	var taken []int
	for i, c := range w.collectibles {
		if p.Box.ContainsClosed(c.Box.X, c.Box.Y) {
			taken = append(taken, i)
			w.score += c.Points
			ev.CoinsCollected++
			ev.ScoreChanged = true
			ev.Removed = append(ev.Removed, c.ID)
		}
	}
	w.collectibles = removeIndices(w.collectibles, taken)

	// Enemies.
	var stomped []int
	for i := range w.enemies {
		e := &w.enemies[i]
		next := e.Box.X + e.Dir*e.Speed
		if next < 0 || next+e.Box.W > w.level.Width {
			e.Dir = -e.Dir
		}
		e.Box.X += e.Dir * e.Speed

		if !p.Box.ContainsClosed(e.Box.X, e.Box.Y) && !p.Box.ContainsClosed(e.Box.Right(), e.Box.Bottom()) {
			continue
		}
		if p.VY > 0 {
			stomped = append(stomped, i)
			w.score += w.cfg.Gameplay.StompPoints
			p.VY = core.FloorDiv(phys.JumpForce, 2)
			ev.EnemiesStomped++
			ev.ScoreChanged = true
			ev.Removed = append(ev.Removed, e.ID)
		} else {
			ev.DamageHits++
			w.loseLife(&ev)
		}
	}
	w.enemies = removeIndices(w.enemies, stomped)

	if w.lives <= 0 {
		w.gameOver = true
		ev.GameOver = true
	}
	return ev
}

// landOnPlatforms snaps a falling player onto the first floating platform
// whose top it crossed during this tick.
func (w *World) landOnPlatforms(prevBottom int) {
	p := &w.player
	if p.VY < 0 {
		return
	}
	for _, pl := range w.level.Platforms {
		top := pl.Box.Y
		if prevBottom <= top && p.Box.Bottom() >= top && p.Box.OverlapsX(pl.Box.X, pl.Box.Right()) {
			p.Box.Y = top - p.Box.H
			p.VY = 0
			p.Grounded = true
			return
		}
	}
}

func (w *World) loseLife(ev *Events) {
	if w.lives > 0 {
		w.lives--
	}
	ev.LivesChanged = true
	w.respawn()
}

// respawn puts the player back at the start position at rest. Score and held
// keys are kept; movement resumes on the next press.
func (w *World) respawn() {
	pc := w.cfg.Player
	w.player.Box = w.player.Box.MoveTo(pc.StartX, pc.StartY)
	w.player.VX = 0
	w.player.VY = 0
	w.player.Grounded = w.player.Box.Bottom() >= w.level.GroundY
}

// removeIndices drops the elements at the given ascending indices, keeping order.
func removeIndices[T any](s []T, idx []int) []T {
	if len(idx) == 0 {
		return s
	}
	out := s[:0]
	next := 0
	for i, v := range s {
		if next < len(idx) && idx[next] == i {
			next++
			continue
		}
		out = append(out, v)
	}
	clear(s[len(out):])
	return out
}
