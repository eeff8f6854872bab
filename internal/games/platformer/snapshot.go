package platformer

// Snapshot contains the complete mutable world state.
// Uses primitive types only for stable comparison and serialization.
type Snapshot struct {
	Tick     int
	Score    int
	Lives    int
	GameOver bool

	PlayerX, PlayerY   int
	PlayerVX, PlayerVY int
	Grounded           bool
	Held               [3]bool // left, right, jump

	// Each enemy is 4 ints: ID, X, Y, Dir
	EnemyData []int

	// Remaining collectible IDs in level order
	CollectibleIDs []int
}

// Snapshot returns the current world state as a Snapshot.
func (w *World) Snapshot() Snapshot {
	enemyData := make([]int, 0, len(w.enemies)*4)
	for _, e := range w.enemies {
		enemyData = append(enemyData, int(e.ID), e.Box.X, e.Box.Y, e.Dir)
	}

	ids := make([]int, 0, len(w.collectibles))
	for _, c := range w.collectibles {
		ids = append(ids, int(c.ID))
	}

	return Snapshot{
		Tick:           w.tick,
		Score:          w.score,
		Lives:          w.lives,
		GameOver:       w.gameOver,
		PlayerX:        w.player.Box.X,
		PlayerY:        w.player.Box.Y,
		PlayerVX:       w.player.VX,
		PlayerVY:       w.player.VY,
		Grounded:       w.player.Grounded,
		Held:           w.held,
		EnemyData:      enemyData,
		CollectibleIDs: ids,
	}
}

// Snapshot returns the world snapshot, or the zero Snapshot before Reset.
func (g *Game) Snapshot() Snapshot {
	if g.world == nil {
		return Snapshot{}
	}
	return g.world.Snapshot()
}
