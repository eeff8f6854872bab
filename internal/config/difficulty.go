package config

import "math"

// DifficultyManager derives level generation parameters from a difficulty level.
type DifficultyManager struct {
	cfg   DifficultyConfig
	level float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:   cfg,
		level: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetLevel overrides the difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetLevel(level float64) {
	d.level = clampF(level, 0.0, 1.0)
}

// Level returns the current difficulty level.
func (d *DifficultyManager) Level() float64 {
	return d.level
}

// HoleChance returns the per-tile chance of starting a hole.
func (d *DifficultyManager) HoleChance(base float64) float64 {
	return clampF(base+d.level*d.cfg.Scaling.HoleChanceBonus, 0.0, 1.0)
}

// ObstacleChance returns the per-tile chance of placing an obstacle.
func (d *DifficultyManager) ObstacleChance(base float64) float64 {
	return clampF(base+d.level*d.cfg.Scaling.ObstacleChanceBonus, 0.0, 1.0)
}

// EnemyCount returns how many enemies to spawn.
func (d *DifficultyManager) EnemyCount(base int) int {
	return base + int(d.level*float64(d.cfg.Scaling.ExtraEnemies))
}

func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
