// Package config provides YAML-based game configuration loading and
// difficulty management for the platformer.
package config

import (
	"errors"
	"fmt"
)

// PlatformerConfig contains all configuration for the platformer game.
// Distances are integer world units; speeds are world units per tick.
type PlatformerConfig struct {
	Physics    PlatformerPhysics  `yaml:"physics"`
	Level      PlatformerLevel    `yaml:"level"`
	Player     PlatformerPlayer   `yaml:"player"`
	Gameplay   PlatformerGameplay `yaml:"gameplay"`
	Difficulty DifficultyConfig   `yaml:"difficulty"`
}

// PlatformerPhysics defines movement constants.
type PlatformerPhysics struct {
	Gravity      int `yaml:"gravity"`
	JumpForce    int `yaml:"jump_force"` // negative = up
	MaxFallSpeed int `yaml:"max_fall_speed"`
	MoveSpeed    int `yaml:"move_speed"`
	EnemySpeed   int `yaml:"enemy_speed"`
}

// PlatformerLevel defines procedural level generation parameters.
type PlatformerLevel struct {
	TileSize       int     `yaml:"tile_size"`
	WorldHeight    int     `yaml:"world_height"`
	ScreenTiles    int     `yaml:"screen_tiles"` // tiles per screen width
	Screens        int     `yaml:"screens"`
	SafeTiles      int     `yaml:"safe_tiles"` // leading tiles that are always ground
	HoleChance     float64 `yaml:"hole_chance"`
	ObstacleChance float64 `yaml:"obstacle_chance"`
	CoinChance     float64 `yaml:"coin_chance"`
	MinHoleLen     int     `yaml:"min_hole_len"`
	MaxHoleLen     int     `yaml:"max_hole_len"`
	EnemyCount     int     `yaml:"enemy_count"`

	// Floating platforms, only laid out in skies mode.
	PlatformWidth   int `yaml:"platform_width"`    // in tiles
	PlatformSpacing int `yaml:"platform_spacing"`  // tiles between platform starts
	PlatformMinRise int `yaml:"platform_min_rise"` // tiles above ground
	PlatformMaxRise int `yaml:"platform_max_rise"`
}

// PlatformerPlayer defines the player's hitbox and start position.
type PlatformerPlayer struct {
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlatformerGameplay defines scoring and lives.
type PlatformerGameplay struct {
	Lives          int `yaml:"lives"`
	CoinPoints     int `yaml:"coin_points"`
	StompPoints    int `yaml:"stomp_points"`
	HurtFlashTicks int `yaml:"hurt_flash_ticks"`
}

// LevelWidth returns the width of the generated level in world units.
func (c PlatformerConfig) LevelWidth() int {
	return c.Level.TileSize * c.Level.ScreenTiles * c.Level.Screens
}

// GroundY returns the y-coordinate of the ground line.
func (c PlatformerConfig) GroundY() int {
	return c.Level.WorldHeight - c.Level.TileSize
}

// Validate checks that the configuration can drive a simulation.
func (c PlatformerConfig) Validate() error {
	var errs []error

	positive := []struct {
		name string
		val  int
	}{
		{"physics.gravity", c.Physics.Gravity},
		{"physics.max_fall_speed", c.Physics.MaxFallSpeed},
		{"physics.move_speed", c.Physics.MoveSpeed},
		{"physics.enemy_speed", c.Physics.EnemySpeed},
		{"level.tile_size", c.Level.TileSize},
		{"level.world_height", c.Level.WorldHeight},
		{"level.screen_tiles", c.Level.ScreenTiles},
		{"level.screens", c.Level.Screens},
		{"level.min_hole_len", c.Level.MinHoleLen},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"gameplay.lives", c.Gameplay.Lives},
	}
	for _, p := range positive {
		if p.val <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", p.name, p.val))
		}
	}

	if c.Physics.JumpForce >= 0 {
		errs = append(errs, fmt.Errorf("physics.jump_force must be negative, got %d", c.Physics.JumpForce))
	}
	if c.Level.MaxHoleLen < c.Level.MinHoleLen {
		errs = append(errs, fmt.Errorf("level.max_hole_len %d is below min_hole_len %d", c.Level.MaxHoleLen, c.Level.MinHoleLen))
	}
	for _, ch := range []struct {
		name string
		val  float64
	}{
		{"level.hole_chance", c.Level.HoleChance},
		{"level.obstacle_chance", c.Level.ObstacleChance},
		{"level.coin_chance", c.Level.CoinChance},
	} {
		if ch.val < 0 || ch.val > 1 {
			errs = append(errs, fmt.Errorf("%s must be within [0, 1], got %g", ch.name, ch.val))
		}
	}
	if c.Player.StartY+c.Player.Height > c.GroundY() {
		errs = append(errs, fmt.Errorf("player.start_y %d puts the player below the ground line %d", c.Player.StartY, c.GroundY()))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid platformer config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyConfig defines how a difficulty level shapes level generation.
type DifficultyConfig struct {
	InitialLevel float64       `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Scaling      ScalingConfig `yaml:"scaling"`
}

// ScalingConfig defines the magnitude of difficulty changes at level 1.0.
type ScalingConfig struct {
	HoleChanceBonus     float64 `yaml:"hole_chance_bonus"`
	ObstacleChanceBonus float64 `yaml:"obstacle_chance_bonus"`
	ExtraEnemies        int     `yaml:"extra_enemies"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown values map to "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
