package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the built-in platformer configuration.
// It mirrors defaults/platformer.yaml and is used when the embedded file
// cannot be parsed.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PlatformerPhysics{
			Gravity:      1,
			JumpForce:    -15,
			MaxFallSpeed: 20,
			MoveSpeed:    5,
			EnemySpeed:   2,
		},
		Level: PlatformerLevel{
			TileSize:        40,
			WorldHeight:     600,
			ScreenTiles:     20,
			Screens:         3,
			SafeTiles:       4,
			HoleChance:      0.1,
			ObstacleChance:  0.1,
			CoinChance:      0.1,
			MinHoleLen:      2,
			MaxHoleLen:      4,
			EnemyCount:      5,
			PlatformWidth:   3,
			PlatformSpacing: 5,
			PlatformMinRise: 1,
			PlatformMaxRise: 3,
		},
		Player: PlatformerPlayer{
			StartX: 100,
			StartY: 520,
			Width:  40,
			Height: 40,
		},
		Gameplay: PlatformerGameplay{
			Lives:          3,
			CoinPoints:     10,
			StompPoints:    50,
			HurtFlashTicks: 30,
		},
		Difficulty: DifficultyConfig{
			InitialLevel: 0.0,
			Scaling: ScalingConfig{
				HoleChanceBonus:     0.05,
				ObstacleChanceBonus: 0.05,
				ExtraEnemies:        4,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "platformer", "platformer_skies":
		return defaultPlatformerYAML
	default:
		return nil
	}
}
