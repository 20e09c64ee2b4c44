package config

import (
	_ "embed"
)

//go:embed defaults/fruitmerge.yaml
var defaultFruitMergeYAML []byte

// DefaultFruitMergeConfig returns the default fruit merge configuration.
func DefaultFruitMergeConfig() FruitMergeConfig {
	return FruitMergeConfig{
		Container: ContainerConfig{
			Left:         125,
			Right:        1075,
			Top:          250,
			Bottom:       1150,
			SpawnY:       100,
			WallFriction: 0.99,
		},
		Fruit: FruitBodyConfig{
			Mass:       10,
			Moment:     200,
			Friction:   0.5,
			Elasticity: 0,
		},
		Physics: PhysicsConfig{
			Gravity:    981,
			Step:       1.0 / 60.0,
			Iterations: 10,
		},
		Tiers: []TierConfig{
			{Name: "cherry", Radius: 20, Score: 1, Color: "red"},
			{Name: "strawberry", Radius: 28, Score: 3, Color: "bright_red"},
			{Name: "orange", Radius: 36, Score: 6, Color: "orange"},
			{Name: "lemon", Radius: 45, Score: 10, Color: "bright_yellow"},
			{Name: "peach", Radius: 55, Score: 15, Color: "bright_magenta"},
			{Name: "apple", Radius: 66, Score: 21, Color: "green"},
			{Name: "coconut", Radius: 78, Score: 28, Color: "brown"},
			{Name: "pear", Radius: 91, Score: 36, Color: "bright_green"},
			{Name: "pineapple", Radius: 105, Score: 45, Color: "yellow"},
			{Name: "melon", Radius: 120, Score: 55, Color: "bright_cyan"},
			{Name: "watermelon", Radius: 136, Score: 66, Color: "blue"},
		},
		Progression: ProgressionConfig{
			Enabled: true,
			Pool:    PoolProgressive,
			Thresholds: []ThresholdConfig{
				{Tier: "strawberry", Rounds: 3},
				{Tier: "orange", Rounds: 7},
				{Tier: "lemon", Rounds: 10},
				{Tier: "peach", Rounds: 15},
			},
			ClassicMax: "apple",
		},
		Scoring: ScoringConfig{
			TerminalBonusWeight: 2,
		},
		Cursor: CursorConfig{
			Nudge: 25,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "fruitmerge", "fruitmerge_classic":
		return defaultFruitMergeYAML
	default:
		return nil
	}
}
