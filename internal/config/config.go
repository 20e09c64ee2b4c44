// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

// FruitMergeConfig contains all configuration for the fruit merge game.
type FruitMergeConfig struct {
	Container   ContainerConfig   `yaml:"container"`
	Fruit       FruitBodyConfig   `yaml:"fruit"`
	Physics     PhysicsConfig     `yaml:"physics"`
	Tiers       []TierConfig      `yaml:"tiers"`
	Progression ProgressionConfig `yaml:"progression"`
	Scoring     ScoringConfig     `yaml:"scoring"`
	Cursor      CursorConfig      `yaml:"cursor"`
}

// ContainerConfig defines the open-topped box fruits are dropped into.
// World Y grows downward; Top is the height of the side walls' upper ends.
type ContainerConfig struct {
	Left         float64 `yaml:"left"`
	Right        float64 `yaml:"right"`
	Top          float64 `yaml:"top"`
	Bottom       float64 `yaml:"bottom"`
	SpawnY       float64 `yaml:"spawn_y"`
	WallFriction float64 `yaml:"wall_friction"`
}

// Width returns the horizontal extent of the container.
func (c ContainerConfig) Width() float64 {
	return c.Right - c.Left
}

// FruitBodyConfig defines rigid-body parameters shared by every fruit.
type FruitBodyConfig struct {
	Mass       float64 `yaml:"mass"`
	Moment     float64 `yaml:"moment"`
	Friction   float64 `yaml:"friction"`
	Elasticity float64 `yaml:"elasticity"`
}

// PhysicsConfig defines simulation parameters.
type PhysicsConfig struct {
	Gravity    float64 `yaml:"gravity"`
	Step       float64 `yaml:"step"` // Fixed simulation step in seconds
	Iterations uint    `yaml:"iterations"`
}

// TierConfig defines one rung of the promotion ladder.
type TierConfig struct {
	Name   string  `yaml:"name"`
	Radius float64 `yaml:"radius"`
	Score  int     `yaml:"score"`
	Color  string  `yaml:"color"`
}

// ProgressionConfig defines which tiers can be spawned as rounds go by.
type ProgressionConfig struct {
	Enabled    bool              `yaml:"enabled"`
	Pool       string            `yaml:"pool"` // "progressive" or "classic"
	Thresholds []ThresholdConfig `yaml:"thresholds"`
	ClassicMax string            `yaml:"classic_max"` // Highest tier in the classic pool
}

// ThresholdConfig unlocks a tier once the round counter reaches Rounds.
type ThresholdConfig struct {
	Tier   string `yaml:"tier"`
	Rounds int    `yaml:"rounds"`
}

// ScoringConfig defines bonus scoring.
type ScoringConfig struct {
	TerminalBonusWeight int `yaml:"terminal_bonus_weight"`
}

// CursorConfig defines keyboard cursor movement.
type CursorConfig struct {
	Nudge float64 `yaml:"nudge"` // World units per left/right press
}

// Spawn pool kinds.
const (
	PoolProgressive = "progressive"
	PoolClassic     = "classic"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ThresholdScaleForPreset returns the multiplier applied to unlock thresholds.
// Later unlocks mean fewer distinct tiers in play, which makes merging easier.
func ThresholdScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 2.0
	case DifficultyHard:
		return 0.5
	default:
		return 1.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch DifficultyPreset(name) {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(name), true
	default:
		return "", false
	}
}
