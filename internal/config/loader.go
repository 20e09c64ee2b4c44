package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFruitMerge loads fruit merge configuration.
// Search order: customPath -> ~/.arcade/configs/fruitmerge.yaml -> ./configs/fruitmerge.yaml -> embedded default
func LoadFruitMerge(customPath string) (FruitMergeConfig, error) {
	var cfg FruitMergeConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("fruitmerge.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	cfg = FruitMergeConfig{}
	if data, err := os.ReadFile("configs/fruitmerge.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg = FruitMergeConfig{}
	if err := yaml.Unmarshal(defaultFruitMergeYAML, &cfg); err != nil {
		return DefaultFruitMergeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyFruitMergePreset modifies the config based on a difficulty preset.
func ApplyFruitMergePreset(cfg *FruitMergeConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Progression.Enabled = false
		return
	}

	cfg.Progression.Enabled = true
	scale := ThresholdScaleForPreset(preset)
	for i := range cfg.Progression.Thresholds {
		scaled := int(math.Round(float64(cfg.Progression.Thresholds[i].Rounds) * scale))
		if scaled < 1 {
			scaled = 1
		}
		cfg.Progression.Thresholds[i].Rounds = scaled
	}
}

// Validate checks geometry and the tier ladder for values the game cannot run with.
// Tier names are checked by the game itself, which owns the tier enumeration.
func (c FruitMergeConfig) Validate() error {
	ct := c.Container
	if ct.Right <= ct.Left {
		return fmt.Errorf("container: right (%g) must be greater than left (%g)", ct.Right, ct.Left)
	}
	if ct.Bottom <= ct.Top {
		return fmt.Errorf("container: bottom (%g) must be greater than top (%g)", ct.Bottom, ct.Top)
	}
	if c.Physics.Step <= 0 {
		return fmt.Errorf("physics: step must be positive, got %g", c.Physics.Step)
	}
	if c.Fruit.Mass <= 0 {
		return fmt.Errorf("fruit: mass must be positive, got %g", c.Fruit.Mass)
	}
	if len(c.Tiers) == 0 {
		return fmt.Errorf("tiers: at least one tier is required")
	}

	for i, t := range c.Tiers {
		if t.Name == "" {
			return fmt.Errorf("tiers[%d]: name is required", i)
		}
		if t.Radius <= 0 {
			return fmt.Errorf("tiers[%d] %s: radius must be positive, got %g", i, t.Name, t.Radius)
		}
		if t.Score <= 0 {
			return fmt.Errorf("tiers[%d] %s: score must be positive, got %d", i, t.Name, t.Score)
		}
		if 2*t.Radius > ct.Width() {
			return fmt.Errorf("tiers[%d] %s: diameter %g does not fit container width %g", i, t.Name, 2*t.Radius, ct.Width())
		}
		if i == 0 {
			continue
		}
		prev := c.Tiers[i-1]
		if t.Radius <= prev.Radius || t.Score <= prev.Score {
			return fmt.Errorf("tiers[%d] %s: radius and score must increase", i, t.Name)
		}
	}

	for i := 1; i < len(c.Progression.Thresholds); i++ {
		if c.Progression.Thresholds[i].Rounds < c.Progression.Thresholds[i-1].Rounds {
			return fmt.Errorf("progression: thresholds[%d] unlocks before thresholds[%d]", i, i-1)
		}
	}

	switch c.Progression.Pool {
	case "", PoolProgressive, PoolClassic:
	default:
		return fmt.Errorf("progression: unknown pool %q", c.Progression.Pool)
	}

	if c.Scoring.TerminalBonusWeight < 0 {
		return fmt.Errorf("scoring: terminal_bonus_weight must not be negative")
	}
	return nil
}
