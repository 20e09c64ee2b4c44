package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultFruitMergeConfigValid(t *testing.T) {
	cfg := DefaultFruitMergeConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config should be valid: %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	cfg, err := LoadFruitMerge("")
	if err != nil {
		t.Fatalf("LoadFruitMerge() failed: %v", err)
	}
	def := DefaultFruitMergeConfig()

	if len(cfg.Tiers) != len(def.Tiers) {
		t.Fatalf("Expected %d tiers, got %d", len(def.Tiers), len(cfg.Tiers))
	}
	for i := range def.Tiers {
		if cfg.Tiers[i] != def.Tiers[i] {
			t.Errorf("tiers[%d] = %+v, expected %+v", i, cfg.Tiers[i], def.Tiers[i])
		}
	}
	if cfg.Container != def.Container {
		t.Errorf("Container = %+v, expected %+v", cfg.Container, def.Container)
	}
	if math.Abs(cfg.Physics.Step-def.Physics.Step) > 1e-6 {
		t.Errorf("Physics.Step = %f, expected %f", cfg.Physics.Step, def.Physics.Step)
	}
	if cfg.Scoring.TerminalBonusWeight != def.Scoring.TerminalBonusWeight {
		t.Errorf("TerminalBonusWeight = %d, expected %d", cfg.Scoring.TerminalBonusWeight, def.Scoring.TerminalBonusWeight)
	}
}

func TestLoadFruitMergeCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	yamlData := strings.Join([]string{
		"container: {left: 0, right: 400, top: 100, bottom: 500, spawn_y: 50}",
		"fruit: {mass: 1}",
		"physics: {gravity: 500, step: 0.02}",
		"tiers:",
		"  - {name: cherry, radius: 10, score: 1, color: red}",
		"  - {name: strawberry, radius: 20, score: 2, color: blue}",
		"scoring: {terminal_bonus_weight: 3}",
	}, "\n")
	if err := os.WriteFile(path, []byte(yamlData), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFruitMerge(path)
	if err != nil {
		t.Fatalf("LoadFruitMerge() failed: %v", err)
	}
	if len(cfg.Tiers) != 2 {
		t.Errorf("Expected 2 tiers, got %d", len(cfg.Tiers))
	}
	if cfg.Physics.Gravity != 500 {
		t.Errorf("Gravity = %f, expected 500", cfg.Physics.Gravity)
	}
}

func TestLoadFruitMergeMissingFile(t *testing.T) {
	_, err := LoadFruitMerge(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("Expected error for missing custom config")
	}
}

func TestLoadFruitMergeInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("container: {left: 10, right: 5}"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFruitMerge(path)
	if err == nil {
		t.Error("Expected validation error for inverted container")
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *FruitMergeConfig)
	}{
		{"zero step", func(c *FruitMergeConfig) { c.Physics.Step = 0 }},
		{"no tiers", func(c *FruitMergeConfig) { c.Tiers = nil }},
		{"negative radius", func(c *FruitMergeConfig) { c.Tiers[0].Radius = -1 }},
		{"zero score", func(c *FruitMergeConfig) { c.Tiers[3].Score = 0 }},
		{"shrinking radius", func(c *FruitMergeConfig) { c.Tiers[2].Radius = 1 }},
		{"radius equal to predecessor", func(c *FruitMergeConfig) { c.Tiers[1].Radius = c.Tiers[0].Radius }},
		{"score equal to predecessor", func(c *FruitMergeConfig) { c.Tiers[1].Score = c.Tiers[0].Score }},
		{"tier wider than container", func(c *FruitMergeConfig) { c.Tiers[10].Radius = 1000 }},
		{"thresholds out of order", func(c *FruitMergeConfig) { c.Progression.Thresholds[1].Rounds = 1 }},
		{"unknown pool", func(c *FruitMergeConfig) { c.Progression.Pool = "lottery" }},
		{"negative bonus", func(c *FruitMergeConfig) { c.Scoring.TerminalBonusWeight = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFruitMergeConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestApplyFruitMergePreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		enabled  bool
		firstAt  int
		lastAt   int
	}{
		{DifficultyNormal, true, 3, 15},
		{DifficultyEasy, true, 6, 30},
		{DifficultyHard, true, 2, 8},
		{DifficultyFixed, false, 3, 15},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultFruitMergeConfig()
			ApplyFruitMergePreset(&cfg, tc.preset)

			if cfg.Progression.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Progression.Enabled, tc.enabled)
			}
			th := cfg.Progression.Thresholds
			if th[0].Rounds != tc.firstAt {
				t.Errorf("first threshold = %d, expected %d", th[0].Rounds, tc.firstAt)
			}
			if th[len(th)-1].Rounds != tc.lastAt {
				t.Errorf("last threshold = %d, expected %d", th[len(th)-1].Rounds, tc.lastAt)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset(""); !ok || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v; expected normal", p, ok)
	}
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(\"hard\") = %q, %v", p, ok)
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("ParsePreset should reject unknown presets")
	}
}

func TestGetDefaultYAML(t *testing.T) {
	for _, id := range []string{"fruitmerge", "fruitmerge_classic"} {
		if len(GetDefaultYAML(id)) == 0 {
			t.Errorf("GetDefaultYAML(%q) is empty", id)
		}
	}
	if GetDefaultYAML("snake") != nil {
		t.Error("GetDefaultYAML should return nil for unknown games")
	}
}
