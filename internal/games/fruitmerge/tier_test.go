package fruitmerge

import (
	"errors"
	"testing"

	"github.com/vovakirdan/merge-arcade/internal/config"
	"github.com/vovakirdan/merge-arcade/internal/core"
)

func TestDefaultTierTable(t *testing.T) {
	table := DefaultTierTable()

	if table.Len() != TierCount {
		t.Fatalf("Len() = %d, expected %d", table.Len(), TierCount)
	}

	tests := []struct {
		tier   Tier
		radius float64
		score  int
		color  core.Color
	}{
		{Cherry, 20, 1, core.ColorRed},
		{Strawberry, 28, 3, core.ColorBrightRed},
		{Apple, 66, 21, core.ColorGreen},
		{Coconut, 78, 28, core.ColorBrown},
		{Watermelon, 136, 66, core.ColorBlue},
	}

	for _, tt := range tests {
		spec := table.Spec(tt.tier)
		if spec.Radius != tt.radius || spec.Score != tt.score || spec.Color != tt.color {
			t.Errorf("Spec(%s) = %+v, expected radius %v score %d color %v",
				tt.tier, spec, tt.radius, tt.score, tt.color)
		}
	}
}

func TestTierRadiiGrow(t *testing.T) {
	table := DefaultTierTable()
	for tier := Strawberry; tier <= Watermelon; tier++ {
		if table.Spec(tier).Radius <= table.Spec(tier-1).Radius {
			t.Errorf("%s radius %v is not larger than %s radius %v",
				tier, table.Spec(tier).Radius, tier-1, table.Spec(tier-1).Radius)
		}
	}
}

func TestSuccessor(t *testing.T) {
	table := DefaultTierTable()

	for tier := Cherry; tier < Watermelon; tier++ {
		next, ok := table.Successor(tier)
		if !ok || next != tier+1 {
			t.Errorf("Successor(%s) = %s, %v; expected %s, true", tier, next, ok, tier+1)
		}
	}

	if _, ok := table.Successor(Watermelon); ok {
		t.Error("Successor(watermelon) should not exist")
	}
	if table.Terminal() != Watermelon {
		t.Errorf("Terminal() = %s, expected watermelon", table.Terminal())
	}
}

func TestShortLadder(t *testing.T) {
	tiers := config.DefaultFruitMergeConfig().Tiers[:3]
	table, err := NewTierTable(tiers)
	if err != nil {
		t.Fatalf("NewTierTable() error = %v", err)
	}

	if table.Terminal() != Orange {
		t.Errorf("Terminal() = %s, expected orange", table.Terminal())
	}
	if _, ok := table.Successor(Orange); ok {
		t.Error("Successor(orange) should not exist in a three-tier ladder")
	}
	if table.Has(Lemon) {
		t.Error("Has(lemon) should be false")
	}
	if table.MaxRadius() != 36 {
		t.Errorf("MaxRadius() = %v, expected 36", table.MaxRadius())
	}
}

func TestNewTierTableRejects(t *testing.T) {
	good := config.DefaultFruitMergeConfig().Tiers

	outOfOrder := append([]config.TierConfig(nil), good...)
	outOfOrder[0], outOfOrder[1] = outOfOrder[1], outOfOrder[0]

	badColor := append([]config.TierConfig(nil), good...)
	badColor[2].Color = "plaid"

	zeroRadius := append([]config.TierConfig(nil), good...)
	zeroRadius[4].Radius = 0

	// A strawberry indistinguishable from a cherry.
	flat := append([]config.TierConfig(nil), good...)
	flat[1].Radius, flat[1].Score = flat[0].Radius, flat[0].Score

	smallerScore := append([]config.TierConfig(nil), good...)
	smallerScore[6].Score = smallerScore[5].Score - 1

	tests := []struct {
		name  string
		tiers []config.TierConfig
	}{
		{"empty", nil},
		{"out of order", outOfOrder},
		{"unknown color", badColor},
		{"zero radius", zeroRadius},
		{"flat step", flat},
		{"score drops", smallerScore},
		{"too many", append(append([]config.TierConfig(nil), good...), good[0])},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTierTable(tt.tiers)
			if !errors.Is(err, ErrBadTierTable) {
				t.Errorf("NewTierTable() error = %v, expected ErrBadTierTable", err)
			}
		})
	}
}

func TestSpecPanicsOutsideLadder(t *testing.T) {
	table := DefaultTierTable()
	defer func() {
		if recover() == nil {
			t.Error("Spec(tier(11)) should panic")
		}
	}()
	table.Spec(Tier(TierCount))
}

func TestParseTier(t *testing.T) {
	for tier := Cherry; tier <= Watermelon; tier++ {
		got, ok := ParseTier(tier.String())
		if !ok || got != tier {
			t.Errorf("ParseTier(%q) = %s, %v; expected %s, true", tier.String(), got, ok, tier)
		}
	}
	if _, ok := ParseTier("durian"); ok {
		t.Error("ParseTier(durian) should fail")
	}
	if Tier(42).Glyph() != '?' {
		t.Errorf("Tier(42).Glyph() = %q, expected '?'", Tier(42).Glyph())
	}
}
