package fruitmerge

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/merge-arcade/internal/config"
	"github.com/vovakirdan/merge-arcade/internal/core"
)

// Tier is a fruit's rank in the promotion order.
type Tier int

const (
	Cherry Tier = iota
	Strawberry
	Orange
	Lemon
	Peach
	Apple
	Coconut
	Pear
	Pineapple
	Melon
	Watermelon
)

// TierCount is the number of tiers in the full ladder.
const TierCount = int(Watermelon) + 1

var tierNames = [TierCount]string{
	"cherry", "strawberry", "orange", "lemon", "peach", "apple",
	"coconut", "pear", "pineapple", "melon", "watermelon",
}

var tierGlyphs = [TierCount]rune{
	'c', 's', 'o', 'l', 'p', 'a', 'C', 'P', 'I', 'M', 'W',
}

// String returns the config name of the tier.
func (t Tier) String() string {
	if !t.Valid() {
		return fmt.Sprintf("tier(%d)", int(t))
	}
	return tierNames[t]
}

// Glyph returns the single-cell marker used by the terminal renderer.
func (t Tier) Glyph() rune {
	if !t.Valid() {
		return '?'
	}
	return tierGlyphs[t]
}

// Valid reports whether t is part of the enumeration.
func (t Tier) Valid() bool {
	return t >= Cherry && t <= Watermelon
}

// ParseTier looks up a tier by config name.
func ParseTier(name string) (Tier, bool) {
	for i, n := range tierNames {
		if n == name {
			return Tier(i), true
		}
	}
	return 0, false
}

// TierSpec holds the per-tier visual and scoring values.
type TierSpec struct {
	Radius float64
	Color  core.Color
	Score  int
}

// ErrBadTierTable is returned when a tier list cannot form a promotion ladder.
var ErrBadTierTable = errors.New("fruitmerge: bad tier table")

// TierTable maps each tier to its spec. The ladder is linear: tier i merges
// into tier i+1, and the last configured tier is terminal.
type TierTable struct {
	specs []TierSpec
}

// NewTierTable builds a table from config. Tiers must be listed in promotion
// order starting at cherry; a shorter list ends the ladder early.
func NewTierTable(tiers []config.TierConfig) (*TierTable, error) {
	if len(tiers) == 0 || len(tiers) > TierCount {
		return nil, fmt.Errorf("%w: expected 1..%d tiers, got %d", ErrBadTierTable, TierCount, len(tiers))
	}

	specs := make([]TierSpec, len(tiers))
	for i, tc := range tiers {
		want := Tier(i)
		if tc.Name != want.String() {
			return nil, fmt.Errorf("%w: tiers[%d] is %q, expected %q", ErrBadTierTable, i, tc.Name, want)
		}
		color, ok := core.ParseColor(tc.Color)
		if !ok {
			return nil, fmt.Errorf("%w: tiers[%d] %s: unknown color %q", ErrBadTierTable, i, tc.Name, tc.Color)
		}
		if tc.Radius <= 0 || tc.Score <= 0 {
			return nil, fmt.Errorf("%w: tiers[%d] %s: radius and score must be positive", ErrBadTierTable, i, tc.Name)
		}
		if i > 0 && (tc.Radius <= tiers[i-1].Radius || tc.Score <= tiers[i-1].Score) {
			return nil, fmt.Errorf("%w: tiers[%d] %s: radius and score must exceed %s", ErrBadTierTable, i, tc.Name, tiers[i-1].Name)
		}
		specs[i] = TierSpec{Radius: tc.Radius, Color: color, Score: tc.Score}
	}

	return &TierTable{specs: specs}, nil
}

// DefaultTierTable returns the built-in eleven-tier ladder.
func DefaultTierTable() *TierTable {
	t, err := NewTierTable(config.DefaultFruitMergeConfig().Tiers)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of tiers in the ladder.
func (tt *TierTable) Len() int {
	return len(tt.specs)
}

// Has reports whether t is part of this ladder.
func (tt *TierTable) Has(t Tier) bool {
	return t >= 0 && int(t) < len(tt.specs)
}

// Spec returns the spec for a tier. Asking for a tier outside the ladder is
// a programming error and panics.
func (tt *TierTable) Spec(t Tier) TierSpec {
	if !tt.Has(t) {
		panic(fmt.Sprintf("fruitmerge: no spec for %s", t))
	}
	return tt.specs[t]
}

// Successor returns the tier t merges into. The terminal tier has none.
func (tt *TierTable) Successor(t Tier) (Tier, bool) {
	next := t + 1
	if !tt.Has(t) || !tt.Has(next) {
		return 0, false
	}
	return next, true
}

// Terminal returns the last tier of the ladder.
func (tt *TierTable) Terminal() Tier {
	return Tier(len(tt.specs) - 1)
}

// MaxRadius returns the radius of the largest tier.
func (tt *TierTable) MaxRadius() float64 {
	return tt.specs[len(tt.specs)-1].Radius
}
