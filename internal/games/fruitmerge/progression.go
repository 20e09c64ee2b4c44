package fruitmerge

import (
	"fmt"
	"math/bits"

	"github.com/vovakirdan/merge-arcade/internal/config"
)

// TierSet is a set of tiers stored as a bitmask.
type TierSet uint32

// NewTierSet returns a set holding the given tiers.
func NewTierSet(tiers ...Tier) TierSet {
	var s TierSet
	for _, t := range tiers {
		s = s.With(t)
	}
	return s
}

// With returns s plus t.
func (s TierSet) With(t Tier) TierSet {
	return s | 1<<uint(t)
}

// Has reports whether t is in s.
func (s TierSet) Has(t Tier) bool {
	return s&(1<<uint(t)) != 0
}

// Contains reports whether every tier of o is in s.
func (s TierSet) Contains(o TierSet) bool {
	return s&o == o
}

// Len returns the number of tiers in s.
func (s TierSet) Len() int {
	return bits.OnesCount32(uint32(s))
}

// Tiers lists the members of s in promotion order.
func (s TierSet) Tiers() []Tier {
	out := make([]Tier, 0, s.Len())
	for t := Cherry; t <= Watermelon; t++ {
		if s.Has(t) {
			out = append(out, t)
		}
	}
	return out
}

// RandomSource is the single random draw the policy needs.
// *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// Threshold unlocks a tier once rounds reaches Rounds.
type Threshold struct {
	Tier   Tier
	Rounds int
}

// ProgressionPolicy decides which tiers may be spawned and picks the next one.
type ProgressionPolicy struct {
	enabled    bool
	classic    bool
	thresholds []Threshold
	pool       TierSet // Fixed pool used in classic mode
}

// DefaultThresholds are the reference unlock points.
func DefaultThresholds() []Threshold {
	return []Threshold{
		{Tier: Strawberry, Rounds: 3},
		{Tier: Orange, Rounds: 7},
		{Tier: Lemon, Rounds: 10},
		{Tier: Peach, Rounds: 15},
	}
}

// NewProgressionPolicy builds a policy from config. Every tier it names must
// exist in the table.
func NewProgressionPolicy(cfg config.ProgressionConfig, table *TierTable) (*ProgressionPolicy, error) {
	p := &ProgressionPolicy{
		enabled: cfg.Enabled,
		classic: cfg.Pool == config.PoolClassic,
	}

	for i, tc := range cfg.Thresholds {
		t, ok := ParseTier(tc.Tier)
		if !ok || !table.Has(t) {
			return nil, fmt.Errorf("fruitmerge: progression thresholds[%d]: unknown tier %q", i, tc.Tier)
		}
		if i > 0 && tc.Rounds < cfg.Thresholds[i-1].Rounds {
			return nil, fmt.Errorf("fruitmerge: progression thresholds[%d]: rounds must not decrease", i)
		}
		p.thresholds = append(p.thresholds, Threshold{Tier: t, Rounds: tc.Rounds})
	}

	if p.classic {
		top := table.Terminal()
		if cfg.ClassicMax != "" {
			t, ok := ParseTier(cfg.ClassicMax)
			if !ok || !table.Has(t) {
				return nil, fmt.Errorf("fruitmerge: progression classic_max: unknown tier %q", cfg.ClassicMax)
			}
			top = t
		}
		for t := Cherry; t <= top; t++ {
			p.pool = p.pool.With(t)
		}
	}

	return p, nil
}

// NewThresholdPolicy returns an enabled progressive policy with the given thresholds.
func NewThresholdPolicy(thresholds []Threshold) *ProgressionPolicy {
	return &ProgressionPolicy{
		enabled:    true,
		thresholds: append([]Threshold(nil), thresholds...),
	}
}

// checkLadder reports the first tier the policy can unlock that table lacks.
func (p *ProgressionPolicy) checkLadder(table *TierTable) error {
	for i, th := range p.thresholds {
		if !table.Has(th.Tier) {
			return fmt.Errorf("fruitmerge: progression thresholds[%d]: %s is not in the %d-tier ladder", i, th.Tier, table.Len())
		}
	}
	for _, t := range p.pool.Tiers() {
		if !table.Has(t) {
			return fmt.Errorf("fruitmerge: progression pool: %s is not in the %d-tier ladder", t, table.Len())
		}
	}
	return nil
}

// Unlocked returns the tiers available after rounds drops. The result always
// holds cherry and everything in previous; tiers are never removed.
func (p *ProgressionPolicy) Unlocked(rounds int, previous TierSet) TierSet {
	out := previous.With(Cherry)
	if !p.enabled {
		return out
	}
	if p.classic {
		return out | p.pool
	}
	for _, th := range p.thresholds {
		if rounds >= th.Rounds {
			out = out.With(th.Tier)
		}
	}
	return out
}

// PickNext draws uniformly from the unlocked tiers.
func (p *ProgressionPolicy) PickNext(unlocked TierSet, rng RandomSource) Tier {
	tiers := unlocked.Tiers()
	if len(tiers) == 0 {
		return Cherry
	}
	return tiers[rng.Intn(len(tiers))]
}
