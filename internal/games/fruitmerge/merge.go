package fruitmerge

import "github.com/vovakirdan/merge-arcade/internal/core"

// MergeAction replaces two touching fruits of the same tier.
type MergeAction struct {
	A, B FruitID
	Tier Tier

	// Promotes is false when Tier is terminal: both parents vanish for a bonus.
	Promotes bool
	Result   Tier
	At       core.Vec2 // Midpoint of the parents
}

// MergeEngine finds merges in a snapshot of live fruits.
type MergeEngine struct {
	table *TierTable
}

// NewMergeEngine creates an engine for the given ladder.
func NewMergeEngine(table *TierTable) MergeEngine {
	return MergeEngine{table: table}
}

// Resolve scans every unordered pair in collection order and returns one
// action per same-tier pair whose discs touch. A fruit consumed by an earlier
// pair is skipped for the rest of the pass; leftover overlaps are picked up
// on the next tick. The scan is quadratic, which is fine for the few dozen
// fruits a container can hold.
func (e MergeEngine) Resolve(fruits []*Fruit) []MergeAction {
	var actions []MergeAction
	consumed := make(map[FruitID]bool)

	for i, a := range fruits {
		if consumed[a.ID] {
			continue
		}
		for _, b := range fruits[i+1:] {
			if consumed[b.ID] || a.Tier != b.Tier || !a.Overlaps(b) {
				continue
			}

			action := MergeAction{A: a.ID, B: b.ID, Tier: a.Tier, At: a.Pos.Mid(b.Pos)}
			action.Result, action.Promotes = e.table.Successor(a.Tier)
			actions = append(actions, action)

			consumed[a.ID] = true
			consumed[b.ID] = true
			break
		}
	}

	return actions
}
