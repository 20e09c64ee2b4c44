package fruitmerge

import (
	"github.com/vovakirdan/merge-arcade/internal/core"
	"github.com/vovakirdan/merge-arcade/internal/physics"
)

// FruitID identifies a fruit for the lifetime of a Session.
type FruitID uint64

// Fruit is a live disc. Pos mirrors the physics body and is refreshed every tick.
type Fruit struct {
	ID     FruitID
	Tier   Tier
	Pos    core.Vec2
	Radius float64

	body physics.Handle
}

// Overlaps reports whether two discs touch or intersect.
func (f *Fruit) Overlaps(o *Fruit) bool {
	return f.Pos.Dist(o.Pos) <= f.Radius+o.Radius
}
