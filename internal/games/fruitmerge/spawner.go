package fruitmerge

import (
	"github.com/vovakirdan/merge-arcade/internal/core"
)

// Spawner is the drop cursor: the pending tier and where it will fall from.
type Spawner struct {
	tier   Tier
	radius float64
	color  core.Color

	x, y        float64
	left, right float64
}

// NewSpawner places the cursor at the container's center, at height y.
func NewSpawner(c Container, y float64) *Spawner {
	return &Spawner{
		x:     c.CenterX(),
		y:     y,
		left:  c.Left,
		right: c.Right,
	}
}

// accepts reports whether a disc of the current radius fits at x.
func (s *Spawner) accepts(x float64) bool {
	return x >= s.left+s.radius && x <= s.right-s.radius
}

// UpdateCursor moves the cursor to x if the disc stays inside the container.
// Out-of-range positions are ignored, not clamped. Returns whether it moved.
func (s *Spawner) UpdateCursor(x float64) bool {
	if !s.accepts(x) {
		return false
	}
	s.x = x
	return true
}

// Nudge moves the cursor by dx, stopping where the disc touches a wall.
func (s *Spawner) Nudge(dx float64) bool {
	target := core.ClampF(s.x+dx, s.left+s.radius, s.right-s.radius)
	if target == s.x {
		return false
	}
	return s.UpdateCursor(target)
}

// SetPendingTier swaps the displayed disc to a new tier. If the larger disc
// no longer fits at the current cursor, the cursor is pulled inside.
func (s *Spawner) SetPendingTier(t Tier, spec TierSpec) {
	s.tier = t
	s.radius = spec.Radius
	s.color = spec.Color
	s.x = core.ClampF(s.x, s.left+s.radius, s.right-s.radius)
}

// Tier returns the pending tier.
func (s *Spawner) Tier() Tier { return s.tier }

// Radius returns the pending disc radius.
func (s *Spawner) Radius() float64 { return s.radius }

// Color returns the pending disc color.
func (s *Spawner) Color() core.Color { return s.color }

// Position returns where the next fruit will be created.
func (s *Spawner) Position() core.Vec2 { return core.V(s.x, s.y) }
