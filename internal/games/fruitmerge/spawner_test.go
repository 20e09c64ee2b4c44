package fruitmerge

import (
	"testing"

	"github.com/vovakirdan/merge-arcade/internal/core"
)

func testSpawner(tier Tier) *Spawner {
	s := NewSpawner(Container{Left: 125, Right: 1075, Top: 250, Bottom: 1150}, 100)
	s.SetPendingTier(tier, DefaultTierTable().Spec(tier))
	return s
}

func TestSpawnerStartsCentered(t *testing.T) {
	s := testSpawner(Cherry)
	if s.Position() != core.V(600, 100) {
		t.Errorf("Position() = %v, expected (600, 100)", s.Position())
	}
	if s.Radius() != 20 || s.Color() != core.ColorRed {
		t.Errorf("pending disc = radius %v color %v, expected cherry", s.Radius(), s.Color())
	}
}

func TestSpawnerUpdateCursor(t *testing.T) {
	tests := []struct {
		name  string
		x     float64
		moved bool
		want  float64
	}{
		{"inside", 300, true, 300},
		{"left edge", 145, true, 145},
		{"right edge", 1055, true, 1055},
		{"through left wall", 140, false, 600},
		{"through right wall", 1060, false, 600},
		{"outside", -50, false, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testSpawner(Cherry)
			moved := s.UpdateCursor(tt.x)
			if moved != tt.moved {
				t.Errorf("UpdateCursor(%v) = %v, expected %v", tt.x, moved, tt.moved)
			}
			if s.Position().X != tt.want {
				t.Errorf("cursor x = %v, expected %v", s.Position().X, tt.want)
			}
		})
	}
}

func TestSpawnerNudgeStopsAtWall(t *testing.T) {
	s := testSpawner(Cherry)

	for i := 0; i < 100; i++ {
		s.Nudge(-25)
	}
	if s.Position().X != 145 {
		t.Errorf("cursor x = %v, expected 145 after nudging into the left wall", s.Position().X)
	}
	if s.Nudge(-25) {
		t.Error("Nudge() at the wall should report no movement")
	}
}

func TestSpawnerLargerTierPullsCursorIn(t *testing.T) {
	s := testSpawner(Cherry)
	s.UpdateCursor(145)

	s.SetPendingTier(Peach, DefaultTierTable().Spec(Peach))
	if s.Position().X != 180 {
		t.Errorf("cursor x = %v, expected 180 after swapping to a peach", s.Position().X)
	}
}
