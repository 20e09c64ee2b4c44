package physics

import (
	"testing"

	"github.com/vovakirdan/merge-arcade/internal/core"
)

// box returns an open-topped container: left wall, floor, right wall.
func box(left, right, top, bottom float64) []Segment {
	return []Segment{
		{A: core.V(left, top), B: core.V(left, bottom)},
		{A: core.V(left, bottom), B: core.V(right, bottom)},
		{A: core.V(right, top), B: core.V(right, bottom)},
	}
}

func TestChipmunkBodyFallsUnderGravity(t *testing.T) {
	w := NewChipmunkWorld(DefaultParams())
	h := w.AddBody(Body{ID: 1, Radius: 20, Position: core.V(100, 100)})

	for range 30 {
		w.Step(1.0 / 60.0)
	}

	p := w.Position(h)
	if p.Y <= 100 {
		t.Errorf("Body should fall toward +Y, got y=%f", p.Y)
	}
	if p.X < 99 || p.X > 101 {
		t.Errorf("Free fall should not drift sideways, got x=%f", p.X)
	}
}

func TestChipmunkBodyRestsOnFloor(t *testing.T) {
	w := NewChipmunkWorld(DefaultParams())
	w.SetBoundary(box(0, 400, 0, 300))
	h := w.AddBody(Body{ID: 1, Radius: 20, Position: core.V(200, 100)})

	for range 600 {
		w.Step(1.0 / 60.0)
	}

	p := w.Position(h)
	// Center should settle one radius above the floor
	if p.Y > 300-20+2 || p.Y < 300-20-2 {
		t.Errorf("Body should rest on the floor at y≈280, got y=%f", p.Y)
	}
}

func TestChipmunkRemoveBody(t *testing.T) {
	w := NewChipmunkWorld(DefaultParams())
	a := w.AddBody(Body{ID: 1, Radius: 10, Position: core.V(0, 0)})
	b := w.AddBody(Body{ID: 2, Radius: 10, Position: core.V(50, 0)})

	if a == b {
		t.Fatal("Handles should be unique")
	}
	if w.BodyCount() != 2 {
		t.Fatalf("Expected 2 bodies, got %d", w.BodyCount())
	}

	w.RemoveBody(a)
	w.RemoveBody(a) // Unknown handle is ignored

	if w.BodyCount() != 1 {
		t.Errorf("Expected 1 body after remove, got %d", w.BodyCount())
	}
	if got := w.Position(a); got != (core.Vec2{}) {
		t.Errorf("Removed body position should be zero, got %v", got)
	}

	// Stepping after removal must not touch the released body
	w.Step(1.0 / 60.0)
}

func TestChipmunkSetBoundaryReplacesWalls(t *testing.T) {
	w := NewChipmunkWorld(DefaultParams())
	w.SetBoundary(box(0, 400, 0, 300))
	w.SetBoundary(box(0, 400, 0, 300))

	if len(w.walls) != 3 {
		t.Errorf("Expected 3 walls after re-install, got %d", len(w.walls))
	}
}
