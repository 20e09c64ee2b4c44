package fruitmerge

import (
	"github.com/vovakirdan/merge-arcade/internal/core"
	"github.com/vovakirdan/merge-arcade/internal/physics"
)

// fakeWorld keeps bodies where they were created unless a test moves them.
type fakeWorld struct {
	walls   []physics.Segment
	bodies  map[physics.Handle]core.Vec2
	owners  map[uint64]physics.Handle
	next    physics.Handle
	steps   int
	removed int
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{
		bodies: make(map[physics.Handle]core.Vec2),
		owners: make(map[uint64]physics.Handle),
	}
}

func (w *fakeWorld) SetBoundary(segments []physics.Segment) {
	w.walls = append([]physics.Segment(nil), segments...)
}

func (w *fakeWorld) AddBody(b physics.Body) physics.Handle {
	w.next++
	w.bodies[w.next] = b.Position
	w.owners[b.ID] = w.next
	return w.next
}

func (w *fakeWorld) RemoveBody(h physics.Handle) {
	if _, ok := w.bodies[h]; ok {
		delete(w.bodies, h)
		w.removed++
	}
}

func (w *fakeWorld) Step(dt float64) {
	w.steps++
}

func (w *fakeWorld) Position(h physics.Handle) core.Vec2 {
	return w.bodies[h]
}

// move teleports the body owned by fruit id.
func (w *fakeWorld) move(id FruitID, pos core.Vec2) {
	w.bodies[w.owners[uint64(id)]] = pos
}

var _ physics.World = (*fakeWorld)(nil)

// fixedRand always returns the same index, clamped to n.
type fixedRand struct {
	n     int
	calls int
}

func (r *fixedRand) Intn(n int) int {
	r.calls++
	if r.n >= n {
		return n - 1
	}
	return r.n
}
