package physics

import (
	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/merge-arcade/internal/core"
)

// Collision types for the pre-solve channel.
const (
	collisionWall  cp.CollisionType = 0
	collisionFruit cp.CollisionType = 2
)

// Params configures a ChipmunkWorld.
type Params struct {
	Gravity      float64 // Downward acceleration (world Y grows downward)
	Iterations   uint    // Solver iterations per step (0 keeps the default)
	Mass         float64 // Mass of every disc
	Moment       float64 // Moment of inertia of every disc (0 derives it from the radius)
	Friction     float64 // Disc friction
	Elasticity   float64 // Disc elasticity
	WallFriction float64 // Wall friction
}

// DefaultParams mirrors the tuning the game was designed around.
func DefaultParams() Params {
	return Params{
		Gravity:      981,
		Iterations:   10,
		Mass:         10,
		Moment:       200,
		Friction:     0.5,
		Elasticity:   0,
		WallFriction: 0.99,
	}
}

type chipmunkBody struct {
	body  *cp.Body
	shape *cp.Shape
}

// ChipmunkWorld is a World backed by a Chipmunk2D space.
type ChipmunkWorld struct {
	params Params
	space  *cp.Space
	walls  []*cp.Shape
	bodies map[Handle]chipmunkBody
	next   Handle
}

// NewChipmunkWorld creates an empty space with the given parameters.
func NewChipmunkWorld(p Params) *ChipmunkWorld {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{X: 0, Y: p.Gravity})
	if p.Iterations > 0 {
		space.Iterations = p.Iterations
	}

	// Always accept wall/disc contacts. Merges are decided by the game's
	// own distance check, never by this callback.
	handler := space.NewCollisionHandler(collisionWall, collisionFruit)
	handler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		return true
	}

	return &ChipmunkWorld{
		params: p,
		space:  space,
		bodies: make(map[Handle]chipmunkBody),
	}
}

// SetBoundary replaces the static walls.
func (w *ChipmunkWorld) SetBoundary(segments []Segment) {
	for _, s := range w.walls {
		w.space.RemoveShape(s)
	}
	w.walls = w.walls[:0]

	static := w.space.StaticBody
	for _, seg := range segments {
		shape := cp.NewSegment(static, toVector(seg.A), toVector(seg.B), 0)
		shape.SetFriction(w.params.WallFriction)
		shape.SetCollisionType(collisionWall)
		w.walls = append(w.walls, w.space.AddShape(shape))
	}
}

// AddBody adds a dynamic disc.
func (w *ChipmunkWorld) AddBody(b Body) Handle {
	moment := w.params.Moment
	if moment <= 0 {
		moment = cp.MomentForCircle(w.params.Mass, 0, b.Radius, cp.Vector{})
	}

	body := w.space.AddBody(cp.NewBody(w.params.Mass, moment))
	body.SetPosition(toVector(b.Position))

	shape := w.space.AddShape(cp.NewCircle(body, b.Radius, cp.Vector{}))
	shape.SetFriction(w.params.Friction)
	shape.SetElasticity(w.params.Elasticity)
	shape.SetCollisionType(collisionFruit)

	w.next++
	w.bodies[w.next] = chipmunkBody{body: body, shape: shape}
	return w.next
}

// RemoveBody removes a disc and its shape from the space.
func (w *ChipmunkWorld) RemoveBody(h Handle) {
	b, ok := w.bodies[h]
	if !ok {
		return
	}
	w.space.RemoveShape(b.shape)
	w.space.RemoveBody(b.body)
	delete(w.bodies, h)
}

// Step advances the space.
func (w *ChipmunkWorld) Step(dt float64) {
	w.space.Step(dt)
}

// Position returns the disc center, or the zero vector for unknown handles.
func (w *ChipmunkWorld) Position(h Handle) core.Vec2 {
	b, ok := w.bodies[h]
	if !ok {
		return core.Vec2{}
	}
	p := b.body.Position()
	return core.Vec2{X: p.X, Y: p.Y}
}

// BodyCount returns the number of live discs.
func (w *ChipmunkWorld) BodyCount() int {
	return len(w.bodies)
}

func toVector(v core.Vec2) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

var _ World = (*ChipmunkWorld)(nil)
