// Package physics is the rigid-body collaborator for games that only decide
// what lives in a scene, not how it moves. Games talk to a World; the
// Chipmunk2D-backed implementation does gravity, contacts and friction.
package physics

import "github.com/vovakirdan/merge-arcade/internal/core"

// Handle identifies a body registered with a World.
// The zero Handle is never issued.
type Handle uint64

// Segment is a static wall from A to B.
type Segment struct {
	A, B core.Vec2
}

// Body describes a dynamic disc to add to a World.
type Body struct {
	ID       uint64    // Owner's entity ID, kept for debugging
	Radius   float64   // Disc radius in world units
	Position core.Vec2 // Initial center
}

// World is the narrow interface a game drives each tick.
// Implementations are not safe for concurrent use.
type World interface {
	// SetBoundary replaces all static walls with the given segments.
	SetBoundary(segments []Segment)

	// AddBody registers a dynamic disc and returns its handle.
	AddBody(b Body) Handle

	// RemoveBody releases a disc. Unknown handles are ignored.
	RemoveBody(h Handle)

	// Step advances the simulation by dt seconds.
	Step(dt float64)

	// Position returns the current center of a disc.
	Position(h Handle) core.Vec2
}
