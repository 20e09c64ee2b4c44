// Package core holds the types shared by the game and its hosts: world
// vectors, the cell screen, input frames and run summaries. It imports no
// UI or physics library.
package core

import "math"

// Vec2 is a point or displacement in world units.
// World space grows right along X and down along Y, like the screen.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Len()
}

// Mid returns the point halfway between v and o.
func (v Vec2) Mid(o Vec2) Vec2 {
	return v.Add(o).Scale(0.5)
}

// ClampF restricts val to [lo, hi]. When lo > hi the result is lo.
func ClampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(val, hi))
}
