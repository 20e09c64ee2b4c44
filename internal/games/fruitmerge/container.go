package fruitmerge

import (
	"github.com/vovakirdan/merge-arcade/internal/config"
	"github.com/vovakirdan/merge-arcade/internal/core"
	"github.com/vovakirdan/merge-arcade/internal/physics"
)

// Container is the open-topped box: two side walls and a floor.
type Container struct {
	Left, Right float64
	Top, Bottom float64
}

// NewContainer builds the container geometry from config.
func NewContainer(cfg config.ContainerConfig) Container {
	return Container{
		Left:   cfg.Left,
		Right:  cfg.Right,
		Top:    cfg.Top,
		Bottom: cfg.Bottom,
	}
}

// Segments returns left wall, floor and right wall.
func (c Container) Segments() []physics.Segment {
	topLeft := core.V(c.Left, c.Top)
	bottomLeft := core.V(c.Left, c.Bottom)
	topRight := core.V(c.Right, c.Top)
	bottomRight := core.V(c.Right, c.Bottom)

	return []physics.Segment{
		{A: topLeft, B: bottomLeft},
		{A: bottomLeft, B: bottomRight},
		{A: topRight, B: bottomRight},
	}
}

// Install hands the walls to the physics world, replacing any previous ones.
func (c Container) Install(w physics.World) {
	w.SetBoundary(c.Segments())
}

// Width returns the inner width.
func (c Container) Width() float64 {
	return c.Right - c.Left
}

// CenterX returns the horizontal midpoint.
func (c Container) CenterX() float64 {
	return (c.Left + c.Right) / 2
}
