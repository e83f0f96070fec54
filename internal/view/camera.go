// Package view projects the jumper world onto a display: a camera that
// follows the player upward, a cell renderer for terminal screens and the
// score HUD.
package view

import (
	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
)

// Camera is the visible window of the world, centered on (X, Y). It only
// ever moves up.
type Camera struct {
	X, Y float64
	W, H float64
}

// NewCamera creates a camera showing the bottom of the world.
func NewCamera(cfg config.WorldConfig) *Camera {
	return &Camera{
		X: cfg.CameraWidth / 2,
		Y: cfg.CameraHeight / 2,
		W: cfg.CameraWidth,
		H: cfg.CameraHeight,
	}
}

// Follow raises the camera to y if the player climbed above its center.
func (c *Camera) Follow(y float64) {
	if y > c.Y {
		c.Y = y
	}
}

// Viewport returns the visible world rectangle.
func (c *Camera) Viewport() core.Rect {
	return core.NewRect(c.X-c.W/2, c.Y-c.H/2, c.W, c.H)
}

// Project maps a world point to a width x height surface with the origin at
// the top-left.
func (c *Camera) Project(x, y, width, height float64) (float64, float64) {
	vp := c.Viewport()
	sx := (x - vp.X) / vp.W * width
	sy := (vp.Top() - y) / vp.H * height
	return sx, sy
}

// ProjectRect maps a world rectangle to a top-left surface rectangle.
func (c *Camera) ProjectRect(r core.Rect, width, height float64) core.Rect {
	x0, y0 := c.Project(r.X, r.Top(), width, height)
	x1, y1 := c.Project(r.Right(), r.Y, width, height)
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}
