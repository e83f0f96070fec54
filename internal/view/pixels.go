package view

import (
	"image/color"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
)

// palette is the RGBA rendition of the cell colors for pixel frontends.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:      {R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff},
	core.ColorRed:          {R: 0xe0, G: 0x40, B: 0x40, A: 0xff},
	core.ColorGreen:        {R: 0x4c, G: 0xc0, B: 0x4c, A: 0xff},
	core.ColorYellow:       {R: 0xe8, G: 0xd0, B: 0x40, A: 0xff},
	core.ColorBlue:         {R: 0x40, G: 0x70, B: 0xe0, A: 0xff},
	core.ColorMagenta:      {R: 0xc8, G: 0x50, B: 0xc8, A: 0xff},
	core.ColorCyan:         {R: 0x40, G: 0xc8, B: 0xc8, A: 0xff},
	core.ColorWhite:        {R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff},
	core.ColorBrightYellow: {R: 0xff, G: 0xf0, B: 0x60, A: 0xff},
	core.ColorBrightCyan:   {R: 0x80, G: 0xf8, B: 0xff, A: 0xff},
	core.ColorOrange:       {R: 0xff, G: 0x90, B: 0x20, A: 0xff},
	core.ColorGray:         {R: 0x80, G: 0x80, B: 0x80, A: 0xff},
}

// RGBA returns the pixel color for c. Unknown colors render as the default.
func RGBA(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorDefault]
}

// SurfaceFromPixel maps pixel (x, y) of a width x height image with the
// origin at the top-left to the control surface, whose origin is at the
// bottom-left.
func SurfaceFromPixel(x, y, width, height int, c config.ControlsConfig) (float64, float64) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	sx := float64(x) / float64(width) * c.SurfaceWidth
	sy := float64(height-y) / float64(height) * c.SurfaceHeight
	return core.ClampF(sx, 0, c.SurfaceWidth), core.ClampF(sy, 0, c.SurfaceHeight)
}
