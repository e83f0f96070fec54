package view

import (
	"math"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/jumper"
)

// Glyphs for terminal rendering
const (
	StepChar      = '▀'
	VanishingChar = '░'
	EnemyChar     = 'W'
	StarChar      = '*'
	UfoChar       = '◊'
	PlayerJump    = '▲'
	PlayerFall    = '▼'
)

// snap absorbs float error so edges that land on a cell border stay there.
const snap = 1e-6

// CellRenderer draws entities onto a character screen through a camera.
// It implements jumper.Renderer.
type CellRenderer struct {
	Screen *core.Screen
	Camera *Camera
	Top    int // Rows reserved above the playfield (HUD)

	VanishSeconds float64
}

// Draw implements jumper.Renderer.
func (r *CellRenderer) Draw(e jumper.Drawable) {
	ch, color := Glyph(e, r.VanishSeconds)
	x, y, w, h := r.cells(e.Bounds())
	if w <= 0 || h <= 0 {
		return
	}
	r.Screen.FillRect(x, y, w, h, ch, color)
}

// cells projects a world rectangle to whole cells below the HUD rows. Every
// visible entity covers at least one cell.
func (r *CellRenderer) cells(b core.Rect) (x, y, w, h int) {
	cols := float64(r.Screen.Width())
	rows := float64(r.Screen.Height() - r.Top)
	if cols <= 0 || rows <= 0 {
		return 0, 0, 0, 0
	}
	if !b.Overlaps(r.Camera.Viewport()) {
		return 0, 0, 0, 0
	}

	p := r.Camera.ProjectRect(b, cols, rows)
	x0 := int(math.Floor(p.X + snap))
	y0 := int(math.Floor(p.Y + snap))
	x1 := int(math.Ceil(p.Right() - snap))
	y1 := int(math.Ceil(p.Top() - snap))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	x0 = core.Clamp(x0, 0, int(cols))
	x1 = core.Clamp(x1, 0, int(cols))
	y0 = core.Clamp(y0, 0, int(rows))
	y1 = core.Clamp(y1, 0, int(rows))
	return x0, y0 + r.Top, x1 - x0, y1 - y0
}

// Glyph picks the character and color for an entity's current state.
func Glyph(e jumper.Drawable, vanishSeconds float64) (rune, core.Color) {
	switch v := e.(type) {
	case *jumper.Step:
		if v.State == jumper.StepVanishing {
			if v.VanishProgress(vanishSeconds) > 0.5 {
				return VanishingChar, core.ColorGray
			}
			return VanishingChar, core.ColorGreen
		}
		if v.Motion == jumper.MotionMoving {
			return StepChar, core.ColorCyan
		}
		return StepChar, core.ColorGreen
	case *jumper.Enemy:
		if v.Motion == jumper.MotionMoving {
			return EnemyChar, core.ColorMagenta
		}
		return EnemyChar, core.ColorRed
	case *jumper.Star:
		return StarChar, core.ColorBrightYellow
	case *jumper.Ufo:
		return UfoChar, core.ColorBrightCyan
	case *jumper.Player:
		if v.State() == jumper.PlayerJump {
			return PlayerJump, core.ColorYellow
		}
		return PlayerFall, core.ColorOrange
	default:
		return '?', core.ColorWhite
	}
}
