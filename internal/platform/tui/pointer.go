package tui

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/view"
)

// keyHoldSeconds is how long a steering key keeps the pointer held.
// Terminals report key presses but not releases.
const keyHoldSeconds = 0.25

// layout places the playfield inside the terminal. Cells are about twice as
// tall as wide, so the playfield keeps the camera's aspect ratio by using two
// columns per row unit.
type layout struct {
	offsetX int // Left margin of the playfield
	cols    int // Playfield width in cells
	rows    int // Playfield height in cells, below the HUD row
}

// computeLayout fits the camera window into a termW x termH terminal, keeping
// one line at the bottom for help.
func computeLayout(termW, termH int, world config.WorldConfig) layout {
	rows := termH - view.HUDRows - 1
	if rows < 1 {
		rows = 1
	}
	cols := termW
	if world.CameraHeight > 0 {
		cols = int(math.Round(float64(rows) * world.CameraWidth / world.CameraHeight * 2))
	}
	if cols > termW {
		cols = termW
	}
	if cols < 1 {
		cols = 1
	}
	return layout{
		offsetX: (termW - cols) / 2,
		cols:    cols,
		rows:    rows,
	}
}

// screenSize returns the size of the screen buffer: playfield plus HUD.
func (l layout) screenSize() (int, int) {
	return l.cols, l.rows + view.HUDRows
}

// toSurface maps a terminal cell to the control surface. It reports false
// for cells outside the playfield.
func (l layout) toSurface(x, y int, c config.ControlsConfig) (float64, float64, bool) {
	col := x - l.offsetX
	row := y - view.HUDRows
	if col < 0 || col >= l.cols || row < 0 || row >= l.rows {
		return 0, 0, false
	}
	sx, sy := core.ToSurface(col, row, l.cols, l.rows, c.SurfaceWidth, c.SurfaceHeight)
	return sx, sy, true
}

// pointerDriver feeds mouse and keyboard events into a PointerFrame.
type pointerDriver struct {
	frame     *core.PointerFrame
	controls  config.ControlsConfig
	mouseDown bool
	holdTicks int
}

func newPointerDriver(controls config.ControlsConfig) *pointerDriver {
	return &pointerDriver{
		frame:    &core.PointerFrame{},
		controls: controls,
	}
}

// mouse applies a mouse event. Only the left button presses the pointer;
// releases often arrive without a button.
func (d *pointerDriver) mouse(msg tea.MouseMsg, l layout) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if x, y, ok := l.toSurface(msg.X, msg.Y, d.controls); ok {
			d.frame.Press(x, y)
			d.mouseDown = true
			d.holdTicks = 0
		}
	case tea.MouseActionMotion:
		if !d.mouseDown {
			return
		}
		if x, y, ok := l.toSurface(msg.X, msg.Y, d.controls); ok {
			d.frame.Move(x, y)
		}
	case tea.MouseActionRelease:
		if d.mouseDown {
			d.mouseDown = false
			d.frame.Release()
		}
	}
}

// steer holds the pointer on the left (dir < 0) or right half for a short
// window. Repeated key events extend the hold.
func (d *pointerDriver) steer(dir int, tickRate int) {
	if d.mouseDown {
		return
	}
	x := d.controls.SurfaceWidth / 4
	if dir > 0 {
		x = d.controls.SurfaceWidth * 3 / 4
	}
	d.frame.Press(x, d.controls.SurfaceHeight/2)
	d.holdTicks = int(math.Ceil(keyHoldSeconds * float64(tickRate)))
	if d.holdTicks < 1 {
		d.holdTicks = 1
	}
}

// tap produces a press edge without holding the pointer down.
func (d *pointerDriver) tap() {
	d.frame.Pressed = true
}

// endTick clears edges and expires keyboard holds.
func (d *pointerDriver) endTick() {
	d.frame.EndTick()
	if d.holdTicks > 0 {
		d.holdTicks--
		if d.holdTicks == 0 && !d.mouseDown {
			d.frame.Release()
		}
	}
}

// reset lifts the pointer and forgets any hold.
func (d *pointerDriver) reset() {
	d.frame.Release()
	d.frame.EndTick()
	d.mouseDown = false
	d.holdTicks = 0
}
