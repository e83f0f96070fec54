package core

// PointerFrame is the pointer (touch or mouse) state for a single tick,
// expressed in the logical control surface. The origin is bottom-left.
// Frontends fill it from their input devices; the simulation reads it.
type PointerFrame struct {
	Down    bool    // Pointer is currently held
	X, Y    float64 // Position in surface units, valid while Down
	Pressed bool    // Pointer went down since the previous tick (edge-triggered)
}

// IsDown reports whether the pointer is held.
func (f *PointerFrame) IsDown() bool {
	return f.Down
}

// Position returns the pointer position in surface units.
func (f *PointerFrame) Position() (float64, float64) {
	return f.X, f.Y
}

// JustPressed reports whether the pointer went down this tick.
func (f *PointerFrame) JustPressed() bool {
	return f.Pressed
}

// Press marks the pointer as held at (x, y) and records the edge.
func (f *PointerFrame) Press(x, y float64) {
	if !f.Down {
		f.Pressed = true
	}
	f.Down = true
	f.X = x
	f.Y = y
}

// Move updates the pointer position without changing its held state.
func (f *PointerFrame) Move(x, y float64) {
	f.X = x
	f.Y = y
}

// Release lifts the pointer.
func (f *PointerFrame) Release() {
	f.Down = false
}

// EndTick clears edge-triggered state for the next frame.
func (f *PointerFrame) EndTick() {
	f.Pressed = false
}

// ToSurface maps a cell (col, row) of a cols x rows grid with row 0 at the top
// to the center of that cell on a surfaceW x surfaceH surface with origin
// bottom-left.
func ToSurface(col, row, cols, rows int, surfaceW, surfaceH float64) (float64, float64) {
	if cols <= 0 || rows <= 0 {
		return 0, 0
	}
	x := (float64(col) + 0.5) / float64(cols) * surfaceW
	y := (float64(rows-row) - 0.5) / float64(rows) * surfaceH
	return x, y
}
