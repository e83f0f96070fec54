package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/jumper"
	"github.com/vovakirdan/tui-jumper/internal/storage"
	"github.com/vovakirdan/tui-jumper/internal/view"
)

// maxRuns is how many past runs the results overlay lists.
const maxRuns = 5

// rectRenderer draws entities as filled rectangles. It implements
// jumper.Renderer; dst is only set while the game draws.
type rectRenderer struct {
	dst           *ebiten.Image
	camera        *view.Camera
	vanishSeconds float64
}

func (r *rectRenderer) Draw(e jumper.Drawable) {
	if r.dst == nil || r.camera == nil {
		return
	}
	b := e.Bounds()
	if !b.Overlaps(r.camera.Viewport()) {
		return
	}
	p := r.camera.ProjectRect(b, ScreenWidth, ScreenHeight)
	_, c := view.Glyph(e, r.vanishSeconds)
	vector.DrawFilledRect(r.dst, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), view.RGBA(c), false)

	if pl, ok := e.(*jumper.Player); ok {
		// Eye on the side the player is heading
		eye := float32(p.W / 4)
		ex := float32(p.X+p.W) - 2*eye
		if pl.FacingLeft() {
			ex = float32(p.X) + eye
		}
		vector.DrawFilledRect(r.dst, ex, float32(p.Y)+eye, eye, eye, background, false)
	}
}

// results is the overlay shown after a session ends.
type results struct {
	snap  jumper.Snapshot
	score int
	runs  []storage.Run
}

var overlay = color.RGBA{A: 0xc0}

func (r *results) draw(g *Game, dst *ebiten.Image) {
	vector.DrawFilledRect(dst, 0, 0, ScreenWidth, ScreenHeight, overlay, false)

	title := "GAME OVER"
	if r.snap.Cause == jumper.CauseGoal {
		title = "YOU REACHED THE UFO"
	}
	white := view.RGBA(core.ColorWhite)
	g.drawCentered(dst, title, 96, view.RGBA(core.ColorBrightYellow))
	g.drawCentered(dst, fmt.Sprintf("Score: %d", r.score), 130, white)
	g.drawCentered(dst, fmt.Sprintf("HighScore: %d", r.snap.HighScore), 148, white)
	g.drawCentered(dst, fmt.Sprintf("Height: %.1f", r.snap.HeightSoFar), 166, white)

	y := 210.0
	if len(r.runs) > 0 {
		g.drawCentered(dst, "Best runs", y, view.RGBA(core.ColorCyan))
		y += 20
		for i, run := range r.runs {
			line := fmt.Sprintf("#%d  %3d  %6.1f  %-5s", i+1, run.Score, run.Height, run.Cause)
			g.drawCentered(dst, line, y, white)
			y += 16
		}
	}

	g.drawCentered(dst, "Tap to play again", ScreenHeight-60, view.RGBA(core.ColorGray))
}
