package view

import (
	"fmt"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/jumper"
)

// HUDRows is the number of screen rows DrawHUD uses.
const HUDRows = 1

// HUDLines returns the score line and the centered banner for snap. The
// banner is empty while playing.
func HUDLines(snap jumper.Snapshot) (scores, banner string) {
	scores = fmt.Sprintf("HighScore: %d  Score: %d", snap.HighScore, snap.Score)
	switch snap.State {
	case jumper.StateReady:
		banner = "Click or press SPACE to start"
	case jumper.StateGameOver:
		if snap.Cause == jumper.CauseGoal {
			banner = "You reached the UFO!"
		} else {
			banner = "Game Over"
		}
	}
	return scores, banner
}

// DrawHUD writes the score line on the top row and the banner in the middle
// of the playfield.
func DrawHUD(dst *core.Screen, snap jumper.Snapshot) {
	scores, banner := HUDLines(snap)
	dst.DrawTextColored(0, 0, scores, core.ColorWhite)
	if banner != "" {
		y := HUDRows + (dst.Height()-HUDRows)/2
		dst.DrawTextCentered(y, banner, core.ColorBrightYellow)
	}
}
