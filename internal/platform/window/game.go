// Package window provides the ebiten frontend: a native window where the
// mouse or a touch drives the pointer directly.
package window

import (
	"image/color"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/jumper"
	"github.com/vovakirdan/tui-jumper/internal/storage"
	"github.com/vovakirdan/tui-jumper/internal/view"
)

// Logical screen size in pixels.
const (
	ScreenWidth  = 320
	ScreenHeight = 480
)

var background = color.RGBA{R: 0x10, G: 0x12, B: 0x1c, A: 0xff}

// Options configures a window game.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Store   *storage.Store
	Sound   jumper.SoundPlayer
	Logger  *log.Logger
}

// Game implements ebiten.Game around jumper sessions.
type Game struct {
	cfg     config.Config
	runtime core.RuntimeConfig
	store   *storage.Store
	sound   jumper.SoundPlayer
	scores  jumper.HighScoreStore
	logger  *log.Logger

	session  *jumper.Session
	seed     int64
	camera   *view.Camera
	renderer *rectRenderer
	frame    *core.PointerFrame
	latch    *latch
	results  *results
	face     *text.GoXFace
	touches  []ebiten.TouchID
}

// latch implements jumper.Results.
type latch struct {
	shown bool
	score int
}

func (l *latch) ShowResults(score int) {
	l.shown = true
	l.score = score
}

// NewGame creates the game and its first session.
func NewGame(opts Options) (*Game, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = ebiten.DefaultTPS
	}

	var scores jumper.HighScoreStore = &jumper.MemoryHighScore{}
	if opts.Store != nil {
		scores = storage.NewHighScores(opts.Store, opts.Logger)
	}

	g := &Game{
		cfg:      opts.Config,
		runtime:  opts.Runtime,
		store:    opts.Store,
		sound:    opts.Sound,
		scores:   scores,
		logger:   opts.Logger,
		renderer: &rectRenderer{vanishSeconds: opts.Config.Step.VanishSeconds},
		frame:    &core.PointerFrame{},
		face:     text.NewGoXFace(basicfont.Face7x13),
	}

	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if err := g.startSession(seed); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) startSession(seed int64) error {
	camera := view.NewCamera(g.cfg.World)
	l := &latch{}

	session, err := jumper.NewSession(g.cfg, jumper.Options{
		Random:     rand.New(rand.NewSource(seed)),
		Renderer:   g.renderer,
		Sound:      g.sound,
		HighScores: g.scores,
		Pointer:    g.frame,
		Results:    l,
		Logger:     g.logger,
	})
	if err != nil {
		return err
	}

	g.session = session
	g.seed = seed
	g.camera = camera
	g.renderer.camera = camera
	g.latch = l
	g.results = nil
	g.logger.Debug("session started", "seed", seed)
	return nil
}

// Update advances the game by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	g.pollPointer()

	if g.results != nil {
		if g.frame.JustPressed() {
			return g.startSession(time.Now().UnixNano())
		}
		return nil
	}

	g.session.Update(g.runtime.Delta())
	g.camera.Follow(g.session.Player().Pos[1])
	if g.latch.shown {
		g.showResults()
	}
	return nil
}

// pollPointer fills the pointer frame from the mouse, the first touch or the
// steering keys, in that order of precedence.
func (g *Game) pollPointer() {
	f := g.frame
	controls := g.cfg.Controls

	f.Pressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter)

	g.touches = ebiten.AppendTouchIDs(g.touches[:0])
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		x, y := ebiten.CursorPosition()
		f.Down = true
		f.X, f.Y = view.SurfaceFromPixel(x, y, ScreenWidth, ScreenHeight, controls)
	case len(g.touches) > 0:
		x, y := ebiten.TouchPosition(g.touches[0])
		f.Down = true
		f.X, f.Y = view.SurfaceFromPixel(x, y, ScreenWidth, ScreenHeight, controls)
	case ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA):
		f.Down = true
		f.X, f.Y = controls.SurfaceWidth/4, controls.SurfaceHeight/2
	case ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD):
		f.Down = true
		f.X, f.Y = controls.SurfaceWidth*3/4, controls.SurfaceHeight/2
	default:
		f.Down = false
	}
}

// showResults records the finished run and opens the results overlay.
func (g *Game) showResults() {
	snap := g.session.Snapshot()
	r := &results{snap: snap, score: g.latch.score}

	if g.store != nil {
		_, err := g.store.SaveRun(storage.Run{
			Score:  g.latch.score,
			Height: snap.HeightSoFar,
			Cause:  snap.Cause.String(),
			Seed:   g.seed,
		})
		if err != nil {
			g.logger.Warn("cannot save run", "err", err)
		}
		r.runs, err = g.store.TopRuns(maxRuns)
		if err != nil {
			g.logger.Warn("cannot load top runs", "err", err)
		}
	}
	g.results = r
}

// Draw renders the world, the HUD and the results overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	g.renderer.dst = screen
	g.session.Draw()
	g.renderer.dst = nil

	scores, banner := view.HUDLines(g.session.Snapshot())
	g.drawText(screen, scores, 6, 4, view.RGBA(core.ColorWhite))
	if banner != "" && g.results == nil {
		g.drawCentered(screen, banner, ScreenHeight/2, view.RGBA(core.ColorBrightYellow))
	}

	if g.results != nil {
		g.results.draw(g, screen)
	}
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(_, _ int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func (g *Game) drawText(dst *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, g.face, op)
}

func (g *Game) drawCentered(dst *ebiten.Image, s string, y float64, c color.Color) {
	w := text.Advance(s, g.face)
	g.drawText(dst, s, (ScreenWidth-w)/2, y, c)
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g, err := NewGame(opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(ScreenWidth*2, ScreenHeight*2)
	ebiten.SetWindowTitle("Jumper")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.runtime.TickRate)

	return ebiten.RunGame(g)
}
