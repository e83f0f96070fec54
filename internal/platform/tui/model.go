package tui

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/jumper"
	"github.com/vovakirdan/tui-jumper/internal/storage"
	"github.com/vovakirdan/tui-jumper/internal/view"
)

// Options configures a terminal game.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Store   *storage.Store     // Optional; without it scores live in memory
	Sound   jumper.SoundPlayer // Optional
	Logger  *log.Logger        // Optional
}

// Model is the Bubble Tea model running jumper sessions back to back.
type Model struct {
	cfg     config.Config
	runtime core.RuntimeConfig
	store   *storage.Store
	sound   jumper.SoundPlayer
	logger  *log.Logger
	scores  jumper.HighScoreStore

	session *jumper.Session
	seed    int64
	screen  *core.Screen
	camera  *view.Camera
	driver  *pointerDriver
	latch   *resultsLatch

	layout  layout
	width   int
	height  int
	keys    KeyMap
	help    help.Model
	results *ResultsModel

	quitting bool
}

// NewModel creates the model and its first session. A zero Runtime.Seed
// seeds the session from the clock.
func NewModel(opts Options) (Model, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}

	var scores jumper.HighScoreStore = &jumper.MemoryHighScore{}
	if opts.Store != nil {
		scores = storage.NewHighScores(opts.Store, opts.Logger)
	}

	m := Model{
		cfg:     opts.Config,
		runtime: opts.Runtime,
		store:   opts.Store,
		sound:   opts.Sound,
		logger:  opts.Logger,
		scores:  scores,
		driver:  newPointerDriver(opts.Config.Controls),
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	m.resize(opts.Runtime.ScreenW, opts.Runtime.ScreenH)

	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if err := m.startSession(seed); err != nil {
		return Model{}, err
	}
	return m, nil
}

// startSession replaces the current session with a fresh one built from seed.
func (m *Model) startSession(seed int64) error {
	camera := view.NewCamera(m.cfg.World)
	renderer := &view.CellRenderer{
		Screen:        m.screen,
		Camera:        camera,
		Top:           view.HUDRows,
		VanishSeconds: m.cfg.Step.VanishSeconds,
	}
	latch := &resultsLatch{}
	m.driver.reset()

	session, err := jumper.NewSession(m.cfg, jumper.Options{
		Random:     rand.New(rand.NewSource(seed)),
		Renderer:   renderer,
		Sound:      m.sound,
		HighScores: m.scores,
		Pointer:    m.driver.frame,
		Results:    latch,
		Logger:     m.logger,
	})
	if err != nil {
		return err
	}

	m.session = session
	m.seed = seed
	m.camera = camera
	m.latch = latch
	m.results = nil
	m.logger.Debug("session started", "seed", seed)
	return nil
}

// resize lays the playfield out for a width x height terminal.
func (m *Model) resize(width, height int) {
	if width <= 0 || height <= 0 {
		d := core.DefaultConfig()
		width, height = d.ScreenW, d.ScreenH
	}
	m.width = width
	m.height = height
	m.layout = computeLayout(width, height, m.cfg.World)
	m.help.Width = width

	w, h := m.layout.screenSize()
	if m.screen == nil {
		m.screen = core.NewScreen(w, h)
	} else {
		m.screen.Resize(w, h)
	}
	if m.results != nil {
		m.results.resize(width, height)
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.results != nil {
			return m.updateResults(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.results == nil {
			m.driver.mouse(msg, m.layout)
		}
		return m, nil

	case TickMsg:
		if m.results != nil {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input during play.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Left):
		m.driver.steer(-1, m.runtime.TickRate)
	case key.Matches(msg, m.keys.Right):
		m.driver.steer(1, m.runtime.TickRate)
	case key.Matches(msg, m.keys.Tap):
		m.driver.tap()
	}
	return m, nil
}

// handleTick advances the simulation by one fixed frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.session.Update(m.runtime.Delta())
	m.driver.endTick()
	m.camera.Follow(m.session.Player().Pos[1])

	if m.latch.shown {
		m.showResults()
		// The tick loop stops until the player picks replay
		return m, nil
	}
	return m, tickCmd(m.runtime.TickRate)
}

// showResults records the finished run and switches to the results screen.
func (m *Model) showResults() {
	snap := m.session.Snapshot()

	var runs []storage.Run
	if m.store != nil {
		_, err := m.store.SaveRun(storage.Run{
			Score:  m.latch.score,
			Height: snap.HeightSoFar,
			Cause:  snap.Cause.String(),
			Seed:   m.seed,
		})
		if err != nil {
			m.logger.Warn("cannot save run", "err", err)
		}
		runs, err = m.store.TopRuns(maxRuns)
		if err != nil {
			m.logger.Warn("cannot load top runs", "err", err)
		}
	}

	results := NewResultsModel(snap, m.latch.score, runs, m.width, m.height)
	m.results = &results
}

// updateResults handles keys on the results screen.
func (m Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	results, action, cmd := m.results.Update(msg)
	m.results = &results

	switch action {
	case resultsQuit:
		m.quitting = true
		return m, tea.Quit
	case resultsReplay:
		if err := m.startSession(time.Now().UnixNano()); err != nil {
			m.logger.Error("cannot start session", "err", err)
			m.quitting = true
			return m, tea.Quit
		}
		return m, tickCmd(m.runtime.TickRate)
	}
	return m, cmd
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.results != nil {
		return m.results.View()
	}

	m.screen.Clear()
	m.session.Draw()
	view.DrawHUD(m.screen, m.session.Snapshot())

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen, m.layout.offsetX) + "\n" +
		centerText(helpStyle.Render(m.help.View(m.keys)), m.width)
}

// Run starts the Bubble Tea program on the local terminal.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Press, drag and release steer the player
	)

	_, err = p.Run()
	return err
}
