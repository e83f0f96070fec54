// Package jumper implements the endless jumper simulation: a procedurally
// generated vertical stage, a player under gravity steered by a pointer,
// collision and scoring, and the ready/playing/game-over state machine.
//
// The package owns no I/O. Drawing, audio, persistence, pointer polling and
// the results screen are collaborators injected through Options.
package jumper

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-jumper/internal/config"
)

// State is the session's game state.
type State int

const (
	StateReady State = iota
	StatePlaying
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateReady:
		return "Ready"
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameOverCause records why a session ended. Reaching the goal ends the
// session through the same GameOver state as dying.
type GameOverCause int

const (
	CauseNone GameOverCause = iota
	CauseGoal
	CauseEnemy
	CauseFall
)

// String returns the cause name used in logs and stored runs.
func (c GameOverCause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseGoal:
		return "goal"
	case CauseEnemy:
		return "enemy"
	case CauseFall:
		return "fall"
	default:
		return "unknown"
	}
}

// Options carries the collaborators of a session. Nil fields fall back to
// no-op implementations; a nil Random is seeded from the clock.
type Options struct {
	Random     Random
	Renderer   Renderer
	Sound      SoundPlayer
	HighScores HighScoreStore
	Pointer    Pointer
	Results    Results
	Logger     *log.Logger
}

// Session is one run of the game, from Ready to GameOver.
type Session struct {
	cfg    config.Config
	stage  *Stage
	player *Player

	state        State
	cause        GameOverCause
	score        int
	highScore    int
	heightSoFar  float64
	resultsShown bool

	rnd      Random
	renderer Renderer
	sound    SoundPlayer
	scores   HighScoreStore
	pointer  Pointer
	results  Results
	logger   *log.Logger
}

// NewSession validates cfg, generates the stage and places the player on the
// first step height in the middle of the world.
func NewSession(cfg config.Config, opts Options) (*Session, error) {
	s := &Session{
		cfg:      cfg,
		state:    StateReady,
		rnd:      opts.Random,
		renderer: opts.Renderer,
		sound:    opts.Sound,
		scores:   opts.HighScores,
		pointer:  opts.Pointer,
		results:  opts.Results,
		logger:   opts.Logger,
	}
	if s.rnd == nil {
		s.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.renderer == nil {
		s.renderer = nopRenderer{}
	}
	if s.sound == nil {
		s.sound = nopSound{}
	}
	if s.scores == nil {
		s.scores = &MemoryHighScore{}
	}
	if s.pointer == nil {
		s.pointer = idlePointer{}
	}
	if s.results == nil {
		s.results = nopResults{}
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	stage, err := GenerateStage(cfg, s.rnd)
	if err != nil {
		return nil, err
	}
	s.stage = stage

	s.player = &Player{
		Pos: mgl64.Vec2{cfg.World.Width/2 - cfg.Player.Width/2, cfg.Step.Height},
		W:   cfg.Player.Width,
		H:   cfg.Player.Height,
	}
	s.highScore = s.scores.HighScore()

	steps, enemies, stars := stage.Counts()
	s.logger.Debug("stage generated",
		"steps", steps, "enemies", enemies, "stars", stars, "goal_y", stage.Ufo.Pos[1])

	return s, nil
}

// Update advances the session by dt seconds.
func (s *Session) Update(dt float64) {
	switch s.state {
	case StateReady:
		if s.pointer.JustPressed() {
			s.setState(StatePlaying)
		}
	case StatePlaying:
		s.updatePlaying(dt)
	case StateGameOver:
		if s.pointer.JustPressed() && !s.resultsShown {
			s.resultsShown = true
			s.results.ShowResults(s.score)
		}
	}
}

func (s *Session) updatePlaying(dt float64) {
	accel := steerAccel(s.pointer, s.cfg.Controls)

	worldW := s.cfg.World.Width
	for _, step := range s.stage.Steps {
		updateStep(step, dt, worldW)
	}
	for _, e := range s.stage.Enemies {
		updateEnemy(e, dt, worldW)
	}

	// Floor bounce below the first step
	if s.player.Pos[1] < s.player.H/2 {
		s.player.hitStep(s.cfg.Player.JumpVelocity)
		s.sound.Play(SoundLand)
	}
	updatePlayer(s.player, dt, accel, s.cfg)
	if s.player.Pos[1] > s.heightSoFar {
		s.heightSoFar = s.player.Pos[1]
	}

	s.checkCollisions()
	if s.state == StatePlaying {
		s.checkFall()
	}
}

func (s *Session) setState(next State) {
	if next == s.state {
		return
	}
	s.logger.Info("state changed", "from", s.state, "to", next)
	s.state = next
}

func (s *Session) endGame(cause GameOverCause) {
	s.cause = cause
	s.setState(StateGameOver)
	s.logger.Info("game over", "cause", cause, "score", s.score, "height", s.heightSoFar)
}

// Draw hands every visible entity to the renderer, back to front.
func (s *Session) Draw() {
	for _, step := range s.stage.Steps {
		if step.State != StepVanished {
			s.renderer.Draw(step)
		}
	}
	for _, e := range s.stage.Enemies {
		s.renderer.Draw(e)
	}
	for _, star := range s.stage.Stars {
		if star.State == StarAvailable {
			s.renderer.Draw(star)
		}
	}
	s.renderer.Draw(s.stage.Ufo)
	s.renderer.Draw(s.player)
}

// State returns the current game state.
func (s *Session) State() State { return s.state }

// Cause returns why the session ended, or CauseNone while it runs.
func (s *Session) Cause() GameOverCause { return s.cause }

// Score returns the stars collected this session.
func (s *Session) Score() int { return s.score }

// HighScore returns the best score, including this session.
func (s *Session) HighScore() int { return s.highScore }

// HeightSoFar returns the highest y the player has reached.
func (s *Session) HeightSoFar() float64 { return s.heightSoFar }

// Player returns the player entity.
func (s *Session) Player() *Player { return s.player }

// Stage returns the generated stage.
func (s *Session) Stage() *Stage { return s.stage }

// Config returns the configuration the session was built with.
func (s *Session) Config() config.Config { return s.cfg }

// Snapshot is a copy of the session's observable state.
type Snapshot struct {
	State       State
	Cause       GameOverCause
	Score       int
	HighScore   int
	HeightSoFar float64
	PlayerPos   mgl64.Vec2
	PlayerVel   mgl64.Vec2
	PlayerState PlayerState
}

// Snapshot returns the current observable state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		State:       s.state,
		Cause:       s.cause,
		Score:       s.score,
		HighScore:   s.highScore,
		HeightSoFar: s.heightSoFar,
		PlayerPos:   s.player.Pos,
		PlayerVel:   s.player.Vel,
		PlayerState: s.player.State(),
	}
}
