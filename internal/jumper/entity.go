package jumper

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

// EntityKind tags the concrete type behind a Drawable.
type EntityKind int

const (
	KindStep EntityKind = iota
	KindEnemy
	KindStar
	KindUfo
	KindPlayer
)

// String returns a human-readable name for the kind.
func (k EntityKind) String() string {
	switch k {
	case KindStep:
		return "step"
	case KindEnemy:
		return "enemy"
	case KindStar:
		return "star"
	case KindUfo:
		return "ufo"
	case KindPlayer:
		return "player"
	default:
		return "unknown"
	}
}

// Drawable is anything the Renderer can draw.
type Drawable interface {
	Kind() EntityKind
	Bounds() core.Rect
}

// Motion is the movement variant shared by steps and enemies.
type Motion int

const (
	MotionStatic Motion = iota
	MotionMoving
)

// String returns a human-readable name for the motion.
func (m Motion) String() string {
	switch m {
	case MotionStatic:
		return "static"
	case MotionMoving:
		return "moving"
	default:
		return "unknown"
	}
}

// StepState is the lifecycle of a platform.
type StepState int

const (
	StepNormal StepState = iota
	StepVanishing
	StepVanished
)

// String returns a human-readable name for the step state.
func (s StepState) String() string {
	switch s {
	case StepNormal:
		return "normal"
	case StepVanishing:
		return "vanishing"
	case StepVanished:
		return "vanished"
	default:
		return "unknown"
	}
}

// Step is a platform the player lands on.
type Step struct {
	Motion     Motion
	State      StepState
	Pos        mgl64.Vec2 // Bottom-left corner
	W, H       float64
	Vel        mgl64.Vec2
	vanishLeft float64 // Seconds until Vanishing becomes Vanished
}

// Kind implements Drawable.
func (s *Step) Kind() EntityKind { return KindStep }

// Bounds implements Drawable.
func (s *Step) Bounds() core.Rect { return core.NewRect(s.Pos[0], s.Pos[1], s.W, s.H) }

// Vanish starts the one-way fade out. The step stops moving immediately.
func (s *Step) Vanish(seconds float64) {
	if s.State != StepNormal {
		return
	}
	s.State = StepVanishing
	s.Vel = mgl64.Vec2{}
	s.vanishLeft = seconds
	if seconds <= 0 {
		s.State = StepVanished
	}
}

// VanishProgress returns how far the fade has gone, 0 (solid) to 1 (gone).
func (s *Step) VanishProgress(total float64) float64 {
	switch s.State {
	case StepNormal:
		return 0
	case StepVanished:
		return 1
	}
	if total <= 0 {
		return 1
	}
	return core.ClampF(1-s.vanishLeft/total, 0, 1)
}

// Enemy ends the session on contact. Enemies are never removed.
type Enemy struct {
	Motion Motion
	Pos    mgl64.Vec2
	W, H   float64
	Vel    mgl64.Vec2
}

// Kind implements Drawable.
func (e *Enemy) Kind() EntityKind { return KindEnemy }

// Bounds implements Drawable.
func (e *Enemy) Bounds() core.Rect { return core.NewRect(e.Pos[0], e.Pos[1], e.W, e.H) }

// StarState is the lifecycle of a collectible.
type StarState int

const (
	StarAvailable StarState = iota
	StarCollected
)

// Star is a collectible worth one point.
type Star struct {
	State StarState
	Pos   mgl64.Vec2
	W, H  float64
}

// Kind implements Drawable.
func (s *Star) Kind() EntityKind { return KindStar }

// Bounds implements Drawable.
func (s *Star) Bounds() core.Rect { return core.NewRect(s.Pos[0], s.Pos[1], s.W, s.H) }

// Collect marks the star collected. It reports false if it already was.
func (s *Star) Collect() bool {
	if s.State == StarCollected {
		return false
	}
	s.State = StarCollected
	return true
}

// Ufo is the goal marker at the top of the stage.
type Ufo struct {
	Pos  mgl64.Vec2
	W, H float64
}

// Kind implements Drawable.
func (u *Ufo) Kind() EntityKind { return KindUfo }

// Bounds implements Drawable.
func (u *Ufo) Bounds() core.Rect { return core.NewRect(u.Pos[0], u.Pos[1], u.W, u.H) }

// PlayerState is the player's animation state, derived from vertical velocity.
type PlayerState int

const (
	PlayerJump PlayerState = iota
	PlayerFall
)

// Player is the character steered by the pointer.
type Player struct {
	Pos  mgl64.Vec2
	Vel  mgl64.Vec2
	W, H float64
}

// Kind implements Drawable.
func (p *Player) Kind() EntityKind { return KindPlayer }

// Bounds implements Drawable.
func (p *Player) Bounds() core.Rect { return core.NewRect(p.Pos[0], p.Pos[1], p.W, p.H) }

// State returns Jump while rising and Fall otherwise.
func (p *Player) State() PlayerState {
	if p.Vel[1] > 0 {
		return PlayerJump
	}
	return PlayerFall
}

// FacingLeft reports whether the player is moving left.
func (p *Player) FacingLeft() bool {
	return p.Vel[0] < 0
}

// hitStep launches the player upward.
func (p *Player) hitStep(jumpVelocity float64) {
	p.Vel[1] = jumpVelocity
}
