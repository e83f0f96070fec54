package jumper

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
)

// steerAccel turns the pointer into a steering command: +accel while the
// pointer is held on the left half of the control surface, -accel on the
// right half, 0 when released. The right half wins on the center line.
func steerAccel(p Pointer, c config.ControlsConfig) float64 {
	if !p.IsDown() {
		return 0
	}
	x, y := p.Position()
	half := c.SurfaceWidth / 2
	accel := 0.0
	if core.NewRect(0, 0, half, c.SurfaceHeight).Contains(x, y) {
		accel = c.SteerAccel
	}
	if core.NewRect(half, 0, half, c.SurfaceHeight).Contains(x, y) {
		accel = -c.SteerAccel
	}
	return accel
}

// updatePlayer integrates gravity and applies steering. Horizontal velocity
// is set directly from accel each frame.
func updatePlayer(p *Player, dt, accel float64, cfg config.Config) {
	p.Vel[1] += cfg.Physics.Gravity * dt
	p.Vel[0] = -accel / 10 * cfg.Player.MoveVelocity
	p.Pos = p.Pos.Add(p.Vel.Mul(dt))
	p.Pos[0] = wrapX(p.Pos[0], cfg.World.Width)
}

// wrapX moves a body that left the world through one side to the other.
func wrapX(x, worldW float64) float64 {
	if x < 0 {
		x += worldW
	}
	if x > worldW {
		x -= worldW
	}
	return x
}

// oscillate moves a body horizontally, reversing at either world edge.
func oscillate(pos, vel *mgl64.Vec2, w, worldW, dt float64) {
	pos[0] += vel[0] * dt
	if pos[0] <= 0 {
		pos[0] = 0
		if vel[0] < 0 {
			vel[0] = -vel[0]
		}
	} else if pos[0]+w >= worldW {
		pos[0] = worldW - w
		if vel[0] > 0 {
			vel[0] = -vel[0]
		}
	}
}

// updateStep advances a step by dt: moving steps oscillate while Normal, and
// a Vanishing step counts down to Vanished.
func updateStep(s *Step, dt, worldW float64) {
	switch s.State {
	case StepNormal:
		switch s.Motion {
		case MotionStatic:
		case MotionMoving:
			oscillate(&s.Pos, &s.Vel, s.W, worldW, dt)
		}
	case StepVanishing:
		s.vanishLeft -= dt
		if s.vanishLeft <= 0 {
			s.vanishLeft = 0
			s.State = StepVanished
		}
	case StepVanished:
	}
}

// updateEnemy advances an enemy by dt.
func updateEnemy(e *Enemy, dt, worldW float64) {
	switch e.Motion {
	case MotionStatic:
	case MotionMoving:
		oscillate(&e.Pos, &e.Vel, e.W, worldW, dt)
	}
}
