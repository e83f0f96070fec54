package jumper

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
)

func TestSteerAccel(t *testing.T) {
	c := config.DefaultConfig().Controls

	tests := []struct {
		name string
		down bool
		x, y float64
		want float64
	}{
		{"released", false, 10, 240, 0},
		{"left half", true, 10, 240, 5},
		{"left edge", true, 0, 0, 5},
		{"right half", true, 300, 240, -5},
		{"center line goes right", true, 160, 240, -5},
		{"right edge", true, 320, 480, -5},
		{"outside surface", true, 400, 240, 0},
		{"below surface", true, 10, -1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := &core.PointerFrame{Down: tc.down, X: tc.x, Y: tc.y}
			if got := steerAccel(p, c); got != tc.want {
				t.Errorf("steerAccel() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestUpdatePlayerGravityAndSteering(t *testing.T) {
	cfg := config.DefaultConfig()
	p := &Player{Pos: mgl64.Vec2{5, 10}, W: 1, H: 1}

	updatePlayer(p, 0.5, 5, cfg)

	if want := cfg.Physics.Gravity * 0.5; math.Abs(p.Vel[1]-want) > 1e-9 {
		t.Errorf("vy = %v, expected %v", p.Vel[1], want)
	}
	// Left half steers left at half the move velocity
	if want := -cfg.Player.MoveVelocity / 2; p.Vel[0] != want {
		t.Errorf("vx = %v, expected %v", p.Vel[0], want)
	}
	if !p.FacingLeft() {
		t.Error("player steering left should face left")
	}
	if p.State() != PlayerFall {
		t.Errorf("state = %v, expected Fall", p.State())
	}
}

func TestWrapX(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{5, 5},
		{0, 0},
		{10, 10},
		{-0.5, 9.5},
		{10.25, 0.25},
	}
	for _, tc := range tests {
		if got := wrapX(tc.x, 10); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("wrapX(%v) = %v, expected %v", tc.x, got, tc.want)
		}
	}
}

func TestOscillateReversesAtEdges(t *testing.T) {
	pos := mgl64.Vec2{7.9, 3}
	vel := mgl64.Vec2{2, 0}

	oscillate(&pos, &vel, 2, 10, 0.1)
	if pos[0] != 8 || vel[0] != -2 {
		t.Errorf("right edge: pos=%v vel=%v, expected x=8 vx=-2", pos, vel)
	}

	pos = mgl64.Vec2{0.1, 3}
	vel = mgl64.Vec2{-2, 0}
	oscillate(&pos, &vel, 2, 10, 0.1)
	if pos[0] != 0 || vel[0] != 2 {
		t.Errorf("left edge: pos=%v vel=%v, expected x=0 vx=2", pos, vel)
	}

	pos = mgl64.Vec2{4, 3}
	vel = mgl64.Vec2{2, 0}
	oscillate(&pos, &vel, 2, 10, 0.5)
	if pos[0] != 5 || vel[0] != 2 || pos[1] != 3 {
		t.Errorf("middle: pos=%v vel=%v, expected x=5 vx=2", pos, vel)
	}
}

func TestStepVanishLifecycle(t *testing.T) {
	s := &Step{Motion: MotionMoving, Pos: mgl64.Vec2{4, 0}, W: 2, H: 0.5, Vel: mgl64.Vec2{2, 0}}

	s.Vanish(0.3)
	if s.State != StepVanishing {
		t.Fatalf("state = %v, expected vanishing", s.State)
	}
	if s.Vel[0] != 0 {
		t.Error("vanishing step should stop moving")
	}

	updateStep(s, 0.2, 10)
	if s.State != StepVanishing || s.Pos[0] != 4 {
		t.Errorf("after 0.2s: state=%v x=%v, expected vanishing at 4", s.State, s.Pos[0])
	}
	if p := s.VanishProgress(0.3); p <= 0 || p >= 1 {
		t.Errorf("VanishProgress() = %v, expected between 0 and 1", p)
	}

	updateStep(s, 0.2, 10)
	if s.State != StepVanished {
		t.Errorf("after 0.4s: state=%v, expected vanished", s.State)
	}

	// Vanish is one-way
	s.Vanish(0.3)
	if s.State != StepVanished {
		t.Errorf("Vanish on vanished step changed state to %v", s.State)
	}
}
