package jumper

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-jumper/internal/config"
)

// scriptedRandom replays a fixed sequence, repeating the last value once the
// script runs out.
type scriptedRandom struct {
	vals []float64
	i    int
}

func (r *scriptedRandom) Float64() float64 {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[len(r.vals)-1]
	if r.i < len(r.vals) {
		v = r.vals[r.i]
	}
	r.i++
	return v
}

// constRandom always returns the same value.
type constRandom float64

func (c constRandom) Float64() float64 { return float64(c) }

func TestGenerateStageReachable(t *testing.T) {
	cfg := config.DefaultConfig()
	maxJump := cfg.MaxJumpHeight()

	for seed := int64(1); seed <= 50; seed++ {
		stage, err := GenerateStage(cfg, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("seed %d: GenerateStage() failed: %v", seed, err)
		}
		if len(stage.Steps) == 0 {
			t.Fatalf("seed %d: no steps generated", seed)
		}
		if stage.Steps[0].Pos[1] != 0 {
			t.Errorf("seed %d: first step at y=%v, expected 0", seed, stage.Steps[0].Pos[1])
		}
		for i := 1; i < len(stage.Steps); i++ {
			gap := stage.Steps[i].Pos[1] - stage.Steps[i-1].Pos[1]
			if gap <= 0 || gap >= maxJump {
				t.Fatalf("seed %d: gap %d = %v, expected in (0, %v)", seed, i, gap, maxJump)
			}
		}
		last := stage.Steps[len(stage.Steps)-1]
		if stage.Ufo.Pos[1]-last.Pos[1] >= maxJump {
			t.Errorf("seed %d: goal unreachable from last step", seed)
		}
		if stage.Ufo.Pos[1] < cfg.World.Height-cfg.Generator.TopMargin {
			t.Errorf("seed %d: goal y=%v below %v", seed, stage.Ufo.Pos[1], cfg.World.Height-cfg.Generator.TopMargin)
		}

		for _, s := range stage.Steps {
			if s.Pos[0] < 0 || s.Pos[0]+s.W > cfg.World.Width {
				t.Errorf("seed %d: step out of world at x=%v", seed, s.Pos[0])
			}
		}
		for _, s := range stage.Stars {
			if s.Pos[0] < 0 || s.Pos[0]+s.W > cfg.World.Width {
				t.Errorf("seed %d: star out of world at x=%v", seed, s.Pos[0])
			}
		}
		for _, e := range stage.Enemies {
			if e.Pos[0] < 0 || e.Pos[0]+e.W > cfg.World.Width {
				t.Errorf("seed %d: enemy out of world at x=%v", seed, e.Pos[0])
			}
		}
	}
}

func TestGenerateStageDeterministic(t *testing.T) {
	cfg := config.DefaultConfig()
	a, err := GenerateStage(cfg, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("GenerateStage() failed: %v", err)
	}
	b, err := GenerateStage(cfg, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("GenerateStage() failed: %v", err)
	}

	if len(a.Steps) != len(b.Steps) || len(a.Enemies) != len(b.Enemies) || len(a.Stars) != len(b.Stars) {
		t.Fatalf("counts differ: %d/%d/%d vs %d/%d/%d",
			len(a.Steps), len(a.Enemies), len(a.Stars), len(b.Steps), len(b.Enemies), len(b.Stars))
	}
	for i := range a.Steps {
		if *a.Steps[i] != *b.Steps[i] {
			t.Errorf("step %d differs: %+v vs %+v", i, *a.Steps[i], *b.Steps[i])
		}
	}
	for i := range a.Enemies {
		if *a.Enemies[i] != *b.Enemies[i] {
			t.Errorf("enemy %d differs", i)
		}
	}
	for i := range a.Stars {
		if *a.Stars[i] != *b.Stars[i] {
			t.Errorf("star %d differs", i)
		}
	}
	if *a.Ufo != *b.Ufo {
		t.Errorf("goal differs: %+v vs %+v", *a.Ufo, *b.Ufo)
	}
}

func TestGenerateStageScriptedSingleStep(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.World.Height = 9 // Stop once y >= 4

	// kind (static), x, star roll (none), gap jitter
	rnd := &scriptedRandom{vals: []float64{0.5, 0, 0.9, 0}}
	stage, err := GenerateStage(cfg, rnd)
	if err != nil {
		t.Fatalf("GenerateStage() failed: %v", err)
	}

	if len(stage.Steps) != 1 {
		t.Fatalf("generated %d steps, expected 1", len(stage.Steps))
	}
	step := stage.Steps[0]
	if step.Motion != MotionStatic || step.Pos[0] != 0 || step.Pos[1] != 0 {
		t.Errorf("step = %+v, expected static at (0,0)", *step)
	}
	if len(stage.Stars) != 0 || len(stage.Enemies) != 0 {
		t.Errorf("unexpected stars=%d enemies=%d", len(stage.Stars), len(stage.Enemies))
	}

	wantY := cfg.MaxJumpHeight() - cfg.Generator.JumpSlack
	if math.Abs(stage.Ufo.Pos[1]-wantY) > 1e-9 {
		t.Errorf("goal y = %v, expected %v", stage.Ufo.Pos[1], wantY)
	}
	if want := cfg.World.Width/2 - cfg.Ufo.Width/2; stage.Ufo.Pos[0] != want {
		t.Errorf("goal x = %v, expected %v", stage.Ufo.Pos[0], want)
	}
	if rnd.i != 4 {
		t.Errorf("consumed %d random values, expected 4", rnd.i)
	}
}

func TestGenerateStageEnemyPlacement(t *testing.T) {
	cfg := config.DefaultConfig()
	// 0.5: static steps, moving enemies, no stars
	stage, err := GenerateStage(cfg, constRandom(0.5))
	if err != nil {
		t.Fatalf("GenerateStage() failed: %v", err)
	}

	var want []int
	for i := range stage.Steps {
		if i > cfg.Enemy.MinIndex && i%cfg.Enemy.Every == 0 {
			want = append(want, i)
		}
	}
	if len(stage.Enemies) != len(want) {
		t.Fatalf("generated %d enemies, expected %d", len(stage.Enemies), len(want))
	}
	if want[0] != 6 {
		t.Errorf("first enemy on step %d, expected 6", want[0])
	}
	for n, i := range want {
		e := stage.Enemies[n]
		if e.Pos[1] != stage.Steps[i].Pos[1]/2 {
			t.Errorf("enemy %d at y=%v, expected half of step %d (%v)", n, e.Pos[1], i, stage.Steps[i].Pos[1])
		}
		if e.Motion != MotionMoving || e.Vel[0] != cfg.Enemy.Velocity {
			t.Errorf("enemy %d: motion=%v vel=%v, expected moving at %v", n, e.Motion, e.Vel, cfg.Enemy.Velocity)
		}
	}
	if len(stage.Stars) != 0 {
		t.Errorf("generated %d stars with roll above chance", len(stage.Stars))
	}
}

func TestGenerateStageStarClampedToWorld(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.World.Height = 9
	cfg.Star.Width = 1.5

	// static step at the right edge, star roll hits, star x offset 0.99
	rnd := &scriptedRandom{vals: []float64{0.5, 1, 0, 0.99, 0.5, 0}}
	stage, err := GenerateStage(cfg, rnd)
	if err != nil {
		t.Fatalf("GenerateStage() failed: %v", err)
	}
	if len(stage.Stars) != 1 {
		t.Fatalf("generated %d stars, expected 1", len(stage.Stars))
	}
	star := stage.Stars[0]
	if want := cfg.World.Width - cfg.Star.Width; star.Pos[0] != want {
		t.Errorf("star x = %v, expected clamp to %v", star.Pos[0], want)
	}
	if want := cfg.Star.Height + 0.5*cfg.Generator.StarLift; math.Abs(star.Pos[1]-want) > 1e-9 {
		t.Errorf("star y = %v, expected %v", star.Pos[1], want)
	}
}

func TestGenerateStageWorstCaseTerminates(t *testing.T) {
	cfg := config.DefaultConfig()
	// Largest jitter every time gives the smallest gaps
	stage, err := GenerateStage(cfg, constRandom(0.999999))
	if err != nil {
		t.Fatalf("GenerateStage() failed: %v", err)
	}
	maxSteps := int(cfg.World.Height/cfg.MinGap()) + 2
	if len(stage.Steps) > maxSteps {
		t.Errorf("generated %d steps, expected at most %d", len(stage.Steps), maxSteps)
	}
}

func TestGenerateStageRejectsBadConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Player.JumpVelocity = 3

	_, err := GenerateStage(cfg, constRandom(0))
	if !errors.Is(err, config.ErrUnreachableJump) {
		t.Errorf("GenerateStage() error = %v, expected ErrUnreachableJump", err)
	}

	// Negative slack would push gaps past the jump apex
	cfg = config.DefaultConfig()
	cfg.Generator.JumpSlack = -1
	if _, err := GenerateStage(cfg, constRandom(0.1)); !errors.Is(err, config.ErrUnreachableJump) {
		t.Errorf("GenerateStage() with negative slack error = %v, expected ErrUnreachableJump", err)
	}

	if _, err := GenerateStage(config.DefaultConfig(), nil); err == nil {
		t.Error("GenerateStage() with nil random should fail")
	}
}
