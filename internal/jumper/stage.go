package jumper

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-jumper/internal/config"
)

// Stage is the complete generated level. Slices keep generation order, which
// is also bottom-to-top order for steps.
type Stage struct {
	Steps   []*Step
	Enemies []*Enemy
	Stars   []*Star
	Ufo     *Ufo
}

// GenerateStage lays out a vertical stage of platforms, enemies, stars and the
// goal marker. Every gap between consecutive steps is strictly less than the
// player's maximum jump height, and the layout depends only on the values
// drawn from rnd.
func GenerateStage(cfg config.Config, rnd Random) (*Stage, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rnd == nil {
		return nil, errors.New("jumper: stage generation needs a random source")
	}

	maxJump := cfg.MaxJumpHeight()
	jitter := 0.0
	if cfg.Generator.GapJitterDivisor > 0 {
		jitter = maxJump / cfg.Generator.GapJitterDivisor
	}
	worldW := cfg.World.Width
	limit := cfg.World.Height - cfg.Generator.TopMargin

	stage := &Stage{}
	y := 0.0
	for i := 0; i == 0 || y < limit; i++ {
		// Draw order matters: tests replay fixed sequences.
		motion := MotionStatic
		if rnd.Float64() < cfg.Step.MovingChance {
			motion = MotionMoving
		}
		x := rnd.Float64() * (worldW - cfg.Step.Width)
		step := &Step{
			Motion: motion,
			State:  StepNormal,
			Pos:    mgl64.Vec2{x, y},
			W:      cfg.Step.Width,
			H:      cfg.Step.Height,
		}
		if motion == MotionMoving {
			step.Vel = mgl64.Vec2{cfg.Step.Velocity, 0}
		}
		stage.Steps = append(stage.Steps, step)

		if i > cfg.Enemy.MinIndex && i%cfg.Enemy.Every == 0 {
			stage.Enemies = append(stage.Enemies, newEnemy(cfg, rnd, y))
		}

		if rnd.Float64() < cfg.Star.Chance {
			stage.Stars = append(stage.Stars, newStar(cfg, rnd, step))
		}

		y += (maxJump - cfg.Generator.JumpSlack) - rnd.Float64()*jitter
	}

	stage.Ufo = &Ufo{
		Pos: mgl64.Vec2{worldW/2 - cfg.Ufo.Width/2, y},
		W:   cfg.Ufo.Width,
		H:   cfg.Ufo.Height,
	}
	return stage, nil
}

// newEnemy places an enemy at half the height of the step being generated.
func newEnemy(cfg config.Config, rnd Random, stepY float64) *Enemy {
	motion := MotionStatic
	if rnd.Float64() < cfg.Enemy.MovingChance {
		motion = MotionMoving
	}
	e := &Enemy{
		Motion: motion,
		Pos:    mgl64.Vec2{rnd.Float64() * (cfg.World.Width - cfg.Enemy.Width), stepY / 2},
		W:      cfg.Enemy.Width,
		H:      cfg.Enemy.Height,
	}
	if motion == MotionMoving {
		e.Vel = mgl64.Vec2{cfg.Enemy.Velocity, 0}
	}
	return e
}

// newStar places a star a little above and to the right of step.
func newStar(cfg config.Config, rnd Random, step *Step) *Star {
	x := step.Pos[0] + rnd.Float64()
	y := step.Pos[1] + cfg.Star.Height + rnd.Float64()*cfg.Generator.StarLift
	if maxX := cfg.World.Width - cfg.Star.Width; x > maxX {
		x = maxX
	}
	return &Star{
		State: StarAvailable,
		Pos:   mgl64.Vec2{x, y},
		W:     cfg.Star.Width,
		H:     cfg.Star.Height,
	}
}

// Counts returns the number of steps, enemies and stars.
func (s *Stage) Counts() (steps, enemies, stars int) {
	return len(s.Steps), len(s.Enemies), len(s.Stars)
}
