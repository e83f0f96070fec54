// Package config provides YAML-based configuration loading for the jumper
// simulation: world dimensions, physics constants, entity sizes and the
// stage generator's probabilities.
package config

import (
	"errors"
	"fmt"
)

// ErrUnreachableJump is returned when the jump physics cannot make progress
// through the stage generator (the next platform gap would not be positive).
var ErrUnreachableJump = errors.New("config: jump height too small for stage generation")

// Config contains all configuration for the jumper game.
type Config struct {
	World     WorldConfig     `yaml:"world"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Step      StepConfig      `yaml:"step"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	Star      StarConfig      `yaml:"star"`
	Ufo       UfoConfig       `yaml:"ufo"`
	Generator GeneratorConfig `yaml:"generator"`
	Controls  ControlsConfig  `yaml:"controls"`
}

// WorldConfig defines the playfield and the visible camera window, in world units.
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	CameraWidth  float64 `yaml:"camera_width"`
	CameraHeight float64 `yaml:"camera_height"`
}

// PhysicsConfig defines global physics parameters.
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"` // Units/s², negative = down
}

// PlayerConfig defines the player's body and movement.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	JumpVelocity float64 `yaml:"jump_velocity"` // Vertical velocity set on landing
	MoveVelocity float64 `yaml:"move_velocity"` // Horizontal speed at full steer (accel 10)
}

// StepConfig defines platforms.
type StepConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Velocity      float64 `yaml:"velocity"`       // Horizontal speed of moving steps
	MovingChance  float64 `yaml:"moving_chance"`  // Probability a step is generated moving
	VanishChance  float64 `yaml:"vanish_chance"`  // Probability a landing starts vanishing
	VanishSeconds float64 `yaml:"vanish_seconds"` // Vanishing -> Vanished delay
}

// EnemyConfig defines enemies and how often the generator places them.
type EnemyConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Velocity     float64 `yaml:"velocity"`
	MovingChance float64 `yaml:"moving_chance"`
	Every        int     `yaml:"every"`     // Place an enemy on every Nth step...
	MinIndex     int     `yaml:"min_index"` // ...whose index is greater than this
}

// StarConfig defines collectible stars.
type StarConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Chance float64 `yaml:"chance"` // Probability a star is placed above a step
}

// UfoConfig defines the goal marker.
type UfoConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// GeneratorConfig defines the stage layout formula.
type GeneratorConfig struct {
	TopMargin        float64 `yaml:"top_margin"`         // Stop when y >= height - top_margin
	JumpSlack        float64 `yaml:"jump_slack"`         // Subtracted from max jump height
	GapJitterDivisor float64 `yaml:"gap_jitter_divisor"` // Random slack is up to maxJump/divisor
	StarLift         float64 `yaml:"star_lift"`          // Max random lift of a star above its step
}

// ControlsConfig defines the logical touch surface.
type ControlsConfig struct {
	SurfaceWidth  float64 `yaml:"surface_width"`
	SurfaceHeight float64 `yaml:"surface_height"`
	SteerAccel    float64 `yaml:"steer_accel"`
}

// MaxJumpHeight returns the apex height of a jump: v² / (2·|g|).
func (c Config) MaxJumpHeight() float64 {
	g := c.Physics.Gravity
	if g < 0 {
		g = -g
	}
	if g == 0 {
		return 0
	}
	v := c.Player.JumpVelocity
	return v * v / (2 * g)
}

// MinGap returns the smallest vertical gap the generator can produce.
func (c Config) MinGap() float64 {
	maxJump := c.MaxJumpHeight()
	jitter := 0.0
	if c.Generator.GapJitterDivisor > 0 {
		jitter = maxJump / c.Generator.GapJitterDivisor
	}
	return maxJump - c.Generator.JumpSlack - jitter
}

// CameraHalfHeight returns half of the visible window height.
func (c Config) CameraHalfHeight() float64 {
	return c.World.CameraHeight / 2
}

// Validate checks that the configuration can generate and run a stage.
func (c Config) Validate() error {
	if c.Physics.Gravity >= 0 {
		return fmt.Errorf("config: gravity must be negative, got %v", c.Physics.Gravity)
	}
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("config: world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	}
	if c.Step.Width <= 0 || c.Step.Width > c.World.Width {
		return fmt.Errorf("config: step width %v does not fit world width %v", c.Step.Width, c.World.Width)
	}
	if c.Enemy.Width <= 0 || c.Enemy.Width > c.World.Width {
		return fmt.Errorf("config: enemy width %v does not fit world width %v", c.Enemy.Width, c.World.Width)
	}
	if c.Enemy.Every <= 0 {
		return fmt.Errorf("config: enemy.every must be positive, got %d", c.Enemy.Every)
	}
	if c.Generator.JumpSlack < 0 || c.MaxJumpHeight() <= c.Generator.JumpSlack || c.MinGap() <= 0 {
		return fmt.Errorf("%w: max jump %.3f, slack %.3f, min gap %.3f",
			ErrUnreachableJump, c.MaxJumpHeight(), c.Generator.JumpSlack, c.MinGap())
	}
	if c.Controls.SurfaceWidth <= 0 || c.Controls.SurfaceHeight <= 0 {
		return fmt.Errorf("config: control surface must be positive, got %vx%v",
			c.Controls.SurfaceWidth, c.Controls.SurfaceHeight)
	}
	return nil
}
