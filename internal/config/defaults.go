package config

import (
	_ "embed"
)

//go:embed defaults/jumper.yaml
var defaultJumperYAML []byte

// DefaultConfig returns the default jumper configuration.
func DefaultConfig() Config {
	return Config{
		World: WorldConfig{
			Width:        10,
			Height:       15 * 20,
			CameraWidth:  10,
			CameraHeight: 15,
		},
		Physics: PhysicsConfig{
			Gravity: -12,
		},
		Player: PlayerConfig{
			Width:        1.0,
			Height:       1.0,
			JumpVelocity: 11,
			MoveVelocity: 20,
		},
		Step: StepConfig{
			Width:         2.0,
			Height:        0.5,
			Velocity:      2.0,
			MovingChance:  0.2,
			VanishChance:  0.5,
			VanishSeconds: 0.3,
		},
		Enemy: EnemyConfig{
			Width:        1.0,
			Height:       1.0,
			Velocity:     2.0,
			MovingChance: 0.6,
			Every:        3,
			MinIndex:     3,
		},
		Star: StarConfig{
			Width:  0.8,
			Height: 0.8,
			Chance: 0.4,
		},
		Ufo: UfoConfig{
			Width:  2.0,
			Height: 1.3,
		},
		Generator: GeneratorConfig{
			TopMargin:        5,
			JumpSlack:        0.5,
			GapJitterDivisor: 3,
			StarLift:         3,
		},
		Controls: ControlsConfig{
			SurfaceWidth:  320,
			SurfaceHeight: 480,
			SteerAccel:    5.0,
		},
	}
}

// DefaultYAML returns the embedded default YAML, printed by `jumper config --defaults`.
func DefaultYAML() []byte {
	return defaultJumperYAML
}
