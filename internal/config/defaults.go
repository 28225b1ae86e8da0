package config

import (
	_ "embed"
)

//go:embed defaults/jumper.yaml
var defaultJumperYAML []byte

// DefaultJumperConfig returns the built-in configuration. It mirrors
// defaults/jumper.yaml and is used when the embedded YAML cannot be parsed.
func DefaultJumperConfig() JumperConfig {
	return JumperConfig{
		Physics: PhysicsConfig{
			TimeStep:    1.0 / 60.0,
			Gravity:     50,
			JumpSpeed:   800,
			XSpeed:      300,
			WrapCells:   16,
			LandingSide: LandingTop,
		},
		Actor: ActorConfig{
			Size:             Vec{X: 40, Y: 60},
			Start:            Vec{X: 0, Y: -50},
			InitialDirection: Vec{X: -1, Y: 0},
		},
		Paddle: PaddleConfig{
			MovementEnabled: false,
			Collides:        true,
			Y:               -500,
			Size:            Vec{X: 40, Y: 60},
			Padding:         10,
			Speed:           300,
		},
		Level: LevelConfig{
			BlockSize:     20,
			WallThickness: 20,
			Left:          -450,
			Right:         450,
			Bottom:        -240,
			Top:           300,
			Walls: []string{
				"bottom",
				"platform1", "platform2", "platform3", "platform4",
				"platform5", "platform6", "platform7",
			},
		},
		Bricks: BrickConfig{
			Enabled:      false,
			Size:         Vec{X: 10, Y: 10},
			Gap:          5,
			GapToPaddle:  270,
			GapToCeiling: 20,
			GapToSides:   20,
		},
		Audio: AudioConfig{
			CollisionSound: false,
			ToneHz:         880,
			DurationMS:     50,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultJumperYAML
}
