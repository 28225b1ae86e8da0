// Package config provides YAML-based game configuration loading and
// hot reloading for the jumper game.
package config

// JumperConfig contains all configuration for the jumper game.
type JumperConfig struct {
	Physics PhysicsConfig `yaml:"physics"`
	Actor   ActorConfig   `yaml:"actor"`
	Paddle  PaddleConfig  `yaml:"paddle"`
	Level   LevelConfig   `yaml:"level"`
	Bricks  BrickConfig   `yaml:"bricks"`
	Audio   AudioConfig   `yaml:"audio"`
}

// Vec is a YAML-friendly pair of world units.
type Vec struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

// PhysicsConfig defines the fixed-timestep integrator and collision rules.
type PhysicsConfig struct {
	TimeStep  float32 `yaml:"time_step"` // Seconds per tick
	Gravity   float32 `yaml:"gravity"`   // Subtracted from velocity.y once per tick, not scaled by time_step
	JumpSpeed float32 `yaml:"jump_speed"`
	XSpeed    float32 `yaml:"x_speed"`
	WrapCells float32 `yaml:"wrap_cells"` // Horizontal wrap at ±wrap_cells * level.block_size

	// LandingSide selects which collision side clears the jumping flag:
	// "top" (actor lands on a platform) or "bottom".
	LandingSide string `yaml:"landing_side"`
}

// ActorConfig defines the jumping actor.
type ActorConfig struct {
	Size  Vec `yaml:"size"`
	Start Vec `yaml:"start"`

	// InitialDirection is normalized and scaled by physics.x_speed to give
	// the starting velocity. A zero direction starts at rest.
	InitialDirection Vec `yaml:"initial_direction"`
}

// PaddleConfig defines the paddle-like actor.
type PaddleConfig struct {
	MovementEnabled bool    `yaml:"movement_enabled"`
	Collides        bool    `yaml:"collides"` // Whether the paddle blocks the actor like a wall
	Y               float32 `yaml:"y"`
	Size            Vec     `yaml:"size"`
	Padding         float32 `yaml:"padding"`
	Speed           float32 `yaml:"speed"`
}

// LevelConfig defines the arena and which named walls are spawned.
type LevelConfig struct {
	BlockSize     float32  `yaml:"block_size"`
	WallThickness float32  `yaml:"wall_thickness"`
	Left          float32  `yaml:"left"`
	Right         float32  `yaml:"right"`
	Bottom        float32  `yaml:"bottom"`
	Top           float32  `yaml:"top"`
	Walls         []string `yaml:"walls"`
}

// BrickConfig defines the brick grid layout.
type BrickConfig struct {
	Enabled      bool    `yaml:"enabled"`
	Size         Vec     `yaml:"size"`
	Gap          float32 `yaml:"gap"`
	GapToPaddle  float32 `yaml:"gap_to_paddle"`
	GapToCeiling float32 `yaml:"gap_to_ceiling"` // Lower bound, row count is rounded down
	GapToSides   float32 `yaml:"gap_to_sides"`   // Lower bound, column count is rounded down
}

// AudioConfig defines the collision sound.
type AudioConfig struct {
	CollisionSound bool    `yaml:"collision_sound"`
	ToneHz         float64 `yaml:"tone_hz"`
	DurationMS     int     `yaml:"duration_ms"`
}

// Landing sides accepted by PhysicsConfig.LandingSide.
const (
	LandingTop    = "top"
	LandingBottom = "bottom"
)

// WallNames lists every named wall location a level may spawn.
var WallNames = []string{
	"left", "right", "bottom", "top",
	"platform1", "platform2", "platform3", "platform4",
	"platform5", "platform6", "platform7",
}
