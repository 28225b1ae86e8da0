package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultMatchesBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(default) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultJumperConfig()) {
		t.Errorf("embedded YAML and DefaultJumperConfig() differ:\n%+v\n%+v", cfg, DefaultJumperConfig())
	}
}

func TestDefaultsPreserveSourceBehavior(t *testing.T) {
	cfg := DefaultJumperConfig()

	if cfg.Paddle.MovementEnabled {
		t.Error("paddle movement should be disabled by default")
	}
	if cfg.Bricks.Enabled {
		t.Error("brick grid should be empty by default")
	}
	if cfg.Audio.CollisionSound {
		t.Error("collision sound should be off by default")
	}
	if cfg.Physics.LandingSide != LandingTop {
		t.Errorf("landing side = %q, expected top", cfg.Physics.LandingSide)
	}
}

func TestLoadCustomPathOverridesOnlyNamedValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("physics:\n  gravity: 25\nbricks:\n  enabled: true\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Physics.Gravity != 25 {
		t.Errorf("gravity = %v, expected 25", cfg.Physics.Gravity)
	}
	if !cfg.Bricks.Enabled {
		t.Error("bricks.enabled should be true")
	}
	if cfg.Physics.JumpSpeed != 800 {
		t.Errorf("jump_speed = %v, expected default 800", cfg.Physics.JumpSpeed)
	}
	if len(cfg.Level.Walls) != 8 {
		t.Errorf("walls = %v, expected the 8 default walls", cfg.Level.Walls)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom path should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*JumperConfig)
	}{
		{"zero time step", func(c *JumperConfig) { c.Physics.TimeStep = 0 }},
		{"unknown landing side", func(c *JumperConfig) { c.Physics.LandingSide = "sideways" }},
		{"zero actor width", func(c *JumperConfig) { c.Actor.Size.X = 0 }},
		{"negative brick size", func(c *JumperConfig) { c.Bricks.Size.Y = -1 }},
		{"negative brick gap", func(c *JumperConfig) { c.Bricks.Gap = -10 }},
		{"inverted arena", func(c *JumperConfig) { c.Level.Left, c.Level.Right = 10, -10 }},
		{"unknown wall", func(c *JumperConfig) { c.Level.Walls = append(c.Level.Walls, "platform9") }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultJumperConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}

	if err := DefaultJumperConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestResolveCustomPath(t *testing.T) {
	if got := Resolve("/tmp/some.yaml"); got != "/tmp/some.yaml" {
		t.Errorf("Resolve() = %q, expected the custom path", got)
	}
}

func TestMarshalLoadsBack(t *testing.T) {
	cfg := DefaultJumperConfig()
	cfg.Paddle.MovementEnabled = true

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if !back.Paddle.MovementEnabled {
		t.Error("paddle.movement_enabled lost in YAML output")
	}
}
