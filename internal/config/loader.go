package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

const fileName = "jumper.yaml"

// Load loads the jumper configuration.
// Search order: customPath -> ~/.jumper/configs/jumper.yaml -> ./configs/jumper.yaml -> embedded default.
// A custom path that cannot be read or parsed is an error; the other
// locations are skipped silently when missing or malformed.
func Load(customPath string) (JumperConfig, error) {
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		if cfg, err := LoadFile(path); err == nil {
			return cfg, nil
		}
	}

	return Parse(defaultJumperYAML)
}

// LoadFile reads, parses and validates a single config file.
func LoadFile(path string) (JumperConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return JumperConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults, so a file only needs
// to name the values it changes.
func Parse(data []byte) (JumperConfig, error) {
	cfg := DefaultJumperConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Resolve returns the file Load would read for customPath, or "" when the
// embedded default would be used.
func Resolve(customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg JumperConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks values the simulation relies on.
func (c JumperConfig) Validate() error {
	var errs []error

	if c.Physics.TimeStep <= 0 {
		errs = append(errs, fmt.Errorf("%w: physics.time_step must be positive", ErrInvalid))
	}
	if c.Physics.WrapCells <= 0 {
		errs = append(errs, fmt.Errorf("%w: physics.wrap_cells must be positive", ErrInvalid))
	}
	switch c.Physics.LandingSide {
	case LandingTop, LandingBottom:
	default:
		errs = append(errs, fmt.Errorf("%w: physics.landing_side %q (want %q or %q)",
			ErrInvalid, c.Physics.LandingSide, LandingTop, LandingBottom))
	}
	if c.Actor.Size.X <= 0 || c.Actor.Size.Y <= 0 {
		errs = append(errs, fmt.Errorf("%w: actor.size must be positive", ErrInvalid))
	}
	if c.Paddle.Size.X <= 0 || c.Paddle.Size.Y <= 0 {
		errs = append(errs, fmt.Errorf("%w: paddle.size must be positive", ErrInvalid))
	}
	if c.Level.BlockSize <= 0 || c.Level.WallThickness <= 0 {
		errs = append(errs, fmt.Errorf("%w: level.block_size and level.wall_thickness must be positive", ErrInvalid))
	}
	if c.Level.Right <= c.Level.Left || c.Level.Top <= c.Level.Bottom {
		errs = append(errs, fmt.Errorf("%w: level arena has no area", ErrInvalid))
	}
	for _, name := range c.Level.Walls {
		if !slices.Contains(WallNames, name) {
			errs = append(errs, fmt.Errorf("%w: unknown wall %q", ErrInvalid, name))
		}
	}
	if c.Bricks.Size.X <= 0 || c.Bricks.Size.Y <= 0 {
		errs = append(errs, fmt.Errorf("%w: bricks.size must be positive", ErrInvalid))
	}
	if c.Bricks.Gap < 0 {
		errs = append(errs, fmt.Errorf("%w: bricks.gap must not be negative", ErrInvalid))
	}

	return errors.Join(errs...)
}

func searchPaths() []string {
	paths := make([]string, 0, 2)
	if p := userConfigPath(fileName); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", fileName))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".jumper", "configs", filename)
}
