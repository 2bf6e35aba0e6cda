package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// File is the on-disk layout of a configuration overlay. Sections that are
// absent keep their current values.
type File struct {
	Game      Config          `yaml:"game" toml:"game"`
	Actor     ActorConfig     `yaml:"actor" toml:"actor"`
	Animation AnimationConfig `yaml:"animation" toml:"animation"`
	Camera    CameraConfig    `yaml:"camera" toml:"camera"`
	Tiles     TilesConfig     `yaml:"tiles" toml:"tiles"`
	Debug     DebugConfig     `yaml:"debug" toml:"debug"`
	Logging   LoggingConfig   `yaml:"logging" toml:"logging"`
}

// Current snapshots the global configuration instances.
func Current() File {
	return File{
		Game:      *C,
		Actor:     Actor,
		Animation: Animation,
		Camera:    Camera,
		Tiles:     Tiles,
		Debug:     Debug,
		Logging:   Logging,
	}
}

// LoadFile overlays the YAML (.yaml, .yml) or TOML (.toml) file at path on
// the global configuration. Nothing is applied when decoding or validation
// fails.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	f := Current()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &f); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}

	if err := f.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", path, err)
	}
	f.Apply()
	return nil
}

// Apply copies f into the global configuration instances.
func (f File) Apply() {
	game := f.Game
	C = &game
	Actor = f.Actor
	Animation = f.Animation
	Camera = f.Camera
	Tiles = f.Tiles
	Debug = f.Debug
	Logging = f.Logging
}

// Validate checks that values are usable by the actor core.
func (f File) Validate() error {
	if f.Game.Width <= 0 || f.Game.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", f.Game.Width, f.Game.Height)
	}
	if f.Game.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", f.Game.TPS)
	}
	if f.Actor.MaxSpeed < 0 || f.Actor.Deceleration < 0 || f.Actor.Acceleration < 0 {
		return fmt.Errorf("actor acceleration, maxSpeed and deceleration must not be negative")
	}
	if f.Animation.FrameDuration <= 0 || f.Animation.CoinDuration <= 0 {
		return fmt.Errorf("animation frame durations must be positive")
	}
	if f.Camera.FollowSmoothing < 0 || f.Camera.FollowSmoothing > 1 {
		return fmt.Errorf("camera followSmoothing must be within [0, 1], got %.2f", f.Camera.FollowSmoothing)
	}
	if f.Camera.Zoom <= 0 {
		return fmt.Errorf("camera zoom must be positive, got %.2f", f.Camera.Zoom)
	}
	if f.Tiles.WindowWidth <= 0 || f.Tiles.WindowHeight <= 0 {
		return fmt.Errorf("tile window size must be positive, got %dx%d", f.Tiles.WindowWidth, f.Tiles.WindowHeight)
	}
	return nil
}
