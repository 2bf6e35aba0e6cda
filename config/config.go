package config

import "image/color"

// ActorConfig contains the default kinematics for newly created actors
type ActorConfig struct {
	// Movement (pixels, seconds)
	Acceleration float64 `yaml:"acceleration" toml:"acceleration"`
	MaxSpeed     float64 `yaml:"maxSpeed" toml:"max_speed"`
	Deceleration float64 `yaml:"deceleration" toml:"deceleration"`

	// Wander behaviour of the demo hero
	WanderTurnInterval float64 `yaml:"wanderTurnInterval" toml:"wander_turn_interval"` // seconds between heading changes
	WanderTurnDegrees  float64 `yaml:"wanderTurnDegrees" toml:"wander_turn_degrees"`
}

// AnimationConfig contains animation timing defaults
type AnimationConfig struct {
	FrameDuration float64 `yaml:"frameDuration" toml:"frame_duration"` // seconds per frame
	CoinDuration  float64 `yaml:"coinDuration" toml:"coin_duration"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 `yaml:"followSmoothing" toml:"follow_smoothing"` // How fast camera follows target (0.0-1.0)
	PanDuration     float64 `yaml:"panDuration" toml:"pan_duration"`         // seconds for tweened pans
	Zoom            float64 `yaml:"zoom" toml:"zoom"`
}

// TilesConfig contains tile layer configuration
type TilesConfig struct {
	// Secondary camera viewport, independent from the window size
	WindowWidth  int `yaml:"windowWidth" toml:"window_width"`
	WindowHeight int `yaml:"windowHeight" toml:"window_height"`

	// Only layers with the "render" custom property are drawn when set
	RenderPropertyOnly bool `yaml:"renderPropertyOnly" toml:"render_property_only"`
}

// DebugConfig contains debug overlay options
type DebugConfig struct {
	ShowBounds bool       `yaml:"showBounds" toml:"show_bounds"`
	ShowHUD    bool       `yaml:"showHUD" toml:"show_hud"`
	BoundColor color.RGBA `yaml:"-" toml:"-"`
	WorldColor color.RGBA `yaml:"-" toml:"-"`
	HUDColor   color.RGBA `yaml:"-" toml:"-"`
	HUDFont    float64    `yaml:"hudFontSize" toml:"hud_font_size"`
}

// LoggingConfig contains logger setup
type LoggingConfig struct {
	Level       string `yaml:"level" toml:"level"`
	Development bool   `yaml:"development" toml:"development"`
}

// Config holds general game configuration
type Config struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
	TPS    int `yaml:"tps" toml:"tps"`
}

// Global configuration instances
var C *Config
var Actor ActorConfig
var Animation AnimationConfig
var Camera CameraConfig
var Tiles TilesConfig
var Debug DebugConfig
var Logging LoggingConfig

// Shared RGBA color constants
var (
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Green  = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Red    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Cyan   = color.RGBA{R: 0, G: 255, B: 255, A: 255}
)

func init() {
	Reset()
}

// Reset restores every configuration instance to its built-in default.
func Reset() {
	C = &Config{
		Width:  800,
		Height: 600,
		TPS:    60,
	}

	Actor = ActorConfig{
		Acceleration: 400.0,
		MaxSpeed:     100.0,
		Deceleration: 400.0,

		WanderTurnInterval: 1.5,
		WanderTurnDegrees:  70.0,
	}

	Animation = AnimationConfig{
		FrameDuration: 0.1,
		CoinDuration:  0.08,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
		PanDuration:     0.75,
		Zoom:            1.0,
	}

	// Tile camera viewport, kept separate from the window
	Tiles = TilesConfig{
		WindowWidth:        800,
		WindowHeight:       600,
		RenderPropertyOnly: false,
	}

	Debug = DebugConfig{
		ShowBounds: false,
		ShowHUD:    true,
		BoundColor: Green,
		WorldColor: Red,
		HUDColor:   White,
		HUDFont:    12,
	}

	Logging = LoggingConfig{
		Level:       "info",
		Development: true,
	}
}
