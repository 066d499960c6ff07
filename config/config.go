// Package config provides configuration loading and access for the wing.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/pthm-cable/plumage/curve"
	"github.com/pthm-cable/plumage/params"
	"github.com/pthm-cable/plumage/placement"
	"github.com/pthm-cable/plumage/transform"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all configuration parameters.
type Config struct {
	Screen     ScreenConfig         `yaml:"screen"`
	Camera     CameraConfig         `yaml:"camera"`
	Wing       WingConfig           `yaml:"wing"`
	Curve      curve.Constants      `yaml:"curve"`
	Attach     transform.Attachment `yaml:"attach"`
	Motion     transform.Motion     `yaml:"motion"`
	Parameters params.Vector        `yaml:"parameters"`
	Telemetry  TelemetryConfig      `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	TargetFPS  int    `yaml:"target_fps"`
	Background string `yaml:"background"` // hex RGB, e.g. "#1b2a3a"
}

// CameraConfig holds the initial view.
type CameraConfig struct {
	EyeX        float64 `yaml:"eye_x"`
	EyeY        float64 `yaml:"eye_y"`
	EyeZ        float64 `yaml:"eye_z"`
	FOV         float64 `yaml:"fov"` // vertical field of view, degrees
	MinFOV      float64 `yaml:"min_fov"`
	MaxFOV      float64 `yaml:"max_fov"`
	MinDistance float64 `yaml:"min_distance"`
	MaxDistance float64 `yaml:"max_distance"`
}

// WingConfig holds the layout and update strategy.
type WingConfig struct {
	Mode     params.Mode      `yaml:"mode"`
	Layers   []float64        `yaml:"layers"` // layer weights, 0 = base, 1 = tip
	Sides    []placement.Side `yaml:"sides"`
	MeshPath string           `yaml:"mesh_path"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"` // seconds between stats log lines
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
	HeadlessFrameRate   float64 `yaml:"headless_frame_rate"` // simulated frames per second
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32 int32   // Screen.Width as int32 for raylib
	ScreenH32 int32   // Screen.Height as int32 for raylib
	FrameDT   float64 // 1 / Telemetry.HeadlessFrameRate
	// StatsEvery is how many headless frames make one stats window.
	StatsEvery int
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in the file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.Wing.Layers) == 0 {
		return fmt.Errorf("wing.layers: at least one layer is required")
	}
	for i, w := range c.Wing.Layers {
		if w < 0 || w > 1 {
			return fmt.Errorf("wing.layers[%d]: weight %v outside [0, 1]", i, w)
		}
	}
	if len(c.Wing.Sides) == 0 {
		return fmt.Errorf("wing.sides: at least one side is required")
	}
	if c.Camera.MinFOV > c.Camera.MaxFOV {
		return fmt.Errorf("camera: min_fov %v above max_fov %v", c.Camera.MinFOV, c.Camera.MaxFOV)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = int32(c.Screen.Width)
	c.Derived.ScreenH32 = int32(c.Screen.Height)

	// Out-of-range starting parameters are pulled back in, not rejected
	c.Parameters = c.Parameters.Clamped()

	if c.Telemetry.HeadlessFrameRate <= 0 {
		c.Telemetry.HeadlessFrameRate = 60
	}
	c.Derived.FrameDT = 1 / c.Telemetry.HeadlessFrameRate

	c.Derived.StatsEvery = int(c.Telemetry.StatsWindow * c.Telemetry.HeadlessFrameRate)
	if c.Derived.StatsEvery < 1 {
		c.Derived.StatsEvery = 1
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
