package config

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/Carmen-Shannon/oxy-mapview/engine/controls"
	"github.com/Carmen-Shannon/oxy-mapview/engine/input"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate and Load when a value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the file configuration for the map viewer.
// Fields omitted from the file keep the values from Default.
type Config struct {
	Controls ControlsConfig `yaml:"controls"`
	Camera   CameraConfig   `yaml:"camera"`
	Window   WindowConfig   `yaml:"window"`
	Engine   EngineConfig   `yaml:"engine"`
}

// ControlsConfig configures the keyboard pitch controller.
type ControlsConfig struct {
	Speed          float64        `yaml:"speed"`
	Responsiveness float64        `yaml:"responsiveness"`
	Softness       float64        `yaml:"softness"`
	Bindings       BindingsConfig `yaml:"bindings"`
}

// BindingsConfig lists key combinations in "Alt+ArrowUp" notation.
type BindingsConfig struct {
	Raise []string `yaml:"raise"`
	Lower []string `yaml:"lower"`
}

// CameraConfig sets the initial view state.
type CameraConfig struct {
	Distance    float64 `yaml:"distance"`
	MinDistance float64 `yaml:"min_distance"`
	MaxDistance float64 `yaml:"max_distance"`
	// AngleDegrees is the initial pitch in degrees, 0 = top-down.
	AngleDegrees float64 `yaml:"angle_degrees"`
}

// WindowConfig sets the window title and initial size.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// EngineConfig sets the frame driver behavior.
type EngineConfig struct {
	// FrameLimit caps frames per second; 0 leaves the loop uncapped.
	FrameLimit float64 `yaml:"frame_limit"`
	Profiling  bool    `yaml:"profiling"`
}

// Default returns the built-in configuration.
//
// Returns:
//   - *Config: a fully populated configuration
func Default() *Config {
	defaults := controls.DefaultBindings()
	return &Config{
		Controls: ControlsConfig{
			Speed:          0.04,
			Responsiveness: 0.15,
			Softness:       controls.DefaultSoftness,
			Bindings: BindingsConfig{
				Raise: combinationStrings(defaults.Raise),
				Lower: combinationStrings(defaults.Lower),
			},
		},
		Camera: CameraConfig{
			Distance:    250,
			MinDistance: 5,
			MaxDistance: 10000,
		},
		Window: WindowConfig{
			Title:  "oxy-mapview",
			Width:  1280,
			Height: 720,
		},
		Engine: EngineConfig{
			FrameLimit: 60,
		},
	}
}

// Load reads and validates a YAML configuration file layered over Default.
//
// Parameters:
//   - path: path to the YAML file
//
// Returns:
//   - *Config: the merged configuration
//   - error: if the file cannot be read, parsed or validated
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over Default and validates the result.
//
// Parameters:
//   - data: YAML document
//
// Returns:
//   - *Config: the merged configuration
//   - error: if the document cannot be parsed or validated
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field for a usable value.
//
// Returns:
//   - error: wraps ErrInvalidConfig (or input.ErrInvalidCombination) describing the first problem found
func (c *Config) Validate() error {
	ctl := c.Controls
	if !finite(ctl.Speed) || ctl.Speed < 0 {
		return fmt.Errorf("%w: controls.speed %v must be finite and >= 0", ErrInvalidConfig, ctl.Speed)
	}
	if !finite(ctl.Responsiveness) || ctl.Responsiveness < 0 || ctl.Responsiveness > 1 {
		return fmt.Errorf("%w: controls.responsiveness %v must be in [0, 1]", ErrInvalidConfig, ctl.Responsiveness)
	}
	if !finite(ctl.Softness) || ctl.Softness < 0 || ctl.Softness > controls.MaxSoftness {
		return fmt.Errorf("%w: controls.softness %v must be in [0, %v]", ErrInvalidConfig, ctl.Softness, controls.MaxSoftness)
	}
	if len(ctl.Bindings.Raise) == 0 || len(ctl.Bindings.Lower) == 0 {
		return fmt.Errorf("%w: controls.bindings needs at least one raise and one lower combination", ErrInvalidConfig)
	}
	if _, err := c.Bindings(); err != nil {
		return err
	}

	cam := c.Camera
	if !finite(cam.MinDistance) || !finite(cam.MaxDistance) || cam.MinDistance <= 0 || cam.MinDistance > cam.MaxDistance {
		return fmt.Errorf("%w: camera distance bounds [%v, %v] must satisfy 0 < min <= max", ErrInvalidConfig, cam.MinDistance, cam.MaxDistance)
	}
	if !finite(cam.Distance) || !finite(cam.AngleDegrees) {
		return fmt.Errorf("%w: camera distance and angle must be finite", ErrInvalidConfig)
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d must be positive", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if !finite(c.Engine.FrameLimit) || c.Engine.FrameLimit < 0 {
		return fmt.Errorf("%w: engine.frame_limit %v must be >= 0", ErrInvalidConfig, c.Engine.FrameLimit)
	}
	return nil
}

// Bindings parses the configured combination strings.
//
// Returns:
//   - controls.Bindings: the parsed binding table
//   - error: wraps input.ErrInvalidCombination naming the offending entry
func (c *Config) Bindings() (controls.Bindings, error) {
	raise, err := parseCombinations("raise", c.Controls.Bindings.Raise)
	if err != nil {
		return controls.Bindings{}, err
	}
	lower, err := parseCombinations("lower", c.Controls.Bindings.Lower)
	if err != nil {
		return controls.Bindings{}, err
	}
	return controls.Bindings{Raise: raise, Lower: lower}, nil
}

// NewAngleController builds a pitch controller from the controls section.
//
// Parameters:
//   - logger: optional logger for controller transitions (nil for none)
//   - options: extra options applied after the configured ones
//
// Returns:
//   - controls.AngleController: the configured controller
//   - error: if the bindings or controller arguments are invalid
func (c *Config) NewAngleController(logger *log.Logger, options ...controls.AngleControllerOption) (controls.AngleController, error) {
	bindings, err := c.Bindings()
	if err != nil {
		return nil, err
	}
	opts := []controls.AngleControllerOption{
		controls.WithBindings(bindings),
		controls.WithSoftness(c.Controls.Softness),
		controls.WithLogger(logger),
	}
	return controls.NewAngleController(c.Controls.Speed, c.Controls.Responsiveness, append(opts, options...)...)
}

func parseCombinations(action string, specs []string) ([]input.KeyCombination, error) {
	out := make([]input.KeyCombination, 0, len(specs))
	for i, s := range specs {
		kc, err := input.ParseCombination(s)
		if err != nil {
			return nil, fmt.Errorf("controls.bindings.%s[%d]: %w", action, i, err)
		}
		out = append(out, kc)
	}
	return out, nil
}

func combinationStrings(combos []input.KeyCombination) []string {
	out := make([]string, len(combos))
	for i, kc := range combos {
		out[i] = kc.String()
	}
	return out
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
