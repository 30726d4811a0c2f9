package game

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"

	"github.com/lucasb-eyer/go-colorful"
)

// Config holds simulation and display configuration
type Config struct {
	// BodyCount is the number of bodies created at start. Not loadable
	// from file or flags; the population is fixed.
	BodyCount int `json:"-"`

	// WorldSize is the side of the square the bodies are scattered in
	WorldSize float64 `json:"world_size"`

	// InitialSpeed bounds each initial velocity component to (-InitialSpeed, InitialSpeed)
	InitialSpeed float64 `json:"initial_speed"`

	// CentreMass is the mass given to body 0, the camera's tracked centre
	CentreMass float64 `json:"centre_mass"`

	// ScreenCentre is the raster point the centre body is drawn at
	ScreenCentre float64 `json:"screen_centre"`

	// ParticleRadius is the radius of every drawn circle
	ParticleRadius float64 `json:"particle_radius"`

	// Wrap folds bodies leaving the world square back in
	Wrap bool `json:"wrap"`

	// Seed for the initial distribution, 0 picks one from the clock
	Seed int64 `json:"seed"`

	// TPS is the target frame rate of the host loop
	TPS int `json:"tps"`

	// ScreenWidth is the window width in pixels
	ScreenWidth int `json:"screen_width"`

	// ScreenHeight is the window height in pixels
	ScreenHeight int `json:"screen_height"`

	// Zoom of the output viewport; the camera itself never scales
	Zoom float64 `json:"zoom"`

	// Background and Foreground are hex colours such as "#030510"
	Background string `json:"background"`
	Foreground string `json:"foreground"`

	// ProfileDir enables CPU/trace capture on FPS drops when non-empty
	ProfileDir string `json:"profile_dir"`

	// MinFPS is the threshold below which a profile is captured
	MinFPS float64 `json:"min_fps"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		BodyCount:      60,
		WorldSize:      1000,
		InitialSpeed:   5,
		CentreMass:     150,
		ScreenCentre:   3000,
		ParticleRadius: 3,
		TPS:            60,
		ScreenWidth:    1024,
		ScreenHeight:   768,
		Zoom:           1.0,
		Background:     "#030510",
		Foreground:     "#c8c8ff",
		MinFPS:         45,
	}
}

// LoadConfig reads a JSON file over the defaults
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first out-of-range value
func (c Config) Validate() error {
	switch {
	case c.BodyCount < 1:
		return fmt.Errorf("body count must be positive, got %d", c.BodyCount)
	case c.WorldSize <= 0:
		return fmt.Errorf("world size must be positive, got %v", c.WorldSize)
	case c.InitialSpeed < 0:
		return fmt.Errorf("initial speed must not be negative, got %v", c.InitialSpeed)
	case c.ParticleRadius <= 0:
		return fmt.Errorf("particle radius must be positive, got %v", c.ParticleRadius)
	case c.TPS < 1:
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	case c.ScreenWidth < 1 || c.ScreenHeight < 1:
		return fmt.Errorf("screen size must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	case c.Zoom <= 0:
		return fmt.Errorf("zoom must be positive, got %v", c.Zoom)
	}
	if _, err := ParseColor(c.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	if _, err := ParseColor(c.Foreground); err != nil {
		return fmt.Errorf("foreground: %w", err)
	}
	return nil
}

// BackgroundColor returns the parsed background, falling back to black
func (c Config) BackgroundColor() color.RGBA {
	clr, err := ParseColor(c.Background)
	if err != nil {
		return color.RGBA{0, 0, 0, 255}
	}
	return clr
}

// ForegroundColor returns the parsed body colour, falling back to pale blue
func (c Config) ForegroundColor() color.RGBA {
	clr, err := ParseColor(c.Foreground)
	if err != nil {
		return color.RGBA{200, 200, 255, 255}
	}
	return clr
}

// ParseColor parses a "#rrggbb" hex string
func ParseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad colour %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}, nil
}
