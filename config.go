package backdrop

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/phanxgames/backdrop/scene"
	"gopkg.in/yaml.v3"
)

// WindowConfig sizes the host window.
type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Resizable bool   `yaml:"resizable"`
}

// Config is the YAML document read by the backdrop host.
//
//	window:
//	  title: Backdrop
//	  width: 1280
//	  height: 720
//	label: Pc
//	policy: queue
//	interval: 8s
//	backgrounds:
//	  - id: dusk
//	    path: images/dusk.png
type Config struct {
	Window WindowConfig `yaml:"window"`

	// Label is the watermark text; empty disables it.
	Label      string `yaml:"label"`
	LabelColor uint32 `yaml:"labelColor"`
	FlashColor uint32 `yaml:"flashColor"`

	Policy Policy `yaml:"policy"`
	// Interval between automatic background changes; 0 disables cycling.
	Interval time.Duration `yaml:"interval"`
	// Seed for per-cell durations; 0 picks a random seed.
	Seed uint64 `yaml:"seed"`
	// ResizeDebounce is how many ticks the window size must hold still
	// before the view is laid out again.
	ResizeDebounce int `yaml:"resizeDebounce"`

	LogLevel      string `yaml:"logLevel"`
	Debug         bool   `yaml:"debug"`
	ScreenshotDir string `yaml:"screenshotDir"`

	Backgrounds []scene.AssetEntry `yaml:"backgrounds"`

	// BaseDir resolves relative background paths. Set by LoadConfig to the
	// config file's directory.
	BaseDir string `yaml:"-"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:     "Backdrop",
			Width:     1280,
			Height:    720,
			Resizable: true,
		},
		Label:          DefaultLabel,
		LabelColor:     DefaultLabelColor,
		FlashColor:     0x000000,
		Policy:         PolicyCancel,
		Interval:       8 * time.Second,
		ResizeDebounce: 15,
		LogLevel:       "info",
		ScreenshotDir:  "screenshots",
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read backdrop config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, err
	}
	cfg.BaseDir = filepath.Dir(path)
	return cfg, nil
}

// ParseConfig decodes YAML on top of DefaultConfig and validates the result.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse backdrop config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid backdrop config: %w", err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.LabelColor > 0xFFFFFF {
		return fmt.Errorf("labelColor 0x%X is not a 0xRRGGBB value", c.LabelColor)
	}
	if c.FlashColor > 0xFFFFFF {
		return fmt.Errorf("flashColor 0x%X is not a 0xRRGGBB value", c.FlashColor)
	}
	if c.Interval < 0 {
		return fmt.Errorf("interval must not be negative, got %s", c.Interval)
	}
	if c.ResizeDebounce < 0 {
		return fmt.Errorf("resizeDebounce must not be negative, got %d", c.ResizeDebounce)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	for i, bg := range c.Backgrounds {
		if bg.Path == "" {
			return fmt.Errorf("background %d has no path", i)
		}
	}
	return nil
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error").
func (c *Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("logLevel: %w", err)
	}
	return lvl, nil
}

// ViewOptions translates the config into BuildView options.
func (c *Config) ViewOptions() []Option {
	opts := []Option{
		WithLabel(c.Label),
		WithLabelColor(scene.RGB(c.LabelColor)),
		WithFlashColor(scene.RGB(c.FlashColor)),
		WithPolicy(c.Policy),
	}
	if c.Seed != 0 {
		opts = append(opts, WithSeed(c.Seed))
	}
	return opts
}

// UnmarshalYAML accepts the policy names understood by ParsePolicy.
func (p *Policy) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParsePolicy(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalYAML writes the policy name.
func (p Policy) MarshalYAML() (any, error) {
	return p.String(), nil
}
