package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config represents the main configuration
type Config struct {
	Render RenderConfig `yaml:"render"`
	Scene  SceneConfig  `yaml:"scene"`
	Log    LogConfig    `yaml:"log"`
	Output OutputConfig `yaml:"output"`
}

// RenderConfig contains render-loop configuration
type RenderConfig struct {
	Width           int `yaml:"width"`
	Height          int `yaml:"height"`
	SamplesPerPixel int `yaml:"samples_per_pixel"`
	MaxDepth        int `yaml:"max_depth"`
	NumWorkers      int `yaml:"num_workers"` // 0 means one per CPU
}

// SceneConfig selects and seeds the scene
type SceneConfig struct {
	Name     string  `yaml:"name"`
	Seed     int64   `yaml:"seed"`
	Frames   int     `yaml:"frames"`
	TimeStep float64 `yaml:"time_step"` // seconds of scene time per frame
}

// LogConfig contains logging configuration
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error, fatal
	File  string `yaml:"file"`  // empty means stdout only
}

// OutputConfig contains image output configuration
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{
			Width:           400,
			Height:          225,
			SamplesPerPixel: 4,
			MaxDepth:        8,
			NumWorkers:      0,
		},
		Scene: SceneConfig{
			Name:     "showcase",
			Seed:     42,
			Frames:   1,
			TimeStep: 1.0 / 30.0,
		},
		Log: LogConfig{
			Level: "info",
		},
		Output: OutputConfig{
			Dir: "output",
		},
	}
}

// Load reads a YAML config file on top of the defaults and validates it
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects invalid parameter combinations
func (c *Config) Validate() error {
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return fmt.Errorf("config: render dimensions must be positive, got %dx%d", c.Render.Width, c.Render.Height)
	}
	if c.Render.SamplesPerPixel <= 0 {
		return fmt.Errorf("config: samples_per_pixel must be positive, got %d", c.Render.SamplesPerPixel)
	}
	if c.Render.MaxDepth < 0 {
		return fmt.Errorf("config: max_depth must be non-negative, got %d", c.Render.MaxDepth)
	}
	if c.Scene.Frames <= 0 {
		return fmt.Errorf("config: frames must be positive, got %d", c.Scene.Frames)
	}
	if c.Scene.TimeStep < 0 {
		return fmt.Errorf("config: time_step must be non-negative, got %g", c.Scene.TimeStep)
	}
	return nil
}
