package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

type Window struct {
	Width  int32  `yaml:"width"`
	Height int32  `yaml:"height"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

type Assets struct {
	Dir    string `yaml:"dir"`
	EnvMap string `yaml:"envmap"` // environment map image attached to the planet
}

type Log struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Config holds launch options only. Planet parameters are never read from or
// written to disk.
type Config struct {
	Window Window `yaml:"window"`
	Assets Assets `yaml:"assets"`
	Log    Log    `yaml:"log"`
}

func Default() *Config {
	return &Config{
		Window: Window{
			Width:  1280,
			Height: 800,
			X:      100,
			Y:      100,
			Title:  "ProcPlanet",
			VSync:  true,
		},
		Assets: Assets{
			Dir:    "resources",
			EnvMap: "envmap.jpg",
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads a YAML file on top of the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}

// Flags are the command line overrides. Zero values leave the file value alone.
type Flags struct {
	ConfigPath string
	Width      int
	Height     int
	AssetsDir  string
	EnvMap     string
	LogLevel   string
	Dev        bool
}

func (f *Flags) Register(fsets *flag.FlagSet) {
	fsets.StringVar(&f.ConfigPath, "config", "planet.yaml", "path to the launch config (optional)")
	fsets.IntVar(&f.Width, "width", 0, "window width override")
	fsets.IntVar(&f.Height, "height", 0, "window height override")
	fsets.StringVar(&f.AssetsDir, "assets", "", "assets directory override")
	fsets.StringVar(&f.EnvMap, "envmap", "", "environment map file name override")
	fsets.StringVar(&f.LogLevel, "log-level", "", "log level override (debug, info, warn, error)")
	fsets.BoolVar(&f.Dev, "dev", false, "development logging")
}

func (f *Flags) Apply(c *Config) {
	if f.Width > 0 {
		c.Window.Width = int32(f.Width)
	}
	if f.Height > 0 {
		c.Window.Height = int32(f.Height)
	}
	if f.AssetsDir != "" {
		c.Assets.Dir = f.AssetsDir
	}
	if f.EnvMap != "" {
		c.Assets.EnvMap = f.EnvMap
	}
	if f.LogLevel != "" {
		c.Log.Level = f.LogLevel
	}
	if f.Dev {
		c.Log.Development = true
	}
}
