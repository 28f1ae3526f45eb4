package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/JPM1118/spritegen/internal/batch"
	"github.com/JPM1118/spritegen/internal/palette"
	"github.com/JPM1118/spritegen/internal/sprites"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for spritegen.
type Config struct {
	Generate GenerateConfig `yaml:"generate"`
	Preview  PreviewConfig  `yaml:"preview"`
}

// GenerateConfig supplies defaults for the generation flags.
type GenerateConfig struct {
	Type    string  `yaml:"type"`
	Size    int     `yaml:"size"`
	Count   int     `yaml:"count"`
	Palette string  `yaml:"palette"`
	Out     string  `yaml:"out"`
	Scale   int     `yaml:"scale"`
	Density float64 `yaml:"density"`
	// Seed is optional; nil means non-deterministic output.
	Seed *int64 `yaml:"seed"`
}

// PreviewConfig controls the interactive preview.
type PreviewConfig struct {
	MinSize int `yaml:"min_size"`
	MaxSize int `yaml:"max_size"`
}

// Defaults returns a Config with the built-in flag defaults.
func Defaults() Config {
	return Config{
		Generate: GenerateConfig{
			Type:    string(sprites.KindEnemy),
			Size:    32,
			Count:   5,
			Palette: palette.Fire,
			Out:     batch.DefaultOutDir,
			Scale:   1,
			Density: sprites.DefaultDensity,
		},
		Preview: PreviewConfig{
			MinSize: 4,
			MaxSize: 64,
		},
	}
}

// Load reads the config file and merges with defaults.
// Missing file is not an error; defaults are used silently.
func Load() (Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads config from a specific path.
func LoadFrom(path string) (Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Defaults(), fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Defaults(), fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Validate checks the choice-constrained and ranged settings.
func (c Config) Validate() error {
	g := c.Generate
	if _, err := sprites.ParseKind(g.Type); err != nil {
		return err
	}
	if err := palette.Validate(g.Palette); err != nil {
		return err
	}
	if g.Count < 0 {
		return fmt.Errorf("count must not be negative, got %d", g.Count)
	}
	if g.Scale < 1 {
		return fmt.Errorf("scale must be at least 1, got %d", g.Scale)
	}
	if g.Density < 0 || g.Density > 1 {
		return fmt.Errorf("density must be between 0 and 1, got %g", g.Density)
	}

	p := c.Preview
	if p.MinSize < 1 || p.MaxSize < p.MinSize {
		return fmt.Errorf("preview sizes must satisfy 1 <= min_size <= max_size, got %d..%d", p.MinSize, p.MaxSize)
	}
	return nil
}

// Path returns the default config file location.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "spritegen", "config.yml")
}
