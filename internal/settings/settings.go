// Package settings persists small GUI state, window geometry above all,
// between runs of the frontend.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// Rect is a window position and size in screen coordinates. A zero-size
// rect means the geometry was never recorded; consumers keep their default
// placement in that case.
type Rect struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// IsDefined reports whether the rect holds a recorded geometry.
func (r Rect) IsDefined() bool {
	return r.Width > 0 && r.Height > 0
}

// Settings is the persisted GUI state.
type Settings struct {
	MainWindow    Rect   `yaml:"main_window"`
	LastOutputDir string `yaml:"last_output_dir"`
	ToolIconSize  int    `yaml:"tool_icon_size"`
}

// Default returns the settings used when nothing was persisted yet.
func Default() Settings {
	return Settings{ToolIconSize: 24}
}

// DefaultPath returns the per-user settings file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "stackview", "settings.yml"), nil
}

// Load reads settings from path. A missing file is not an error; it yields
// the defaults.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
	}

	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings %s: %w", path, err)
	}
	return s, nil
}

// Save writes settings to path, creating parent directories as needed.
func Save(path string, s Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings %s: %w", path, err)
	}
	return nil
}
