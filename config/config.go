// Package config loads escode settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/escode/editor"
)

// Settings represents the application configuration.
type Settings struct {
	Editor EditorSettings `yaml:"editor"`
	Gutter GutterSettings `yaml:"gutter"`
	Window WindowSettings `yaml:"window"`
	Log    LogSettings    `yaml:"log"`
}

// EditorSettings controls the text area.
type EditorSettings struct {
	TabSpaces int    `yaml:"tab_spaces"` // spaces inserted by the tab key
	TabWidth  int    `yaml:"tab_width"`  // display width of a literal tab
	Wrap      string `yaml:"wrap"`       // "none", "word" or "grapheme"
}

// GutterSettings controls line-number sampling.
type GutterSettings struct {
	Step         int           `yaml:"step"`
	LabelWidth   int           `yaml:"label_width"`
	RowUnits     int           `yaml:"row_units"`
	PollInterval time.Duration `yaml:"poll_interval"`
}

// WindowSettings fixes the window size. Zero follows the terminal.
type WindowSettings struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Scrollbars bool `yaml:"scrollbars"`
}

type LogSettings struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// DefaultSettings returns the default configuration.
func DefaultSettings() *Settings {
	return &Settings{
		Editor: EditorSettings{
			TabSpaces: 4,
			TabWidth:  4,
			Wrap:      "none",
		},
		Gutter: GutterSettings{
			Step:         10,
			LabelWidth:   6,
			RowUnits:     16,
			PollInterval: 10 * time.Millisecond,
		},
		Window: WindowSettings{
			Scrollbars: true,
		},
		Log: LogSettings{
			Level: "info",
		},
	}
}

// WrapMode returns the parsed editor.wrap value.
func (s *Settings) WrapMode() (editor.WrapMode, error) {
	return editor.ParseWrapMode(s.Editor.Wrap)
}

// Validate reports the first invalid setting.
func (s *Settings) Validate() error {
	switch {
	case s.Editor.TabSpaces <= 0:
		return fmt.Errorf("editor.tab_spaces must be positive, got %d", s.Editor.TabSpaces)
	case s.Editor.TabWidth <= 0:
		return fmt.Errorf("editor.tab_width must be positive, got %d", s.Editor.TabWidth)
	case s.Gutter.Step <= 0:
		return fmt.Errorf("gutter.step must be positive, got %d", s.Gutter.Step)
	case s.Gutter.LabelWidth <= 0:
		return fmt.Errorf("gutter.label_width must be positive, got %d", s.Gutter.LabelWidth)
	case s.Gutter.RowUnits <= 0:
		return fmt.Errorf("gutter.row_units must be positive, got %d", s.Gutter.RowUnits)
	case s.Gutter.PollInterval <= 0:
		return fmt.Errorf("gutter.poll_interval must be positive, got %s", s.Gutter.PollInterval)
	case s.Window.Width < 0 || s.Window.Height < 0:
		return fmt.Errorf("window size must not be negative, got %dx%d", s.Window.Width, s.Window.Height)
	}
	if _, err := s.WrapMode(); err != nil {
		return fmt.Errorf("editor.wrap: %w", err)
	}
	if _, err := log.ParseLevel(s.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// DefaultPath returns the per-user settings file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "escode", "config.yaml"), nil
}

// Load reads path over DefaultSettings. When explicit is false a missing file
// yields the defaults; an explicitly requested file must exist.
func Load(fsys afero.Fs, path string, explicit bool) (*Settings, error) {
	settings := DefaultSettings()
	if path == "" {
		return settings, nil
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return settings, nil
		}
		return nil, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings %s: %w", path, err)
	}
	return settings, nil
}

// Write stores s at path, creating parent directories.
func Write(fsys afero.Fs, path string, s *Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	if err := afero.WriteFile(fsys, path, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
