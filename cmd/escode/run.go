package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/escode/config"
	"github.com/iw2rmb/escode/internal/logging"
	"github.com/iw2rmb/escode/shell"
)

// loadSettings reads the settings file and applies flag overrides.
func loadSettings(fsys afero.Fs, f rootFlags) (*config.Settings, error) {
	path, explicit := f.config, f.config != ""
	if !explicit {
		p, err := config.DefaultPath()
		if err == nil {
			path = p
		}
	}

	settings, err := config.Load(fsys, path, explicit)
	if err != nil {
		return nil, err
	}
	if f.wrap != "" {
		settings.Editor.Wrap = f.wrap
	}
	if f.logFile != "" {
		settings.Log.File = f.logFile
	}
	if f.logLevel != "" {
		settings.Log.Level = f.logLevel
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

func run(cmd *cobra.Command, f rootFlags, path string) error {
	fsys := afero.NewOsFs()
	settings, err := loadSettings(fsys, f)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.New(logging.Options{File: settings.Log.File, Level: settings.Log.Level})
	if err != nil {
		return err
	}
	defer closeLog()

	sh := shell.New(shell.Options{
		Settings: settings,
		Fs:       fsys,
		Logger:   logger,
		Watch:    true,
	})
	defer sh.Close()

	sh, err = sh.Load(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	logger.Info("started", "path", path, "wrap", settings.Editor.Wrap)

	p := tea.NewProgram(app{shell: sh}, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start the terminal user interface: %w", err)
	}
	logger.Info("exited")
	return nil
}

// app adapts shell.Model to tea.Model.
type app struct {
	shell shell.Model
}

func (a app) Init() tea.Cmd { return a.shell.Init() }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.shell, cmd = a.shell.Update(msg)
	return a, cmd
}

func (a app) View() string { return a.shell.View() }
