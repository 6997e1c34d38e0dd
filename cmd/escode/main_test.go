package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/escode"
	"github.com/iw2rmb/escode/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLoadSettings_FlagsOverrideFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/escode.yaml", []byte("editor:\n  wrap: word\nlog:\n  level: warn\n"), 0o644))

	s, err := loadSettings(fsys, rootFlags{config: "/escode.yaml", logLevel: "debug"})
	require.NoError(t, err)
	assert.Equal(t, "word", s.Editor.Wrap)
	assert.Equal(t, "debug", s.Log.Level)

	s, err = loadSettings(fsys, rootFlags{config: "/escode.yaml", wrap: "grapheme"})
	require.NoError(t, err)
	assert.Equal(t, "grapheme", s.Editor.Wrap)
}

func TestLoadSettings_RejectsBadOverride(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/escode.yaml", []byte("{}\n"), 0o644))

	_, err := loadSettings(fsys, rootFlags{config: "/escode.yaml", wrap: "diagonal"})
	assert.Error(t, err)
}

func TestLoadSettings_MissingExplicitFile(t *testing.T) {
	_, err := loadSettings(afero.NewMemMapFs(), rootFlags{config: "/nope.yaml"})
	assert.Error(t, err)
}

func TestVersionFlag(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, escode.Version())
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	out, err := execute(t, "config", "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	s, err := config.Load(afero.NewOsFs(), path, true)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSettings(), s)

	_, err = execute(t, "config", "init", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = execute(t, "config", "init", "--config", path, "--force")
	assert.NoError(t, err)
}

func TestConfigPath(t *testing.T) {
	out, err := execute(t, "config", "path", "--config", "/tmp/x.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.yaml", strings.TrimSpace(out))
}

func TestRoot_RejectsExtraArgs(t *testing.T) {
	_, err := execute(t, "a.txt", "b.txt")
	assert.Error(t, err)
}
