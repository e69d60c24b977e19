package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/memmaker/voxel-outline/plugins/outline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "outline.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSettingsEmptyPathIsDefault(t *testing.T) {
	settings, err := LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), settings)
}

func TestLoadSettingsOverridesOnlyGivenKeys(t *testing.T) {
	path := writeSettings(t, `
window:
  width: 640
world:
  seed: 42
outline:
  show_through: true
  color: [0, 1, 0]
`)
	settings, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, 640, settings.Window.Width)
	assert.Equal(t, DefaultSettings().Window.Height, settings.Window.Height)
	assert.Equal(t, int64(42), settings.World.Seed)
	assert.True(t, settings.Outline.ShowOutline)
	assert.True(t, settings.Outline.ShowThrough)
	assert.Equal(t, outline.Color{0, 1, 0, 1}, settings.Outline.Color)
	assert.Equal(t, outline.DefaultFrequency, settings.Outline.Frequency)
}

func TestLoadSettingsRejectsInvalidValues(t *testing.T) {
	_, err := LoadSettings(writeSettings(t, "camera:\n  reach: 0\n"))
	assert.Error(t, err)

	_, err = LoadSettings(writeSettings(t, "outline:\n  color: [1, 1]\n"))
	assert.Error(t, err)

	_, err = LoadSettings(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestShippedSettingsFileLoads(t *testing.T) {
	settings, err := LoadSettings("outline.yaml")
	require.NoError(t, err)
	assert.Equal(t, 100*time.Millisecond, settings.Outline.Frequency)
	assert.Equal(t, int64(7), settings.World.Seed)
}
