package main

import (
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/voxel-outline/plugins/outline"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Settings struct {
	Window   WindowSettings `yaml:"window"`
	Camera   CameraSettings `yaml:"camera"`
	World    WorldSettings  `yaml:"world"`
	LogLevel string         `yaml:"log_level"`
	Outline  outline.Config `yaml:"outline"`
}

type WindowSettings struct {
	Title      string     `yaml:"title"`
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	ClearColor [3]float32 `yaml:"clear_color"`
}

type CameraSettings struct {
	Position    [3]float32 `yaml:"position"`
	Sensitivity float32    `yaml:"sensitivity"`
	FieldOfView float32    `yaml:"fov"`
	InvertY     bool       `yaml:"invert_y"`
	// Speed is in blocks per second.
	Speed float32 `yaml:"speed"`
	Reach float32 `yaml:"reach"`
}

// WorldSettings describe the generated world used when no world file is given.
type WorldSettings struct {
	Width   int32 `yaml:"width"`
	Height  int32 `yaml:"height"`
	Depth   int32 `yaml:"depth"`
	Seed    int64 `yaml:"seed"`
	Pillars int   `yaml:"pillars"`
}

func DefaultSettings() Settings {
	return Settings{
		Window: WindowSettings{
			Title:      "Voxel Outline",
			Width:      1280,
			Height:     720,
			ClearColor: [3]float32{0.53, 0.74, 0.9},
		},
		Camera: CameraSettings{
			Position:    [3]float32{16, 6, 40},
			Sensitivity: 0.1,
			FieldOfView: 60,
			InvertY:     true,
			Speed:       8,
			Reach:       8,
		},
		World: WorldSettings{
			Width:   32,
			Height:  16,
			Depth:   32,
			Seed:    1,
			Pillars: 40,
		},
		LogLevel: "info",
		Outline:  outline.DefaultConfig(),
	}
}

func (s Settings) CameraPosition() mgl32.Vec3 {
	return mgl32.Vec3(s.Camera.Position)
}

func (s Settings) Validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return errors.Errorf("window size %dx%d is invalid", s.Window.Width, s.Window.Height)
	}
	if s.World.Width <= 0 || s.World.Height <= 0 || s.World.Depth <= 0 {
		return errors.Errorf("world size %dx%dx%d is invalid", s.World.Width, s.World.Height, s.World.Depth)
	}
	if s.Camera.Reach <= 0 {
		return errors.Errorf("camera reach must be positive, got %v", s.Camera.Reach)
	}
	return s.Outline.Validate()
}

// LoadSettings reads a yaml settings file on top of DefaultSettings. An empty path returns the
// defaults.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()
	if path == "" {
		return settings, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return settings, errors.Wrap(err, "read settings")
	}
	if err := yaml.Unmarshal(raw, &settings); err != nil {
		return settings, errors.Wrapf(err, "%s", path)
	}
	return settings, settings.Validate()
}
