package outline

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultFrequency bounds how often the crosshair ray is cast.
const DefaultFrequency = 100 * time.Millisecond

// Color is an RGBA color. In YAML it is written as a list of 3 or 4 floats in [0,1]; a missing
// alpha is 1.
type Color mgl32.Vec4

var Red = Color{1, 0, 0, 1}

func (c Color) Vec4() mgl32.Vec4 {
	return mgl32.Vec4(c)
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var components []float32
	if err := value.Decode(&components); err != nil {
		return errors.Wrap(err, "color")
	}
	if len(components) != 3 && len(components) != 4 {
		return errors.Errorf("color needs 3 or 4 components, got %d", len(components))
	}
	for _, v := range components {
		if v < 0 || v > 1 {
			return errors.Errorf("color component %v outside [0,1]", v)
		}
	}
	*c = Color{components[0], components[1], components[2], 1}
	if len(components) == 4 {
		c[3] = components[3]
	}
	return nil
}

// Config is fixed at construction. Start from DefaultConfig: the zero value hides the outline and
// leaves the depth test disabled after a show-through draw.
type Config struct {
	ShowOutline bool  `yaml:"show_outline"`
	ShowThrough bool  `yaml:"show_through"`
	Color       Color `yaml:"color"`
	// Frequency is the minimum simulation time between two raycasts. Zero means DefaultFrequency.
	Frequency time.Duration `yaml:"frequency"`
	// EveryTick casts the ray on every tick and ignores Frequency.
	EveryTick bool `yaml:"every_tick"`
	// SwapXZ places the outline at (z, y, x) for hosts whose world axes are swapped.
	SwapXZ bool `yaml:"swap_xz"`
	// RestoreDepthTest puts the depth test state back after a show-through draw.
	RestoreDepthTest bool `yaml:"restore_depth_test"`
}

// DefaultConfig is a visible red outline that respects depth, raycast every 100ms.
func DefaultConfig() Config {
	return Config{
		ShowOutline:      true,
		ShowThrough:      false,
		Color:            Red,
		Frequency:        DefaultFrequency,
		RestoreDepthTest: true,
	}
}

// UnmarshalYAML fills keys missing from the document with DefaultConfig values.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	type plain Config
	cfg := plain(DefaultConfig())
	if err := value.Decode(&cfg); err != nil {
		return err
	}
	*c = Config(cfg)
	return c.Validate()
}

func (c Config) Validate() error {
	if c.Frequency < 0 {
		return errors.Errorf("frequency must not be negative, got %v", c.Frequency)
	}
	return nil
}

// withDefaults fills the fields whose zero value is not usable.
func (c Config) withDefaults() Config {
	if c.Color == (Color{}) {
		c.Color = Red
	}
	if c.Frequency == 0 {
		c.Frequency = DefaultFrequency
	}
	return c
}

// throttleInterval is zero when every tick should raycast.
func (c Config) throttleInterval() time.Duration {
	if c.EveryTick {
		return 0
	}
	return c.Frequency
}
