package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/circlesim/internal/control"
	"github.com/san-kum/circlesim/internal/demo"
	"github.com/san-kum/circlesim/internal/physics"
	"github.com/san-kum/circlesim/internal/sim"
	"github.com/san-kum/circlesim/internal/vector"
)

const (
	DefaultDt       = 1.0 / 60.0
	DefaultDuration = 10.0
)

var ErrUnknownPreset = errors.New("config: unknown preset")

type Config struct {
	Demo       string         `yaml:"demo"`
	Dt         float64        `yaml:"dt"`
	Duration   float64        `yaml:"duration"`
	Seed       int64          `yaml:"seed"`
	Field      FieldConfig    `yaml:"field"`
	Player     BodyConfig     `yaml:"player"`
	Obstacle   BodyConfig     `yaml:"obstacle"`
	Physics    PhysicsConfig  `yaml:"physics"`
	Controller string         `yaml:"controller"`
	Script     []control.Step `yaml:"script,omitempty"`
}

type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type BodyConfig struct {
	Position vector.Vec2 `yaml:"position"`
	Velocity vector.Vec2 `yaml:"velocity,omitempty"`
	Radius   float64     `yaml:"radius"`
}

type PhysicsConfig struct {
	MoveSpeed  float64     `yaml:"move_speed"`
	Gravity    vector.Vec2 `yaml:"gravity"`
	Elasticity float64     `yaml:"elasticity"`
}

func DefaultConfig() *Config {
	p := demo.DefaultParams()
	return &Config{
		Demo:     "classic",
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		Field:    FieldConfig{Width: p.Width, Height: p.Height},
		Player: BodyConfig{
			Position: p.PlayerStart,
			Radius:   p.PlayerRadius,
		},
		Obstacle: BodyConfig{
			Position: p.ObstacleStart,
			Radius:   p.ObstacleRadius,
		},
		Physics: PhysicsConfig{
			MoveSpeed:  p.MoveSpeed,
			Gravity:    p.Gravity,
			Elasticity: physics.DefaultElasticity,
		},
		Controller: "none",
	}
}

// Load reads a YAML file on top of DefaultConfig, so omitted keys keep their
// defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto overlays a YAML file onto base. Keys the file omits keep base's
// values; a script in the file replaces base's script.
func LoadInto(path string, base *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, base); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if err := c.SimConfig().Validate(); err != nil {
		return err
	}
	if err := c.Params().Validate(); err != nil {
		return err
	}
	switch c.Controller {
	case "", "none", "seek":
	case "script":
		if _, err := control.NewScript(c.Script); err != nil {
			return err
		}
	default:
		return fmt.Errorf("config: unknown controller %q", c.Controller)
	}
	return nil
}

func (c *Config) Params() demo.Params {
	return demo.Params{
		Width:          c.Field.Width,
		Height:         c.Field.Height,
		PlayerRadius:   c.Player.Radius,
		ObstacleRadius: c.Obstacle.Radius,
		PlayerStart:    c.Player.Position,
		PlayerVelocity: c.Player.Velocity,
		ObstacleStart:  c.Obstacle.Position,
		MoveSpeed:      c.Physics.MoveSpeed,
		Gravity:        c.Physics.Gravity,
		Elasticity:     c.Physics.Elasticity,
	}
}

func (c *Config) SimConfig() sim.Config {
	return sim.Config{
		Dt:            c.Dt,
		Duration:      c.Duration,
		Seed:          c.Seed,
		ValidateState: true,
	}
}

// NewController builds the configured input source. Seek targets the
// obstacle.
func (c *Config) NewController() (sim.Controller, error) {
	switch c.Controller {
	case "", "none":
		return control.NewNone(), nil
	case "script":
		return control.NewScript(c.Script)
	case "seek":
		return control.NewSeek(c.Obstacle.Position, 1), nil
	default:
		return nil, fmt.Errorf("config: unknown controller %q", c.Controller)
	}
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	cp := *c
	if c.Script != nil {
		cp.Script = make([]control.Step, len(c.Script))
		for i, st := range c.Script {
			st.Keys = append([]string(nil), st.Keys...)
			cp.Script[i] = st
		}
	}
	return &cp
}
