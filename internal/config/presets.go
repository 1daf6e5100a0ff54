package config

import (
	"fmt"
	"sort"

	"github.com/san-kum/circlesim/internal/control"
	"github.com/san-kum/circlesim/internal/vector"
)

func preset(fn func(c *Config)) *Config {
	c := DefaultConfig()
	fn(c)
	return c
}

var Presets = map[string]map[string]*Config{
	"classic": {
		"idle": preset(func(c *Config) {
			c.Demo = "classic"
			c.Duration = 5
		}),
		"approach": preset(func(c *Config) {
			c.Demo = "classic"
			c.Controller = "seek"
		}),
		"corner": preset(func(c *Config) {
			c.Demo = "classic"
			c.Controller = "script"
			c.Script = []control.Step{
				{From: 0, To: 3, Keys: []string{"left", "up"}},
				{From: 3, To: 10, Keys: []string{"right"}},
			}
		}),
	},
	"gravity": {
		"drop": preset(func(c *Config) {
			c.Demo = "gravity"
			c.Player.Position = vector.New(300, 60)
		}),
		"glancing": preset(func(c *Config) {
			c.Demo = "gravity"
			c.Player.Position = vector.New(320, 60)
			c.Player.Velocity = vector.New(20, 0)
		}),
		"floor": preset(func(c *Config) {
			c.Demo = "gravity"
			c.Duration = 5
		}),
		"elastic": preset(func(c *Config) {
			c.Demo = "gravity"
			c.Player.Position = vector.New(300, 60)
			c.Physics.Elasticity = 1.0
		}),
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(demo, name string) *Config {
	demoPresets, ok := Presets[demo]
	if !ok {
		return nil
	}
	cfg, ok := demoPresets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

// LookupPreset is GetPreset with an error for unknown names.
func LookupPreset(demo, name string) (*Config, error) {
	cfg := GetPreset(demo, name)
	if cfg == nil {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets(demo))
	}
	return cfg, nil
}

func ListPresets(demo string) []string {
	demoPresets, ok := Presets[demo]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(demoPresets))
	for name := range demoPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
