package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/circlesim/internal/control"
	"github.com/san-kum/circlesim/internal/sim"
	"github.com/san-kum/circlesim/internal/vector"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "classic", cfg.Demo)
	assert.Greater(t, cfg.Dt, 0.0)
	assert.Greater(t, cfg.Duration, 0.0)
	assert.Equal(t, vector.New(100, 100), cfg.Player.Position)
	assert.Equal(t, vector.New(300, 300), cfg.Obstacle.Position)
	assert.Equal(t, 0.7, cfg.Physics.Elasticity)
	require.NoError(t, cfg.Validate())
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	data := []byte(`
demo: gravity
duration: 3
physics:
  gravity: {x: 0, y: 250}
controller: script
script:
  - from: 0
    to: 1
    keys: [left]
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gravity", cfg.Demo)
	assert.Equal(t, 3.0, cfg.Duration)
	assert.Equal(t, DefaultDt, cfg.Dt)
	assert.Equal(t, vector.New(0, 250), cfg.Physics.Gravity)
	assert.Equal(t, 100.0, cfg.Physics.MoveSpeed)
	require.Len(t, cfg.Script, 1)
	assert.Equal(t, []string{"left"}, cfg.Script[0].Keys)
	require.NoError(t, cfg.Validate())
}

func TestLoadInto_KeepsPresetValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("duration: 3\n"), 0644))

	cfg := GetPreset("gravity", "elastic")
	require.NoError(t, LoadInto(path, cfg))

	assert.Equal(t, 3.0, cfg.Duration)
	assert.Equal(t, 1.0, cfg.Physics.Elasticity)
	assert.Equal(t, vector.New(300, 60), cfg.Player.Position)
	assert.Equal(t, "gravity", cfg.Demo)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dt: [1, 2"), 0644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	cfg := GetPreset("classic", "corner")
	require.NotNil(t, cfg)

	require.NoError(t, Save(path, cfg))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero dt", func(c *Config) { c.Dt = 0 }},
		{"negative duration", func(c *Config) { c.Duration = -1 }},
		{"empty field", func(c *Config) { c.Field.Width = 0 }},
		{"unknown controller", func(c *Config) { c.Controller = "joystick" }},
		{"bad script key", func(c *Config) {
			c.Controller = "script"
			c.Script = []control.Step{{From: 0, To: 1, Keys: []string{"jump"}}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestNewController(t *testing.T) {
	cfg := DefaultConfig()

	for _, name := range []string{"none", "script", "seek"} {
		cfg.Controller = name
		ctrl, err := cfg.NewController()
		require.NoError(t, err, name)
		assert.NotNil(t, ctrl)
	}

	cfg.Controller = "seek"
	ctrl, err := cfg.NewController()
	require.NoError(t, err)
	in := ctrl.Compute(sim.Frame{Player: cfg.Player.Position}, 0)
	assert.Equal(t, sim.Intent{Right: true, Down: true}, in)

	cfg.Controller = "joystick"
	_, err = cfg.NewController()
	assert.Error(t, err)
}

func TestParams(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Player.Velocity = vector.New(1, 2)
	p := cfg.Params()
	assert.Equal(t, cfg.Field.Width, p.Width)
	assert.Equal(t, vector.New(1, 2), p.PlayerVelocity)
	assert.Equal(t, cfg.Physics.Elasticity, p.Elasticity)
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("gravity", "elastic")
	require.NotNil(t, cfg)
	assert.Equal(t, 1.0, cfg.Physics.Elasticity)

	cfg.Physics.Elasticity = 0.1
	assert.Equal(t, 1.0, GetPreset("gravity", "elastic").Physics.Elasticity, "presets are copied")

	for demo := range Presets {
		for _, name := range ListPresets(demo) {
			p := GetPreset(demo, name)
			assert.Equal(t, demo, p.Demo)
			assert.NoError(t, p.Validate(), "%s/%s", demo, name)
		}
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	assert.Nil(t, GetPreset("classic", "nonexistent"))
	assert.Nil(t, GetPreset("nonexistent", "idle"))

	_, err := LookupPreset("classic", "nonexistent")
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestListPresets(t *testing.T) {
	assert.Equal(t, []string{"approach", "corner", "idle"}, ListPresets("classic"))
	assert.Nil(t, ListPresets("nonexistent"))
}

func TestClone(t *testing.T) {
	cfg := GetPreset("classic", "corner")
	cp := cfg.Clone()
	cp.Script[0].Keys[0] = "down"
	assert.Equal(t, "left", cfg.Script[0].Keys[0])
}
