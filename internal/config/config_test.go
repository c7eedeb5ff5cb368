package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "voidrunner.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.InDelta(t, 1.0/60, cfg.TickSeconds(), 1e-12)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeFile(t, "ship:\n  max_speed: 500\nsim:\n  seed: 99\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 500.0, cfg.Ship.MaxSpeed)
	assert.Equal(t, int64(99), cfg.Sim.Seed)
	assert.Equal(t, Default().Ship.Thrust, cfg.Ship.Thrust)
}

func TestLoadFromEnv(t *testing.T) {
	path := writeFile(t, "doors:\n  hold_time: 9\n")
	t.Setenv(EnvPath, path)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 9.0, cfg.Doors.HoldTime)
}

func TestLoadWithoutPathReturnsDefaults(t *testing.T) {
	t.Setenv(EnvPath, "")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRejectsInvalid(t *testing.T) {
	_, err := Load(writeFile(t, "camera:\n  smoothing: 1.5\n"))
	assert.ErrorContains(t, err, "camera.smoothing")

	_, err = Load(writeFile(t, "sim: [1, 2"))
	assert.ErrorContains(t, err, "decode")

	_, err = Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
