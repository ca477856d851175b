package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planet.yaml")
	data := []byte("window:\n  width: 640\n  height: 480\nassets:\n  envmap: sky.png\nlog:\n  level: debug\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int32(640), cfg.Window.Width)
	assert.Equal(t, int32(480), cfg.Window.Height)
	assert.Equal(t, "sky.png", cfg.Assets.EnvMap)
	assert.Equal(t, "resources", cfg.Assets.Dir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Window.VSync)
}

func TestLoadRejectsBadWindow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planet.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  width: 0\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planet.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: [1, 2"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestFlagsApply(t *testing.T) {
	var f Flags
	fs := flag.NewFlagSet("planet", flag.ContinueOnError)
	f.Register(fs)
	require.NoError(t, fs.Parse([]string{"-width", "300", "-envmap", "stars.png", "-dev"}))

	cfg := Default()
	f.Apply(cfg)
	assert.Equal(t, int32(300), cfg.Window.Width)
	assert.Equal(t, int32(800), cfg.Window.Height)
	assert.Equal(t, "stars.png", cfg.Assets.EnvMap)
	assert.True(t, cfg.Log.Development)
	assert.Equal(t, "planet.yaml", f.ConfigPath)
}
