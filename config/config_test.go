package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, &Config{OutDir: "samples", Format: "png", LogLevel: "info"}, cfg)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("PEDALS_OUT_DIR", "/tmp/flowers")
	t.Setenv("PEDALS_FORMAT", "svg")
	t.Setenv("PEDALS_PREVIEW", "true")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/flowers", cfg.OutDir)
	assert.True(t, cfg.Preview)
	ext, err := cfg.Ext()
	require.NoError(t, err)
	assert.Equal(t, ".svg", ext)
}

func TestLoadBadBool(t *testing.T) {
	t.Setenv("PEDALS_PREVIEW", "maybe")
	_, err := Load()
	assert.Error(t, err)
}

func TestExt(t *testing.T) {
	cfg := &Config{Format: "gif"}
	_, err := cfg.Ext()
	assert.Error(t, err)
}
