package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "callcheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
buildDir: out/build
cacheSize: 16
watch: true
log:
  level: debug
  format: json
`), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "out/build", c.BuildDir)
	assert.Equal(t, 16, c.CacheSize)
	assert.True(t, c.Watch)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Len(t, c.RegistryOptions(), 1)

	logger, err := c.CreateLogger()
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	c, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "build", c.BuildDir)

	logger, err := c.CreateLogger()
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad yaml", "buildDir: [x"},
		{"cache size", "cacheSize: 0"},
		{"level", "log:\n  level: loud"},
		{"format", "log:\n  format: xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "c.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}
