package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	assert.Equal(t, ":8080", c.Addr)
	assert.Empty(t, c.DataPath)
	assert.Equal(t, 5, c.DefaultTopN)
	assert.Equal(t, 10*time.Second, c.ShutdownTimeout)
	assert.NoError(t, c.Validate())
}

func TestFromEnv(t *testing.T) {
	t.Setenv("POPEXPLORER_ADDR", "127.0.0.1:9000")
	t.Setenv("POPEXPLORER_DATA", "/tmp/pop.tsv")
	t.Setenv("POPEXPLORER_LOG_LEVEL", "debug")
	t.Setenv("POPEXPLORER_SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("POPEXPLORER_TOP_N", "10")
	t.Setenv("POPEXPLORER_UNUSED", "x")

	c, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", c.Addr)
	assert.Equal(t, "/tmp/pop.tsv", c.DataPath)
	assert.Equal(t, 3*time.Second, c.ShutdownTimeout)
	assert.Equal(t, 10, c.DefaultTopN)

	level, err := c.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestFromEnvBlankIsUnset(t *testing.T) {
	t.Setenv("POPEXPLORER_ADDR", "  ")
	t.Setenv("POPEXPLORER_TOP_N", "")

	c, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":8080", c.Addr)
	assert.Equal(t, 5, c.DefaultTopN)
}

func TestFromEnvMalformed(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"POPEXPLORER_TOP_N", "ten"},
		{"POPEXPLORER_SHUTDOWN_TIMEOUT", "soon"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"empty addr", func(c *Config) { c.Addr = "" }},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }},
		{"zero timeout", func(c *Config) { c.ShutdownTimeout = 0 }},
		{"negative top", func(c *Config) { c.DefaultTopN = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.modify(&c)
			assert.Error(t, c.Validate())
		})
	}
}
