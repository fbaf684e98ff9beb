package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("snapshot flag", func(t *testing.T) {
		var buf bytes.Buffer
		cfg, exit, err := Parse([]string{"--snapshot", "return.yaml"}, &buf)

		require.NoError(t, err)
		assert.False(t, exit)
		assert.Equal(t, "return.yaml", cfg.SnapshotPath)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("shorthand flag", func(t *testing.T) {
		var buf bytes.Buffer
		cfg, _, err := Parse([]string{"-s", "return.yaml"}, &buf)

		require.NoError(t, err)
		assert.Equal(t, "return.yaml", cfg.SnapshotPath)
	})

	t.Run("positional argument", func(t *testing.T) {
		var buf bytes.Buffer
		cfg, _, err := Parse([]string{"return.yaml"}, &buf)

		require.NoError(t, err)
		assert.Equal(t, "return.yaml", cfg.SnapshotPath)
	})

	t.Run("params and logging flags", func(t *testing.T) {
		var buf bytes.Buffer
		cfg, _, err := Parse([]string{
			"--params", "2025.hcl",
			"--log-format", "TEXT",
			"--log-level", "DEBUG",
			"return.yaml",
		}, &buf)

		require.NoError(t, err)
		assert.Equal(t, "2025.hcl", cfg.ParamsPath)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("no path prints usage and exits cleanly", func(t *testing.T) {
		var buf bytes.Buffer
		cfg, exit, err := Parse(nil, &buf)

		require.NoError(t, err)
		assert.True(t, exit)
		assert.Nil(t, cfg)
		assert.Contains(t, buf.String(), "Usage:")
	})

	t.Run("help flag exits cleanly", func(t *testing.T) {
		var buf bytes.Buffer
		_, exit, err := Parse([]string{"--help"}, &buf)

		require.NoError(t, err)
		assert.True(t, exit)
	})

	t.Run("invalid log format", func(t *testing.T) {
		var buf bytes.Buffer
		_, _, err := Parse([]string{"--log-format", "xml", "return.yaml"}, &buf)

		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
		assert.Contains(t, exitErr.Message, "invalid log-format")
	})

	t.Run("invalid log level", func(t *testing.T) {
		var buf bytes.Buffer
		_, _, err := Parse([]string{"--log-level", "loud", "return.yaml"}, &buf)

		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
	})

	t.Run("unknown flag", func(t *testing.T) {
		var buf bytes.Buffer
		_, _, err := Parse([]string{"--frobnicate"}, &buf)

		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
	})
}
