package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/dftime/internal/dftime"
)

func useConfig(t *testing.T, body string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dfcal.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	t.Setenv("DFTIME_CONFIG", path)
}

func TestRun_ListTables(t *testing.T) {
	useConfig(t, "log_level: error\n")

	var out bytes.Buffer
	require.NoError(t, run(nil, &out))
	assert.Contains(t, out.String(), "Seasons:\n")
	assert.Contains(t, out.String(), "  Obsidian\n")
}

func TestRun_FormatDay(t *testing.T) {
	useConfig(t, "log_level: error\nmonth_separator: \" of \"\n")

	var out bytes.Buffer
	require.NoError(t, run([]string{"21", "8"}, &out))
	assert.Equal(t, "21st of Timber\n", out.String())
}

func TestRun_Errors(t *testing.T) {
	useConfig(t, "log_level: error\n")

	tests := []struct {
		name string
		args []string
	}{
		{"bad day", []string{"x", "1"}},
		{"bad month", []string{"1", "y"}},
		{"month out of range", []string{"1", "12"}},
		{"wrong arg count", []string{"1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(tt.args, &out)
			require.Error(t, err)
			assert.Empty(t, out.String())
		})
	}

	var out bytes.Buffer
	err := run([]string{"1", "12"}, &out)
	assert.ErrorIs(t, err, dftime.ErrOutOfRange)
}

func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("verbose"))
}
