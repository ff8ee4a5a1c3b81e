package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"fatal", zapcore.FatalLevel},
		{"WARN", zapcore.WarnLevel},
		{"", zapcore.InfoLevel},
		{"nonsense", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.input))
		})
	}
}

func TestNew_WritesJSONToFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "app.log")

	log, err := New(&Config{
		Level:      "info",
		Format:     "json",
		Output:     logPath,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	require.NoError(t, err)

	log.Info("order created")
	require.NoError(t, Sync(log))

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "order created", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.NotEmpty(t, entry["time"])
	assert.NotEmpty(t, entry["caller"])
}

func TestNew_LevelFiltersEntries(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "app.log")

	log, err := New(&Config{
		Level:      "error",
		Format:     "json",
		Output:     logPath,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	require.NoError(t, err)

	log.Info("suppressed")
	log.Error("kept")
	require.NoError(t, Sync(log))

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "suppressed")
	assert.Contains(t, string(data), "kept")
}

func TestNew_ConsoleFormat(t *testing.T) {
	log, err := New(&Config{
		Level:      "debug",
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	require.NoError(t, err)
	assert.NotNil(t, log)
}

func TestOpenWriter_BadPathFallsBack(t *testing.T) {
	// a directory is not writable as a file; must not return nil
	ws := openWriter(t.TempDir())
	assert.NotNil(t, ws)
}
