package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitFile(t *testing.T) {
	prev := zlog.Logger
	t.Cleanup(func() {
		zlog.Logger = prev
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	})

	path := filepath.Join(t.TempDir(), "icudate.log")
	closeLog, err := Init(Options{Verbose: true, File: path})
	require.NoError(t, err)

	zlog.Debug().Msg("formatted en_US")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "formatted en_US", entry["message"])
	assert.Contains(t, entry["caller"], "logger/logger_test.go:")
	assert.Contains(t, entry, "time")
}

func TestInitBadFile(t *testing.T) {
	_, err := Init(Options{File: filepath.Join(t.TempDir(), "missing", "icudate.log")})
	require.Error(t, err)
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, zerolog.InfoLevel, true)
	l.Info().Msg("ICU Error: U_UNSUPPORTED_ERROR")

	assert.Contains(t, buf.String(), "ICU Error: U_UNSUPPORTED_ERROR")
	assert.NotContains(t, buf.String(), "{")
}

func TestShortCaller(t *testing.T) {
	sep := string(filepath.Separator)
	assert.Equal(t, filepath.Join("bridge", "entry.go")+":12", shortCaller(0, sep+"src"+sep+"bridge"+sep+"entry.go", 12))
	assert.Equal(t, "main.go:3", shortCaller(0, "main.go", 3))
}
