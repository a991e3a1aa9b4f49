package log_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/Alia5/kanamatrix/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	type testCase struct {
		in       string
		expected slog.Level
	}

	cases := []testCase{
		{in: "trace", expected: log.LevelTrace},
		{in: "debug", expected: slog.LevelDebug},
		{in: "", expected: slog.LevelInfo},
		{in: "warn", expected: slog.LevelWarn},
		{in: "error", expected: slog.LevelError},
		{in: "bogus", expected: slog.LevelInfo},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.expected, log.ParseLevel(tc.in))
		})
	}
}

func TestRawLogger(t *testing.T) {
	var buf bytes.Buffer
	raw := log.NewRaw(&buf)

	raw.Log(log.DirScan, []byte{0x02, 0x00, 0x31, 0, 0, 0, 0, 0})
	raw.Log(log.DirHID, nil)
	raw.Log(log.DirHID, []byte{0x00, 0x00, 0x0e, 0x04, 0, 0, 0, 0})

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), "SCAN 8 bytes: 02 00 31 00 00 00 00 00")
	assert.Contains(t, string(lines[1]), "HID  8 bytes: 00 00 0e 04 00 00 00 00")

	assert.NotPanics(t, func() { log.NewRaw(nil).Log(log.DirScan, []byte{1}) })
}

func TestSetupLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kanamatrix.log")
	logger, closers, err := log.SetupLogger(log.Options{Level: "debug", Format: "json", File: path})
	require.NoError(t, err)
	require.Len(t, closers, 1)

	logger.Debug("mode reloaded", "base", "dvorak")
	logger.Log(t.Context(), log.LevelTrace, "dropped")
	require.NoError(t, closers[0].Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"mode reloaded"`)
	assert.Contains(t, string(data), `"base":"dvorak"`)
	assert.NotContains(t, string(data), "dropped")
}

func TestSetupLoggerTraceWithAttrs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kanamatrix.log")
	logger, closers, err := log.SetupLogger(log.Options{Level: "trace", File: path})
	require.NoError(t, err)

	logger.With("cycle", 3).WithGroup("scan").Log(t.Context(), log.LevelTrace, "resolved", "keys", 2)
	require.NoError(t, closers[0].Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "level=TRACE")
	assert.Contains(t, string(data), "cycle=3")
	assert.Contains(t, string(data), "scan.keys=2")
}
