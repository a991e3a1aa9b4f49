package cmd_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/Alia5/kanamatrix/eeprom"
	"github.com/Alia5/kanamatrix/layout"
	"github.com/stretchr/testify/require"
)

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// syncBuffer is a bytes.Buffer safe to read while a command writes to it.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func seedEEPROM(t *testing.T, base layout.BaseMode, kana layout.KanaMode) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "eeprom.bin")
	f, err := eeprom.Open(path)
	require.NoError(t, err)
	require.NoError(t, f.Write(eeprom.AddrBase, byte(base)))
	require.NoError(t, f.Write(eeprom.AddrKana, byte(kana)))
	return path
}

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}
