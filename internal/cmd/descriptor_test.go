package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Alia5/kanamatrix/device/keyboard"
	"github.com/Alia5/kanamatrix/internal/cmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptor(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, (&cmd.Descriptor{Format: "hex", Out: &out}).Run())
	assert.True(t, strings.HasPrefix(out.String(), "05 01 09 06 a1 01"))
	assert.True(t, strings.HasSuffix(out.String(), "c0\n"))

	out.Reset()
	require.NoError(t, (&cmd.Descriptor{Format: "raw", Out: &out}).Run())
	assert.Equal(t, keyboard.ReportDescriptor, out.Bytes())

	path := filepath.Join(t.TempDir(), "report_desc")
	require.NoError(t, (&cmd.Descriptor{Output: path}).Run())
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, keyboard.ReportDescriptor, got)
}
