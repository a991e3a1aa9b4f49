package cmd_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/Alia5/kanamatrix/internal/cmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigInit(t *testing.T) {
	type testCase struct {
		name   string
		cmd    string
		format string
		decode func([]byte, any) error
		check  func(t *testing.T, m map[string]any)
	}

	checkRun := func(t *testing.T, m map[string]any) {
		assert.Contains(t, m, "eeprom")
		assert.Equal(t, "-", m["input"])
		assert.Equal(t, true, m["watch"])
		assert.Equal(t, false, m["numLock"])
		require.IsType(t, map[string]any{}, m["serial"])
		assert.EqualValues(t, 115200, m["serial"].(map[string]any)["baud"])
		require.IsType(t, map[string]any{}, m["metrics"])
		assert.Contains(t, m["metrics"].(map[string]any), "addr")
	}
	checkTranslate := func(t *testing.T, m map[string]any) {
		assert.Equal(t, "auto", m["format"])
		assert.NotContains(t, m, "file")
	}

	cases := []testCase{
		{name: "run json", cmd: "run", format: "json", decode: json.Unmarshal, check: checkRun},
		{name: "run yaml", cmd: "run", format: "yaml", decode: yaml.Unmarshal, check: checkRun},
		{name: "run toml", cmd: "run", format: "toml", decode: decodeTOML, check: checkRun},
		{name: "translate yaml", cmd: "translate", format: "yml", decode: yaml.Unmarshal, check: checkTranslate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dest := filepath.Join(t.TempDir(), "nested", "out")
			c := &cmd.ConfigInit{Command: tc.cmd, Format: tc.format, Output: dest}
			require.NoError(t, c.Run())

			data, err := os.ReadFile(dest)
			require.NoError(t, err)
			var m map[string]any
			require.NoError(t, tc.decode(data, &m))
			tc.check(t, m)

			require.Error(t, c.Run(), "existing file without --force")
			c.Force = true
			require.NoError(t, c.Run())
		})
	}
}

func decodeTOML(data []byte, v any) error {
	tree, err := toml.LoadBytes(data)
	if err != nil {
		return err
	}
	*v.(*map[string]any) = tree.ToMap()
	return nil
}

func TestConfigInitRejects(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out")
	require.Error(t, (&cmd.ConfigInit{Command: "run", Format: "ini", Output: dest}).Run())
	require.Error(t, (&cmd.ConfigInit{Command: "mode", Format: "json", Output: dest}).Run())
}
