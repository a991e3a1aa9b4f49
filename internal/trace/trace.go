// Package trace feeds scan cycles to a resolver.Engine and writes the
// resulting keyboard reports out.
//
// Scan cycles come from trace files (YAML, TOML or JSON), from a line
// oriented hex stream, or from raw 8-byte frames such as a serial link to
// the matrix scanner. Reports go to a Sink.
package trace

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/Alia5/kanamatrix/device/keyboard"
	"github.com/Alia5/kanamatrix/matrix"
)

var (
	ErrTooManyKeys = errors.New("too many keys in one cycle")
	ErrScanCode    = errors.New("scan code outside the matrix")
	ErrModifier    = errors.New("unknown modifier")
	ErrSwitch      = errors.New("unknown switch target")
	ErrRepeat      = errors.New("negative repeat count")
	ErrFormat      = errors.New("unsupported trace format")
)

// Switch targets of a Cycle.
const (
	SwitchBase = "base"
	SwitchKana = "kana"
)

var extraNames = map[string]uint8{
	"LeftAltShift":  matrix.ExtraLeftAltShift,
	"RightAltShift": matrix.ExtraRightAltShift,
	"Fn":            matrix.ExtraFn,
}

// Cycle is one matrix poll.
type Cycle struct {
	// Modifiers are HID modifier names, e.g. "LeftShift".
	Modifiers []string `yaml:"modifiers,omitempty" toml:"modifiers,omitempty" json:"modifiers,omitempty"`
	// Extra are extra-modifier names: LeftAltShift, RightAltShift, Fn.
	Extra []string `yaml:"extra,omitempty" toml:"extra,omitempty" json:"extra,omitempty"`
	// Keys are scan codes (row*12+col), at most six.
	Keys []int `yaml:"keys,omitempty" toml:"keys,omitempty" json:"keys,omitempty"`
	// Repeat replays the cycle this many extra times, as a held chord does.
	Repeat int `yaml:"repeat,omitempty" toml:"repeat,omitempty" json:"repeat,omitempty"`
	// Switch advances the base or kana layout after resolving the cycle, the
	// way the Fn layer does on the keyboard.
	Switch string `yaml:"switch,omitempty" toml:"switch,omitempty" json:"switch,omitempty"`
}

// ScanReport validates the cycle and encodes it.
func (c Cycle) ScanReport() (matrix.ScanReport, error) {
	var s matrix.ScanReport
	if len(c.Keys) > matrix.Slots {
		return s, fmt.Errorf("%d keys: %w", len(c.Keys), ErrTooManyKeys)
	}
	for _, name := range c.Modifiers {
		bit, ok := keyboard.ParseModifier(name)
		if !ok {
			return s, fmt.Errorf("%q: %w", name, ErrModifier)
		}
		s[0] |= bit
	}
	for _, name := range c.Extra {
		bit, ok := extraNames[name]
		if !ok {
			return s, fmt.Errorf("extra %q: %w", name, ErrModifier)
		}
		s[1] |= bit
	}
	for i, code := range c.Keys {
		if code < 0 || code >= matrix.Size {
			return s, fmt.Errorf("key %d: %w", code, ErrScanCode)
		}
		s[matrix.FirstSlot+i] = uint8(code)
	}
	if c.Repeat < 0 {
		return s, fmt.Errorf("repeat %d: %w", c.Repeat, ErrRepeat)
	}
	switch c.Switch {
	case "", SwitchBase, SwitchKana:
	default:
		return s, fmt.Errorf("%q: %w", c.Switch, ErrSwitch)
	}
	return s, nil
}

// File is a recorded or hand-written sequence of scan cycles plus the
// engine state to replay it from.
type File struct {
	Base    string  `yaml:"base,omitempty" toml:"base,omitempty" json:"base,omitempty"`
	Kana    string  `yaml:"kana,omitempty" toml:"kana,omitempty" json:"kana,omitempty"`
	KanaLED bool    `yaml:"kanaLed,omitempty" toml:"kanaLed,omitempty" json:"kanaLed,omitempty"`
	NumLock bool    `yaml:"numLock,omitempty" toml:"numLock,omitempty" json:"numLock,omitempty"`
	Cycles  []Cycle `yaml:"cycles" toml:"cycles" json:"cycles"`
}

// Validate checks every cycle.
func (f *File) Validate() error {
	for i, c := range f.Cycles {
		if _, err := c.ScanReport(); err != nil {
			return fmt.Errorf("cycle %d: %w", i, err)
		}
	}
	return nil
}

// Load reads a trace file, choosing the decoder by extension.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Decode parses trace data in the format named by ext (".yaml", ".yml",
// ".toml" or ".json").
func Decode(data []byte, ext string) (*File, error) {
	var f File
	var err error
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &f)
	case ".toml":
		err = toml.Unmarshal(data, &f)
	case ".json":
		err = json.Unmarshal(data, &f)
	default:
		return nil, fmt.Errorf("%q: %w", ext, ErrFormat)
	}
	if err != nil {
		return nil, err
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}
