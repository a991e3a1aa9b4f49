package resolver_test

import (
	"testing"

	k "github.com/Alia5/kanamatrix/device/keyboard"
	"github.com/Alia5/kanamatrix/eeprom"
	"github.com/Alia5/kanamatrix/layout"
	"github.com/Alia5/kanamatrix/matrix"
	"github.com/Alia5/kanamatrix/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, base layout.BaseMode, kana layout.KanaMode) (*resolver.Engine, *eeprom.Memory) {
	t.Helper()
	store := eeprom.NewMemory(map[eeprom.Addr]byte{
		eeprom.AddrBase: byte(base),
		eeprom.AddrKana: byte(kana),
	})
	e := resolver.New(&resolver.Options{Store: store})
	require.NoError(t, e.Init())
	return e, store
}

func TestProcessBase(t *testing.T) {
	type testCase struct {
		name     string
		base     layout.BaseMode
		current  matrix.ScanReport
		expected k.Report
	}

	cases := []testCase{
		{
			name:     "qwerty letter",
			base:     layout.BaseQwerty,
			current:  matrix.New(0, 0, matrix.Code(5, 0)),
			expected: k.NewReport(0, k.KeyA),
		},
		{
			name:     "empty slots are skipped",
			base:     layout.BaseQwerty,
			current:  matrix.New(0, 0, 0, matrix.Code(5, 0), 0, matrix.Code(5, 1)),
			expected: k.NewReport(0, k.KeyA, k.KeyS),
		},
		{
			name:     "modifiers pass through",
			base:     layout.BaseQwerty,
			current:  matrix.New(k.ModLeftCtrl|k.ModLeftShift, 0, matrix.Code(6, 2)),
			expected: k.NewReport(k.ModLeftCtrl|k.ModLeftShift, k.KeyC),
		},
		{
			name:     "dvorak",
			base:     layout.BaseDvorak,
			current:  matrix.New(0, 0, matrix.Code(5, 1), matrix.Code(4, 0)),
			expected: k.NewReport(0, k.KeyO, k.KeyApostrophe),
		},
		{
			name:     "colemak",
			base:     layout.BaseColemak,
			current:  matrix.New(0, 0, matrix.Code(5, 1)),
			expected: k.NewReport(0, k.KeyR),
		},
		{
			name:     "pseudo key is dropped",
			base:     layout.BaseQwerty,
			current:  matrix.New(0, 0, matrix.Code(7, 2), matrix.Code(5, 0)),
			expected: k.NewReport(0, k.KeyA),
		},
		{
			name:     "unmapped cell is dropped",
			base:     layout.BaseQwerty,
			current:  matrix.New(0, 0, matrix.Code(1, 5)),
			expected: k.NewReport(0),
		},
		{
			name:     "shift+0 on qwerty",
			base:     layout.BaseQwerty,
			current:  matrix.New(k.ModLeftShift, 0, matrix.Code(2, 10)),
			expected: k.NewReport(k.ModLeftShift, k.Key0),
		},
		{
			name:     "shift+0 on jis is underscore",
			base:     layout.BaseJIS,
			current:  matrix.New(k.ModLeftShift, 0, matrix.Code(2, 10)),
			expected: k.NewReport(k.ModLeftShift, k.KeyInternational1),
		},
		{
			name:     "nicola-f shift keeps shift",
			base:     layout.BaseNicolaF,
			current:  matrix.New(k.ModLeftShift, 0, matrix.Code(2, 1)),
			expected: k.NewReport(k.ModLeftShift, k.KeySlash),
		},
		{
			name:     "nicola-f shift clears shift",
			base:     layout.BaseNicolaF,
			current:  matrix.New(k.ModLeftShift, 0, matrix.Code(3, 1)),
			expected: k.NewReport(0, k.KeySlash),
		},
		{
			name:     "nicola-f shift falls back to base table",
			base:     layout.BaseNicolaF,
			current:  matrix.New(k.ModRightShift, 0, matrix.Code(5, 0)),
			expected: k.NewReport(k.ModRightShift, k.KeyA),
		},
		{
			name:     "nicola-f alt-shift is shift",
			base:     layout.BaseNicolaF,
			current:  matrix.New(0, matrix.ExtraRightAltShift, matrix.Code(5, 0)),
			expected: k.NewReport(k.ModRightShift, k.KeyA),
		},
		{
			name:     "alt-shift is ignored outside nicola-f",
			base:     layout.BaseQwerty,
			current:  matrix.New(0, matrix.ExtraLeftAltShift, matrix.Code(5, 0)),
			expected: k.NewReport(0, k.KeyA),
		},
		{
			name:     "unknown base mode resolves as qwerty",
			base:     layout.BaseMode(9),
			current:  matrix.New(0, 0, matrix.Code(5, 0)),
			expected: k.NewReport(0, k.KeyA),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, _ := newEngine(t, tc.base, layout.KanaRomaji)
			report, xmit := e.Process(tc.current, matrix.ScanReport{})
			assert.Equal(t, resolver.XmitNormal, xmit)
			assert.Equal(t, tc.expected, report, report.String())
		})
	}
}

func TestKanaKeysToggleLED(t *testing.T) {
	e, _ := newEngine(t, layout.BaseJIS, layout.KanaNicola)
	require.False(t, e.KanaLED())

	report, _ := e.Process(matrix.New(0, 0, matrix.Code(7, 6)), matrix.ScanReport{})
	assert.Equal(t, k.NewReport(0, k.KeyF13), report)
	assert.True(t, e.KanaLED())
	assert.Equal(t, uint8(resolver.LEDKanaIndicator|k.LEDNumLock), e.ControlKanaLED(k.LEDNumLock))

	// Kana is on now, but the thumb row has no kana and falls back to base.
	report, _ = e.Process(matrix.New(0, 0, matrix.Code(7, 5)), matrix.ScanReport{})
	assert.Equal(t, k.NewReport(0, k.KeyF14), report)
	assert.False(t, e.KanaLED())
	assert.Equal(t, uint8(k.LEDNumLock), e.ControlKanaLED(k.LEDNumLock))
}

func TestKeyBase(t *testing.T) {
	e, _ := newEngine(t, layout.BaseQwerty, layout.KanaRomaji)
	assert.Equal(t, uint8(k.KeyA), e.KeyBase(matrix.Code(5, 0)))
	assert.Zero(t, e.KeyBase(matrix.Code(7, 2)))
	assert.Zero(t, e.KeyBase(matrix.Size))
	assert.Zero(t, e.KeyBase(0xFF))
}
