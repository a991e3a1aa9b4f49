package keyboard_test

import (
	"io"
	"testing"

	"github.com/Alia5/kanamatrix/device/keyboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReport(t *testing.T) {
	type testCase struct {
		name     string
		mods     uint8
		keys     []uint8
		expected keyboard.Report
	}

	cases := []testCase{
		{
			name:     "empty",
			expected: keyboard.Report{},
		},
		{
			name:     "shift a",
			mods:     keyboard.ModLeftShift,
			keys:     []uint8{keyboard.KeyA},
			expected: keyboard.Report{0x02, 0x00, 0x04, 0, 0, 0, 0, 0},
		},
		{
			name:     "overflow is dropped",
			keys:     []uint8{1, 2, 3, 4, 5, 6, 7, 8},
			expected: keyboard.Report{0, 0, 1, 2, 3, 4, 5, 6},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, keyboard.NewReport(tc.mods, tc.keys...))
		})
	}
}

func TestReportKeysSkipsHoles(t *testing.T) {
	r := keyboard.Report{0, 0, keyboard.KeyK, 0, keyboard.KeyA, 0, 0, 0}
	assert.Equal(t, []uint8{keyboard.KeyK, keyboard.KeyA}, r.Keys())
	assert.False(t, r.IsEmpty())
	assert.True(t, keyboard.Report{}.IsEmpty())
}

func TestReportString(t *testing.T) {
	assert.Equal(t, "-", keyboard.Report{}.String())
	assert.Equal(t, "K A", keyboard.NewReport(0, keyboard.KeyK, keyboard.KeyA).String())
	assert.Equal(t, "RightShift", keyboard.NewReport(keyboard.ModRightShift).String())
	assert.Equal(t, "LeftCtrl+LeftShift+Backspace 0xf9",
		keyboard.NewReport(keyboard.ModLeftCtrl|keyboard.ModLeftShift, keyboard.KeyBackspace, 0xF9).String())
}

func TestReportBinary(t *testing.T) {
	r := keyboard.NewReport(keyboard.ModLeftAlt, keyboard.KeyTab)
	b, err := r.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x04, 0, 0x2B, 0, 0, 0, 0, 0}, b)

	var got keyboard.Report
	require.NoError(t, got.UnmarshalBinary([]byte{0x04, 0xFF, 0x2B, 0, 0, 0, 0, 0}))
	assert.Equal(t, r, got)

	assert.ErrorIs(t, got.UnmarshalBinary([]byte{1, 2, 3}), io.ErrUnexpectedEOF)
}

func TestModifiers(t *testing.T) {
	assert.Equal(t, uint8(keyboard.ModLeftShift), keyboard.ModifierBit(keyboard.KeyLeftShift))
	assert.Equal(t, uint8(keyboard.ModRightGUI), keyboard.ModifierBit(keyboard.KeyRightGUI))
	assert.Zero(t, keyboard.ModifierBit(keyboard.KeyA))

	bit, ok := keyboard.ParseModifier("RightAlt")
	assert.True(t, ok)
	assert.Equal(t, uint8(keyboard.ModRightAlt), bit)
	_, ok = keyboard.ParseModifier("Hyper")
	assert.False(t, ok)

	assert.Equal(t, []string{"LeftShift", "RightShift"}, keyboard.ModifierNames(keyboard.ModShift))
}
