package resolver_test

import (
	"testing"

	k "github.com/Alia5/kanamatrix/device/keyboard"
	"github.com/Alia5/kanamatrix/layout"
	"github.com/Alia5/kanamatrix/matrix"
	"github.com/Alia5/kanamatrix/resolver"
	"github.com/stretchr/testify/assert"
)

func TestKeypad(t *testing.T) {
	type testCase struct {
		name     string
		row, col int
		expected uint8
	}

	cases := []testCase{
		{name: "7", row: 3, col: 8, expected: k.KeyKp7},
		{name: "9", row: 3, col: 10, expected: k.KeyKp9},
		{name: "slash", row: 2, col: 10, expected: k.KeyKpSlash},
		{name: "5", row: 4, col: 9, expected: k.KeyKp5},
		{name: "asterisk", row: 4, col: 11, expected: k.KeyKpAsterisk},
		{name: "minus", row: 5, col: 11, expected: k.KeyKpMinus},
		{name: "0", row: 6, col: 8, expected: k.KeyKp0},
		{name: "dot", row: 6, col: 10, expected: k.KeyKpDot},
		{name: "plus", row: 6, col: 11, expected: k.KeyKpPlus},
		{name: "left hand is untouched", row: 5, col: 0},
		{name: "comma is untouched", row: 6, col: 9},
	}

	pad := resolver.NewKeypad(true)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, pad.Key(matrix.Code(tc.row, tc.col)))
		})
	}
}

func TestKeypadToggle(t *testing.T) {
	pad := resolver.NewKeypad(false)
	assert.False(t, pad.Enabled())
	assert.Zero(t, pad.Key(matrix.Code(3, 8)))

	assert.True(t, pad.Toggle())
	assert.Equal(t, uint8(k.KeyKp7), pad.Key(matrix.Code(3, 8)))

	pad.SetEnabled(false)
	assert.False(t, pad.Enabled())
	assert.Zero(t, resolver.NoNumLock{}.Key(matrix.Code(3, 8)))
}

func TestKeypadOverridesBase(t *testing.T) {
	e := resolver.New(&resolver.Options{NumLock: resolver.NewKeypad(true)})
	report, _ := e.Process(matrix.New(k.ModLeftShift, 0, matrix.Code(3, 8), matrix.Code(5, 0)), matrix.ScanReport{})
	assert.Equal(t, k.NewReport(k.ModLeftShift, k.KeyKp7, k.KeyA), report)
	assert.Equal(t, layout.BaseQwerty, e.BaseMode())
}
