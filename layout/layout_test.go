package layout_test

import (
	"testing"

	k "github.com/Alia5/kanamatrix/device/keyboard"
	"github.com/Alia5/kanamatrix/layout"
	"github.com/Alia5/kanamatrix/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allKanaTables(t *testing.T) map[string]*layout.KanaTable {
	tables := map[string]*layout.KanaTable{}
	for m := layout.KanaNicola; m <= layout.KanaMax; m++ {
		f, ok := layout.Kana(m)
		require.True(t, ok, m.String())
		tables[m.String()+"/base"] = f.Base
		tables[m.String()+"/left"] = f.Left
		tables[m.String()+"/right"] = f.Right
		if f.Alt != nil {
			tables[m.String()+"/alt"] = f.Alt
		}
	}
	return tables
}

func TestUnmappedLookupIsZero(t *testing.T) {
	for name, tbl := range allKanaTables(t) {
		t.Run(name, func(t *testing.T) {
			for code := uint8(0); code < matrix.Size; code++ {
				a := tbl.Lookup(code)
				assert.Same(t, a, tbl.Lookup(code))
				if a.Empty() {
					assert.Equal(t, layout.Macro{}, *a, "code %d", code)
				}
			}
			for _, code := range []uint8{matrix.Size, 200, 0xFF} {
				assert.True(t, tbl.Lookup(code).Empty())
				assert.Equal(t, layout.Macro{}, *tbl.Lookup(code))
			}
		})
	}

	for m := layout.BaseQwerty; m <= layout.BaseMax; m++ {
		assert.Zero(t, layout.Base(m).Lookup(matrix.Size), m.String())
		assert.Zero(t, layout.Base(m).Lookup(matrix.Code(1, 5)), m.String())
	}
	assert.Equal(t, [2]uint8{}, layout.NicolaFShift().Lookup(0xFF))
	assert.Equal(t, [2]uint8{}, layout.NicolaFShift().Lookup(matrix.Code(5, 0)))
}

func TestBaseLookup(t *testing.T) {
	type testCase struct {
		name     string
		mode     layout.BaseMode
		row, col int
		expected uint8
	}

	cases := []testCase{
		{name: "qwerty a", mode: layout.BaseQwerty, row: 5, col: 0, expected: k.KeyA},
		{name: "dvorak o", mode: layout.BaseDvorak, row: 5, col: 1, expected: k.KeyO},
		{name: "colemak r", mode: layout.BaseColemak, row: 5, col: 1, expected: k.KeyR},
		{name: "jis kana on", mode: layout.BaseJIS, row: 7, col: 6, expected: k.KeyF13},
		{name: "jis kana off", mode: layout.BaseJIS, row: 7, col: 5, expected: k.KeyF14},
		{name: "nicola-f muhenkan", mode: layout.BaseNicolaF, row: 7, col: 4, expected: k.KeyInternational5},
		{name: "nicola-f alt shift", mode: layout.BaseNicolaF, row: 7, col: 0, expected: layout.KeyLeftAltShift},
		{name: "unknown mode is qwerty", mode: layout.BaseMode(42), row: 5, col: 1, expected: k.KeyS},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, layout.Base(tc.mode).Lookup(matrix.Code(tc.row, tc.col)))
		})
	}
}

func TestNicolaFShift(t *testing.T) {
	s := layout.NicolaFShift()
	assert.Equal(t, [2]uint8{k.KeyLeftShift, k.KeySlash}, s.Lookup(matrix.Code(2, 1)))
	assert.Equal(t, [2]uint8{k.KeySlash, 0}, s.Lookup(matrix.Code(3, 1)))
	assert.Equal(t, [2]uint8{k.KeyNonUSHash, 0}, s.Lookup(matrix.Code(3, 8)))
}

func TestKanaFamilies(t *testing.T) {
	_, ok := layout.Kana(layout.KanaRomaji)
	assert.False(t, ok)
	_, ok = layout.Kana(layout.KanaMode(9))
	assert.False(t, ok)

	f, ok := layout.Kana(layout.KanaNicola)
	require.True(t, ok)
	assert.Nil(t, f.Alt)
	assert.Equal(t, []uint8{k.KeyK, k.KeyA}, f.Base.Lookup(matrix.Code(4, 1)).Codes())
	assert.Equal(t, []uint8{layout.KeyDakuten}, f.Left.Lookup(matrix.Code(0, 11)).Codes())
	assert.Equal(t, []uint8{layout.KeyHandaku}, f.Right.Lookup(matrix.Code(0, 11)).Codes())

	f, ok = layout.Kana(layout.KanaNicolaF)
	require.True(t, ok)
	require.NotNil(t, f.Alt)
	assert.Equal(t, []uint8{k.KeyP, k.KeyA}, f.Alt.Lookup(matrix.Code(5, 7)).Codes())

	f, ok = layout.Kana(layout.KanaStickney)
	require.True(t, ok)
	assert.Same(t, f.Left, f.Right)

	f, ok = layout.Kana(layout.KanaTron)
	require.True(t, ok)
	assert.Equal(t, []uint8{k.KeyX, k.KeyT, k.KeyU}, f.Base.Lookup(matrix.Code(6, 11)).Codes())

	f, ok = layout.Kana(layout.KanaMtype)
	require.True(t, ok)
	assert.Equal(t, []uint8{k.KeyRightShift, k.KeySlash}, f.Right.Lookup(matrix.Code(5, 11)).Codes())
}

func TestMacro(t *testing.T) {
	ka := layout.Macro{k.KeyK, k.KeyA}
	ko := layout.Macro{k.KeyK, k.KeyO}
	ni := layout.Macro{k.KeyN, k.KeyI}
	full := layout.Macro{1, 2, 3, 4}

	assert.Equal(t, 2, ka.Len())
	assert.Equal(t, 4, full.Len())
	assert.Equal(t, []uint8{1, 2, 3, 4}, full.Codes())
	assert.True(t, ka.Shares(&ko))
	assert.False(t, ka.Shares(&ni))
	assert.Equal(t, uint8(k.KeyK), ka.First())

	var none *layout.Macro
	assert.True(t, none.Empty())
	assert.Zero(t, none.Len())
	assert.Nil(t, none.Codes())
	assert.False(t, none.Shares(&ka))
	assert.False(t, ka.Shares(none))
}

func TestModes(t *testing.T) {
	assert.Equal(t, layout.BaseDvorak, layout.BaseQwerty.Next())
	assert.Equal(t, layout.BaseQwerty, layout.BaseNicolaF.Next())
	assert.Equal(t, layout.BaseQwerty, layout.BaseMode(200).Next())
	assert.Equal(t, layout.KanaRomaji, layout.KanaStickney.Next())
	assert.Equal(t, "nicola-f", layout.BaseNicolaF.String())
	assert.Equal(t, "kana(9)", layout.KanaMode(9).String())
	assert.True(t, layout.BaseJIS.IsJP())
	assert.False(t, layout.BaseColemak.IsJP())

	m, err := layout.ParseKanaMode("Tron")
	require.NoError(t, err)
	assert.Equal(t, layout.KanaTron, m)

	m, err = layout.ParseKanaMode("nicolaf")
	require.NoError(t, err)
	assert.Equal(t, layout.KanaNicolaF, m)

	b, err := layout.ParseBaseMode("3")
	require.NoError(t, err)
	assert.Equal(t, layout.BaseJIS, b)

	_, err = layout.ParseBaseMode("azerty")
	assert.ErrorIs(t, err, layout.ErrUnknownMode)
	_, err = layout.ParseKanaMode("6")
	assert.ErrorIs(t, err, layout.ErrUnknownMode)
}

func TestMessages(t *testing.T) {
	assert.Equal(t, []uint8{k.KeyU, k.KeyS, k.KeyMinus, k.KeyD, k.KeyEnter}, layout.BaseMessage(layout.BaseDvorak))
	assert.Equal(t, []uint8{k.KeyS, k.KeyT, k.KeyI, k.KeyC, k.KeyK, k.KeyEnter}, layout.KanaMessage(layout.KanaStickney))
	assert.Nil(t, layout.BaseMessage(layout.BaseMode(7)))
	assert.Nil(t, layout.KanaMessage(layout.KanaMode(7)))
	assert.Len(t, layout.BaseModeNames(), int(layout.BaseMax)+1)
	assert.Len(t, layout.KanaModeNames(), int(layout.KanaMax)+1)
}
