// Package layout holds the immutable matrix tables for every base (Latin) and
// kana layout, and the mode enumerations that select between them.
//
// Every table is exactly matrix.Rows x matrix.Cols. Unmapped cells are zero.
// Lookups are bound-checked: a scan code outside the matrix resolves to the
// unmapped value.
package layout

import "github.com/Alia5/kanamatrix/matrix"

// Pseudo key codes. They live above the HID usage range used by the tables
// and are never sent to the host.
const (
	KeyFn            = 0xF0
	KeyLeftAltShift  = 0xF1
	KeyRightAltShift = 0xF2
	KeyDakuten       = 0xF3 // voiced mark: retract the last kana and send its voiced form
	KeyHandaku       = 0xF4 // semi-voiced mark: H row to P row
)

// IsPseudo reports whether key is a table-only pseudo key.
func IsPseudo(key uint8) bool {
	return key >= KeyFn
}

// MacroLen is the maximum number of codes in a kana macro.
const MacroLen = 4

// BaseTable maps a matrix cell to one HID usage code.
type BaseTable [matrix.Rows][matrix.Cols]uint8

// Lookup returns the key for a scan code, 0 when unmapped.
func (t *BaseTable) Lookup(code uint8) uint8 {
	if !matrix.Valid(code) {
		return 0
	}
	return t[matrix.Row(code)][matrix.Col(code)]
}

// ShiftTable maps a matrix cell to a replacement for shifted input. A pair
// starting with keyboard.KeyLeftShift means "keep shift held, send the second
// code"; any other non-zero first code replaces the key and releases shift.
type ShiftTable [matrix.Rows][matrix.Cols][2]uint8

// Lookup returns the replacement pair for a scan code.
func (t *ShiftTable) Lookup(code uint8) [2]uint8 {
	if !matrix.Valid(code) {
		return [2]uint8{}
	}
	return t[matrix.Row(code)][matrix.Col(code)]
}

// Macro is a zero-terminated sequence of key codes sent for one matrix cell.
type Macro [MacroLen]uint8

// unmapped is returned for scan codes outside the matrix.
var unmapped Macro

// Empty reports whether the macro sends nothing. A nil macro is empty.
func (m *Macro) Empty() bool {
	return m == nil || m[0] == 0
}

// Len returns the number of codes before the terminator.
func (m *Macro) Len() int {
	if m == nil {
		return 0
	}
	for i, c := range m {
		if c == 0 {
			return i
		}
	}
	return MacroLen
}

// Codes returns the codes before the terminator.
func (m *Macro) Codes() []uint8 {
	if m == nil {
		return nil
	}
	return m[:m.Len()]
}

// First returns the first code, 0 for an empty macro.
func (m *Macro) First() uint8 {
	if m == nil {
		return 0
	}
	return m[0]
}

// Shares reports whether both macros contain a common key code.
func (m *Macro) Shares(other *Macro) bool {
	for _, a := range m.Codes() {
		for _, b := range other.Codes() {
			if a == b {
				return true
			}
		}
	}
	return false
}

// KanaTable maps a matrix cell to a macro.
type KanaTable [matrix.Rows][matrix.Cols]Macro

// Lookup returns a pointer to the cell for a scan code. The pointer stays
// valid for the life of the process; out-of-range codes share one empty
// macro.
func (t *KanaTable) Lookup(code uint8) *Macro {
	if !matrix.Valid(code) {
		return &unmapped
	}
	return &t[matrix.Row(code)][matrix.Col(code)]
}

// Family is the set of tables one kana layout resolves through. Alt is the
// alt-shift sub-layer and is nil for layouts without one.
type Family struct {
	Base  *KanaTable
	Left  *KanaTable
	Right *KanaTable
	Alt   *KanaTable
}
