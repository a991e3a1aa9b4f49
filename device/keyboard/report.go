package keyboard

import (
	"io"
	"strings"
)

// ReportSize is the length of a boot protocol keyboard report.
const ReportSize = 8

// FirstKeySlot is the index of the first key code in a Report.
const FirstKeySlot = 2

// Report is an 8-byte HID boot protocol keyboard report.
//
// Report layout:
//
//	Byte 0: Modifiers (8 bits)
//	Byte 1: Reserved (0x00)
//	Bytes 2-7: Key codes, zero padded
type Report [ReportSize]byte

// NewReport builds a report from modifiers and up to six keys. Extra keys are
// dropped.
func NewReport(modifiers uint8, keys ...uint8) Report {
	var r Report
	r[0] = modifiers
	for i, k := range keys {
		if FirstKeySlot+i >= ReportSize {
			break
		}
		r[FirstKeySlot+i] = k
	}
	return r
}

// Modifiers returns the modifier bitmap.
func (r Report) Modifiers() uint8 {
	return r[0]
}

// Keys returns the non-zero key codes in slot order.
func (r Report) Keys() []uint8 {
	keys := make([]uint8, 0, ReportSize-FirstKeySlot)
	for _, k := range r[FirstKeySlot:] {
		if k != 0 {
			keys = append(keys, k)
		}
	}
	return keys
}

// IsEmpty reports whether no modifier and no key is set.
func (r Report) IsEmpty() bool {
	return r == Report{}
}

// String renders the report as "Mods+Key Key ...", e.g. "LeftShift+A B".
func (r Report) String() string {
	var keys []string
	for _, k := range r.Keys() {
		keys = append(keys, Name(k))
	}
	mods := strings.Join(ModifierNames(r[0]), "+")
	switch {
	case mods == "" && len(keys) == 0:
		return "-"
	case mods == "":
		return strings.Join(keys, " ")
	case len(keys) == 0:
		return mods
	}
	return mods + "+" + strings.Join(keys, " ")
}

// MarshalBinary returns the 8 raw report bytes.
func (r Report) MarshalBinary() ([]byte, error) {
	b := make([]byte, ReportSize)
	copy(b, r[:])
	return b, nil
}

// UnmarshalBinary decodes 8 raw report bytes. Byte 1 is forced to zero.
func (r *Report) UnmarshalBinary(data []byte) error {
	if len(data) < ReportSize {
		return io.ErrUnexpectedEOF
	}
	copy(r[:], data[:ReportSize])
	r[1] = 0x00 // Reserved
	return nil
}
