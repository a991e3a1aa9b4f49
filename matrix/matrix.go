// Package matrix describes the key matrix geometry and the scan report the
// matrix scanner hands to the resolver once per poll.
package matrix

// Matrix geometry. A scan code is row*Cols+col.
const (
	Rows = 8
	Cols = 12
	Size = Rows * Cols
)

// Empty marks an unused key slot.
const Empty = 0

// Extra-modifier bitmasks (scan report byte 1)
const (
	ExtraLeftAltShift  = 0x01
	ExtraRightAltShift = 0x02
	ExtraFn            = 0x04

	ExtraAltShift = ExtraLeftAltShift | ExtraRightAltShift
)

// Slot range of scan codes within a ScanReport.
const (
	FirstSlot = 2
	Slots     = 6
)

// ScanReport is one poll of the matrix.
//
//	Byte 0: HID modifier bitmap
//	Byte 1: Extra-modifier bitmap (alt-shift, Fn)
//	Bytes 2-7: Scan codes, Empty when unused
type ScanReport [FirstSlot + Slots]byte

// New builds a scan report. Codes beyond the sixth are dropped.
func New(modifiers, extra uint8, codes ...uint8) ScanReport {
	var s ScanReport
	s[0] = modifiers
	s[1] = extra
	for i, c := range codes {
		if i >= Slots {
			break
		}
		s[FirstSlot+i] = c
	}
	return s
}

// Modifiers returns byte 0.
func (s ScanReport) Modifiers() uint8 { return s[0] }

// Extra returns byte 1.
func (s ScanReport) Extra() uint8 { return s[1] }

// Codes returns the non-empty scan codes in slot order.
func (s ScanReport) Codes() []uint8 {
	codes := make([]uint8, 0, Slots)
	for _, c := range s[FirstSlot:] {
		if c != Empty {
			codes = append(codes, c)
		}
	}
	return codes
}

// Contains reports whether code occupies one of the key slots.
func (s ScanReport) Contains(code uint8) bool {
	for _, c := range s[FirstSlot:] {
		if c == code {
			return true
		}
	}
	return false
}

// Valid reports whether code addresses a matrix cell.
func Valid(code uint8) bool {
	return code < Size
}

// Row returns the matrix row of a scan code.
func Row(code uint8) int { return int(code) / Cols }

// Col returns the matrix column of a scan code.
func Col(code uint8) int { return int(code) % Cols }

// Code returns the scan code of a matrix cell.
func Code(row, col int) uint8 {
	return uint8(row*Cols + col)
}

// IsKanaCluster reports whether code sits in the kana-producing block
// (rows 4-6 without the two centre columns). Auto-repeat is disabled there.
func IsKanaCluster(code uint8) bool {
	col := Col(code)
	return Cols*4 <= int(code) && int(code) < Cols*7 && col != 5 && col != 6
}
