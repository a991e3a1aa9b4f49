package keyboard

// HID report descriptor items
const (
	itemUsagePage    = 0x05
	itemUsage        = 0x09
	itemCollection   = 0xA1
	itemEndColl      = 0xC0
	itemUsageMin     = 0x19
	itemUsageMax     = 0x29
	itemLogicalMin   = 0x15
	itemLogicalMax   = 0x25
	itemLogicalMax16 = 0x26
	itemReportSize   = 0x75
	itemReportCount  = 0x95
	itemInput        = 0x81
	itemOutput       = 0x91

	usagePageGenericDesktop = 0x01
	usagePageKeyboard       = 0x07
	usagePageLEDs           = 0x08
	usageKeyboard           = 0x06
	collectionApplication   = 0x01

	mainConst = 0x01
	mainVar   = 0x02
)

// ReportDescriptor describes Report: the boot keyboard layout with a
// six-key array and the five standard LEDs as output. Write it to a Linux
// HID gadget function's report_desc together with protocol 1, subclass 1
// and report_length ReportSize.
var ReportDescriptor = []byte{
	itemUsagePage, usagePageGenericDesktop,
	itemUsage, usageKeyboard,
	itemCollection, collectionApplication,

	// Input: Modifiers (1 byte)
	itemUsagePage, usagePageKeyboard,
	itemUsageMin, KeyLeftCtrl,
	itemUsageMax, KeyRightGUI,
	itemLogicalMin, 0,
	itemLogicalMax, 1,
	itemReportSize, 1,
	itemReportCount, 8,
	itemInput, mainVar,

	// Input: Reserved byte (1 byte)
	itemReportSize, 8,
	itemReportCount, 1,
	itemInput, mainConst,

	// Output: LEDs (5 bits + 3 bits padding)
	itemUsagePage, usagePageLEDs,
	itemUsageMin, 0x01, // Num Lock
	itemUsageMax, 0x05, // Kana
	itemReportSize, 1,
	itemReportCount, 5,
	itemOutput, mainVar,
	itemReportSize, 3,
	itemReportCount, 1,
	itemOutput, mainConst,

	// Input: Key array (6 bytes)
	itemUsagePage, usagePageKeyboard,
	itemUsageMin, 0x00,
	itemUsageMax, 0xFF,
	itemLogicalMin, 0,
	itemLogicalMax16, 0xFF, 0x00,
	itemReportSize, 8,
	itemReportCount, ReportSize - FirstKeySlot,
	itemInput, 0x00,

	itemEndColl,
}

// LEDState is the host's LED output report decoded.
type LEDState struct {
	NumLock    bool
	CapsLock   bool
	ScrollLock bool
	Compose    bool
	Kana       bool
}

// ParseLEDs decodes an LED output report byte.
func ParseLEDs(b uint8) LEDState {
	return LEDState{
		NumLock:    b&LEDNumLock != 0,
		CapsLock:   b&LEDCapsLock != 0,
		ScrollLock: b&LEDScrollLock != 0,
		Compose:    b&LEDCompose != 0,
		Kana:       b&LEDKana != 0,
	}
}
