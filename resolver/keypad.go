package resolver

import (
	"github.com/Alia5/kanamatrix/device/keyboard"
	"github.com/Alia5/kanamatrix/matrix"
)

// NumLock is the numeric keypad overlay. It takes precedence over every
// layout; Key returns 0 for codes it does not map.
type NumLock interface {
	Key(code uint8) uint8
}

// NoNumLock never maps a code.
type NoNumLock struct{}

func (NoNumLock) Key(uint8) uint8 { return 0 }

// keypadCells is the embedded numeric pad over the right-hand block:
//
//	7 8 9 0      Kp7 Kp8 Kp9 Kp/
//	U I O P      Kp4 Kp5 Kp6 Kp*
//	J K L ;      Kp1 Kp2 Kp3 Kp-
//	M . /        Kp0 Kp. Kp+
var keypadCells = map[uint8]uint8{
	matrix.Code(3, 8):  keyboard.KeyKp7,
	matrix.Code(3, 9):  keyboard.KeyKp8,
	matrix.Code(3, 10): keyboard.KeyKp9,
	matrix.Code(2, 10): keyboard.KeyKpSlash,
	matrix.Code(4, 8):  keyboard.KeyKp4,
	matrix.Code(4, 9):  keyboard.KeyKp5,
	matrix.Code(4, 10): keyboard.KeyKp6,
	matrix.Code(4, 11): keyboard.KeyKpAsterisk,
	matrix.Code(5, 8):  keyboard.KeyKp1,
	matrix.Code(5, 9):  keyboard.KeyKp2,
	matrix.Code(5, 10): keyboard.KeyKp3,
	matrix.Code(5, 11): keyboard.KeyKpMinus,
	matrix.Code(6, 8):  keyboard.KeyKp0,
	matrix.Code(6, 10): keyboard.KeyKpDot,
	matrix.Code(6, 11): keyboard.KeyKpPlus,
}

// Keypad is a NumLock that maps the right-hand block to keypad codes while
// enabled.
type Keypad struct {
	enabled bool
}

// NewKeypad returns a keypad overlay in the given state.
func NewKeypad(enabled bool) *Keypad {
	return &Keypad{enabled: enabled}
}

func (k *Keypad) Key(code uint8) uint8 {
	if !k.enabled {
		return 0
	}
	return keypadCells[code]
}

// Enabled reports whether the overlay is active.
func (k *Keypad) Enabled() bool { return k.enabled }

// SetEnabled turns the overlay on or off.
func (k *Keypad) SetEnabled(on bool) { k.enabled = on }

// Toggle flips the overlay and returns the new state.
func (k *Keypad) Toggle() bool {
	k.enabled = !k.enabled
	return k.enabled
}
