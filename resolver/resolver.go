// Package resolver turns matrix scan reports into HID keyboard reports.
//
// An Engine resolves every poll through the active base (Latin) layout, or,
// while kana input is on, through the active kana layout with macro
// expansion, dakuten/handaku composition and repeat suppression. The Engine
// keeps a one-step input history between calls so that a composed kana can
// be retracted and a repeated kana can be separated from the previous one by
// a neutral report.
//
// An Engine is not safe for concurrent use. Scan cycles from several sources
// must be funnelled through one goroutine.
package resolver

import (
	"fmt"

	"github.com/Alia5/kanamatrix/device/keyboard"
	"github.com/Alia5/kanamatrix/eeprom"
	"github.com/Alia5/kanamatrix/layout"
	"github.com/Alia5/kanamatrix/matrix"
)

// Xmit tells the transport how to send a resolved report.
type Xmit uint8

const (
	// XmitNormal: send the report as is.
	XmitNormal Xmit = iota
	// XmitBreak: send a neutral report first so the host sees every key
	// released, then resolve the same scan again.
	XmitBreak
)

func (x Xmit) String() string {
	switch x {
	case XmitNormal:
		return "normal"
	case XmitBreak:
		return "break"
	default:
		return fmt.Sprintf("xmit(%d)", uint8(x))
	}
}

// LEDKanaIndicator is the status bit ControlKanaLED sets while kana input is
// active.
const LEDKanaIndicator = 0x02

// History is the composition state carried from one kana resolution to the
// next. Last and Sent point into the process-lifetime layout tables.
type History struct {
	// Last is the macro most recently emitted, nil after a non-kana key.
	Last *layout.Macro
	// LastMod is the scan modifier byte in effect when Last was set.
	LastMod uint8
	// Sent is the macro that makes a following kana-cluster key with a
	// common code trigger XmitBreak.
	Sent *layout.Macro
}

// Options configure a new Engine.
type Options struct {
	// Store persists the selected modes. Defaults to an empty memory store.
	Store eeprom.Store
	// NumLock is the keypad overlay consulted before any layout. Defaults to
	// NoNumLock.
	NumLock NumLock
}

// Engine is the per-keyboard resolver state.
type Engine struct {
	store   eeprom.Store
	numLock NumLock

	base    layout.BaseMode
	kana    layout.KanaMode
	kanaLED bool
	history History
}

// New returns an Engine in Qwerty/Romaji mode. Call Init to load the
// persisted modes.
func New(o *Options) *Engine {
	e := &Engine{
		store:   eeprom.NewMemory(nil),
		numLock: NoNumLock{},
	}
	if o != nil {
		if o.Store != nil {
			e.store = o.Store
		}
		if o.NumLock != nil {
			e.numLock = o.NumLock
		}
	}
	return e
}

// Init loads both modes from the store.
func (e *Engine) Init() error {
	b, err := e.store.Read(eeprom.AddrBase)
	if err != nil {
		return fmt.Errorf("read %s mode: %w", eeprom.AddrBase, err)
	}
	k, err := e.store.Read(eeprom.AddrKana)
	if err != nil {
		return fmt.Errorf("read %s mode: %w", eeprom.AddrKana, err)
	}
	e.base = layout.BaseMode(b)
	e.kana = layout.KanaMode(k)
	return nil
}

// Reload re-reads the modes after the store changed underneath the engine.
// The composition history is dropped since it may point into the tables of
// a layout that is no longer active.
func (e *Engine) Reload() error {
	if err := e.Init(); err != nil {
		return err
	}
	e.ResetHistory()
	return nil
}

// BaseMode returns the active base layout.
func (e *Engine) BaseMode() layout.BaseMode { return e.base }

// KanaMode returns the active kana layout.
func (e *Engine) KanaMode() layout.KanaMode { return e.kana }

// KanaLED reports whether kana input has been switched on.
func (e *Engine) KanaLED() bool { return e.kanaLED }

// SetKanaLED switches kana input on or off, as F13/F14 do.
func (e *Engine) SetKanaLED(on bool) { e.kanaLED = on }

// History returns a copy of the composition state.
func (e *Engine) History() History { return e.history }

// ResetHistory forgets the composition state.
func (e *Engine) ResetHistory() { e.history = History{} }

// IsKanaMode reports whether current should resolve through the kana layout:
// kana input is on, no Alt, Ctrl or GUI is held, and a kana layout is
// selected.
func (e *Engine) IsKanaMode(current matrix.ScanReport) bool {
	return e.kanaLED &&
		current.Modifiers()&(keyboard.ModAlt|keyboard.ModCtrl|keyboard.ModGUI) == 0 &&
		e.kana != layout.KanaRomaji
}

// ControlKanaLED adds LEDKanaIndicator to an LED status byte while kana
// input is active.
func (e *Engine) ControlKanaLED(leds uint8) uint8 {
	if e.kanaLED && e.kana != layout.KanaRomaji {
		leds |= LEDKanaIndicator
	}
	return leds
}

// Process resolves one scan cycle. processed is the previous cycle's scan
// report and is only used for repeat suppression.
func (e *Engine) Process(current, processed matrix.ScanReport) (keyboard.Report, Xmit) {
	if e.IsKanaMode(current) {
		return e.ProcessKeysKana(current, processed)
	}
	return e.ProcessKeysBase(current, processed)
}

// updateKanaLED applies the kana on/off keys.
func (e *Engine) updateKanaLED(key uint8) {
	switch key {
	case keyboard.KeyF13:
		e.kanaLED = true
	case keyboard.KeyF14:
		e.kanaLED = false
	}
}
