package resolver

import (
	"github.com/Alia5/kanamatrix/device/keyboard"
	"github.com/Alia5/kanamatrix/layout"
	"github.com/Alia5/kanamatrix/matrix"
)

// KeyBase resolves a scan code through the active base layout. Pseudo keys
// and unmapped cells resolve to 0.
func (e *Engine) KeyBase(code uint8) uint8 {
	key := layout.Base(e.base).Lookup(code)
	if layout.IsPseudo(key) {
		return 0
	}
	return key
}

// ProcessKeysBase resolves a scan report through the base layout only.
// Unmapped codes are dropped. It always returns XmitNormal.
func (e *Engine) ProcessKeysBase(current, processed matrix.ScanReport) (keyboard.Report, Xmit) {
	var report keyboard.Report
	count := keyboard.FirstKeySlot
	modifiers := current.Modifiers()
	for i := matrix.FirstSlot; i < len(current); i++ {
		code := current[i]
		if code == matrix.Empty {
			continue
		}
		key := e.numLock.Key(code)
		if key == 0 {
			if e.base == layout.BaseNicolaF {
				key, modifiers = nicolaFShift(current, code, modifiers)
			}
			if key == 0 {
				key = e.KeyBase(code)
			}
		}
		if key == 0 || count >= len(report) {
			continue
		}
		switch {
		case key == keyboard.KeyF13 || key == keyboard.KeyF14:
			e.updateKanaLED(key)
		case key == keyboard.Key0 && modifiers&keyboard.ModShift != 0 && e.base.IsJP():
			// Shift+0 has no glyph on a JIS keymap; send underscore.
			key = keyboard.KeyInternational1
		}
		report[count] = key
		count++
	}
	report[0] = modifiers
	return report, XmitNormal
}

// nicolaFShift applies the NICOLA-F number-row remap for a held Shift and
// turns an alt-shift thumb key into a plain Shift otherwise. It returns 0
// when the base table should resolve the code.
func nicolaFShift(current matrix.ScanReport, code, modifiers uint8) (uint8, uint8) {
	switch {
	case current.Modifiers()&keyboard.ModShift != 0:
		a := layout.NicolaFShift().Lookup(code)
		if a[0] == 0 {
			return 0, modifiers
		}
		if a[0] == keyboard.KeyLeftShift {
			return a[1], modifiers | current.Modifiers()&keyboard.ModShift
		}
		return a[0], modifiers &^ keyboard.ModShift
	case current.Extra()&matrix.ExtraLeftAltShift != 0:
		return 0, modifiers | keyboard.ModLeftShift
	case current.Extra()&matrix.ExtraRightAltShift != 0:
		return 0, modifiers | keyboard.ModRightShift
	}
	return 0, modifiers
}
