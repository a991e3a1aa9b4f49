package resolver

import (
	"github.com/Alia5/kanamatrix/device/keyboard"
	"github.com/Alia5/kanamatrix/layout"
	"github.com/Alia5/kanamatrix/matrix"
)

// voidCode replaces a suppressed repeat; it resolves to nothing.
const voidCode = 0xFF

// roomForEdit is the number of report slots a dakuten/handaku edit takes:
// Backspace, the new consonant and the vowel.
const roomForEdit = 3

// voiced maps an unvoiced consonant to its voiced counterpart.
var voiced = map[uint8]uint8{
	keyboard.KeyK: keyboard.KeyG,
	keyboard.KeyS: keyboard.KeyZ,
	keyboard.KeyT: keyboard.KeyD,
	keyboard.KeyH: keyboard.KeyB,
}

// ProcessKeysKana resolves a scan report through the active kana layout.
// Without a kana layout it behaves like ProcessKeysBase.
func (e *Engine) ProcessKeysKana(current, processed matrix.ScanReport) (keyboard.Report, Xmit) {
	f, ok := layout.Kana(e.kana)
	if !ok {
		return e.ProcessKeysBase(current, processed)
	}
	return e.processKana(current, processed, f)
}

func (e *Engine) processKana(current, processed matrix.ScanReport, f layout.Family) (keyboard.Report, Xmit) {
	var report keyboard.Report
	count := keyboard.FirstKeySlot
	h := &e.history

	mod := current.Modifiers()
	// Shift selects the layer; it is only sent when a table entry asks for it.
	modifiers := mod &^ keyboard.ModShift

	for i := matrix.FirstSlot; i < len(current) && count < len(report); i++ {
		code := current[i]
		if code == matrix.Empty {
			continue
		}

		if key := e.numLock.Key(code); key != 0 {
			report[count] = key
			count++
			h.Last = nil
			h.LastMod = current.Modifiers()
			modifiers = current.Modifiers()
			continue
		}

		noRepeat := matrix.IsKanaCluster(code)
		if noRepeat && processed.Contains(code) {
			code = voidCode
		}

		// With both shifts down, keep only the one that was not already
		// consumed by the previous key.
		if mod&keyboard.ModShift == keyboard.ModShift {
			if h.LastMod&keyboard.ModLeftShift != 0 {
				mod &^= keyboard.ModLeftShift
			} else if processed.Modifiers()&keyboard.ModRightShift != 0 {
				mod &^= keyboard.ModRightShift
			}
		}

		var a *layout.Macro
		switch {
		case mod&keyboard.ModLeftShift != 0:
			a = f.Left.Lookup(code)
		case mod&keyboard.ModRightShift != 0:
			a = f.Right.Lookup(code)
		case current.Extra()&matrix.ExtraAltShift != 0 && f.Alt != nil:
			a = f.Alt.Lookup(code)
		default:
			a = f.Base.Lookup(code)
		}

		if a.Empty() {
			key := e.KeyBase(code)
			if key == 0 {
				continue
			}
			e.updateKanaLED(key)
			report[count] = key
			count++
			h.Last = nil
			h.LastMod = current.Modifiers()
			modifiers = current.Modifiers()
			switch {
			case current.Extra()&matrix.ExtraLeftAltShift != 0:
				modifiers |= keyboard.ModLeftShift
			case current.Extra()&matrix.ExtraRightAltShift != 0:
				modifiers |= keyboard.ModRightShift
			}
			continue
		}

		if noRepeat && h.Sent.Shares(a) {
			h.Sent = nil
			return keyboard.Report{}, XmitBreak
		}

		for _, key := range a.Codes() {
			if count >= len(report) {
				break
			}
			switch key {
			case layout.KeyDakuten:
				if to, ok := voiced[h.Last.First()]; ok && count+roomForEdit <= len(report) {
					count = retract(&report, count, to, h.Last)
				}
			case layout.KeyHandaku:
				if h.Last.First() == keyboard.KeyH && count+roomForEdit <= len(report) {
					count = retract(&report, count, keyboard.KeyP, h.Last)
				}
			case keyboard.KeyLeftShift:
				modifiers |= keyboard.ModLeftShift
			case keyboard.KeyRightShift:
				modifiers |= keyboard.ModRightShift
			default:
				report[count] = key
				count++
			}
		}
		h.Last = a
		h.LastMod = current.Modifiers()
	}

	if count > keyboard.FirstKeySlot {
		h.Sent = h.Last
	} else {
		h.Sent = nil
	}
	report[0] = modifiers
	return report, XmitNormal
}

// retract writes Backspace, the replacement consonant and the vowel of last.
func retract(report *keyboard.Report, count int, consonant uint8, last *layout.Macro) int {
	report[count] = keyboard.KeyBackspace
	report[count+1] = consonant
	count += 2
	if vowel := last[1]; vowel != 0 {
		report[count] = vowel
		count++
	}
	return count
}
