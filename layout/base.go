package layout

import k "github.com/Alia5/kanamatrix/device/keyboard"

// Base layouts. Rows 0-2 hold the function and number keys, rows 4-6 the
// letter block, row 7 the thumb row.

var qwerty = BaseTable{
	{k.KeyLeftBrace, k.KeyF2, k.KeyF3, k.KeyF4, k.KeyF5, k.KeyF6, k.KeyF7, k.KeyF8, k.KeyF9, k.KeyF10, k.KeyF11, k.KeyEqual},
	{k.KeyGrave, k.KeyF1, 0, 0, 0, 0, 0, 0, 0, 0, k.KeyF12, k.KeyBackslash},
	{k.KeyRightBrace, k.Key1, 0, 0, 0, 0, 0, 0, 0, 0, k.Key0, k.KeyMinus},
	{k.KeyCapsLock, k.Key2, k.Key3, k.Key4, k.Key5, 0, 0, k.Key6, k.Key7, k.Key8, k.Key9, k.KeyApostrophe},
	{k.KeyQ, k.KeyW, k.KeyE, k.KeyR, k.KeyT, 0, 0, k.KeyY, k.KeyU, k.KeyI, k.KeyO, k.KeyP},
	{k.KeyA, k.KeyS, k.KeyD, k.KeyF, k.KeyG, k.KeyEscape, k.KeyApplication, k.KeyH, k.KeyJ, k.KeyK, k.KeyL, k.KeySemicolon},
	{k.KeyZ, k.KeyX, k.KeyC, k.KeyV, k.KeyB, k.KeyTab, k.KeyEnter, k.KeyN, k.KeyM, k.KeyComma, k.KeyPeriod, k.KeySlash},
	{k.KeyLeftCtrl, k.KeyLeftGUI, KeyFn, k.KeyLeftShift, k.KeyBackspace, k.KeyLeftAlt, k.KeyRightAlt, k.KeySpace, k.KeyRightShift, KeyFn, k.KeyRightGUI, k.KeyRightCtrl},
}

var dvorak = BaseTable{
	{k.KeyLeftBrace, k.KeyF2, k.KeyF3, k.KeyF4, k.KeyF5, k.KeyF6, k.KeyF7, k.KeyF8, k.KeyF9, k.KeyF10, k.KeyF11, k.KeyEqual},
	{k.KeyGrave, k.KeyF1, 0, 0, 0, 0, 0, 0, 0, 0, k.KeyF12, k.KeyBackslash},
	{k.KeyRightBrace, k.Key1, 0, 0, 0, 0, 0, 0, 0, 0, k.Key0, k.KeySlash},
	{k.KeyCapsLock, k.Key2, k.Key3, k.Key4, k.Key5, 0, 0, k.Key6, k.Key7, k.Key8, k.Key9, k.KeyMinus},
	{k.KeyApostrophe, k.KeyComma, k.KeyPeriod, k.KeyP, k.KeyY, 0, 0, k.KeyF, k.KeyG, k.KeyC, k.KeyR, k.KeyL},
	{k.KeyA, k.KeyO, k.KeyE, k.KeyU, k.KeyI, k.KeyEscape, k.KeyApplication, k.KeyD, k.KeyH, k.KeyT, k.KeyN, k.KeyS},
	{k.KeySemicolon, k.KeyQ, k.KeyJ, k.KeyK, k.KeyX, k.KeyTab, k.KeyEnter, k.KeyB, k.KeyM, k.KeyW, k.KeyV, k.KeyZ},
	{k.KeyLeftCtrl, k.KeyLeftGUI, KeyFn, k.KeyLeftShift, k.KeyBackspace, k.KeyLeftAlt, k.KeyRightAlt, k.KeySpace, k.KeyRightShift, KeyFn, k.KeyRightGUI, k.KeyRightCtrl},
}

var colemak = BaseTable{
	{k.KeyLeftBrace, k.KeyF2, k.KeyF3, k.KeyF4, k.KeyF5, k.KeyF6, k.KeyF7, k.KeyF8, k.KeyF9, k.KeyF10, k.KeyF11, k.KeyEqual},
	{k.KeyGrave, k.KeyF1, 0, 0, 0, 0, 0, 0, 0, 0, k.KeyF12, k.KeyBackslash},
	{k.KeyRightBrace, k.Key1, 0, 0, 0, 0, 0, 0, 0, 0, k.Key0, k.KeyMinus},
	{k.KeyBackspace, k.Key2, k.Key3, k.Key4, k.Key5, 0, 0, k.Key6, k.Key7, k.Key8, k.Key9, k.KeyApostrophe},
	{k.KeyQ, k.KeyW, k.KeyF, k.KeyP, k.KeyG, 0, 0, k.KeyJ, k.KeyL, k.KeyU, k.KeyY, k.KeySemicolon},
	{k.KeyA, k.KeyR, k.KeyS, k.KeyT, k.KeyD, k.KeyEscape, k.KeyApplication, k.KeyH, k.KeyN, k.KeyE, k.KeyI, k.KeyO},
	{k.KeyZ, k.KeyX, k.KeyC, k.KeyV, k.KeyB, k.KeyTab, k.KeyEnter, k.KeyK, k.KeyM, k.KeyComma, k.KeyPeriod, k.KeySlash},
	{k.KeyLeftCtrl, k.KeyLeftGUI, KeyFn, k.KeyLeftShift, k.KeySpace, k.KeyLeftAlt, k.KeyRightAlt, k.KeySpace, k.KeyRightShift, KeyFn, k.KeyRightGUI, k.KeyRightCtrl},
}

// JIS layouts. The host is expected to use a Japanese keymap, so symbols
// sit on the usages a JIS keyboard reports for them:
//
//	[{  KeyRightBrace      ]}  KeyNonUSHash
//	\|  KeyInternational3  @`  KeyLeftBrace
//	:*  KeyApostrophe      ^~  KeyEqual
//	 _  KeyInternational1  F13/F14 kana on/off

var jis = BaseTable{
	{k.KeyRightBrace, k.KeyF2, k.KeyF3, k.KeyF4, k.KeyF5, k.KeyF6, k.KeyF7, k.KeyF8, k.KeyF9, k.KeyF10, k.KeyF11, k.KeyMinus},
	{k.KeyInternational3, k.KeyF1, 0, 0, 0, 0, 0, 0, 0, 0, k.KeyF12, k.KeyEqual},
	{k.KeyNonUSHash, k.Key1, 0, 0, 0, 0, 0, 0, 0, 0, k.Key0, k.KeyLeftBrace},
	{k.KeyCapsLock, k.Key2, k.Key3, k.Key4, k.Key5, 0, 0, k.Key6, k.Key7, k.Key8, k.Key9, k.KeyApostrophe},
	{k.KeyQ, k.KeyW, k.KeyE, k.KeyR, k.KeyT, 0, 0, k.KeyY, k.KeyU, k.KeyI, k.KeyO, k.KeyP},
	{k.KeyA, k.KeyS, k.KeyD, k.KeyF, k.KeyG, k.KeyEscape, k.KeyApplication, k.KeyH, k.KeyJ, k.KeyK, k.KeyL, k.KeySemicolon},
	{k.KeyZ, k.KeyX, k.KeyC, k.KeyV, k.KeyB, k.KeyTab, k.KeyEnter, k.KeyN, k.KeyM, k.KeyComma, k.KeyPeriod, k.KeySlash},
	{k.KeyLeftCtrl, k.KeyLeftAlt, KeyFn, k.KeyLeftShift, k.KeyBackspace, k.KeyF14, k.KeyF13, k.KeySpace, k.KeyRightShift, KeyFn, k.KeyRightGUI, k.KeyRightCtrl},
}

var nicolaF = BaseTable{
	{k.KeyInternational3, k.KeyF2, k.KeyF3, k.KeyF4, k.KeyF5, k.KeyF6, k.KeyF7, k.KeyF8, k.KeyF9, k.KeyF10, k.KeyF11, k.KeyMinus},
	{k.KeyCapsLock, k.KeyF1, 0, 0, 0, 0, 0, 0, 0, 0, k.KeyF12, k.KeyLeftBrace},
	{k.KeyEqual, k.Key1, 0, 0, 0, 0, 0, 0, 0, 0, k.Key0, k.KeyApostrophe},
	{k.KeyLeftCtrl, k.Key2, k.Key3, k.Key4, k.Key5, 0, 0, k.Key6, k.Key7, k.Key8, k.Key9, k.KeyBackspace},
	{k.KeyQ, k.KeyW, k.KeyE, k.KeyR, k.KeyT, 0, 0, k.KeyY, k.KeyU, k.KeyI, k.KeyO, k.KeyP},
	{k.KeyA, k.KeyS, k.KeyD, k.KeyF, k.KeyG, k.KeyEscape, k.KeyApplication, k.KeyH, k.KeyJ, k.KeyK, k.KeyL, k.KeySemicolon},
	{k.KeyZ, k.KeyX, k.KeyC, k.KeyV, k.KeyB, k.KeyTab, k.KeyEnter, k.KeyN, k.KeyM, k.KeyComma, k.KeyPeriod, k.KeySlash},
	{KeyLeftAltShift, k.KeyLeftAlt, KeyFn, k.KeyLeftShift, k.KeyInternational5, k.KeyF14, k.KeyF13, k.KeySpace, k.KeyRightShift, KeyFn, k.KeyRightGUI, KeyRightAltShift},
}

// nicolaFShift remaps shifted number-row keys on the NICOLA-F base layout.
var nicolaFShift = ShiftTable{
	2: {1: {k.KeyLeftShift, k.KeySlash}},
	3: {
		1: {k.KeySlash},
		2: {k.KeyLeftShift, k.KeyEqual},
		3: {k.KeyLeftShift, k.KeyRightBrace},
		4: {k.KeyLeftShift, k.KeyNonUSHash},
		7: {k.KeyRightBrace},
		8: {k.KeyNonUSHash},
	},
}

var baseTables = [...]*BaseTable{
	BaseQwerty:  &qwerty,
	BaseDvorak:  &dvorak,
	BaseColemak: &colemak,
	BaseJIS:     &jis,
	BaseNicolaF: &nicolaF,
}

// Base returns the table for a base mode. Unknown modes resolve through
// Qwerty.
func Base(m BaseMode) *BaseTable {
	if !m.Valid() {
		return &qwerty
	}
	return baseTables[m]
}

// NicolaFShift returns the shift remap table of the NICOLA-F base layout.
func NicolaFShift() *ShiftTable {
	return &nicolaFShift
}
