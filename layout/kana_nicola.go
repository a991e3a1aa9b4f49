package layout

import k "github.com/Alia5/kanamatrix/device/keyboard"

// NICOLA (thumb shift). The left and right variants are selected by the
// thumb shift keys, which the scanner reports as Left and Right Shift.

var nicola = KanaTable{
	0: {11: {KeyDakuten}},
	2: {11: {k.KeyComma}},
	4: {0: {k.KeyPeriod}, 1: {k.KeyK, k.KeyA}, 2: {k.KeyT, k.KeyA}, 3: {k.KeyK, k.KeyO}, 4: {k.KeyS, k.KeyA}, 7: {k.KeyR, k.KeyA}, 8: {k.KeyT, k.KeyI}, 9: {k.KeyK, k.KeyU}, 10: {k.KeyT, k.KeyU}, 11: {k.KeyComma}},
	5: {0: {k.KeyU}, 1: {k.KeyS, k.KeyI}, 2: {k.KeyT, k.KeyE}, 3: {k.KeyK, k.KeyE}, 4: {k.KeyS, k.KeyE}, 7: {k.KeyH, k.KeyA}, 8: {k.KeyT, k.KeyO}, 9: {k.KeyK, k.KeyI}, 10: {k.KeyI}, 11: {k.KeyX, k.KeyN}},
	6: {0: {k.KeyPeriod}, 1: {k.KeyH, k.KeyI}, 2: {k.KeyS, k.KeyU}, 3: {k.KeyH, k.KeyU}, 4: {k.KeyH, k.KeyE}, 7: {k.KeyM, k.KeyE}, 8: {k.KeyS, k.KeyO}, 9: {k.KeyN, k.KeyE}, 10: {k.KeyH, k.KeyO}, 11: {k.KeyZ, k.KeySlash}},
}

var nicolaLeft = KanaTable{
	0: {11: {KeyDakuten}},
	4: {0: {k.KeyX, k.KeyA}, 1: {k.KeyE}, 2: {k.KeyR, k.KeyI}, 3: {k.KeyX, k.KeyY, k.KeyA}, 4: {k.KeyR, k.KeyE}, 7: {k.KeyP, k.KeyA}, 8: {k.KeyD, k.KeyI}, 9: {k.KeyG, k.KeyU}, 10: {k.KeyD, k.KeyU}, 11: {k.KeyP, k.KeyI}},
	5: {0: {k.KeyW, k.KeyO}, 1: {k.KeyA}, 2: {k.KeyN, k.KeyA}, 3: {k.KeyX, k.KeyY, k.KeyU}, 4: {k.KeyM, k.KeyO}, 7: {k.KeyB, k.KeyA}, 8: {k.KeyD, k.KeyO}, 9: {k.KeyG, k.KeyI}, 10: {k.KeyP, k.KeyO}, 11: {k.KeyX, k.KeyN}},
	6: {0: {k.KeyX, k.KeyU}, 1: {k.KeyMinus}, 2: {k.KeyR, k.KeyO}, 3: {k.KeyY, k.KeyA}, 4: {k.KeyX, k.KeyI}, 7: {k.KeyP, k.KeyU}, 8: {k.KeyZ, k.KeyO}, 9: {k.KeyP, k.KeyE}, 10: {k.KeyB, k.KeyO}, 11: {k.KeyLeftShift, k.KeySlash}},
}

var nicolaRight = KanaTable{
	0: {11: {KeyHandaku}},
	4: {0: {k.KeyPeriod}, 1: {k.KeyG, k.KeyA}, 2: {k.KeyD, k.KeyA}, 3: {k.KeyG, k.KeyO}, 4: {k.KeyZ, k.KeyA}, 7: {k.KeyY, k.KeyO}, 8: {k.KeyN, k.KeyI}, 9: {k.KeyR, k.KeyU}, 10: {k.KeyM, k.KeyA}, 11: {k.KeyX, k.KeyE}},
	5: {0: {k.KeyV, k.KeyU}, 1: {k.KeyZ, k.KeyI}, 2: {k.KeyD, k.KeyE}, 3: {k.KeyG, k.KeyE}, 4: {k.KeyZ, k.KeyE}, 7: {k.KeyM, k.KeyI}, 8: {k.KeyO}, 9: {k.KeyN, k.KeyO}, 10: {k.KeyX, k.KeyY, k.KeyO}, 11: {k.KeyX, k.KeyT, k.KeyU}},
	6: {0: {k.KeyPeriod}, 1: {k.KeyB, k.KeyI}, 2: {k.KeyZ, k.KeyU}, 3: {k.KeyB, k.KeyU}, 4: {k.KeyB, k.KeyE}, 7: {k.KeyN, k.KeyU}, 8: {k.KeyY, k.KeyU}, 9: {k.KeyM, k.KeyU}, 10: {k.KeyW, k.KeyA}, 11: {k.KeyX, k.KeyO}},
}

// NICOLA-F is NICOLA with the number row remapped for the F variant of the
// base layout, plus an alt-shift sub-layer for semi-voiced kana.
var nicolaFKana = KanaTable{
	0: {11: {KeyDakuten}},
	2: {11: {k.KeyComma}},
	4: {0: {k.KeyPeriod}, 1: {k.KeyK, k.KeyA}, 2: {k.KeyT, k.KeyA}, 3: {k.KeyK, k.KeyO}, 4: {k.KeyS, k.KeyA}, 7: {k.KeyR, k.KeyA}, 8: {k.KeyT, k.KeyI}, 9: {k.KeyK, k.KeyU}, 10: {k.KeyT, k.KeyU}, 11: {k.KeyComma}},
	5: {0: {k.KeyU}, 1: {k.KeyS, k.KeyI}, 2: {k.KeyT, k.KeyE}, 3: {k.KeyK, k.KeyE}, 4: {k.KeyS, k.KeyE}, 7: {k.KeyH, k.KeyA}, 8: {k.KeyT, k.KeyO}, 9: {k.KeyK, k.KeyI}, 10: {k.KeyI}, 11: {k.KeyX, k.KeyN}},
	6: {0: {k.KeyPeriod}, 1: {k.KeyH, k.KeyI}, 2: {k.KeyS, k.KeyU}, 3: {k.KeyH, k.KeyU}, 4: {k.KeyH, k.KeyE}, 7: {k.KeyM, k.KeyE}, 8: {k.KeyS, k.KeyO}, 9: {k.KeyN, k.KeyE}, 10: {k.KeyH, k.KeyO}, 11: {k.KeyZ, k.KeySlash}},
}

var nicolaFLeft = KanaTable{
	0: {11: {KeyDakuten}},
	2: {1: {k.KeyLeftShift, k.KeySlash}},
	3: {1: {k.KeySlash}, 2: {k.KeyLeftShift, k.KeyEqual}, 3: {k.KeyRightBrace}, 4: {k.KeyNonUSHash}, 7: {k.KeyRightBrace}, 8: {k.KeyNonUSHash}},
	4: {0: {k.KeyX, k.KeyA}, 1: {k.KeyE}, 2: {k.KeyR, k.KeyI}, 3: {k.KeyX, k.KeyY, k.KeyA}, 4: {k.KeyR, k.KeyE}, 7: {k.KeyP, k.KeyA}, 8: {k.KeyD, k.KeyI}, 9: {k.KeyG, k.KeyU}, 10: {k.KeyD, k.KeyU}, 11: {k.KeyP, k.KeyI}},
	5: {0: {k.KeyW, k.KeyO}, 1: {k.KeyA}, 2: {k.KeyN, k.KeyA}, 3: {k.KeyX, k.KeyY, k.KeyU}, 4: {k.KeyM, k.KeyO}, 7: {k.KeyB, k.KeyA}, 8: {k.KeyD, k.KeyO}, 9: {k.KeyG, k.KeyI}, 10: {k.KeyP, k.KeyO}, 11: {k.KeyX, k.KeyN}},
	6: {0: {k.KeyX, k.KeyU}, 1: {k.KeyMinus}, 2: {k.KeyR, k.KeyO}, 3: {k.KeyY, k.KeyA}, 4: {k.KeyX, k.KeyI}, 7: {k.KeyP, k.KeyU}, 8: {k.KeyZ, k.KeyO}, 9: {k.KeyP, k.KeyE}, 10: {k.KeyB, k.KeyO}, 11: {k.KeyLeftShift, k.KeySlash}},
}

var nicolaFRight = KanaTable{
	0: {11: {KeyHandaku}},
	2: {1: {k.KeyLeftShift, k.KeySlash}},
	3: {1: {k.KeySlash}, 2: {k.KeyLeftShift, k.KeyEqual}, 3: {k.KeyRightBrace}, 4: {k.KeyNonUSHash}, 7: {k.KeyRightBrace}, 8: {k.KeyNonUSHash}},
	4: {0: {k.KeyPeriod}, 1: {k.KeyG, k.KeyA}, 2: {k.KeyD, k.KeyA}, 3: {k.KeyG, k.KeyO}, 4: {k.KeyZ, k.KeyA}, 7: {k.KeyY, k.KeyO}, 8: {k.KeyN, k.KeyI}, 9: {k.KeyR, k.KeyU}, 10: {k.KeyM, k.KeyA}, 11: {k.KeyX, k.KeyE}},
	5: {0: {k.KeyV, k.KeyU}, 1: {k.KeyZ, k.KeyI}, 2: {k.KeyD, k.KeyE}, 3: {k.KeyG, k.KeyE}, 4: {k.KeyZ, k.KeyE}, 7: {k.KeyM, k.KeyI}, 8: {k.KeyO}, 9: {k.KeyN, k.KeyO}, 10: {k.KeyX, k.KeyY, k.KeyO}, 11: {k.KeyX, k.KeyT, k.KeyU}},
	6: {0: {k.KeyPeriod}, 1: {k.KeyB, k.KeyI}, 2: {k.KeyZ, k.KeyU}, 3: {k.KeyB, k.KeyU}, 4: {k.KeyB, k.KeyE}, 7: {k.KeyN, k.KeyU}, 8: {k.KeyY, k.KeyU}, 9: {k.KeyM, k.KeyU}, 10: {k.KeyW, k.KeyA}, 11: {k.KeyX, k.KeyO}},
}

var nicolaFHandaku = KanaTable{
	0: {11: {k.KeyZ, k.KeyNonUSHash}},
	2: {10: {k.KeyLeftShift, k.KeyInternational1}, 11: {k.KeyZ, k.KeyRightBrace}},
	4: {0: {k.KeyPeriod}, 1: {k.KeyK, k.KeyA}, 2: {k.KeyT, k.KeyA}, 3: {k.KeyK, k.KeyO}, 4: {k.KeyS, k.KeyA}, 7: {k.KeyR, k.KeyA}, 8: {k.KeyT, k.KeyI}, 9: {k.KeyK, k.KeyU}, 10: {k.KeyT, k.KeyU}, 11: {k.KeyComma}},
	5: {0: {k.KeyU}, 1: {k.KeyS, k.KeyI}, 2: {k.KeyT, k.KeyE}, 3: {k.KeyK, k.KeyE}, 4: {k.KeyS, k.KeyE}, 7: {k.KeyP, k.KeyA}, 8: {k.KeyT, k.KeyO}, 9: {k.KeyK, k.KeyI}, 10: {k.KeyI}, 11: {k.KeyX, k.KeyN}},
	6: {0: {k.KeyPeriod}, 1: {k.KeyP, k.KeyI}, 2: {k.KeyS, k.KeyU}, 3: {k.KeyP, k.KeyU}, 4: {k.KeyP, k.KeyE}, 7: {k.KeyM, k.KeyE}, 8: {k.KeyS, k.KeyO}, 9: {k.KeyN, k.KeyE}, 10: {k.KeyP, k.KeyO}, 11: {k.KeyZ, k.KeySlash}},
}
