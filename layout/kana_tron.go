package layout

import k "github.com/Alia5/kanamatrix/device/keyboard"

// TRON kana layout.

var tron = KanaTable{
	2: {11: {k.KeySlash}},
	4: {0: {k.KeyR, k.KeyA}, 1: {k.KeyR, k.KeyU}, 2: {k.KeyK, k.KeyO}, 3: {k.KeyH, k.KeyA}, 4: {k.KeyX, k.KeyY, k.KeyO}, 7: {k.KeyK, k.KeyI}, 8: {k.KeyN, k.KeyO}, 9: {k.KeyK, k.KeyU}, 10: {k.KeyA}, 11: {k.KeyR, k.KeyE}},
	5: {0: {k.KeyT, k.KeyA}, 1: {k.KeyT, k.KeyO}, 2: {k.KeyK, k.KeyA}, 3: {k.KeyT, k.KeyE}, 4: {k.KeyM, k.KeyO}, 7: {k.KeyW, k.KeyO}, 8: {k.KeyI}, 9: {k.KeyU}, 10: {k.KeyS, k.KeyI}, 11: {k.KeyX, k.KeyN}},
	6: {0: {k.KeyM, k.KeyA}, 1: {k.KeyR, k.KeyI}, 2: {k.KeyN, k.KeyI}, 3: {k.KeyS, k.KeyA}, 4: {k.KeyN, k.KeyA}, 7: {k.KeyS, k.KeyU}, 8: {k.KeyT, k.KeyU}, 9: {k.KeyComma}, 10: {k.KeyPeriod}, 11: {k.KeyX, k.KeyT, k.KeyU}},
}

var tronLeft = KanaTable{
	2: {11: {k.KeyLeftShift, k.KeySlash}},
	4: {0: {k.KeyH, k.KeyI}, 1: {k.KeyS, k.KeyO}, 2: {k.KeyZ, k.KeySlash}, 3: {k.KeyX, k.KeyY, k.KeyA}, 4: {k.KeyH, k.KeyO}, 7: {k.KeyG, k.KeyI}, 8: {k.KeyG, k.KeyE}, 9: {k.KeyG, k.KeyU}, 10: {k.KeyA}, 11: {k.KeyW, k.KeyY, k.KeyI}},
	5: {0: {k.KeyN, k.KeyU}, 1: {k.KeyN, k.KeyE}, 2: {k.KeyX, k.KeyY, k.KeyU}, 3: {k.KeyY, k.KeyO}, 4: {k.KeyH, k.KeyU}, 7: {KeyDakuten}, 8: {k.KeyD, k.KeyI}, 9: {k.KeyV, k.KeyU}, 10: {k.KeyZ, k.KeyI}, 11: {k.KeyW, k.KeyY, k.KeyE}},
	6: {0: {k.KeyX, k.KeyE}, 1: {k.KeyX, k.KeyO}, 2: {k.KeyS, k.KeyE}, 3: {k.KeyY, k.KeyU}, 4: {k.KeyH, k.KeyE}, 7: {k.KeyZ, k.KeyU}, 8: {k.KeyD, k.KeyU}, 9: {k.KeyLeftShift, k.KeyComma}, 10: {k.KeyLeftShift, k.KeyPeriod}, 11: {k.KeyX, k.KeyW, k.KeyA}},
}

var tronRight = KanaTable{
	4: {0: {k.KeyB, k.KeyI}, 1: {k.KeyZ, k.KeyO}, 2: {k.KeyG, k.KeyO}, 3: {k.KeyB, k.KeyA}, 4: {k.KeyB, k.KeyO}, 7: {k.KeyE}, 8: {k.KeyK, k.KeyE}, 9: {k.KeyM, k.KeyE}, 10: {k.KeyM, k.KeyU}, 11: {k.KeyR, k.KeyO}},
	5: {0: {k.KeyD, k.KeyA}, 1: {k.KeyD, k.KeyO}, 2: {k.KeyG, k.KeyA}, 3: {k.KeyD, k.KeyE}, 4: {k.KeyB, k.KeyU}, 7: {k.KeyO}, 8: {k.KeyT, k.KeyI}, 9: {k.KeyMinus}, 10: {k.KeyM, k.KeyI}, 11: {k.KeyY, k.KeyA}},
	6: {0: {k.KeyX, k.KeyK, k.KeyA}, 1: {k.KeyX, k.KeyK, k.KeyE}, 2: {k.KeyZ, k.KeyE}, 3: {k.KeyZ, k.KeyA}, 4: {k.KeyB, k.KeyE}, 7: {k.KeyW, k.KeyA}, 8: {k.KeyX, k.KeyI}, 9: {k.KeyX, k.KeyA}, 10: {KeyHandaku}, 11: {k.KeyX, k.KeyU}},
}
