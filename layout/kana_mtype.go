package layout

import k "github.com/Alia5/kanamatrix/device/keyboard"

// M-type sends romaji fragments: consonants on the right hand, vowels and
// vowel+n/tu/ku endings on the left.

var mtype = KanaTable{
	4: {0: {k.KeyQ}, 1: {k.KeyL}, 2: {k.KeyJ}, 3: {k.KeyF}, 4: {k.KeyC}, 7: {k.KeyM}, 8: {k.KeyY}, 9: {k.KeyR}, 10: {k.KeyW}, 11: {k.KeyP}},
	5: {0: {k.KeyE}, 1: {k.KeyU}, 2: {k.KeyI}, 3: {k.KeyA}, 4: {k.KeyO}, 7: {k.KeyK}, 8: {k.KeyS}, 9: {k.KeyT}, 10: {k.KeyN}, 11: {k.KeyH}},
	6: {0: {k.KeyE, k.KeyI}, 1: {k.KeyX}, 2: {k.KeyV}, 3: {k.KeyA, k.KeyI}, 4: {k.KeyO, k.KeyU}, 7: {k.KeyG}, 8: {k.KeyZ}, 9: {k.KeyD}, 10: {k.KeyComma}, 11: {k.KeyB}},
}

var mtypeLeft = KanaTable{
	4: {0: {k.KeyQ}, 1: {k.KeyL}, 2: {k.KeyJ}, 3: {k.KeyF}, 4: {k.KeyC}, 7: {k.KeyM, k.KeyY}, 8: {k.KeyL, k.KeyT, k.KeyU}, 9: {k.KeyR, k.KeyY}, 10: {k.KeyX, k.KeyN}, 11: {k.KeyP, k.KeyY}},
	5: {0: {k.KeyE}, 1: {k.KeyU}, 2: {k.KeyI}, 3: {k.KeyA}, 4: {k.KeyO}, 7: {k.KeyK, k.KeyY}, 8: {k.KeyS, k.KeyY}, 9: {k.KeyT, k.KeyY}, 10: {k.KeyN, k.KeyY}, 11: {k.KeyH, k.KeyY}},
	6: {0: {k.KeyE, k.KeyI}, 1: {k.KeyX}, 2: {k.KeyV}, 3: {k.KeyA, k.KeyI}, 4: {k.KeyO, k.KeyU}, 7: {k.KeyG, k.KeyY}, 8: {k.KeyZ, k.KeyY}, 9: {k.KeyD, k.KeyY}, 10: {k.KeyPeriod}, 11: {k.KeyB, k.KeyY}},
}

var mtypeRight = KanaTable{
	4: {0: {k.KeyE, k.KeyK, k.KeyI}, 1: {k.KeyU, k.KeyK, k.KeyU}, 2: {k.KeyI, k.KeyK, k.KeyU}, 3: {k.KeyA, k.KeyK, k.KeyU}, 4: {k.KeyO, k.KeyK, k.KeyU}, 7: {k.KeyM}, 8: {k.KeyY}, 9: {k.KeyR}, 10: {k.KeyW}, 11: {k.KeyP}},
	5: {0: {k.KeyE, k.KeyX, k.KeyN}, 1: {k.KeyU, k.KeyX, k.KeyN}, 2: {k.KeyI, k.KeyX, k.KeyN}, 3: {k.KeyA, k.KeyX, k.KeyN}, 4: {k.KeyO, k.KeyX, k.KeyN}, 7: {k.KeyK}, 8: {k.KeyS}, 9: {k.KeyT}, 10: {k.KeyN}, 11: {k.KeyRightShift, k.KeySlash}},
	6: {0: {k.KeyE, k.KeyT, k.KeyU}, 1: {k.KeyU, k.KeyT, k.KeyU}, 2: {k.KeyI, k.KeyT, k.KeyU}, 3: {k.KeyA, k.KeyT, k.KeyU}, 4: {k.KeyO, k.KeyT, k.KeyU}, 7: {k.KeyG}, 8: {k.KeyZ}, 9: {k.KeyRightShift, k.KeyComma}, 10: {k.KeyRightShift, k.KeyPeriod}, 11: {k.KeyZ, k.KeySlash}},
}
