package layout

import k "github.com/Alia5/kanamatrix/device/keyboard"

// Stickney Next only overrides punctuation; the shift layer is shared by
// both shift keys.

var stickney = KanaTable{
	0: {0: {k.KeyLeftShift, k.KeyRightBrace}},
	2: {0: {k.KeyLeftShift, k.KeyNonUSHash}, 1: {k.KeyMinus}, 11: {k.KeyLeftShift, k.KeyPeriod}},
	3: {11: {k.KeyLeftShift, k.KeyComma}},
	4: {11: {k.KeyLeftBrace}},
	6: {2: {k.KeyLeftShift, k.Key0}, 11: {k.KeyInternational3}},
}

var stickneyShift = KanaTable{
	0: {0: {k.KeyLeftShift, k.KeyRightBrace}},
	2: {0: {k.KeyLeftShift, k.KeyNonUSHash}, 11: {k.KeyLeftShift, k.KeyPeriod}},
	3: {11: {k.KeyLeftShift, k.KeySlash}},
	4: {3: {k.KeyC}, 11: {k.KeyRightBrace}},
	5: {2: {k.KeyP}, 3: {k.KeyEqual}, 4: {k.KeyApostrophe}, 8: {k.KeySlash}, 9: {k.Key1}, 10: {k.KeyInternational1}},
	6: {8: {k.KeyNonUSHash}},
}
