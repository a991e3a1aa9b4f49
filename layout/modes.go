package layout

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	k "github.com/Alia5/kanamatrix/device/keyboard"
)

// ErrUnknownMode is returned when a mode name cannot be parsed.
var ErrUnknownMode = errors.New("unknown mode")

// BaseMode selects the Latin layout. The values are persisted.
type BaseMode uint8

const (
	BaseQwerty BaseMode = iota
	BaseDvorak
	BaseColemak
	BaseJIS
	BaseNicolaF

	BaseMax = BaseNicolaF
)

// KanaMode selects the kana layout. The values are persisted, KanaRomaji
// turns composition off.
type KanaMode uint8

const (
	KanaRomaji KanaMode = iota
	KanaNicola
	KanaNicolaF
	KanaMtype
	KanaTron
	KanaStickney

	KanaMax = KanaStickney
)

var baseModeNames = [...]string{"qwerty", "dvorak", "colemak", "jis", "nicola-f"}

var kanaModeNames = [...]string{"romaji", "nicola", "nicola-f", "mtype", "tron", "stickney"}

// Confirmation macros typed after a mode switch, indexed by mode.
var baseMessages = [...][]uint8{
	{k.KeyU, k.KeyS, k.KeyEnter},
	{k.KeyU, k.KeyS, k.KeyMinus, k.KeyD, k.KeyEnter},
	{k.KeyU, k.KeyS, k.KeyMinus, k.KeyC, k.KeyEnter},
	{k.KeyJ, k.KeyP, k.KeyEnter},
	{k.KeyJ, k.KeyP, k.KeyMinus, k.KeyN, k.KeyEnter},
}

var kanaMessages = [...][]uint8{
	{k.KeyR, k.KeyO, k.KeyM, k.KeyA, k.KeyEnter},
	{k.KeyN, k.KeyI, k.KeyC, k.KeyO, k.KeyEnter},
	{k.KeyN, k.KeyI, k.KeyC, k.KeyO, k.KeyF, k.KeyEnter},
	{k.KeyM, k.KeyT, k.KeyY, k.KeyP, k.KeyE, k.KeyEnter},
	{k.KeyT, k.KeyR, k.KeyO, k.KeyN, k.KeyEnter},
	{k.KeyS, k.KeyT, k.KeyI, k.KeyC, k.KeyK, k.KeyEnter},
}

func (m BaseMode) String() string {
	if m > BaseMax {
		return "base(" + strconv.Itoa(int(m)) + ")"
	}
	return baseModeNames[m]
}

// Next returns the following mode, wrapping past BaseMax to BaseQwerty.
func (m BaseMode) Next() BaseMode {
	if m >= BaseMax {
		return BaseQwerty
	}
	return m + 1
}

// Valid reports whether m names a known layout.
func (m BaseMode) Valid() bool { return m <= BaseMax }

// IsJP reports whether the layout is a Japanese keyboard layout.
func (m BaseMode) IsJP() bool {
	return m == BaseJIS || m == BaseNicolaF
}

func (m KanaMode) String() string {
	if m > KanaMax {
		return "kana(" + strconv.Itoa(int(m)) + ")"
	}
	return kanaModeNames[m]
}

// Next returns the following mode, wrapping past KanaMax to KanaRomaji.
func (m KanaMode) Next() KanaMode {
	if m >= KanaMax {
		return KanaRomaji
	}
	return m + 1
}

// Valid reports whether m names a known layout.
func (m KanaMode) Valid() bool { return m <= KanaMax }

// BaseMessage returns the confirmation macro for a base mode, nil when out
// of range.
func BaseMessage(m BaseMode) []uint8 {
	if !m.Valid() {
		return nil
	}
	return baseMessages[m]
}

// KanaMessage returns the confirmation macro for a kana mode, nil when out
// of range.
func KanaMessage(m KanaMode) []uint8 {
	if !m.Valid() {
		return nil
	}
	return kanaMessages[m]
}

// ParseBaseMode accepts a mode name ("dvorak") or its persisted number.
func ParseBaseMode(s string) (BaseMode, error) {
	i, err := parseMode(s, baseModeNames[:])
	if err != nil {
		return 0, fmt.Errorf("base mode %q: %w", s, err)
	}
	return BaseMode(i), nil
}

// ParseKanaMode accepts a mode name ("tron") or its persisted number.
func ParseKanaMode(s string) (KanaMode, error) {
	i, err := parseMode(s, kanaModeNames[:])
	if err != nil {
		return 0, fmt.Errorf("kana mode %q: %w", s, err)
	}
	return KanaMode(i), nil
}

// BaseModeNames lists the base mode names in persisted order.
func BaseModeNames() []string { return append([]string(nil), baseModeNames[:]...) }

// KanaModeNames lists the kana mode names in persisted order.
func KanaModeNames() []string { return append([]string(nil), kanaModeNames[:]...) }

func parseMode(s string, names []string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if s == n || s == strings.ReplaceAll(n, "-", "") {
			return i, nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n < len(names) {
		return n, nil
	}
	return 0, ErrUnknownMode
}
