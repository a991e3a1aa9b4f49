package resolver

import (
	"fmt"

	"github.com/Alia5/kanamatrix/device/keyboard"
	"github.com/Alia5/kanamatrix/eeprom"
	"github.com/Alia5/kanamatrix/layout"
)

// SwitchBase advances to the next base layout, persists it and types the
// layout's confirmation macro into report from slot count on. It returns the
// new count. On a store error the mode has still advanced and the macro is
// still typed.
func (e *Engine) SwitchBase(report *keyboard.Report, count int) (int, error) {
	e.base = e.base.Next()
	err := e.persist(eeprom.AddrBase, byte(e.base))
	return appendMessage(report, count, layout.BaseMessage(e.base)), err
}

// SwitchKana advances to the next kana layout, persists it and types the
// layout's confirmation macro. See SwitchBase.
func (e *Engine) SwitchKana(report *keyboard.Report, count int) (int, error) {
	e.kana = e.kana.Next()
	err := e.persist(eeprom.AddrKana, byte(e.kana))
	return appendMessage(report, count, layout.KanaMessage(e.kana)), err
}

// SetBaseMode selects and persists a base layout.
func (e *Engine) SetBaseMode(m layout.BaseMode) error {
	if !m.Valid() {
		return fmt.Errorf("base mode %d: %w", uint8(m), layout.ErrUnknownMode)
	}
	e.base = m
	return e.persist(eeprom.AddrBase, byte(m))
}

// SetKanaMode selects and persists a kana layout.
func (e *Engine) SetKanaMode(m layout.KanaMode) error {
	if !m.Valid() {
		return fmt.Errorf("kana mode %d: %w", uint8(m), layout.ErrUnknownMode)
	}
	e.kana = m
	e.ResetHistory()
	return e.persist(eeprom.AddrKana, byte(m))
}

func (e *Engine) persist(addr eeprom.Addr, v byte) error {
	if err := e.store.Write(addr, v); err != nil {
		return fmt.Errorf("persist %s mode: %w", addr, err)
	}
	return nil
}

func appendMessage(report *keyboard.Report, count int, message []uint8) int {
	for _, key := range message {
		if count >= len(report) {
			break
		}
		report[count] = key
		count++
	}
	return count
}
