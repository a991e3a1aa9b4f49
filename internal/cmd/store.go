package cmd

import (
	"fmt"

	"github.com/Alia5/kanamatrix/eeprom"
	"github.com/Alia5/kanamatrix/internal/configpaths"
)

// StoreFlags locate the EEPROM image.
type StoreFlags struct {
	EEPROM string `name:"eeprom" help:"EEPROM image holding the persisted layouts (defaults to the config directory)" type:"path" env:"KANAMATRIX_EEPROM"`
}

// Path returns the image path, falling back to the default location.
func (s StoreFlags) Path() (string, error) {
	if s.EEPROM != "" {
		return s.EEPROM, nil
	}
	p, err := configpaths.DefaultEEPROMPath()
	if err != nil {
		return "", fmt.Errorf("failed to resolve eeprom path: %w", err)
	}
	return p, nil
}

// Open opens the image.
func (s StoreFlags) Open() (*eeprom.File, error) {
	p, err := s.Path()
	if err != nil {
		return nil, err
	}
	return eeprom.Open(p)
}
