// Package eeprom provides the non-volatile single-byte slots the resolver
// persists its layout selection in.
package eeprom

import (
	"errors"
	"fmt"
	"sync"
)

// Size is the number of addressable bytes.
const Size = 16

// Addr is a byte address in the store.
type Addr uint8

const (
	AddrBase Addr = 0x00
	AddrKana Addr = 0x01
)

// ErrAddress is returned for an address outside the store.
var ErrAddress = errors.New("eeprom: address out of range")

func (a Addr) String() string {
	switch a {
	case AddrBase:
		return "base"
	case AddrKana:
		return "kana"
	default:
		return fmt.Sprintf("0x%02x", uint8(a))
	}
}

// Store reads and writes single bytes. Writes are synchronous: once Write
// returns nil the value survives a restart.
type Store interface {
	Read(addr Addr) (byte, error)
	Write(addr Addr, value byte) error
}

// Write records one write made to a Memory store.
type Write struct {
	Addr  Addr
	Value byte
}

// Memory is an in-process Store that keeps a log of every write.
type Memory struct {
	mu     sync.Mutex
	data   [Size]byte
	writes []Write
}

// NewMemory returns an empty store, optionally seeded with initial values.
// Seeding is not recorded as a write.
func NewMemory(seed map[Addr]byte) *Memory {
	m := &Memory{}
	for a, v := range seed {
		if int(a) < Size {
			m.data[a] = v
		}
	}
	return m
}

func (m *Memory) Read(addr Addr) (byte, error) {
	if int(addr) >= Size {
		return 0, ErrAddress
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[addr], nil
}

func (m *Memory) Write(addr Addr, value byte) error {
	if int(addr) >= Size {
		return ErrAddress
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[addr] = value
	m.writes = append(m.writes, Write{Addr: addr, Value: value})
	return nil
}

// Writes returns the writes made so far, oldest first.
func (m *Memory) Writes() []Write {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Write(nil), m.writes...)
}
