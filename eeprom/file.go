package eeprom

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// File is a Store backed by a fixed-size binary image on disk. A missing
// image reads as all zeros.
type File struct {
	mu   sync.Mutex
	path string
}

// Open returns a store for the image at path, creating its directory.
func Open(path string) (*File, error) {
	if path == "" {
		return nil, errors.New("eeprom: empty image path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("eeprom: create image dir: %w", err)
	}
	return &File{path: path}, nil
}

// Path returns the image location.
func (f *File) Path() string { return f.path }

func (f *File) Read(addr Addr) (byte, error) {
	if int(addr) >= Size {
		return 0, ErrAddress
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	img, err := f.load()
	if err != nil {
		return 0, err
	}
	return img[addr], nil
}

// Write updates one byte and replaces the image atomically.
func (f *File) Write(addr Addr, value byte) error {
	if int(addr) >= Size {
		return ErrAddress
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	img, err := f.load()
	if err != nil {
		return err
	}
	img[addr] = value

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".eeprom-*")
	if err != nil {
		return fmt.Errorf("eeprom: write %s: %w", f.path, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(img[:]); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("eeprom: write %s: %w", f.path, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("eeprom: sync %s: %w", f.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("eeprom: write %s: %w", f.path, err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("eeprom: replace %s: %w", f.path, err)
	}
	return nil
}

func (f *File) load() ([Size]byte, error) {
	var img [Size]byte
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return img, nil
	}
	if err != nil {
		return img, fmt.Errorf("eeprom: read %s: %w", f.path, err)
	}
	copy(img[:], data)
	return img, nil
}
