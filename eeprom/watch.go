package eeprom

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay coalesces the burst of events a single image replace causes.
const debounceDelay = 50 * time.Millisecond

// Watch signals on the returned channel whenever the image at path is
// written or replaced by any process. Signals are coalesced: a pending
// signal is not duplicated. Watcher errors are delivered on the error
// channel without blocking. Both channels close when ctx is done.
func Watch(ctx context.Context, path string) (<-chan struct{}, <-chan error, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("eeprom: create watcher: %w", err)
	}
	// Watch the directory; the image is replaced by rename.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return nil, nil, fmt.Errorf("eeprom: watch %s: %w", filepath.Dir(path), err)
	}

	changed := make(chan struct{}, 1)
	errs := make(chan error, 1)
	fire := make(chan struct{}, 1)
	name := filepath.Base(path)

	go func() {
		defer close(errs)
		defer close(changed)
		defer watcher.Close()

		var debounce *time.Timer
		defer func() {
			if debounce != nil {
				debounce.Stop()
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != name {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(debounceDelay, func() {
					select {
					case fire <- struct{}{}:
					default:
					}
				})

			case <-fire:
				select {
				case changed <- struct{}{}:
				default:
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				select {
				case errs <- err:
				default:
				}
			}
		}
	}()

	return changed, errs, nil
}
