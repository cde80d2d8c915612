// Package watcher reports debounced changes to individual files.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/phanxgames/geoboard"
)

// FileWatcher calls a callback when a watched file is written, created or
// replaced. Bursts of events within the debounce window collapse into one
// call.
//
// Parent directories are watched rather than the files themselves, so
// editors that save by renaming a temp file over the original still
// trigger the callback.
type FileWatcher struct {
	watcher   *fsnotify.Watcher
	mu        sync.Mutex
	callbacks map[string]func(string)
	dirs      map[string]int
	debounce  time.Duration
	timers    map[string]*time.Timer
}

// New creates a file watcher with the given debounce interval.
func New(debounce time.Duration) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watcher: create: %w", err)
	}
	return &FileWatcher{
		watcher:   w,
		callbacks: make(map[string]func(string)),
		dirs:      make(map[string]int),
		debounce:  debounce,
		timers:    make(map[string]*time.Timer),
	}, nil
}

// Watch registers callback for each of files. The callback receives the
// absolute path of the file that changed.
func (fw *FileWatcher) Watch(files []string, callback func(string)) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("watcher: resolve %s: %w", file, err)
		}
		if _, ok := fw.callbacks[abs]; !ok {
			dir := filepath.Dir(abs)
			if fw.dirs[dir] == 0 {
				if err := fw.watcher.Add(dir); err != nil {
					return fmt.Errorf("watcher: watch %s: %w", dir, err)
				}
			}
			fw.dirs[dir]++
		}
		fw.callbacks[abs] = callback
		geoboard.Logger().Debug("watching", "file", abs)
	}
	return nil
}

// Start processes events in a background goroutine until Close.
func (fw *FileWatcher) Start() {
	go func() {
		for {
			select {
			case ev, ok := <-fw.watcher.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					fw.changed(filepath.Clean(ev.Name))
				}
			case err, ok := <-fw.watcher.Errors:
				if !ok {
					return
				}
				geoboard.Logger().Warn("watcher error", "err", err)
			}
		}
	}()
}

func (fw *FileWatcher) changed(path string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	callback, ok := fw.callbacks[path]
	if !ok {
		return
	}
	if t, ok := fw.timers[path]; ok {
		t.Stop()
	}
	fw.timers[path] = time.AfterFunc(fw.debounce, func() {
		callback(path)
	})
}

// Remove stops watching files.
func (fw *FileWatcher) Remove(files ...string) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("watcher: resolve %s: %w", file, err)
		}
		if _, ok := fw.callbacks[abs]; !ok {
			continue
		}
		delete(fw.callbacks, abs)
		if t, ok := fw.timers[abs]; ok {
			t.Stop()
			delete(fw.timers, abs)
		}
		dir := filepath.Dir(abs)
		if fw.dirs[dir]--; fw.dirs[dir] <= 0 {
			delete(fw.dirs, dir)
			if err := fw.watcher.Remove(dir); err != nil {
				return fmt.Errorf("watcher: unwatch %s: %w", dir, err)
			}
		}
	}
	return nil
}

// Close stops the watcher and any pending callbacks.
func (fw *FileWatcher) Close() error {
	fw.mu.Lock()
	for _, t := range fw.timers {
		t.Stop()
	}
	fw.mu.Unlock()
	return fw.watcher.Close()
}
