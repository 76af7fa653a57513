package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/delaneyj/figspec/figma"
	"github.com/delaneyj/figspec/tui"
	"github.com/fsnotify/fsnotify"
)

// watch sends a tui.ReloadMsg whenever the export at path changes its
// content. Writes are debounced; rewrites of identical content are dropped by
// fingerprint.
func watch(ctx context.Context, path string, fingerprint uint64, send func(tea.Msg)) (stop func() error, err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	// editors replace files on save, which drops a watch on the file itself
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}

	go func() {
		debounce := time.NewTimer(0)
		<-debounce.C // drain initial timer

		target := filepath.Clean(path)
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				debounce.Reset(100 * time.Millisecond)

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				send(tui.ErrMsg{Err: fmt.Errorf("watcher: %w", err)})

			case <-debounce.C:
				src, err := figma.LoadFile(path)
				if err != nil {
					send(tui.ErrMsg{Err: err})
					continue
				}
				if src.Fingerprint == fingerprint {
					continue
				}
				fingerprint = src.Fingerprint
				send(tui.ReloadMsg{Source: src})
			}
		}
	}()

	return watcher.Close, nil
}
