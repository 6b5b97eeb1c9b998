package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the file at path whenever it changes and hands the new
// configuration to onChange. Invalid edits are reported through onError and
// otherwise ignored. Watch blocks until ctx is cancelled.
//
// The parent directory is watched rather than the file itself, because many
// editors save by writing a temporary file and renaming it into place.
func Watch(ctx context.Context, path string, onChange func(Config), onError func(error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: cannot create watcher: %w", err)
	}
	defer watcher.Close()

	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("config: cannot resolve %s: %w", path, err)
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("config: cannot watch %s: %w", path, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfg, loadErr := LoadFile(target)
			if loadErr != nil {
				if onError != nil {
					onError(loadErr)
				}
				continue
			}
			onChange(cfg)

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if onError != nil {
				onError(watchErr)
			}
		}
	}
}
