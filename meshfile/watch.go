// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshfile

import (
	"context"
	"log/slog"
	"path/filepath"

	"cogentcore.org/meshbuf/base/errors"
	"github.com/fsnotify/fsnotify"
)

// Watch calls fn with the newly read description each time the given
// file is written or replaced, until ctx is done. Read errors are passed
// to fn rather than ending the watch. The directory of the file is
// watched, since many editors save by renaming a new file into place.
func Watch(ctx context.Context, filename string, fn func(d *Description, err error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	abs, err := filepath.Abs(filename)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return errors.Wrapf(err, "meshfile.Watch %s", filename)
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			switch {
			case event.Op&fsnotify.Write == fsnotify.Write ||
				event.Op&fsnotify.Create == fsnotify.Create:
				slog.Debug("mesh description changed", "file", filename, "op", event.Op)
				fn(Open(filename))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}
