// SPDX-License-Identifier: Unlicense OR MIT

package forest

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"gioui.org/treeview/tree"
)

// Watch calls fn with the forest at path every time the file is
// written or re-created, until ctx is done. Load errors are passed to
// fn and do not stop watching. Watch does not call fn for the current
// content of the file.
func Watch(ctx context.Context, path string, fn func([]tree.Node, error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("forest: %w", err)
	}
	defer w.Close()
	// The directory is watched to see files replaced by rename.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("forest: %w", err)
	}
	name := filepath.Clean(path)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case e, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(e.Name) != name || !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
				continue
			}
			fn(Load(path))
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fn(nil, fmt.Errorf("forest: %w", err))
		}
	}
}
