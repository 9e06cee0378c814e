// Package scanner walks a filesystem subtree on a background goroutine
// and builds the size-annotated node tree bottom-up, streaming progress
// events to the consumer over a channel.
package scanner

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/kpouer/Disk-Mosaic/internal/tree"
)

// Filter decides which absolute paths are excluded from the scan.
// Callers pass an immutable snapshot captured at scan start; the
// scanner never observes later mutations.
type Filter interface {
	IsPathIgnored(absolutePath string) bool
}

// progressInterval throttles Progress events.
const progressInterval = 100 * time.Millisecond

// Scan walks root on a new goroutine and returns the event channel.
// The channel delivers throttled Progress events, then exactly one of
// Done, Failed or Cancelled, and is closed. Cancel ctx to stop the
// worker at its next traversal step; in-flight syscalls are never
// interrupted.
func Scan(ctx context.Context, root string, filter Filter) <-chan Event {
	events := make(chan Event, 64)

	go func() {
		defer close(events)
		w := &walker{events: events, filter: filter, sizeOf: diskSize}
		w.run(ctx, root)
	}()

	return events
}

type walker struct {
	events chan<- Event
	filter Filter
	sizeOf func(info fs.FileInfo) int64

	entries  int64
	bytes    int64
	errors   int64
	lastEmit time.Time
}

func (w *walker) run(ctx context.Context, root string) {
	start := time.Now()

	absRoot, err := filepath.Abs(root)
	if err != nil {
		w.deliver(ctx, Failed{Path: root, Err: err})
		return
	}

	// The root being unreadable is fatal; deeper failures are not.
	rootEntries, err := os.ReadDir(absRoot)
	if err != nil {
		w.deliver(ctx, Failed{Path: absRoot, Err: err})
		return
	}

	node := tree.NewDir(filepath.Base(absRoot))
	if err := w.scanChildren(ctx, node, absRoot, rootEntries); err != nil {
		w.deliver(ctx, Cancelled{})
		return
	}

	w.deliver(ctx, Done{Root: node, Errors: w.errors, Elapsed: time.Since(start)})
}

// scanChildren fills dir from entries, depth-first. The only error it
// returns is ctx's, checked once per entry; everything else is counted
// and skipped.
func (w *walker) scanChildren(ctx context.Context, dir *tree.Node, path string, entries []os.DirEntry) error {
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		childPath := filepath.Join(path, entry.Name())
		if w.filter != nil && w.filter.IsPathIgnored(childPath) {
			continue
		}

		if entry.IsDir() {
			sub, err := w.scanDir(ctx, childPath, entry.Name())
			if err != nil {
				return err
			}
			dir.Add(sub)
		} else {
			// DirEntry info is Lstat-based, so symlinks are leaves
			// counted with their own size, never followed.
			info, err := entry.Info()
			if err != nil {
				w.errors++
				continue
			}
			size := w.sizeOf(info)
			dir.Add(tree.NewFile(entry.Name(), size))
			w.bytes += size
		}

		w.entries++
		w.maybeProgress(childPath)
	}

	// Settle the subtree: descending size order, fixed for layout.
	dir.SortChildren()
	return nil
}

func (w *walker) scanDir(ctx context.Context, path, name string) (*tree.Node, error) {
	dir := tree.NewDir(name)

	entries, err := os.ReadDir(path)
	if err != nil {
		// Permission denied, vanished directory: counted, the subtree
		// stays an empty Dir with size 0.
		w.errors++
		return dir, nil
	}

	if err := w.scanChildren(ctx, dir, path, entries); err != nil {
		return nil, err
	}
	return dir, nil
}

// maybeProgress emits a throttled, non-blocking Progress event.
func (w *walker) maybeProgress(path string) {
	if time.Since(w.lastEmit) < progressInterval {
		return
	}
	w.lastEmit = time.Now()

	select {
	case w.events <- Progress{Path: path, Entries: w.entries, Bytes: w.bytes}:
	default:
	}
}

// deliver sends a terminal event. The buffered channel makes the first
// attempt succeed in practice; the fallback gives up when ctx dies so
// an abandoned consumer cannot wedge the worker.
func (w *walker) deliver(ctx context.Context, ev Event) {
	select {
	case w.events <- ev:
		return
	default:
	}

	select {
	case w.events <- ev:
	case <-ctx.Done():
	}
}
