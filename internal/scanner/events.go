package scanner

import (
	"time"

	"github.com/kpouer/Disk-Mosaic/internal/tree"
)

// Event is a message from the scanning worker to its consumer. Exactly
// one terminal event (Done, Failed or Cancelled) ends every scan, after
// which the event channel is closed.
type Event interface {
	isEvent()
}

// Progress is emitted periodically while the walk is running. Sends are
// best-effort: a slow consumer drops updates instead of stalling I/O.
type Progress struct {
	// Path is the entry most recently visited.
	Path string
	// Entries is the number of entries visited so far.
	Entries int64
	// Bytes is the on-disk byte total accumulated so far.
	Bytes int64
}

func (Progress) isEvent() {}

// Done carries the completed tree. Errors counts entries that were
// skipped because of per-entry I/O failures; they contribute nothing to
// any total.
type Done struct {
	Root    *tree.Node
	Errors  int64
	Elapsed time.Duration
}

func (Done) isEvent() {}

// Failed reports a fatal error: the root itself could not be read. No
// tree is produced.
type Failed struct {
	Path string
	Err  error
}

func (Failed) isEvent() {}

// Cancelled reports that the scan stopped on request. Partial work is
// discarded; this is a normal outcome, not an error.
type Cancelled struct{}

func (Cancelled) isEvent() {}
