package utils

import (
	"github.com/dustin/go-humanize"
)

// FormatFileSize renders a byte count for display (decimal units, the
// way every size in the UI is shown).
func FormatFileSize(size int64) string {
	if size < 0 {
		size = 0
	}
	return humanize.Bytes(uint64(size))
}

// TruncatePath shortens a path for display, keeping the tail: the
// deepest components are the ones the user is looking for.
func TruncatePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	if maxLen <= 3 {
		return "..."
	}
	return "..." + path[len(path)-maxLen+3:]
}
