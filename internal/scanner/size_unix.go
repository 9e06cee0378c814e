//go:build unix

package scanner

import (
	"io/fs"
	"syscall"
)

// diskSize returns the physical on-disk allocation of an entry.
// st_blocks counts 512-byte units on every Unix. A regular file whose
// allocation is smaller than its logical length is sparse (or a cloud
// placeholder) and contributes 0; when stat data is unavailable the
// logical length is the fallback.
func diskSize(info fs.FileInfo) int64 {
	if !info.Mode().IsRegular() {
		return info.Size()
	}

	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return info.Size()
	}

	physical := stat.Blocks * 512
	if physical < info.Size() {
		return 0
	}
	return physical
}
