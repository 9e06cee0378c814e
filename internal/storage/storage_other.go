//go:build !darwin && !linux

package storage

import "os"

// list is a stub on platforms without mount enumeration; List falls
// back to a single entry.
func list() []Storage {
	return nil
}

// Usage is unavailable here; the scanning view simply shows totals
// without a percentage.
func Usage(path string) (total, free uint64, err error) {
	return 0, 0, nil
}

func fallback() Storage {
	home, err := os.UserHomeDir()
	if err != nil {
		home = string(os.PathSeparator)
	}
	return Storage{MountPoint: home, Device: "unknown"}
}
