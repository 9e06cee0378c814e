// Package storage enumerates mounted filesystems for the start screen
// and reports capacity figures used to estimate scan progress.
package storage

import "sort"

// Storage describes one mounted filesystem.
type Storage struct {
	MountPoint string
	Device     string
	Total      uint64
	Free       uint64
}

// Used returns the number of allocated bytes on the filesystem.
func (s Storage) Used() uint64 {
	if s.Free > s.Total {
		return 0
	}
	return s.Total - s.Free
}

// List returns the mounted filesystems, sorted by mount point. It
// never returns an empty slice: when enumeration fails the caller
// still gets a root entry to scan.
func List() []Storage {
	disks := list()
	if len(disks) == 0 {
		disks = append(disks, fallback())
	}

	sort.Slice(disks, func(i, j int) bool {
		return disks[i].MountPoint < disks[j].MountPoint
	})
	return disks
}
