//go:build darwin || linux

package storage

import (
	"os"

	"golang.org/x/sys/unix"
)

// Usage returns the total and free bytes of the filesystem containing
// path. The scanning view divides scanned bytes by the used total to
// show a progress percentage.
func Usage(path string) (total, free uint64, err error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return 0, 0, err
	}
	// Block size comes from the kernel.
	return st.Blocks * uint64(st.Bsize), st.Bavail * uint64(st.Bsize), nil
}

func fallback() Storage {
	root := string(os.PathSeparator)
	total, free, _ := Usage(root)
	return Storage{MountPoint: root, Device: "unknown", Total: total, Free: free}
}
