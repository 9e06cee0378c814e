package storage

import (
	"strings"

	"golang.org/x/sys/unix"
)

// list enumerates mounted filesystems through getfsstat(2).
func list() []Storage {
	n, err := unix.Getfsstat(nil, unix.MNT_NOWAIT)
	if err != nil || n <= 0 {
		return nil
	}

	buf := make([]unix.Statfs_t, n)
	n, err = unix.Getfsstat(buf, unix.MNT_NOWAIT)
	if err != nil {
		return nil
	}

	var disks []Storage
	for _, st := range buf[:n] {
		device := cString(st.Mntfromname[:])
		if !strings.HasPrefix(device, "/dev/") {
			continue
		}
		disks = append(disks, Storage{
			MountPoint: cString(st.Mntonname[:]),
			Device:     device,
			Total:      st.Blocks * uint64(st.Bsize),
			Free:       st.Bavail * uint64(st.Bsize),
		})
	}
	return disks
}

func cString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
