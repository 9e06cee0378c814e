package storage

import (
	"bufio"
	"os"
	"strings"
)

// list parses /proc/mounts and keeps real block-device mounts only;
// proc, sysfs, overlay layers and the rest of the pseudo filesystems
// are not scannable storage.
func list() []Storage {
	f, err := os.Open("/proc/mounts")
	if err != nil {
		return nil
	}
	defer f.Close()

	var disks []Storage
	seen := make(map[string]bool)

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 {
			continue
		}
		device, mount := fields[0], fields[1]
		if !strings.HasPrefix(device, "/dev/") || seen[mount] {
			continue
		}

		total, free, err := Usage(mount)
		if err != nil || total == 0 {
			continue
		}

		seen[mount] = true
		disks = append(disks, Storage{
			MountPoint: mount,
			Device:     device,
			Total:      total,
			Free:       free,
		})
	}

	return disks
}
