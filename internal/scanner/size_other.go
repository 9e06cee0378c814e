//go:build !unix

package scanner

import "io/fs"

// diskSize falls back to the logical length where block allocation is
// not exposed through os.FileInfo. Detecting sparse files here would
// need platform-specific APIs we deliberately avoid.
func diskSize(info fs.FileInfo) int64 {
	return info.Size()
}
