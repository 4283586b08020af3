// size.go - subtree byte accounting
//
// (c) 2025 Sudhi Herle <sudhi@herle.net>
//
// Licensing Terms: GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package backup

import (
	"os"
)

// DirectorySize returns the total bytes of the subtree rooted at
// 'nm'. Symlinks are followed to their content, so a deduplicated
// backup is measured at its logical size - the number relinking must
// restore into a surviving neighbor. Unreadable branches and dangling
// links contribute nothing.
func DirectorySize(nm string) uint64 {
	fd, err := os.Open(nm)
	if err != nil {
		return 0
	}

	names, err := fd.Readdirnames(-1)
	fd.Close()
	if err != nil {
		return 0
	}

	var total uint64
	for _, ent := range names {
		en := join(nm, ent)

		fi, err := os.Stat(en)
		if err != nil {
			continue
		}

		if fi.IsDir() {
			total += DirectorySize(en)
			continue
		}

		if fi.Mode().IsRegular() {
			total += uint64(fi.Size())
		}
	}
	return total
}
