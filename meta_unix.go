// meta_unix.go -- carry file metadata over to a copied file
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

//go:build unix

package pgbackup

import (
	"fmt"
	"io/fs"
	"os"
	"syscall"
)

func chown(dest string, _ string, fi fs.FileInfo) error {
	if st, ok := fi.Sys().(*syscall.Stat_t); ok {
		if err := syscall.Chown(dest, int(st.Uid), int(st.Gid)); err != nil {
			return fmt.Errorf("chown: %w", err)
		}
	}
	return nil
}

func chmod(dest string, _ string, fi fs.FileInfo) error {
	return os.Chmod(dest, fi.Mode())
}

// atime is not tracked by the backup chain; mtime stands in for both.
func utimes(dest string, _ string, fi fs.FileInfo) error {
	if err := os.Chtimes(dest, fi.ModTime(), fi.ModTime()); err != nil {
		return fmt.Errorf("utimes: %w", err)
	}
	return nil
}
