// copyfile.go - copy a file efficiently using platform specific
// primitives and fallback to simple mmap'd copy.
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

package pgbackup

import (
	"fmt"
	"io/fs"
	"os"
)

// Do copies in chunks of _ioChunkSize
const _ioChunkSize int = 256 * 1024

// CopyFile copies file 'src' to 'dst' using the most efficient OS
// primitive available on the runtime platform - falling back to a
// copy via memory mapping 'src'. The destination must not exist.
// After the bytes are copied, the source's metadata (mode, owner,
// mtime, xattr) is carried over to 'dst'.
func CopyFile(dst, src string, perm fs.FileMode) error {
	fi, err := os.Lstat(src)
	if err != nil {
		return &CopyError{"stat-src", src, dst, err}
	}

	if !fi.Mode().IsRegular() {
		return &CopyError{"stat-src", src, dst,
			fmt.Errorf("not a regular file")}
	}

	if err = sysCopyFile(dst, src, perm); err != nil {
		return err
	}

	return updateMeta(dst, src, fi)
}

// CopyFd copies the contents of 'src' to 'dst'; both are already
// open files. The whole of 'src' is copied from its first byte,
// whatever its current offset; 'dst' is left positioned at offset 0.
func CopyFd(dst, src *os.File) error {
	return sysCopyFd(dst, src)
}

type op func(dest, src string, fi fs.FileInfo) error

// order of applying these is important; we can't update
// certain attributes if we're not the owner. So, we have
// to do it in the end.
var _Mdupdaters = []op{
	clonexattr,
	chmod,
	chown,
	utimes,
}

// update all the metadata
func updateMeta(dest, src string, fi fs.FileInfo) error {
	for _, fp := range _Mdupdaters {
		if err := fp(dest, src, fi); err != nil {
			return &CopyError{"meta", src, dest, err}
		}
	}
	return nil
}
