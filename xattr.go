// xattr.go - extended attribute support
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
	"io/fs"

	"github.com/pkg/xattr"
)

// Xattr is a collection of all the extended attributes of a given file
type Xattr map[string]string

// GetXattr returns all the extended attributes of a file.
// This function will traverse symlinks.
func GetXattr(nm string) (Xattr, error) {
	keys, err := xattr.List(nm)
	if err != nil {
		return nil, err
	}

	x := make(Xattr, len(keys))
	for _, k := range keys {
		v, err := xattr.Get(nm, k)
		if err != nil {
			return nil, err
		}
		x[k] = string(v)
	}
	return x, nil
}

// SetXattr sets/updates the xattr list for a given file.
func SetXattr(nm string, x Xattr) error {
	for k, v := range x {
		if err := xattr.Set(nm, k, []byte(v)); err != nil {
			return err
		}
	}
	return nil
}

// xattr support varies by filesystem; a source we can't read attrs
// from is carried over with none.
func clonexattr(dest, src string, _ fs.FileInfo) error {
	x, err := GetXattr(src)
	if err != nil {
		return nil
	}

	return SetXattr(dest, x)
}
