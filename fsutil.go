// fsutil.go - small filesystem predicates and link helpers
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
	"os"
)

// Exists returns true if 'nm' names an existing filesystem entry;
// symlinks are followed, so a dangling symlink does not exist.
func Exists(nm string) bool {
	_, err := os.Stat(nm)
	return err == nil
}

// IsFile returns true if 'nm' is a regular file (not a symlink to one).
func IsFile(nm string) bool {
	fi, err := os.Lstat(nm)
	return err == nil && fi.Mode().IsRegular()
}

// IsSymlink returns true if 'nm' is a symbolic link.
func IsSymlink(nm string) bool {
	fi, err := os.Lstat(nm)
	return err == nil && (fi.Mode()&os.ModeSymlink) != 0
}

// ReadLink returns the target of symlink 'nm' (a single level; the
// target is not resolved further) and true, or "" and false if 'nm'
// is not a readable symlink.
func ReadLink(nm string) (string, bool) {
	targ, err := os.Readlink(nm)
	if err != nil {
		return "", false
	}
	return targ, true
}

// ReplaceWithSymlink removes 'nm' and recreates it as a symlink
// pointing at 'target'. A missing 'nm' is not an error.
func ReplaceWithSymlink(nm, target string) error {
	if err := os.Remove(nm); err != nil && !os.IsNotExist(err) {
		return err
	}
	return os.Symlink(target, nm)
}

// RemoveTree removes 'nm' and everything below it.
func RemoveTree(nm string) error {
	return os.RemoveAll(nm)
}
