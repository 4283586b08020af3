// walk.go - pairwise pre-order directory traversal
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

// Package walk traverses one directory tree while mirroring every
// relative path under a second root. The link engine binds each of
// its traversal modes to a per-file action invoked with such a
// (from, to) pair.
//
// The traversal is single-goroutine per invocation; callers that
// want parallelism fan the per-file actions out to a worker pool.
package walk

import (
	"os"
	"strings"
)

// Options control the behavior of a pairwise walk.
type Options struct {
	// Lstat classifies entries without following symlinks; a
	// symlink in the source is then handed to the per-file action
	// as a non-directory instead of being descended or resolved.
	Lstat bool

	// Skip lists entry basenames that are neither descended into
	// nor dispatched, at any depth.
	Skip []string
}

// Pairs walks the tree rooted at 'from' in pre-order and invokes
// 'apply' for every non-directory entry, passing the entry's path and
// its mirror under 'to'. Subdirectories are descended before the
// remaining entries of the parent are dispatched.
//
// An unreadable directory silently ends that frame of the traversal;
// sibling frames are unaffected. An empty traversal means "nothing to
// do" - it is never an error, and Pairs has no error to return.
func Pairs(from, to string, opt Options, apply func(from, to string)) {
	w := &walker{
		stat:  os.Stat,
		skip:  make(map[string]bool, len(opt.Skip)),
		apply: apply,
	}

	if opt.Lstat {
		w.stat = os.Lstat
	}

	for _, nm := range opt.Skip {
		w.skip[nm] = true
	}

	w.walk(from, to)
}

type walker struct {
	stat  func(string) (os.FileInfo, error)
	skip  map[string]bool
	apply func(from, to string)
}

func (w *walker) walk(from, to string) {
	names, err := readDir(from)
	if err != nil {
		return
	}

	for _, nm := range names {
		if w.skip[nm] {
			continue
		}

		fe := join(from, nm)
		te := join(to, nm)

		fi, err := w.stat(fe)
		if err != nil {
			continue
		}

		if fi.IsDir() {
			w.walk(fe, te)
			continue
		}

		w.apply(fe, te)
	}
}

// read a dir and return the names
func readDir(nm string) ([]string, error) {
	fd, err := os.Open(nm)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	return fd.Readdirnames(-1)
}

// join with a guaranteed single '/' separator
func join(dir, nm string) string {
	if strings.HasSuffix(dir, "/") {
		return dir + nm
	}
	return dir + "/" + nm
}
