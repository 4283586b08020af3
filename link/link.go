// link.go - the four traversal modes of the link engine
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

// Package link collapses identical files across adjacent backups into
// symlinks and undoes that sharing when a backup is about to be
// deleted. It offers four traversal modes:
//
//   - Link: after a full backup, point every file that equals its
//     counterpart in the previous backup at that counterpart.
//   - LinkManifest: after an incremental backup, do the same for every
//     file the manifest reports as neither added nor changed; no byte
//     comparison is made.
//   - Relink: before a backup is deleted, materialize or redirect the
//     symlinks in the surviving neighbor that point into it.
//   - CompareLink: the tablespace variant of Link; walks the
//     tablespace siblings and skips the data subtree.
//
// All modes are idempotent: re-running on an already-linked tree is a
// no-op.
package link

import (
	"errors"
	"strings"

	pgbackup "github.com/opencoff/go-pgbackup"
	"github.com/opencoff/go-pgbackup/walk"
)

// Linker runs the four traversal modes with a fixed worker count and
// the process' compression/encryption settings. A zero worker count
// runs every per-file action inline on the calling goroutine;
// semantics are identical, only throughput differs.
type Linker struct {
	workers int
	comp    pgbackup.Compression
	enc     pgbackup.Encryption
}

// New returns a Linker dispatching per-file actions across 'workers'
// goroutines. 'c' and 'e' describe the compression and encryption
// stages of the backup pipeline; they are needed to map file names
// back to manifest keys.
func New(workers int, c pgbackup.Compression, e pgbackup.Encryption) *Linker {
	return &Linker{
		workers: workers,
		comp:    c,
		enc:     e,
	}
}

// Link walks the data directory of a fresh backup 'from' against the
// previous backup's data directory 'to'; every file whose bytes equal
// its counterpart is replaced with a symlink to it. Tablespaces hang
// off pg_tblspc and are linked separately via CompareLink.
func (l *Linker) Link(from, to string) error {
	err := l.traverse(opLink, from, to, walk.Options{Skip: []string{"pg_tblspc"}}, nil)
	return wrap("link", from, to, err)
}

// LinkManifest walks an incremental backup rooted at 'baseFrom'
// against its parent at 'baseTo'. Files whose manifest key appears in
// 'added' or 'changed' are genuinely new and left alone; every other
// file is replaced with a symlink to the parent's copy when that copy
// exists. The manifest is trusted: bytes are not re-verified.
func (l *Linker) LinkManifest(baseFrom, baseTo string, added, changed KeySet) error {
	inManifest := func(from string) bool {
		rel := strings.TrimPrefix(strings.TrimPrefix(from, baseFrom), "/")
		rel = pgbackup.TrimSuffix(rel, l.comp, l.enc)
		return contains(added, rel) || contains(changed, rel)
	}

	err := l.traverse(opManifest, baseFrom, baseTo, walk.Options{}, inManifest)
	return wrap("link-manifest", baseFrom, baseTo, err)
}

// Relink walks the backup about to be deleted ('from') against its
// surviving neighbor ('to'). Wherever the neighbor holds a symlink,
// the bytes are copied back in - or, when the deleted side is itself
// a symlink, the neighbor's link is redirected to its target - so the
// neighbor is self-contained once 'from' is erased. The walk uses
// lstat so symlinks on the deleted side are carried through as links.
func (l *Linker) Relink(from, to string) error {
	err := l.traverse(opRelink, from, to, walk.Options{Lstat: true}, nil)
	return wrap("relink", from, to, err)
}

// CompareLink walks the tablespace siblings of a fresh backup 'from'
// against the previous backup 'to', replacing byte-identical files
// with symlinks. The data subtree is handled by Link and skipped
// here.
func (l *Linker) CompareLink(from, to string) error {
	err := l.traverse(opCompareLink, from, to, walk.Options{Skip: []string{"data"}}, nil)
	return wrap("compare-link", from, to, err)
}

// traverse binds one walk to the per-file action for 'o', fanning the
// actions out to a pool when one is configured. The pool lives for
// exactly one traversal: it is drained (the barrier) before traverse
// returns.
func (l *Linker) traverse(o op, from, to string, wo walk.Options, skip func(from string) bool) error {
	dispatch, finish := l.dispatcher()

	walk.Pairs(from, to, wo, func(f, t string) {
		if skip != nil && skip(f) {
			return
		}
		dispatch(work{o, f, t})
	})

	return finish()
}

// dispatcher returns the submit and barrier halves of the per-file
// action runner - backed by a worker pool, or inline for a zero
// worker count.
func (l *Linker) dispatcher() (func(work), func() error) {
	if l.workers > 0 {
		wp := pgbackup.NewWorkPool[work](l.workers, func(_ int, w work) error {
			return w.run()
		})

		fini := func() error {
			wp.Close()
			return wp.Wait()
		}
		return wp.Submit, fini
	}

	var errs []error
	submit := func(w work) {
		if err := w.run(); err != nil {
			errs = append(errs, err)
		}
	}
	fini := func() error {
		return errors.Join(errs...)
	}
	return submit, fini
}

func contains(s KeySet, key string) bool {
	return s != nil && s.Contains(key)
}
