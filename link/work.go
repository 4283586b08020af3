// work.go - per-file actions dispatched by the link engine
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

package link

import (
	"os"

	pgbackup "github.com/opencoff/go-pgbackup"
	"github.com/opencoff/go-pgbackup/log"
)

type op uint8

const (
	opLink op = iota
	opManifest
	opRelink
	opCompareLink
)

// work is one unit of per-file work: a traversal mode applied to a
// (from, to) path pair. Instances are passed by value into the pool
// and carry no shared state.
type work struct {
	op   op
	from string
	to   string
}

func (w work) run() error {
	switch w.op {
	case opLink:
		return w.link()
	case opManifest:
		return w.manifest()
	case opRelink:
		return w.relink()
	case opCompareLink:
		return w.compareLink()
	}
	return nil
}

// 'to' is the previous backup's copy, already deduplicated; equal
// bytes reclaim space by pointing the new file at the old one.
func (w work) link() error {
	if !pgbackup.Exists(w.to) {
		return nil
	}

	if !pgbackup.CompareFiles(w.from, w.to) {
		return nil
	}

	return pgbackup.ReplaceWithSymlink(w.from, w.to)
}

// manifest mode already established that this file is unchanged; the
// only remaining check is that the parent actually has it.
func (w work) manifest() error {
	if !pgbackup.Exists(w.to) {
		return nil
	}

	return pgbackup.ReplaceWithSymlink(w.from, w.to)
}

func (w work) compareLink() error {
	if !pgbackup.CompareFiles(w.from, w.to) {
		return nil
	}

	return pgbackup.ReplaceWithSymlink(w.from, w.to)
}

// A 'to' that is not a symlink already stores real bytes and needs
// nothing. A missing 'from' is a no-op as well: there is nothing to
// restore from.
func (w work) relink() error {
	if !pgbackup.IsSymlink(w.to) {
		return nil
	}

	if pgbackup.IsFile(w.from) {
		log.Tracef("relink: copy %s -> %s", w.from, w.to)

		if err := os.Remove(w.to); err != nil && !os.IsNotExist(err) {
			return err
		}
		return pgbackup.CopyFile(w.to, w.from, 0600)
	}

	if targ, ok := pgbackup.ReadLink(w.from); ok {
		log.Tracef("relink: redirect %s -> %s", w.to, targ)

		if err := os.Remove(w.to); err != nil && !os.IsNotExist(err) {
			return err
		}
		return os.Symlink(targ, w.to)
	}

	return nil
}
