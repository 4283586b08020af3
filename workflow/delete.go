// delete.go - backup delete workflow
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

package workflow

import (
	"path/filepath"
	"strconv"

	pgbackup "github.com/opencoff/go-pgbackup"
	"github.com/opencoff/go-pgbackup/backup"
	"github.com/opencoff/go-pgbackup/link"
	"github.com/opencoff/go-pgbackup/log"
)

// Server carries the per-server settings the delete workflow needs.
type Server struct {
	Name string

	// Workers is the per-file action pool size; 0 runs actions
	// inline.
	Workers int

	// HotStandby names the standby mirror directory, if one is
	// maintained; it is removed when the backup chain becomes
	// empty.
	HotStandby string
}

// Deleter builds delete workflows for the servers under one backup
// root. Compression and encryption are injected here once; the
// workflow stays reentrant over different settings.
type Deleter struct {
	Root     string
	Registry *Registry
	Comp     pgbackup.Compression
	Enc      pgbackup.Encryption

	servers map[string]*Server
}

// NewDeleter returns a Deleter over backup tree 'root' using 'reg'
// for per-server exclusion.
func NewDeleter(root string, reg *Registry, c pgbackup.Compression, e pgbackup.Encryption) *Deleter {
	return &Deleter{
		Root:     root,
		Registry: reg,
		Comp:     c,
		Enc:      e,
		servers:  make(map[string]*Server),
	}
}

// AddServer registers per-server settings. Servers never registered
// get defaults (inline actions, no hot standby).
func (d *Deleter) AddServer(s *Server) {
	d.servers[s.Name] = s
}

func (d *Deleter) server(name string) *Server {
	if s, ok := d.servers[name]; ok {
		return s
	}
	return &Server{Name: name}
}

// NewDeleteBackup returns the workflow deleting one backup by label.
// The identifier passed to Run is the victim's label.
//
// A delete interrupted between relink and directory removal is safe
// to re-run: relink only acts on symlinks in the survivor, so files
// it already materialized are untouched, and the survivor's size is
// recomputed from disk afterwards.
func NewDeleteBackup(d *Deleter) *Workflow {
	return &Workflow{
		Setup:    d.deleteSetup,
		Execute:  d.deleteExecute,
		Teardown: d.deleteTeardown,
	}
}

func (d *Deleter) deleteSetup(server, identifier string, nodes Nodes) error {
	log.Debugf("delete (setup): %s/%s", server, identifier)
	nodes.List()
	return nil
}

func (d *Deleter) deleteTeardown(server, identifier string, nodes Nodes) error {
	log.Debugf("delete (teardown): %s/%s", server, identifier)
	nodes.List()
	return nil
}

func (d *Deleter) deleteExecute(server, identifier string, nodes Nodes) error {
	log.Debugf("delete (execute): %s/%s", server, identifier)

	d.BuildNodes(server, identifier, nodes)
	nodes.List()

	release, ok := d.Registry.BeginDelete(server)
	if !ok {
		log.Debugf("delete is active for %s (waiting for %s)", server, identifier)
		return &Error{"delete", server, identifier, ErrBusy}
	}
	defer release()

	if d.Registry.BackupActive(server) {
		log.Debugf("backup is active for %s", server)
		return &Error{"delete", server, identifier, ErrBackupRunning}
	}

	dir := backup.ServerDir(d.Root, server)
	bks, err := backup.List(dir)
	if err != nil {
		return &Error{"delete", server, identifier, err}
	}

	label := nodes.GetString(NodeLabel)
	idx := backup.Find(bks, label)
	if idx == -1 {
		log.Errorf("delete: no backup %s/%s", server, label)
		return &Error{"delete", server, label, ErrUnknownLabel}
	}

	victim := bks[idx]
	if victim.Keep {
		log.Errorf("delete: backup is retained %s/%s", server, label)
		return &Error{"delete", server, label, ErrRetained}
	}

	prev := backup.PrevValid(bks, idx)
	next := backup.NextValid(bks, idx)

	if prev != -1 {
		log.Tracef("prv label: %s/%s", server, bks[prev].Label)
	}
	log.Tracef("del label: %s/%s", server, victim.Label)
	if next != -1 {
		log.Tracef("nxt label: %s/%s", server, bks[next].Label)
	}

	srv := d.server(server)
	victimDir := backup.BackupDir(d.Root, server, victim.Label)

	// Forward links are the direction of space sharing: a valid
	// victim with a valid successor must first be absorbed into
	// that successor. A victim that is the newest valid backup -
	// or invalid outright - shares nothing anyone needs.
	if victim.Valid == backup.ValidTrue && next != -1 {
		lk := link.New(srv.Workers, d.Comp, d.Enc)
		from := backup.DataDir(d.Root, server, victim.Label)
		to := backup.DataDir(d.Root, server, bks[next].Label)

		// Relink drains its pool before returning, so no worker
		// still reads from the victim when it is removed below.
		if err := lk.Relink(from, to); err != nil {
			// partial relink stays in place; a re-run picks up
			// the remaining symlinks
			return &Error{"relink", server, label, err}
		}

		if err := pgbackup.RemoveTree(victimDir); err != nil {
			return &Error{"delete", server, label, err}
		}

		nextDir := backup.BackupDir(d.Root, server, bks[next].Label)
		size := backup.DirectorySize(nextDir)
		if err := backup.UpdateInfo(nextDir, backup.InfoBackup, strconv.FormatUint(size, 10)); err != nil {
			log.Warnf("delete: size update failed for %s/%s: %s", server, bks[next].Label, err)
		}
	} else {
		if err := pgbackup.RemoveTree(victimDir); err != nil {
			return &Error{"delete", server, label, err}
		}
	}

	log.Debugf("delete: %s/%s", server, victim.Label)

	if srv.HotStandby != "" {
		rest, err := backup.List(dir)
		if err == nil && len(rest) == 0 && pgbackup.Exists(srv.HotStandby) {
			if err := pgbackup.RemoveTree(srv.HotStandby); err != nil {
				log.Warnf("delete: hot standby removal failed for %s: %s", server, err)
			} else {
				log.Infof("hot standby deleted: %s", server)
			}
		}
	}

	return nil
}

// BuildNodes refreshes the node entries for a server/label pair
// before a stage runs; stale values from an earlier workflow in the
// chain are dropped first.
func (d *Deleter) BuildNodes(server, identifier string, nodes Nodes) {
	for _, k := range []string{
		NodeIdentifier, NodeLabel, NodeBackup, NodeServerBase,
		NodeServerBackup, NodeBackupBase, NodeBackupData,
	} {
		nodes.Remove(k)
	}

	nodes.Put(NodeIdentifier, identifier)
	nodes.Put(NodeLabel, identifier)
	nodes.Put(NodeServerBase, filepath.Join(d.Root, server))
	nodes.Put(NodeServerBackup, backup.ServerDir(d.Root, server))
	nodes.Put(NodeBackupBase, backup.BackupDir(d.Root, server, identifier))
	nodes.Put(NodeBackupData, backup.DataDir(d.Root, server, identifier))
}
