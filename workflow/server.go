// server.go - per-server exclusion flags
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
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v3"
)

// State holds the two exclusion flags of one server. Only the delete
// side is guarded: delete acquisition inspects the backup flag after
// winning its own CAS and backs off if it is set. BeginBackup does
// not look at the delete flag.
type State struct {
	backup atomic.Bool
	del    atomic.Bool
}

// Registry tracks exclusion state per server name. The zero value is
// not usable; create one with NewRegistry. States are created on
// first use and never removed.
type Registry struct {
	m *xsync.MapOf[string, *State]
}

// NewRegistry returns an empty server registry.
func NewRegistry() *Registry {
	return &Registry{
		m: xsync.NewMapOf[string, *State](),
	}
}

func (r *Registry) state(server string) *State {
	s, _ := r.m.LoadOrCompute(server, func() *State {
		return &State{}
	})
	return s
}

// BeginDelete attempts to take the delete flag of 'server'. On
// success it returns a release function that must run on every exit
// path - including errors - and true. A concurrent delete holding
// the flag yields (nil, false); losers report busy and retry, they
// never wait.
func (r *Registry) BeginDelete(server string) (func(), bool) {
	s := r.state(server)
	if !s.del.CompareAndSwap(false, true) {
		return nil, false
	}

	return func() { s.del.Store(false) }, true
}

// BackupActive returns true if a backup is in progress for 'server'.
func (r *Registry) BackupActive(server string) bool {
	return r.state(server).backup.Load()
}

// BeginBackup attempts to take the backup flag of 'server'; the
// backup pipeline calls this before streaming a base backup. Returns
// false if a backup is already running.
func (r *Registry) BeginBackup(server string) bool {
	return r.state(server).backup.CompareAndSwap(false, true)
}

// EndBackup drops the backup flag of 'server'.
func (r *Registry) EndBackup(server string) {
	r.state(server).backup.Store(false)
}
