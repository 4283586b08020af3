// nodes.go - keyed values handed between workflow stages
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
	"github.com/opencoff/go-pgbackup/log"
)

// node keys shared across workflow implementations
const (
	NodeIdentifier   = "identifier"
	NodeLabel        = "label"
	NodeBackup       = "backup"
	NodeServerBase   = "server_base"
	NodeServerBackup = "server_backup"
	NodeBackupBase   = "backup_base"
	NodeBackupData   = "backup_data"
	NodeDestination  = "destination"
	NodeTarfile      = "tarfile"
)

// Nodes is the heterogeneous keyed map a workflow chain threads
// through its stages. It is confined to one Run invocation and is not
// safe for concurrent use.
type Nodes map[string]any

// Get returns the value stored under 'key', or nil.
func (n Nodes) Get(key string) any {
	return n[key]
}

// GetString returns the string stored under 'key', or "".
func (n Nodes) GetString(key string) string {
	s, _ := n[key].(string)
	return s
}

// Put stores 'val' under 'key', replacing any previous value.
func (n Nodes) Put(key string, val any) {
	n[key] = val
}

// Remove deletes 'key'.
func (n Nodes) Remove(key string) {
	delete(n, key)
}

// List dumps the map at trace level.
func (n Nodes) List() {
	for k, v := range n {
		log.Tracef("node %s = %v", k, v)
	}
}
