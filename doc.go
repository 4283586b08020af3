// doc.go - package overview
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

// Package pgbackup implements the incremental-linking and retention core
// of a PostgreSQL backup manager. Backups of a data directory form a
// chain on disk; after a new backup is taken, files identical to the
// previous backup are collapsed into symlinks so unchanged data is
// stored once. When a backup is deleted, links in the surviving
// neighbor are materialized or redirected first, so no backup ever
// references a vanished path.
//
// This root package holds the filesystem primitives: a generic worker
// pool, a byte-identity file comparator, a metadata-preserving file
// copier and the compression/encryption suffix handling. The traversal
// lives in the walk sub-package, the four linking modes in link, the
// on-disk backup model in backup and the delete workflow in workflow.
package pgbackup
