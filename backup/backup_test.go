// backup_test.go -- test harness for the backup chain model
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
package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func newAsserter(t *testing.T) func(cond bool, msg string, args ...interface{}) {
	return func(cond bool, msg string, args ...interface{}) {
		if cond {
			return
		}

		_, file, line, ok := runtime.Caller(1)
		if !ok {
			file = "???"
			line = 0
		}

		s := fmt.Sprintf(msg, args...)
		t.Fatalf("\n%s: %d: Assertion failed: %s\n", file, line, s)
	}
}

func writeInfo(t *testing.T, dir string, kv string) {
	t.Helper()

	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir %s: %s", dir, err)
	}
	if err := os.WriteFile(filepath.Join(dir, "backup.info"), []byte(kv), 0644); err != nil {
		t.Fatalf("write info %s: %s", dir, err)
	}
}

func mkchain(t *testing.T) string {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "primary", "backup")
	writeInfo(t, filepath.Join(dir, "20250103T0200"), "LABEL=20250103T0200\nVALID=1\nKEEP=false\nBACKUP=300\n")
	writeInfo(t, filepath.Join(dir, "20250101T0200"), "LABEL=20250101T0200\nVALID=1\nKEEP=true\nBACKUP=100\n")
	writeInfo(t, filepath.Join(dir, "20250102T0200"), "LABEL=20250102T0200\nVALID=0\nKEEP=false\nBACKUP=200\n")

	// a backup still being taken: no backup.info yet
	if err := os.MkdirAll(filepath.Join(dir, "20250104T0200"), 0755); err != nil {
		t.Fatalf("mkdir: %s", err)
	}

	return dir
}

func TestList(t *testing.T) {
	assert := newAsserter(t)
	dir := mkchain(t)

	bks, err := List(dir)
	assert(err == nil, "list: %s", err)
	assert(len(bks) == 3, "have %d backups, want 3", len(bks))

	labels := []string{"20250101T0200", "20250102T0200", "20250103T0200"}
	for i, want := range labels {
		assert(bks[i].Label == want, "order: have %q, want %q", bks[i].Label, want)
	}

	assert(bks[0].Valid == ValidTrue, "b0 valid: %s", bks[0].Valid)
	assert(bks[0].Keep, "b0 keep not parsed")
	assert(bks[0].Size == 100, "b0 size: %d", bks[0].Size)
	assert(bks[1].Valid == ValidFalse, "b1 valid: %s", bks[1].Valid)
	assert(!bks[1].Keep, "b1 keep mis-parsed")
}

func TestListUnreadable(t *testing.T) {
	assert := newAsserter(t)

	_, err := List(filepath.Join(t.TempDir(), "nope"))
	assert(err != nil, "list of missing dir succeeded")
}

func TestNeighbors(t *testing.T) {
	assert := newAsserter(t)
	dir := mkchain(t)

	bks, err := List(dir)
	assert(err == nil, "list: %s", err)

	idx := Find(bks, "20250102T0200")
	assert(idx == 1, "find: have %d", idx)
	assert(Find(bks, "19990101T0000") == -1, "find of unknown label succeeded")

	assert(PrevValid(bks, idx) == 0, "prev valid: %d", PrevValid(bks, idx))
	assert(NextValid(bks, idx) == 2, "next valid: %d", NextValid(bks, idx))

	// the invalid middle backup is not a neighbor candidate
	assert(PrevValid(bks, 2) == 0, "prev valid skipped wrong: %d", PrevValid(bks, 2))
	assert(NextValid(bks, 0) == 2, "next valid skipped wrong: %d", NextValid(bks, 0))
	assert(NextValid(bks, 2) == -1, "next valid past end: %d", NextValid(bks, 2))
}

func TestPathHelpers(t *testing.T) {
	assert := newAsserter(t)

	assert(ServerDir("/srv/pg", "primary") == "/srv/pg/primary/backup",
		"server dir: %q", ServerDir("/srv/pg", "primary"))
	assert(BackupDir("/srv/pg", "primary", "L1") == "/srv/pg/primary/backup/L1",
		"backup dir: %q", BackupDir("/srv/pg", "primary", "L1"))
	assert(DataDir("/srv/pg/", "primary", "L1") == "/srv/pg/primary/backup/L1/data",
		"data dir: %q", DataDir("/srv/pg/", "primary", "L1"))
}
