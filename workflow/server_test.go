// server_test.go -- test harness for the per-server exclusion flags
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
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
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

func TestDeleteFlagExclusive(t *testing.T) {
	assert := newAsserter(t)
	reg := NewRegistry()

	var winners atomic.Int64
	var wg sync.WaitGroup

	wg.Add(16)
	for i := 0; i < 16; i++ {
		go func() {
			defer wg.Done()
			if _, ok := reg.BeginDelete("primary"); ok {
				winners.Add(1)
			}
		}()
	}
	wg.Wait()

	assert(winners.Load() == 1, "have %d winners, want 1", winners.Load())
}

func TestDeleteFlagRelease(t *testing.T) {
	assert := newAsserter(t)
	reg := NewRegistry()

	release, ok := reg.BeginDelete("primary")
	assert(ok, "first acquisition failed")

	_, ok = reg.BeginDelete("primary")
	assert(!ok, "second acquisition succeeded while held")

	// a different server is unaffected
	r2, ok := reg.BeginDelete("replica")
	assert(ok, "independent server blocked")
	r2()

	release()

	release, ok = reg.BeginDelete("primary")
	assert(ok, "re-acquisition after release failed")
	release()
}

func TestBackupFlag(t *testing.T) {
	assert := newAsserter(t)
	reg := NewRegistry()

	assert(!reg.BackupActive("primary"), "backup active on fresh registry")

	ok := reg.BeginBackup("primary")
	assert(ok, "backup acquisition failed")
	assert(reg.BackupActive("primary"), "backup flag not visible")

	ok = reg.BeginBackup("primary")
	assert(!ok, "second backup acquisition succeeded")

	reg.EndBackup("primary")
	assert(!reg.BackupActive("primary"), "backup flag stuck")
}
