// utils_test.go -- test harness utilities
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

func mkfile(t *testing.T, nm string, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(nm), 0755); err != nil {
		t.Fatalf("mkdir %s: %s", nm, err)
	}
	if err := os.WriteFile(nm, []byte(content), 0644); err != nil {
		t.Fatalf("writefile %s: %s", nm, err)
	}
}
