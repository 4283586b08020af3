// copy_test.go -- test harness for copyfile.go
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
	"os"
	"path/filepath"
	"testing"
)

func TestCopyFile(t *testing.T) {
	assert := newAsserter(t)
	tmp := t.TempDir()

	src := filepath.Join(tmp, "src")
	dst := filepath.Join(tmp, "dst")
	mkfile(t, src, "hello, world")

	err := os.Chmod(src, 0640)
	assert(err == nil, "chmod: %s", err)

	err = CopyFile(dst, src, 0600)
	assert(err == nil, "copy: %s", err)

	b, err := os.ReadFile(dst)
	assert(err == nil, "readback: %s", err)
	assert(string(b) == "hello, world", "content mismatch: %q", string(b))

	fi, err := os.Stat(dst)
	assert(err == nil, "stat: %s", err)
	assert(fi.Mode().Perm() == 0640, "mode not carried over: %s", fi.Mode())
}

func TestCopyFileNoOverwrite(t *testing.T) {
	assert := newAsserter(t)
	tmp := t.TempDir()

	src := filepath.Join(tmp, "src")
	dst := filepath.Join(tmp, "dst")
	mkfile(t, src, "new bytes")
	mkfile(t, dst, "precious")

	err := CopyFile(dst, src, 0600)
	assert(err != nil, "copy over existing dst succeeded")

	b, err := os.ReadFile(dst)
	assert(err == nil, "readback: %s", err)
	assert(string(b) == "precious", "existing dst clobbered: %q", string(b))
}

func TestCopyFileMissingSrc(t *testing.T) {
	assert := newAsserter(t)
	tmp := t.TempDir()

	err := CopyFile(filepath.Join(tmp, "dst"), filepath.Join(tmp, "nope"), 0600)
	assert(err != nil, "copy of missing src succeeded")
}
