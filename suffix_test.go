// suffix_test.go -- test harness for suffix.go
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
	"testing"
)

func TestTrimSuffix(t *testing.T) {
	assert := newAsserter(t)

	tests := []struct {
		nm   string
		c    Compression
		e    Encryption
		want string
	}{
		{"base/1234.gz", CompressGzip, EncryptNone, "base/1234"},
		{"base/1234.zst", CompressZstd, EncryptNone, "base/1234"},
		{"base/1234.lz4", CompressLz4, EncryptNone, "base/1234"},
		{"base/1234.bz2", CompressBzip2, EncryptNone, "base/1234"},
		{"base/1234.aes", CompressNone, EncryptAES, "base/1234"},
		{"base/1234.gz.aes", CompressGzip, EncryptAES, "base/1234"},
		{"base/1234.zst.aes", CompressZstd, EncryptAES, "base/1234"},
		{"base/1234", CompressNone, EncryptNone, "base/1234"},

		// no pipeline suffix present: nothing to strip
		{"base/1234", CompressGzip, EncryptAES, "base/1234"},
		{"base/1234.gz", CompressZstd, EncryptNone, "base/1234.gz"},

		{"", CompressGzip, EncryptAES, ""},
	}

	for _, tx := range tests {
		have := TrimSuffix(tx.nm, tx.c, tx.e)
		assert(have == tx.want, "%q (%s,%s): have %q, want %q",
			tx.nm, tx.c, tx.e, have, tx.want)

		// trimming is idempotent
		again := TrimSuffix(have, tx.c, tx.e)
		assert(again == have, "%q (%s,%s): not idempotent: %q -> %q",
			tx.nm, tx.c, tx.e, have, again)
	}
}
