// suffix.go - compression and encryption suffix handling
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

import "strings"

// Compression identifies the compression stage configured for the
// backup pipeline. The zero value means no compression.
type Compression uint

const (
	CompressNone Compression = iota
	CompressGzip
	CompressZstd
	CompressLz4
	CompressBzip2
)

// Encryption identifies the encryption stage configured for the
// backup pipeline. The zero value means no encryption.
type Encryption uint

const (
	EncryptNone Encryption = iota
	EncryptAES
)

var compressExt = map[Compression]string{
	CompressGzip:  ".gz",
	CompressZstd:  ".zst",
	CompressLz4:   ".lz4",
	CompressBzip2: ".bz2",
}

var compressName = map[Compression]string{
	CompressNone:  "none",
	CompressGzip:  "gzip",
	CompressZstd:  "zstd",
	CompressLz4:   "lz4",
	CompressBzip2: "bzip2",
}

// Ext returns the filename extension the compression stage appends,
// including the dot; empty for CompressNone.
func (c Compression) Ext() string {
	return compressExt[c]
}

// Stringer for Compression
func (c Compression) String() string {
	return compressName[c]
}

// Ext returns the filename extension the encryption stage appends,
// including the dot; empty for EncryptNone.
func (e Encryption) Ext() string {
	if e == EncryptAES {
		return ".aes"
	}
	return ""
}

// Stringer for Encryption
func (e Encryption) String() string {
	if e == EncryptAES {
		return "aes"
	}
	return "none"
}

// TrimSuffix returns 'nm' with the extensions appended by the
// compression and encryption pipeline removed. Encryption wraps
// compression, so its extension is the outermost and is stripped
// first. A name that doesn't carry a given extension is left alone;
// the operation is idempotent.
func TrimSuffix(nm string, c Compression, e Encryption) string {
	if x := e.Ext(); x != "" {
		nm = strings.TrimSuffix(nm, x)
	}
	if x := c.Ext(); x != "" {
		nm = strings.TrimSuffix(nm, x)
	}
	return nm
}
