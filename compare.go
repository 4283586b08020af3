// compare.go - byte identity check between two files
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
	"bytes"
	"io"
	"os"
)

// CompareFiles returns true if the two named files have identical
// contents. Files of unequal size are unequal without reading any
// content. Any error on either side - open, stat, read - reads as
// "cannot confirm equality" and yields false; no error is returned.
func CompareFiles(x, y string) bool {
	xi, err := os.Stat(x)
	if err != nil {
		return false
	}

	yi, err := os.Stat(y)
	if err != nil {
		return false
	}

	if !xi.Mode().IsRegular() || !yi.Mode().IsRegular() {
		return false
	}

	if xi.Size() != yi.Size() {
		return false
	}

	fx, err := os.Open(x)
	if err != nil {
		return false
	}
	defer fx.Close()

	fy, err := os.Open(y)
	if err != nil {
		return false
	}
	defer fy.Close()

	bx := make([]byte, _ioChunkSize)
	by := make([]byte, _ioChunkSize)
	for {
		nx, ex := io.ReadFull(fx, bx)
		ny, ey := io.ReadFull(fy, by)

		if nx != ny || !bytes.Equal(bx[:nx], by[:ny]) {
			return false
		}

		switch {
		case ex == nil && ey == nil:
			continue

		case ex == io.EOF && ey == io.EOF:
			return true

		case ex == io.ErrUnexpectedEOF && ey == io.ErrUnexpectedEOF:
			// final short chunk on both sides; sizes matched above
			return true

		default:
			return false
		}
	}
}
