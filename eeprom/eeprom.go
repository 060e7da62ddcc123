// Package eeprom decodes the manufacturing identity record stored in
// the GXP platform EEPROM. The layout is a single fixed format: every
// field lives at a hard-coded offset with a hard-coded size, there is
// no header, checksum or version negotiation.
package eeprom

import (
	"fmt"
	"io"
	"strings"
)

// Field layout of the EEPROM image.
const (
	SerialNumberOffset = 1
	SerialNumberSize   = 16

	PartNumberOffset = 109
	PartNumberSize   = 16

	PCASerialNumberOffset = 144
	PCASerialNumberSize   = 16

	PCAPartNumberOffset = 160
	PCAPartNumberSize   = 16

	MAC0Offset = 132
	MAC1Offset = 138
	MACSize    = 6
)

// Record holds the identity fields decoded from one EEPROM image. The
// ASCII fields are kept verbatim, including any NUL or padding bytes
// present in the image. Trimming is left to consumers so that every
// reader of the record sees the exact bytes the factory wrote.
type Record struct {
	SerialNumber    string
	PartNumber      string
	PCASerialNumber string
	PCAPartNumber   string
	MAC0            string
	MAC1            string
}

// Decode extracts all identity fields from the given image. It is a
// pure function of the image bytes and never fails: images shorter than
// the layout produce zero-padded fields (see readField).
func Decode(r io.ReaderAt) Record {
	return Record{
		SerialNumber:    String(r, SerialNumberOffset, SerialNumberSize),
		PartNumber:      String(r, PartNumberOffset, PartNumberSize),
		PCASerialNumber: String(r, PCASerialNumberOffset, PCASerialNumberSize),
		PCAPartNumber:   String(r, PCAPartNumberOffset, PCAPartNumberSize),
		MAC0:            MAC(r, MAC0Offset),
		MAC1:            MAC(r, MAC1Offset),
	}
}

// String reads size bytes at offset and returns them verbatim as a
// string, padding and NUL bytes included.
func String(r io.ReaderAt, offset, size int) string {
	return string(readField(r, offset, size))
}

// MAC reads the 6-byte MAC address at offset and renders it as
// lowercase colon-separated hex, e.g. "00:1a:2b:3c:4d:5e".
func MAC(r io.ReaderAt, offset int) string {
	buf := readField(r, offset, MACSize)

	parts := make([]string, len(buf))
	for i, b := range buf {
		parts[i] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(parts, ":")
}

// readField returns exactly size bytes starting at offset. When the
// image ends before offset+size the missing tail stays zero, so a
// truncated image yields a defined, zero-padded value instead of an
// out-of-bounds read.
func readField(r io.ReaderAt, offset, size int) []byte {
	buf := make([]byte, size)
	// ReadAt fills buf[:n] and leaves the rest zeroed on a short read.
	_, _ = r.ReadAt(buf, int64(offset))
	return buf
}
