// Package fs abstracts read-only access to the filesystem so that code
// reading EEPROM images and sysfs attributes can be tested against
// in-memory files instead of real device nodes.
package fs

import (
	"io"
	"os"
)

// FileSystem is the read surface the daemon needs: open a file for
// reading and stat a path. Nothing in this module writes to disk.
type FileSystem interface {
	Open(name string) (File, error)
	Stat(name string) (os.FileInfo, error)
}

// File groups the read interfaces of the io package. ReaderAt is the
// important one: EEPROM fields are extracted by offset, not by
// sequential reads.
type File interface {
	io.Closer
	io.Reader
	io.ReaderAt
	io.Seeker
	Stat() (os.FileInfo, error)
}
