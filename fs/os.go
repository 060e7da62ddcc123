package fs

import "os"

// DefaultFilesystem reads from the real filesystem via the os package.
var DefaultFilesystem = OSFileSystem{}

// OSFileSystem implements FileSystem on top of the os package.
type OSFileSystem struct{}

// Open opens the named file read-only. Errors are of type *os.PathError.
func (OSFileSystem) Open(name string) (File, error) {
	return os.Open(name)
}

// Stat returns the os.FileInfo describing the named file. Errors are of
// type *os.PathError.
func (OSFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}
