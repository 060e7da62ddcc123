package fs

import (
	"bytes"
	"errors"
	"os"
	"time"
)

var ErrFileDoesNotExist = errors.New("fake file does not exist")

// FakeFilesystem is an in-memory FileSystem for tests. Paths that were
// not registered behave like missing files, which is how tests model an
// absent EEPROM candidate.
type FakeFilesystem struct {
	files map[string]FakeFile
}

// NewFakeFilesystemWithFiles creates a FakeFilesystem holding the given
// files.
func NewFakeFilesystemWithFiles(fs []FakeFile) FakeFilesystem {
	fileMap := make(map[string]FakeFile)
	for _, f := range fs {
		fileMap[f.Name] = f
	}

	return FakeFilesystem{files: fileMap}
}

// Open returns the registered FakeFile for name, or a *os.PathError if
// no file was registered under that name.
func (ff FakeFilesystem) Open(name string) (File, error) {
	file, ok := ff.files[name]
	if !ok {
		return FakeFile{}, &os.PathError{Op: "open", Path: name, Err: ErrFileDoesNotExist}
	}

	// Reopen from the start so each Open sees the full content.
	file.Buffer = bytes.NewReader(file.content)
	return file, nil
}

// Stat returns the os.FileInfo for a registered FakeFile, or a
// *os.PathError if no file was registered under that name.
func (ff FakeFilesystem) Stat(name string) (os.FileInfo, error) {
	file, ok := ff.files[name]
	if !ok {
		return FakeFileInfo{}, &os.PathError{Op: "stat", Path: name, Err: ErrFileDoesNotExist}
	}

	return file.Stat()
}

// FakeFile is a readable in-memory file.
type FakeFile struct {
	Name    string
	Mode    os.FileMode
	ModTime time.Time
	Buffer  *bytes.Reader

	content []byte
}

// NewFakeFile creates a FakeFile from a string, for line-oriented
// content such as sysfs attributes.
func NewFakeFile(name, content string) FakeFile {
	return NewFakeFileBytes(name, []byte(content))
}

// NewFakeFileBytes creates a FakeFile from raw bytes, for binary
// content such as EEPROM images.
func NewFakeFileBytes(name string, content []byte) FakeFile {
	return FakeFile{
		Name:    name,
		Mode:    os.FileMode(0444),
		ModTime: time.Now(),
		Buffer:  bytes.NewReader(content),
		content: content,
	}
}

// Close does nothing.
func (f FakeFile) Close() error {
	return nil
}

// Read reads from the internal bytes.Reader.
func (f FakeFile) Read(p []byte) (n int, err error) {
	return f.Buffer.Read(p)
}

// ReadAt reads from the internal bytes.Reader at the given offset.
func (f FakeFile) ReadAt(p []byte, off int64) (n int, err error) {
	return f.Buffer.ReadAt(p, off)
}

// Seek seeks within the internal bytes.Reader.
func (f FakeFile) Seek(offset int64, whence int) (int64, error) {
	return f.Buffer.Seek(offset, whence)
}

// Stat returns a FakeFileInfo describing the file.
func (f FakeFile) Stat() (os.FileInfo, error) {
	return FakeFileInfo{File: f}, nil
}

// FakeFileInfo is returned by FakeFile.Stat.
type FakeFileInfo struct {
	File FakeFile
}

// Name returns the name the file was registered under.
func (fi FakeFileInfo) Name() string {
	return fi.File.Name
}

// Size returns the length of the file content in bytes.
func (fi FakeFileInfo) Size() int64 {
	return int64(len(fi.File.content))
}

// Mode returns the file mode bits.
func (fi FakeFileInfo) Mode() os.FileMode {
	return fi.File.Mode
}

// ModTime returns the modification time.
func (fi FakeFileInfo) ModTime() time.Time {
	return fi.File.ModTime
}

// IsDir always returns false.
func (fi FakeFileInfo) IsDir() bool {
	return false
}

// Sys always returns nil.
func (fi FakeFileInfo) Sys() interface{} {
	return nil
}
