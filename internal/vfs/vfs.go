// Package vfs provides the file system abstraction used for opening and
// saving documents.
//
// The editor only needs whole-file reads and writes, so the interface is
// small. OSFS talks to the real file system; MemFS keeps everything in
// memory for tests.
package vfs

import (
	"io/fs"
	"time"
)

// FS is a minimal file system.
type FS interface {
	// ReadFile reads the entire file content.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file, creating it if necessary.
	WriteFile(path string, data []byte, perm fs.FileMode) error

	// Stat returns file information.
	Stat(path string) (FileInfo, error)

	// Exists returns true if the path exists.
	Exists(path string) bool
}

// DefaultFilePerm is the permission used when creating files.
const DefaultFilePerm fs.FileMode = 0o644

// FileInfo describes a file or directory.
type FileInfo struct {
	path    string
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

// NewFileInfo creates a FileInfo from the given parameters.
func NewFileInfo(path, name string, size int64, mode fs.FileMode, modTime time.Time, isDir bool) FileInfo {
	return FileInfo{
		path:    path,
		name:    name,
		size:    size,
		mode:    mode,
		modTime: modTime,
		isDir:   isDir,
	}
}

// Path returns the full path.
func (fi FileInfo) Path() string { return fi.path }

// Name returns the base name.
func (fi FileInfo) Name() string { return fi.name }

// Size returns the file size in bytes.
func (fi FileInfo) Size() int64 { return fi.size }

// Mode returns the file mode.
func (fi FileInfo) Mode() fs.FileMode { return fi.mode }

// ModTime returns the modification time.
func (fi FileInfo) ModTime() time.Time { return fi.modTime }

// IsDir returns true if this is a directory.
func (fi FileInfo) IsDir() bool { return fi.isDir }
