package vfs

import (
	"io/fs"
	"os"
)

// OSFS implements FS using the operating system's file system.
type OSFS struct{}

// NewOSFS creates a new OS file system.
func NewOSFS() *OSFS {
	return &OSFS{}
}

var _ FS = (*OSFS)(nil)

// ReadFile reads the entire file content.
func (f *OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile writes data to a file, creating it if necessary.
func (f *OSFS) WriteFile(path string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(path, data, perm)
}

// Stat returns file information.
func (f *OSFS) Stat(path string) (FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FileInfo{}, err
	}
	return NewFileInfo(path, info.Name(), info.Size(), info.Mode(), info.ModTime(), info.IsDir()), nil
}

// Exists returns true if the path exists.
func (f *OSFS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
