package vfs

import (
	"io/fs"
	"path"
	"slices"
	"strings"
	"sync"
	"syscall"
	"time"
)

// MemFS implements FS in memory. Relative paths are rooted at "/".
//
// MemFS is safe for concurrent use.
type MemFS struct {
	mu     sync.RWMutex
	files  map[string]*memFile
	dirs   map[string]bool
	writes int
}

type memFile struct {
	content []byte
	mode    fs.FileMode
	modTime time.Time
}

// NewMemFS creates an empty in-memory file system.
func NewMemFS() *MemFS {
	return &MemFS{
		files: make(map[string]*memFile),
		dirs:  map[string]bool{"/": true},
	}
}

var _ FS = (*MemFS)(nil)

func cleanPath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}

// ReadFile reads the entire file content.
func (m *MemFS) ReadFile(filePath string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	filePath = cleanPath(filePath)
	f, ok := m.files[filePath]
	if !ok {
		if m.dirs[filePath] {
			return nil, &fs.PathError{Op: "read", Path: filePath, Err: syscall.EISDIR}
		}
		return nil, &fs.PathError{Op: "read", Path: filePath, Err: fs.ErrNotExist}
	}
	return slices.Clone(f.content), nil
}

// WriteFile writes data to a file. The parent directory must exist.
func (m *MemFS) WriteFile(filePath string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	filePath = cleanPath(filePath)
	if m.dirs[filePath] {
		return &fs.PathError{Op: "write", Path: filePath, Err: syscall.EISDIR}
	}
	if !m.dirs[path.Dir(filePath)] {
		return &fs.PathError{Op: "write", Path: filePath, Err: fs.ErrNotExist}
	}

	m.files[filePath] = &memFile{
		content: slices.Clone(data),
		mode:    perm,
		modTime: time.Now(),
	}
	m.writes++
	return nil
}

// Stat returns file information.
func (m *MemFS) Stat(filePath string) (FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	filePath = cleanPath(filePath)
	if f, ok := m.files[filePath]; ok {
		return NewFileInfo(filePath, path.Base(filePath), int64(len(f.content)), f.mode, f.modTime, false), nil
	}
	if m.dirs[filePath] {
		return NewFileInfo(filePath, path.Base(filePath), 0, fs.ModeDir|0o755, time.Time{}, true), nil
	}
	return FileInfo{}, &fs.PathError{Op: "stat", Path: filePath, Err: fs.ErrNotExist}
}

// Exists returns true if the path exists.
func (m *MemFS) Exists(filePath string) bool {
	_, err := m.Stat(filePath)
	return err == nil
}

// MkdirAll creates a directory and all missing parents.
func (m *MemFS) MkdirAll(dirPath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	current := ""
	for _, part := range strings.Split(strings.Trim(cleanPath(dirPath), "/"), "/") {
		if part == "" {
			continue
		}
		current += "/" + part
		if _, ok := m.files[current]; ok {
			return &fs.PathError{Op: "mkdir", Path: current, Err: syscall.ENOTDIR}
		}
		m.dirs[current] = true
	}
	return nil
}

// AddFile writes content, creating parent directories. Useful for tests.
func (m *MemFS) AddFile(filePath, content string) error {
	if dir := path.Dir(cleanPath(filePath)); dir != "/" {
		if err := m.MkdirAll(dir); err != nil {
			return err
		}
	}
	return m.WriteFile(filePath, []byte(content), DefaultFilePerm)
}

// Files returns all file paths, sorted.
func (m *MemFS) Files() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	paths := make([]string, 0, len(m.files))
	for p := range m.files {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths
}

// Writes returns the number of successful WriteFile calls.
func (m *MemFS) Writes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writes
}
