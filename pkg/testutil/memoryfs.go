package testutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// MemoryFS implements types.FS with in-memory storage
type MemoryFS struct {
	mu    sync.RWMutex
	nodes map[string]*fileNode

	// Error injection
	errorPaths map[string]error

	// Statistics
	readCount  int
	writeCount int
}

type fileNode struct {
	mode    os.FileMode
	modTime time.Time
	content []byte
	isDir   bool
}

// NewMemoryFS creates a new in-memory filesystem containing only "/"
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		nodes: map[string]*fileNode{
			"/": {mode: 0755 | os.ModeDir, modTime: time.Now(), isDir: true},
		},
		errorPaths: make(map[string]error),
	}
}

func normalizePath(path string) string {
	if !filepath.IsAbs(path) {
		path = filepath.Join("/", path)
	}
	return filepath.Clean(path)
}

// lookup returns the node at path; callers hold the lock
func (m *MemoryFS) lookup(op, path string) (*fileNode, error) {
	path = normalizePath(path)
	if err, ok := m.errorPaths[path]; ok {
		return nil, &fs.PathError{Op: op, Path: path, Err: err}
	}
	node, ok := m.nodes[path]
	if !ok {
		return nil, &fs.PathError{Op: op, Path: path, Err: fs.ErrNotExist}
	}
	return node, nil
}

// ReadFile reads the entire file content
func (m *MemoryFS) ReadFile(name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.readCount++

	node, err := m.lookup("read", name)
	if err != nil {
		return nil, err
	}
	if node.isDir {
		return nil, &fs.PathError{Op: "read", Path: name, Err: errors.New("is a directory")}
	}

	content := make([]byte, len(node.content))
	copy(content, node.content)
	return content, nil
}

// WriteFile writes data to a file, creating it and its parents if necessary
func (m *MemoryFS) WriteFile(name string, data []byte, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.writeCount++

	path := normalizePath(name)
	if err, ok := m.errorPaths[path]; ok {
		return &fs.PathError{Op: "write", Path: path, Err: err}
	}
	if node, ok := m.nodes[path]; ok && node.isDir {
		return &fs.PathError{Op: "write", Path: path, Err: errors.New("is a directory")}
	}
	if err := m.mkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	content := make([]byte, len(data))
	copy(content, data)
	m.nodes[path] = &fileNode{mode: perm, modTime: time.Now(), content: content}
	return nil
}

// AppendFile appends to an existing file
func (m *MemoryFS) AppendFile(name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.writeCount++

	node, err := m.lookup("open", name)
	if err != nil {
		return err
	}
	if node.isDir {
		return &fs.PathError{Op: "open", Path: name, Err: errors.New("is a directory")}
	}
	node.content = append(node.content, data...)
	node.modTime = time.Now()
	return nil
}

// Stat returns file info
func (m *MemoryFS) Stat(name string) (os.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	node, err := m.lookup("stat", name)
	if err != nil {
		return nil, err
	}
	return &fileInfo{node: node, name: filepath.Base(name)}, nil
}

// Remove removes a file or empty directory
func (m *MemoryFS) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path := normalizePath(name)
	node, err := m.lookup("remove", path)
	if err != nil {
		return err
	}
	if node.isDir {
		for p := range m.nodes {
			if p != path && filepath.Dir(p) == path {
				return &fs.PathError{Op: "remove", Path: name, Err: errors.New("directory not empty")}
			}
		}
	}
	delete(m.nodes, path)
	return nil
}

// MkdirAll creates a directory and all necessary parents
func (m *MemoryFS) MkdirAll(path string, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.mkdirAll(path, perm)
}

func (m *MemoryFS) mkdirAll(path string, perm os.FileMode) error {
	path = normalizePath(path)
	if node, ok := m.nodes[path]; ok {
		if !node.isDir {
			return &fs.PathError{Op: "mkdir", Path: path, Err: errors.New("not a directory")}
		}
		return nil
	}
	if parent := filepath.Dir(path); parent != path {
		if err := m.mkdirAll(parent, perm); err != nil {
			return err
		}
	}
	m.nodes[path] = &fileNode{mode: perm | os.ModeDir, modTime: time.Now(), isDir: true}
	return nil
}

// WithError configures the filesystem to return an error for a specific path
func (m *MemoryFS) WithError(path string, err error) *MemoryFS {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.errorPaths[normalizePath(path)] = err
	return m
}

// Stats returns filesystem operation statistics
func (m *MemoryFS) Stats() (reads, writes int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.readCount, m.writeCount
}

// fileInfo implements os.FileInfo
type fileInfo struct {
	node *fileNode
	name string
}

func (fi *fileInfo) Name() string       { return fi.name }
func (fi *fileInfo) Size() int64        { return int64(len(fi.node.content)) }
func (fi *fileInfo) Mode() os.FileMode  { return fi.node.mode }
func (fi *fileInfo) ModTime() time.Time { return fi.node.modTime }
func (fi *fileInfo) IsDir() bool        { return fi.node.isDir }
func (fi *fileInfo) Sys() interface{}   { return fi.node }
