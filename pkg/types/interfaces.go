package types

import (
	"io/fs"
)

// FS is the filesystem interface the file-command writer and the job
// summary use. Targets are pre-provisioned by the runner; nothing here
// creates them implicitly except WriteFile.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// AppendFile appends data to an existing file. It must fail when
	// the file does not exist.
	AppendFile(name string, data []byte) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// Other operations
	Remove(name string) error
}

// Env is read/write access to a set of environment variables.
type Env interface {
	Lookup(name string) (string, bool)
	Get(name string) string
	Set(name, value string) error
	Unset(name string) error

	// Environ returns a snapshot copy of every variable.
	Environ() map[string]string
}
