// Package types holds the shared interfaces of docstow.
package types

import "io/fs"

// FS abstracts the host file-system operations the document store
// delegates to. Implementations live in pkg/filesystem; tests inject
// an in-memory one.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	ReadDir(name string) ([]fs.DirEntry, error)
	MkdirAll(path string, perm fs.FileMode) error

	// Other operations
	Rename(oldpath, newpath string) error
	Remove(name string) error
}
