package filesystem

import "io/fs"

// FS abstracts the host filesystem operations the Path wrapper needs.
// Implementations receive rendered path strings; they never see the
// structural path value.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	OpenFile(name string, flag int, perm fs.FileMode) (fs.File, error)

	// Directory operations
	ReadDir(name string) ([]fs.DirEntry, error)
	MkdirAll(path string, perm fs.FileMode) error

	// Symlink operations
	Readlink(name string) (string, error)

	// Permission operations
	Chmod(name string, mode fs.FileMode) error
}
