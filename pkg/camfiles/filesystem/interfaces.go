package filesystem

import (
	"io/fs"
)

// StatFS reports information about a named file, following symlinks.
type StatFS interface {
	Stat(name string) (fs.FileInfo, error)
}

// ReadDirFS lists the immediate children of a directory.
type ReadDirFS interface {
	ReadDir(name string) ([]fs.DirEntry, error)
}

// WriteFS defines the mutating operations the camfiles helpers need.
type WriteFS interface {
	// Mkdir creates a single directory. The parent must already exist.
	Mkdir(name string, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	// CreateExclusive creates a new empty file and fails with fs.ErrExist
	// if anything is already present at name.
	CreateExclusive(name string, perm fs.FileMode) error
	Remove(name string) error
}

// FileSystem combines the read and write operations.
type FileSystem interface {
	StatFS
	ReadDirFS
	WriteFS
}
