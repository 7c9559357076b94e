package filesystem

import (
	"io/fs"
	"os"
)

// OSFileSystem implements FileSystem on top of the host OS.
// Names are passed to the os package unchanged, so relative names resolve
// against the process working directory.
type OSFileSystem struct{}

// NewOSFileSystem creates a host filesystem.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// Stat implements StatFS
func (*OSFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// ReadDir implements ReadDirFS
func (*OSFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

// Mkdir implements WriteFS
func (*OSFileSystem) Mkdir(name string, perm fs.FileMode) error {
	return os.Mkdir(name, perm)
}

// MkdirAll implements WriteFS
func (*OSFileSystem) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

// CreateExclusive implements WriteFS
func (*OSFileSystem) CreateExclusive(name string, perm fs.FileMode) error {
	f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}
	return f.Close()
}

// Remove implements WriteFS
func (*OSFileSystem) Remove(name string) error {
	return os.Remove(name)
}
