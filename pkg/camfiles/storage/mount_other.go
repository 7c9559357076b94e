//go:build !unix

package storage

import "os"

func isWritableDir(dir string) bool {
	info, err := os.Stat(dir)
	return err == nil && info.IsDir() && info.Mode().Perm()&0200 != 0
}
