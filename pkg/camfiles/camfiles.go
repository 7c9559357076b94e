// Package camfiles provides best-effort filesystem helpers for a camera
// application's image storage: making sure directories and files exist,
// closing groups of resources, and locating and clearing the image cache
// directory.
//
// None of the helpers panic or return errors as control flow. Outcomes are
// reported in Result and ClearResult values; a false OK means the
// operation did not happen and Err may explain why.
//
// The package-level functions use a default Helper on the host
// filesystem. Use New to run against another filesystem or logger.
package camfiles

import (
	"io"
	"sync/atomic"
)

var defaultHelper atomic.Pointer[Helper]

func init() {
	defaultHelper.Store(New())
}

// Default returns the helper used by the package-level functions.
func Default() *Helper {
	return defaultHelper.Load()
}

// SetDefault replaces the helper used by the package-level functions.
func SetDefault(h *Helper) {
	if h == nil {
		h = New()
	}
	defaultHelper.Store(h)
}

// EnsureDirectory calls Default().EnsureDirectory.
func EnsureDirectory(p *Path) Result {
	return Default().EnsureDirectory(p)
}

// EnsureFile calls Default().EnsureFile.
func EnsureFile(p *Path) Result {
	return Default().EnsureFile(p)
}

// CloseAll calls Default().CloseAll.
func CloseAll(closers ...io.Closer) Result {
	return Default().CloseAll(closers...)
}

// ImageCacheDirectory calls Default().ImageCacheDirectory.
func ImageCacheDirectory(sc StorageContext) string {
	return Default().ImageCacheDirectory(sc)
}

// ClearCache calls Default().ClearCache.
func ClearCache(sc StorageContext) ClearResult {
	return Default().ClearCache(sc)
}

// OutputDirectory calls Default().OutputDirectory.
func OutputDirectory(sc StorageContext) string {
	return Default().OutputDirectory(sc)
}
