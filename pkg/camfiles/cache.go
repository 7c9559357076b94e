package camfiles

import (
	"errors"
	"io/fs"
	"path/filepath"
)

// CacheSubdir is the directory name appended to the storage base to form
// the image cache directory.
const CacheSubdir = "cache"

// StorageContext describes where the platform keeps application files.
// Getters return "" for a location that is unavailable.
type StorageContext interface {
	// ExternalStorageMounted reports whether external storage is
	// currently accessible.
	ExternalStorageMounted() bool
	// ExternalPicturesDir returns the application's pictures directory
	// on external storage.
	ExternalPicturesDir() string
	// CacheDir returns the application's internal cache directory.
	CacheDir() string
	// ExternalMediaDir returns the first shared media directory on
	// external storage.
	ExternalMediaDir() string
	// FilesDir returns the application's internal files directory.
	FilesDir() string
	// AppName names the application's folder inside the media directory.
	AppName() string
}

// ImageCacheDirectory returns the image cache directory for sc: the
// "cache" subdirectory of the external pictures directory when external
// storage is mounted, of the internal cache directory otherwise. The
// directory is created (one level only) if it does not exist; the path is
// returned whether or not that succeeds. It returns "" when sc is nil or
// yields no base directory.
func (h *Helper) ImageCacheDirectory(sc StorageContext) string {
	if sc == nil {
		l := opLogger(h.logger, opCacheDir, "")
		l.Warn().Msg("no storage context")
		return ""
	}
	base := ""
	if sc.ExternalStorageMounted() {
		base = sc.ExternalPicturesDir()
	}
	if base == "" {
		base = sc.CacheDir()
	}
	if base == "" {
		l := opLogger(h.logger, opCacheDir, "")
		l.Warn().Msg("no storage directory available")
		return ""
	}

	dir := filepath.Join(base, CacheSubdir)
	log := opLogger(h.logger, opCacheDir, dir)
	if _, err := h.fs.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		if err := h.fs.Mkdir(dir, dirPerm); err != nil {
			log.Warn().Err(err).Msg("mkdir failed")
		} else {
			log.Debug().Msg("image cache directory created")
		}
	}
	return dir
}

// ClearCache deletes the regular files directly inside the image cache
// directory. Subdirectories and their contents are left untouched. When
// there is no cache directory or it cannot be listed nothing is deleted.
func (h *Helper) ClearCache(sc StorageContext) ClearResult {
	dir := h.ImageCacheDirectory(sc)
	res := ClearResult{Dir: dir}
	if dir == "" {
		res.Err = &OpError{Op: opClearCache, Err: ErrNoStorage}
		return res
	}
	log := opLogger(h.logger, opClearCache, dir)

	entries, err := h.fs.ReadDir(dir)
	if err != nil {
		log.Debug().Err(err).Msg("cache directory not listable")
		res.Err = &OpError{Op: opClearCache, Path: dir, Err: err}
		return res
	}

	var errs []error
	for _, entry := range entries {
		name := filepath.Join(dir, entry.Name())
		info, err := h.fs.Stat(name)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if err := h.fs.Remove(name); err != nil {
			log.Warn().Err(err).Str("file", name).Msg("delete failed")
			errs = append(errs, &OpError{Op: opClearCache, Path: name, Err: err})
			continue
		}
		res.Removed = append(res.Removed, name)
	}
	log.Debug().Int("removed", len(res.Removed)).Msg("cache cleared")

	res.Err = errors.Join(errs...)
	return res
}

// OutputDirectory returns the directory captured photos are written to:
// the application's folder inside the external media directory, created
// with its ancestors, or the internal files directory when that folder is
// unavailable. It returns "" when sc is nil or neither location exists.
func (h *Helper) OutputDirectory(sc StorageContext) string {
	if sc == nil {
		l := opLogger(h.logger, opOutputDir, "")
		l.Warn().Msg("no storage context")
		return ""
	}
	if media := sc.ExternalMediaDir(); media != "" {
		dir := filepath.Join(media, sc.AppName())
		if h.EnsureDirectory(ResolvePath(dir)).OK {
			return dir
		}
		l := opLogger(h.logger, opOutputDir, dir)
		l.Debug().Msg("media directory unavailable, using files directory")
	}
	return sc.FilesDir()
}
