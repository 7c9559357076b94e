package storage

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Context is a host implementation of camfiles.StorageContext. Like the
// platform APIs it models, the directory getters create the directory they
// return and report "" when that is not possible.
type Context struct {
	cfg    Config
	logger zerolog.Logger
}

// NewContext creates a storage context from cfg.
func NewContext(cfg Config, logger zerolog.Logger) *Context {
	return &Context{cfg: cfg, logger: logger}
}

// ExternalStorageMounted reports whether the external root is usable.
// With Mounted set to auto the root must be a writable directory.
func (c *Context) ExternalStorageMounted() bool {
	if c.cfg.ExternalRoot == "" {
		return false
	}
	switch c.cfg.Mounted {
	case MountTrue:
		return true
	case MountFalse:
		return false
	}
	mounted := isWritableDir(c.cfg.ExternalRoot)
	c.logger.Debug().Str("path", c.cfg.ExternalRoot).Bool("mounted", mounted).Msg("probed external storage")
	return mounted
}

// ExternalPicturesDir returns the pictures directory on external storage.
func (c *Context) ExternalPicturesDir() string {
	if c.cfg.ExternalRoot == "" {
		return ""
	}
	return c.ensure(filepath.Join(c.cfg.ExternalRoot, c.cfg.PicturesSubdir))
}

// CacheDir returns the internal cache directory.
func (c *Context) CacheDir() string {
	if c.cfg.CacheDir == "" {
		return ""
	}
	return c.ensure(c.cfg.CacheDir)
}

// ExternalMediaDir returns the shared media directory while external
// storage is mounted. It is not created here.
func (c *Context) ExternalMediaDir() string {
	if !c.ExternalStorageMounted() {
		return ""
	}
	return filepath.Join(c.cfg.ExternalRoot, c.cfg.MediaSubdir)
}

// FilesDir returns the internal files directory.
func (c *Context) FilesDir() string {
	if c.cfg.FilesDir == "" {
		return ""
	}
	return c.ensure(c.cfg.FilesDir)
}

// AppName returns the configured application name.
func (c *Context) AppName() string {
	return c.cfg.AppName
}

func (c *Context) ensure(dir string) string {
	if err := os.MkdirAll(dir, 0755); err != nil {
		c.logger.Warn().Err(err).Str("path", dir).Msg("storage directory unavailable")
		return ""
	}
	return dir
}
