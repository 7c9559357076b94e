package camfiles

import (
	"errors"
	"io"
	"io/fs"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/camfiles/pkg/camfiles/filesystem"
)

const (
	dirPerm  fs.FileMode = 0755
	filePerm fs.FileMode = 0644
)

// Helper runs the camfiles operations against a filesystem. It holds no
// mutable state and is safe for concurrent use; the filesystem itself is
// not protected against racing callers.
type Helper struct {
	fs     filesystem.FileSystem
	logger zerolog.Logger
}

// Option configures a Helper.
type Option func(*Helper)

// WithFileSystem sets the filesystem the helper operates on.
func WithFileSystem(fsys filesystem.FileSystem) Option {
	return func(h *Helper) {
		h.fs = fsys
	}
}

// WithLogger sets the logger failures and changes are reported to.
func WithLogger(logger zerolog.Logger) Option {
	return func(h *Helper) {
		h.logger = logger
	}
}

// New creates a Helper on the host filesystem with the default logger,
// then applies opts.
func New(opts ...Option) *Helper {
	h := &Helper{
		fs:     filesystem.NewOSFileSystem(),
		logger: DefaultLogger(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// EnsureDirectory makes sure p is a directory, creating it and any
// missing ancestors when nothing exists there. An existing non-directory
// is left alone and reported as ErrNotDirectory.
func (h *Helper) EnsureDirectory(p *Path) Result {
	if p == nil {
		return failed(opEnsureDir, "", ErrNilPath)
	}
	name := p.target()
	log := opLogger(h.logger, opEnsureDir, name)

	info, err := h.fs.Stat(name)
	switch {
	case err == nil:
		if info.IsDir() {
			return ok()
		}
		return failed(opEnsureDir, name, ErrNotDirectory)
	case !errors.Is(err, fs.ErrNotExist):
		log.Warn().Err(err).Msg("stat failed")
		return failed(opEnsureDir, name, err)
	}

	if err := h.fs.MkdirAll(name, dirPerm); err != nil {
		log.Warn().Err(err).Msg("mkdir failed")
		return failed(opEnsureDir, name, err)
	}
	log.Debug().Msg("directory created")
	return ok()
}

// EnsureFile makes sure p is a regular file. When nothing exists there,
// the parent directory is ensured first and an empty file is created.
// An existing directory is never converted or removed.
func (h *Helper) EnsureFile(p *Path) Result {
	if p == nil {
		return failed(opEnsureFile, "", ErrNilPath)
	}
	name := p.target()
	log := opLogger(h.logger, opEnsureFile, name)

	info, err := h.fs.Stat(name)
	switch {
	case err == nil:
		if info.Mode().IsRegular() {
			return ok()
		}
		if info.IsDir() {
			return failed(opEnsureFile, name, ErrIsDirectory)
		}
		return failed(opEnsureFile, name, ErrNotRegular)
	case !errors.Is(err, fs.ErrNotExist):
		log.Warn().Err(err).Msg("stat failed")
		return failed(opEnsureFile, name, err)
	}

	if res := h.EnsureDirectory(p.Parent()); !res.OK {
		return Result{Err: &OpError{Op: opEnsureFile, Path: name, Err: res.Err}}
	}

	if err := h.fs.CreateExclusive(name, filePerm); err != nil {
		log.Warn().Err(err).Msg("create failed")
		return failed(opEnsureFile, name, err)
	}
	log.Debug().Msg("file created")
	return ok()
}

// CloseAll closes each non-nil closer in order. Closing stops at the first
// failure: the error is logged and returned, and the closers after it are
// left open. A nil or empty list is a successful no-op.
func (h *Helper) CloseAll(closers ...io.Closer) Result {
	for i, c := range closers {
		if c == nil {
			continue
		}
		if err := c.Close(); err != nil {
			l := opLogger(h.logger, opClose, "")
			l.Warn().Err(err).Int("index", i).
				Int("skipped", len(closers)-i-1).Msg("close failed")
			return Result{Err: &OpError{Op: opClose, Err: err}}
		}
	}
	return ok()
}
