package camfiles

import (
	"errors"
	"fmt"
)

var (
	// ErrNilPath is reported when an operation receives no path reference.
	ErrNilPath = errors.New("no path reference")
	// ErrNotDirectory is reported when a directory was expected but
	// something else exists at the path.
	ErrNotDirectory = errors.New("exists and is not a directory")
	// ErrIsDirectory is reported when a file was expected but a directory
	// exists at the path.
	ErrIsDirectory = errors.New("exists and is a directory")
	// ErrNotRegular is reported when a file was expected but a
	// non-regular entry (device, socket, pipe) exists at the path.
	ErrNotRegular = errors.New("exists and is not a regular file")
	// ErrNoStorage is reported when the storage context yields no usable
	// base directory.
	ErrNoStorage = errors.New("no storage directory available")
)

// OpError records a failed helper operation and the path it failed on.
type OpError struct {
	Op   string
	Path string
	Err  error
}

func (e *OpError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// Result is the outcome of a best-effort operation. OK is authoritative;
// Err holds diagnostic detail when there is any.
type Result struct {
	OK  bool
	Err error
}

func ok() Result {
	return Result{OK: true}
}

func failed(op, path string, err error) Result {
	return Result{Err: &OpError{Op: op, Path: path, Err: err}}
}

// ClearResult is the outcome of ClearCache.
type ClearResult struct {
	// Dir is the cache directory that was swept.
	Dir string
	// Removed lists the files that were deleted.
	Removed []string
	// Err is non-nil when listing failed or any deletion failed.
	Err error
}
