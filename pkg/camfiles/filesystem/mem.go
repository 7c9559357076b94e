package filesystem

import (
	"io/fs"
	"path/filepath"
	"sort"
	"sync"
	"syscall"
	"time"
)

// Operation names accepted by MemFileSystem.FailOn.
const (
	OpStat     = "stat"
	OpReadDir  = "readdir"
	OpMkdir    = "mkdir"
	OpMkdirAll = "mkdirall"
	OpCreate   = "create"
	OpRemove   = "remove"
)

type memEntry struct {
	mode    fs.FileMode
	modTime time.Time
}

type faultKey struct {
	op   string
	name string
}

// MemFileSystem is an in-memory FileSystem for tests. Files carry no data;
// only their kind matters to the helpers. Failures can be injected per
// operation and path with FailOn.
type MemFileSystem struct {
	mu      sync.RWMutex
	entries map[string]*memEntry
	faults  map[faultKey]error
}

// NewMemFileSystem creates an empty filesystem holding only "/" and ".".
func NewMemFileSystem() *MemFileSystem {
	now := time.Now()
	return &MemFileSystem{
		entries: map[string]*memEntry{
			"/": {mode: fs.ModeDir | 0755, modTime: now},
			".": {mode: fs.ModeDir | 0755, modTime: now},
		},
		faults: make(map[faultKey]error),
	}
}

// FailOn makes every later call of op on name return err.
func (m *MemFileSystem) FailOn(op, name string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.faults[faultKey{op: op, name: filepath.Clean(name)}] = err
}

// Exists reports whether anything is present at name.
func (m *MemFileSystem) Exists(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.entries[filepath.Clean(name)]
	return ok
}

func (m *MemFileSystem) fault(op, name string) error {
	if err, ok := m.faults[faultKey{op: op, name: name}]; ok {
		return &fs.PathError{Op: op, Path: name, Err: err}
	}
	return nil
}

// checkParent must be called with the lock held.
func (m *MemFileSystem) checkParent(op, name string) error {
	parent, ok := m.entries[filepath.Dir(name)]
	if !ok {
		return &fs.PathError{Op: op, Path: name, Err: fs.ErrNotExist}
	}
	if !parent.mode.IsDir() {
		return &fs.PathError{Op: op, Path: name, Err: syscall.ENOTDIR}
	}
	return nil
}

// Stat implements StatFS
func (m *MemFileSystem) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	name = filepath.Clean(name)
	if err := m.fault(OpStat, name); err != nil {
		return nil, err
	}
	e, ok := m.entries[name]
	if !ok {
		return nil, &fs.PathError{Op: OpStat, Path: name, Err: fs.ErrNotExist}
	}
	return &memFileInfo{name: filepath.Base(name), entry: *e}, nil
}

// ReadDir implements ReadDirFS. Entries are sorted by name.
func (m *MemFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	name = filepath.Clean(name)
	if err := m.fault(OpReadDir, name); err != nil {
		return nil, err
	}
	e, ok := m.entries[name]
	if !ok {
		return nil, &fs.PathError{Op: OpReadDir, Path: name, Err: fs.ErrNotExist}
	}
	if !e.mode.IsDir() {
		return nil, &fs.PathError{Op: OpReadDir, Path: name, Err: syscall.ENOTDIR}
	}

	var out []fs.DirEntry
	for p, child := range m.entries {
		if p == name || filepath.Dir(p) != name {
			continue
		}
		out = append(out, fs.FileInfoToDirEntry(&memFileInfo{name: filepath.Base(p), entry: *child}))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out, nil
}

// Mkdir implements WriteFS
func (m *MemFileSystem) Mkdir(name string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = filepath.Clean(name)
	if err := m.fault(OpMkdir, name); err != nil {
		return err
	}
	if _, ok := m.entries[name]; ok {
		return &fs.PathError{Op: OpMkdir, Path: name, Err: fs.ErrExist}
	}
	if err := m.checkParent(OpMkdir, name); err != nil {
		return err
	}
	m.entries[name] = &memEntry{mode: fs.ModeDir | perm.Perm(), modTime: time.Now()}
	return nil
}

// MkdirAll implements WriteFS
func (m *MemFileSystem) MkdirAll(path string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path = filepath.Clean(path)
	if err := m.fault(OpMkdirAll, path); err != nil {
		return err
	}

	var missing []string
	p := path
	for {
		e, ok := m.entries[p]
		if ok {
			if !e.mode.IsDir() {
				return &fs.PathError{Op: OpMkdirAll, Path: p, Err: syscall.ENOTDIR}
			}
			break
		}
		missing = append(missing, p)
		p = filepath.Dir(p)
	}

	now := time.Now()
	for i := len(missing) - 1; i >= 0; i-- {
		m.entries[missing[i]] = &memEntry{mode: fs.ModeDir | perm.Perm(), modTime: now}
	}
	return nil
}

// CreateExclusive implements WriteFS
func (m *MemFileSystem) CreateExclusive(name string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = filepath.Clean(name)
	if err := m.fault(OpCreate, name); err != nil {
		return err
	}
	if _, ok := m.entries[name]; ok {
		return &fs.PathError{Op: OpCreate, Path: name, Err: fs.ErrExist}
	}
	if err := m.checkParent(OpCreate, name); err != nil {
		return err
	}
	m.entries[name] = &memEntry{mode: perm.Perm(), modTime: time.Now()}
	return nil
}

// Remove implements WriteFS. Non-empty directories are refused.
func (m *MemFileSystem) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = filepath.Clean(name)
	if err := m.fault(OpRemove, name); err != nil {
		return err
	}
	e, ok := m.entries[name]
	if !ok {
		return &fs.PathError{Op: OpRemove, Path: name, Err: fs.ErrNotExist}
	}
	if e.mode.IsDir() {
		for p := range m.entries {
			if p != name && filepath.Dir(p) == name {
				return &fs.PathError{Op: OpRemove, Path: name, Err: syscall.ENOTEMPTY}
			}
		}
	}
	delete(m.entries, name)
	return nil
}

type memFileInfo struct {
	name  string
	entry memEntry
}

func (fi *memFileInfo) Name() string       { return fi.name }
func (fi *memFileInfo) Size() int64        { return 0 }
func (fi *memFileInfo) Mode() fs.FileMode  { return fi.entry.mode }
func (fi *memFileInfo) ModTime() time.Time { return fi.entry.modTime }
func (fi *memFileInfo) IsDir() bool        { return fi.entry.mode.IsDir() }
func (fi *memFileInfo) Sys() any           { return nil }
