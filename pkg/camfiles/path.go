package camfiles

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"
)

// PhotoExtension is the file extension of captured photos.
const PhotoExtension = ".jpg"

// Path is a reference to a filesystem location. It is not checked for
// existence. The absent reference is a nil *Path.
type Path struct {
	name string
}

// ResolvePath wraps s in a Path. It returns nil when s is empty or made
// only of whitespace.
func ResolvePath(s string) *Path {
	for _, r := range s {
		if !isWhitespace(r) {
			return &Path{name: s}
		}
	}
	return nil
}

// NewPhotoPath returns a timestamped photo path inside dir, named
// yyyy-MM-dd-HH-mm-ss-SSS.jpg in now's location. It returns nil when dir
// is empty.
func NewPhotoPath(dir string, now time.Time) *Path {
	if dir == "" {
		return nil
	}
	name := fmt.Sprintf("%s-%03d%s", now.Format("2006-01-02-15-04-05"), now.Nanosecond()/int(time.Millisecond), PhotoExtension)
	return &Path{name: filepath.Join(dir, name)}
}

// isWhitespace matches the separator and control characters treated as
// blank in path strings: Unicode space, line and paragraph separators
// other than the no-break spaces, plus \t \n \v \f \r and U+001C..U+001F.
func isWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', 0x1c, 0x1d, 0x1e, 0x1f:
		return true
	case '\u00a0', '\u2007', '\u202f':
		return false
	}
	return unicode.In(r, unicode.Zs, unicode.Zl, unicode.Zp)
}

// String returns the raw path string, or "" for a nil Path.
func (p *Path) String() string {
	if p == nil {
		return ""
	}
	return p.name
}

// Parent returns the directory containing p. A bare name has parent ".".
func (p *Path) Parent() *Path {
	if p == nil {
		return nil
	}
	return &Path{name: filepath.Dir(p.target())}
}

// target is the name handed to the filesystem: repeated separators are
// collapsed and a trailing separator is dropped, so "dir/photo.jpg/"
// names the file photo.jpg. Dot segments are kept.
func (p *Path) target() string {
	var b strings.Builder
	b.Grow(len(p.name))
	prevSep := false
	for i := 0; i < len(p.name); i++ {
		c := p.name[i]
		if os.IsPathSeparator(c) {
			if prevSep {
				continue
			}
			prevSep = true
		} else {
			prevSep = false
		}
		b.WriteByte(c)
	}
	s := b.String()
	if len(s) > 1 && os.IsPathSeparator(s[len(s)-1]) {
		s = s[:len(s)-1]
	}
	return s
}
