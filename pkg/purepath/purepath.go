package purepath

import (
	"iter"
	"slices"
	"strings"

	"github.com/arthur-debert/purepath/pkg/flavor"
	"github.com/arthur-debert/purepath/pkg/patherrors"
)

// PurePath is an immutable, flavor-aware path value. It holds the parsed
// structure of a path (drive, root, segments) and never touches the
// filesystem. Every derived operation returns a fresh value; a PurePath
// can therefore be shared freely between goroutines.
//
// Because the value holds a slice, Go's == operator does not apply; use
// Equal for structural comparison.
type PurePath struct {
	drive string
	root  string
	parts []string
	fl    flavor.Flavor
}

// Posix parses raw under the POSIX flavor.
func Posix(raw string) PurePath {
	return Parse(raw, flavor.Posix())
}

// Windows parses raw under the Windows flavor.
func Windows(raw string) PurePath {
	return Parse(raw, flavor.Windows())
}

// Flavor returns the ruleset this path was parsed under.
func (p PurePath) Flavor() flavor.Flavor {
	return p.fl
}

// Drive returns the drive prefix: a drive letter plus colon, a UNC
// server/share token, or the empty string.
func (p PurePath) Drive() string {
	return p.drive
}

// Root returns the root marker following the drive, or the empty string
// for a non-rooted path.
func (p PurePath) Root() string {
	return p.root
}

// Anchor returns the concatenation of drive and root, the non-relative
// prefix of the path.
func (p PurePath) Anchor() string {
	return p.drive + p.root
}

// Parts returns the path segments in root-to-leaf order, excluding drive
// and root. The returned slice is a copy.
func (p PurePath) Parts() []string {
	return slices.Clone(p.parts)
}

// Filename returns the last segment, or the empty string for a path with
// no segments.
func (p PurePath) Filename() string {
	if len(p.parts) == 0 {
		return ""
	}
	return p.parts[len(p.parts)-1]
}

// Basename returns the filename with its final extension removed.
func (p PurePath) Basename() string {
	name := p.Filename()
	return strings.TrimSuffix(name, p.Extension())
}

// Dirname returns the non-final segments joined with the flavor
// separator.
func (p PurePath) Dirname() string {
	if len(p.parts) < 2 {
		return ""
	}
	return strings.Join(p.parts[:len(p.parts)-1], string(p.fl.Separator))
}

// Extension returns the outermost suffix of the filename, including its
// leading dot, or the empty string.
func (p PurePath) Extension() string {
	exts := p.Extensions()
	if len(exts) == 0 {
		return ""
	}
	return exts[len(exts)-1]
}

// Extensions returns every suffix of the filename from innermost to
// outermost. A leading dot does not start an extension, so ".bashrc" has
// none.
func (p PurePath) Extensions() []string {
	name := p.Filename()
	if len(name) < 2 {
		return nil
	}
	segs := strings.Split(name[1:], ".")
	if len(segs) < 2 {
		return nil
	}
	exts := make([]string, 0, len(segs)-1)
	for _, seg := range segs[1:] {
		if seg == "" {
			continue
		}
		exts = append(exts, "."+seg)
	}
	return exts
}

// IsAbsolute reports whether the path is absolute. Under a drive-bearing
// flavor a path needs both a drive and a root to be absolute; a rooted
// path without a drive is only drive-relative.
func (p PurePath) IsAbsolute() bool {
	if p.fl.HasDrive {
		return p.drive != "" && p.root != ""
	}
	return p.root != ""
}

// IsReserved reports whether the filename is a reserved device name on
// this flavor, such as "NUL" or "con.txt" on Windows.
func (p PurePath) IsReserved() bool {
	return p.fl.IsReserved(p.Filename())
}

// String renders the path with the flavor's separator. The empty path
// renders as ".".
func (p PurePath) String() string {
	s := p.drive + p.root + strings.Join(p.parts, string(p.fl.Separator))
	if s == "" {
		return "."
	}
	return s
}

// ToPosix renders the path with forward slashes regardless of flavor.
func (p PurePath) ToPosix() string {
	s := p.String()
	if p.fl.Separator == '/' {
		return s
	}
	return strings.ReplaceAll(s, string(p.fl.Separator), "/")
}

// Equal reports structural equality: same flavor, and same drive, root,
// and segments under the flavor's case rules.
func (p PurePath) Equal(other PurePath) bool {
	if !p.fl.Same(other.fl) {
		return false
	}
	if p.root != other.root || !componentEqual(p.drive, other.drive, p.fl) {
		return false
	}
	if len(p.parts) != len(other.parts) {
		return false
	}
	for i, seg := range p.parts {
		if !componentEqual(seg, other.parts[i], p.fl) {
			return false
		}
	}
	return true
}

// Validate checks every segment against the flavor's reserved characters
// and reserved names. Parsing never fails, so this is the place a caller
// can ask whether the path would be legal on its platform.
func (p PurePath) Validate() error {
	for _, seg := range p.parts {
		if seg == ".." {
			continue
		}
		if p.fl.HasReservedChar(seg) {
			return patherrors.Newf(patherrors.ErrInvalidInput,
				"segment %q contains characters reserved on %s", seg, p.fl.Name)
		}
		if p.fl.IsReserved(seg) {
			return patherrors.Newf(patherrors.ErrInvalidInput,
				"segment %q is a reserved name on %s", seg, p.fl.Name)
		}
	}
	return nil
}

// Parent returns the path with its last segment removed. The parent of a
// path with no segments is the path itself.
func (p PurePath) Parent() PurePath {
	return p.ParentN(1)
}

// ParentN removes the last n segments, stopping at the anchor or empty
// path.
func (p PurePath) ParentN(n int) PurePath {
	if n <= 0 {
		return p.clone()
	}
	keep := len(p.parts) - n
	if keep < 0 {
		keep = 0
	}
	return PurePath{
		drive: p.drive,
		root:  p.root,
		parts: slices.Clone(p.parts[:keep]),
		fl:    p.fl,
	}
}

// Parents yields the ancestors of the path from most to least specific,
// ending at the root or empty path. The sequence is finite and may be
// ranged over more than once.
func (p PurePath) Parents() iter.Seq[PurePath] {
	return func(yield func(PurePath) bool) {
		for cur := p; len(cur.parts) > 0; {
			cur = cur.Parent()
			if !yield(cur) {
				return
			}
		}
	}
}

func (p PurePath) clone() PurePath {
	p.parts = slices.Clone(p.parts)
	return p
}

// componentEqual compares two components under the flavor's case rules.
func componentEqual(a, b string, fl flavor.Flavor) bool {
	if fl.CaseSensitive {
		return a == b
	}
	return strings.EqualFold(a, b)
}
