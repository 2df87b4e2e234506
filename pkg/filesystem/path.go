package filesystem

import (
	"io/fs"
	"os"

	"github.com/arthur-debert/purepath/pkg/logging"
	"github.com/arthur-debert/purepath/pkg/patherrors"
	"github.com/arthur-debert/purepath/pkg/purepath"
)

// Path binds a PurePath to filesystem operations. It holds no cached
// state: every call renders the pure value and asks the FS, so there is
// nothing to invalidate and nothing to lock. Filesystem errors propagate
// unchanged.
type Path struct {
	pure purepath.PurePath
	fsys FS
}

// NewPath binds pure to the given filesystem. A nil fsys binds to the
// host OS.
func NewPath(pure purepath.PurePath, fsys FS) Path {
	if fsys == nil {
		fsys = NewOS()
	}
	return Path{pure: pure, fsys: fsys}
}

// Pure returns the underlying pure path value.
func (p Path) Pure() purepath.PurePath {
	return p.pure
}

// String returns the rendered path handed to the filesystem.
func (p Path) String() string {
	return p.pure.String()
}

// Exists reports whether the path exists.
func (p Path) Exists() bool {
	_, err := p.fsys.Stat(p.pure.String())
	return err == nil
}

// IsFile reports whether the path exists and is a regular file.
func (p Path) IsFile() bool {
	info, err := p.fsys.Stat(p.pure.String())
	return err == nil && info.Mode().IsRegular()
}

// IsDir reports whether the path exists and is a directory.
func (p Path) IsDir() bool {
	info, err := p.fsys.Stat(p.pure.String())
	return err == nil && info.IsDir()
}

// Stat returns the file info for the path.
func (p Path) Stat() (fs.FileInfo, error) {
	return p.fsys.Stat(p.pure.String())
}

// ReadDir lists the names of the entries in the directory.
func (p Path) ReadDir() ([]string, error) {
	logger := logging.GetLogger("filesystem")
	entries, err := p.fsys.ReadDir(p.pure.String())
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name()
	}
	logger.Debug().Str("path", p.pure.String()).Int("entries", len(names)).Msg("Listed directory")
	return names, nil
}

// MkdirAll creates the directory and any missing ancestors.
func (p Path) MkdirAll(perm fs.FileMode) error {
	return p.fsys.MkdirAll(p.pure.String(), perm)
}

// Open opens the file for reading.
func (p Path) Open() (fs.File, error) {
	return p.fsys.OpenFile(p.pure.String(), os.O_RDONLY, 0)
}

// OpenFile opens the file with the given flag and permissions.
func (p Path) OpenFile(flag int, perm fs.FileMode) (fs.File, error) {
	return p.fsys.OpenFile(p.pure.String(), flag, perm)
}

// Readlink returns the target of a symlink as a path parsed under the
// same flavor.
func (p Path) Readlink() (purepath.PurePath, error) {
	target, err := p.fsys.Readlink(p.pure.String())
	if err != nil {
		return purepath.PurePath{}, err
	}
	return purepath.Parse(target, p.pure.Flavor()), nil
}

// Chmod changes the permission mode. Permission modes have no meaning
// under the Windows flavor, which is reported explicitly rather than
// silently ignored.
func (p Path) Chmod(mode fs.FileMode) error {
	if p.pure.Flavor().HasDrive {
		return patherrors.Newf(patherrors.ErrUnsupported,
			"permission modes are not supported on %s paths", p.pure.Flavor().Name)
	}
	return p.fsys.Chmod(p.pure.String(), mode)
}

// Join derives a new bound path from the pure join of fragments.
func (p Path) Join(fragments ...string) Path {
	return Path{pure: p.pure.Join(fragments...), fsys: p.fsys}
}

// TrySafeJoin derives a new bound path from the traversal-safe join of
// an untrusted fragment.
func (p Path) TrySafeJoin(fragment string) (Path, bool) {
	joined, ok := p.pure.TrySafeJoin(fragment)
	if !ok {
		return Path{}, false
	}
	return Path{pure: joined, fsys: p.fsys}, true
}
