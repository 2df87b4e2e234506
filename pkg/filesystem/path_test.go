package filesystem_test

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/purepath/pkg/filesystem"
	"github.com/arthur-debert/purepath/pkg/patherrors"
	"github.com/arthur-debert/purepath/pkg/purepath"
)

// memFS is an in-memory FS for tests. File content lives in a MapFS;
// symlinks, directory creation, and chmod calls are tracked separately
// so tests can assert on them.
type memFS struct {
	files  fstest.MapFS
	links  map[string]string
	chmods map[string]fs.FileMode
}

func newMemFS() *memFS {
	return &memFS{
		files:  fstest.MapFS{},
		links:  map[string]string{},
		chmods: map[string]fs.FileMode{},
	}
}

func (m *memFS) addFile(name, content string) {
	m.files[trimRoot(name)] = &fstest.MapFile{Data: []byte(content), Mode: 0o644}
}

func (m *memFS) addDir(name string) {
	m.files[trimRoot(name)] = &fstest.MapFile{Mode: fs.ModeDir | 0o755}
}

// trimRoot converts a rendered absolute path to the rooted-at-top form
// MapFS expects.
func trimRoot(name string) string {
	if len(name) > 0 && name[0] == '/' {
		name = name[1:]
	}
	if name == "" {
		return "."
	}
	return name
}

func (m *memFS) Stat(name string) (fs.FileInfo, error) {
	return fs.Stat(m.files, trimRoot(name))
}

func (m *memFS) Lstat(name string) (fs.FileInfo, error) {
	return m.Stat(name)
}

func (m *memFS) OpenFile(name string, flag int, perm fs.FileMode) (fs.File, error) {
	return m.files.Open(trimRoot(name))
}

func (m *memFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return fs.ReadDir(m.files, trimRoot(name))
}

func (m *memFS) MkdirAll(path string, perm fs.FileMode) error {
	m.files[trimRoot(path)] = &fstest.MapFile{Mode: fs.ModeDir | perm}
	return nil
}

func (m *memFS) Readlink(name string) (string, error) {
	target, ok := m.links[trimRoot(name)]
	if !ok {
		return "", fs.ErrNotExist
	}
	return target, nil
}

func (m *memFS) Chmod(name string, mode fs.FileMode) error {
	m.chmods[trimRoot(name)] = mode
	return nil
}

func TestPathExistence(t *testing.T) {
	fsys := newMemFS()
	fsys.addDir("/data")
	fsys.addFile("/data/file.txt", "hello")

	dir := filesystem.NewPath(purepath.Posix("/data"), fsys)
	file := filesystem.NewPath(purepath.Posix("/data/file.txt"), fsys)
	missing := filesystem.NewPath(purepath.Posix("/data/nope"), fsys)

	assert.True(t, dir.Exists())
	assert.True(t, dir.IsDir())
	assert.False(t, dir.IsFile())

	assert.True(t, file.Exists())
	assert.True(t, file.IsFile())
	assert.False(t, file.IsDir())

	assert.False(t, missing.Exists())
	assert.False(t, missing.IsFile())
	assert.False(t, missing.IsDir())
}

func TestPathStat(t *testing.T) {
	fsys := newMemFS()
	fsys.addFile("/data/file.txt", "hello")

	info, err := filesystem.NewPath(purepath.Posix("/data/file.txt"), fsys).Stat()
	require.NoError(t, err)
	assert.Equal(t, int64(5), info.Size())

	_, err = filesystem.NewPath(purepath.Posix("/missing"), fsys).Stat()
	assert.Error(t, err)
}

func TestPathReadDir(t *testing.T) {
	fsys := newMemFS()
	fsys.addFile("/data/a.txt", "")
	fsys.addFile("/data/b.txt", "")
	fsys.addDir("/data/sub")

	names, err := filesystem.NewPath(purepath.Posix("/data"), fsys).ReadDir()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt", "sub"}, names)
}

func TestPathOpen(t *testing.T) {
	fsys := newMemFS()
	fsys.addFile("/data/file.txt", "hello")

	f, err := filesystem.NewPath(purepath.Posix("/data/file.txt"), fsys).Open()
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	buf := make([]byte, 5)
	n, err := f.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(buf[:n]))
}

func TestPathMkdirAll(t *testing.T) {
	fsys := newMemFS()
	p := filesystem.NewPath(purepath.Posix("/new/deep/dir"), fsys)

	require.NoError(t, p.MkdirAll(0o755))
	assert.True(t, p.IsDir())
}

func TestPathReadlink(t *testing.T) {
	fsys := newMemFS()
	fsys.links["data/link"] = "/target/file"

	target, err := filesystem.NewPath(purepath.Posix("/data/link"), fsys).Readlink()
	require.NoError(t, err)
	assert.Equal(t, "/target/file", target.String())
	assert.Equal(t, "posix", target.Flavor().Name)

	_, err = filesystem.NewPath(purepath.Posix("/data/other"), fsys).Readlink()
	assert.Error(t, err)
}

func TestPathChmod(t *testing.T) {
	fsys := newMemFS()
	fsys.addFile("/data/file.txt", "")

	p := filesystem.NewPath(purepath.Posix("/data/file.txt"), fsys)
	require.NoError(t, p.Chmod(0o600))
	assert.Equal(t, fs.FileMode(0o600), fsys.chmods["data/file.txt"])

	// Permission modes have no meaning for drive-based paths.
	win := filesystem.NewPath(purepath.Windows(`C:\data\file.txt`), fsys)
	err := win.Chmod(0o600)
	require.Error(t, err)
	assert.True(t, patherrors.IsErrorCode(err, patherrors.ErrUnsupported))
}

func TestPathJoin(t *testing.T) {
	fsys := newMemFS()
	fsys.addFile("/data/sub/file.txt", "x")

	base := filesystem.NewPath(purepath.Posix("/data"), fsys)

	joined := base.Join("sub", "file.txt")
	assert.Equal(t, "/data/sub/file.txt", joined.String())
	assert.True(t, joined.IsFile(), "joined path should share the base's filesystem")

	safe, ok := base.TrySafeJoin("sub/file.txt")
	require.True(t, ok)
	assert.True(t, safe.IsFile())

	_, ok = base.TrySafeJoin("../../etc/passwd")
	assert.False(t, ok)
}

func TestNewPathDefaultsToOS(t *testing.T) {
	p := filesystem.NewPath(purepath.Posix("/definitely/not/a/real/path/bJkQz"), nil)
	assert.False(t, p.Exists())
}
