package purepath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/purepath/pkg/patherrors"
	"github.com/arthur-debert/purepath/pkg/purepath"
)

func TestWithDirname(t *testing.T) {
	tests := []struct {
		name    string
		path    purepath.PurePath
		dirname string
		want    string
	}{
		{
			name:    "replace directory",
			path:    purepath.Posix("/a/b/file.txt"),
			dirname: "x/y",
			want:    "/x/y/file.txt",
		},
		{
			name:    "empty dirname keeps only filename",
			path:    purepath.Posix("/a/b/file.txt"),
			dirname: "",
			want:    "/file.txt",
		},
		{
			name:    "anchor of dirname is discarded",
			path:    purepath.Posix("a/file.txt"),
			dirname: "/abs/dir",
			want:    "abs/dir/file.txt",
		},
		{
			name:    "drive survives",
			path:    purepath.Windows(`C:\old\f.txt`),
			dirname: `new\deep`,
			want:    `C:\new\deep\f.txt`,
		},
		{
			name:    "path without filename gains only dirname",
			path:    purepath.Posix("/"),
			dirname: "a/b",
			want:    "/a/b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.path.WithDirname(tt.dirname).String())
		})
	}
}

func TestWithFilename(t *testing.T) {
	p, err := purepath.Posix("/a/b/old.txt").WithFilename("new.md")
	require.NoError(t, err)
	assert.Equal(t, "/a/b/new.md", p.String())

	t.Run("requires an existing filename", func(t *testing.T) {
		_, err := purepath.Posix("/").WithFilename("f")
		require.Error(t, err)
		assert.True(t, patherrors.IsErrorCode(err, patherrors.ErrInvalidInput))
	})

	t.Run("rejects bad components", func(t *testing.T) {
		for _, bad := range []string{"", ".", "..", "a/b"} {
			_, err := purepath.Posix("/a/f").WithFilename(bad)
			assert.Error(t, err, "component %q", bad)
		}
	})

	t.Run("rejects flavor-reserved characters", func(t *testing.T) {
		_, err := purepath.Windows(`C:\a\f`).WithFilename("a<b")
		require.Error(t, err)

		// The same name is fine where nothing reserves those characters.
		p, err := purepath.Posix("/a/f").WithFilename("a<b")
		require.NoError(t, err)
		assert.Equal(t, "/a/a<b", p.String())
	})

	t.Run("rejects separators of either kind", func(t *testing.T) {
		_, err := purepath.Windows(`C:\a\f`).WithFilename(`x\y`)
		assert.Error(t, err)
		_, err = purepath.Windows(`C:\a\f`).WithFilename("x/y")
		assert.Error(t, err)
	})
}

func TestWithExtension(t *testing.T) {
	tests := []struct {
		name    string
		path    purepath.PurePath
		ext     string
		want    string
		wantErr bool
	}{
		{
			name: "replace extension",
			path: purepath.Posix("/a/report.txt"),
			ext:  ".md",
			want: "/a/report.md",
		},
		{
			name: "add extension",
			path: purepath.Posix("/a/report"),
			ext:  ".txt",
			want: "/a/report.txt",
		},
		{
			name: "remove extension",
			path: purepath.Posix("/a/report.txt"),
			ext:  "",
			want: "/a/report",
		},
		{
			name: "only innermost suffix is replaced",
			path: purepath.Posix("/a/archive.tar.gz"),
			ext:  ".bz2",
			want: "/a/archive.tar.bz2",
		},
		{
			name: "dotfile gains an extension",
			path: purepath.Posix("/home/.bashrc"),
			ext:  ".bak",
			want: "/home/.bashrc.bak",
		},
		{
			name:    "must start with a dot",
			path:    purepath.Posix("/a/f"),
			ext:     "txt",
			wantErr: true,
		},
		{
			name:    "bare dot rejected",
			path:    purepath.Posix("/a/f"),
			ext:     ".",
			wantErr: true,
		},
		{
			name:    "no filename to extend",
			path:    purepath.Posix("/"),
			ext:     ".txt",
			wantErr: true,
		},
		{
			name:    "dotdot has no extension slot",
			path:    purepath.Posix("a/.."),
			ext:     ".txt",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.path.WithExtension(tt.ext)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, patherrors.IsErrorCode(err, patherrors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}
