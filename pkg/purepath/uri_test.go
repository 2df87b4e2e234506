package purepath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/purepath/pkg/patherrors"
	"github.com/arthur-debert/purepath/pkg/purepath"
)

func TestToURI(t *testing.T) {
	tests := []struct {
		name string
		path purepath.PurePath
		want string
	}{
		{
			name: "posix absolute",
			path: purepath.Posix("/home/ana/file.txt"),
			want: "file:///home/ana/file.txt",
		},
		{
			name: "posix root",
			path: purepath.Posix("/"),
			want: "file:///",
		},
		{
			name: "segments are escaped",
			path: purepath.Posix("/home/ana/my file.txt"),
			want: "file:///home/ana/my%20file.txt",
		},
		{
			name: "drive letter",
			path: purepath.Windows(`C:\Users\ana`),
			want: "file:///C:/Users/ana",
		},
		{
			name: "drive root",
			path: purepath.Windows(`C:\`),
			want: "file:///C:/",
		},
		{
			name: "unc authority",
			path: purepath.Windows(`\\server\share\dir\f.txt`),
			want: "file://server/share/dir/f.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.path.ToURI()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToURIRequiresAbsolute(t *testing.T) {
	for _, p := range []purepath.PurePath{
		purepath.Posix("rel/path"),
		purepath.Windows(`C:rel`),
		purepath.Windows(`\rooted-but-driveless`),
	} {
		_, err := p.ToURI()
		require.Error(t, err, "path %q", p)
		assert.True(t, patherrors.IsErrorCode(err, patherrors.ErrNotAbsolute))
	}
}
