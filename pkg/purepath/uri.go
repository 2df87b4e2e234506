package purepath

import (
	"net/url"
	"strings"

	"github.com/arthur-debert/purepath/pkg/patherrors"
)

// ToURI renders the path as a file:// URI with percent-escaped segments.
// Drive-letter paths render as file:///C:/..., UNC paths place the
// server in the authority: file://server/share/.... Only absolute paths
// have a URI form.
func (p PurePath) ToURI() (string, error) {
	if !p.IsAbsolute() {
		return "", patherrors.Newf(patherrors.ErrNotAbsolute,
			"cannot express relative path %q as a URI", p)
	}

	var b strings.Builder
	b.WriteString("file://")
	if p.drive != "" {
		if len(p.drive) == 2 && p.drive[1] == ':' {
			b.WriteByte('/')
			b.WriteString(p.drive)
		} else {
			// UNC: \\server\share becomes authority + first segment.
			trimmed := strings.TrimLeft(p.drive, string(p.fl.Separator))
			for i, seg := range strings.Split(trimmed, string(p.fl.Separator)) {
				if i > 0 {
					b.WriteByte('/')
				}
				b.WriteString(url.PathEscape(seg))
			}
		}
	}
	for _, seg := range p.parts {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(seg))
	}
	if len(p.parts) == 0 {
		b.WriteByte('/')
	}
	return b.String(), nil
}
