package purepath

import (
	"slices"
	"strings"

	"github.com/arthur-debert/purepath/pkg/patherrors"
)

// WithDirname replaces the non-final segments with the segments of
// dirname, leaving drive, root, and the filename unchanged. Any anchor
// carried by dirname is discarded.
func (p PurePath) WithDirname(dirname string) PurePath {
	d := Parse(dirname, p.fl)
	parts := slices.Clone(d.parts)
	if name := p.Filename(); name != "" {
		parts = append(parts, name)
	}
	return PurePath{drive: p.drive, root: p.root, parts: parts, fl: p.fl}
}

// WithFilename replaces the final segment. The path must already have a
// filename, and the new name must be a single legal component.
func (p PurePath) WithFilename(name string) (PurePath, error) {
	if p.Filename() == "" {
		return PurePath{}, patherrors.Newf(patherrors.ErrInvalidInput,
			"cannot set filename %q on %q: path has no filename", name, p)
	}
	if err := p.validateComponent(name); err != nil {
		return PurePath{}, err
	}
	parts := slices.Clone(p.parts)
	parts[len(parts)-1] = name
	return PurePath{drive: p.drive, root: p.root, parts: parts, fl: p.fl}, nil
}

// WithExtension replaces the final suffix of the filename. The extension
// must start with a dot; an empty extension removes the current suffix.
// A path without a filename cannot take an extension.
func (p PurePath) WithExtension(ext string) (PurePath, error) {
	name := p.Filename()
	if name == "" || name == ".." {
		return PurePath{}, patherrors.Newf(patherrors.ErrInvalidInput,
			"cannot set extension %q on %q: path has no filename", ext, p)
	}
	if ext != "" {
		if !strings.HasPrefix(ext, ".") || ext == "." {
			return PurePath{}, patherrors.Newf(patherrors.ErrInvalidInput,
				"extension %q must start with a dot", ext)
		}
		if err := p.validateComponent(ext[1:]); err != nil {
			return PurePath{}, err
		}
	}
	newName := strings.TrimSuffix(name, p.Extension()) + ext
	return p.WithFilename(newName)
}

// validateComponent rejects strings that cannot stand as one segment.
func (p PurePath) validateComponent(s string) error {
	if s == "" || s == "." || s == ".." {
		return patherrors.Newf(patherrors.ErrInvalidInput, "invalid path component %q", s)
	}
	if strings.IndexByte(s, p.fl.Separator) >= 0 ||
		(p.fl.AltSeparator != 0 && strings.IndexByte(s, p.fl.AltSeparator) >= 0) {
		return patherrors.Newf(patherrors.ErrInvalidInput,
			"component %q contains a separator", s)
	}
	if p.fl.HasReservedChar(s) {
		return patherrors.Newf(patherrors.ErrInvalidInput,
			"component %q contains characters reserved on %s", s, p.fl.Name)
	}
	return nil
}
