package purepath

import (
	"slices"

	"github.com/arthur-debert/purepath/pkg/patherrors"
)

// RelativeTo returns the path relative to ancestor. The ancestor must be
// a literal prefix of the path's drive, root, and segments under the
// flavor's case rules; no ".." walking is performed. The result has an
// empty drive and root.
func (p PurePath) RelativeTo(ancestor PurePath) (PurePath, error) {
	if !p.fl.Same(ancestor.fl) {
		return PurePath{}, patherrors.Newf(patherrors.ErrFlavorMismatch,
			"cannot relativize %s path %q against %s path %q",
			p.fl.Name, p, ancestor.fl.Name, ancestor)
	}
	if p.root != ancestor.root || !componentEqual(p.drive, ancestor.drive, p.fl) {
		return PurePath{}, patherrors.Newf(patherrors.ErrNotRelative,
			"%q does not share the anchor of %q", p, ancestor)
	}
	if len(ancestor.parts) > len(p.parts) {
		return PurePath{}, patherrors.Newf(patherrors.ErrNotRelative,
			"%q is not a prefix of %q", ancestor, p)
	}
	for i, seg := range ancestor.parts {
		if !componentEqual(seg, p.parts[i], p.fl) {
			return PurePath{}, patherrors.Newf(patherrors.ErrNotRelative,
				"%q is not a prefix of %q", ancestor, p)
		}
	}
	return PurePath{
		parts: slices.Clone(p.parts[len(ancestor.parts):]),
		fl:    p.fl,
	}, nil
}

// IsRelativeTo reports whether RelativeTo would succeed.
func (p PurePath) IsRelativeTo(ancestor PurePath) bool {
	_, err := p.RelativeTo(ancestor)
	return err == nil
}

// Relative strips the drive and root unconditionally, keeping the
// segments unchanged.
func (p PurePath) Relative() PurePath {
	return PurePath{parts: slices.Clone(p.parts), fl: p.fl}
}
