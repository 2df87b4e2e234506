package purepath

import (
	"slices"

	"github.com/arthur-debert/purepath/pkg/patherrors"
)

// Join applies fragments left to right, each parsed under the receiver's
// flavor. An absolute fragment discards everything accumulated so far
// but keeps the earlier drive when it supplies none of its own; a
// fragment carrying a different drive resets the accumulated path. ".."
// segments are kept literally, never collapsed.
func (p PurePath) Join(fragments ...string) PurePath {
	acc := p.clone()
	for _, frag := range fragments {
		acc = acc.joinOne(Parse(frag, p.fl))
	}
	return acc
}

// JoinPath joins already-parsed paths onto the receiver. All operands
// must share the receiver's flavor.
func (p PurePath) JoinPath(others ...PurePath) (PurePath, error) {
	acc := p.clone()
	for _, other := range others {
		if !p.fl.Same(other.fl) {
			return PurePath{}, patherrors.Newf(patherrors.ErrFlavorMismatch,
				"cannot join %s path %q with %s path %q", p.fl.Name, p, other.fl.Name, other)
		}
		acc = acc.joinOne(other)
	}
	return acc, nil
}

func (p PurePath) joinOne(frag PurePath) PurePath {
	res := PurePath{fl: p.fl}
	switch {
	case frag.root != "":
		res.drive = p.drive
		if frag.drive != "" {
			res.drive = frag.drive
		}
		res.root = frag.root
		res.parts = slices.Clone(frag.parts)
	case frag.drive != "" && !componentEqual(frag.drive, p.drive, p.fl):
		// Drive-relative fragment on another drive resets the path.
		res.drive = frag.drive
		res.parts = slices.Clone(frag.parts)
	default:
		res.drive = p.drive
		res.root = p.root
		res.parts = append(slices.Clone(p.parts), frag.parts...)
	}
	return res
}

// TrySafeJoin joins an untrusted relative fragment onto a trusted base,
// guaranteeing the result cannot escape the base. The fragment is
// rejected when it is absolute, carries a drive, or contains a ".." run
// that would climb past the segments the fragment itself contributed.
// Rejection is an expected outcome on hostile input, so it is reported
// as ok == false rather than an error.
func (p PurePath) TrySafeJoin(fragment string) (result PurePath, ok bool) {
	return p.trySafeJoin(Parse(fragment, p.fl))
}

// TrySafeJoinPath is TrySafeJoin for an already-parsed fragment. A
// fragment of a different flavor is rejected.
func (p PurePath) TrySafeJoinPath(fragment PurePath) (result PurePath, ok bool) {
	if !p.fl.Same(fragment.fl) {
		return PurePath{}, false
	}
	return p.trySafeJoin(fragment)
}

func (p PurePath) trySafeJoin(frag PurePath) (PurePath, bool) {
	if frag.root != "" || frag.drive != "" {
		return PurePath{}, false
	}
	// Lexical resolution over the fragment's own segments only. The
	// stack starts empty, so any ".." that reaches the base boundary
	// fails the whole join instead of clamping.
	var stack []string
	for _, seg := range frag.parts {
		if seg == ".." {
			if len(stack) == 0 {
				return PurePath{}, false
			}
			stack = stack[:len(stack)-1]
			continue
		}
		stack = append(stack, seg)
	}
	return PurePath{
		drive: p.drive,
		root:  p.root,
		parts: append(slices.Clone(p.parts), stack...),
		fl:    p.fl,
	}, true
}
