package purepath

import (
	"strings"

	"github.com/arthur-debert/purepath/pkg/patherrors"
)

// Match reports whether the path matches the glob pattern. "*" matches
// any run of characters within a single segment and "?" matches exactly
// one character; neither crosses a separator. Any other character
// matches itself, so unrecognized pattern syntax degrades to a literal
// match instead of failing.
//
// An anchored pattern (absolute, or carrying a drive) must match the
// whole path. A relative pattern matches a trailing run of the path's
// segments, so "*.txt" matches "/a/b/c.txt". Matching is
// case-insensitive on case-insensitive flavors.
func (p PurePath) Match(pattern string) bool {
	pat := Parse(pattern, p.fl)
	if pat.root != "" || pat.drive != "" {
		return p.fullMatch(pat)
	}
	if len(pat.parts) == 0 || len(pat.parts) > len(p.parts) {
		return false
	}
	offset := len(p.parts) - len(pat.parts)
	for i, seg := range pat.parts {
		if !matchSegment(seg, p.parts[offset+i], p.fl.CaseSensitive) {
			return false
		}
	}
	return true
}

// FullMatch requires the pattern to cover the entire path, anchor
// included, whether or not the pattern is anchored itself.
func (p PurePath) FullMatch(pattern string) bool {
	return p.fullMatch(Parse(pattern, p.fl))
}

func (p PurePath) fullMatch(pat PurePath) bool {
	if pat.root != p.root {
		return false
	}
	if !matchSegment(pat.drive, p.drive, p.fl.CaseSensitive) {
		return false
	}
	if len(pat.parts) != len(p.parts) {
		return false
	}
	for i, seg := range pat.parts {
		if !matchSegment(seg, p.parts[i], p.fl.CaseSensitive) {
			return false
		}
	}
	return true
}

// ValidatePattern rejects patterns no flavor could ever match. Pattern
// syntax itself is never an error; only a NUL byte is malformed.
func ValidatePattern(pattern string) error {
	if strings.ContainsRune(pattern, 0) {
		return patherrors.New(patherrors.ErrMalformedPattern, "pattern contains a NUL byte")
	}
	return nil
}

// matchSegment matches a single pattern segment against a single path
// segment using "*" and "?" wildcards with backtracking.
func matchSegment(pattern, name string, caseSensitive bool) bool {
	if !caseSensitive {
		pattern = strings.ToLower(pattern)
		name = strings.ToLower(name)
	}
	pat := []rune(pattern)
	str := []rune(name)

	pi, si := 0, 0
	starPi, starSi := -1, 0
	for si < len(str) {
		switch {
		case pi < len(pat) && (pat[pi] == '?' || pat[pi] == str[si]):
			pi++
			si++
		case pi < len(pat) && pat[pi] == '*':
			starPi, starSi = pi, si
			pi++
		case starPi >= 0:
			// Backtrack: let the last star consume one more rune.
			pi = starPi + 1
			starSi++
			si = starSi
		default:
			return false
		}
	}
	for pi < len(pat) && pat[pi] == '*' {
		pi++
	}
	return pi == len(pat)
}
