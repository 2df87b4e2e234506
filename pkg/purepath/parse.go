package purepath

import (
	"strings"

	"github.com/arthur-debert/purepath/pkg/flavor"
)

// Parse converts a raw path string into a PurePath under the given
// flavor. Parsing always succeeds: the empty string yields the "."
// path, and ".." segments are preserved literally since pure paths are
// lexical, never resolved against the filesystem.
//
// Alternate separators are normalized to the primary separator, runs of
// separators collapse, and trailing separators are ignored.
func Parse(raw string, fl flavor.Flavor) PurePath {
	s := fl.NormalizeSeparators(raw)

	var drive string
	if fl.HasDrive {
		drive, s = splitDrive(s, fl.Separator)
	}

	i := 0
	for i < len(s) && s[i] == fl.Separator {
		i++
	}
	var root string
	if i > 0 {
		root = string(fl.Separator)
	}

	var parts []string
	for _, seg := range strings.Split(s[i:], string(fl.Separator)) {
		if seg == "" || seg == "." {
			continue
		}
		parts = append(parts, seg)
	}

	return PurePath{drive: drive, root: root, parts: parts, fl: fl}
}

// splitDrive peels a drive-letter or UNC prefix off s. A UNC share is a
// single combined drive token: `\\server\share\x` splits into
// `\\server\share` and `\x`.
func splitDrive(s string, sep byte) (drive, rest string) {
	if len(s) >= 2 && isDriveLetter(s[0]) && s[1] == ':' {
		return s[:2], s[2:]
	}
	if len(s) >= 2 && s[0] == sep && s[1] == sep && (len(s) == 2 || s[2] != sep) {
		// UNC: scan the server name, then the share name.
		i := 2
		for i < len(s) && s[i] != sep {
			i++
		}
		if i == 2 {
			// No server name; treat the leading separators as a root.
			return "", s
		}
		if i == len(s) {
			return s, ""
		}
		j := i + 1
		for j < len(s) && s[j] != sep {
			j++
		}
		if j == i+1 {
			// Separator run with no share name.
			return s[:i], s[i:]
		}
		return s[:j], s[j:]
	}
	return "", s
}

func isDriveLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
