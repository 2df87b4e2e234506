// Package flavor describes platform path rules as plain immutable values.
//
// A Flavor carries everything the pure path engine needs to know about a
// platform: separators, case sensitivity, drive syntax, and reserved
// names. The two real platforms are available via Posix() and Windows(),
// but nothing stops callers from constructing synthetic flavors for
// testing, since every engine operation takes the Flavor it was handed
// rather than consulting global platform state.
package flavor

import "strings"

// Flavor is a fixed descriptor of platform path rules. Flavors are
// compared by Name; two flavors with the same Name are treated as the
// same ruleset.
type Flavor struct {
	// Name identifies the ruleset ("posix", "windows", or a synthetic
	// name in tests).
	Name string

	// Separator is the primary path separator.
	Separator byte

	// AltSeparator is an optional secondary separator accepted on input
	// and normalized away. Zero means none.
	AltSeparator byte

	// CaseSensitive reports whether path comparisons distinguish case.
	CaseSensitive bool

	// HasDrive reports whether paths may carry a drive or UNC prefix.
	HasDrive bool

	// ReservedNames lists basenames that are illegal as filenames,
	// compared case-insensitively with any extension stripped.
	ReservedNames []string

	// ReservedChars contains characters illegal anywhere in a component.
	ReservedChars string
}

// Posix returns the POSIX path ruleset.
func Posix() Flavor {
	return Flavor{
		Name:          "posix",
		Separator:     '/',
		CaseSensitive: true,
		ReservedChars: "\x00",
	}
}

// Windows returns the Windows path ruleset.
func Windows() Flavor {
	return Flavor{
		Name:          "windows",
		Separator:     '\\',
		AltSeparator:  '/',
		CaseSensitive: false,
		HasDrive:      true,
		ReservedNames: []string{
			"CON", "PRN", "AUX", "NUL",
			"COM1", "COM2", "COM3", "COM4", "COM5", "COM6", "COM7", "COM8", "COM9",
			"LPT1", "LPT2", "LPT3", "LPT4", "LPT5", "LPT6", "LPT7", "LPT8", "LPT9",
		},
		ReservedChars: "\x00<>:\"|?*",
	}
}

// ByName returns the flavor registered under name, or false if the name
// is not a known platform.
func ByName(name string) (Flavor, bool) {
	switch strings.ToLower(name) {
	case "posix", "unix", "linux", "darwin":
		return Posix(), true
	case "windows", "nt":
		return Windows(), true
	}
	return Flavor{}, false
}

// Same reports whether two flavors describe the same ruleset.
func (f Flavor) Same(other Flavor) bool {
	return f.Name == other.Name
}

// IsSeparator reports whether c is this flavor's primary or alternate
// separator.
func (f Flavor) IsSeparator(c byte) bool {
	return c == f.Separator || (f.AltSeparator != 0 && c == f.AltSeparator)
}

// NormalizeSeparators replaces every alternate separator in s with the
// primary separator.
func (f Flavor) NormalizeSeparators(s string) string {
	if f.AltSeparator == 0 {
		return s
	}
	return strings.ReplaceAll(s, string(f.AltSeparator), string(f.Separator))
}

// IsReserved reports whether name is illegal as a filename on this
// flavor. The comparison is case-insensitive and ignores any extension,
// so "con.txt" is reserved on Windows.
func (f Flavor) IsReserved(name string) bool {
	if len(f.ReservedNames) == 0 || name == "" {
		return false
	}
	// Strip everything after the first dot past position zero so that
	// dotfiles keep their full name.
	if i := strings.IndexByte(name[1:], '.'); i >= 0 {
		name = name[:i+1]
	}
	for _, reserved := range f.ReservedNames {
		if strings.EqualFold(name, reserved) {
			return true
		}
	}
	return false
}

// HasReservedChar reports whether any character of the component is
// illegal on this flavor.
func (f Flavor) HasReservedChar(component string) bool {
	return strings.ContainsAny(component, f.ReservedChars)
}
