package purepath

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormCase folds the path to a canonical case using the undetermined
// locale. On a case-sensitive flavor this is the identity.
func (p PurePath) NormCase() PurePath {
	return p.NormCaseLocale(language.Und)
}

// NormCaseLocale folds the drive and every segment to lowercase using
// the given locale's case rules, so "FILE" under Turkish folds with a
// dotless i. The caser is built per call; there is no process-global
// folding state. The root marker contains only separators and is left
// untouched. Idempotent.
func (p PurePath) NormCaseLocale(tag language.Tag) PurePath {
	if p.fl.CaseSensitive {
		return p.clone()
	}
	lower := cases.Lower(tag)
	parts := make([]string, len(p.parts))
	for i, seg := range p.parts {
		parts[i] = lower.String(seg)
	}
	return PurePath{
		drive: lower.String(p.drive),
		root:  p.root,
		parts: parts,
		fl:    p.fl,
	}
}
