// Package purepath implements a cross-platform path value model: an
// immutable, flavor-aware representation of filesystem paths that can be
// parsed, decomposed, compared, joined, and rewritten without touching
// the filesystem.
//
// A PurePath is produced by Parse (or the Posix and Windows shorthands)
// and decomposes into a drive, a root marker, and ordered segments:
//
//	p := purepath.Windows(`C:\Users\ana\notes.txt`)
//	p.Drive()     // "C:"
//	p.Root()      // `\`
//	p.Parts()     // ["Users", "ana", "notes.txt"]
//	p.Extension() // ".txt"
//
// All operations are pure functions from inputs to a new value, so any
// PurePath may be used concurrently without synchronization. Paths of
// different flavors never mix in one operation; operations that combine
// two paths report a flavor mismatch instead of guessing.
//
// TrySafeJoin is the piece intended for untrusted input: it joins a
// relative fragment onto a trusted base with the guarantee that no ".."
// run in the fragment can resolve outside the base. Rejection is a
// normal result, not an error.
//
// Actual filesystem access lives in the filesystem package, which binds
// a PurePath to OS calls through its rendered string.
package purepath
