// Package filesystem binds pure path values to the host filesystem.
//
// The FS interface abstracts the OS calls the Path wrapper delegates to,
// so tests can substitute an in-memory implementation. Path itself is a
// thin forwarding layer: it renders its PurePath and hands the string to
// the FS, caching nothing between calls.
package filesystem
