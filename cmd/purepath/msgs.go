package main

// Message constants
const (
	MsgRootShort = "Inspect and manipulate paths without touching the filesystem"
	MsgRootLong  = `purepath parses, joins, matches, and rewrites filesystem paths as pure
values. Nothing here reads the disk: every command works on path
structure alone, under either POSIX or Windows rules, on any host.`

	MsgParseShort   = "Parse a path into its structural components"
	MsgParseLong    = `Parse splits a path into drive, root, and segments under the selected
flavor and prints each component. Parsing never fails; hostile or
malformed input simply yields the structure it actually has.`
	MsgParseExample = `  # Parse a POSIX path
  purepath parse /var/log/syslog

  # Parse a Windows UNC path
  purepath --flavor windows parse '\\server\share\report.txt'`

	MsgJoinShort   = "Join path fragments onto a base"
	MsgJoinLong    = `Join applies each fragment left to right. An absolute fragment restarts
the path (keeping an earlier drive when the fragment has none); ".."
segments are kept literally, never collapsed.`
	MsgJoinExample = `  purepath join /etc nginx nginx.conf
  purepath --flavor windows join 'C:\Users' ana notes.txt`

	MsgSafeJoinShort   = "Join an untrusted fragment, rejecting traversal"
	MsgSafeJoinLong    = `SafeJoin joins a relative fragment onto a trusted base directory with a
containment guarantee: any ".." run that would climb out of the base
rejects the whole join, exiting non-zero. Use it as a guard when the
fragment comes from a request or other untrusted source.`
	MsgSafeJoinExample = `  # Succeeds: prints /srv/files/b
  purepath safejoin /srv/files 'a/../b'

  # Fails with a non-zero exit
  purepath safejoin /srv/files '../../etc/passwd'`

	MsgMatchShort   = "Match a path against a glob pattern"
	MsgMatchLong    = `Match tests a path against a glob pattern. "*" matches within one
segment and "?" matches one character. A relative pattern matches a
trailing run of segments; an anchored pattern must cover the whole
path. Matching is case-insensitive under the windows flavor.`
	MsgMatchExample = `  purepath match /a/b/c.txt '*.txt'
  purepath match /a/b/c.txt '/a/*/c.txt'
  purepath match /a/b/c.txt --full '*.txt'`

	MsgRelShort   = "Express a path relative to an ancestor"
	MsgRelLong    = `Rel strips an ancestor prefix from a path. The ancestor must be a
literal prefix of the path's drive, root, and segments; no ".."
walking is performed.`
	MsgRelExample = `  # Prints b/c
  purepath rel /a/b/c /a`

	MsgNormCaseShort   = "Fold a path to canonical case"
	MsgNormCaseLong    = `NormCase lowercases the drive and every segment on case-insensitive
flavors, using the given locale's folding rules. On posix paths it is
the identity.`
	MsgNormCaseExample = `  purepath --flavor windows normcase 'C:\Users\ANA'
  purepath --flavor windows normcase --locale tr 'C:\DIR'`

	MsgDocsShort = "Show extended documentation on a topic"
	MsgDocsLong  = `Docs renders the bundled documentation topics. Run without arguments
to list the available topics.`
)
