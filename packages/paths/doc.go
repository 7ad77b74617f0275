// Package paths implements the path checks backing the fluent path
// assertions in packages/assert.
//
// Supported checks:
//   - Existence (following or not following symbolic links)
//   - File type (regular file, directory, symbolic link)
//   - Access (readable, writable, executable)
//   - Form (absolute, relative, normalized, canonical)
//   - Parent and ancestor relationships
//   - Component-wise prefix and suffix matching
//
// Checks come in two flavors. The normal flavor canonicalizes the tested
// path (and, where applicable, the argument) before comparing:
// canonicalization resolves the path against the working directory and
// follows symbolic links, and fails with a ResolveError when the path does
// not exist. The Raw flavor compares name components exactly as given and
// never touches the filesystem.
//
// Comparison is always component-wise, never textual: /home/foobar/baz does
// not start with /home/foo.
package paths
