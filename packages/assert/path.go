package assert

import (
	"testing"

	"github.com/abdul-hamid-achik/assertkit/packages/describe"
	"github.com/abdul-hamid-achik/assertkit/packages/paths"
)

// PathAssert holds fluent assertions on a filesystem path.
//
// Assertions come in two flavors. The normal flavor canonicalizes the
// tested path (and, where applicable, the argument) before comparing:
// symbolic links are followed and relative paths resolve against the
// working directory, so the tested path must exist. The Raw flavor
// (HasParentRaw, StartsWithRaw, ...) compares name components exactly as
// given and never touches the filesystem.
type PathAssert struct {
	base
	actual string
}

// Path starts a fluent assertion chain on a filesystem path.
func Path(t testing.TB, actual string) *PathAssert {
	return &PathAssert{base: base{t: t}, actual: actual}
}

// As attaches a description prefixed to every failure message.
func (a *PathAssert) As(label string) *PathAssert {
	a.d = describe.New(label)
	return a
}

// Must makes subsequent failures fatal to the test.
func (a *PathAssert) Must() *PathAssert {
	a.fatal = true
	return a
}

// Exists asserts that the path exists, following symbolic links: a
// symlink whose target is missing fails.
func (a *PathAssert) Exists() *PathAssert {
	a.t.Helper()
	a.check(paths.AssertExists(a.d, a.actual))
	return a
}

// ExistsNoFollowLinks asserts that the path exists without following
// symbolic links, so a dangling symlink still passes.
func (a *PathAssert) ExistsNoFollowLinks() *PathAssert {
	a.t.Helper()
	a.check(paths.AssertExistsNoFollowLinks(a.d, a.actual))
	return a
}

// DoesNotExist asserts that the path does not exist. Symbolic links are
// not followed: a dangling symlink counts as existing and fails.
func (a *PathAssert) DoesNotExist() *PathAssert {
	a.t.Helper()
	a.check(paths.AssertDoesNotExist(a.d, a.actual))
	return a
}

// IsRegularFile asserts that the path exists and is a regular file,
// following symbolic links.
func (a *PathAssert) IsRegularFile() *PathAssert {
	a.t.Helper()
	a.check(paths.AssertIsRegularFile(a.d, a.actual))
	return a
}

// IsDirectory asserts that the path exists and is a directory, following
// symbolic links.
func (a *PathAssert) IsDirectory() *PathAssert {
	a.t.Helper()
	a.check(paths.AssertIsDirectory(a.d, a.actual))
	return a
}

// IsSymbolicLink asserts that the path is a symbolic link, whether or not
// its target exists.
func (a *PathAssert) IsSymbolicLink() *PathAssert {
	a.t.Helper()
	a.check(paths.AssertIsSymbolicLink(a.d, a.actual))
	return a
}

// IsReadable asserts that the path exists and the current process may
// read it.
func (a *PathAssert) IsReadable() *PathAssert {
	a.t.Helper()
	a.check(paths.AssertIsReadable(a.d, a.actual))
	return a
}

// IsWritable asserts that the path exists and the current process may
// write it.
func (a *PathAssert) IsWritable() *PathAssert {
	a.t.Helper()
	a.check(paths.AssertIsWritable(a.d, a.actual))
	return a
}

// IsExecutable asserts that the path exists and the current process may
// execute (or traverse) it.
func (a *PathAssert) IsExecutable() *PathAssert {
	a.t.Helper()
	a.check(paths.AssertIsExecutable(a.d, a.actual))
	return a
}

// IsAbsolute asserts that the path is absolute. An absolute path is not
// necessarily normalized: /foo/.. is absolute.
func (a *PathAssert) IsAbsolute() *PathAssert {
	a.t.Helper()
	a.check(paths.AssertIsAbsolute(a.d, a.actual))
	return a
}

// IsRelative asserts that the path is not absolute.
func (a *PathAssert) IsRelative() *PathAssert {
	a.t.Helper()
	a.check(paths.AssertIsRelative(a.d, a.actual))
	return a
}

// IsNormalized asserts that the path has no redundant name components.
func (a *PathAssert) IsNormalized() *PathAssert {
	a.t.Helper()
	a.check(paths.AssertIsNormalized(a.d, a.actual))
	return a
}

// IsCanonical asserts that the path, resolved against the working
// directory, is its own real path: no element of it is a symbolic link.
func (a *PathAssert) IsCanonical() *PathAssert {
	a.t.Helper()
	a.check(paths.AssertIsCanonical(a.d, a.actual))
	return a
}

// HasParent asserts that the canonicalized path has the canonicalized
// expected path as its parent. Both paths must exist.
func (a *PathAssert) HasParent(expected string) *PathAssert {
	a.t.Helper()
	a.check(paths.AssertHasParent(a.d, a.actual, expected))
	return a
}

// HasParentRaw asserts the parent relationship on name components alone:
// the raw parent of /usr/.. is /usr.
func (a *PathAssert) HasParentRaw(expected string) *PathAssert {
	a.t.Helper()
	a.check(paths.AssertHasParentRaw(a.d, a.actual, expected))
	return a
}

// HasNoParent asserts that the canonicalized path has no parent.
func (a *PathAssert) HasNoParent() *PathAssert {
	a.t.Helper()
	a.check(paths.AssertHasNoParent(a.d, a.actual))
	return a
}

// HasNoParentRaw asserts on name components alone that the path has no
// parent.
func (a *PathAssert) HasNoParentRaw() *PathAssert {
	a.t.Helper()
	a.check(paths.AssertHasNoParentRaw(a.d, a.actual))
	return a
}

// StartsWith asserts that the canonicalized path begins with the
// components of the canonicalized other path.
func (a *PathAssert) StartsWith(other string) *PathAssert {
	a.t.Helper()
	a.check(paths.AssertStartsWith(a.d, a.actual, other))
	return a
}

// StartsWithRaw asserts the component prefix as given: /../home/foo does
// not start with /home.
func (a *PathAssert) StartsWithRaw(other string) *PathAssert {
	a.t.Helper()
	a.check(paths.AssertStartsWithRaw(a.d, a.actual, other))
	return a
}

// EndsWith asserts that the canonicalized path ends with the components
// of the normalized other path.
func (a *PathAssert) EndsWith(other string) *PathAssert {
	a.t.Helper()
	a.check(paths.AssertEndsWith(a.d, a.actual, other))
	return a
}

// EndsWithRaw asserts the component suffix as given: /home/foo does not
// end with foo/. .
func (a *PathAssert) EndsWithRaw(other string) *PathAssert {
	a.t.Helper()
	a.check(paths.AssertEndsWithRaw(a.d, a.actual, other))
	return a
}

// HasFileName asserts that the last name component equals the expected
// name.
func (a *PathAssert) HasFileName(expected string) *PathAssert {
	a.t.Helper()
	a.check(paths.AssertHasFileName(a.d, a.actual, expected))
	return a
}
