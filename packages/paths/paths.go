package paths

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/abdul-hamid-achik/assertkit/packages/describe"
	"github.com/abdul-hamid-achik/assertkit/packages/failures"
)

// ResolveError reports an I/O failure while canonicalizing a path. It is
// distinct from an assertion failure: the check could not be performed at
// all, typically because the path does not exist.
type ResolveError struct {
	Path string
	Err  error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("failed to resolve path %q: %v", e.Path, e.Err)
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}

// Canonicalize resolves a path against the working directory and follows
// symbolic links, returning the resolved absolute path. The path must exist.
func Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &ResolveError{Path: path, Err: err}
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", &ResolveError{Path: path, Err: err}
	}
	return resolved, nil
}

// AssertExists checks that the path exists, following symbolic links: a
// symlink whose target is missing does not exist.
func AssertExists(d describe.Description, actual string) error {
	if _, err := os.Stat(actual); err != nil {
		return failures.Failure(d, failures.ShouldExist(actual))
	}
	return nil
}

// AssertExistsNoFollowLinks checks that the path exists without following
// symbolic links: a dangling symlink still exists.
func AssertExistsNoFollowLinks(d describe.Description, actual string) error {
	if _, err := os.Lstat(actual); err != nil {
		return failures.Failure(d, failures.ShouldExistNoFollowLinks(actual))
	}
	return nil
}

// AssertDoesNotExist checks that the path does not exist. Symbolic links
// are not followed, so a dangling symlink counts as existing.
func AssertDoesNotExist(d describe.Description, actual string) error {
	if _, err := os.Lstat(actual); err != nil && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return failures.Failure(d, failures.ShouldNotExist(actual))
}

// AssertIsRegularFile checks that the path exists and is a regular file,
// following symbolic links.
func AssertIsRegularFile(d describe.Description, actual string) error {
	info, err := os.Stat(actual)
	if err != nil {
		return failures.Failure(d, failures.ShouldExist(actual))
	}
	if !info.Mode().IsRegular() {
		return failures.Failure(d, failures.ShouldBeRegularFile(actual))
	}
	return nil
}

// AssertIsDirectory checks that the path exists and is a directory,
// following symbolic links.
func AssertIsDirectory(d describe.Description, actual string) error {
	info, err := os.Stat(actual)
	if err != nil {
		return failures.Failure(d, failures.ShouldExist(actual))
	}
	if !info.IsDir() {
		return failures.Failure(d, failures.ShouldBeDirectory(actual))
	}
	return nil
}

// AssertIsSymbolicLink checks that the path exists (without following
// links) and is a symbolic link.
func AssertIsSymbolicLink(d describe.Description, actual string) error {
	info, err := os.Lstat(actual)
	if err != nil {
		return failures.Failure(d, failures.ShouldExistNoFollowLinks(actual))
	}
	if info.Mode()&os.ModeSymlink == 0 {
		return failures.Failure(d, failures.ShouldBeSymbolicLink(actual))
	}
	return nil
}

// AssertIsReadable checks that the path exists and can be opened for
// reading by the current process.
func AssertIsReadable(d describe.Description, actual string) error {
	if err := AssertExists(d, actual); err != nil {
		return err
	}
	if !canRead(actual) {
		return failures.Failure(d, failures.ShouldBeReadable(actual))
	}
	return nil
}

// AssertIsWritable checks that the path exists and can be written by the
// current process.
func AssertIsWritable(d describe.Description, actual string) error {
	if err := AssertExists(d, actual); err != nil {
		return err
	}
	if !canWrite(actual) {
		return failures.Failure(d, failures.ShouldBeWritable(actual))
	}
	return nil
}

// AssertIsExecutable checks that the path exists and can be executed (or,
// for directories, traversed) by the current process.
func AssertIsExecutable(d describe.Description, actual string) error {
	if err := AssertExists(d, actual); err != nil {
		return err
	}
	if !canExecute(actual) {
		return failures.Failure(d, failures.ShouldBeExecutable(actual))
	}
	return nil
}

// AssertIsAbsolute checks that the path is absolute. An absolute path is
// not necessarily normalized: /foo/.. is absolute.
func AssertIsAbsolute(d describe.Description, actual string) error {
	if !filepath.IsAbs(actual) {
		return failures.Failure(d, failures.ShouldBeAbsolute(actual))
	}
	return nil
}

// AssertIsRelative checks that the path is not absolute.
func AssertIsRelative(d describe.Description, actual string) error {
	if filepath.IsAbs(actual) {
		return failures.Failure(d, failures.ShouldBeRelative(actual))
	}
	return nil
}

// AssertIsNormalized checks that the path has no redundant components: no
// "." elements, and ".." only in a leading run on a relative path.
func AssertIsNormalized(d describe.Description, actual string) error {
	c := split(actual)
	if !c.equal(c.normalize()) {
		return failures.Failure(d, failures.ShouldBeNormalized(actual))
	}
	return nil
}

// AssertIsCanonical checks that the path, resolved against the working
// directory, is its own resolved path: no element of it is a symbolic link.
func AssertIsCanonical(d describe.Description, actual string) error {
	abs, err := filepath.Abs(actual)
	if err != nil {
		return &ResolveError{Path: actual, Err: err}
	}
	resolved, err := Canonicalize(actual)
	if err != nil {
		return err
	}
	if resolved != abs {
		return failures.Failure(d, failures.ShouldBeCanonical(actual))
	}
	return nil
}

// AssertHasParent checks that the canonicalized path has the canonicalized
// expected path as its parent. Both paths must exist.
func AssertHasParent(d describe.Description, actual, expected string) error {
	canonActual, err := Canonicalize(actual)
	if err != nil {
		return err
	}
	canonExpected, err := Canonicalize(expected)
	if err != nil {
		return err
	}
	parent, ok := split(canonActual).parent()
	if !ok || !parent.equal(split(canonExpected)) {
		return failures.Failure(d, failures.ShouldHaveParent(actual, expected))
	}
	return nil
}

// AssertHasParentRaw checks the parent relationship on name components
// alone, with no canonicalization and no filesystem access. The parent of
// /usr/.. is /usr.
func AssertHasParentRaw(d describe.Description, actual, expected string) error {
	parent, ok := split(actual).parent()
	if !ok || !parent.equal(split(expected)) {
		return failures.Failure(d, failures.ShouldHaveParent(actual, expected))
	}
	return nil
}

// AssertHasNoParent checks that the canonicalized path has no parent. The
// path must exist.
func AssertHasNoParent(d describe.Description, actual string) error {
	canon, err := Canonicalize(actual)
	if err != nil {
		return err
	}
	if parent, ok := split(canon).parent(); ok {
		return failures.Failure(d, failures.ShouldHaveNoParent(actual, parent.join()))
	}
	return nil
}

// AssertHasNoParentRaw checks on name components alone that the path has
// no parent.
func AssertHasNoParentRaw(d describe.Description, actual string) error {
	if parent, ok := split(actual).parent(); ok {
		return failures.Failure(d, failures.ShouldHaveNoParent(actual, parent.join()))
	}
	return nil
}

// AssertStartsWith checks that the canonicalized path begins with the
// components of the canonicalized other path. Both paths must exist.
func AssertStartsWith(d describe.Description, actual, other string) error {
	canonActual, err := Canonicalize(actual)
	if err != nil {
		return err
	}
	canonOther, err := Canonicalize(other)
	if err != nil {
		return err
	}
	if !split(canonActual).startsWith(split(canonOther)) {
		return failures.Failure(d, failures.ShouldStartWith(actual, other))
	}
	return nil
}

// AssertStartsWithRaw checks the component prefix as given: /../home/foo
// does not start with /home.
func AssertStartsWithRaw(d describe.Description, actual, other string) error {
	if !split(actual).startsWith(split(other)) {
		return failures.Failure(d, failures.ShouldStartWith(actual, other))
	}
	return nil
}

// AssertEndsWith checks that the canonicalized path ends with the
// components of the normalized other path. The tested path must exist; the
// other path is only normalized, never resolved.
func AssertEndsWith(d describe.Description, actual, other string) error {
	canonActual, err := Canonicalize(actual)
	if err != nil {
		return err
	}
	if !split(canonActual).endsWith(split(other).normalize()) {
		return failures.Failure(d, failures.ShouldEndWith(actual, other))
	}
	return nil
}

// AssertEndsWithRaw checks the component suffix as given: /home/foo does
// not end with foo/. since the last elements differ.
func AssertEndsWithRaw(d describe.Description, actual, other string) error {
	if !split(actual).endsWith(split(other)) {
		return failures.Failure(d, failures.ShouldEndWith(actual, other))
	}
	return nil
}

// AssertHasFileName checks that the last name element of the path equals
// the expected name. No normalization: the file name of /foo/. is ".".
func AssertHasFileName(d describe.Description, actual, expected string) error {
	name, ok := split(actual).fileName()
	if !ok || name != expected {
		return failures.Failure(d, failures.ShouldHaveFileName(actual, expected))
	}
	return nil
}
