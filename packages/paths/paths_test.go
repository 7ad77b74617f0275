package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/abdul-hamid-achik/assertkit/packages/describe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var noDesc = describe.Description{}

// fixture builds a directory with a regular file, a subdirectory, and
// symlinks to each plus a dangling one. The returned root is fully
// resolved so canonical comparisons are stable even when the system temp
// directory is itself behind a symlink.
type fixture struct {
	root       string
	file       string
	dir        string
	fileLink   string
	dirLink    string
	brokenLink string
	missing    string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fixture requires symlinks")
	}

	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	f := &fixture{
		root:       root,
		file:       filepath.Join(root, "somefile"),
		dir:        filepath.Join(root, "somedir"),
		fileLink:   filepath.Join(root, "filelink"),
		dirLink:    filepath.Join(root, "dirlink"),
		brokenLink: filepath.Join(root, "brokenlink"),
		missing:    filepath.Join(root, "nonexistent"),
	}

	require.NoError(t, os.WriteFile(f.file, []byte("content"), 0o644))
	require.NoError(t, os.Mkdir(f.dir, 0o755))
	require.NoError(t, os.Symlink(f.file, f.fileLink))
	require.NoError(t, os.Symlink(f.dir, f.dirLink))
	require.NoError(t, os.Symlink(f.missing, f.brokenLink))
	return f
}

func TestAssertExists(t *testing.T) {
	f := newFixture(t)

	assert.NoError(t, AssertExists(noDesc, f.file))
	assert.NoError(t, AssertExists(noDesc, f.fileLink))

	err := AssertExists(noDesc, f.missing)
	require.Error(t, err)
	assert.Equal(t, "expecting path:<"+f.missing+"> to exist", err.Error())

	// Symbolic links are followed: a dangling link does not exist.
	assert.Error(t, AssertExists(noDesc, f.brokenLink))
}

func TestAssertExists_WithDescription(t *testing.T) {
	f := newFixture(t)

	err := AssertExists(describe.New("Test"), f.missing)
	require.Error(t, err)
	assert.Equal(t, "[Test] expecting path:<"+f.missing+"> to exist", err.Error())
}

func TestAssertExistsNoFollowLinks(t *testing.T) {
	f := newFixture(t)

	assert.NoError(t, AssertExistsNoFollowLinks(noDesc, f.file))
	assert.NoError(t, AssertExistsNoFollowLinks(noDesc, f.fileLink))
	// The dangling link itself exists.
	assert.NoError(t, AssertExistsNoFollowLinks(noDesc, f.brokenLink))

	assert.Error(t, AssertExistsNoFollowLinks(noDesc, f.missing))
}

func TestAssertDoesNotExist(t *testing.T) {
	f := newFixture(t)

	assert.NoError(t, AssertDoesNotExist(noDesc, f.missing))

	assert.Error(t, AssertDoesNotExist(noDesc, f.file))
	assert.Error(t, AssertDoesNotExist(noDesc, f.fileLink))
	// Links are not followed: the dangling link still counts as existing.
	assert.Error(t, AssertDoesNotExist(noDesc, f.brokenLink))
}

func TestAssertIsRegularFile(t *testing.T) {
	f := newFixture(t)

	assert.NoError(t, AssertIsRegularFile(noDesc, f.file))
	assert.NoError(t, AssertIsRegularFile(noDesc, f.fileLink))

	// Missing paths fail on existence first.
	err := AssertIsRegularFile(noDesc, f.missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "to exist")

	err = AssertIsRegularFile(noDesc, f.dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "to be a regular file")
	assert.Error(t, AssertIsRegularFile(noDesc, f.dirLink))
}

func TestAssertIsDirectory(t *testing.T) {
	f := newFixture(t)

	assert.NoError(t, AssertIsDirectory(noDesc, f.dir))
	assert.NoError(t, AssertIsDirectory(noDesc, f.dirLink))

	assert.Error(t, AssertIsDirectory(noDesc, f.missing))
	err := AssertIsDirectory(noDesc, f.file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "to be a directory")
}

func TestAssertIsSymbolicLink(t *testing.T) {
	f := newFixture(t)

	assert.NoError(t, AssertIsSymbolicLink(noDesc, f.fileLink))
	assert.NoError(t, AssertIsSymbolicLink(noDesc, f.dirLink))
	assert.NoError(t, AssertIsSymbolicLink(noDesc, f.brokenLink))

	assert.Error(t, AssertIsSymbolicLink(noDesc, f.missing))
	err := AssertIsSymbolicLink(noDesc, f.file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "to be a symbolic link")
}

func TestAssertIsReadable(t *testing.T) {
	f := newFixture(t)

	assert.NoError(t, AssertIsReadable(noDesc, f.file))
	assert.NoError(t, AssertIsReadable(noDesc, f.fileLink))

	err := AssertIsReadable(noDesc, f.missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "to exist")
}

func TestAssertIsWritable(t *testing.T) {
	f := newFixture(t)

	assert.NoError(t, AssertIsWritable(noDesc, f.file))
	assert.Error(t, AssertIsWritable(noDesc, f.missing))
}

func TestAssertIsExecutable(t *testing.T) {
	f := newFixture(t)

	// Directories are traversable.
	assert.NoError(t, AssertIsExecutable(noDesc, f.dir))
	assert.Error(t, AssertIsExecutable(noDesc, f.missing))
}

func TestAssertIsAbsolute(t *testing.T) {
	assert.NoError(t, AssertIsAbsolute(noDesc, "/foo/bar"))
	// Absolute does not mean normalized.
	assert.NoError(t, AssertIsAbsolute(noDesc, "/foo/.."))

	err := AssertIsAbsolute(noDesc, "foo/bar")
	require.Error(t, err)
	assert.Equal(t, "expecting path:<foo/bar> to be absolute", err.Error())
}

func TestAssertIsRelative(t *testing.T) {
	assert.NoError(t, AssertIsRelative(noDesc, "foo/bar"))
	assert.NoError(t, AssertIsRelative(noDesc, "./foo/bar"))

	assert.Error(t, AssertIsRelative(noDesc, "/foo/bar"))
}

func TestAssertIsNormalized(t *testing.T) {
	tests := []struct {
		path       string
		normalized bool
	}{
		{path: "/usr/lib", normalized: true},
		{path: "a/b/c", normalized: true},
		{path: "../d", normalized: true},
		{path: "../../d", normalized: true},
		{path: "/a/./b", normalized: false},
		{path: "c/b/..", normalized: false},
		{path: "/../../e", normalized: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			err := AssertIsNormalized(noDesc, tt.path)
			if tt.normalized {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestAssertIsCanonical(t *testing.T) {
	f := newFixture(t)

	assert.NoError(t, AssertIsCanonical(noDesc, f.file))

	err := AssertIsCanonical(noDesc, f.fileLink)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "to be canonical")

	var resolveErr *ResolveError
	err = AssertIsCanonical(noDesc, f.missing)
	require.Error(t, err)
	assert.ErrorAs(t, err, &resolveErr)
}

func TestAssertHasParent(t *testing.T) {
	f := newFixture(t)
	nested := filepath.Join(f.dir, "file")
	require.NoError(t, os.WriteFile(nested, nil, 0o644))

	assert.NoError(t, AssertHasParent(noDesc, nested, f.dir))
	// The argument is canonicalized before comparison.
	assert.NoError(t, AssertHasParent(noDesc, nested, filepath.Join(f.dir, ".")))
	assert.NoError(t, AssertHasParent(noDesc, nested, f.dirLink))

	err := AssertHasParent(noDesc, nested, f.root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "to have parent")

	// Canonicalization failures surface as ResolveError.
	var resolveErr *ResolveError
	assert.ErrorAs(t, AssertHasParent(noDesc, f.missing, f.dir), &resolveErr)
}

func TestAssertHasParentRaw(t *testing.T) {
	assert.NoError(t, AssertHasParentRaw(noDesc, "/dir1/dir2/file", "/dir1/dir2"))

	// No canonicalization of the argument.
	assert.Error(t, AssertHasParentRaw(noDesc, "/dir1/dir2/file", "/dir1/dir3/../dir2"))
	assert.Error(t, AssertHasParentRaw(noDesc, "/dir1/dir2/file", "/dir1"))

	// Surprising but spec'd: the raw parent of /home/foo/../bar is
	// /home/foo/.., not /home.
	assert.Error(t, AssertHasParentRaw(noDesc, "/home/foo/../bar", "/home"))
	assert.NoError(t, AssertHasParentRaw(noDesc, "/home/foo/../bar", "/home/foo/.."))
}

func TestAssertHasNoParent(t *testing.T) {
	assert.NoError(t, AssertHasNoParent(noDesc, "/"))

	err := AssertHasNoParent(noDesc, "/usr")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not to have a parent")
}

func TestAssertHasNoParentRaw(t *testing.T) {
	assert.NoError(t, AssertHasNoParentRaw(noDesc, "/"))
	assert.NoError(t, AssertHasNoParentRaw(noDesc, "foo"))

	assert.Error(t, AssertHasNoParentRaw(noDesc, "/usr"))
	assert.Error(t, AssertHasNoParentRaw(noDesc, "/usr/lib"))
	// Raw: /usr/.. does have a parent, and it is /usr.
	assert.Error(t, AssertHasNoParentRaw(noDesc, "/usr/.."))
}

func TestAssertStartsWith(t *testing.T) {
	f := newFixture(t)
	nested := filepath.Join(f.dir, "file")
	require.NoError(t, os.WriteFile(nested, nil, 0o644))

	assert.NoError(t, AssertStartsWith(noDesc, nested, f.root))
	assert.NoError(t, AssertStartsWith(noDesc, nested, f.dir))
	// Argument canonicalized: a symlink to the directory is the directory.
	assert.NoError(t, AssertStartsWith(noDesc, nested, f.dirLink))

	other := filepath.Join(f.root, "somedir2")
	require.NoError(t, os.Mkdir(other, 0o755))
	err := AssertStartsWith(noDesc, nested, other)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "to start with")

	var resolveErr *ResolveError
	assert.ErrorAs(t, AssertStartsWith(noDesc, nested, f.missing), &resolveErr)
}

func TestAssertStartsWithRaw(t *testing.T) {
	assert.NoError(t, AssertStartsWithRaw(noDesc, "/home/joe/myfile", "/home/joe"))

	assert.Error(t, AssertStartsWithRaw(noDesc, "/home/joe/myfile", "/home/harry"))
	// Not canonicalized: trailing .. is compared as a component.
	assert.Error(t, AssertStartsWithRaw(noDesc, "/home/joe/myfile", "/home/joe/.."))
	// Name elements matter, not string prefixes.
	assert.Error(t, AssertStartsWithRaw(noDesc, "/home/foobar/baz", "/home/foo"))
}

func TestAssertEndsWith(t *testing.T) {
	f := newFixture(t)
	nested := filepath.Join(f.dir, "myfile")
	require.NoError(t, os.WriteFile(nested, nil, 0o644))

	assert.NoError(t, AssertEndsWith(noDesc, nested, "somedir/myfile"))
	// The argument is normalized before comparison.
	assert.NoError(t, AssertEndsWith(noDesc, nested, "other/../somedir/myfile"))

	assert.Error(t, AssertEndsWith(noDesc, nested, "somedir/otherfile"))
	assert.Error(t, AssertEndsWith(noDesc, nested, "somedir/myfile/../otherfile"))
}

func TestAssertEndsWithRaw(t *testing.T) {
	assert.NoError(t, AssertEndsWithRaw(noDesc, "/home/joe/myfile", "joe/myfile"))

	assert.Error(t, AssertEndsWithRaw(noDesc, "/home/joe/myfile", "harry/myfile"))
	// Not normalized.
	assert.Error(t, AssertEndsWithRaw(noDesc, "/home/joe/myfile", "harry/../joe/myfile"))
	assert.Error(t, AssertEndsWithRaw(noDesc, "/home/foo", "foo/."))
}

func TestAssertHasFileName(t *testing.T) {
	assert.NoError(t, AssertHasFileName(noDesc, "/home/joe/myfile", "myfile"))
	assert.NoError(t, AssertHasFileName(noDesc, "myfile", "myfile"))

	assert.Error(t, AssertHasFileName(noDesc, "/home/joe/myfile", "other"))
	assert.Error(t, AssertHasFileName(noDesc, "/", "myfile"))
}

func TestCanonicalize(t *testing.T) {
	f := newFixture(t)

	resolved, err := Canonicalize(f.fileLink)
	require.NoError(t, err)
	assert.Equal(t, f.file, resolved)

	_, err = Canonicalize(f.missing)
	require.Error(t, err)
	var resolveErr *ResolveError
	require.ErrorAs(t, err, &resolveErr)
	assert.Equal(t, f.missing, resolveErr.Path)
}
