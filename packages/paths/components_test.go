package paths

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		root  string
		elems []string
	}{
		{name: "absolute", path: "/usr/lib", root: "/", elems: []string{"usr", "lib"}},
		{name: "relative", path: "a/b/c", root: "", elems: []string{"a", "b", "c"}},
		{name: "root only", path: "/", root: "/", elems: nil},
		{name: "empty", path: "", root: "", elems: nil},
		{name: "repeated separators", path: "//a///b", root: "/", elems: []string{"a", "b"}},
		{name: "dot elements preserved", path: "/a/./b/..", root: "/", elems: []string{"a", ".", "b", ".."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := split(tt.path)
			assert.Equal(t, tt.root, c.root)
			assert.Equal(t, tt.elems, c.elems)
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{path: "/a/./b", expected: "/a/b"},
		{path: "c/b/..", expected: "c"},
		{path: "/../../e", expected: "/e"},
		{path: "../d", expected: "../d"},
		{path: "../../d", expected: "../../d"},
		{path: "a/../..", expected: ".."},
		{path: "/usr/lib", expected: "/usr/lib"},
		{path: ".", expected: "."},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, split(tt.path).normalize().join())
		})
	}
}

func TestParent(t *testing.T) {
	tests := []struct {
		path   string
		parent string
		ok     bool
	}{
		{path: "/", ok: false},
		{path: "foo", ok: false},
		{path: "/usr", parent: "/", ok: true},
		{path: "/usr/lib", parent: "/usr", ok: true},
		// No normalization: the raw parent of /usr/.. is /usr.
		{path: "/usr/..", parent: "/usr", ok: true},
		{path: "a/b", parent: "a", ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			parent, ok := split(tt.path).parent()
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.parent, parent.join())
			}
		})
	}
}

func TestStartsWith_Components(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		other  string
		starts bool
	}{
		{name: "plain prefix", path: "/home/joe/myfile", other: "/home", starts: true},
		{name: "full match", path: "/home/joe", other: "/home/joe", starts: true},
		// Name elements matter, not string prefixes.
		{name: "partial element", path: "/home/foobar/baz", other: "/home/foo", starts: false},
		{name: "dot-dot not resolved", path: "/../home/foo", other: "/home", starts: false},
		{name: "rooted vs relative", path: "home/joe", other: "/home", starts: false},
		{name: "longer than path", path: "/home", other: "/home/joe", starts: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.starts, split(tt.path).startsWith(split(tt.other)))
		})
	}
}

func TestEndsWith_Components(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		other string
		ends  bool
	}{
		{name: "plain suffix", path: "/home/joe/myfile", other: "joe/myfile", ends: true},
		{name: "partial element", path: "/home/foobar/baz", other: "bar/baz", ends: false},
		{name: "trailing dot differs", path: "/home/foo", other: "foo/.", ends: false},
		{name: "rooted other must match whole path", path: "/home/joe", other: "/home/joe", ends: true},
		{name: "rooted other mismatch", path: "/home/joe", other: "/joe", ends: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ends, split(tt.path).endsWith(split(tt.other)))
		})
	}
}

func TestFileName(t *testing.T) {
	name, ok := split("/home/joe/myfile").fileName()
	assert.True(t, ok)
	assert.Equal(t, "myfile", name)

	name, ok = split("/foo/.").fileName()
	assert.True(t, ok)
	assert.Equal(t, ".", name)

	_, ok = split("/").fileName()
	assert.False(t, ok)
}
