package paths

import (
	"path/filepath"
	"strings"
)

// components is the structural form of a path: an optional root plus its
// name elements, in order. Raw checks compare components exactly as split;
// nothing here consults the filesystem.
type components struct {
	root  string
	elems []string
}

// split breaks a path into its root and name elements without any
// normalization: "." and ".." stay as elements, only empty segments from
// repeated separators are dropped.
func split(path string) components {
	root := filepath.VolumeName(path)
	rest := path[len(root):]
	if len(rest) > 0 && (rest[0] == '/' || rest[0] == filepath.Separator) {
		root += string(filepath.Separator)
		rest = rest[1:]
	}

	elems := strings.FieldsFunc(rest, func(r rune) bool {
		return r == '/' || r == filepath.Separator
	})
	return components{root: root, elems: elems}
}

// join renders the components back into a path string.
func (c components) join() string {
	if len(c.elems) == 0 {
		if c.root != "" {
			return c.root
		}
		return "."
	}
	return c.root + strings.Join(c.elems, string(filepath.Separator))
}

// normalize removes "." elements and resolves ".." against preceding
// elements. Leading ".." elements survive on relative paths and are dropped
// on rooted ones.
func (c components) normalize() components {
	out := components{root: c.root}
	for _, e := range c.elems {
		switch e {
		case ".":
		case "..":
			if n := len(out.elems); n > 0 && out.elems[n-1] != ".." {
				out.elems = out.elems[:n-1]
			} else if out.root == "" {
				out.elems = append(out.elems, "..")
			}
		default:
			out.elems = append(out.elems, e)
		}
	}
	return out
}

// parent returns the components of the parent path and whether one exists.
// The parent of a lone root, or of a single relative element, does not
// exist.
func (c components) parent() (components, bool) {
	switch len(c.elems) {
	case 0:
		return components{}, false
	case 1:
		if c.root == "" {
			return components{}, false
		}
		return components{root: c.root}, true
	default:
		return components{root: c.root, elems: c.elems[:len(c.elems)-1]}, true
	}
}

func (c components) equal(other components) bool {
	if c.root != other.root || len(c.elems) != len(other.elems) {
		return false
	}
	for i, e := range c.elems {
		if e != other.elems[i] {
			return false
		}
	}
	return true
}

// startsWith reports whether c begins with all of other's components. A
// rooted argument can only prefix a path with the same root.
func (c components) startsWith(other components) bool {
	if c.root != other.root || len(other.elems) > len(c.elems) {
		return false
	}
	for i, e := range other.elems {
		if c.elems[i] != e {
			return false
		}
	}
	return true
}

// endsWith reports whether c ends with all of other's components. A rooted
// argument must match the entire path.
func (c components) endsWith(other components) bool {
	if other.root != "" {
		return c.equal(other)
	}
	if len(other.elems) == 0 || len(other.elems) > len(c.elems) {
		return false
	}
	offset := len(c.elems) - len(other.elems)
	for i, e := range other.elems {
		if c.elems[offset+i] != e {
			return false
		}
	}
	return true
}

// fileName returns the last name element and whether one exists.
func (c components) fileName() (string, bool) {
	if len(c.elems) == 0 {
		return "", false
	}
	return c.elems[len(c.elems)-1], true
}
