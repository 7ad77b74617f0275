package failures

// Path conditions.

// ShouldExist builds a failure for a path expected to exist, following
// symbolic links.
func ShouldExist(path string) Factory {
	return newFactory("expecting path:%s to exist", path)
}

// ShouldExistNoFollowLinks builds a failure for a path expected to exist
// without following symbolic links.
func ShouldExistNoFollowLinks(path string) Factory {
	return newFactory("expecting path:%s to exist (symbolic links were not followed)", path)
}

// ShouldNotExist builds a failure for a path expected not to exist.
func ShouldNotExist(path string) Factory {
	return newFactory("expecting path:%s not to exist", path)
}

func ShouldBeDirectory(path string) Factory {
	return newFactory("expecting path:%s to be a directory", path)
}

func ShouldBeRegularFile(path string) Factory {
	return newFactory("expecting path:%s to be a regular file", path)
}

func ShouldBeSymbolicLink(path string) Factory {
	return newFactory("expecting path:%s to be a symbolic link", path)
}

func ShouldBeReadable(path string) Factory {
	return newFactory("Path:%s should be readable", path)
}

func ShouldBeWritable(path string) Factory {
	return newFactory("Path:%s should be writable", path)
}

func ShouldBeExecutable(path string) Factory {
	return newFactory("Path:%s should be executable", path)
}

func ShouldBeAbsolute(path string) Factory {
	return newFactory("expecting path:%s to be absolute", path)
}

func ShouldBeRelative(path string) Factory {
	return newFactory("expecting path:%s to be relative", path)
}

func ShouldBeNormalized(path string) Factory {
	return newFactory("expecting path:%s to be normalized", path)
}

func ShouldBeCanonical(path string) Factory {
	return newFactory("expecting path:%s to be canonical", path)
}

func ShouldHaveParent(actual, expected string) Factory {
	return newFactory("expecting path:%s to have parent:%s", actual, expected)
}

// ShouldHaveNoParent builds a failure for a path expected to have no parent
// but which had one.
func ShouldHaveNoParent(actual, parent string) Factory {
	return newFactory("expecting path:%s not to have a parent, but parent was:%s", actual, parent)
}

func ShouldStartWith(actual, other any) Factory {
	return newFactory("expecting path:%s to start with:%s", actual, other)
}

func ShouldEndWith(actual, other any) Factory {
	return newFactory("expecting path:%s to end with:%s", actual, other)
}

func ShouldHaveFileName(actual, name string) Factory {
	return newFactory("expecting path:%s to have file name:%s", actual, name)
}

// Value conditions.

// ShouldNotBeNil builds the failure used when an actual value is nil.
func ShouldNotBeNil() Factory {
	return newFactory("expecting actual not to be nil")
}

func ShouldBeLess(actual, other any) Factory {
	return newFactory("actual value:%s should be less than:%s", actual, other)
}

func ShouldBeLessOrEqual(actual, other any) Factory {
	return newFactory("actual value:%s should be less than or equal to:%s", actual, other)
}

func ShouldBeGreater(actual, other any) Factory {
	return newFactory("actual value:%s should be greater than:%s", actual, other)
}

func ShouldBeGreaterOrEqual(actual, other any) Factory {
	return newFactory("actual value:%s should be greater than or equal to:%s", actual, other)
}

func ShouldBeEqual(actual, expected any) Factory {
	return newFactory("expected:%s but was:%s", expected, actual)
}

func ShouldNotBeEqual(actual, other any) Factory {
	return newFactory("actual value:%s should not be equal to:%s", actual, other)
}

func ShouldBeBetween(actual, start, end any) Factory {
	return newFactory("actual value:%s should be between:%s and:%s", actual, start, end)
}

func ShouldNotBeNumeric(actual any) Factory {
	return newFactory("actual value:%s is not a number", actual)
}

// String conditions.

func ShouldContain(actual, expected any) Factory {
	return newFactory("expecting:%s to contain:%s", actual, expected)
}

func ShouldHavePrefix(actual, prefix any) Factory {
	return newFactory("expecting:%s to start with:%s", actual, prefix)
}

func ShouldHaveSuffix(actual, suffix any) Factory {
	return newFactory("expecting:%s to end with:%s", actual, suffix)
}

func ShouldMatch(actual any, pattern string) Factory {
	return newFactory("expecting:%s to match:%s", actual, pattern)
}

func ShouldBeEmpty(actual any) Factory {
	return newFactory("expecting:%s to be empty", actual)
}

func ShouldNotBeEmpty() Factory {
	return newFactory("expecting actual not to be empty")
}

// JSON conditions.

func ShouldHavePath(path string) Factory {
	return newFactory("expecting JSON to have path:%s", path)
}

func ShouldMatchSchema(detail string) Factory {
	return newFactory("expecting JSON to match schema: %s", detail)
}
