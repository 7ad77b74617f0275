package failures

import (
	"testing"

	"github.com/abdul-hamid-achik/assertkit/packages/describe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldBeReadable_CreateExpectedMessage(t *testing.T) {
	f := ShouldBeReadable("pathname")

	msg := f.Create(describe.New("Test"))

	assert.Equal(t, "[Test] Path:<pathname> should be readable", msg)
}

func TestShouldBeReadable_WithoutDescription(t *testing.T) {
	f := ShouldBeReadable("pathname")

	msg := f.Create(describe.Description{})

	assert.Equal(t, "Path:<pathname> should be readable", msg)
}

func TestPathFactories(t *testing.T) {
	tests := []struct {
		name     string
		factory  Factory
		expected string
	}{
		{
			name:     "should exist",
			factory:  ShouldExist("/tmp/missing"),
			expected: "expecting path:</tmp/missing> to exist",
		},
		{
			name:     "should exist no follow links",
			factory:  ShouldExistNoFollowLinks("/tmp/missing"),
			expected: "expecting path:</tmp/missing> to exist (symbolic links were not followed)",
		},
		{
			name:     "should not exist",
			factory:  ShouldNotExist("/tmp/present"),
			expected: "expecting path:</tmp/present> not to exist",
		},
		{
			name:     "should be directory",
			factory:  ShouldBeDirectory("/tmp/file"),
			expected: "expecting path:</tmp/file> to be a directory",
		},
		{
			name:     "should be regular file",
			factory:  ShouldBeRegularFile("/tmp/dir"),
			expected: "expecting path:</tmp/dir> to be a regular file",
		},
		{
			name:     "should be symbolic link",
			factory:  ShouldBeSymbolicLink("/tmp/file"),
			expected: "expecting path:</tmp/file> to be a symbolic link",
		},
		{
			name:     "should have parent",
			factory:  ShouldHaveParent("/dir1/dir2/file", "/dir1"),
			expected: "expecting path:</dir1/dir2/file> to have parent:</dir1>",
		},
		{
			name:     "should have no parent",
			factory:  ShouldHaveNoParent("/usr/lib", "/usr"),
			expected: "expecting path:</usr/lib> not to have a parent, but parent was:</usr>",
		},
		{
			name:     "should start with",
			factory:  ShouldStartWith("/home/joe/myfile", "/home/harry"),
			expected: "expecting path:</home/joe/myfile> to start with:</home/harry>",
		},
		{
			name:     "should end with",
			factory:  ShouldEndWith("/home/joe/myfile", "joe/otherfile"),
			expected: "expecting path:</home/joe/myfile> to end with:<joe/otherfile>",
		},
		{
			name:     "should have file name",
			factory:  ShouldHaveFileName("/home/joe/myfile", "other"),
			expected: "expecting path:</home/joe/myfile> to have file name:<other>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.factory.Create(describe.Description{}))
		})
	}
}

func TestComparisonFactories(t *testing.T) {
	tests := []struct {
		name     string
		factory  Factory
		expected string
	}{
		{
			name:     "should be less than or equal",
			factory:  ShouldBeLessOrEqual(8.0, 6.0),
			expected: "actual value:<8> should be less than or equal to:<6>",
		},
		{
			name:     "should be less",
			factory:  ShouldBeLess(8, 6),
			expected: "actual value:<8> should be less than:<6>",
		},
		{
			name:     "should be greater",
			factory:  ShouldBeGreater(6, 8),
			expected: "actual value:<6> should be greater than:<8>",
		},
		{
			name:     "should be equal",
			factory:  ShouldBeEqual(8, 6),
			expected: "expected:<6> but was:<8>",
		},
		{
			name:     "should be between",
			factory:  ShouldBeBetween(10, 0, 5),
			expected: "actual value:<10> should be between:<0> and:<5>",
		},
		{
			name:     "should not be nil",
			factory:  ShouldNotBeNil(),
			expected: "expecting actual not to be nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.factory.Create(describe.Description{}))
		})
	}
}

func TestFailure_WrapsFactoryIntoError(t *testing.T) {
	err := Failure(describe.New("Test"), ShouldBeReadable("pathname"))

	require.Error(t, err)
	assert.Equal(t, "[Test] Path:<pathname> should be readable", err.Error())

	var ae *AssertionError
	assert.ErrorAs(t, err, &ae)
}
