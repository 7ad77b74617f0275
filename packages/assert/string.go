package assert

import (
	"regexp"
	"strings"
	"testing"

	"github.com/abdul-hamid-achik/assertkit/packages/describe"
	"github.com/abdul-hamid-achik/assertkit/packages/failures"
)

// StringAssert holds fluent assertions on a string value.
type StringAssert struct {
	base
	actual string
}

// String starts a fluent assertion chain on a string.
func String(t testing.TB, actual string) *StringAssert {
	return &StringAssert{base: base{t: t}, actual: actual}
}

// As attaches a description prefixed to every failure message.
func (a *StringAssert) As(label string) *StringAssert {
	a.d = describe.New(label)
	return a
}

// Must makes subsequent failures fatal to the test.
func (a *StringAssert) Must() *StringAssert {
	a.fatal = true
	return a
}

func (a *StringAssert) IsEmpty() *StringAssert {
	a.t.Helper()
	if a.actual != "" {
		a.fail(failures.Failure(a.d, failures.ShouldBeEmpty(a.actual)))
	}
	return a
}

func (a *StringAssert) IsNotEmpty() *StringAssert {
	a.t.Helper()
	if a.actual == "" {
		a.fail(failures.Failure(a.d, failures.ShouldNotBeEmpty()))
	}
	return a
}

func (a *StringAssert) IsEqualTo(expected string) *StringAssert {
	a.t.Helper()
	if a.actual != expected {
		a.fail(failures.Failure(a.d, failures.ShouldBeEqual(a.actual, expected)))
	}
	return a
}

func (a *StringAssert) Contains(substr string) *StringAssert {
	a.t.Helper()
	if !strings.Contains(a.actual, substr) {
		a.fail(failures.Failure(a.d, failures.ShouldContain(a.actual, substr)))
	}
	return a
}

func (a *StringAssert) HasPrefix(prefix string) *StringAssert {
	a.t.Helper()
	if !strings.HasPrefix(a.actual, prefix) {
		a.fail(failures.Failure(a.d, failures.ShouldHavePrefix(a.actual, prefix)))
	}
	return a
}

func (a *StringAssert) HasSuffix(suffix string) *StringAssert {
	a.t.Helper()
	if !strings.HasSuffix(a.actual, suffix) {
		a.fail(failures.Failure(a.d, failures.ShouldHaveSuffix(a.actual, suffix)))
	}
	return a
}

// Matches asserts that the string matches the regular expression pattern.
// An invalid pattern fails the assertion.
func (a *StringAssert) Matches(pattern string) *StringAssert {
	a.t.Helper()
	re, err := regexp.Compile(pattern)
	if err != nil {
		a.fail(failures.Failure(a.d, failures.ShouldMatch(a.actual, pattern)))
		return a
	}
	if !re.MatchString(a.actual) {
		a.fail(failures.Failure(a.d, failures.ShouldMatch(a.actual, pattern)))
	}
	return a
}
