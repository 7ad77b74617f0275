package assert

import (
	"testing"

	"github.com/abdul-hamid-achik/assertkit/packages/describe"
	"github.com/abdul-hamid-achik/assertkit/packages/numbers"
)

// NumberAssert holds fluent assertions on a numeric value. The actual
// value is accepted as any and coerced to float64, so ints, floats, and
// numeric strings extracted from JSON all work. A nil actual fails every
// assertion.
type NumberAssert struct {
	base
	actual any
}

// Number starts a fluent assertion chain on a numeric value.
func Number(t testing.TB, actual any) *NumberAssert {
	return &NumberAssert{base: base{t: t}, actual: actual}
}

// As attaches a description prefixed to every failure message.
func (a *NumberAssert) As(label string) *NumberAssert {
	a.d = describe.New(label)
	return a
}

// Must makes subsequent failures fatal to the test.
func (a *NumberAssert) Must() *NumberAssert {
	a.fatal = true
	return a
}

// IsNotNil asserts that the actual value is non-nil and numeric.
func (a *NumberAssert) IsNotNil() *NumberAssert {
	a.t.Helper()
	a.check(numbers.AssertNotNil(a.d, a.actual))
	return a
}

func (a *NumberAssert) IsLessThan(other float64) *NumberAssert {
	a.t.Helper()
	a.check(numbers.AssertLessThan(a.d, a.actual, other))
	return a
}

func (a *NumberAssert) IsLessThanOrEqualTo(other float64) *NumberAssert {
	a.t.Helper()
	a.check(numbers.AssertLessThanOrEqualTo(a.d, a.actual, other))
	return a
}

func (a *NumberAssert) IsGreaterThan(other float64) *NumberAssert {
	a.t.Helper()
	a.check(numbers.AssertGreaterThan(a.d, a.actual, other))
	return a
}

func (a *NumberAssert) IsGreaterThanOrEqualTo(other float64) *NumberAssert {
	a.t.Helper()
	a.check(numbers.AssertGreaterThanOrEqualTo(a.d, a.actual, other))
	return a
}

func (a *NumberAssert) IsEqualTo(expected float64) *NumberAssert {
	a.t.Helper()
	a.check(numbers.AssertEqual(a.d, a.actual, expected))
	return a
}

func (a *NumberAssert) IsNotEqualTo(other float64) *NumberAssert {
	a.t.Helper()
	a.check(numbers.AssertNotEqual(a.d, a.actual, other))
	return a
}

func (a *NumberAssert) IsZero() *NumberAssert {
	a.t.Helper()
	a.check(numbers.AssertZero(a.d, a.actual))
	return a
}

func (a *NumberAssert) IsPositive() *NumberAssert {
	a.t.Helper()
	a.check(numbers.AssertPositive(a.d, a.actual))
	return a
}

func (a *NumberAssert) IsNegative() *NumberAssert {
	a.t.Helper()
	a.check(numbers.AssertNegative(a.d, a.actual))
	return a
}

// IsBetween asserts that start <= actual <= end.
func (a *NumberAssert) IsBetween(start, end float64) *NumberAssert {
	a.t.Helper()
	a.check(numbers.AssertBetween(a.d, a.actual, start, end))
	return a
}
