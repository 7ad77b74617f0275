package numbers

import (
	"strconv"

	"github.com/abdul-hamid-achik/assertkit/packages/describe"
	"github.com/abdul-hamid-achik/assertkit/packages/failures"
)

// ToFloat64 coerces a value to float64. Numeric strings are parsed;
// anything else reports false.
func ToFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

// coerce validates the actual value before any comparison: nil fails with
// its own message, non-numeric values with another.
func coerce(d describe.Description, actual any) (float64, error) {
	if actual == nil {
		return 0, failures.Failure(d, failures.ShouldNotBeNil())
	}
	n, ok := ToFloat64(actual)
	if !ok {
		return 0, failures.Failure(d, failures.ShouldNotBeNumeric(actual))
	}
	return n, nil
}

// AssertLessThan checks that actual < other.
func AssertLessThan(d describe.Description, actual any, other float64) error {
	n, err := coerce(d, actual)
	if err != nil {
		return err
	}
	if !(n < other) {
		return failures.Failure(d, failures.ShouldBeLess(actual, other))
	}
	return nil
}

// AssertLessThanOrEqualTo checks that actual <= other.
func AssertLessThanOrEqualTo(d describe.Description, actual any, other float64) error {
	n, err := coerce(d, actual)
	if err != nil {
		return err
	}
	if !(n <= other) {
		return failures.Failure(d, failures.ShouldBeLessOrEqual(actual, other))
	}
	return nil
}

// AssertGreaterThan checks that actual > other.
func AssertGreaterThan(d describe.Description, actual any, other float64) error {
	n, err := coerce(d, actual)
	if err != nil {
		return err
	}
	if !(n > other) {
		return failures.Failure(d, failures.ShouldBeGreater(actual, other))
	}
	return nil
}

// AssertGreaterThanOrEqualTo checks that actual >= other.
func AssertGreaterThanOrEqualTo(d describe.Description, actual any, other float64) error {
	n, err := coerce(d, actual)
	if err != nil {
		return err
	}
	if !(n >= other) {
		return failures.Failure(d, failures.ShouldBeGreaterOrEqual(actual, other))
	}
	return nil
}

// AssertEqual checks that actual == expected.
func AssertEqual(d describe.Description, actual any, expected float64) error {
	n, err := coerce(d, actual)
	if err != nil {
		return err
	}
	if n != expected {
		return failures.Failure(d, failures.ShouldBeEqual(actual, expected))
	}
	return nil
}

// AssertNotEqual checks that actual != other.
func AssertNotEqual(d describe.Description, actual any, other float64) error {
	n, err := coerce(d, actual)
	if err != nil {
		return err
	}
	if n == other {
		return failures.Failure(d, failures.ShouldNotBeEqual(actual, other))
	}
	return nil
}

// AssertZero checks that actual is zero.
func AssertZero(d describe.Description, actual any) error {
	return AssertEqual(d, actual, 0)
}

// AssertPositive checks that actual is strictly greater than zero.
func AssertPositive(d describe.Description, actual any) error {
	return AssertGreaterThan(d, actual, 0)
}

// AssertNegative checks that actual is strictly less than zero.
func AssertNegative(d describe.Description, actual any) error {
	return AssertLessThan(d, actual, 0)
}

// AssertBetween checks that start <= actual <= end.
func AssertBetween(d describe.Description, actual any, start, end float64) error {
	n, err := coerce(d, actual)
	if err != nil {
		return err
	}
	if n < start || n > end {
		return failures.Failure(d, failures.ShouldBeBetween(actual, start, end))
	}
	return nil
}

// AssertNotNil checks only that the actual value is non-nil and numeric.
func AssertNotNil(d describe.Description, actual any) error {
	_, err := coerce(d, actual)
	return err
}
