// Package numbers implements the numeric checks backing the fluent number
// assertions in packages/assert.
//
// Actual values are accepted as any and coerced to float64, so the same
// checks work for ints, floats, and numeric strings pulled out of JSON
// documents. A nil actual value always fails.
package numbers
