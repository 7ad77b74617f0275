// Package describe provides test descriptions and value representation
// for assertion failure messages.
//
// A Description is an optional label attached to an assertion; when set,
// failure messages are prefixed with "[label] ". Repr renders arbitrary
// values in the canonical angle-bracket form used throughout failure
// messages, summarizing large collections instead of dumping them.
package describe
