// Package failures provides error-message factories for assertion failures.
//
// Each condition that can fail has a factory constructor (ShouldExist,
// ShouldBeReadable, ShouldBeLessOrEqual, ...) capturing the values involved.
// A factory renders the final message on demand through Create, applying an
// optional test description as a "[label] " prefix:
//
//	f := failures.ShouldBeReadable("pathname")
//	f.Create(describe.New("Test")) // "[Test] Path:<pathname> should be readable"
//
// Failure wraps a factory into an error for callers that propagate
// assertion failures as values.
package failures
