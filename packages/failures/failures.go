package failures

import (
	"fmt"

	"github.com/abdul-hamid-achik/assertkit/packages/describe"
)

// Factory builds a failure message, applying a test description when the
// message is finally rendered.
type Factory interface {
	Create(d describe.Description) string
}

type factory struct {
	format string
	args   []any
}

// newFactory builds a Factory from a template and ordered arguments. Each
// argument is rendered through describe.Quoted, so "%s" placeholders in the
// template receive angle-bracketed values.
func newFactory(format string, args ...any) Factory {
	quoted := make([]any, len(args))
	for i, a := range args {
		quoted[i] = describe.Quoted(a)
	}
	return &factory{format: format, args: quoted}
}

func (f *factory) Create(d describe.Description) string {
	return d.Format(fmt.Sprintf(f.format, f.args...))
}

// AssertionError is the error produced when an assertion fails.
type AssertionError struct {
	msg string
}

func (e *AssertionError) Error() string {
	return e.msg
}

// Failure renders a factory under the given description and wraps the
// result into an error.
func Failure(d describe.Description, f Factory) error {
	return &AssertionError{msg: f.Create(d)}
}
