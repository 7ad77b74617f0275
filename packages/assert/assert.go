package assert

import (
	"testing"

	"github.com/abdul-hamid-achik/assertkit/packages/describe"
)

// base carries the state shared by all assertion types: the test handle,
// an optional description, and the failure mode.
type base struct {
	t     testing.TB
	d     describe.Description
	fatal bool
}

// fail reports an assertion failure according to the failure mode.
func (b *base) fail(err error) {
	b.t.Helper()
	if b.fatal {
		b.t.Fatal(err.Error())
	} else {
		b.t.Error(err.Error())
	}
}

// check reports err when non-nil and returns true when the assertion
// passed.
func (b *base) check(err error) bool {
	b.t.Helper()
	if err != nil {
		b.fail(err)
		return false
	}
	return true
}
