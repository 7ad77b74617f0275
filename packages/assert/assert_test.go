package assert

import (
	"fmt"
	"testing"
)

// recorder captures failures instead of failing the enclosing test, so
// the failure paths of the fluent API can themselves be asserted.
type recorder struct {
	testing.TB
	failed bool
	fatal  bool
	msgs   []string
}

func newRecorder(t *testing.T) *recorder {
	return &recorder{TB: t}
}

func (r *recorder) Helper() {}

func (r *recorder) Error(args ...any) {
	r.failed = true
	r.msgs = append(r.msgs, fmt.Sprint(args...))
}

func (r *recorder) Errorf(format string, args ...any) {
	r.failed = true
	r.msgs = append(r.msgs, fmt.Sprintf(format, args...))
}

// Fatal records instead of stopping the goroutine; chains keep running,
// which is what these tests want.
func (r *recorder) Fatal(args ...any) {
	r.failed = true
	r.fatal = true
	r.msgs = append(r.msgs, fmt.Sprint(args...))
}

func (r *recorder) lastMsg() string {
	if len(r.msgs) == 0 {
		return ""
	}
	return r.msgs[len(r.msgs)-1]
}
