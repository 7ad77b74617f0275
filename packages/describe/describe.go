package describe

import (
	"fmt"
	"unicode/utf8"
)

// maxReprLen caps the rendered length of a single value.
const maxReprLen = 100

// Description is an optional label for an assertion. The zero value is the
// empty description and formats messages unchanged.
type Description struct {
	label string
}

// New returns a Description with the given label.
func New(label string) Description {
	return Description{label: label}
}

// Empty reports whether the description has no label.
func (d Description) Empty() bool {
	return d.label == ""
}

// Label returns the raw label.
func (d Description) Label() string {
	return d.label
}

// Format prefixes msg with "[label] " when the description is non-empty.
func (d Description) Format(msg string) string {
	if d.label == "" {
		return msg
	}
	return fmt.Sprintf("[%s] %s", d.label, msg)
}

// Repr renders a value for inclusion in a failure message. Collections are
// summarized rather than dumped, and long strings are truncated.
func Repr(v any) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case []any:
		return fmt.Sprintf("[array with %d items]", len(val))
	case map[string]any:
		return fmt.Sprintf("{object with %d keys}", len(val))
	case []string:
		if len(val) > 8 {
			return fmt.Sprintf("[array with %d items]", len(val))
		}
	}
	str := fmt.Sprintf("%v", v)
	if len(str) > maxReprLen {
		// Back up to a rune boundary so truncation never emits invalid UTF-8.
		cut := maxReprLen
		for cut > 0 && !utf8.RuneStart(str[cut]) {
			cut--
		}
		return str[:cut] + "..."
	}
	return str
}

// Quoted renders a value like Repr but wraps it in the angle brackets used
// by failure message templates.
func Quoted(v any) string {
	return "<" + Repr(v) + ">"
}
