package assert

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"testing"

	"github.com/abdul-hamid-achik/assertkit/packages/describe"
	"github.com/abdul-hamid-achik/assertkit/packages/failures"
	"github.com/abdul-hamid-achik/assertkit/packages/numbers"
	"github.com/abdul-hamid-achik/assertkit/packages/snapshot"
	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"
)

// JSONAssert holds fluent assertions on a JSON document. Paths use gjson
// dot syntax with bracket indices accepted ("items[0].id").
type JSONAssert struct {
	base
	raw  string
	body gjson.Result
	snap *snapshot.Store
}

// JSON starts a fluent assertion chain on a JSON document.
func JSON(t testing.TB, data []byte) *JSONAssert {
	return JSONString(t, string(data))
}

// JSONString starts a fluent assertion chain on a JSON document given as
// a string.
func JSONString(t testing.TB, data string) *JSONAssert {
	return &JSONAssert{
		base: base{t: t},
		raw:  data,
		body: gjson.Parse(data),
	}
}

// As attaches a description prefixed to every failure message.
func (a *JSONAssert) As(label string) *JSONAssert {
	a.d = describe.New(label)
	return a
}

// Must makes subsequent failures fatal to the test.
func (a *JSONAssert) Must() *JSONAssert {
	a.fatal = true
	return a
}

// UsingSnapshots overrides the snapshot store used by MatchesSnapshot.
func (a *JSONAssert) UsingSnapshots(s *snapshot.Store) *JSONAssert {
	a.snap = s
	return a
}

// bracketRe rewrites array bracket indices to gjson dot notation.
var bracketRe = regexp.MustCompile(`\[(\d+)\]`)

func normalizePath(path string) string {
	return strings.TrimPrefix(bracketRe.ReplaceAllString(path, ".$1"), ".")
}

// HasPath asserts that the document has a value at the given path.
func (a *JSONAssert) HasPath(path string) *JSONAssert {
	a.t.Helper()
	if !a.body.Get(normalizePath(path)).Exists() {
		a.fail(failures.Failure(a.d, failures.ShouldHavePath(path)))
	}
	return a
}

// DoesNotHavePath asserts that no value exists at the given path.
func (a *JSONAssert) DoesNotHavePath(path string) *JSONAssert {
	a.t.Helper()
	if a.body.Get(normalizePath(path)).Exists() {
		a.fail(failures.Failure(a.d, failures.ShouldNotExist(path)))
	}
	return a
}

// PathEquals asserts that the value at path equals expected. Numbers
// compare after coercion, everything else by deep equality with a string
// form fallback.
func (a *JSONAssert) PathEquals(path string, expected any) *JSONAssert {
	a.t.Helper()
	actual := a.body.Get(normalizePath(path)).Value()
	if !looseEqual(actual, expected) {
		a.fail(failures.Failure(a.d, failures.ShouldBeEqual(actual, expected)))
	}
	return a
}

// PathMatches asserts that the string form of the value at path matches
// the regular expression pattern.
func (a *JSONAssert) PathMatches(path, pattern string) *JSONAssert {
	a.t.Helper()
	actual := a.body.Get(normalizePath(path)).String()
	re, err := regexp.Compile(pattern)
	if err != nil || !re.MatchString(actual) {
		a.fail(failures.Failure(a.d, failures.ShouldMatch(actual, pattern)))
	}
	return a
}

// MatchesSchema asserts that the document validates against the JSON
// Schema in the given file.
func (a *JSONAssert) MatchesSchema(schemaPath string) *JSONAssert {
	a.t.Helper()

	schemaLoader := gojsonschema.NewReferenceLoader("file://" + schemaPath)
	documentLoader := gojsonschema.NewStringLoader(a.raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		a.fail(failures.Failure(a.d, failures.ShouldMatchSchema(err.Error())))
		return a
	}
	if !result.Valid() {
		var violations []string
		for _, desc := range result.Errors() {
			violations = append(violations, desc.String())
		}
		a.fail(failures.Failure(a.d, failures.ShouldMatchSchema(strings.Join(violations, "; "))))
	}
	return a
}

// MatchesSnapshot asserts that the document equals the stored snapshot
// with the given name, keyed under the current test. Snapshots are
// created or refreshed when the store is in update mode.
func (a *JSONAssert) MatchesSnapshot(name string) *JSONAssert {
	a.t.Helper()
	store := a.snap
	if store == nil {
		store = snapshot.Default()
	}
	result := store.Compare(a.t.Name(), name, a.body.Value())
	if !result.Passed {
		a.fail(failures.Failure(a.d, failures.ShouldBeEqual(result.Actual, result.Expected)))
		if result.Message != "" {
			a.t.Log(result.Message)
		}
	}
	return a
}

// looseEqual compares values the way JSON documents are usually compared:
// numeric coercion first, deep equality next, string forms last.
func looseEqual(actual, expected any) bool {
	if reflect.DeepEqual(actual, expected) {
		return true
	}
	an, aOk := numbers.ToFloat64(actual)
	en, eOk := numbers.ToFloat64(expected)
	if aOk && eOk {
		return an == en
	}
	return fmt.Sprintf("%v", actual) == fmt.Sprintf("%v", expected)
}
