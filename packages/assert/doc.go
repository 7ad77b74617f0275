// Package assert provides fluent, chainable assertions for Go tests.
//
// Each entry point wraps a testing.TB and an actual value and returns an
// assertion object whose methods chain:
//
//	assert.Path(t, cfgFile).Exists().IsRegularFile().IsReadable()
//	assert.Number(t, latency).IsGreaterThan(0).IsLessThanOrEqualTo(250)
//	assert.JSON(t, body).HasPath("user.id").PathEquals("user.name", "John")
//
// Failures are reported through t.Error by default; chaining Must()
// switches to t.Fatal so the first failure stops the test. As attaches a
// description that prefixes every failure message:
//
//	assert.Path(t, p).As("config file").Exists()
//	// [config file] expecting path:</etc/app.yaml> to exist
//
// Path assertions delegate to packages/paths, numeric assertions to
// packages/numbers; failure messages come from packages/failures.
package assert
