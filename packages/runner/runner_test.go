package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeSuite drops a check suite and its fixture tree into a temp dir
// and returns the suite path.
func writeSuite(t *testing.T, yaml string) string {
	t.Helper()
	dir := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "conf"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "conf", "app.yaml"), []byte("a: 1\n"), 0o644))

	path := filepath.Join(dir, "app.checks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	return path
}

func TestRunFile(t *testing.T) {
	path := writeSuite(t, `
checks:
  - name: config present
    path: conf/app.yaml
    expect:
      exists: true
      type: file
      readable: true
      file_name: app.yaml
  - name: config dir
    path: conf
    expect:
      type: dir
  - name: no stale lock
    path: conf/app.lock
    expect:
      exists: false
`)

	r := NewRunner(nil)
	result, err := r.RunFile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, path, result.File)
	assert.Equal(t, 3, result.Passed)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, 0, result.Skipped)
	require.Len(t, result.Results, 3)

	// Relative check paths resolve against the suite file's directory.
	assert.Equal(t, filepath.Join(filepath.Dir(path), "conf", "app.yaml"), result.Results[0].Path)
	for _, cr := range result.Results {
		assert.True(t, cr.Passed, cr.Name)
		assert.Empty(t, cr.Failures)
	}
}

func TestRunFileCollectsFailures(t *testing.T) {
	path := writeSuite(t, `
checks:
  - name: missing artifact
    path: conf/missing.tar.gz
    expect:
      exists: true
      type: file
`)

	r := NewRunner(nil)
	result, err := r.RunFile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Failed)
	cr := result.Results[0]
	assert.False(t, cr.Passed)
	// Both the existence and the type expectation fail. Type checks
	// report a missing path as an existence failure.
	require.Len(t, cr.Failures, 2)
	assert.Contains(t, cr.Failures[0], "to exist")
	assert.Contains(t, cr.Failures[1], "to exist")
}

func TestRunFileBail(t *testing.T) {
	path := writeSuite(t, `
checks:
  - name: broken
    path: conf/nope
    expect:
      exists: true
  - name: never reached
    path: conf/app.yaml
    expect:
      exists: true
`)

	r := NewRunner(&Config{Bail: true})
	result, err := r.RunFile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 1, result.Skipped)
	assert.True(t, result.Results[1].Skipped)
	assert.Equal(t, "previous check failed", result.Results[1].SkipReason)
}

func TestRunFileTagFilter(t *testing.T) {
	path := writeSuite(t, `
checks:
  - name: smoke check
    path: conf/app.yaml
    tags: [smoke]
    expect:
      exists: true
  - name: nightly check
    path: conf/app.yaml
    tags: [nightly]
    expect:
      exists: true
`)

	r := NewRunner(&Config{Tags: []string{"smoke"}})
	result, err := r.RunFile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Passed)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, "tag filter", result.Results[1].SkipReason)
}

func TestRunSuiteCancelled(t *testing.T) {
	path := writeSuite(t, `
checks:
  - path: conf/app.yaml
    expect:
      exists: true
`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(nil)
	_, err := r.RunFile(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProbe(t *testing.T) {
	path := writeSuite(t, `
checks:
  - path: conf/app.yaml
    expect:
      exists: true
      readable: true
`)

	r := NewRunner(nil)
	result, err := r.Probe(context.Background(), path, &ProbeConfig{Iterations: 20})
	require.NoError(t, err)

	assert.Equal(t, 20, result.Iterations)
	assert.Equal(t, 0, result.Failures)
	assert.NotNil(t, result.Last)
	assert.GreaterOrEqual(t, result.Max, result.P50)
}

func TestProbeCountsFailedIterations(t *testing.T) {
	path := writeSuite(t, `
checks:
  - path: conf/gone
    expect:
      exists: true
`)

	r := NewRunner(nil)
	result, err := r.Probe(context.Background(), path, &ProbeConfig{Iterations: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Failures)
}

func TestProbeValidation(t *testing.T) {
	r := NewRunner(nil)
	_, err := r.Probe(context.Background(), "whatever.checks.yaml", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one iteration")

	_, err = r.Probe(context.Background(), "whatever.checks.yaml", &ProbeConfig{Iterations: 0})
	assert.Error(t, err)
}

func TestRunFileBaseDirOverride(t *testing.T) {
	path := writeSuite(t, `
checks:
  - path: app.yaml
    expect:
      exists: true
`)
	confDir := filepath.Join(filepath.Dir(path), "conf")

	r := NewRunner(&Config{BaseDir: confDir})
	result, err := r.RunFile(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, 1, result.Passed, fmt.Sprint(result.Results[0].Failures))
	assert.Equal(t, filepath.Join(confDir, "app.yaml"), result.Results[0].Path)
}
