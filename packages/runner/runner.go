// Package runner executes check suites against the filesystem.
package runner

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/abdul-hamid-achik/assertkit/packages/checkfile"
	"github.com/abdul-hamid-achik/assertkit/packages/describe"
	"github.com/abdul-hamid-achik/assertkit/packages/paths"
)

type Runner struct {
	config *Config
}

type Config struct {
	Bail bool
	Tags []string

	// BaseDir overrides the directory relative check paths resolve
	// against. Empty means the suite file's own directory.
	BaseDir string
}

func NewRunner(cfg *Config) *Runner {
	if cfg == nil {
		cfg = &Config{}
	}
	return &Runner{config: cfg}
}

type SuiteResult struct {
	File     string
	Results  []*CheckResult
	Duration time.Duration
	Passed   int
	Failed   int
	Skipped  int
}

type CheckResult struct {
	Name       string
	Path       string
	Passed     bool
	Skipped    bool
	SkipReason string
	Duration   time.Duration
	Failures   []string
}

// RunFile parses and executes a single check suite.
func (r *Runner) RunFile(ctx context.Context, path string) (*SuiteResult, error) {
	suite, err := checkfile.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading suite: %w", err)
	}
	return r.RunSuite(ctx, suite)
}

// RunSuite executes an already-parsed suite.
func (r *Runner) RunSuite(ctx context.Context, suite *checkfile.Suite) (*SuiteResult, error) {
	start := time.Now()
	result := &SuiteResult{File: suite.File}

	baseDir := r.config.BaseDir
	if baseDir == "" && suite.File != "" {
		baseDir = filepath.Dir(suite.File)
	}

	selected := make(map[*checkfile.Check]bool)
	for _, c := range suite.Filter(r.config.Tags) {
		selected[c] = true
	}

	bailed := false
	for _, check := range suite.Checks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if bailed {
			result.Results = append(result.Results, skipped(check, "previous check failed"))
			result.Skipped++
			continue
		}
		if !selected[check] {
			result.Results = append(result.Results, skipped(check, "tag filter"))
			result.Skipped++
			continue
		}

		cr := r.runCheck(check, baseDir)
		result.Results = append(result.Results, cr)
		if cr.Passed {
			result.Passed++
		} else {
			result.Failed++
			if r.config.Bail {
				bailed = true
			}
		}
	}

	result.Duration = time.Since(start)
	return result, nil
}

func skipped(c *checkfile.Check, reason string) *CheckResult {
	return &CheckResult{
		Name:       c.Name,
		Path:       c.Path,
		Skipped:    true,
		SkipReason: reason,
	}
}

func (r *Runner) runCheck(check *checkfile.Check, baseDir string) *CheckResult {
	start := time.Now()

	target := check.Path
	if !filepath.IsAbs(target) && baseDir != "" {
		target = filepath.Join(baseDir, target)
	}

	cr := &CheckResult{
		Name: check.Name,
		Path: target,
	}
	d := describe.New(check.Name)
	for _, err := range evaluate(d, target, &check.Expect) {
		cr.Failures = append(cr.Failures, err.Error())
	}
	cr.Passed = len(cr.Failures) == 0
	cr.Duration = time.Since(start)
	return cr
}

// evaluate runs every expectation that is set and collects the
// failures instead of stopping at the first one.
func evaluate(d describe.Description, target string, e *checkfile.Expect) []error {
	var errs []error
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	if e.Exists != nil {
		if *e.Exists {
			collect(paths.AssertExists(d, target))
		} else {
			collect(paths.AssertDoesNotExist(d, target))
		}
	}
	switch e.Type {
	case "file":
		collect(paths.AssertIsRegularFile(d, target))
	case "dir":
		collect(paths.AssertIsDirectory(d, target))
	case "symlink":
		collect(paths.AssertIsSymbolicLink(d, target))
	}
	if e.Readable != nil && *e.Readable {
		collect(paths.AssertIsReadable(d, target))
	}
	if e.Writable != nil && *e.Writable {
		collect(paths.AssertIsWritable(d, target))
	}
	if e.Executable != nil && *e.Executable {
		collect(paths.AssertIsExecutable(d, target))
	}
	if e.Absolute != nil && *e.Absolute {
		collect(paths.AssertIsAbsolute(d, target))
	}
	if e.Relative != nil && *e.Relative {
		collect(paths.AssertIsRelative(d, target))
	}
	if e.Normalized != nil && *e.Normalized {
		collect(paths.AssertIsNormalized(d, target))
	}
	if e.Canonical != nil && *e.Canonical {
		collect(paths.AssertIsCanonical(d, target))
	}
	if e.Parent != "" {
		if e.Raw {
			collect(paths.AssertHasParentRaw(d, target, e.Parent))
		} else {
			collect(paths.AssertHasParent(d, target, e.Parent))
		}
	}
	if e.NoParent != nil && *e.NoParent {
		if e.Raw {
			collect(paths.AssertHasNoParentRaw(d, target))
		} else {
			collect(paths.AssertHasNoParent(d, target))
		}
	}
	if e.StartsWith != "" {
		if e.Raw {
			collect(paths.AssertStartsWithRaw(d, target, e.StartsWith))
		} else {
			collect(paths.AssertStartsWith(d, target, e.StartsWith))
		}
	}
	if e.EndsWith != "" {
		if e.Raw {
			collect(paths.AssertEndsWithRaw(d, target, e.EndsWith))
		} else {
			collect(paths.AssertEndsWith(d, target, e.EndsWith))
		}
	}
	if e.FileName != "" {
		collect(paths.AssertHasFileName(d, target, e.FileName))
	}
	return errs
}
