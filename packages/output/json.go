package output

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/abdul-hamid-achik/assertkit/packages/runner"
)

// JSONOutput is the root of the machine-readable report.
type JSONOutput struct {
	Summary  JSONSummary `json:"summary"`
	Checks   []JSONCheck `json:"checks"`
	Duration float64     `json:"duration"`
	Time     string      `json:"time"`
}

type JSONSummary struct {
	Total   int `json:"total"`
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

// JSONCheck is a single check result.
type JSONCheck struct {
	Name       string   `json:"name"`
	File       string   `json:"file"`
	Path       string   `json:"path"`
	Passed     bool     `json:"passed"`
	Skipped    bool     `json:"skipped,omitempty"`
	SkipReason string   `json:"skipReason,omitempty"`
	Duration   float64  `json:"duration"`
	Failures   []string `json:"failures,omitempty"`
}

// JSONFormatter accumulates results and emits one JSON document on
// Flush.
type JSONFormatter struct {
	writer io.Writer
	checks []JSONCheck
}

type JSONOption func(*JSONFormatter)

func NewJSONFormatter(opts ...JSONOption) *JSONFormatter {
	f := &JSONFormatter{
		writer: os.Stdout,
		checks: make([]JSONCheck, 0),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func JSONWithWriter(w io.Writer) JSONOption {
	return func(f *JSONFormatter) {
		f.writer = w
	}
}

func (f *JSONFormatter) FormatResult(result *runner.SuiteResult) {
	for _, r := range result.Results {
		check := JSONCheck{
			Name:     r.Name,
			File:     result.File,
			Path:     r.Path,
			Passed:   r.Passed,
			Skipped:  r.Skipped,
			Duration: float64(r.Duration.Milliseconds()),
			Failures: r.Failures,
		}
		if r.SkipReason != "" {
			check.SkipReason = r.SkipReason
		}
		f.checks = append(f.checks, check)
	}
}

func (f *JSONFormatter) FormatError(err error) {
	// Errors surface through the process exit code
}

func (f *JSONFormatter) FormatHeader(version string) {
	// No header needed for JSON output
}

// Flush writes the accumulated JSON output
func (f *JSONFormatter) Flush(totalDuration time.Duration) error {
	var passed, failed, skipped int
	for _, c := range f.checks {
		switch {
		case c.Skipped:
			skipped++
		case c.Passed:
			passed++
		default:
			failed++
		}
	}

	output := JSONOutput{
		Summary: JSONSummary{
			Total:   len(f.checks),
			Passed:  passed,
			Failed:  failed,
			Skipped: skipped,
		},
		Checks:   f.checks,
		Duration: float64(totalDuration.Milliseconds()),
		Time:     time.Now().Format(time.RFC3339),
	}

	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
