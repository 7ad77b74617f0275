package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"golang.org/x/time/rate"

	"github.com/abdul-hamid-achik/assertkit/packages/checkfile"
)

// ProbeConfig controls repeated suite execution.
type ProbeConfig struct {
	// Iterations is how many times to run the suite. Must be >= 1.
	Iterations int

	// Rate paces iterations per second. Zero means unpaced.
	Rate float64
}

// ProbeResult aggregates latency and stability over the iterations.
type ProbeResult struct {
	File       string
	Iterations int
	Failures   int
	Duration   time.Duration

	P50 time.Duration
	P95 time.Duration
	P99 time.Duration
	Max time.Duration

	// Last is the result of the final iteration, for detailed output.
	Last *SuiteResult
}

// Probe runs the suite repeatedly and records per-iteration latency.
// An iteration counts as failed when any of its checks fail. Filesystem
// state can change between iterations, so an unstable environment shows
// up as a nonzero failure count.
func (r *Runner) Probe(ctx context.Context, path string, cfg *ProbeConfig) (*ProbeResult, error) {
	if cfg == nil || cfg.Iterations < 1 {
		return nil, fmt.Errorf("probe needs at least one iteration")
	}

	suite, err := checkfile.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading suite: %w", err)
	}

	var limiter *rate.Limiter
	if cfg.Rate > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.Rate), 1)
	}

	// Histogram: 1us to 60s range, 3 significant digits
	hist := hdrhistogram.New(1, 60_000_000, 3)

	result := &ProbeResult{
		File:       path,
		Iterations: cfg.Iterations,
	}

	start := time.Now()
	for i := 0; i < cfg.Iterations; i++ {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		sr, err := r.RunSuite(ctx, suite)
		if err != nil {
			return nil, err
		}
		if sr.Failed > 0 {
			result.Failures++
		}
		// values outside the 60s histogram range are dropped
		_ = hist.RecordValue(sr.Duration.Microseconds())
		result.Last = sr
	}
	result.Duration = time.Since(start)

	result.P50 = time.Duration(hist.ValueAtQuantile(50)) * time.Microsecond
	result.P95 = time.Duration(hist.ValueAtQuantile(95)) * time.Microsecond
	result.P99 = time.Duration(hist.ValueAtQuantile(99)) * time.Microsecond
	result.Max = time.Duration(hist.Max()) * time.Microsecond
	return result, nil
}
