package cmd

import "errors"

// errChecksFailed reports a run that completed with failing checks.
// Execute maps it to ExitCheckFailure after deferred cleanup has run.
var errChecksFailed = errors.New("one or more checks failed")

// Exit codes for assertkit CLI
const (
	// ExitSuccess indicates all checks passed
	ExitSuccess = 0

	// ExitCheckFailure indicates one or more checks failed
	ExitCheckFailure = 1

	// ExitParseError indicates a check file parsing error
	ExitParseError = 2

	// ExitConfigError indicates a configuration error
	ExitConfigError = 3

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)
