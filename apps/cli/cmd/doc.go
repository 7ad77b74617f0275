// Package cmd implements the assertkit CLI commands using Cobra.
//
// Available commands:
//   - run: Execute filesystem checks from check suite files
//   - validate: Check suite file syntax without executing
//   - list: Display all checks defined in files
//   - history: Inspect the recorded run history
//   - init: Create a new assertkit project with example files
//   - version: Show assertkit version information
//
// The CLI supports various flags for filtering, output formatting,
// probe mode, and watch mode for development workflows.
package cmd
