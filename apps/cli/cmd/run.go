package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/assertkit/packages/checkfile"
	"github.com/abdul-hamid-achik/assertkit/packages/config"
	"github.com/abdul-hamid-achik/assertkit/packages/history"
	"github.com/abdul-hamid-achik/assertkit/packages/output"
	"github.com/abdul-hamid-achik/assertkit/packages/runner"
)

var runCmd = &cobra.Command{
	Use:   "run <file|directory>",
	Short: "Run filesystem checks from check suite files",
	Long: `Run the checks defined in *.checks.yaml files.

Examples:
  assertkit run deploy.checks.yaml
  assertkit run ./checks/ --tags smoke
  assertkit run deploy.checks.yaml --output json
  assertkit run deploy.checks.yaml --watch

Probe Mode:
  assertkit run deploy.checks.yaml --repeat 100
  assertkit run deploy.checks.yaml --repeat 100 --rate 10`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCommand,
}

const (
	// WatchDebounceDelay is the debounce delay for file watch events
	WatchDebounceDelay = 300 * time.Millisecond
)

var (
	tagsFlag       string
	verboseFlag    int // 0=off, 1=-v, 2=-vv
	quietFlag      bool
	bailFlag       bool
	noColorFlag    bool
	dryRunFlag     bool
	outputFlag     string
	outputFileFlag string
	watchFlag      bool
	configFlag     string
	baseDirFlag    string
	historyFlag    string

	// Probe mode flags
	repeatFlag int
	rateFlag   float64
)

func init() {
	// Core flags
	runCmd.Flags().StringVar(&configFlag, "config", getEnvString("ASSERTKIT_CONFIG", ""), "Path to config file (env: ASSERTKIT_CONFIG)")
	runCmd.Flags().StringVarP(&tagsFlag, "tags", "t", getEnvString("ASSERTKIT_TAGS", ""), "Run only checks with specified tags (comma-separated) (env: ASSERTKIT_TAGS)")
	runCmd.Flags().StringVar(&baseDirFlag, "base-dir", "", "Resolve relative check paths against this directory")

	// Output flags
	runCmd.Flags().CountVarP(&verboseFlag, "verbose", "v", "Verbose output (-v, -vv for more detail)")
	runCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", getEnvBool("ASSERTKIT_QUIET", false), "Suppress all output except errors (env: ASSERTKIT_QUIET)")
	runCmd.Flags().BoolVar(&noColorFlag, "no-color", getEnvBool("ASSERTKIT_NO_COLOR", false), "Disable colored output (env: ASSERTKIT_NO_COLOR)")
	runCmd.Flags().StringVarP(&outputFlag, "output", "o", getEnvString("ASSERTKIT_OUTPUT", "console"), "Output format: console, json, junit, tap (env: ASSERTKIT_OUTPUT)")
	runCmd.Flags().StringVar(&outputFileFlag, "output-file", getEnvString("ASSERTKIT_OUTPUT_FILE", ""), "Write output to file (default: stdout) (env: ASSERTKIT_OUTPUT_FILE)")

	// Execution flags
	runCmd.Flags().BoolVar(&bailFlag, "bail", getEnvBool("ASSERTKIT_BAIL", false), "Stop on first failure (env: ASSERTKIT_BAIL)")
	runCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Parse and show what would run without executing")
	runCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Watch files for changes and re-run checks")
	runCmd.Flags().StringVar(&historyFlag, "history", getEnvString("ASSERTKIT_HISTORY", ""), "Record results in a SQLite history database (env: ASSERTKIT_HISTORY)")

	// Probe mode flags
	runCmd.Flags().IntVar(&repeatFlag, "repeat", getEnvInt("ASSERTKIT_REPEAT", 0), "Run each suite this many times and report latency percentiles (env: ASSERTKIT_REPEAT)")
	runCmd.Flags().Float64VarP(&rateFlag, "rate", "r", 0, "Pace probe iterations per second (requires --repeat)")
}

// Environment variable helpers
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		return val == "true" || val == "1" || val == "yes"
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// Formatter interface for all output formatters
type Formatter interface {
	FormatResult(result *runner.SuiteResult)
	FormatError(err error)
	FormatHeader(version string)
}

// Flushable interface for formatters that need to flush output
type Flushable interface {
	Flush(totalDuration time.Duration) error
}

func newFormatter(format string, w *os.File, verbose, noColor bool) Formatter {
	switch strings.ToLower(format) {
	case "json":
		opts := []output.JSONOption{}
		if w != nil {
			opts = append(opts, output.JSONWithWriter(w))
		}
		return output.NewJSONFormatter(opts...)
	case "junit":
		opts := []output.JUnitOption{}
		if w != nil {
			opts = append(opts, output.JUnitWithWriter(w))
		}
		return output.NewJUnitFormatter(opts...)
	case "tap":
		opts := []output.TAPOption{}
		if w != nil {
			opts = append(opts, output.TAPWithWriter(w))
		}
		return output.NewTAPFormatter(opts...)
	default: // "console"
		consoleOpts := []output.ConsoleOption{
			output.WithVerbose(verbose),
			output.WithNoColor(noColor),
		}
		if w != nil {
			consoleOpts = append(consoleOpts, output.WithWriter(w))
		}
		return output.NewConsoleFormatter(consoleOpts...)
	}
}

func runCommand(cmd *cobra.Command, args []string) error {
	// Load config from file (if present) and apply CLI overrides
	fileConfig, err := config.LoadConfig(configFlag)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// The --output flag and ASSERTKIT_OUTPUT take precedence over the config file
	reporter := outputFlag
	if !cmd.Flags().Changed("output") && os.Getenv("ASSERTKIT_OUTPUT") == "" && fileConfig.Reporter != "" {
		reporter = fileConfig.Reporter
	}
	verbose := verboseFlag > 0 || fileConfig.GetVerbose()
	noColor := noColorFlag || quietFlag || fileConfig.GetNoColor()

	// Setup output writer
	var outWriter *os.File
	if outputFileFlag != "" {
		outWriter, err = os.Create(outputFileFlag)
		if err != nil {
			return fmt.Errorf("cannot create output file: %w", err)
		}
		defer outWriter.Close()
	}

	formatter := newFormatter(reporter, outWriter, verbose, noColor)
	formatter.FormatHeader(version)

	files, err := collectFiles(args)
	if err != nil {
		formatter.FormatError(err)
		return err
	}

	if len(files) == 0 {
		err := fmt.Errorf("no *.checks.yaml files found")
		formatter.FormatError(err)
		return err
	}

	tagsFilter := splitTags(tagsFlag)
	if len(tagsFilter) == 0 {
		tagsFilter = fileConfig.Tags
	}

	bail := bailFlag || fileConfig.GetBail()

	cfg := &runner.Config{
		Bail:    bail,
		Tags:    tagsFilter,
		BaseDir: baseDirFlag,
	}
	r := runner.NewRunner(cfg)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	repeat := repeatFlag
	if repeat == 0 {
		repeat = fileConfig.Repeat
	}
	if repeat > 0 {
		iterationRate := rateFlag
		if iterationRate == 0 {
			iterationRate = fileConfig.Rate
		}
		return runProbeMode(ctx, r, files, repeat, iterationRate, verbose, noColor)
	}

	historyPath := historyFlag
	if historyPath == "" {
		historyPath = fileConfig.History
	}
	var store *history.Store
	if historyPath != "" {
		store, err = history.Open(historyPath)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	// Create a function to run all suites
	runChecks := func(formatter Formatter) (int, time.Duration) {
		totalFailed := 0
		startTime := time.Now()

		for _, file := range files {
			if dryRunFlag {
				fmt.Fprintf(cmd.OutOrStdout(), "Would run: %s\n", file)
				continue
			}

			result, err := r.RunFile(ctx, file)
			if err != nil {
				formatter.FormatError(err)
				totalFailed++
				if bail {
					break
				}
				continue
			}

			formatter.FormatResult(result)
			totalFailed += result.Failed

			if store != nil {
				_, err := store.Record(ctx, &history.Run{
					File:      file,
					Passed:    result.Passed,
					Failed:    result.Failed,
					Skipped:   result.Skipped,
					Duration:  result.Duration,
					StartedAt: startTime,
				})
				if err != nil {
					fmt.Fprintf(os.Stderr, "warning: failed to record run: %v\n", err)
				}
			}

			if bail && result.Failed > 0 {
				break
			}
		}

		return totalFailed, time.Since(startTime)
	}

	totalFailed, totalDuration := runChecks(formatter)

	// Flush output for formatters that accumulate results
	if flushable, ok := formatter.(Flushable); ok {
		if err := flushable.Flush(totalDuration); err != nil {
			return fmt.Errorf("error writing output: %w", err)
		}
	}

	// If watch mode is not enabled, exit normally. Failures surface as an
	// error so deferred cleanup (output file, history store) still runs.
	if !watchFlag {
		if totalFailed > 0 {
			return errChecksFailed
		}
		return nil
	}

	// Watch mode: set up file watcher
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	watchedDirs := make(map[string]bool)
	for _, file := range files {
		dir := filepath.Dir(file)
		if !watchedDirs[dir] {
			if err := watcher.Add(dir); err != nil {
				formatter.FormatError(fmt.Errorf("failed to watch %s: %w", dir, err))
			}
			watchedDirs[dir] = true
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nWatching for changes... (press Ctrl+C to stop)\n\n")

	// Debounce timer for rapid file changes
	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			// Only react to write events on check files
			if event.Has(fsnotify.Write) && checkfile.IsCheckFile(event.Name) {
				// Debounce: reset timer on each event
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(WatchDebounceDelay, func() {
					fmt.Fprintf(cmd.OutOrStdout(), "\n\nFile changed: %s\nRe-running checks...\n\n", event.Name)

					// Accumulating formatters need fresh state per run
					f := newFormatter(reporter, nil, verbose, noColor)
					_, duration := runChecks(f)
					if flushable, ok := f.(Flushable); ok {
						_ = flushable.Flush(duration)
					}

					fmt.Fprintf(cmd.OutOrStdout(), "\nWatching for changes... (press Ctrl+C to stop)\n")
				})
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			formatter.FormatError(fmt.Errorf("watcher error: %w", err))
		}
	}
}

// runProbeMode runs each suite repeatedly and prints latency percentiles.
func runProbeMode(ctx context.Context, r *runner.Runner, files []string, repeat int, iterationRate float64, verbose, noColor bool) error {
	console := output.NewConsoleFormatter(
		output.WithVerbose(verbose),
		output.WithNoColor(noColor),
	)

	failed := false
	for _, file := range files {
		result, err := r.Probe(ctx, file, &runner.ProbeConfig{
			Iterations: repeat,
			Rate:       iterationRate,
		})
		if err != nil {
			console.FormatError(err)
			return err
		}
		console.FormatProbeResult(result)
		if result.Failures > 0 {
			failed = true
		}
	}

	if failed {
		return errChecksFailed
	}
	return nil
}

func splitTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func collectFiles(args []string) ([]string, error) {
	var files []string

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", arg, err)
		}

		if info.IsDir() {
			err := filepath.Walk(arg, func(path string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}
				if !info.IsDir() && checkfile.IsCheckFile(path) {
					files = append(files, path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
		} else {
			if checkfile.IsCheckFile(arg) {
				files = append(files, arg)
			}
		}
	}

	return files, nil
}
