package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/assertkit/packages/config"
	"github.com/abdul-hamid-achik/assertkit/packages/history"
)

var (
	historyDBFlag    string
	historyLimitFlag int
	historyOlderFlag string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect recorded check runs",
	Long: `Inspect the SQLite run history recorded by 'assertkit run --history'.

Examples:
  assertkit history list
  assertkit history list --limit 50
  assertkit history prune --older-than 168h`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent runs, newest first",
	RunE:  historyListCommand,
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete runs older than a cutoff",
	RunE:  historyPruneCommand,
}

func init() {
	historyCmd.PersistentFlags().StringVar(&historyDBFlag, "db", getEnvString("ASSERTKIT_HISTORY", ""), "Path to the history database (env: ASSERTKIT_HISTORY)")
	historyListCmd.Flags().IntVar(&historyLimitFlag, "limit", 20, "Maximum number of runs to show")
	historyPruneCmd.Flags().StringVar(&historyOlderFlag, "older-than", "720h", "Delete runs older than this duration (e.g. 24h, 168h)")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyPruneCmd)
}

func openHistory() (*history.Store, error) {
	path := historyDBFlag
	if path == "" {
		cfg, err := config.LoadConfig("")
		if err == nil {
			path = cfg.History
		}
	}
	if path == "" {
		return nil, fmt.Errorf("no history database configured (use --db or the history config key)")
	}
	return history.Open(path)
}

func historyListCommand(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.List(cmd.Context(), historyLimitFlag)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded.")
		return nil
	}

	for _, run := range runs {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  passed=%d failed=%d skipped=%d  %dms\n",
			run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			run.File, run.Passed, run.Failed, run.Skipped,
			run.Duration.Milliseconds())
	}
	return nil
}

func historyPruneCommand(cmd *cobra.Command, args []string) error {
	cutoff, err := time.ParseDuration(historyOlderFlag)
	if err != nil {
		return fmt.Errorf("invalid --older-than value %q: %w", historyOlderFlag, err)
	}

	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	removed, err := store.Prune(cmd.Context(), time.Now().Add(-cutoff))
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Pruned %d run(s).\n", removed)
	return nil
}
