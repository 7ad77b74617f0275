package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/assertkit/packages/checkfile"
)

var listCmd = &cobra.Command{
	Use:   "list <file|directory>",
	Short: "List all checks in check suite files",
	Long: `List all checks defined in *.checks.yaml files.

Examples:
  assertkit list deploy.checks.yaml
  assertkit list ./checks/`,
	Args: cobra.MinimumNArgs(1),
	RunE: listCommand,
}

func listCommand(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return fmt.Errorf("no *.checks.yaml files found")
	}

	for _, file := range files {
		suite, err := checkfile.ParseFile(file)
		if err != nil {
			fmt.Fprintf(cmd.OutOrStderr(), "Error parsing %s: %v\n", file, err)
			continue
		}

		fmt.Fprintf(cmd.OutOrStdout(), "\n%s:\n", file)
		for _, check := range suite.Checks {
			fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", check.Name)
			if len(check.Tags) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "    tags: %v\n", check.Tags)
			}
		}
	}

	return nil
}
