package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/assertkit/packages/checkfile"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file|directory>",
	Short: "Validate check suite files for syntax errors",
	Long: `Validate check suite files for syntax errors without executing them.

Examples:
  assertkit validate deploy.checks.yaml
  assertkit validate ./checks/`,
	Args: cobra.MinimumNArgs(1),
	RunE: validateCommand,
}

func validateCommand(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return fmt.Errorf("no *.checks.yaml files found")
	}

	hasErrors := false
	for _, file := range files {
		_, err := checkfile.ParseFile(file)
		if err != nil {
			fmt.Fprintf(cmd.OutOrStderr(), "Error in %s: %v\n", file, err)
			hasErrors = true
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Valid: %s\n", file)
		}
	}

	if hasErrors {
		return fmt.Errorf("validation failed")
	}

	return nil
}
