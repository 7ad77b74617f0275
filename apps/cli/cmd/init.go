package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var forceInit bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new assertkit project",
	Long: `Initialize a new assertkit project in the current directory.

This creates:
  - assertkit.yaml        - Configuration file
  - example.checks.yaml   - Example check suite

Examples:
  assertkit init
  assertkit init --force`,
	RunE: initCommand,
}

func init() {
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Overwrite existing files")
}

func initCommand(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	configFile := filepath.Join(cwd, "assertkit.yaml")
	exampleFile := filepath.Join(cwd, "example.checks.yaml")

	if !forceInit {
		for _, f := range []string{configFile, exampleFile} {
			if _, err := os.Stat(f); err == nil {
				return fmt.Errorf("file already exists: %s (use --force to overwrite)", f)
			}
		}
	}

	configContent := map[string]any{
		"reporter": "console",
		"bail":     false,
		"history":  ".assertkit/history.db",
	}

	configYAML, _ := yaml.Marshal(configContent)
	if err := os.WriteFile(configFile, configYAML, 0o644); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", configFile)

	exampleContent := `version: 1

checks:
  - name: project config present
    path: assertkit.yaml
    tags: [smoke]
    expect:
      exists: true
      type: file
      readable: true
      file_name: assertkit.yaml

  - name: working directory sane
    path: .
    tags: [smoke]
    expect:
      type: dir
      writable: true

  - name: no leftover lock file
    path: .assertkit/run.lock
    expect:
      exists: false
`

	if err := os.WriteFile(exampleFile, []byte(exampleContent), 0o644); err != nil {
		return fmt.Errorf("failed to create example file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", exampleFile)

	fmt.Fprintf(cmd.OutOrStdout(), "\nassertkit project initialized!\n")
	fmt.Fprintf(cmd.OutOrStdout(), "Run 'assertkit run example.checks.yaml' to execute the example checks.\n")

	return nil
}
