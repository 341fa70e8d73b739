package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/maxepunk/agentscan/pkg/config"
	"github.com/maxepunk/agentscan/pkg/presenter"
	"github.com/maxepunk/agentscan/pkg/validation"
)

// ValidateConfig holds configuration for the validate command
type ValidateConfig struct {
	Strict bool
}

// NewValidateConfig creates a new ValidateConfig with default values
func NewValidateConfig() *ValidateConfig {
	return &ValidateConfig{
		Strict: false,
	}
}

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Validate subagent definition files",
	Long: `Validate one or more subagent definition files and print a report per
file. Errors make a definition invalid; warnings and suggestions are
advisory unless --strict is set, in which case warnings also fail the run.

Example:
  agentscan validate .claude/agents/code-reviewer.md

  # Validate everything in a directory, treating warnings as failures
  agentscan validate .claude/agents/*.md --strict`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !runValidate(cmd, args) {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateDefaults := NewValidateConfig()
	validateCmd.Flags().Bool("strict", validateDefaults.Strict, "Treat warnings as failures")
}

// getValidateConfigFromFlags resolves the validate configuration; the
// --strict flag overrides the config file and environment.
func getValidateConfigFromFlags(cmd *cobra.Command) (*ValidateConfig, error) {
	resolved, err := config.GetConfigFromViper()
	if err != nil {
		return nil, err
	}

	validateConfig := &ValidateConfig{Strict: resolved.Strict}
	if cmd.Flags().Changed("strict") {
		if strict, err := cmd.Flags().GetBool("strict"); err == nil {
			validateConfig.Strict = strict
		}
	}

	return validateConfig, nil
}

// runValidate reports on every named file and returns whether the whole
// batch passed.
func runValidate(cmd *cobra.Command, args []string) bool {
	ctx := cmd.Context()
	logFlagOverrides(ctx, cmd)

	validateConfig, err := getValidateConfigFromFlags(cmd)
	if err != nil {
		presenter.Error(err, "Failed to resolve configuration")
		presenter.Info("Check ~/.agentscan/config.yaml and the AGENTSCAN_* environment variables")
		return false
	}

	out := cmd.OutOrStdout()
	batch := validation.NewBatch(validateConfig.Strict)

	for _, path := range args {
		if _, err := os.Stat(path); err != nil {
			presenter.Error(err, fmt.Sprintf("File not found: %s", path))
			batch.Fail()
			continue
		}

		result := validation.ValidateFile(path)
		if err := result.RenderReport(out, filepath.Base(path)); err != nil {
			presenter.Error(err, "Failed to render validation report")
			return false
		}
		batch.Add(result)
	}

	if batch.OK() {
		fmt.Fprintf(out, "\n✅ All agent definitions are valid!\n\n")
		return true
	}

	fmt.Fprintf(out, "\n❌ Some agent definitions have issues. Please fix and re-validate.\n\n")
	return false
}
