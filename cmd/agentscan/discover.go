package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/maxepunk/agentscan/pkg/agents"
	"github.com/maxepunk/agentscan/pkg/catalog"
	"github.com/maxepunk/agentscan/pkg/config"
)

// DiscoverConfig holds configuration for the discover command
type DiscoverConfig struct {
	ProjectDir string
	UserDir    string
	Format     string
}

// NewDiscoverConfig creates a new DiscoverConfig with default values
func NewDiscoverConfig() *DiscoverConfig {
	return &DiscoverConfig{
		ProjectDir: config.DefaultProjectDir,
		UserDir:    config.DefaultUserDir,
		Format:     config.DefaultFormat,
	}
}

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Discover and catalog available subagents",
	Long: `Scan the project-level and user-level agents directories for subagent
definition files and print a categorized catalog.

Example:
  # Catalog agents from the standard directories
  agentscan discover

  # Machine-readable output
  agentscan discover --format json

  # Scan a custom project directory
  agentscan discover --project-dir tools/agents`,
	RunE: runDiscover,
}

func init() {
	rootCmd.AddCommand(discoverCmd)

	discoverDefaults := NewDiscoverConfig()
	discoverCmd.Flags().String("project-dir", discoverDefaults.ProjectDir, "Project-level agents directory")
	discoverCmd.Flags().String("user-dir", discoverDefaults.UserDir, "User-level agents directory")
	discoverCmd.Flags().String("format", discoverDefaults.Format, "Output format (text or json)")
}

// getDiscoverConfigFromFlags resolves the discover configuration:
// explicit flags override config file and environment values, which
// override the built-in defaults.
func getDiscoverConfigFromFlags(cmd *cobra.Command) (*DiscoverConfig, error) {
	resolved, err := config.GetConfigFromViper()
	if err != nil {
		return nil, err
	}

	discoverConfig := &DiscoverConfig{
		ProjectDir: resolved.ProjectDir,
		UserDir:    resolved.UserDir,
		Format:     resolved.Format,
	}

	if cmd.Flags().Changed("project-dir") {
		if projectDir, err := cmd.Flags().GetString("project-dir"); err == nil {
			discoverConfig.ProjectDir = projectDir
		}
	}
	if cmd.Flags().Changed("user-dir") {
		if userDir, err := cmd.Flags().GetString("user-dir"); err == nil {
			discoverConfig.UserDir = userDir
		}
	}
	if cmd.Flags().Changed("format") {
		if format, err := cmd.Flags().GetString("format"); err == nil {
			discoverConfig.Format = format
		}
	}

	if discoverConfig.Format != "text" && discoverConfig.Format != "json" {
		return nil, errors.Errorf("invalid output format %q (expected text or json)", discoverConfig.Format)
	}

	return discoverConfig, nil
}

func runDiscover(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logFlagOverrides(ctx, cmd)

	discoverConfig, err := getDiscoverConfigFromFlags(cmd)
	if err != nil {
		return err
	}

	scanner, err := agents.NewScanner(
		agents.WithProjectDir(discoverConfig.ProjectDir),
		agents.WithUserDir(discoverConfig.UserDir),
	)
	if err != nil {
		return errors.Wrap(err, "failed to configure scanner")
	}

	agentCatalog := catalog.New(scanner.Scan(ctx))

	out := cmd.OutOrStdout()
	if discoverConfig.Format == "json" {
		return agentCatalog.RenderJSON(out)
	}

	if err := agentCatalog.RenderText(out); err != nil {
		return err
	}
	if agentCatalog.Len() > 0 {
		return agentCatalog.RenderUsageSummary(out)
	}
	return nil
}
