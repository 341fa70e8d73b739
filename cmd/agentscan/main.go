package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/maxepunk/agentscan/pkg/config"
	"github.com/maxepunk/agentscan/pkg/logger"
	"github.com/maxepunk/agentscan/pkg/presenter"
	"github.com/maxepunk/agentscan/pkg/version"
)

func init() {
	// Environment variables
	viper.SetEnvPrefix("AGENTSCAN")
	viper.AutomaticEnv()

	// Config file support
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.agentscan")
	viper.AddConfigPath(".")

	// Load config file if it exists (ignore errors if it doesn't)
	_ = viper.ReadInConfig()

	// Register configuration defaults
	config.Init()
}

var rootCmd = &cobra.Command{
	Use:   "agentscan",
	Short: "Catalog and validate Claude Code subagent definitions",
	Long: `Agentscan discovers subagent definition files in the project-level and
user-level agents directories, catalogs them by capability, and validates
individual definitions against the subagent authoring conventions.`,
	Version: version.Get().String(),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		presenter.SetQuiet(viper.GetBool("quiet"))

		if level := viper.GetString("log_level"); logger.SetLogLevel(level) != nil {
			presenter.Warning(fmt.Sprintf("Invalid log level %q, keeping default", level))
		}
		logger.SetLogFormat(viper.GetString("log_format"))
	},
	// Default behavior is to show help if no subcommand is provided
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// logFlagOverrides records explicitly set flags at debug level so the
// effective invocation shows up when troubleshooting a scan.
func logFlagOverrides(ctx context.Context, cmd *cobra.Command) {
	fields := logrus.Fields{}
	cmd.Flags().Visit(func(flag *pflag.Flag) {
		fields["flag."+flag.Name] = flag.Value.String()
	})
	if len(fields) > 0 {
		logger.G(ctx).WithFields(fields).Debug("Command flag overrides")
	}
}

func main() {
	// Add global flags
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress status messages; reports and catalogs still print")

	// Bind flags to viper
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))

	// Execute
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
