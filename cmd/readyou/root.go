package main

import (
	"readyou/internal/config"
	"readyou/internal/version"

	"github.com/spf13/cobra"
)

var (
	// persistent flags
	configDirFlag string
	logLevelFlag  string

	// generation flags
	modelFlag   string
	verboseFlag bool
	dryRunFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "readyou <repo-path>",
	Short: "read-you - automatic README generator",
	Long: `read-you scans a repository, selects its most representative source files,
and generates a README.md from them using the OpenAI API.`,
	Args:          cobra.ExactArgs(1),
	RunE:          runGenerate,
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("read-you version {{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "",
		"Additional config directory searched before the default locations")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "",
		"Log level: debug, info, warn, or error (default: from config)")

	rootCmd.Flags().StringVar(&modelFlag, "model", "", "OpenAI model to use (default: from config)")
	rootCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Generate detailed README")
	rootCmd.Flags().BoolVarP(&dryRunFlag, "dry-run", "d", false, "Preview without creating file")
}

// configSearchDirs returns the candidate config directories, with the
// --config-dir override searched first when set.
func configSearchDirs() []string {
	dirs := config.DefaultSearchDirs()
	if configDirFlag != "" {
		return append([]string{configDirFlag}, dirs...)
	}
	return dirs
}
