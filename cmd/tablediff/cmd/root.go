package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// defaultConfigFile is looked for in the working directory; its absence is
// fine when the sources are given entirely through flags.
const defaultConfigFile = "tablediff.yaml"

// CLI flags that override config file values
var (
	cfgFile   string
	logLevel  string
	logFormat string
	leftPath  string
	rightPath string
	delimiter string
	limit     int
	filterOpt string
	modeOpt   string
)

var rootCmd = &cobra.Command{
	Use:   "tablediff",
	Short: "Tabular Dataset Comparison Tool",
	Long: `A CLI tool for comparing two tabular datasets row-for-row under a
flexible column mapping.

Features:
  - Full outer join on mapped key columns with provenance classification
  - Automatic column mapping seeded from matching column names
  - CSV and MySQL dataset sources with per-column type inference
  - Difference previews, provenance filtering, and CSV export`,
	Version: Version,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", defaultConfigFile,
		"Path to configuration file")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Source overrides
	rootCmd.PersistentFlags().StringVar(&leftPath, "left", "",
		"Override left dataset file path")
	rootCmd.PersistentFlags().StringVar(&rightPath, "right", "",
		"Override right dataset file path")
	rootCmd.PersistentFlags().StringVar(&delimiter, "delimiter", "",
		"Override field delimiter for file sources")

	// Display overrides
	rootCmd.PersistentFlags().IntVar(&limit, "limit", 0,
		"Override preview row limit")
	rootCmd.PersistentFlags().StringVar(&filterOpt, "filter", "",
		"Override difference filter (all, left-only, right-only, both)")
	rootCmd.PersistentFlags().StringVar(&modeOpt, "mode", "",
		"Override mapping mode (all, custom)")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel  string
	LogFormat string
	LeftPath  string
	RightPath string
	Delimiter string
	Limit     int
	Filter    string
	Mode      string
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel:  logLevel,
		LogFormat: logFormat,
		LeftPath:  leftPath,
		RightPath: rightPath,
		Delimiter: delimiter,
		Limit:     limit,
		Filter:    filterOpt,
		Mode:      modeOpt,
	}
}
