package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joshuapare/vendortags/internal/logger"
	"github.com/joshuapare/vendortags/tags/catalog"
	"github.com/joshuapare/vendortags/tags/printer"
	"github.com/joshuapare/vendortags/tags/registry"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	yamlOut bool
	logFile string
)

var rootCmd = &cobra.Command{
	Use:   "tagctl",
	Short: "Inspect the vendor tag catalogue",
	Long: `tagctl lists the vendor metadata sections and tags this HAL exposes
and decodes raw 32-bit tag values into their section, name and value type.`,
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging()
	},
	SilenceUsage: true,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&yamlOut, "yaml", false, "Output in YAML format")
	rootCmd.PersistentFlags().
		StringVar(&logFile, "log-file", "", "Append rejected-tag diagnostics to this file")
	rootCmd.MarkFlagsMutuallyExclusive("json", "yaml")
}

func execute() {
	err := rootCmd.Execute()
	if cerr := logger.Close(); cerr != nil {
		fmt.Fprintln(os.Stderr, "closing log file:", cerr)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initLogging routes registry diagnostics to --log-file, or to stderr with
// --verbose. Otherwise they are discarded.
func initLogging() error {
	switch {
	case logFile != "":
		if err := logger.Init(logger.Options{Enabled: true, File: logFile, Level: slog.LevelDebug}); err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		return nil
	case verbose && !quiet:
		return logger.Init(logger.Options{Enabled: true, Output: os.Stderr, Level: slog.LevelDebug})
	default:
		return logger.Init(logger.Options{Enabled: false})
	}
}

// newRegistry returns a registry over the compiled-in catalogue.
func newRegistry() *registry.Registry {
	return registry.New(catalog.Demo())
}

// printerOptions maps the global output flags onto printer options.
func printerOptions() printer.Options {
	opts := printer.DefaultOptions()
	switch {
	case jsonOut:
		opts.Format = printer.FormatJSON
	case yamlOut:
		opts.Format = printer.FormatYAML
	}
	return opts
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}
