package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harrison/folder2json/internal/builder"
	"github.com/harrison/folder2json/internal/config"
	"github.com/harrison/folder2json/internal/display"
	"github.com/harrison/folder2json/internal/fileutil"
	"github.com/harrison/folder2json/internal/logger"
)

// loadConfig loads the config file and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	stringFlag := func(name string) *string {
		if cmd.Flags().Lookup(name) == nil || !cmd.Flags().Changed(name) {
			return nil
		}
		v, _ := cmd.Flags().GetString(name)
		return &v
	}
	intFlag := func(name string) *int {
		if cmd.Flags().Lookup(name) == nil || !cmd.Flags().Changed(name) {
			return nil
		}
		v, _ := cmd.Flags().GetInt(name)
		return &v
	}

	cfg.MergeWithFlags(
		stringFlag("log-level"),
		stringFlag("log-dir"),
		stringFlag("output-dir"),
		stringFlag("output-name"),
		stringFlag("output-naming"),
		stringFlag("locale"),
		intFlag("max-concurrency"),
		intFlag("max-depth"),
	)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newRunLogger builds the console logger and, when log_dir is set, a file
// logger. The returned function closes the file logger.
func newRunLogger(stderr io.Writer, cfg *config.Config) (logger.Logger, func(), error) {
	console := logger.NewConsoleLogger(stderr, cfg.LogLevel)
	if cfg.LogDir == "" {
		return console, func() {}, nil
	}

	fileLog, err := logger.NewFileLogger(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create file logger: %w", err)
	}
	console.LogDebug(fmt.Sprintf("Writing run log to %s", fileLog.RunFile()))
	closeFn := func() {
		if err := fileLog.Close(); err != nil {
			fmt.Fprintf(stderr, "Warning: failed to close log file: %v\n", err)
		}
	}
	return logger.NewMultiLogger(console, fileLog), closeFn, nil
}

// collect scans dir with the configured exclusions and reports walk errors
// as a warning.
func collect(dir string, cfg *config.Config, stderr io.Writer, log logger.Logger) (*fileutil.ScanResult, error) {
	result, err := fileutil.CollectFiles(dir, fileutil.ScanOptions{
		ExcludeDirs: cfg.ExcludeDirs,
		MaxDepth:    cfg.MaxDepth,
	})
	if err != nil {
		return nil, err
	}
	log.LogDebug(fmt.Sprintf("Found %d files in %s", len(result.Files), result.Root))

	if len(result.Errors) > 0 {
		entries := make([]string, len(result.Errors))
		for i, e := range result.Errors {
			entries[i] = e.Error()
			log.LogWarn(fmt.Sprintf("Scan error: %v", e))
		}
		display.Warning{
			Title: "Some entries could not be scanned",
			Files: entries,
		}.Display(stderr)
	}
	return result, nil
}

func builderOptions(cfg *config.Config) builder.Options {
	return builder.Options{
		ExcludeExtensions: cfg.ExcludeExtensions,
		ExcludeNames:      cfg.ExcludeNames,
		MaxConcurrency:    cfg.MaxConcurrency,
		Language:          cfg.CollationLanguage(),
	}
}

// addSelectionFlags registers the flags shared by commands that scan a folder.
func addSelectionFlags(cmd *cobra.Command) {
	cmd.Flags().Int("max-depth", 0, "Maximum folder depth to scan (0 = unlimited, 1 = top level only)")
	cmd.Flags().String("locale", "", "BCP 47 locale used to order names without numbers (e.g. sv, de)")
}

// noSelectionNotice is shown when the folder holds no files at all.
func noSelectionNotice(dir string) display.Notice {
	return display.Notice{
		Title:      "No files selected",
		Message:    fmt.Sprintf("%s contains no files.", dir),
		Suggestion: "Please select a folder with at least one file.",
	}
}
