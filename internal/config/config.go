package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/harrison/folder2json/internal/models"
)

// Output naming modes
const (
	// NamingFixed always writes OutputName.
	NamingFixed = "fixed"
	// NamingTitle writes "<project title>_output.json".
	NamingTitle = "title"
)

// Config represents folder2json configuration options
type Config struct {
	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogDir, when set, receives a run log per conversion
	LogDir string `yaml:"log_dir"`

	// OutputDir is the directory the JSON file is written to
	OutputDir string `yaml:"output_dir"`

	// OutputName is the JSON file name used with the "fixed" naming mode
	OutputName string `yaml:"output_name"`

	// OutputNaming selects how the output file is named (fixed, title)
	OutputNaming string `yaml:"output_naming"`

	// MaxConcurrency is the maximum number of files read at once (0 = unlimited)
	MaxConcurrency int `yaml:"max_concurrency"`

	// MaxDepth limits how deep the folder is walked (0 = unlimited, 1 = top level only)
	MaxDepth int `yaml:"max_depth"`

	// Locale is the BCP 47 tag used to order names without numbers ("" = root order)
	Locale string `yaml:"locale"`

	// ExcludeExtensions are skipped in addition to .docx and .json
	ExcludeExtensions []string `yaml:"exclude_extensions"`

	// ExcludeNames are skipped in addition to .DS_Store
	ExcludeNames []string `yaml:"exclude_names"`

	// ExcludeDirs are directory names never descended into
	ExcludeDirs []string `yaml:"exclude_dirs"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel:       "info",
		LogDir:         "",
		OutputDir:      ".",
		OutputName:     models.DefaultOutputName,
		OutputNaming:   NamingFixed,
		MaxConcurrency: 0, // Unlimited
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-zero values from file (merging with defaults)
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = normalizeLevel(fileCfg.LogLevel)
	}
	if fileCfg.LogDir != "" {
		cfg.LogDir = fileCfg.LogDir
	}
	if fileCfg.OutputDir != "" {
		cfg.OutputDir = fileCfg.OutputDir
	}
	if fileCfg.OutputName != "" {
		cfg.OutputName = fileCfg.OutputName
	}
	if fileCfg.OutputNaming != "" {
		cfg.OutputNaming = fileCfg.OutputNaming
	}
	if fileCfg.MaxConcurrency != 0 {
		cfg.MaxConcurrency = fileCfg.MaxConcurrency
	}
	if fileCfg.MaxDepth != 0 {
		cfg.MaxDepth = fileCfg.MaxDepth
	}
	if fileCfg.Locale != "" {
		cfg.Locale = strings.TrimSpace(fileCfg.Locale)
	}
	cfg.ExcludeExtensions = fileCfg.ExcludeExtensions
	cfg.ExcludeNames = fileCfg.ExcludeNames
	cfg.ExcludeDirs = fileCfg.ExcludeDirs

	return cfg, nil
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(logLevel, logDir, outputDir, outputName, outputNaming, locale *string, maxConcurrency, maxDepth *int) {
	if logLevel != nil {
		c.LogLevel = normalizeLevel(*logLevel)
	}
	if logDir != nil {
		c.LogDir = *logDir
	}
	if outputDir != nil {
		c.OutputDir = *outputDir
	}
	if outputName != nil {
		c.OutputName = *outputName
	}
	if outputNaming != nil {
		c.OutputNaming = *outputNaming
	}
	if locale != nil {
		c.Locale = strings.TrimSpace(*locale)
	}
	if maxConcurrency != nil {
		c.MaxConcurrency = *maxConcurrency
	}
	if maxDepth != nil {
		c.MaxDepth = *maxDepth
	}
}

// normalizeLevel lowercases and trims a log level so "INFO" and " info " are accepted.
func normalizeLevel(level string) string {
	return strings.ToLower(strings.TrimSpace(level))
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if c.MaxConcurrency < 0 {
		return fmt.Errorf("max_concurrency must be >= 0, got %d", c.MaxConcurrency)
	}

	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must be >= 0, got %d", c.MaxDepth)
	}

	if c.Locale != "" {
		if _, err := language.Parse(c.Locale); err != nil {
			return fmt.Errorf("invalid locale %q: %w", c.Locale, err)
		}
	}

	switch c.OutputNaming {
	case NamingFixed:
		if c.OutputName == "" {
			return fmt.Errorf("output_name cannot be empty when output_naming is %q", NamingFixed)
		}
		if strings.ContainsAny(c.OutputName, `/\`) {
			return fmt.Errorf("output_name must be a file name, got %q", c.OutputName)
		}
	case NamingTitle:
	default:
		return fmt.Errorf("invalid output_naming %q, must be one of: %s, %s", c.OutputNaming, NamingFixed, NamingTitle)
	}

	if c.OutputDir == "" {
		return fmt.Errorf("output_dir cannot be empty")
	}

	return nil
}

// OutputPath returns the path the converted project for title is written to.
func (c *Config) OutputPath(title string) string {
	name := c.OutputName
	if c.OutputNaming == NamingTitle {
		name = models.OutputNameForTitle(title)
	}
	return filepath.Join(c.OutputDir, name)
}

// CollationLanguage returns the language used to order file names. Call it
// only after Validate.
func (c *Config) CollationLanguage() language.Tag {
	if c.Locale == "" {
		return language.Und
	}
	return language.Make(c.Locale)
}
