package cmd

import (
	"github.com/spf13/cobra"

	"github.com/harrison/folder2json/internal/ident"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for folder2json
func NewRootCommand() *cobra.Command {
	return newRootCommand(ident.UUID{})
}

func newRootCommand(ids ident.Generator) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folder2json",
		Short: "Convert a folder of text files into a project JSON document",
		Long: `folder2json converts a folder of text files into a single JSON document
describing a project: a title, the list of sub-folders, and one document per
file with its sanitized content.

Files ending in .docx or .json and .DS_Store files are skipped. Files are
ordered by the first number in their name, so chapter_2.txt comes before
chapter_10.txt.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		// main prints the error
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("config", "", "Path to config file (default: nearest .folder2json/config.yaml)")
	cmd.PersistentFlags().String("log-level", "", "Log level: trace, debug, info, warn, error")

	cmd.AddCommand(newConvertCommand(ids))
	cmd.AddCommand(NewInspectCommand())

	return cmd
}
