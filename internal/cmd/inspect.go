package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harrison/folder2json/internal/builder"
	"github.com/harrison/folder2json/internal/display"
	"github.com/harrison/folder2json/internal/ident"
)

// NewInspectCommand creates the inspect command
func NewInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <folder>",
		Short: "Show what convert would produce without reading any file",
		Long: `List the project title and the files convert would turn into documents,
in output order, with each document's folder and title. Excluded files are
listed separately.`,
		Args: cobra.ExactArgs(1),
		RunE: runInspect,
	}
	addSelectionFlags(cmd)
	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	log, closeLog, err := newRunLogger(stderr, cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	scan, err := collect(args[0], cfg, stderr, log)
	if err != nil {
		log.LogError(fmt.Sprintf("Inspection of %s failed: %v", args[0], err))
		return err
	}
	if len(scan.Files) == 0 {
		noSelectionNotice(args[0]).Display(stderr)
		return builder.ErrNoFiles
	}

	// Plan never generates identifiers.
	plan := builder.New(ident.UUID{}, builderOptions(cfg), log).Plan(scan.BuilderFiles())
	printPlan(cmd.OutOrStdout(), plan)

	if len(plan.Excluded) > 0 {
		excluded := make([]string, len(plan.Excluded))
		for i, f := range plan.Excluded {
			excluded[i] = f.RelativePath()
		}
		display.Warning{
			Title: fmt.Sprintf("%d file(s) will be skipped", len(excluded)),
			Files: excluded,
		}.Display(stderr)
	}
	return nil
}

// printPlan writes the plan as an aligned table.
func printPlan(out io.Writer, plan builder.Plan) {
	fmt.Fprintf(out, "Project: %s\n", plan.Title)
	fmt.Fprintf(out, "Documents: %d\n\n", len(plan.Entries))

	width := len("FOLDER")
	for _, e := range plan.Entries {
		if len(e.Folder) > width {
			width = len(e.Folder)
		}
	}

	fmt.Fprintf(out, "  %3s  %-*s  %s\n", "#", width, "FOLDER", "TITLE")
	for i, e := range plan.Entries {
		fmt.Fprintf(out, "  %3d  %-*s  %s\n", i+1, width, e.Folder, e.Title)
	}
}
