package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/harrison/folder2json/internal/builder"
	"github.com/harrison/folder2json/internal/config"
	"github.com/harrison/folder2json/internal/filelock"
	"github.com/harrison/folder2json/internal/ident"
	"github.com/harrison/folder2json/internal/logger"
	"github.com/harrison/folder2json/internal/models"
)

// newConvertCommand creates the convert command. ids generates document and
// project identifiers.
func newConvertCommand(ids ident.Generator) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <folder>",
		Short: "Convert a folder into a project JSON file",
		Long: `Convert every text file below <folder> into a project JSON document.

The JSON is printed to standard output and written to the output file
(folder_output.json in the current directory by default). Log messages go to
standard error.

Configuration is loaded from the nearest .folder2json/config.yaml if present.
CLI flags override configuration file settings.

Examples:
  folder2json convert ./novel
  folder2json convert ./novel --output-dir out --quiet
  folder2json convert ./novel --output-naming title   # novel_output.json
  folder2json convert ./novel --no-write > novel.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], ids)
		},
	}

	cmd.Flags().String("output-dir", "", "Directory for the output file")
	cmd.Flags().String("output-name", "", "Output file name (default: folder_output.json)")
	cmd.Flags().String("output-naming", "", "Output naming mode: fixed or title")
	cmd.Flags().String("log-dir", "", "Directory for run log files")
	cmd.Flags().Int("max-concurrency", 0, "Maximum number of files read at once (0 = unlimited)")
	cmd.Flags().Bool("quiet", false, "Do not print the JSON to standard output")
	cmd.Flags().Bool("no-write", false, "Print the JSON without writing the output file")
	addSelectionFlags(cmd)

	return cmd
}

func runConvert(cmd *cobra.Command, dir string, ids ident.Generator) error {
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

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	quiet, _ := cmd.Flags().GetBool("quiet")
	noWrite, _ := cmd.Flags().GetBool("no-write")

	c := &converter{
		cfg:     cfg,
		ids:     ids,
		log:     log,
		stdout:  cmd.OutOrStdout(),
		stderr:  stderr,
		print:   !quiet,
		write:   !noWrite,
		started: time.Now(),
	}
	if err := c.run(ctx, dir); err != nil {
		if errors.Is(err, builder.ErrNoFiles) {
			return err
		}
		log.LogError(fmt.Sprintf("Conversion of %s failed: %v", dir, err))
		return err
	}
	return nil
}

// converter runs one conversion: collect, build, print, write.
type converter struct {
	cfg     *config.Config
	ids     ident.Generator
	log     logger.Logger
	stdout  io.Writer
	stderr  io.Writer
	print   bool
	write   bool
	started time.Time
}

func (c *converter) run(ctx context.Context, dir string) error {
	scan, err := collect(dir, c.cfg, c.stderr, c.log)
	if err != nil {
		return err
	}
	if len(scan.Files) == 0 {
		noSelectionNotice(dir).Display(c.stderr)
		return builder.ErrNoFiles
	}

	b := builder.New(c.ids, builderOptions(c.cfg), c.log)
	projects, stats, err := b.Build(ctx, scan.BuilderFiles())
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	data, err := models.Marshal(projects)
	if err != nil {
		return err
	}

	if c.print {
		if _, err := c.stdout.Write(data); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	project := projects[0]
	var outputPath string
	if c.write {
		outputPath = c.cfg.OutputPath(project.Title)
		if err := filelock.WriteOutput(ctx, outputPath, data); err != nil {
			return fmt.Errorf("failed to save %s: %w", outputPath, err)
		}
	}

	c.log.LogSummary(logger.Summary{
		Title:      project.Title,
		OutputPath: outputPath,
		Selected:   stats.Selected,
		Documents:  stats.Emitted,
		Folders:    len(project.ProjectFolders),
		Excluded:   stats.Excluded,
		Unreadable: stats.Unreadable,
		Duration:   time.Since(c.started),
	})
	return nil
}
