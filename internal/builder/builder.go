package builder

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"github.com/harrison/folder2json/internal/comparator"
	"github.com/harrison/folder2json/internal/ident"
	"github.com/harrison/folder2json/internal/models"
	"github.com/harrison/folder2json/internal/pathprefix"
	"github.com/harrison/folder2json/internal/sanitizer"
)

// ErrNoFiles is returned when Build is called with an empty selection.
var ErrNoFiles = errors.New("no files selected")

// Logger is the subset of logger.Logger used by the builder.
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
	LogInfo(message string)
}

// Options configures a Builder.
type Options struct {
	// ExcludeExtensions are skipped in addition to .docx and .json.
	ExcludeExtensions []string
	// ExcludeNames are skipped in addition to .DS_Store (case-insensitive).
	ExcludeNames []string
	// MaxConcurrency bounds the number of reads in flight (0 = unlimited).
	MaxConcurrency int
	// Language selects the collation used for names without numbers.
	// The zero value is the language-neutral root order.
	Language language.Tag
}

// Stats summarizes one Build call.
type Stats struct {
	Selected   int // files handed to Build
	Excluded   int // removed by the filter
	Unreadable int // dropped because ReadText failed
	Emitted    int // documents in the output
}

// Builder converts selected files into a Project.
type Builder struct {
	ids    ident.Generator
	filter *Filter
	opts   Options
	logger Logger
}

// New creates a Builder. A nil logger discards log messages.
func New(ids ident.Generator, opts Options, logger Logger) *Builder {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Builder{
		ids:    ids,
		filter: NewFilter(opts.ExcludeExtensions, opts.ExcludeNames),
		opts:   opts,
		logger: logger,
	}
}

// Entry is a file that passed the filter, with its derived placement.
type Entry struct {
	File   File
	Name   string
	Title  string
	Folder string
}

// Plan is the outcome of filtering and sorting, before any file is read.
type Plan struct {
	Title    string
	Entries  []Entry // in output order
	Excluded []File  // in selection order
}

// Plan filters and sorts files and derives the project title without
// reading any contents.
func (b *Builder) Plan(files []File) Plan {
	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.RelativePath()
	}

	plan := Plan{Title: pathprefix.ProjectTitle(paths)}
	for _, f := range files {
		name := Name(f)
		if b.filter.Excluded(name) {
			plan.Excluded = append(plan.Excluded, f)
			continue
		}
		plan.Entries = append(plan.Entries, Entry{
			File:   f,
			Name:   name,
			Title:  DocumentTitle(name),
			Folder: FolderOf(f.RelativePath()),
		})
	}

	cmp := comparator.NewForLanguage(b.opts.Language)
	sort.SliceStable(plan.Entries, func(i, j int) bool {
		return cmp.Compare(plan.Entries[i].Name, plan.Entries[j].Name) < 0
	})

	for i, e := range plan.Entries {
		b.logger.LogTrace(fmt.Sprintf("Planned %d: %s -> folder %q, title %q", i+1, e.File.RelativePath(), e.Folder, e.Title))
	}

	return plan
}

// readResult is one file's slot; ok is false when the read failed.
type readResult struct {
	text string
	ok   bool
}

// Build converts files into a single-element project list and reports what
// happened to each file.
//
// Individual read failures never fail the build; the file is left out of the
// output. An error is returned only for an empty selection, identifier
// generation failure, or a cancelled context, and in those cases no project
// is returned.
func (b *Builder) Build(ctx context.Context, files []File) ([]models.Project, Stats, error) {
	stats := Stats{Selected: len(files)}
	if len(files) == 0 {
		return nil, stats, ErrNoFiles
	}

	plan := b.Plan(files)
	stats.Excluded = len(plan.Excluded)
	b.logger.LogDebug(fmt.Sprintf("Converting %d of %d selected files (project %q)", len(plan.Entries), len(files), plan.Title))

	results := b.readAll(ctx, plan.Entries)
	if err := ctx.Err(); err != nil {
		return nil, stats, fmt.Errorf("conversion cancelled: %w", err)
	}

	documents := make([]models.Document, 0, len(plan.Entries))
	folders := make(map[string]bool)
	for i, entry := range plan.Entries {
		if !results[i].ok {
			stats.Unreadable++
			continue
		}
		id, err := b.ids.NewID()
		if err != nil {
			return nil, stats, fmt.Errorf("failed to generate document id: %w", err)
		}
		documents = append(documents, models.Document{
			ID:      id,
			Title:   entry.Title,
			Content: sanitizer.Sanitize(results[i].text),
			Folder:  entry.Folder,
		})
		if entry.Folder != models.RootFolder {
			folders[entry.Folder] = true
		}
	}

	projectID, err := b.ids.NewID()
	if err != nil {
		return nil, stats, fmt.Errorf("failed to generate project id: %w", err)
	}

	projectFolders := make([]string, 0, len(folders))
	for f := range folders {
		projectFolders = append(projectFolders, f)
	}
	sort.Strings(projectFolders)

	stats.Emitted = len(documents)
	b.logger.LogInfo(fmt.Sprintf("Converted %d documents in %d folders (%d excluded, %d unreadable)",
		stats.Emitted, len(projectFolders), stats.Excluded, stats.Unreadable))

	return []models.Project{{
		ProjectID:      projectID,
		Title:          plan.Title,
		Documents:      documents,
		ProjectFolders: projectFolders,
	}}, stats, nil
}

// readAll reads every entry concurrently and returns the results in entry
// order. Each goroutine writes only its own slot.
func (b *Builder) readAll(ctx context.Context, entries []Entry) []readResult {
	results := make([]readResult, len(entries))

	var g errgroup.Group
	if b.opts.MaxConcurrency > 0 {
		g.SetLimit(b.opts.MaxConcurrency)
	}
	for i, entry := range entries {
		i, entry := i, entry
		g.Go(func() error {
			text, err := entry.File.ReadText(ctx)
			if err != nil {
				b.logger.LogDebug(fmt.Sprintf("Skipping unreadable file %s: %v", entry.File.RelativePath(), err))
				return nil
			}
			results[i] = readResult{text: text, ok: true}
			return nil
		})
	}
	// Goroutines never return an error.
	_ = g.Wait()

	return results
}

type nopLogger struct{}

func (nopLogger) LogTrace(string) {}
func (nopLogger) LogDebug(string) {}
func (nopLogger) LogInfo(string)  {}
