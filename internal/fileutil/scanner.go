package fileutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/harrison/folder2json/internal/builder"
)

// ErrInvalidUTF8 is returned by DiskFile.ReadText for content that cannot be
// decoded as UTF-8.
var ErrInvalidUTF8 = errors.New("content is not valid UTF-8")

// ErrFilesystemRoot is returned by CollectFiles when asked to scan a
// filesystem root, which has no folder name to build relative paths from.
var ErrFilesystemRoot = errors.New("cannot convert a filesystem root")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ScanOptions configures the directory scanning behavior
type ScanOptions struct {
	// ExcludeDirs is a list of directory names to skip at any depth (e.g., ".git", "node_modules")
	ExcludeDirs []string
	// MaxDepth limits recursion depth (0 = unlimited, 1 = selected folder only)
	MaxDepth int
}

// ScanResult contains the results of a directory scan
type ScanResult struct {
	// Root is the absolute path of the scanned folder
	Root string
	// Files contains every regular file, in lexical walk order
	Files []*DiskFile
	// Errors contains any errors encountered during scanning
	Errors []error
}

// BuilderFiles returns Files as builder.File values.
func (r *ScanResult) BuilderFiles() []builder.File {
	out := make([]builder.File, len(r.Files))
	for i, f := range r.Files {
		out[i] = f
	}
	return out
}

// DiskFile is a selected file on the local file system.
type DiskFile struct {
	// AbsPath is the absolute path used for reading
	AbsPath string
	// RelPath is "<folder name>/<path inside folder>" with "/" separators
	RelPath string
}

// RelativePath implements builder.File.
func (f *DiskFile) RelativePath() string {
	return f.RelPath
}

// ReadText reads the file and decodes it as UTF-8.
func (f *DiskFile) ReadText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(f.AbsPath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", f.RelPath, err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", f.RelPath, ErrInvalidUTF8)
	}
	return string(data), nil
}

// CollectFiles walks dir and returns every regular file below it.
func CollectFiles(dir string, opts ScanOptions) (*ScanResult, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", dir, err)
	}

	// Validate directory exists
	info, err := os.Stat(absDir)
	if err != nil {
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dir)
	}
	// The folder name prefixes every relative path; the root has none.
	if filepath.Dir(absDir) == absDir {
		return nil, fmt.Errorf("%w: %s", ErrFilesystemRoot, absDir)
	}

	result := &ScanResult{
		Root:   absDir,
		Files:  make([]*DiskFile, 0),
		Errors: make([]error, 0),
	}

	excludeMap := make(map[string]bool)
	for _, name := range opts.ExcludeDirs {
		excludeMap[name] = true
	}

	rootName := filepath.Base(absDir)

	err = filepath.WalkDir(absDir, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("error accessing %s: %w", p, err))
			return nil // Continue walking
		}

		// Skip the root directory itself
		if p == absDir {
			return nil
		}

		rel, err := filepath.Rel(absDir, p)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("failed to resolve path %s: %w", p, err))
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if excludeMap[d.Name()] {
				return filepath.SkipDir
			}
			if opts.MaxDepth > 0 && strings.Count(rel, "/")+1 >= opts.MaxDepth {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		result.Files = append(result.Files, &DiskFile{
			AbsPath: p,
			RelPath: path.Join(rootName, rel),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	return result, nil
}
