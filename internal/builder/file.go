package builder

import (
	"context"
	"path"
	"strings"

	"github.com/harrison/folder2json/internal/models"
)

// File is one selected file.
type File interface {
	// RelativePath is the "/"-separated path starting at the selected
	// folder, e.g. "novel/drafts/chapter_1.txt". It may be a bare file name.
	RelativePath() string
	// ReadText returns the file's contents decoded as UTF-8.
	ReadText(ctx context.Context) (string, error)
}

// Name returns the base name of f.
func Name(f File) string {
	return path.Base(f.RelativePath())
}

// DocumentTitle derives a document title from a file name: the final
// extension is removed and underscores become spaces. Only a trailing dot
// followed by at least one non-dot character counts as an extension, so
// "notes." keeps its dot and ".bashrc" yields "".
func DocumentTitle(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 && i < len(name)-1 {
		name = name[:i]
	}
	return strings.ReplaceAll(name, "_", " ")
}

// FolderOf returns the folder of relPath relative to the project root: the
// file name and the first segment (the root folder itself) are dropped and
// the rest is joined with "/". Files in the root, bare file names and paths
// whose remaining segments join to "" get models.RootFolder.
func FolderOf(relPath string) string {
	parts := strings.Split(relPath, "/")
	parts = parts[:len(parts)-1]
	if len(parts) > 1 {
		if folder := strings.Join(parts[1:], "/"); folder != "" {
			return folder
		}
	}
	return models.RootFolder
}
