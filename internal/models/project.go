package models

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// RootFolder is the folder value of documents that sit directly in the
// project root.
const RootFolder = "."

// DefaultOutputName is the file name used for the converted project.
const DefaultOutputName = "folder_output.json"

// Document is one converted source file.
type Document struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"` // sanitized; see sanitizer.Sanitize
	Folder  string `json:"folder"`  // "." for the project root
}

// Project aggregates all documents converted from one folder selection.
type Project struct {
	ProjectID      string     `json:"projectId"`
	Title          string     `json:"title"`
	Documents      []Document `json:"documents"`
	ProjectFolders []string   `json:"projectFolders"`
}

// Encode writes projects as indented JSON (two spaces).
// HTML escaping is disabled so sanitized markers such as "&lt;" and "<br>"
// are written as-is instead of as < sequences.
func Encode(w io.Writer, projects []Project) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(normalize(projects)); err != nil {
		return fmt.Errorf("failed to encode projects: %w", err)
	}
	return nil
}

// Marshal returns the Encode output as a byte slice.
func Marshal(projects []Project) ([]byte, error) {
	var b strings.Builder
	if err := Encode(&b, projects); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}

// normalize replaces nil slices so they encode as [] rather than null.
func normalize(projects []Project) []Project {
	if projects == nil {
		return []Project{}
	}
	out := make([]Project, len(projects))
	for i, p := range projects {
		if p.Documents == nil {
			p.Documents = []Document{}
		}
		if p.ProjectFolders == nil {
			p.ProjectFolders = []string{}
		}
		out[i] = p
	}
	return out
}

// OutputNameForTitle returns the "<title>_output.json" name used when output
// files are named after the project: lowercased, spaces replaced by
// underscores.
func OutputNameForTitle(title string) string {
	return strings.ReplaceAll(strings.ToLower(title), " ", "_") + "_output.json"
}
