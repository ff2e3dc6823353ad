// Package pathprefix derives a project title from the relative paths of the
// selected files.
package pathprefix

import "strings"

// DefaultTitle is used when the selected paths share no leading segment.
const DefaultTitle = "Project"

// Common returns the longest run of leading "/"-separated segments shared by
// every path, joined with "/". It returns "" for an empty input or when the
// first segments differ.
//
// A single path is its own prefix, so Common([]string{"proj/a.txt"}) is
// "proj/a.txt"; callers see the filename as the last segment in that case.
func Common(paths []string) string {
	if len(paths) == 0 {
		return ""
	}

	split := make([][]string, len(paths))
	for i, p := range paths {
		split[i] = strings.Split(p, "/")
	}

	first := split[0]
	var prefix []string
	for i := 0; i < len(first); i++ {
		segment := first[i]
		if segment == "" {
			break
		}
		if !allHaveSegment(split, i, segment) {
			break
		}
		prefix = append(prefix, segment)
	}

	return strings.Join(prefix, "/")
}

func allHaveSegment(split [][]string, i int, segment string) bool {
	for _, parts := range split {
		if i >= len(parts) || parts[i] != segment {
			return false
		}
	}
	return true
}

// Title returns the last segment of prefix, or DefaultTitle when prefix is empty.
func Title(prefix string) string {
	if prefix == "" {
		return DefaultTitle
	}
	return prefix[strings.LastIndex(prefix, "/")+1:]
}

// ProjectTitle is Title(Common(paths)).
func ProjectTitle(paths []string) string {
	return Title(Common(paths))
}
