package builder

import "strings"

var (
	defaultExcludedSuffixes = []string{".docx", ".json"}
	defaultExcludedNames    = []string{".ds_store"}
)

// Filter decides which selected files are converted. Matching is done on the
// lowercased base name. The .docx, .json and .ds_store defaults always apply.
type Filter struct {
	suffixes []string
	names    map[string]bool
}

// NewFilter creates a Filter that also excludes the given extensions (with or
// without a leading dot) and exact file names.
func NewFilter(extraExtensions, extraNames []string) *Filter {
	f := &Filter{
		suffixes: append([]string(nil), defaultExcludedSuffixes...),
		names:    make(map[string]bool),
	}
	for _, n := range defaultExcludedNames {
		f.names[n] = true
	}
	for _, ext := range extraExtensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		f.suffixes = append(f.suffixes, ext)
	}
	for _, n := range extraNames {
		n = strings.ToLower(strings.TrimSpace(n))
		if n != "" {
			f.names[n] = true
		}
	}
	return f
}

// Excluded reports whether a file with the given base name is skipped.
func (f *Filter) Excluded(name string) bool {
	lower := strings.ToLower(name)
	if f.names[lower] {
		return true
	}
	for _, s := range f.suffixes {
		if strings.HasSuffix(lower, s) {
			return true
		}
	}
	return false
}
