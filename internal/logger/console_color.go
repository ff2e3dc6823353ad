package logger

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// colorScheme defines consistent colors for different metric types.
// Green: documents written
// Red: unreadable files
// Yellow: excluded files
// Cyan: labels
type colorScheme struct {
	success *color.Color
	fail    *color.Color
	warn    *color.Color
	label   *color.Color
	value   *color.Color
}

func newColorScheme() *colorScheme {
	return &colorScheme{
		success: color.New(color.FgGreen),
		fail:    color.New(color.FgRed),
		warn:    color.New(color.FgYellow),
		label:   color.New(color.FgCyan),
		value:   color.New(color.FgWhite),
	}
}

// formatColorizedMetric formats "label: value" with a cyan label.
func formatColorizedMetric(label string, value interface{}, scheme *colorScheme) string {
	return fmt.Sprintf("%s: %s", scheme.label.Sprint(label), scheme.value.Sprintf("%v", value))
}

// formatColorizedSummary formats the summary counters with color coding.
// Excluded and unreadable counts are omitted when zero.
func formatColorizedSummary(s Summary) string {
	scheme := newColorScheme()
	parts := []string{
		fmt.Sprintf("%s: %s", scheme.success.Sprint("documents"), scheme.value.Sprintf("%d", s.Documents)),
		formatColorizedMetric("folders", s.Folders, scheme),
	}
	if s.Excluded > 0 {
		parts = append(parts, fmt.Sprintf("%s: %s", scheme.warn.Sprint("excluded"), scheme.warn.Sprintf("%d", s.Excluded)))
	}
	if s.Unreadable > 0 {
		parts = append(parts, fmt.Sprintf("%s: %s", scheme.fail.Sprint("unreadable"), scheme.fail.Sprintf("%d", s.Unreadable)))
	}
	return strings.Join(parts, ", ")
}

// formatPlainSummary is formatColorizedSummary without ANSI codes.
func formatPlainSummary(s Summary) string {
	parts := []string{
		fmt.Sprintf("documents: %d", s.Documents),
		fmt.Sprintf("folders: %d", s.Folders),
	}
	if s.Excluded > 0 {
		parts = append(parts, fmt.Sprintf("excluded: %d", s.Excluded))
	}
	if s.Unreadable > 0 {
		parts = append(parts, fmt.Sprintf("unreadable: %d", s.Unreadable))
	}
	return strings.Join(parts, ", ")
}
