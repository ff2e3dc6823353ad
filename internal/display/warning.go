package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorEnabled reports whether w is a terminal that should receive ANSI colours.
func ColorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || color.NoColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Files      []string // Related files (optional)
	Suggestion string   // Action to take (optional)
}

// Display shows a formatted warning, in yellow on terminals.
func (w Warning) Display(out io.Writer) {
	render(out, color.New(color.FgYellow), "Warning", w.Title, w.Message, w.Files, w.Suggestion)
}

// Notice is a message that ends the current command without producing output.
type Notice struct {
	Title      string   // Main notice title
	Message    string   // Detailed explanation (optional)
	Files      []string // Related files (optional)
	Suggestion string   // Action to take (optional)
}

// Display shows a formatted notice, in red on terminals.
func (n Notice) Display(out io.Writer) {
	render(out, color.New(color.FgRed, color.Bold), "Notice", n.Title, n.Message, n.Files, n.Suggestion)
}

func render(out io.Writer, c *color.Color, kind, title, message string, files []string, suggestion string) {
	var b strings.Builder

	b.WriteString(kind)
	b.WriteString(": ")
	b.WriteString(title)
	b.WriteString("\n")

	if message != "" {
		b.WriteString("    ")
		b.WriteString(message)
		b.WriteString("\n")
	}

	// Add files with proper singular/plural and indentation
	if len(files) > 0 {
		b.WriteString("    ")
		if len(files) == 1 {
			b.WriteString("Affected file:\n")
		} else {
			b.WriteString("Affected files:\n")
		}
		for i, file := range files {
			fmt.Fprintf(&b, "      %d. %s\n", i+1, file)
		}
	}

	if suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(suggestion)
		b.WriteString("\n")
	}

	text := b.String()
	if ColorEnabled(out) {
		c.EnableColor()
		text = c.Sprint(text)
	}
	fmt.Fprint(out, text)
}
