// Package display renders user-facing messages on the terminal: blocking
// notices that stop a command, and warnings that accompany a result.
//
// Display a notice when there is nothing to convert:
//
//	display.Notice{
//	    Title:      "No files selected",
//	    Message:    "The folder contains no files.",
//	    Suggestion: "Please select a folder with at least one file.",
//	}.Display(cmd.ErrOrStderr())
//
// Display warnings with optional components:
//
//	display.Warning{
//	    Title: "Some entries could not be scanned",
//	    Files: []string{"novel/locked"},
//	}.Display(os.Stderr)
//
// Colours are applied only when the writer is a terminal (see ColorEnabled);
// redirected output and buffers receive plain text.
package display
