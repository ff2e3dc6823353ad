// Package builder turns a flat list of selected files into a Project.
//
// The conversion runs in a fixed order:
//
//  1. Filter out .docx, .json and .DS_Store files (plus any configured extras).
//  2. Stable-sort the remaining files by base name with a comparator.Comparator.
//     The sort spans the whole list, so files from different folders are
//     interleaved by name.
//  3. Derive each file's folder relative to the project root.
//  4. Read every file concurrently. A failed read drops that file.
//  5. Sanitize each file's text.
//  6. Derive the project title from the unfiltered path list.
//  7. Assemble documents in sorted order and collect the distinct folders.
//
// Usage:
//
//	b := builder.New(ident.UUID{}, builder.Options{}, log)
//	projects, _, err := b.Build(ctx, files)
package builder
