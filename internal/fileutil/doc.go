// Package fileutil turns a folder on disk into the flat file selection that
// the project builder consumes.
//
// A folder picker hands over every file below the chosen folder with a path
// relative to the folder's parent, e.g. choosing "/home/me/novel" yields
// "novel/chapter_1.txt" and "novel/drafts/idea.md". CollectFiles reproduces
// that listing:
//
//	result, err := fileutil.CollectFiles("/home/me/novel", fileutil.ScanOptions{
//	    ExcludeDirs: []string{".git"},
//	})
//	if err != nil {
//	    return err
//	}
//	projects, _, err := b.Build(ctx, result.BuilderFiles())
//
// Hidden files are included (the builder drops .DS_Store itself). Symbolic
// links and other non-regular files are skipped. Errors for individual
// entries are collected in ScanResult.Errors and do not stop the walk.
//
// DiskFile.ReadText rejects content that is not valid UTF-8 and strips a
// leading byte order mark.
package fileutil
