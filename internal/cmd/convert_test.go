package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/folder2json/internal/builder"
	"github.com/harrison/folder2json/internal/ident"
	"github.com/harrison/folder2json/internal/models"
)

// writeTree creates files (relative slash paths) below root.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
}

// writeConfig writes a config file so tests never pick up one from the
// working directory.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand(ident.NewSequence("id-"))
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func novelTree(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "novel")
	writeTree(t, root, map[string]string{
		"chapter_10.txt":  "Ten",
		"chapter_2.txt":   "Two <b>\n",
		"notes.json":      "{}",
		"part1/intro.txt": "Hi 👋",
	})
	return root
}

func TestConvertCommand(t *testing.T) {
	root := novelTree(t)
	outDir := t.TempDir()
	cfg := writeConfig(t, "log_level: warn\n")

	stdout, stderr, err := execute(t, "convert", root, "--config", cfg, "--output-dir", outDir)
	require.NoError(t, err, "stderr: %s", stderr)

	expected := []models.Project{{
		ProjectID: "id-4",
		Title:     "novel",
		Documents: []models.Document{
			{ID: "id-1", Title: "chapter 2", Content: "Two &lt;b&gt;<br>", Folder: "."},
			{ID: "id-2", Title: "chapter 10", Content: "Ten", Folder: "."},
			{ID: "id-3", Title: "intro", Content: "Hi ", Folder: "part1"},
		},
		ProjectFolders: []string{"part1"},
	}}

	printed := decodeProjects(t, stdout)
	assert.Equal(t, expected, printed)

	written, err := os.ReadFile(filepath.Join(outDir, models.DefaultOutputName))
	require.NoError(t, err)
	assert.Equal(t, stdout, string(written), "stdout and file should match")
	assert.Contains(t, string(written), `"Two &lt;b&gt;<br>"`)
}

func TestConvertCommand_TitleNaming(t *testing.T) {
	root := filepath.Join(t.TempDir(), "My Book")
	writeTree(t, root, map[string]string{"a.txt": "a", "b.txt": "b"})
	outDir := t.TempDir()
	cfg := writeConfig(t, "output_naming: title\n")

	_, stderr, err := execute(t, "convert", root, "--config", cfg, "--output-dir", outDir, "--quiet")
	require.NoError(t, err, "stderr: %s", stderr)

	_, err = os.Stat(filepath.Join(outDir, "my_book_output.json"))
	assert.NoError(t, err)
}

func TestConvertCommand_TitleNamingSingleFile(t *testing.T) {
	// A lone file is its own common prefix, so the title is the file name.
	root := filepath.Join(t.TempDir(), "My Book")
	writeTree(t, root, map[string]string{"a.txt": "a"})
	outDir := t.TempDir()
	cfg := writeConfig(t, "output_naming: title\n")

	_, stderr, err := execute(t, "convert", root, "--config", cfg, "--output-dir", outDir, "--quiet")
	require.NoError(t, err, "stderr: %s", stderr)

	_, err = os.Stat(filepath.Join(outDir, "a.txt_output.json"))
	assert.NoError(t, err)
}

func TestConvertCommand_Quiet(t *testing.T) {
	root := novelTree(t)
	outDir := t.TempDir()
	cfg := writeConfig(t, "log_level: error\n")

	stdout, _, err := execute(t, "convert", root, "--config", cfg, "--output-dir", outDir, "--quiet")
	require.NoError(t, err)
	assert.Empty(t, stdout)

	_, err = os.Stat(filepath.Join(outDir, models.DefaultOutputName))
	assert.NoError(t, err)
}

func TestConvertCommand_NoWrite(t *testing.T) {
	root := novelTree(t)
	outDir := t.TempDir()
	cfg := writeConfig(t, "log_level: error\n")

	stdout, _, err := execute(t, "convert", root, "--config", cfg, "--output-dir", outDir, "--no-write")
	require.NoError(t, err)
	assert.NotEmpty(t, stdout)

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestConvertCommand_EmptyFolder(t *testing.T) {
	root := t.TempDir()
	outDir := t.TempDir()
	cfg := writeConfig(t, "")

	stdout, stderr, err := execute(t, "convert", root, "--config", cfg, "--output-dir", outDir)
	require.ErrorIs(t, err, builder.ErrNoFiles)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "No files selected")
	assert.Contains(t, stderr, "Please select a folder with at least one file.")

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "nothing should be written")
}

func TestConvertCommand_OnlyExcludedFiles(t *testing.T) {
	root := filepath.Join(t.TempDir(), "data")
	writeTree(t, root, map[string]string{
		"a.json":    "{}",
		".DS_Store": "x",
		"b.docx":    "x",
	})
	outDir := t.TempDir()
	cfg := writeConfig(t, "log_level: error\n")

	stdout, _, err := execute(t, "convert", root, "--config", cfg, "--output-dir", outDir)
	require.NoError(t, err)

	projects := decodeProjects(t, stdout)
	require.Len(t, projects, 1)
	assert.Equal(t, "data", projects[0].Title)
	assert.Empty(t, projects[0].Documents)
	assert.Empty(t, projects[0].ProjectFolders)
	assert.Contains(t, stdout, `"documents": []`)
}

func TestConvertCommand_Summary(t *testing.T) {
	root := novelTree(t)
	outDir := t.TempDir()
	cfg := writeConfig(t, "log_level: info\n")

	_, stderr, err := execute(t, "convert", root, "--config", cfg, "--output-dir", outDir, "--quiet")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Converted novel")
	assert.Contains(t, stderr, "documents: 3")
	assert.Contains(t, stderr, "excluded: 1")
	assert.Contains(t, stderr, filepath.Join(outDir, models.DefaultOutputName))
}

func TestConvertCommand_ConfigExclusions(t *testing.T) {
	root := filepath.Join(t.TempDir(), "site")
	writeTree(t, root, map[string]string{
		"index.md":        "home",
		"draft.tmp":       "wip",
		"vendor/lib.txt":  "skip me",
		"pages/about.md":  "about",
		"pages/README.md": "readme",
	})
	outDir := t.TempDir()
	cfg := writeConfig(t, `log_level: error
exclude_extensions: [".tmp"]
exclude_names: ["README.md"]
exclude_dirs: ["vendor"]
`)

	stdout, _, err := execute(t, "convert", root, "--config", cfg, "--output-dir", outDir)
	require.NoError(t, err)

	projects := decodeProjects(t, stdout)
	var titles []string
	for _, d := range projects[0].Documents {
		titles = append(titles, d.Title)
	}
	assert.ElementsMatch(t, []string{"index", "about"}, titles)
	assert.Equal(t, []string{"pages"}, projects[0].ProjectFolders)
}

func TestConvertCommand_LogDir(t *testing.T) {
	root := novelTree(t)
	outDir := t.TempDir()
	logDir := t.TempDir()
	cfg := writeConfig(t, "log_level: debug\n")

	_, stderr, err := execute(t, "convert", root, "--config", cfg, "--output-dir", outDir, "--log-dir", logDir, "--quiet")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Writing run log to "+filepath.Join(logDir, "run-"))

	content, err := os.ReadFile(filepath.Join(logDir, "latest.log"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "CONVERSION SUMMARY")
	assert.NotContains(t, string(content), "[TRACE]", "trace lines are filtered at debug")
}

func TestConvertCommand_Errors(t *testing.T) {
	cfg := writeConfig(t, "")

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "no arguments", args: []string{"convert"}, wantErr: "accepts 1 arg"},
		{name: "missing folder", args: []string{"convert", filepath.Join(t.TempDir(), "missing"), "--config", cfg}, wantErr: "failed to access directory"},
		{name: "bad naming", args: []string{"convert", t.TempDir(), "--config", cfg, "--output-naming", "random"}, wantErr: "invalid configuration"},
		{name: "missing config", args: []string{"convert", t.TempDir(), "--config", filepath.Join(t.TempDir(), "nope.yaml")}, wantErr: "failed to load config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func decodeProjects(t *testing.T, stdout string) []models.Project {
	t.Helper()
	var projects []models.Project
	require.NoError(t, json.Unmarshal([]byte(stdout), &projects))
	return projects
}

func decodeTitles(t *testing.T, stdout string) []string {
	t.Helper()
	projects := decodeProjects(t, stdout)
	require.Len(t, projects, 1)
	var titles []string
	for _, d := range projects[0].Documents {
		titles = append(titles, d.Title)
	}
	return titles
}

func TestConvertCommand_MaxDepth(t *testing.T) {
	root := filepath.Join(t.TempDir(), "book")
	writeTree(t, root, map[string]string{
		"top.txt":          "top",
		"part/inner.txt":   "inner",
		"part/deep/x.txt":  "x",
		"other/second.txt": "second",
	})
	cfg := writeConfig(t, "log_level: error\n")

	stdout, _, err := execute(t, "convert", root, "--config", cfg, "--no-write", "--max-depth", "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"top"}, decodeTitles(t, stdout))

	stdout, _, err = execute(t, "convert", root, "--config", writeConfig(t, "log_level: error\nmax_depth: 2\n"), "--no-write")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"top", "inner", "second"}, decodeTitles(t, stdout))
}

func TestConvertCommand_Locale(t *testing.T) {
	root := filepath.Join(t.TempDir(), "words")
	writeTree(t, root, map[string]string{
		"zebra.txt":      "z",
		"\u00e4pple.txt": "a",
	})
	cfg := writeConfig(t, "log_level: error\n")

	stdout, _, err := execute(t, "convert", root, "--config", cfg, "--no-write")
	require.NoError(t, err)
	assert.Equal(t, []string{"\u00e4pple", "zebra"}, decodeTitles(t, stdout))

	stdout, _, err = execute(t, "convert", root, "--config", cfg, "--no-write", "--locale", "sv")
	require.NoError(t, err)
	assert.Equal(t, []string{"zebra", "\u00e4pple"}, decodeTitles(t, stdout))
}

func TestConvertCommand_UpperCaseLogLevel(t *testing.T) {
	root := novelTree(t)
	cfg := writeConfig(t, "log_level: WARN\n")

	_, stderr, err := execute(t, "convert", root, "--config", cfg, "--no-write", "--quiet")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "Converted novel", "info output suppressed at warn")

	_, _, err = execute(t, "convert", root, "--config", cfg, "--no-write", "--quiet", "--log-level", "Debug")
	require.NoError(t, err)
}

func TestConvertCommand_FailureIsLogged(t *testing.T) {
	logDir := t.TempDir()
	cfg := writeConfig(t, "log_level: info\n")
	missing := filepath.Join(t.TempDir(), "missing")

	_, stderr, err := execute(t, "convert", missing, "--config", cfg, "--log-dir", logDir)
	require.Error(t, err)
	assert.Contains(t, stderr, "[ERROR]")

	content, err := os.ReadFile(filepath.Join(logDir, "latest.log"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "[ERROR]")
	assert.Contains(t, string(content), "failed to access directory")
}

func TestConvertCommand_InvalidLocale(t *testing.T) {
	cfg := writeConfig(t, "")

	_, _, err := execute(t, "convert", t.TempDir(), "--config", cfg, "--locale", "not a locale!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid locale")
}
