package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentTitle(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"chapter_1.txt", "chapter 1"},
		{"my_long_file_name.md", "my long file name"},
		{"archive.tar.gz", "archive.tar"},
		{"README", "README"},
		{"notes.", "notes."},
		{".bashrc", ""},
		{"a_b", "a b"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DocumentTitle(tt.in), "DocumentTitle(%q)", tt.in)
	}
}

func TestFolderOf(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"a.txt", "."},
		{"proj/a.txt", "."},
		{"proj/sub/a.txt", "sub"},
		{"proj/sub/deep/a.txt", "sub/deep"},
		{"proj//a.txt", "."},
		{"/a.txt", "."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FolderOf(tt.in), "FolderOf(%q)", tt.in)
	}
}

func TestFilterExcluded(t *testing.T) {
	f := NewFilter(nil, nil)

	for _, name := range []string{"notes.json", "NOTES.JSON", "report.docx", "report.DOCX", ".DS_Store", ".ds_store"} {
		assert.True(t, f.Excluded(name), name)
	}
	for _, name := range []string{"notes.txt", "json", "docx.md", "a.DS_Store.txt", ".ds_store2", "report.doc"} {
		assert.False(t, f.Excluded(name), name)
	}
}

func TestFilterExtras(t *testing.T) {
	f := NewFilter([]string{"png", " .Log ", ""}, []string{"Thumbs.db", " "})

	assert.True(t, f.Excluded("image.PNG"))
	assert.True(t, f.Excluded("debug.log"))
	assert.True(t, f.Excluded("thumbs.db"))
	assert.True(t, f.Excluded("x.json"))
	assert.False(t, f.Excluded("image.jpg"))
}
