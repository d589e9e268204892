package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadBookAndLookup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "book.txt")
	contents := "# comment\n" +
		"1122334455667788;a1b2;10\n" +
		"8877665544332211;g1f2e3;5\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	book, err := LoadBook(path)
	require.NoError(t, err)

	move, ok := book.Lookup(0x1122334455667788)
	require.True(t, ok)
	require.Equal(t, "a1b2", move.String())

	_, ok = book.Lookup(0xFFFFFFFFFFFFFFFF)
	require.False(t, ok)
}

func TestLoadBookRejectsMalformedLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "book.txt")
	require.NoError(t, os.WriteFile(path, []byte("not;enough\n"), 0o644))

	_, err := LoadBook(path)
	require.Error(t, err)
}

func TestLoadBookMissingFile(t *testing.T) {
	_, err := LoadBook("/nonexistent/book.txt")
	require.Error(t, err)
}
