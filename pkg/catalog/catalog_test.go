package catalog

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeModule(t *testing.T, dir, file, language, description string) {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(dir, file))
	require.NoError(t, err)
	defer db.Close()
	_, err = db.Exec(`
CREATE TABLE info (name TEXT, value TEXT);
CREATE TABLE verses (book_number NUMERIC, chapter NUMERIC, verse NUMERIC, text TEXT);
`)
	require.NoError(t, err)
	if language != "" {
		_, err = db.Exec("INSERT INTO info VALUES ('language', ?)", language)
		require.NoError(t, err)
	}
	if description != "" {
		_, err = db.Exec("INSERT INTO info VALUES ('description', ?)", description)
		require.NoError(t, err)
	}
}

func TestListSkipsCompanionsAndCaches(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "RST.SQLite3", "ru", "Russian Synodal")
	writeModule(t, dir, "KJV.SQLite3", "en", "King James <i>Version</i>")
	writeModule(t, dir, "KJV.crossreferences.SQLite3", "en", "xrefs")
	writeModule(t, dir, "NoInfo.SQLite3", "", "")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	cachePath := filepath.Join(t.TempDir(), "installed_modules.json")
	c := &Catalog{Dir: dir, CachePath: cachePath}

	modules, err := c.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, []Module{
		{File: "NoInfo.SQLite3", Name: "NoInfo", Language: NotAvailable, Description: NotAvailable},
		{File: "KJV.SQLite3", Name: "KJV", Language: "en", Description: "King James <i>Version</i>"},
		{File: "RST.SQLite3", Name: "RST", Language: "ru", Description: "Russian Synodal"},
	}, modules)
	require.FileExists(t, cachePath)

	// Served from the cache while the file set is unchanged.
	require.NoError(t, os.WriteFile(cachePath, bytes.Replace(mustRead(t, cachePath), []byte("Russian Synodal"), []byte("cached"), 1), 0o644))
	modules, err = c.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, "cached", modules[2].Description)

	// A new file invalidates it.
	writeModule(t, dir, "ASV.SQLite3", "en", "American Standard")
	modules, err = c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, modules, 4)
	require.Equal(t, "Russian Synodal", modules[3].Description)
}

func mustRead(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "KJV.SQLite3", "en", "")

	path, err := Find(dir, "kjv")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "KJV.SQLite3"), path)

	_, err = Find(dir, "NIV")
	require.True(t, errors.Is(err, ErrModuleNotFound))

	require.True(t, ValidDir(dir))
	require.False(t, ValidDir(t.TempDir()))
	require.False(t, ValidDir(filepath.Join(dir, "missing")))
}

func TestCleanDescription(t *testing.T) {
	require.Equal(t, "plain", CleanDescription("plain"))
	require.Equal(t, "King James Version (1769)", CleanDescription("<p>King James <i>Version</i></p>\n<p>(1769)</p>"))
	require.Equal(t, "A & B", CleanDescription("A &amp; B"))
}

func TestWrapText(t *testing.T) {
	require.Equal(t, []string{"one two", "three"}, wrapText("one two three", 8))
	require.Equal(t, []string{"extraordinarily", "long"}, wrapText("extraordinarily long", 5))
	require.Equal(t, []string{""}, wrapText("", 10))
}

func TestPrintTableAndSimple(t *testing.T) {
	modules := []Module{{Language: "en", Name: "KJV", Description: "King James\nVersion"}}

	var b bytes.Buffer
	PrintTable(&b, modules, 0)
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	require.Equal(t, "Language Module Description", lines[0])
	require.Equal(t, "en       KJV    King James Version", lines[2])
	require.Len(t, lines, 4)

	b.Reset()
	PrintSimple(&b, modules)
	require.Equal(t, "en\tKJV\tKing James Version\n", b.String())
}
