package l10n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mybible-cli/mybible-cli/pkg/render"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAndPlaceholders(t *testing.T) {
	m := Default()
	require.Equal(t, DefaultLanguage, m.Language())
	require.Equal(t, "No module named 'NIV' found in '/mods'",
		m.Format(NoModule, "module_name", "NIV", "modules_path", "/mods"))

	p := render.Palette{Bold: "<b>", Reset: "</b>"}
	args := append([]string{"reference", "Jn 99"}, Style(p)...)
	require.Equal(t, "Cannot output <b>Jn 99</b>:", m.Format(NoVerseOutput, args...))

	require.Equal(t, "no_such_key", m.Get("no_such_key"))

	var nilMessages *Messages
	require.Equal(t, "Error!", nilMessages.Get(Error))
}

func TestLoadProperties(t *testing.T) {
	dir := t.TempDir()
	props := "# Ukrainian\n" +
		"invalid_reference = Невірне посилання\n" +
		"file_created = Створено файл: {file}\n" +
		"exit_now =\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "uk.properties"), []byte(props), 0o644))

	m, err := Load(dir, "uk")
	require.NoError(t, err)
	require.Equal(t, "uk", m.Language())
	require.Equal(t, "Невірне посилання", m.Get(InvalidReference))
	require.Equal(t, "Створено файл: a.tsv", m.Format(FileCreated, "file", "a.tsv"))
	// Empty and missing values fall back to English.
	require.Equal(t, "Exiting now...", m.Get(ExitNow))
	require.Equal(t, "Error!", m.Get(Error))
}

func TestLoadMissingFile(t *testing.T) {
	m, err := Load(t.TempDir(), "de")
	require.NoError(t, err)
	require.Equal(t, "Invalid reference for this module", m.Get(InvalidReference))
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		env  map[string]string
		want string
	}{
		{map[string]string{}, "en"},
		{map[string]string{"LANG": "uk_UA.UTF-8"}, "uk"},
		{map[string]string{"LANG": "de_DE", "LC_ALL": "ru_RU.UTF-8"}, "ru"},
		{map[string]string{"LC_MESSAGES": "pt-BR", "LANG": "en_US"}, "pt"},
		{map[string]string{"LANG": "C"}, "en"},
		{map[string]string{"LANG": "sr_RS@latin"}, "sr"},
	}
	for _, tt := range tests {
		got := DetectLanguage(func(k string) string { return tt.env[k] })
		require.Equal(t, tt.want, got, tt.env)
	}
}
