// Package l10n provides the user facing strings of the CLI. Built-in English
// strings can be overridden per language with a <lang>.properties file.
package l10n

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mybible-cli/mybible-cli/pkg/render"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// Message keys.
const (
	InvalidPath       = "invalid_path"
	EmptyPath         = "empty_path"
	InPath            = "in_path"
	NoModule          = "no_module"
	ExitNow           = "exit_now"
	AvailableModules  = "available_modules"
	InvalidReference  = "invalid_reference"
	NoVerseOutput     = "no_verse_output"
	Error             = "error"
	FolderFail        = "folder_fail"
	FileFail          = "file_fail"
	FileCreated       = "file_created"
	FileExistsPrompt  = "file_exists_prompt"
	YesNoPrompt       = "yes_no_prompt"
	RepeatedInLine    = "repeated_in_line"
	RepeatedInFile    = "repeated_in_file"
	HelpFormatMessage = "help_helpformat_message"
	FormatSaved       = "format_saved"
)

// DefaultLanguage is used when the locale names no language.
const DefaultLanguage = "en"

var defaults = map[string]string{
	InvalidPath:      "Cannot find the folder with MyBible modules: {modules_path}",
	EmptyPath:        "No MyBible modules found in {modules_path}",
	InPath:           "Full path to the folder with MyBible modules: ",
	NoModule:         "No module named '{module_name}' found in '{modules_path}'",
	ExitNow:          "Exiting now...",
	AvailableModules: "Available MyBible modules: {number}",
	InvalidReference: "Invalid reference for this module",
	NoVerseOutput:    "Cannot output {bold}{reference}{normal}:",
	Error:            "Error!",
	FolderFail:       "Failed to open the folder: {error}",
	FileFail:         "Failed to open {file}",
	FileCreated:      "File created: {file}",
	FileExistsPrompt: "The file '{file}' already exists. Do you want to overwrite it? (yes/no): ",
	YesNoPrompt:      "Please enter 'yes' or 'no'",
	RepeatedInLine:   "Repetitions in row {row}: {repeated_string}",
	RepeatedInFile:   "Repetitions of {element} in rows {rows}",
	FormatSaved:      "Default format saved: {bold}{format_string}{normal}",
	HelpFormatMessage: "Available placeholders for the format string:\n" +
		"\t%f\tfull book name\n" +
		"\t%a\tabbreviated book name\n" +
		"\t%b\tbook number as per MyBible format specifications\n" +
		"\t%c\tchapter number\n" +
		"\t%v\tverse number\n" +
		"\t%T\traw text of the verse from the module\n" +
		"\t%t\ttext of the verse without markers; notes and line breaks are kept\n" +
		"\t%z\tthe same as above, but without notes and line breaks\n" +
		"\t%A\ttext of the verse with color output for console; Strong's numbers are included\n" +
		"\t%Z\tthe same as above, but without Strong's numbers\n" +
		"\t%m\tmodule name\n" +
		"Current default format is {bold}{format_string}{normal}\n" +
		"To save a new default, provide the format with {bold}-F{normal}\n" +
		"Format string may contain {bold}\\t{normal} and {bold}\\n{normal}\n" +
		"Each verse in the output is printed on a new line and is formatted individually",
}

// Messages is a set of localized strings.
type Messages struct {
	lang    string
	strings map[string]string
}

// Default returns the built-in English messages.
func Default() *Messages {
	return &Messages{lang: DefaultLanguage, strings: map[string]string{}}
}

// Language returns the language the messages were loaded for.
func (m *Messages) Language() string {
	return m.lang
}

// Load reads <dir>/<lang>.properties. A missing file is not an error: the
// built-in strings are used.
func Load(dir, lang string) (*Messages, error) {
	m := &Messages{lang: lang, strings: map[string]string{}}
	path := filepath.Join(dir, lang+".properties")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return m, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("properties")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	for _, key := range v.AllKeys() {
		m.strings[key] = strings.TrimSpace(v.GetString(key))
	}
	return m, nil
}

// Get returns the raw string for key, falling back to English. Unknown keys
// return the key itself.
func (m *Messages) Get(key string) string {
	if m != nil {
		if s, ok := m.strings[key]; ok && s != "" {
			return s
		}
	}
	if s, ok := defaults[key]; ok {
		return s
	}
	return key
}

// Format returns the string for key with {name} placeholders replaced.
// args are name/value pairs.
func (m *Messages) Format(key string, args ...string) string {
	s := m.Get(key)
	if len(args) == 0 {
		return s
	}
	pairs := make([]string, 0, len(args))
	for i := 0; i+1 < len(args); i += 2 {
		pairs = append(pairs, "{"+args[i]+"}", args[i+1])
	}
	return strings.NewReplacer(pairs...).Replace(s)
}

// Style returns the placeholder pairs for the text styles of p, to be
// passed to Format along with the message's own arguments.
func Style(p render.Palette) []string {
	return []string{"bold", p.Bold, "italics", p.Italics, "normal", p.Reset}
}

// DetectLanguage returns the base language of the first locale variable
// set among LC_ALL, LC_MESSAGES and LANG.
func DetectLanguage(getenv func(string) string) string {
	if getenv == nil {
		getenv = os.Getenv
	}
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		value := getenv(name)
		if value == "" {
			continue
		}
		return baseLanguage(value)
	}
	return DefaultLanguage
}

func baseLanguage(locale string) string {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return DefaultLanguage
	}
	base, conf := tag.Base()
	if conf == language.No {
		return DefaultLanguage
	}
	return base.String()
}
