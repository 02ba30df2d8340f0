package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/mybible-cli/mybible-cli/internal/utils"
	"github.com/mybible-cli/mybible-cli/pkg/l10n"
	"github.com/mybible-cli/mybible-cli/pkg/library"
	"github.com/mybible-cli/mybible-cli/pkg/reference"
	"github.com/mybible-cli/mybible-cli/pkg/render"
	"github.com/mybible-cli/mybible-cli/pkg/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Print the verses of a Bible reference",
	Example: `  mybible-cli read -m KJV -r "John 3:16-18; 4:1"
  mybible-cli read -m KJV -r "Gen 1:1-3" -f "%a %c:%v %z"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		moduleName, _ := cmd.Flags().GetString("module")
		ref, _ := cmd.Flags().GetString("reference")
		abbr, _ := cmd.Flags().GetString("abbr")
		selfAbbr, _ := cmd.Flags().GetBool("self-abbr")
		noANSI, _ := cmd.Flags().GetBool("noansi")
		count, _ := cmd.Flags().GetBool("count")

		if abbr != "" && selfAbbr {
			return errors.New("--abbr and --self-abbr cannot be used together")
		}

		e, err := newEnv(cmd)
		if err != nil {
			return err
		}

		format, err := e.formatString(cmd)
		if err != nil {
			return err
		}
		f, err := render.Compile(format, e.palette)
		if err != nil {
			return err
		}

		lib, err := e.library(cmd)
		if err != nil {
			return err
		}
		m, err := e.openModule(cmd.Context(), lib, moduleName, library.OpenOptions{Abbr: abbr, SelfAbbr: selfAbbr})
		if err != nil {
			return err
		}
		defer m.Close()

		ranges, verses, err := m.Read(cmd.Context(), ref)
		if err != nil {
			return e.referenceError(ref, err)
		}

		printVerses(e.out, verses, f, m.Books, m.Name, noANSI)
		if count {
			printCounts(e.out, ranges, m.Count(ranges), m.Books)
		}
		return nil
	},
}

// formatString picks the output format: --save-format (which is also
// stored as the new default), --format, then the configured default.
func (e *env) formatString(cmd *cobra.Command) (string, error) {
	if saved, _ := cmd.Flags().GetString("save-format"); saved != "" {
		viper.Set("format_string", saved)
		if err := viper.WriteConfig(); err != nil {
			return "", fmt.Errorf("could not save the format: %w", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), e.msg(l10n.FormatSaved, "format_string", saved))
		return saved, nil
	}
	if format, _ := cmd.Flags().GetString("format"); format != "" {
		return format, nil
	}
	if format := viper.GetString("format_string"); format != "" {
		return format, nil
	}
	return render.DefaultFormat, nil
}

// referenceError turns a resolution failure into the localized message.
// Other errors pass through.
func (e *env) referenceError(ref string, err error) error {
	if !errors.Is(err, reference.ErrInvalidReference) && !errors.Is(err, reference.ErrMalformedFragment) {
		return err
	}
	utils.Log.Debugf("Resolving %q: %v", ref, err)
	return errors.New(e.msg(l10n.NoVerseOutput, "reference", ref) + " " + e.msg(l10n.InvalidReference))
}

func printVerses(w io.Writer, verses []storage.Verse, f *render.Format, names render.BookNamer, module string, noANSI bool) {
	for _, v := range verses {
		line := f.Verse(v, names, module)
		if noANSI {
			line = render.StripANSI(line)
		}
		fmt.Fprintln(w, line)
	}
}

func printCounts(w io.Writer, ranges []reference.VerseRange, counts []int, names render.BookNamer) {
	for i, r := range ranges {
		fmt.Fprintf(w, "%s\t%d\n", rangeLabel(r, names), counts[i])
	}
}

func init() {
	rootCmd.AddCommand(readCmd)
	readCmd.Flags().StringP("module", "m", "", "name of the MyBible module to use")
	readCmd.Flags().StringP("reference", "r", "", "Bible reference to output")
	readCmd.Flags().StringP("abbr", "a", "", "read book names from <config dir>/NAME_mapping.json")
	readCmd.Flags().BoolP("self-abbr", "A", false, "read book names from the module itself")
	readCmd.Flags().StringP("format", "f", "", "format the output with a %-prefixed format string (see helpformat)")
	readCmd.Flags().StringP("save-format", "F", "", "apply the format string and save it as the default")
	readCmd.Flags().Bool("noansi", false, "remove ANSI escape sequences from the output (if %A or %Z were used)")
	readCmd.Flags().Bool("count", false, "print the number of verses in each resolved range")
	readCmd.MarkFlagRequired("module")
	readCmd.MarkFlagRequired("reference")
}
