package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mybible-cli/mybible-cli/pkg/library"
	"github.com/mybible-cli/mybible-cli/pkg/reference"
	"github.com/mybible-cli/mybible-cli/pkg/render"
	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve a reference to verse ranges without printing the verses",
	RunE: func(cmd *cobra.Command, _ []string) error {
		moduleName, _ := cmd.Flags().GetString("module")
		ref, _ := cmd.Flags().GetString("reference")
		selfAbbr, _ := cmd.Flags().GetBool("self-abbr")
		abbr, _ := cmd.Flags().GetString("abbr")
		asJSON, _ := cmd.Flags().GetBool("json")

		e, err := newEnv(cmd)
		if err != nil {
			return err
		}
		lib, err := e.library(cmd)
		if err != nil {
			return err
		}
		m, err := e.openModule(cmd.Context(), lib, moduleName, library.OpenOptions{Abbr: abbr, SelfAbbr: selfAbbr && abbr == ""})
		if err != nil {
			return err
		}
		defer m.Close()

		ranges, err := m.Resolve(ref)
		if err != nil {
			return e.referenceError(ref, err)
		}
		resolved := describeRanges(ranges, m.Count(ranges), m.Books)
		if asJSON {
			return writeJSON(e.out, resolved)
		}
		for _, r := range resolved {
			fmt.Fprintf(e.out, "%s\t%s\t%s\t%d\n", r.Label, r.Range.Start, r.Range.End, r.Verses)
		}
		return nil
	},
}

// resolvedRange is one line of resolve output.
type resolvedRange struct {
	Label  string               `json:"label"`
	Range  reference.VerseRange `json:"range"`
	Verses int                  `json:"verses"`
}

func describeRanges(ranges []reference.VerseRange, counts []int, names render.BookNamer) []resolvedRange {
	out := make([]resolvedRange, len(ranges))
	for i, r := range ranges {
		out[i] = resolvedRange{Label: rangeLabel(r, names), Range: r, Verses: counts[i]}
	}
	return out
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().StringP("module", "m", "", "name of the MyBible module to use")
	resolveCmd.Flags().StringP("reference", "r", "", "Bible reference to resolve")
	resolveCmd.Flags().StringP("abbr", "a", "", "read book names from <config dir>/NAME_mapping.json")
	resolveCmd.Flags().BoolP("self-abbr", "A", false, "read book names from the module itself")
	resolveCmd.Flags().Bool("json", false, "print the ranges as JSON")
	resolveCmd.MarkFlagRequired("module")
	resolveCmd.MarkFlagRequired("reference")
}
