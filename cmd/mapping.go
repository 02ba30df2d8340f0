package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mybible-cli/mybible-cli/internal/utils"
	"github.com/mybible-cli/mybible-cli/pkg/l10n"
	"github.com/mybible-cli/mybible-cli/pkg/moduledata"
	"github.com/spf13/cobra"
)

// mappingCmd groups the helpers for editing book name mappings.
var mappingCmd = &cobra.Command{
	Use:   "mapping",
	Short: "Convert and check book name mapping files",
}

var jsonToTSVCmd = &cobra.Command{
	Use:     "j2t FILE",
	Aliases: []string{"json-to-tsv"},
	Short:   "Convert a JSON mapping to TSV for editing",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return convertMapping(cmd, args[0], ".tsv", func(data []byte) ([]byte, error) {
			return moduledata.JSONToTSV(data)
		})
	},
}

var tsvToJSONCmd = &cobra.Command{
	Use:     "t2j FILE",
	Aliases: []string{"tsv-to-json"},
	Short:   "Convert a TSV file back to a JSON mapping",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return convertMapping(cmd, args[0], ".json", func(data []byte) ([]byte, error) {
			return moduledata.TSVToJSON(bytes.NewReader(data))
		})
	},
}

var checkTSVCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Report repeated names in a TSV mapping",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd)
		if err != nil {
			return err
		}
		f, err := os.Open(args[0])
		if err != nil {
			return errors.New(e.msg(l10n.FileFail, "file", args[0]))
		}
		defer f.Close()

		inLine, across, err := moduledata.TSVDuplicates(f)
		if err != nil {
			return err
		}
		writeDuplicates(e.out, e.messages, inLine, across)
		return nil
	},
}

func convertMapping(cmd *cobra.Command, src, ext string, convert func([]byte) ([]byte, error)) error {
	force, _ := cmd.Flags().GetBool("force")
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return errors.New(e.msg(l10n.FileFail, "file", src))
	}
	out, err := convert(data)
	if err != nil {
		return fmt.Errorf("%s: %w", src, err)
	}

	dst := moduledata.SiblingPath(src, ext)
	if utils.FileExists(dst) && !force {
		p := utils.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
		ok, err := p.Confirm(e.msg(l10n.FileExistsPrompt, "file", dst), e.msg(l10n.YesNoPrompt))
		if err != nil {
			return errors.New(e.msg(l10n.ExitNow))
		}
		if !ok {
			return nil
		}
	}
	if err := utils.WriteFileAtomic(dst, out, 0o644); err != nil {
		return err
	}
	fmt.Fprintln(e.out, e.msg(l10n.FileCreated, "file", dst))
	return nil
}

func writeDuplicates(w io.Writer, m *l10n.Messages, inLine []moduledata.LineRepeat, across []moduledata.FileRepeat) {
	for _, r := range inLine {
		fmt.Fprintln(w, m.Format(l10n.RepeatedInLine,
			"row", strconv.Itoa(r.Line),
			"repeated_string", strings.Join(r.Values, ", ")))
	}
	for _, r := range across {
		rows := make([]string, len(r.Lines))
		for i, l := range r.Lines {
			rows[i] = strconv.Itoa(l)
		}
		fmt.Fprintln(w, m.Format(l10n.RepeatedInFile,
			"element", r.Value,
			"rows", strings.Join(rows, ", ")))
	}
}

func init() {
	rootCmd.AddCommand(mappingCmd)
	mappingCmd.AddCommand(jsonToTSVCmd)
	mappingCmd.AddCommand(tsvToJSONCmd)
	mappingCmd.AddCommand(checkTSVCmd)
	mappingCmd.PersistentFlags().Bool("force", false, "overwrite an existing output file without asking")
}
