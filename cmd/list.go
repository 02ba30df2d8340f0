package cmd

import (
	"fmt"

	"github.com/mybible-cli/mybible-cli/pkg/catalog"
	"github.com/mybible-cli/mybible-cli/pkg/l10n"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the installed MyBible modules",
	RunE: func(cmd *cobra.Command, _ []string) error {
		simple, _ := cmd.Flags().GetBool("simple")
		width, _ := cmd.Flags().GetInt("width")

		e, err := newEnv(cmd)
		if err != nil {
			return err
		}
		lib, err := e.library(cmd)
		if err != nil {
			return err
		}
		modules, err := lib.Catalog().List(cmd.Context())
		if err != nil {
			return err
		}

		if simple {
			catalog.PrintSimple(e.out, modules)
			return nil
		}
		fmt.Fprintln(e.out, e.msg(l10n.AvailableModules, "number", fmt.Sprint(len(modules))))
		fmt.Fprintln(e.out)
		catalog.PrintTable(e.out, modules, width)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("simple", false, "tab-separated output: language, module, description")
	listCmd.Flags().Int("width", catalog.DefaultCellWidth, "wrap table cells at this many characters")
}
