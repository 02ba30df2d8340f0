package cmd

import (
	"fmt"

	"github.com/mybible-cli/mybible-cli/pkg/l10n"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var helpFormatCmd = &cobra.Command{
	Use:   "helpformat",
	Short: "Detailed info on the format string",
	RunE: func(cmd *cobra.Command, _ []string) error {
		e, err := newEnv(cmd)
		if err != nil {
			return err
		}
		fmt.Fprintln(e.out, e.msg(l10n.HelpFormatMessage, "format_string", viper.GetString("format_string")))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(helpFormatCmd)
}
