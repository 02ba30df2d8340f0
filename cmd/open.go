package cmd

import (
	"errors"

	"github.com/mybible-cli/mybible-cli/internal/utils"
	"github.com/mybible-cli/mybible-cli/pkg/l10n"
	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:       "open config|modules",
	Short:     "Open the config folder or the folder with MyBible modules",
	Args:      cobra.ExactValidArgs(1),
	ValidArgs: []string{"config", "modules"},
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd)
		if err != nil {
			return err
		}

		folder := e.configDir
		if args[0] == "modules" {
			if folder, err = e.modulesDir(cmd); err != nil {
				return err
			}
		}
		utils.Log.Debugf("Opening %s", folder)
		if err := utils.OpenFolder(folder); err != nil {
			return errors.New(e.msg(l10n.FolderFail, "error", err.Error()))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
