package cmd

import (
	"github.com/mybible-cli/mybible-cli/internal/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the modules over a local JSON API with a small web viewer",
	RunE: func(cmd *cobra.Command, args []string) error {
		listenAddr, _ := cmd.Flags().GetString("listen")
		user, _ := cmd.Flags().GetString("user")
		pass, _ := cmd.Flags().GetString("pass")

		e, err := newEnv(cmd)
		if err != nil {
			return err
		}
		lib, err := e.library(cmd)
		if err != nil {
			return err
		}

		srv := server.New(lib, viper.GetString("format_string"), user, pass)
		defer srv.Close()
		return srv.Start(listenAddr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("listen", "127.0.0.1:8080", "HTTP listen address")
	serveCmd.Flags().String("user", "", "Basic auth username (empty disables auth)")
	serveCmd.Flags().String("pass", "", "Basic auth password")
}
