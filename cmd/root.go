package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mybible-cli/mybible-cli/internal/utils"
	"github.com/mybible-cli/mybible-cli/pkg/render"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mybible-cli",
	Short: "Command line tool to query MyBible modules.",
	Long: `mybible-cli reads verses from MyBible bible modules (*.SQLite3).

Parameters containing several tokens should be quoted:
  mybible-cli read -m "NIV'11" -r "1 Pet 1:1-5; 2:9"`,
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is <config dir>/mybible-cli/config.json)")

	// Global flags
	rootCmd.PersistentFlags().StringP("path", "p", "", "path to the folder with MyBible modules")
	rootCmd.PersistentFlags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")
}

// configDir is the folder holding config.json, the mappings and the caches.
func configDir() (string, error) {
	if cfgFile != "" {
		return filepath.Dir(cfgFile), nil
	}
	return utils.DefaultConfigDir()
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	levelString, _ := rootCmd.PersistentFlags().GetString("loglevel")
	utils.SetLogLevel(levelString)

	dir, err := configDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	configPath := cfgFile
	if configPath == "" {
		configPath = filepath.Join(dir, "config.json")
	}
	viper.SetConfigFile(configPath)
	viper.SetConfigType("json")

	viper.SetDefault("modules_path", "")
	viper.SetDefault("format_string", render.DefaultFormat)

	viper.SetEnvPrefix("MYBIBLE")
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || os.IsNotExist(err) {
			// Config file not found; create it with defaults.
			if err := os.MkdirAll(dir, 0o755); err != nil {
				utils.Log.Warnf("Error creating config folder: %s", err)
			} else if err := viper.SafeWriteConfigAs(configPath); err != nil {
				utils.Log.Warnf("Error creating config file: %s", err)
			}
		} else {
			utils.Log.Warnf("Ignoring unreadable config %s: %s", configPath, err)
		}
	}
}
