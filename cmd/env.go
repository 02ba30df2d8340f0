package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mybible-cli/mybible-cli/internal/utils"
	"github.com/mybible-cli/mybible-cli/pkg/catalog"
	"github.com/mybible-cli/mybible-cli/pkg/l10n"
	"github.com/mybible-cli/mybible-cli/pkg/library"
	"github.com/mybible-cli/mybible-cli/pkg/render"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// env is what a command needs besides its own flags: where things live,
// the UI strings and the colours. Built once per command run.
type env struct {
	configDir string
	messages  *l10n.Messages
	palette   render.Palette
	out       io.Writer
}

func newEnv(cmd *cobra.Command) (*env, error) {
	dir, err := configDir()
	if err != nil {
		return nil, err
	}
	lang := l10n.DetectLanguage(nil)
	messages, err := l10n.Load(filepath.Join(dir, "l10n"), lang)
	if err != nil {
		utils.Log.Warnf("Using built-in messages: %v", err)
		messages = l10n.Default()
	}
	return &env{
		configDir: dir,
		messages:  messages,
		palette:   render.DefaultPalette,
		out:       cmd.OutOrStdout(),
	}, nil
}

// msg formats a localized message with the palette's styles available.
func (e *env) msg(key string, args ...string) string {
	return e.messages.Format(key, append(args, l10n.Style(e.palette)...)...)
}

// modulesDir returns the folder with the modules: the --path flag, else
// the configured modules_path. When neither is usable and stdin is a
// terminal the user is asked, and the answer is saved.
func (e *env) modulesDir(cmd *cobra.Command) (string, error) {
	if flagPath, _ := cmd.Flags().GetString("path"); flagPath != "" {
		dir, err := utils.ExpandPath(flagPath)
		if err != nil {
			return "", err
		}
		if !catalog.ValidDir(dir) {
			return "", errors.New(e.invalidDirMessage(dir))
		}
		return dir, nil
	}

	if configured := viper.GetString("modules_path"); configured != "" {
		if dir, err := utils.ExpandPath(configured); err == nil && catalog.ValidDir(dir) {
			return dir, nil
		}
		fmt.Fprintln(cmd.ErrOrStderr(), e.invalidDirMessage(configured))
	}

	if !utils.IsInteractive() {
		return "", errors.New(e.msg(l10n.InvalidPath, "modules_path", viper.GetString("modules_path")))
	}
	return e.askModulesDir(utils.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout()), cmd.ErrOrStderr())
}

func (e *env) askModulesDir(p *utils.Prompter, errOut io.Writer) (string, error) {
	for {
		answer, err := p.Ask(e.msg(l10n.InPath))
		if err != nil {
			return "", errors.New(e.msg(l10n.ExitNow))
		}
		if answer == "" {
			continue
		}
		dir, err := utils.ExpandPath(os.ExpandEnv(answer))
		if err != nil || !catalog.ValidDir(dir) {
			fmt.Fprintln(errOut, e.invalidDirMessage(answer))
			continue
		}
		viper.Set("modules_path", dir)
		if err := viper.WriteConfig(); err != nil {
			utils.Log.Warnf("Could not save modules_path: %v", err)
		}
		return dir, nil
	}
}

func (e *env) invalidDirMessage(dir string) string {
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return e.msg(l10n.EmptyPath, "modules_path", dir)
	}
	return e.msg(l10n.InvalidPath, "modules_path", dir)
}

// library opens the module folder for reading.
func (e *env) library(cmd *cobra.Command) (*library.Library, error) {
	dir, err := e.modulesDir(cmd)
	if err != nil {
		return nil, err
	}
	return library.New(library.Config{
		ModulesDir: dir,
		ConfigDir:  e.configDir,
		Log:        utils.Log,
	}), nil
}

// openModule opens the module named by the --module flag.
func (e *env) openModule(ctx context.Context, lib *library.Library, name string, opts library.OpenOptions) (*library.Module, error) {
	m, err := lib.Open(ctx, name, opts)
	if errors.Is(err, catalog.ErrModuleNotFound) {
		return nil, errors.New(e.msg(l10n.NoModule, "module_name", name, "modules_path", lib.ModulesDir()))
	}
	return m, err
}
