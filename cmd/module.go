package cmd

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/mybible-cli/mybible-cli/pkg/catalog"
	"github.com/mybible-cli/mybible-cli/pkg/library"
	"github.com/mybible-cli/mybible-cli/pkg/render"
	"github.com/mybible-cli/mybible-cli/pkg/storage"
	"github.com/spf13/cobra"
	"github.com/zeebo/blake3"
)

// moduleCmd represents the module command
var moduleCmd = &cobra.Command{
	Use:   "module",
	Short: "Inspect a MyBible module",
}

// moduleInfoCmd represents the module info command
var moduleInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print the module's info table, size and BLAKE3 digest",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, path, err := modulePath(cmd)
		if err != nil {
			return err
		}
		db, err := storage.Open(path)
		if err != nil {
			return err
		}
		defer db.Close()

		info, err := db.Info(cmd.Context())
		if err != nil {
			return err
		}
		st, err := os.Stat(path)
		if err != nil {
			return err
		}
		digest, err := fileDigest(path)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(e.out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "file\t%s\n", path)
		fmt.Fprintf(w, "size\t%s\n", humanize.IBytes(uint64(st.Size())))
		fmt.Fprintf(w, "modified\t%s\n", humanize.Time(st.ModTime()))
		fmt.Fprintf(w, "blake3\t%s\n", digest)
		keys := make([]string, 0, len(info))
		for k := range info {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(w, "%s\t%s\n", k, catalog.CleanDescription(info[k]))
		}
		return w.Flush()
	},
}

// moduleStatsCmd represents the module stats command
var moduleStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Prints chapter and verse totals per book.",
	RunE: func(cmd *cobra.Command, args []string) error {
		moduleName, _ := cmd.Flags().GetString("module")
		e, err := newEnv(cmd)
		if err != nil {
			return err
		}
		lib, err := e.library(cmd)
		if err != nil {
			return err
		}
		m, err := e.openModule(cmd.Context(), lib, moduleName, library.OpenOptions{})
		if err != nil {
			return err
		}
		defer m.Close()

		return printStats(cmd.Context(), e.out, m.DB, m.Books)
	},
}

// moduleShellCmd represents the module shell command
var moduleShellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive read-only sqlite3 shell on the module",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, path, err := modulePath(cmd)
		if err != nil {
			return err
		}

		// Check if sqlite3 is in PATH
		sqlitePath, err := exec.LookPath("sqlite3")
		if err != nil {
			return fmt.Errorf("sqlite3 command not found in your PATH. Please install it to use the module shell")
		}

		// Print schema first
		fmt.Println("--> Module schema:")
		schemaCmd := exec.Command(sqlitePath, "-readonly", path, ".schema")
		schemaCmd.Stdout = os.Stdout
		schemaCmd.Stderr = os.Stderr
		if err := schemaCmd.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: couldn't retrieve schema: %v\n", err)
		}
		fmt.Println("\n--> Starting interactive shell... (Ctrl+D to exit)")

		c := exec.Command(sqlitePath, "-readonly", path)
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr

		return c.Run()
	},
}

// modulePath resolves the --module flag to a file in the modules folder.
func modulePath(cmd *cobra.Command) (*env, string, error) {
	moduleName, _ := cmd.Flags().GetString("module")
	e, err := newEnv(cmd)
	if err != nil {
		return nil, "", err
	}
	dir, err := e.modulesDir(cmd)
	if err != nil {
		return nil, "", err
	}
	path, err := catalog.Find(dir, moduleName)
	if err != nil {
		return nil, "", err
	}
	return e, path, nil
}

func fileDigest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := blake3.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func printStats(ctx context.Context, out io.Writer, db *storage.DB, names render.BookNamer) error {
	stats, err := db.GetStats(ctx)
	if err != nil {
		return err
	}
	if len(stats.PerBook) == 0 {
		fmt.Fprintln(out, "No verses in the module to generate stats.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "BOOK\tNAME\tCHAPTERS\tVERSES\t")
	for _, s := range stats.PerBook {
		_, short := render.BookNames(names, s.Book)
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t\n", s.Book, short, s.Chapters, s.Verses)
	}

	fmt.Fprintln(w, " \t \t \t \t")
	fmt.Fprintf(w, "TOTAL\t%d books\t%d\t%d\t\n", stats.Books, stats.Chapters, stats.Verses)

	return w.Flush()
}

func init() {
	rootCmd.AddCommand(moduleCmd)
	moduleCmd.AddCommand(moduleInfoCmd)
	moduleCmd.AddCommand(moduleStatsCmd)
	moduleCmd.AddCommand(moduleShellCmd)
	moduleCmd.PersistentFlags().StringP("module", "m", "", "name of the MyBible module to use")
	moduleCmd.MarkPersistentFlagRequired("module")
}
