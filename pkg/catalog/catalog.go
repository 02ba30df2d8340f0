// Package catalog discovers the bible modules installed in a folder and
// keeps a small cache of their language and description.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/mybible-cli/mybible-cli/internal/utils"
	"github.com/mybible-cli/mybible-cli/pkg/moduledata"
	"github.com/mybible-cli/mybible-cli/pkg/storage"
	"github.com/tidwall/gjson"
)

const moduleExt = ".sqlite3"

// NotAvailable stands in for a missing info value.
const NotAvailable = "N/A"

// Files whose name contains one of these are companion modules, not bibles.
var companionMarkers = []string{
	"crossreferences",
	"dictionary",
	"subheadings",
	"commentaries",
	"plan",
	"devotions",
	"dictionaries_lookup",
	"ReferenceData",
}

// ErrModuleNotFound is returned by Find when no file matches the name.
var ErrModuleNotFound = errors.New("module not found")

// Module describes one installed bible module.
type Module struct {
	File        string `json:"file"`
	Name        string `json:"name"`
	Language    string `json:"language"`
	Description string `json:"description"`
}

// IsModuleFile reports whether name has the module extension, in any case.
func IsModuleFile(name string) bool {
	return strings.EqualFold(filepath.Ext(name), moduleExt)
}

// ModuleName strips the extension from a module file name.
func ModuleName(file string) string {
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Files returns the module files in dir, companions included, sorted.
func Files(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if !e.IsDir() && IsModuleFile(e.Name()) {
			out = append(out, e.Name())
		}
	}
	sort.Strings(out)
	return out, nil
}

// BibleFiles returns Files without companion modules.
func BibleFiles(dir string) ([]string, error) {
	files, err := Files(dir)
	if err != nil {
		return nil, err
	}
	out := files[:0]
	for _, f := range files {
		if !isCompanion(f) {
			out = append(out, f)
		}
	}
	return out, nil
}

func isCompanion(file string) bool {
	for _, m := range companionMarkers {
		if strings.Contains(file, m) {
			return true
		}
	}
	return false
}

// ValidDir reports whether dir exists and holds at least one module file.
func ValidDir(dir string) bool {
	files, err := Files(dir)
	return err == nil && len(files) > 0
}

// Find returns the path of the module called name in dir. Matching ignores
// case and the extension.
func Find(dir, name string) (string, error) {
	files, err := Files(dir)
	if err != nil {
		return "", err
	}
	for _, f := range files {
		if strings.EqualFold(ModuleName(f), name) {
			return filepath.Join(dir, f), nil
		}
	}
	return "", fmt.Errorf("%s in %s: %w", name, dir, ErrModuleNotFound)
}

// Catalog lists the modules of one folder, caching their info in a JSON
// file that is rebuilt whenever the set of files changes.
type Catalog struct {
	Dir         string
	CachePath   string
	Concurrency int // defaults to 4 if <= 0
}

// List returns the bible modules in c.Dir sorted by language.
func (c *Catalog) List(ctx context.Context) ([]Module, error) {
	files, err := BibleFiles(c.Dir)
	if err != nil {
		return nil, err
	}

	modules, ok := c.cached(files)
	if !ok {
		modules = c.describeConcurrently(ctx, files)
		if c.CachePath != "" {
			if err := utils.WithFileLock(c.CachePath, func() error {
				return utils.WriteFileAtomic(c.CachePath, dumpModules(modules), 0o644)
			}); err != nil {
				utils.Log.Warnf("Could not update %s: %v", c.CachePath, err)
			}
		}
	}

	sort.SliceStable(modules, func(i, j int) bool { return modules[i].Language < modules[j].Language })
	return modules, nil
}

// describeConcurrently reads the info of files using a worker pool. The
// result keeps the order of files.
func (c *Catalog) describeConcurrently(ctx context.Context, files []string) []Module {
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}
	modules := make([]Module, len(files))
	indexChan := make(chan int, len(files))

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range indexChan {
				modules[idx] = Describe(ctx, filepath.Join(c.Dir, files[idx]))
			}
		}()
	}

	for i := range files {
		indexChan <- i
	}
	close(indexChan)
	wg.Wait()

	return modules
}

// cached returns the cached modules if the cache covers exactly files.
func (c *Catalog) cached(files []string) ([]Module, bool) {
	if c.CachePath == "" {
		return nil, false
	}
	data, err := os.ReadFile(c.CachePath)
	if err != nil || !gjson.ValidBytes(data) {
		return nil, false
	}
	byFile := make(map[string]Module)
	gjson.ParseBytes(data).ForEach(func(key, value gjson.Result) bool {
		row := value.Array()
		if len(row) == 3 {
			byFile[key.String()] = Module{
				File:        key.String(),
				Language:    row[0].String(),
				Name:        row[1].String(),
				Description: row[2].String(),
			}
		}
		return true
	})
	if len(byFile) != len(files) {
		return nil, false
	}
	out := make([]Module, 0, len(files))
	for _, f := range files {
		m, ok := byFile[f]
		if !ok {
			return nil, false
		}
		out = append(out, m)
	}
	return out, true
}

// Describe reads language and description from the module at path. Modules
// that cannot be read are still listed, with N/A values.
func Describe(ctx context.Context, path string) Module {
	m := Module{
		File:        filepath.Base(path),
		Name:        ModuleName(path),
		Language:    NotAvailable,
		Description: NotAvailable,
	}
	db, err := storage.Open(path)
	if err != nil {
		utils.Log.Debugf("Skipping info of %s: %v", path, err)
		return m
	}
	defer db.Close()

	if v, err := db.InfoValue(ctx, "language"); err == nil && v != "" {
		m.Language = v
	}
	if v, err := db.InfoValue(ctx, "description"); err == nil && v != "" {
		m.Description = v
	}
	return m
}

// CleanDescription flattens HTML markup some modules put in their
// description to plain text.
func CleanDescription(desc string) string {
	if !strings.ContainsAny(desc, "<&") {
		return desc
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(desc))
	if err != nil {
		return desc
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

func dumpModules(modules []Module) []byte {
	keys := make([]string, len(modules))
	rows := make([][]string, len(modules))
	for i, m := range modules {
		keys[i] = m.File
		rows[i] = []string{m.Language, m.Name, m.Description}
	}
	return moduledata.DumpLines(keys, rows)
}
