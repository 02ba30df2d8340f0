// Package library opens installed MyBible modules ready for reading: it
// ties the module store to its cached canon and book names, picks the
// alias table and builds the reference resolver.
package library

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/mybible-cli/mybible-cli/pkg/catalog"
	"github.com/mybible-cli/mybible-cli/pkg/moduledata"
	"github.com/mybible-cli/mybible-cli/pkg/reference"
	"github.com/mybible-cli/mybible-cli/pkg/storage"
)

// Logger abstracts logging so callers can use logrus, stdlib log, or any
// other logger that satisfies this interface.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}
func (nopLogger) Debugf(string, ...interface{}) {}

// Config locates the modules and the per-user data.
type Config struct {
	ModulesDir  string
	ConfigDir   string
	Concurrency int    // for catalog scans; defaults to 4 if <= 0
	Log         Logger // optional; nil = no logging
}

// Library gives access to the modules of one folder.
type Library struct {
	cfg   Config
	cache *moduledata.Cache
	log   Logger
}

func New(cfg Config) *Library {
	log := cfg.Log
	if log == nil {
		log = nopLogger{}
	}
	return &Library{
		cfg:   cfg,
		cache: moduledata.NewCache(filepath.Join(cfg.ConfigDir, "moduledata")),
		log:   log,
	}
}

// ModulesDir returns the folder the library reads modules from.
func (l *Library) ModulesDir() string { return l.cfg.ModulesDir }

// ConfigDir returns the folder holding mappings and caches.
func (l *Library) ConfigDir() string { return l.cfg.ConfigDir }

// MappingPath returns the alias mapping file for abbr, or the default
// mapping.json when abbr is empty.
func (l *Library) MappingPath(abbr string) string {
	if abbr == "" {
		return filepath.Join(l.cfg.ConfigDir, "mapping.json")
	}
	return filepath.Join(l.cfg.ConfigDir, abbr+"_mapping.json")
}

// Catalog returns the listing of the library's modules.
func (l *Library) Catalog() *catalog.Catalog {
	return &catalog.Catalog{
		Dir:         l.cfg.ModulesDir,
		CachePath:   filepath.Join(l.cfg.ConfigDir, "installed_modules.json"),
		Concurrency: l.cfg.Concurrency,
	}
}

// OpenOptions selects the alias table used to read book names.
type OpenOptions struct {
	Abbr     string // use <config>/<Abbr>_mapping.json
	SelfAbbr bool   // use the module's own books table
}

// Module is an open bible module with everything needed to resolve and
// read references.
type Module struct {
	Name     string
	DB       *storage.DB
	Books    moduledata.Mapping
	Resolver *reference.Resolver
}

// Open finds the module called name and prepares it for reading.
func (l *Library) Open(ctx context.Context, name string, opts OpenOptions) (*Module, error) {
	path, err := catalog.Find(l.cfg.ModulesDir, name)
	if err != nil {
		return nil, err
	}
	db, err := storage.Open(path)
	if err != nil {
		return nil, err
	}
	m, err := l.prepare(ctx, db, catalog.ModuleName(path), opts)
	if err != nil {
		db.Close()
		return nil, err
	}
	return m, nil
}

func (l *Library) prepare(ctx context.Context, db *storage.DB, name string, opts OpenOptions) (*Module, error) {
	canon, err := l.cache.Canon(ctx, name, db)
	if err != nil {
		return nil, fmt.Errorf("building verse index of %s: %w", name, err)
	}

	books, err := l.cache.Abbreviations(ctx, name, db)
	if err != nil {
		l.log.Warnf("Could not read the books of %s: %v", name, err)
		books = nil
	}

	aliases, err := l.aliasMapping(books, opts)
	if err != nil {
		return nil, err
	}
	table, err := aliases.AliasTable()
	if err != nil {
		return nil, err
	}
	if dups := table.Duplicates(); len(dups) > 0 {
		l.log.Debugf("%d names map to more than one book; the first listed wins", len(dups))
	}

	resolverOpts := []reference.Option{reference.WithLogger(l.log)}
	if len(books) > 0 {
		resolverOpts = append(resolverOpts, reference.WithModuleBooks(books.Books()))
	} else {
		books = aliases
	}

	return &Module{
		Name:     name,
		DB:       db,
		Books:    books,
		Resolver: reference.NewResolver(table, canon, resolverOpts...),
	}, nil
}

func (l *Library) aliasMapping(books moduledata.Mapping, opts OpenOptions) (moduledata.Mapping, error) {
	if opts.SelfAbbr {
		if len(books) > 0 {
			return books, nil
		}
		l.log.Warnf("Falling back to the default book names")
	}

	path := l.MappingPath("")
	if opts.Abbr != "" && !opts.SelfAbbr {
		path = l.MappingPath(opts.Abbr)
	} else {
		created, err := moduledata.EnsureMapping(path)
		if err != nil {
			return nil, err
		}
		if created {
			l.log.Infof("Default book names written to %s", path)
		}
	}
	return moduledata.LoadMapping(path)
}

// Close releases the module's database.
func (m *Module) Close() error {
	return m.DB.Close()
}

// Resolve resolves ref against the module.
func (m *Module) Resolve(ref string) ([]reference.VerseRange, error) {
	return m.Resolver.Resolve(ref)
}

// Read resolves ref and fetches its verses in reference order.
func (m *Module) Read(ctx context.Context, ref string) ([]reference.VerseRange, []storage.Verse, error) {
	ranges, err := m.Resolve(ref)
	if err != nil {
		return nil, nil, err
	}
	verses, err := m.DB.QueryRanges(ctx, ranges)
	if err != nil {
		return nil, nil, err
	}
	return ranges, verses, nil
}

// Count returns the number of verses each range covers.
func (m *Module) Count(ranges []reference.VerseRange) []int {
	return reference.CountVerses(ranges, m.Resolver.Canon())
}
