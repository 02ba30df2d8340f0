package moduledata

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mybible-cli/mybible-cli/internal/utils"
	"github.com/mybible-cli/mybible-cli/pkg/reference"
	"github.com/mybible-cli/mybible-cli/pkg/storage"
	"github.com/sirupsen/logrus"
)

// BookSource yields a module's books table.
type BookSource interface {
	Books(ctx context.Context) ([]storage.Book, error)
}

// CanonSource yields the highest stored verse per book and chapter.
type CanonSource interface {
	VerseMaxima(ctx context.Context) (map[reference.BookID]map[int]int, error)
}

// Cache keeps per-module artifacts under one directory, usually
// <config>/moduledata. Artifacts are built on first use and never
// invalidated; deleting the files forces a rebuild.
type Cache struct {
	Dir string
	Log logrus.FieldLogger
}

func NewCache(dir string) *Cache {
	return &Cache{Dir: dir, Log: utils.Log}
}

// AbbrPath is where the book names of module are cached.
func (c *Cache) AbbrPath(module string) string {
	return filepath.Join(c.Dir, module+".abbr.json")
}

// AllVersesPath is where the canon of module is cached.
func (c *Cache) AllVersesPath(module string) string {
	return filepath.Join(c.Dir, module+".allverses.json")
}

// Abbreviations returns the module's own book names, extracting them from
// src the first time.
func (c *Cache) Abbreviations(ctx context.Context, module string, src BookSource) (Mapping, error) {
	path := c.AbbrPath(module)
	if m, err := LoadMapping(path); err == nil {
		return m, nil
	} else if !os.IsNotExist(err) {
		c.logger().Warnf("Rebuilding unreadable cache %s: %v", path, err)
	}

	var m Mapping
	err := utils.WithFileLock(path, func() error {
		books, err := src.Books(ctx)
		if err != nil {
			return fmt.Errorf("reading books of %s: %w", module, err)
		}
		m = FromBooks(books)
		return utils.WriteFileAtomic(path, m.Dump(), 0o644)
	})
	if err != nil {
		return nil, err
	}
	c.logger().Debugf("Wrote %s (%d books)", path, len(m))
	return m, nil
}

// Canon returns the module's canon index, deriving it from src the first
// time.
func (c *Cache) Canon(ctx context.Context, module string, src CanonSource) (*reference.CanonIndex, error) {
	path := c.AllVersesPath(module)
	if counts, err := loadAllVerses(path); err == nil {
		return reference.NewCanonIndex(counts), nil
	} else if !os.IsNotExist(err) {
		c.logger().Warnf("Rebuilding unreadable cache %s: %v", path, err)
	}

	var counts map[reference.BookID]map[int]int
	err := utils.WithFileLock(path, func() error {
		var err error
		counts, err = src.VerseMaxima(ctx)
		if err != nil {
			return fmt.Errorf("reading verses of %s: %w", module, err)
		}
		data, err := marshalAllVerses(counts)
		if err != nil {
			return err
		}
		return utils.WriteFileAtomic(path, data, 0o644)
	})
	if err != nil {
		return nil, err
	}
	c.logger().Debugf("Wrote %s (%d books)", path, len(counts))
	return reference.NewCanonIndex(counts), nil
}

func (c *Cache) logger() logrus.FieldLogger {
	if c.Log == nil {
		return utils.Log
	}
	return c.Log
}

func marshalAllVerses(counts map[reference.BookID]map[int]int) ([]byte, error) {
	out := make(map[string]map[string]int, len(counts))
	for book, chapters := range counts {
		m := make(map[string]int, len(chapters))
		for ch, n := range chapters {
			m[strconv.Itoa(ch)] = n
		}
		out[strconv.Itoa(int(book))] = m
	}
	return json.MarshalIndent(out, "", "  ")
}

func loadAllVerses(path string) (map[reference.BookID]map[int]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw map[string]map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	out := make(map[reference.BookID]map[int]int, len(raw))
	for bookKey, chapters := range raw {
		book, err := strconv.Atoi(bookKey)
		if err != nil {
			return nil, fmt.Errorf("book key %q is not a number", bookKey)
		}
		m := make(map[int]int, len(chapters))
		for chKey, n := range chapters {
			ch, err := strconv.Atoi(chKey)
			if err != nil {
				return nil, fmt.Errorf("book %d: chapter key %q is not a number", book, chKey)
			}
			m[ch] = n
		}
		out[reference.BookID(book)] = m
	}
	return out, nil
}
