package server

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/mybible-cli/mybible-cli/pkg/library"
)

func newTestServer(t *testing.T, user, pass string) (*Server, http.Handler) {
	t.Helper()
	modules := t.TempDir()
	db, err := sql.Open("sqlite", filepath.Join(modules, "KJV.SQLite3"))
	if err != nil {
		t.Fatal(err)
	}
	stmts := []string{
		"CREATE TABLE info (name TEXT, value TEXT)",
		"CREATE TABLE books (book_number NUMERIC, short_name TEXT, long_name TEXT)",
		"CREATE TABLE verses (book_number NUMERIC, chapter NUMERIC, verse NUMERIC, text TEXT)",
		"INSERT INTO info VALUES ('language', 'en')",
		"INSERT INTO books VALUES (500, 'Jn', 'John')",
		"INSERT INTO verses VALUES (500, 3, 16, 'For God<S>2316</S> so loved the world')",
		"INSERT INTO verses VALUES (500, 3, 17, 'For God sent not his Son')",
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatal(err)
		}
	}
	db.Close()

	lib := library.New(library.Config{ModulesDir: modules, ConfigDir: t.TempDir()})
	srv := New(lib, "%a %c:%v %t", user, pass)
	t.Cleanup(func() { srv.Close() })
	h, err := srv.Handler()
	if err != nil {
		t.Fatal(err)
	}
	return srv, h
}

func get(t *testing.T, h http.Handler, url string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestVerses(t *testing.T) {
	_, h := newTestServer(t, "", "")
	rec := get(t, h, "/api/verses?module=kjv&reference=John+3:16-17")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body)
	}
	var resp versesResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Verses) != 2 || len(resp.Ranges) != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if got, want := resp.Verses[0].Line, "Jn 3:16 For God so loved the world"; got != want {
		t.Fatalf("line: want %q, got %q", want, got)
	}
	if resp.Ranges[0].Verses != 2 {
		t.Fatalf("want 2 verses in range, got %d", resp.Ranges[0].Verses)
	}
}

func TestErrors(t *testing.T) {
	_, h := newTestServer(t, "", "")
	tests := []struct {
		url    string
		status int
	}{
		{"/api/resolve?module=kjv", http.StatusBadRequest},
		{"/api/resolve?module=niv&reference=John+3:16", http.StatusNotFound},
		{"/api/resolve?module=kjv&reference=Nowhere+1:1", http.StatusUnprocessableEntity},
		{"/api/resolve?module=kjv&reference=John+3:x", http.StatusUnprocessableEntity},
		{"/api/resolve?module=kjv&reference=John+3:16", http.StatusOK},
		{"/api/modules", http.StatusOK},
		{"/", http.StatusOK},
	}
	for _, tt := range tests {
		if rec := get(t, h, tt.url); rec.Code != tt.status {
			t.Errorf("%s: want %d, got %d (%s)", tt.url, tt.status, rec.Code, rec.Body)
		}
	}
}

func TestBasicAuth(t *testing.T) {
	_, h := newTestServer(t, "reader", "secret")
	if rec := get(t, h, "/api/modules"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/modules", nil)
	req.SetBasicAuth("reader", "secret")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", rec.Code)
	}
}

func TestModulesAreReused(t *testing.T) {
	srv, h := newTestServer(t, "", "")
	get(t, h, "/api/resolve?module=KJV&reference=John+3:16")
	get(t, h, "/api/resolve?module=kjv&reference=John+3:17")
	if len(srv.modules) != 1 {
		t.Fatalf("want 1 open module, got %d", len(srv.modules))
	}
}
