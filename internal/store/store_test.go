package store

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"github.com/abhisek/pathwise/internal/catalog"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "pathwise.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestTablesCreated(t *testing.T) {
	s := openTestStore(t)
	for _, table := range Tables {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table.Name,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table.Name, err)
		}
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pathwise.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	c, _ := catalog.FromMap(map[string][]string{"A": nil, "B": {"A"}})
	if _, err := s.CatalogRepo().Save(ctx, "dsa", c); err != nil {
		t.Fatalf("save: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	got, err := s.CatalogRepo().Load(ctx, "dsa")
	if err != nil {
		t.Fatalf("load after reopen: %v", err)
	}
	if got.Fingerprint() != c.Fingerprint() {
		t.Error("fingerprint changed across reopen")
	}
}

func TestCatalogSaveAndLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.CatalogRepo()
	ctx := context.Background()

	c, err := catalog.New([]catalog.Topic{
		{Name: "Arrays", Category: "Basics", Description: "contiguous memory"},
		{Name: "Strings", Category: "Basics", Prerequisites: []string{"Arrays"}},
		{Name: "Graphs", Prerequisites: []string{"Trees", "Arrays"}},
	})
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}

	imp, err := repo.Save(ctx, "dsa", c)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if imp.ID == "" || imp.Catalog != "dsa" || imp.Topics != 3 {
		t.Errorf("unexpected import: %+v", imp)
	}
	if imp.Fingerprint != c.Fingerprint() {
		t.Errorf("import fingerprint = %q, want %q", imp.Fingerprint, c.Fingerprint())
	}

	got, err := repo.Load(ctx, "dsa")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !slices.Equal(got.Topics(), c.Topics()) {
		t.Errorf("topics = %v, want %v", got.Topics(), c.Topics())
	}
	// Undefined prerequisite "Trees" survives verbatim.
	if want := []string{"Trees", "Arrays"}; !slices.Equal(got.DirectPrerequisites("Graphs"), want) {
		t.Errorf("Graphs prerequisites = %v, want %v", got.DirectPrerequisites("Graphs"), want)
	}
	arrays, _ := got.Topic("Arrays")
	if arrays.Category != "Basics" || arrays.Description != "contiguous memory" {
		t.Errorf("metadata lost: %+v", arrays)
	}
	if got.Fingerprint() != c.Fingerprint() {
		t.Error("round trip changed the fingerprint")
	}
}

func TestCatalogSaveReplaces(t *testing.T) {
	s := openTestStore(t)
	repo := s.CatalogRepo()
	ctx := context.Background()

	first, _ := catalog.FromMap(map[string][]string{"A": nil, "B": {"A"}})
	second, _ := catalog.FromMap(map[string][]string{"X": nil})
	other, _ := catalog.FromMap(map[string][]string{"Q": nil})

	if _, err := repo.Save(ctx, "main", first); err != nil {
		t.Fatalf("save first: %v", err)
	}
	if _, err := repo.Save(ctx, "other", other); err != nil {
		t.Fatalf("save other: %v", err)
	}
	if _, err := repo.Save(ctx, "main", second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	got, err := repo.Load(ctx, "main")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !slices.Equal(got.Topics(), []string{"X"}) {
		t.Errorf("topics = %v, want [X]", got.Topics())
	}

	imports, err := repo.Imports(ctx, "main")
	if err != nil {
		t.Fatalf("imports: %v", err)
	}
	if len(imports) != 2 {
		t.Fatalf("got %d imports, want 2", len(imports))
	}
	if imports[0].Fingerprint != second.Fingerprint() {
		t.Error("imports should be newest first")
	}
	if imports[0].ImportedAt.IsZero() {
		t.Error("import timestamp not stored")
	}

	names, err := repo.Names(ctx)
	if err != nil {
		t.Fatalf("names: %v", err)
	}
	if !slices.Equal(names, []string{"main", "other"}) {
		t.Errorf("names = %v, want [main other]", names)
	}
}

func TestCatalogLoadNotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.CatalogRepo().Load(context.Background(), "missing")
	if !errors.Is(err, ErrCatalogNotFound) {
		t.Fatalf("expected ErrCatalogNotFound, got %v", err)
	}
}

func TestCatalogSaveEmpty(t *testing.T) {
	s := openTestStore(t)
	repo := s.CatalogRepo()
	ctx := context.Background()

	empty, _ := catalog.New(nil)
	if _, err := repo.Save(ctx, "empty", empty); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := repo.Load(ctx, "empty")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Len() != 0 {
		t.Errorf("got %d topics, want 0", got.Len())
	}
}

func TestDefaultDBPath_EnvOverride(t *testing.T) {
	want := filepath.Join(t.TempDir(), "nested", "custom.db")
	t.Setenv("PATHWISE_DB", want)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDefaultDBPath_XDG(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("PATHWISE_DB", "")
	t.Setenv("XDG_DATA_HOME", dataHome)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if want := filepath.Join(dataHome, "pathwise", "pathwise.db"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
