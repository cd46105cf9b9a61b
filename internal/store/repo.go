package store

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/pathwise/internal/catalog"
)

// ErrCatalogNotFound is returned when no catalog was ever saved under a name.
var ErrCatalogNotFound = errors.New("catalog not found")

// Import records one save of a named catalog.
type Import struct {
	ID          string
	Catalog     string
	Fingerprint string
	Topics      int
	ImportedAt  time.Time
}

// CatalogRepo manages named topic catalogs.
type CatalogRepo interface {
	// Save replaces the catalog stored under name and records the import.
	Save(ctx context.Context, name string, c *catalog.Catalog) (Import, error)

	// Load returns the catalog stored under name, or ErrCatalogNotFound.
	Load(ctx context.Context, name string) (*catalog.Catalog, error)

	// Imports returns the import history of name, newest first.
	Imports(ctx context.Context, name string) ([]Import, error)

	// Names returns the names of all stored catalogs.
	Names(ctx context.Context) ([]string, error)
}
