package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/abhisek/pathwise/internal/catalog"
)

// catalogRepo implements CatalogRepo with the ent SQL builder.
type catalogRepo struct {
	db *sql.DB
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (r *catalogRepo) Save(ctx context.Context, name string, c *catalog.Catalog) (Import, error) {
	imp := Import{
		ID:          uuid.NewString(),
		Catalog:     name,
		Fingerprint: c.Fingerprint(),
		Topics:      c.Len(),
		ImportedAt:  time.Now().UTC().Truncate(time.Second),
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return Import{}, fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	b := builder()
	for _, table := range []string{TopicsTable.Name, PrerequisitesTable.Name} {
		query, args := b.Delete(table).Where(entsql.EQ("catalog", name)).Query()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return Import{}, fmt.Errorf("clear %s: %w", table, err)
		}
	}

	if c.Len() > 0 {
		topics := b.Insert(TopicsTable.Name).
			Columns("catalog", "name", "position", "category", "description")
		prereqs := b.Insert(PrerequisitesTable.Name).
			Columns("catalog", "topic", "prerequisite", "position")
		n := 0
		for i, t := range c.Entries() {
			topics.Values(name, t.Name, i, t.Category, t.Description)
			for _, p := range t.Prerequisites {
				prereqs.Values(name, t.Name, p, n)
				n++
			}
		}

		query, args := topics.Query()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return Import{}, fmt.Errorf("insert topics: %w", err)
		}
		if n > 0 {
			query, args = prereqs.Query()
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return Import{}, fmt.Errorf("insert prerequisites: %w", err)
			}
		}
	}

	query, args := b.Insert(CatalogImportsTable.Name).
		Columns("import_id", "catalog", "fingerprint", "topic_count", "imported_at").
		Values(imp.ID, imp.Catalog, imp.Fingerprint, imp.Topics, imp.ImportedAt).
		Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return Import{}, fmt.Errorf("record import: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Import{}, fmt.Errorf("commit save: %w", err)
	}
	return imp, nil
}

func (r *catalogRepo) Load(ctx context.Context, name string) (*catalog.Catalog, error) {
	imports, err := r.Imports(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(imports) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrCatalogNotFound, name)
	}

	b := builder()
	query, args := b.Select("name", "category", "description").
		From(entsql.Table(TopicsTable.Name)).
		Where(entsql.EQ("catalog", name)).
		OrderBy("position").
		Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query topics: %w", err)
	}
	defer rows.Close()

	var topics []catalog.Topic
	byName := make(map[string]int)
	for rows.Next() {
		var t catalog.Topic
		if err := rows.Scan(&t.Name, &t.Category, &t.Description); err != nil {
			return nil, fmt.Errorf("scan topic: %w", err)
		}
		byName[t.Name] = len(topics)
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query topics: %w", err)
	}

	query, args = b.Select("topic", "prerequisite").
		From(entsql.Table(PrerequisitesTable.Name)).
		Where(entsql.EQ("catalog", name)).
		OrderBy("position").
		Query()
	prows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query prerequisites: %w", err)
	}
	defer prows.Close()

	for prows.Next() {
		var topic, prereq string
		if err := prows.Scan(&topic, &prereq); err != nil {
			return nil, fmt.Errorf("scan prerequisite: %w", err)
		}
		i, ok := byName[topic]
		if !ok {
			return nil, fmt.Errorf("prerequisite %q of missing topic %q", prereq, topic)
		}
		topics[i].Prerequisites = append(topics[i].Prerequisites, prereq)
	}
	if err := prows.Err(); err != nil {
		return nil, fmt.Errorf("query prerequisites: %w", err)
	}

	return catalog.New(topics)
}

func (r *catalogRepo) Imports(ctx context.Context, name string) ([]Import, error) {
	query, args := builder().
		Select("import_id", "catalog", "fingerprint", "topic_count", "imported_at").
		From(entsql.Table(CatalogImportsTable.Name)).
		Where(entsql.EQ("catalog", name)).
		OrderBy(entsql.Desc("id")).
		Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query imports: %w", err)
	}
	defer rows.Close()

	var out []Import
	for rows.Next() {
		var imp Import
		if err := rows.Scan(&imp.ID, &imp.Catalog, &imp.Fingerprint, &imp.Topics, &imp.ImportedAt); err != nil {
			return nil, fmt.Errorf("scan import: %w", err)
		}
		out = append(out, imp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query imports: %w", err)
	}
	return out, nil
}

func (r *catalogRepo) Names(ctx context.Context) ([]string, error) {
	query, args := builder().
		Select("catalog").
		Distinct().
		From(entsql.Table(CatalogImportsTable.Name)).
		OrderBy("catalog").
		Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query catalog names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scan catalog name: %w", err)
		}
		names = append(names, n)
	}
	return names, rows.Err()
}
