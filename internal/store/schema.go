package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// TopicsColumns holds the columns for the "topics" table.
	TopicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "catalog", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "position", Type: field.TypeInt},
		{Name: "category", Type: field.TypeString, Default: ""},
		{Name: "description", Type: field.TypeString, Default: ""},
	}
	// TopicsTable holds the schema information for the "topics" table.
	TopicsTable = &schema.Table{
		Name:       "topics",
		Columns:    TopicsColumns,
		PrimaryKey: []*schema.Column{TopicsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "topic_catalog_name",
				Unique:  true,
				Columns: []*schema.Column{TopicsColumns[1], TopicsColumns[2]},
			},
		},
	}

	// PrerequisitesColumns holds the columns for the "prerequisites" table.
	// Prerequisite names are stored verbatim; they need not be topics.
	PrerequisitesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "catalog", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "prerequisite", Type: field.TypeString},
		{Name: "position", Type: field.TypeInt},
	}
	// PrerequisitesTable holds the schema information for the "prerequisites" table.
	PrerequisitesTable = &schema.Table{
		Name:       "prerequisites",
		Columns:    PrerequisitesColumns,
		PrimaryKey: []*schema.Column{PrerequisitesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "prerequisite_catalog_position",
				Columns: []*schema.Column{PrerequisitesColumns[1], PrerequisitesColumns[4]},
			},
		},
	}

	// CatalogImportsColumns holds the columns for the "catalog_imports" table.
	CatalogImportsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "import_id", Type: field.TypeString, Unique: true},
		{Name: "catalog", Type: field.TypeString},
		{Name: "fingerprint", Type: field.TypeString},
		{Name: "topic_count", Type: field.TypeInt},
		{Name: "imported_at", Type: field.TypeTime},
	}
	// CatalogImportsTable holds the schema information for the "catalog_imports" table.
	CatalogImportsTable = &schema.Table{
		Name:       "catalog_imports",
		Columns:    CatalogImportsColumns,
		PrimaryKey: []*schema.Column{CatalogImportsColumns[0]},
	}

	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		TopicsTable,
		PrerequisitesTable,
		CatalogImportsTable,
	}
)
