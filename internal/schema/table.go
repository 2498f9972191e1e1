package schema

import (
	"strings"
	"sync"

	GORMSchema "gorm.io/gorm/schema"
)

var cache = &sync.Map{}

// Table is the parsed gorm schema of one model.
type Table struct {
	*GORMSchema.Schema
	Columns []*Column
}

func (t *Table) TableName() string {
	return t.Table
}

// ColumnNames lists the database columns in declaration order.
func (t *Table) ColumnNames() []string {
	names := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		names = append(names, c.ColumnName())
	}
	return names
}

// PrimaryKey lists the primary key columns, if any.
func (t *Table) PrimaryKey() []string {
	keys := make([]string, 0, len(t.PrimaryFields))
	for _, f := range t.PrimaryFields {
		keys = append(keys, f.DBName)
	}
	return keys
}

// String renders "name(col, col, ...)".
func (t *Table) String() string {
	return t.Table + "(" + strings.Join(t.ColumnNames(), ", ") + ")"
}

// CreateTableFromModel parses model with gorm's default naming strategy. Association
// fields are skipped since they have no column of their own.
func CreateTableFromModel(model any) (*Table, error) {
	modelSchema, err := GORMSchema.Parse(model, cache, GORMSchema.NamingStrategy{})
	if err != nil {
		return nil, err
	}

	columns := make([]*Column, 0, len(modelSchema.Fields))
	for _, field := range modelSchema.Fields {
		if field.DBName == "" {
			continue
		}
		columns = append(columns, &Column{Field: field})
	}

	return &Table{Schema: modelSchema, Columns: columns}, nil
}

// Describe parses every model in order.
func Describe(models []any) ([]*Table, error) {
	tables := make([]*Table, 0, len(models))
	for _, m := range models {
		t, err := CreateTableFromModel(m)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}
