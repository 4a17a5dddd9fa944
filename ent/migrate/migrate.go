// Package migrate builds the SQL tables declared in ent/schema and applies
// them with ent's migration engine.
package migrate

import (
	"context"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"

	defs "github.com/abhisek/mathquest/ent/schema"
)

var (
	// SnapshotsTable holds the serialized player stats.
	SnapshotsTable = mustTable(defs.Snapshot{})
	// SessionEventsTable holds level start, finish and abort events.
	SessionEventsTable = mustTable(defs.SessionEvent{})
	// AnswerEventsTable holds one row per resolved question.
	AnswerEventsTable = mustTable(defs.AnswerEvent{})
	// LLMRequestEventsTable holds coach LLM calls.
	LLMRequestEventsTable = mustTable(defs.LLMRequestEvent{})

	// Tables lists every table in creation order.
	Tables = []*schema.Table{
		SnapshotsTable,
		SessionEventsTable,
		AnswerEventsTable,
		LLMRequestEventsTable,
	}
)

// Create creates or updates all tables on drv.
func Create(ctx context.Context, drv dialect.Driver, opts ...schema.MigrateOption) error {
	m, err := schema.NewMigrate(drv, opts...)
	if err != nil {
		return fmt.Errorf("ent/migrate: %w", err)
	}
	return m.Create(ctx, Tables...)
}

func mustTable(def ent.Interface) *schema.Table {
	t, err := NewTable(def)
	if err != nil {
		panic(err)
	}
	return t
}

// NewTable converts an ent schema definition into a migration table. The
// table name comes from its entsql.Annotation; mixin fields come before the
// schema's own fields, after the auto-increment id.
func NewTable(def ent.Interface) (*schema.Table, error) {
	name := tableName(def)
	if name == "" {
		return nil, fmt.Errorf("ent/migrate: %T has no entsql table annotation", def)
	}

	id := &schema.Column{Name: "id", Type: field.TypeInt, Increment: true}
	t := &schema.Table{
		Name:       name,
		Columns:    []*schema.Column{id},
		PrimaryKey: []*schema.Column{id},
	}
	byName := map[string]*schema.Column{"id": id}

	var fields []ent.Field
	var indexes []ent.Index
	for _, mx := range def.Mixin() {
		fields = append(fields, mx.Fields()...)
		indexes = append(indexes, mx.Indexes()...)
	}
	fields = append(fields, def.Fields()...)
	indexes = append(indexes, def.Indexes()...)

	for _, f := range fields {
		d := f.Descriptor()
		if d.Err != nil {
			return nil, fmt.Errorf("ent/migrate: %s.%s: %w", name, d.Name, d.Err)
		}
		c := &schema.Column{
			Name:     d.Name,
			Type:     d.Info.Type,
			Unique:   d.Unique,
			Nullable: d.Optional,
			Size:     int64(d.Size),
			Comment:  d.Comment,
		}
		if d.Default != nil {
			c.Default = d.Default
		}
		t.Columns = append(t.Columns, c)
		byName[c.Name] = c
	}

	for _, ix := range indexes {
		d := ix.Descriptor()
		cols := make([]*schema.Column, 0, len(d.Fields))
		for _, fname := range d.Fields {
			c, ok := byName[fname]
			if !ok {
				return nil, fmt.Errorf("ent/migrate: %s: index on unknown field %q", name, fname)
			}
			cols = append(cols, c)
		}
		t.Indexes = append(t.Indexes, &schema.Index{
			Name:    name + "_" + strings.Join(d.Fields, "_"),
			Unique:  d.Unique,
			Columns: cols,
		})
	}
	return t, nil
}

func tableName(def ent.Interface) string {
	for _, a := range def.Annotations() {
		switch a := a.(type) {
		case entsql.Annotation:
			return a.Table
		case *entsql.Annotation:
			return a.Table
		}
	}
	return ""
}

// ColumnNames returns the column names of t in declaration order.
func ColumnNames(t *schema.Table) []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}
