package dataview

import (
	"fmt"
	"strings"
)

// Formatter renders one field value for display. It receives the raw
// extracted value, which is nil when the field is absent.
type Formatter func(value any) string

// Column describes how to extract, label, and optionally format one field
// across all records. It does not own data.
type Column struct {
	// Key is the field key passed to Record.Field.
	Key string

	// Label is the human-readable column header.
	Label string

	// Sortable marks whether Table.Sort accepts this column.
	Sortable bool

	// Formatter overrides the default stringification when set.
	Formatter Formatter
}

// NewColumn returns a sortable column with no formatter. Zero-value Column
// literals are not sortable; use the constructor for the common case.
func NewColumn(key, label string) Column {
	return Column{Key: key, Label: label, Sortable: true}
}

// WithFormatter returns a copy of the column with the formatter set.
func (c Column) WithFormatter(f Formatter) Column {
	c.Formatter = f
	return c
}

// WithSortable returns a copy of the column with sortability toggled.
func (c Column) WithSortable(sortable bool) Column {
	c.Sortable = sortable
	return c
}

// validateColumns rejects column sets that would make sort keys ambiguous:
// empty keys and duplicate keys.
func validateColumns(columns []Column) error {
	seen := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		key := strings.TrimSpace(col.Key)
		if key == "" {
			return fmt.Errorf("%w: column key cannot be empty", ErrInvalidArgument)
		}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: duplicate column key %q", ErrInvalidArgument, key)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// columnByKey finds a column by key. The bool reports whether it exists.
func columnByKey(columns []Column, key string) (Column, bool) {
	for _, col := range columns {
		if col.Key == key {
			return col, true
		}
	}
	return Column{}, false
}
