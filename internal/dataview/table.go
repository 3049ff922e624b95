package dataview

import "fmt"

// Table is a stateful view over a fixed source collection. It tracks the
// filtered projection, the current page, and the last search and sort
// applied, and always resolves to a valid page. The source slice is held
// by reference and never mutated; callers must not modify it after
// construction. A Table is single-owner and not safe for concurrent use.
type Table struct {
	source   []Record
	filtered []Record
	columns  []Column
	pageSize int
	page     int
	sortKey  string
	sortAsc  bool
	query    string
}

// Option configures a Table at construction.
type Option func(*Table)

// WithPageSize sets the rows-per-page count. The default is
// DefaultPageSize; values below 1 make New fail with ErrInvalidArgument.
func WithPageSize(n int) Option {
	return func(t *Table) {
		t.pageSize = n
	}
}

// New creates a view over records described by columns. The page size is
// fixed for the lifetime of the table. Column keys must be non-empty and
// unique.
func New(records []Record, columns []Column, opts ...Option) (*Table, error) {
	t := &Table{
		source:   records,
		filtered: records,
		columns:  columns,
		pageSize: DefaultPageSize,
		page:     1,
		sortAsc:  true,
	}
	for _, opt := range opts {
		opt(t)
	}

	if t.pageSize < 1 {
		return nil, fmt.Errorf("%w: page size must be >= 1, got %d", ErrInvalidArgument, t.pageSize)
	}
	if err := validateColumns(columns); err != nil {
		return nil, err
	}
	return t, nil
}

// Search filters the view to records matching query per ApplySearch and
// resets to page 1. Filtering always rebases on the source collection: a
// sort applied before a search is discarded by the search, while the
// recorded sort state stays untouched. Reapply Sort after Search when both
// are wanted.
func (t *Table) Search(query string) {
	t.query = normalizeQuery(query)
	t.filtered = ApplySearch(t.source, t.columns, t.query)
	t.page = 1
}

// Sort orders the current filtered view by the named column and resets to
// page 1. Unknown keys fail with ErrInvalidColumn; columns constructed
// with Sortable false fail with ErrNotSortable.
func (t *Table) Sort(key string, ascending bool) error {
	col, ok := columnByKey(t.columns, key)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidColumn, key)
	}
	if !col.Sortable {
		return fmt.Errorf("%w: %q", ErrNotSortable, key)
	}

	t.filtered = SortRecords(t.filtered, key, ascending)
	t.sortKey = key
	t.sortAsc = ascending
	t.page = 1
	return nil
}

// SetPage moves to a specific 1-based page. It fails with
// ErrPageOutOfRange when page lies outside [1, TotalPages()].
func (t *Table) SetPage(page int) error {
	total := t.TotalPages()
	if page < 1 || page > total {
		return fmt.Errorf("%w: page %d outside [1, %d]", ErrPageOutOfRange, page, total)
	}
	t.page = page
	return nil
}

// Reset restores the unfiltered, unsorted view: the filtered projection
// becomes the source again, search and sort state clear, and the view
// returns to page 1.
func (t *Table) Reset() {
	t.filtered = t.source
	t.sortKey = ""
	t.sortAsc = true
	t.query = ""
	t.page = 1
}

// CurrentPage returns the records on the current page. The slice shares
// record references with the source but is safe to range over while
// mutating the view.
func (t *Table) CurrentPage() []Record {
	start := (t.page - 1) * t.pageSize
	if start >= len(t.filtered) {
		return []Record{}
	}
	end := start + t.pageSize
	if end > len(t.filtered) {
		end = len(t.filtered)
	}
	return t.filtered[start:end]
}

// Page returns the current 1-based page number.
func (t *Table) Page() int {
	return t.page
}

// PageSize returns the fixed rows-per-page count.
func (t *Table) PageSize() int {
	return t.pageSize
}

// TotalPages returns the page count of the filtered view, at least 1.
func (t *Table) TotalPages() int {
	return CalculateTotalPages(len(t.filtered), t.pageSize)
}

// TotalRows returns the filtered row count.
func (t *Table) TotalRows() int {
	return len(t.filtered)
}

// IsEmpty reports whether the filtered view has no rows.
func (t *Table) IsEmpty() bool {
	return len(t.filtered) == 0
}

// PageInfo derives the pagination snapshot for the current position.
func (t *Table) PageInfo() PageInfo {
	return NewPageInfo(t.page, t.pageSize, len(t.filtered))
}

// FormatCell renders one field of one record. The column formatter is
// applied when set and receives the raw value, nil included; otherwise the
// value is stringified, with absent fields rendering as the empty string.
func (t *Table) FormatCell(rec Record, col Column) string {
	v, _ := fieldValue(rec, col.Key)
	if col.Formatter != nil {
		return col.Formatter(v)
	}
	return displayString(v)
}

// SortState returns the last applied sort key and direction. The key is
// empty when no sort has been applied since construction or Reset. After a
// Search the reported key may describe an ordering the search has since
// discarded.
func (t *Table) SortState() (string, bool) {
	return t.sortKey, t.sortAsc
}

// SearchQuery returns the normalized query from the last Search, or the
// empty string.
func (t *Table) SearchQuery() string {
	return t.query
}

// Columns returns a copy of the column specs.
func (t *Table) Columns() []Column {
	cols := make([]Column, len(t.columns))
	copy(cols, t.columns)
	return cols
}

// Source returns the backing source collection. Callers must treat it as
// read-only.
func (t *Table) Source() []Record {
	return t.source
}
