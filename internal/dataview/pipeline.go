package dataview

// Query describes a single stateless view request: optional search and
// sort, plus the page window. The zero value asks for page 1 of the
// unfiltered, unsorted collection at DefaultPageSize, sorted ascending if
// a sort key is set.
type Query struct {
	// Search is the raw query; it is normalized per ApplySearch. Empty
	// means no filtering.
	Search string `json:"search,omitempty" yaml:"search,omitempty"`

	// SortKey names the field to sort by. Empty means input order. The
	// pipeline does not validate it against columns.
	SortKey string `json:"sort_key,omitempty" yaml:"sort_key,omitempty"`

	// Descending flips the sort direction; the default is ascending.
	Descending bool `json:"descending,omitempty" yaml:"descending,omitempty"`

	// Page is the requested 1-based page. Out-of-range values, zero
	// included, are clamped into range rather than rejected.
	Page int `json:"page,omitempty" yaml:"page,omitempty"`

	// PageSize is the rows-per-page count; values below 1 fall back to
	// DefaultPageSize.
	PageSize int `json:"page_size,omitempty" yaml:"page_size,omitempty"`
}

// Result is one computed page plus its pagination snapshot.
type Result struct {
	Rows     []Record `json:"rows" yaml:"rows"`
	PageInfo PageInfo `json:"page_info" yaml:"page_info"`
}

// Process runs the full pipeline in one stateless call: filter when a
// search is set, sort when a key is set, clamp the requested page into
// range, and slice. Unlike Table, every call starts fresh from records,
// so filter and sort compose within the call, and an out-of-range page is
// clamped rather than rejected.
func Process(records []Record, columns []Column, q Query) Result {
	pageSize := q.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	rows := ApplySearch(records, columns, q.Search)
	if q.SortKey != "" {
		rows = SortRecords(rows, q.SortKey, !q.Descending)
	}

	totalRows := len(rows)
	page := clampPage(q.Page, CalculateTotalPages(totalRows, pageSize))

	start := (page - 1) * pageSize
	if start >= totalRows {
		rows = []Record{}
	} else {
		end := start + pageSize
		if end > totalRows {
			end = totalRows
		}
		rows = rows[start:end]
	}

	return Result{
		Rows:     rows,
		PageInfo: NewPageInfo(page, pageSize, totalRows),
	}
}
