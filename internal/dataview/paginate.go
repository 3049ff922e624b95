package dataview

import "fmt"

// DefaultPageSize is the page size used when construction or pipeline
// queries do not set one.
const DefaultPageSize = 10

// Paginate returns the 1-indexed page slice of records. It fails with
// ErrInvalidArgument when page or pageSize is below 1. A start beyond the
// end of the collection yields an empty slice, not an error, so callers
// can render "no rows" pages without special-casing.
func Paginate(records []Record, page, pageSize int) ([]Record, error) {
	if page < 1 {
		return nil, fmt.Errorf("%w: page must be >= 1, got %d", ErrInvalidArgument, page)
	}
	if pageSize < 1 {
		return nil, fmt.Errorf("%w: page size must be >= 1, got %d", ErrInvalidArgument, pageSize)
	}

	start := (page - 1) * pageSize
	if start >= len(records) {
		return []Record{}, nil
	}
	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}
	return records[start:end], nil
}

// PageInfo is a derived snapshot of pagination state, computed on demand
// and never stored.
type PageInfo struct {
	// CurrentPage is the 1-based page this snapshot describes.
	CurrentPage int `json:"current_page" yaml:"current_page"`

	// TotalPages is at least 1, even for empty data.
	TotalPages int `json:"total_pages" yaml:"total_pages"`

	// TotalRows counts all rows after filtering, across every page.
	TotalRows int `json:"total_rows" yaml:"total_rows"`

	// StartRow is the 1-based ordinal of the first row on the page, or 0
	// when there are no rows.
	StartRow int `json:"start_row" yaml:"start_row"`

	// EndRow is the 1-based ordinal of the last row on the page, or 0 when
	// there are no rows.
	EndRow int `json:"end_row" yaml:"end_row"`

	// HasPrev reports whether a previous page exists.
	HasPrev bool `json:"has_prev" yaml:"has_prev"`

	// HasNext reports whether a further page exists.
	HasNext bool `json:"has_next" yaml:"has_next"`
}

// NewPageInfo derives pagination metadata for a page position. pageSize
// must be >= 1; page is taken as already clamped into range.
func NewPageInfo(page, pageSize, totalRows int) PageInfo {
	totalPages := CalculateTotalPages(totalRows, pageSize)

	startRow := 0
	endRow := 0
	if totalRows > 0 {
		startRow = (page-1)*pageSize + 1
		endRow = page * pageSize
		if endRow > totalRows {
			endRow = totalRows
		}
	}

	return PageInfo{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalRows:   totalRows,
		StartRow:    startRow,
		EndRow:      endRow,
		HasPrev:     page > 1,
		HasNext:     page < totalPages,
	}
}

// CalculateTotalPages returns the page count for a row count, never less
// than 1: an empty collection still presents one (empty) page.
func CalculateTotalPages(totalRows, pageSize int) int {
	if totalRows <= 0 || pageSize < 1 {
		return 1
	}
	return (totalRows + pageSize - 1) / pageSize
}

// clampPage forces a requested page into [1, totalPages].
func clampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
