package dataview

import "errors"

// Validation and paging errors. Call sites wrap these with %w and the
// offending value; match with errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidColumn   = errors.New("unknown column")
	ErrNotSortable     = errors.New("column is not sortable")
	ErrPageOutOfRange  = errors.New("page out of range")
)
