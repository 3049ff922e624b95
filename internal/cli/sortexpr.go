package cli

import (
	"errors"
	"fmt"
	"strings"
)

// Sort directions accepted by --sort.
const (
	sortOrderAsc  = "asc"
	sortOrderDesc = "desc"
)

// sortPartsMax is the maximum number of parts in a sort expression (field:order).
const sortPartsMax = 2

// Sort expression errors.
var (
	ErrInvalidSortFormat = errors.New("invalid sort format: use 'field' or 'field:order' (e.g. 'salary:desc')")
	ErrEmptySortField    = errors.New("sort field cannot be empty")
	ErrInvalidSortOrder  = errors.New("sort order must be 'asc' or 'desc'")
)

// ParseSort parses a sort expression in the format "field" or "field:order".
// Examples: "salary", "salary:desc", "name:asc". An empty expression means
// no sort. The returned bool reports whether the order is descending.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseSort(expr string) (field string, descending bool, err error) {
	if expr == "" {
		return "", false, nil
	}

	parts := strings.Split(expr, ":")
	var order string
	switch len(parts) {
	case 1:
		field = strings.TrimSpace(parts[0])
		order = sortOrderAsc
	case sortPartsMax:
		field = strings.TrimSpace(parts[0])
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	default:
		return "", false, fmt.Errorf("%w: %q", ErrInvalidSortFormat, expr)
	}

	if field == "" {
		return "", false, ErrEmptySortField
	}
	if order != sortOrderAsc && order != sortOrderDesc {
		return "", false, fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}

	return field, order == sortOrderDesc, nil
}
