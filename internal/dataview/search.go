package dataview

import "strings"

// normalizeQuery trims surrounding whitespace and lowercases the query.
func normalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// ApplySearch filters records to those where any column's field value
// contains the query as a case-insensitive substring. The query is trimmed
// and lowercased first; an empty normalized query returns the input slice
// unchanged. Absent fields never match a non-empty query.
//
// The input is never mutated; the result may share record references with
// it.
func ApplySearch(records []Record, columns []Column, query string) []Record {
	q := normalizeQuery(query)
	if q == "" {
		return records
	}

	filtered := make([]Record, 0, len(records))
	for _, rec := range records {
		for _, col := range columns {
			v, ok := fieldValue(rec, col.Key)
			if !ok {
				continue
			}
			if strings.Contains(strings.ToLower(displayString(v)), q) {
				filtered = append(filtered, rec)
				break
			}
		}
	}
	return filtered
}
