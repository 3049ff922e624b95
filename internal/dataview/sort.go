package dataview

import (
	"sort"
	"strings"
	"time"
)

// SortRecords returns a new slice sorted by the given field key. Records
// missing the key sort with an empty string key, which places them first
// under ascending order. The sort is stable in both directions: descending
// flips only the primary comparison, so records with equal keys keep their
// input order either way.
//
// This variant does not validate key against a column list; Table.Sort
// does. Columns should be type-homogeneous: mixed value kinds under one
// key fall back to comparing display strings.
func SortRecords(records []Record, key string, ascending bool) []Record {
	entries := make([]sortEntry, len(records))
	for i, rec := range records {
		entries[i] = sortEntry{record: rec, key: sortKey(rec, key)}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].key, entries[j].key
		if !ascending {
			a, b = b, a
		}
		return compareValues(a, b) < 0
	})

	sorted := make([]Record, len(entries))
	for i, e := range entries {
		sorted[i] = e.record
	}
	return sorted
}

type sortEntry struct {
	record Record
	key    any
}

// sortKey extracts the sort key for a record, substituting the empty
// string when the field is absent.
func sortKey(rec Record, key string) any {
	v, ok := fieldValue(rec, key)
	if !ok {
		return ""
	}
	return v
}

// compareValues orders two field values by the natural ordering of their
// kind: numbers numerically, strings lexically, times chronologically,
// bools false before true. Values of differing kinds compare by display
// string, which keeps the ordering deterministic without promising
// anything useful for heterogeneous columns.
func compareValues(a, b any) int {
	if af, aok := toFloat(a); aok {
		if bf, bok := toFloat(b); bok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}

	if as, aok := a.(string); aok {
		if bs, bok := b.(string); bok {
			return strings.Compare(as, bs)
		}
	}

	if at, aok := a.(time.Time); aok {
		if bt, bok := b.(time.Time); bok {
			return at.Compare(bt)
		}
	}

	if ab, aok := a.(bool); aok {
		if bb, bok := b.(bool); bok {
			switch {
			case ab == bb:
				return 0
			case !ab:
				return -1
			default:
				return 1
			}
		}
	}

	return strings.Compare(displayString(a), displayString(b))
}

// toFloat widens any numeric kind to float64 for comparison. JSON decoding
// produces float64, YAML produces int or float64, and callers may hand us
// any Go numeric type.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
