package dataset

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rshade/tabview/internal/dataview"
	"github.com/rshade/tabview/internal/textutil"
)

// marshalJSON is the single place dataset JSON encoding is configured.
func marshalJSON(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// DecodeRecords parses a dataset file's contents by extension. JSON and
// YAML expect a top-level array of objects; CSV expects a header row.
// Columns are inferred: CSV keeps header order, JSON and YAML use the
// sorted union of keys. Labels derive from keys via title casing.
func DecodeRecords(name string, data []byte) ([]dataview.Record, []dataview.Column, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return decodeJSON(data)
	case ".yaml", ".yml":
		return decodeYAML(data)
	case ".csv":
		return decodeCSV(data)
	default:
		return nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
}

func decodeJSON(data []byte) ([]dataview.Record, []dataview.Column, error) {
	var rows []map[string]any
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, nil, fmt.Errorf("decoding JSON rows: %w", err)
	}
	return toRecords(rows), inferColumns(rows), nil
}

func decodeYAML(data []byte) ([]dataview.Record, []dataview.Column, error) {
	var rows []map[string]any
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, nil, fmt.Errorf("decoding YAML rows: %w", err)
	}
	return toRecords(rows), inferColumns(rows), nil
}

func decodeCSV(data []byte) ([]dataview.Record, []dataview.Column, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("decoding CSV rows: %w", err)
	}
	if len(rows) == 0 {
		return []dataview.Record{}, nil, nil
	}

	header := rows[0]
	columns := make([]dataview.Column, 0, len(header))
	for _, key := range textutil.Dedupe(header) {
		columns = append(columns, dataview.NewColumn(key, textutil.TitleCase(key)))
	}

	records := make([]dataview.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(dataview.MapRecord, len(header))
		for i, key := range header {
			if i >= len(row) {
				break
			}
			rec[key] = parseCSVValue(row[i])
		}
		records = append(records, rec)
	}
	return records, columns, nil
}

// parseCSVValue decodes numeric-looking cells as float64 so sorting and
// statistics treat them numerically; everything else stays a string.
func parseCSVValue(cell string) any {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return ""
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return f
	}
	return trimmed
}

func toRecords(rows []map[string]any) []dataview.Record {
	records := make([]dataview.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, dataview.MapRecord(row))
	}
	return records
}

// inferColumns builds columns from the sorted union of keys across rows.
func inferColumns(rows []map[string]any) []dataview.Column {
	keys := make([]string, 0)
	seen := make(map[string]struct{})
	for _, row := range rows {
		for key := range row {
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	columns := make([]dataview.Column, 0, len(keys))
	for _, key := range keys {
		columns = append(columns, dataview.NewColumn(key, textutil.TitleCase(key)))
	}
	return columns
}
