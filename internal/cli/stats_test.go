package cli_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/tabview/internal/dataview"
	"github.com/rshade/tabview/internal/numeric"
)

func TestStatsCmd_NumericColumn(t *testing.T) {
	dataDir := isolateEnv(t)
	writeDataset(t, dataDir, "employees.json", employeesJSON)

	out, err := executeCommand(t, "stats", "employees.json", "--column", "salary")
	require.NoError(t, err)

	assert.Contains(t, out, "Column: salary")
	assert.Contains(t, out, "Count:  4")
	assert.Contains(t, out, "Sum:    360,000.00")
	assert.Contains(t, out, "Mean:   90,000.00")
	assert.Contains(t, out, "Min:    75,000.00")
	assert.Contains(t, out, "Max:    105,000.00")
}

func TestStatsCmd_CurrencyFlag(t *testing.T) {
	dataDir := isolateEnv(t)
	writeDataset(t, dataDir, "employees.json", employeesJSON)

	out, err := executeCommand(t, "stats", "employees.json", "--column", "salary", "--currency")
	require.NoError(t, err)

	assert.Contains(t, out, "Sum:    $360,000.00")
	assert.Contains(t, out, "Mean:   $90,000.00")
}

func TestStatsCmd_NumericJSON(t *testing.T) {
	dataDir := isolateEnv(t)
	writeDataset(t, dataDir, "employees.json", employeesJSON)

	out, err := executeCommand(t, "stats", "employees.json", "--column", "salary", "--output", "json")
	require.NoError(t, err)

	var doc struct {
		Column  string          `json:"column"`
		Summary numeric.Summary `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	assert.Equal(t, "salary", doc.Column)
	assert.Equal(t, 4, doc.Summary.Count)
	assert.InDelta(t, 360000, doc.Summary.Sum, 0.001)
	assert.InDelta(t, 90000, doc.Summary.Mean, 0.001)
	assert.InDelta(t, 75000, doc.Summary.Min, 0.001)
	assert.InDelta(t, 105000, doc.Summary.Max, 0.001)
}

func TestStatsCmd_TextColumn(t *testing.T) {
	dataDir := isolateEnv(t)
	writeDataset(t, dataDir, "employees.json", employeesJSON)

	out, err := executeCommand(t, "stats", "employees.json", "--column", "department")
	require.NoError(t, err)

	assert.Contains(t, out, "Column:        department")
	assert.Contains(t, out, "Count:         4")
	assert.Contains(t, out, "Distinct:      3")
	assert.Contains(t, out, "Most frequent: Engineering")
}

func TestStatsCmd_TextColumnYAML(t *testing.T) {
	dataDir := isolateEnv(t)
	writeDataset(t, dataDir, "employees.json", employeesJSON)

	out, err := executeCommand(t, "stats", "employees.json", "--column", "department", "--output", "yaml")
	require.NoError(t, err)

	assert.Contains(t, out, "column: department")
	assert.Contains(t, out, "count: 4")
	assert.Contains(t, out, "distinct: 3")
	assert.Contains(t, out, "most_frequent: Engineering")
}

func TestStatsCmd_UnknownColumn(t *testing.T) {
	dataDir := isolateEnv(t)
	writeDataset(t, dataDir, "employees.json", employeesJSON)

	_, err := executeCommand(t, "stats", "employees.json", "--column", "bonus")
	require.Error(t, err)
	assert.ErrorIs(t, err, dataview.ErrInvalidColumn)
	assert.Contains(t, err.Error(), "bonus")
	assert.Contains(t, err.Error(), "salary")
}

func TestStatsCmd_EmptyColumn(t *testing.T) {
	dataDir := isolateEnv(t)
	writeDataset(t, dataDir, "sparse.json", `[
		{"name": "Alice", "note": null},
		{"name": "Bob", "note": null}
	]`)

	_, err := executeCommand(t, "stats", "sparse.json", "--column", "note")
	require.Error(t, err)
	assert.ErrorIs(t, err, numeric.ErrNoValues)
}

func TestStatsCmd_RequiresColumnFlag(t *testing.T) {
	dataDir := isolateEnv(t)
	writeDataset(t, dataDir, "employees.json", employeesJSON)

	_, err := executeCommand(t, "stats", "employees.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "column")
}
