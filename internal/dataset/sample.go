package dataset

import (
	"fmt"

	"github.com/oklog/ulid/v2"

	"github.com/rshade/tabview/internal/dataview"
)

// sampleRoster is the demo employee table. Generation beyond ten rows
// cycles through it with numbered name suffixes so names stay unique.
var sampleRoster = []struct {
	name       string
	department string
	salary     int
	age        int
}{
	{"Alice Johnson", "Engineering", 95000, 32},
	{"Bob Smith", "Marketing", 75000, 28},
	{"Charlie Brown", "Engineering", 105000, 35},
	{"Diana Prince", "Sales", 85000, 30},
	{"Eve Davis", "Engineering", 98000, 29},
	{"Frank Miller", "Marketing", 72000, 26},
	{"Grace Lee", "Sales", 88000, 31},
	{"Henry Wilson", "Engineering", 110000, 38},
	{"Iris Chen", "Marketing", 79000, 27},
	{"Jack Turner", "Sales", 92000, 33},
}

// GenerateEmployees produces n sample employee rows with ULID ids,
// suitable for demos and for seeding test datasets.
func GenerateEmployees(n int) []dataview.MapRecord {
	if n < 0 {
		n = 0
	}

	records := make([]dataview.MapRecord, 0, n)
	for i := 0; i < n; i++ {
		base := sampleRoster[i%len(sampleRoster)]
		name := base.name
		if cycle := i / len(sampleRoster); cycle > 0 {
			name = fmt.Sprintf("%s %d", base.name, cycle+1)
		}
		records = append(records, dataview.MapRecord{
			"id":         ulid.Make().String(),
			"name":       name,
			"department": base.department,
			"salary":     base.salary,
			"age":        base.age,
		})
	}
	return records
}
