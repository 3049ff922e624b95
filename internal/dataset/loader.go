package dataset

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/rshade/tabview/internal/dataview"
)

// Dataset is one decoded file: its records plus the inferred columns.
type Dataset struct {
	Name    string
	Records []dataview.Record
	Columns []dataview.Column
}

// Load reads and decodes a single dataset file.
func (s *Store) Load(name string) (Dataset, error) {
	data, err := s.ReadFile(name)
	if err != nil {
		return Dataset{}, err
	}
	records, columns, err := DecodeRecords(name, data)
	if err != nil {
		return Dataset{}, fmt.Errorf("loading %s: %w", name, err)
	}
	return Dataset{Name: name, Records: records, Columns: columns}, nil
}

// LoadAll decodes several dataset files concurrently and merges them:
// records concatenate in the order names were given, columns are the union
// in first-seen order. The first failure aborts the load.
func (s *Store) LoadAll(ctx context.Context, names []string) (Dataset, error) {
	if len(names) == 1 {
		return s.Load(names[0])
	}

	results := make([]Dataset, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ds, err := s.Load(name)
			if err != nil {
				return err
			}
			results[i] = ds
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Dataset{}, err
	}

	return mergeDatasets(results), nil
}

// mergeDatasets concatenates records and unions columns by key, keeping
// the order in which keys first appeared.
func mergeDatasets(datasets []Dataset) Dataset {
	var merged Dataset
	seen := make(map[string]struct{})

	for _, ds := range datasets {
		if merged.Name == "" {
			merged.Name = ds.Name
		}
		merged.Records = append(merged.Records, ds.Records...)
		for _, col := range ds.Columns {
			if _, dup := seen[col.Key]; dup {
				continue
			}
			seen[col.Key] = struct{}{}
			merged.Columns = append(merged.Columns, col)
		}
	}
	return merged
}
