package flatten

import (
	"github.com/kobotools/kobotab/internal/pkg/model"
)

// Result is the outcome of one assembly run.
// Order lists table names as they were discovered, root table first.
type Result struct {
	Order  []string
	Tables map[string]*model.Table
}

// Table returns the named table, nil if not present.
func (r *Result) Table(name string) *model.Table {
	if r == nil {
		return nil
	}
	return r.Tables[name]
}

// Root returns the root table.
func (r *Result) Root() *model.Table {
	if r == nil || len(r.Order) == 0 {
		return nil
	}
	return r.Tables[r.Order[0]]
}

// Assemble flattens the submissions in order and converts the row lists
// into tabular containers.
//
// The _index counters are shared across the whole batch, so row indexes are
// unique per table. Empty input is signaled by a nil result, not by an empty
// table set: callers must distinguish "no data" from "empty table".
func Assemble(submissions []model.Submission, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(submissions) == 0 {
		return nil, nil
	}

	f := NewFlattener(cfg)
	for _, submission := range submissions {
		if err := f.Flatten(submission); err != nil {
			return nil, err
		}
	}
	return f.Result(), nil
}

// Result converts the collected row lists into tables.
// The column set of each table is the union of its row keys in first-seen
// order, cells of missing keys are filled with the null marker.
func (f *Flattener) Result() *Result {
	result := &Result{
		Order:  f.TableOrder(),
		Tables: make(map[string]*model.Table, len(f.order)),
	}

	for _, name := range f.order {
		table := model.NewTable(name)
		rows := f.rows[name]

		seen := map[string]bool{}
		for _, row := range rows {
			for _, column := range row.Keys() {
				if !seen[column] {
					seen[column] = true
					table.Columns = append(table.Columns, column)
				}
			}
		}

		table.Rows = make([][]any, 0, len(rows))
		for _, row := range rows {
			cells := make([]any, len(table.Columns))
			for i, column := range table.Columns {
				if value, found := row.Get(column); found {
					cells[i] = value
				} else {
					cells[i] = f.cfg.NullValue
				}
			}
			table.Rows = append(table.Rows, cells)
		}

		result.Tables[name] = table
	}
	return result
}
