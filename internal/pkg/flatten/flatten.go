// Package flatten converts nested survey submissions into flat related tables.
//
// Each submission becomes one row of the root table. Every repeating group
// becomes a child table named after the path of nested field names, and its
// rows point back to the parent row through the _parent_table/_parent_index
// columns. The _index counters are shared across the whole batch, so they
// are unique per table, not per submission.
package flatten

import (
	"github.com/keboola/go-utils/pkg/orderedmap"

	"github.com/kobotools/kobotab/internal/pkg/model"
)

type fieldKind int

const (
	fieldScalar fieldKind = iota
	fieldGroup
)

// Flattener holds the per-batch state: row lists, table discovery order,
// _index counters and the scalar/group classification of every seen field.
// One Flattener serves one extraction run and must not be reused.
type Flattener struct {
	cfg     Config
	rows    map[string][]model.Row
	order   []string
	counter map[string]int
	kinds   map[string]map[string]fieldKind
}

func NewFlattener(cfg Config) *Flattener {
	return &Flattener{
		cfg:     cfg,
		rows:    map[string][]model.Row{},
		order:   []string{},
		counter: map[string]int{},
		kinds:   map[string]map[string]fieldKind{},
	}
}

// Flatten processes one submission into the shared state.
// Data quality problems degrade to string columns, the only fatal error
// is a scalar/group name collision.
func (f *Flattener) Flatten(submission model.Submission) error {
	return f.flattenInto(submission, f.cfg.RootTable, "", 0, false)
}

// TableOrder returns table names in discovery order, root table first.
func (f *Flattener) TableOrder() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// Rows returns the row list of one table.
func (f *Flattener) Rows(table string) []model.Row {
	return f.rows[table]
}

type group struct {
	field string
	items []*orderedmap.OrderedMap
}

func (f *Flattener) flattenInto(item *orderedmap.OrderedMap, table string, parentTable string, parentIndex int, hasParent bool) error {
	index := f.nextIndex(table)

	row := model.NewRow()
	row.Set(model.IndexColumn, index)
	if hasParent {
		row.Set(model.ParentIndexColumn, parentIndex)
		row.Set(model.ParentTableColumn, parentTable)
	}

	// Partition fields into scalar columns and repeating groups.
	var groups []group
	if item != nil {
		for _, field := range item.Keys() {
			if f.cfg.isExcluded(field) {
				continue
			}

			value := item.GetOrNil(field)
			switch classify(value) {
			case KindList:
				list := value.([]any)
				if items, ok := objectList(list); ok {
					if err := f.markField(table, field, fieldGroup); err != nil {
						return err
					}
					groups = append(groups, group{field: field, items: items})
					continue
				}
				if len(list) == 0 {
					// An empty list may be an empty repeating group,
					// it is not classified either way.
					row.Set(f.cfg.columnName(field), f.cfg.NullValue)
					continue
				}
				if err := f.markField(table, field, fieldScalar); err != nil {
					return err
				}
				row.Set(f.cfg.columnName(field), f.cfg.joinList(list))

			case KindObject:
				obj := asObject(value)
				if obj.Len() == 0 {
					// Same as an empty list, not classified either way.
					row.Set(f.cfg.columnName(field), f.cfg.NullValue)
					continue
				}
				// A single nested record is a one-element repeating group.
				if err := f.markField(table, field, fieldGroup); err != nil {
					return err
				}
				groups = append(groups, group{field: field, items: []*orderedmap.OrderedMap{obj}})

			default:
				if err := f.markField(table, field, fieldScalar); err != nil {
					return err
				}
				row.Set(f.cfg.columnName(field), f.cfg.scalarValue(value))
			}
		}
	}

	// The parent row must be emitted before its children,
	// so child linkage always points to an existing row.
	f.appendRow(table, row)

	for _, g := range groups {
		childTable := table + f.cfg.Separator + g.field
		for _, child := range g.items {
			if err := f.flattenInto(child, childTable, table, index, true); err != nil {
				return err
			}
		}
	}
	return nil
}

// nextIndex allocates the next _index of the table,
// monotonic across the whole batch.
func (f *Flattener) nextIndex(table string) int {
	index := f.counter[table]
	f.counter[table]++
	return index
}

func (f *Flattener) appendRow(table string, row model.Row) {
	if _, found := f.rows[table]; !found {
		f.order = append(f.order, table)
	}
	f.rows[table] = append(f.rows[table], row)
}

// markField records how the field is used in the table and detects
// scalar vs repeating-group collisions across the whole batch.
func (f *Flattener) markField(table string, field string, kind fieldKind) error {
	fields, found := f.kinds[table]
	if !found {
		fields = map[string]fieldKind{}
		f.kinds[table] = fields
	}
	previous, seen := fields[field]
	if !seen {
		fields[field] = kind
		return nil
	}
	if previous != kind {
		return &NameCollisionError{Table: table, Field: field}
	}
	return nil
}
