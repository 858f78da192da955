package model

import (
	"github.com/keboola/go-utils/pkg/orderedmap"
)

// Linkage columns added by the flattener.
// They tie a row in a child table back to the row it was derived from.
const (
	IndexColumn       = "_index"
	ParentIndexColumn = "_parent_index"
	ParentTableColumn = "_parent_table"
)

// RootTableName is the fixed name of the table with one row per submission.
const RootTableName = "root"

// Row is one flat record, column name -> scalar value, in insertion order.
type Row = *orderedmap.OrderedMap

// NewRow creates an empty row.
func NewRow() Row {
	return orderedmap.New()
}

// RowIndex returns the value of the "_index" column, -1 if missing.
func RowIndex(row Row) int {
	if v, found := row.Get(IndexColumn); found {
		if i, ok := v.(int); ok {
			return i
		}
	}
	return -1
}

// RowParent returns the (_parent_table, _parent_index) pair of a child row.
// The second return value is false for root-table rows.
func RowParent(row Row) (table string, index int, ok bool) {
	t, foundTable := row.Get(ParentTableColumn)
	i, foundIndex := row.Get(ParentIndexColumn)
	if !foundTable || !foundIndex {
		return "", 0, false
	}
	tableName, okTable := t.(string)
	indexValue, okIndex := i.(int)
	if !okTable || !okIndex {
		return "", 0, false
	}
	return tableName, indexValue, true
}
