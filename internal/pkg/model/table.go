package model

// Table is a tabular container produced by the assembler.
// Columns are the union of the row keys, in first-seen order.
// Cells of the missing keys are filled with the configured null value.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]any
}

func NewTable(name string) *Table {
	return &Table{Name: name}
}

// ColumnIndex returns position of the column, -1 if not present.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Cell returns the value at [row, column name], nil if the column is unknown.
func (t *Table) Cell(row int, column string) any {
	i := t.ColumnIndex(column)
	if i == -1 || row < 0 || row >= len(t.Rows) {
		return nil
	}
	return t.Rows[row][i]
}

func (t *Table) RowCount() int {
	return len(t.Rows)
}
