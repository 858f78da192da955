package flatten

import (
	"fmt"
)

// NameCollisionError is returned when the same field of a table is used
// both as a scalar column and as a repeating group across the batch.
// The child table name would shadow the column, so the batch is rejected.
type NameCollisionError struct {
	Table string
	Field string
}

func (e *NameCollisionError) Error() string {
	return fmt.Sprintf(`field "%s" in table "%s" is used both as a value and as a repeating group`, e.Field, e.Table)
}
