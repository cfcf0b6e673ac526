package entity

import (
	"errors"
	"fmt"
)

// ErrMissingColumn is matched by every MissingColumnError via errors.Is.
var ErrMissingColumn = errors.New("missing column")

// MissingColumnError reports that an operation needs a column the loaded
// schema does not have (or that cannot serve that role).
type MissingColumnError struct {
	Column    Column
	Operation string
}

func (e *MissingColumnError) Error() string {
	if e.Operation == "" {
		return fmt.Sprintf("column %q not found in dataset", e.Column)
	}
	return fmt.Sprintf("%s: column %q not found in dataset", e.Operation, e.Column)
}

// Is permite errors.Is(err, ErrMissingColumn).
func (e *MissingColumnError) Is(target error) bool {
	return target == ErrMissingColumn
}
