package payroll

import (
	"errors"
	"fmt"
)

var ErrSalaryNotFound = errors.New("salary record not found")

// InvalidInputError marks a salary field that could not be read as a
// number. It is never silently coerced to zero.
type InvalidInputError struct {
	Field string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s must be a number", e.Field)
}
