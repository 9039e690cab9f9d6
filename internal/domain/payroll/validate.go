package payroll

import (
	"strconv"
	"strings"

	"paydesk/internal/domain/core"
)

// ParseComponents validates the salary form fields and converts them to
// numbers. It stops at the first failure, naming the offending field.
func ParseComponents(in SalaryInput) (Components, error) {
	if strings.TrimSpace(in.EmpID) == "" {
		return Components{}, &core.ValidationError{Field: "empId", Reason: "Employee ID is required"}
	}

	var c Components
	fields := []struct {
		label string
		raw   string
		dst   *float64
	}{
		{"Basic Salary", in.Basic, &c.Basic},
		{"DA", in.DA, &c.DA},
		{"HRA", in.HRA, &c.HRA},
		{"MA", in.MA, &c.MA},
		{"PF", in.PF, &c.PF},
		{"Insurance", in.Insurance, &c.Insurance},
		{"Tax", in.Tax, &c.Tax},
	}
	for _, field := range fields {
		value, err := strconv.ParseFloat(strings.TrimSpace(field.raw), 64)
		if err != nil {
			return Components{}, &InvalidInputError{Field: field.label}
		}
		*field.dst = value
	}
	return c, nil
}
