package core

import (
	"regexp"
	"strings"
	"time"
)

var (
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9_.+-]+@[A-Za-z0-9-]+(\.[A-Za-z0-9-]+)+$`)
	phonePattern = regexp.MustCompile(`^[0-9]{10,15}$`)
)

// ValidateEmployee checks the form fields of an employee record and
// stops at the first failure. Optional fields are only checked when
// present.
func ValidateEmployee(in EmployeeInput) error {
	if strings.TrimSpace(in.EmpID) == "" {
		return &ValidationError{Field: "empId", Reason: "Employee ID is required"}
	}
	if strings.TrimSpace(in.Name) == "" {
		return &ValidationError{Field: "name", Reason: "Name is required"}
	}
	if in.Email != "" && !emailPattern.MatchString(in.Email) {
		return &ValidationError{Field: "email", Reason: "Invalid email format"}
	}
	if in.Phone != "" && !phonePattern.MatchString(in.Phone) {
		return &ValidationError{Field: "phone", Reason: "Phone must be 10-15 digits"}
	}
	if in.DateOfJoining != "" {
		// Strict calendar parse: Feb 30 and month 13 must fail here,
		// which a format regex cannot catch.
		if _, err := time.Parse("2006-01-02", in.DateOfJoining); err != nil {
			return &ValidationError{Field: "dateOfJoining", Reason: "Date of joining must be a valid YYYY-MM-DD date"}
		}
	}
	return nil
}
