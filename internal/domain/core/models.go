package core

type Employee struct {
	EmpID         string `json:"empId"`
	Name          string `json:"name"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
	Gender        string `json:"gender,omitempty"`
	Department    string `json:"department,omitempty"`
	Designation   string `json:"designation,omitempty"`
	DateOfJoining string `json:"dateOfJoining,omitempty"`
	PasswordHash  string `json:"-"`
}

// EmployeeInput carries the raw form fields for a save or update.
// Password is the plaintext to digest; empty on update means keep the
// stored digest.
type EmployeeInput struct {
	EmpID         string `json:"empId"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Gender        string `json:"gender"`
	Department    string `json:"department"`
	Designation   string `json:"designation"`
	DateOfJoining string `json:"dateOfJoining"`
	Password      string `json:"password"`
}
