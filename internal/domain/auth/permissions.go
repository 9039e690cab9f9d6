package auth

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

const (
	OpEmployeesRead  = "employees.read"
	OpEmployeesWrite = "employees.write"
	OpSalariesRead   = "salaries.read"
	OpSalariesWrite  = "salaries.write"
	OpReceiptsExport = "receipts.export"
	OpRegisterExport = "register.export"
)

var Operations = []string{
	OpEmployeesRead,
	OpEmployeesWrite,
	OpSalariesRead,
	OpSalariesWrite,
	OpReceiptsExport,
	OpRegisterExport,
}

// Capabilities maps (role, operation) to allowed. Employees are limited
// to reading and exporting their own records; the own-record restriction
// is enforced where the operation is invoked.
var Capabilities = map[string]map[string]bool{
	RoleAdmin: {
		OpEmployeesRead:  true,
		OpEmployeesWrite: true,
		OpSalariesRead:   true,
		OpSalariesWrite:  true,
		OpReceiptsExport: true,
		OpRegisterExport: true,
	},
	RoleEmployee: {
		OpSalariesRead:   true,
		OpReceiptsExport: true,
	},
}

func Allowed(role, operation string) bool {
	return Capabilities[role][operation]
}

// Require is the permission gate every mutating operation calls before
// touching the store.
func Require(identity Identity, operation string) error {
	if !Allowed(identity.Role, operation) {
		return ErrPermissionDenied
	}
	return nil
}
