package payroll

import "context"

type StoreAPI interface {
	EmployeeNameDepartment(ctx context.Context, empID string) (name, department string, err error)
	CreateSalary(ctx context.Context, rec SalaryRecord) (int64, error)
	UpdateSalary(ctx context.Context, rec SalaryRecord) error
	DeleteSalary(ctx context.Context, id int64) error
	GetSalary(ctx context.Context, id int64) (*SalaryRecord, error)
	ListSalaries(ctx context.Context) ([]SalaryRecord, error)
	ListSalariesForEmployee(ctx context.Context, empID string) ([]SalaryRecord, error)
	ReceiptRow(ctx context.Context, id int64) (*ReceiptRow, error)
}
