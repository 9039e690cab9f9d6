package core

import "context"

type StoreAPI interface {
	GetEmployee(ctx context.Context, empID string) (*Employee, error)
	ListEmployees(ctx context.Context) ([]Employee, error)
	SearchEmployees(ctx context.Context, query string) ([]Employee, error)
	CreateEmployee(ctx context.Context, emp Employee) error
	UpdateEmployee(ctx context.Context, emp Employee, updatePassword bool) error
	DeleteEmployeeCascade(ctx context.Context, empID string) error
}
