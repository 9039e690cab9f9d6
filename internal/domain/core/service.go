package core

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"paydesk/internal/domain/auth"
)

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

func (s *Service) GetEmployee(ctx context.Context, identity auth.Identity, empID string) (*Employee, error) {
	if err := auth.Require(identity, auth.OpEmployeesRead); err != nil {
		return nil, err
	}
	emp, err := s.store.GetEmployee(ctx, empID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return emp, nil
}

func (s *Service) ListEmployees(ctx context.Context, identity auth.Identity) ([]Employee, error) {
	if err := auth.Require(identity, auth.OpEmployeesRead); err != nil {
		return nil, err
	}
	return s.store.ListEmployees(ctx)
}

func (s *Service) SearchEmployees(ctx context.Context, identity auth.Identity, query string) ([]Employee, error) {
	if err := auth.Require(identity, auth.OpEmployeesRead); err != nil {
		return nil, err
	}
	return s.store.SearchEmployees(ctx, strings.TrimSpace(query))
}

func (s *Service) CreateEmployee(ctx context.Context, identity auth.Identity, in EmployeeInput) (*Employee, error) {
	if err := auth.Require(identity, auth.OpEmployeesWrite); err != nil {
		return nil, err
	}
	if err := ValidateEmployee(in); err != nil {
		return nil, err
	}
	if in.Password == "" {
		return nil, &ValidationError{Field: "password", Reason: "Password is required"}
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	emp := employeeFromInput(in)
	emp.PasswordHash = hash
	if err := s.store.CreateEmployee(ctx, emp); err != nil {
		return nil, err
	}
	return &emp, nil
}

// UpdateEmployee rewrites every form field; the password digest is
// replaced only when a new plaintext was supplied.
func (s *Service) UpdateEmployee(ctx context.Context, identity auth.Identity, in EmployeeInput) (*Employee, error) {
	if err := auth.Require(identity, auth.OpEmployeesWrite); err != nil {
		return nil, err
	}
	if err := ValidateEmployee(in); err != nil {
		return nil, err
	}

	emp := employeeFromInput(in)
	updatePassword := in.Password != ""
	if updatePassword {
		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		emp.PasswordHash = hash
	}
	if err := s.store.UpdateEmployee(ctx, emp, updatePassword); err != nil {
		return nil, err
	}
	return &emp, nil
}

// DeleteEmployee removes the employee and every salary record saved for
// it, in a single transaction.
func (s *Service) DeleteEmployee(ctx context.Context, identity auth.Identity, empID string) error {
	if err := auth.Require(identity, auth.OpEmployeesWrite); err != nil {
		return err
	}
	if strings.TrimSpace(empID) == "" {
		return &ValidationError{Field: "empId", Reason: "Employee ID is required"}
	}
	return s.store.DeleteEmployeeCascade(ctx, empID)
}

func employeeFromInput(in EmployeeInput) Employee {
	return Employee{
		EmpID:         strings.TrimSpace(in.EmpID),
		Name:          in.Name,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		Gender:        in.Gender,
		Department:    in.Department,
		Designation:   in.Designation,
		DateOfJoining: in.DateOfJoining,
	}
}
