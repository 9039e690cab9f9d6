package payroll

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"paydesk/internal/domain/auth"
	"paydesk/internal/domain/core"
)

type Service struct {
	store StoreAPI
	now   func() time.Time
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store, now: time.Now}
}

// CreateSalary saves a dated salary snapshot for an existing employee.
// Name and department are copied from the employee at save time and
// never re-synced afterwards.
func (s *Service) CreateSalary(ctx context.Context, identity auth.Identity, in SalaryInput) (*SalaryRecord, error) {
	if err := auth.Require(identity, auth.OpSalariesWrite); err != nil {
		return nil, err
	}
	comps, err := ParseComponents(in)
	if err != nil {
		return nil, err
	}

	empID := strings.TrimSpace(in.EmpID)
	name, department, err := s.store.EmployeeNameDepartment(ctx, empID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.ErrEmployeeNotFound
		}
		return nil, err
	}

	rec := recordFromComponents(empID, comps)
	rec.Name = name
	rec.Department = department
	rec.Date = s.now().Format("2006-01-02")

	id, err := s.store.CreateSalary(ctx, rec)
	if err != nil {
		return nil, err
	}
	rec.ID = id
	return &rec, nil
}

// UpdateSalary rewrites the pay components of one record by surrogate id
// and recomputes the net. The denormalized name, department and save
// date stay as they were.
func (s *Service) UpdateSalary(ctx context.Context, identity auth.Identity, id int64, in SalaryInput) (*SalaryRecord, error) {
	if err := auth.Require(identity, auth.OpSalariesWrite); err != nil {
		return nil, err
	}
	comps, err := ParseComponents(in)
	if err != nil {
		return nil, err
	}

	empID := strings.TrimSpace(in.EmpID)
	if _, _, err := s.store.EmployeeNameDepartment(ctx, empID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.ErrEmployeeNotFound
		}
		return nil, err
	}

	rec := recordFromComponents(empID, comps)
	rec.ID = id
	if err := s.store.UpdateSalary(ctx, rec); err != nil {
		return nil, err
	}
	return s.store.GetSalary(ctx, id)
}

func (s *Service) DeleteSalary(ctx context.Context, identity auth.Identity, id int64) error {
	if err := auth.Require(identity, auth.OpSalariesWrite); err != nil {
		return err
	}
	return s.store.DeleteSalary(ctx, id)
}

func (s *Service) GetSalary(ctx context.Context, identity auth.Identity, id int64) (*SalaryRecord, error) {
	if err := auth.Require(identity, auth.OpSalariesRead); err != nil {
		return nil, err
	}
	rec, err := s.store.GetSalary(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := requireOwn(identity, rec.EmpID); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Service) ListSalaries(ctx context.Context, identity auth.Identity) ([]SalaryRecord, error) {
	if err := auth.Require(identity, auth.OpSalariesRead); err != nil {
		return nil, err
	}
	if identity.Role == auth.RoleEmployee {
		return s.store.ListSalariesForEmployee(ctx, identity.EmployeeID)
	}
	return s.store.ListSalaries(ctx)
}

func (s *Service) ListSalariesForEmployee(ctx context.Context, identity auth.Identity, empID string) ([]SalaryRecord, error) {
	if err := auth.Require(identity, auth.OpSalariesRead); err != nil {
		return nil, err
	}
	if err := requireOwn(identity, empID); err != nil {
		return nil, err
	}
	return s.store.ListSalariesForEmployee(ctx, empID)
}

// Receipt fetches the joined salary-employee row the renderer consumes.
func (s *Service) Receipt(ctx context.Context, identity auth.Identity, salaryID int64) (*ReceiptRow, error) {
	if err := auth.Require(identity, auth.OpSalariesRead); err != nil {
		return nil, err
	}
	row, err := s.store.ReceiptRow(ctx, salaryID)
	if err != nil {
		return nil, err
	}
	if err := requireOwn(identity, row.EmpID); err != nil {
		return nil, err
	}
	return row, nil
}

// requireOwn limits employee-role reads to the caller's own records.
func requireOwn(identity auth.Identity, empID string) error {
	if identity.Role == auth.RoleEmployee && !strings.EqualFold(identity.EmployeeID, empID) {
		return auth.ErrPermissionDenied
	}
	return nil
}

func recordFromComponents(empID string, c Components) SalaryRecord {
	b := Compute(c)
	return SalaryRecord{
		EmpID:     empID,
		Basic:     c.Basic,
		DA:        c.DA,
		HRA:       c.HRA,
		MA:        c.MA,
		PF:        c.PF,
		Insurance: c.Insurance,
		Tax:       c.Tax,
		Net:       b.Net,
	}
}
