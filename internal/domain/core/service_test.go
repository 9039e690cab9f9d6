package core

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"

	"paydesk/internal/domain/auth"
)

type fakeStore struct {
	employees map[string]Employee
	calls     int
}

func newFakeStore() *fakeStore {
	return &fakeStore{employees: map[string]Employee{}}
}

func (f *fakeStore) GetEmployee(_ context.Context, empID string) (*Employee, error) {
	emp, ok := f.employees[empID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &emp, nil
}

func (f *fakeStore) ListEmployees(context.Context) ([]Employee, error) {
	var out []Employee
	for _, emp := range f.employees {
		out = append(out, emp)
	}
	return out, nil
}

func (f *fakeStore) SearchEmployees(_ context.Context, _ string) ([]Employee, error) {
	return f.ListEmployees(context.Background())
}

func (f *fakeStore) CreateEmployee(_ context.Context, emp Employee) error {
	f.calls++
	if _, ok := f.employees[emp.EmpID]; ok {
		return ErrEmployeeExists
	}
	f.employees[emp.EmpID] = emp
	return nil
}

func (f *fakeStore) UpdateEmployee(_ context.Context, emp Employee, updatePassword bool) error {
	f.calls++
	existing, ok := f.employees[emp.EmpID]
	if !ok {
		return ErrEmployeeNotFound
	}
	if !updatePassword {
		emp.PasswordHash = existing.PasswordHash
	}
	f.employees[emp.EmpID] = emp
	return nil
}

func (f *fakeStore) DeleteEmployeeCascade(_ context.Context, empID string) error {
	f.calls++
	if _, ok := f.employees[empID]; !ok {
		return ErrEmployeeNotFound
	}
	delete(f.employees, empID)
	return nil
}

var admin = auth.Identity{Role: auth.RoleAdmin}

func TestCreateEmployeeHashesPassword(t *testing.T) {
	store := newFakeStore()
	service := NewService(store)

	in := validEmployee()
	in.Password = "secret"
	emp, err := service.CreateEmployee(context.Background(), admin, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if emp.PasswordHash == "" || emp.PasswordHash == "secret" {
		t.Fatal("expected a password digest, not the plaintext")
	}
	if err := auth.CheckPassword(emp.PasswordHash, "secret"); err != nil {
		t.Fatalf("digest does not verify: %v", err)
	}
}

func TestCreateEmployeeRequiresPassword(t *testing.T) {
	service := NewService(newFakeStore())
	_, err := service.CreateEmployee(context.Background(), admin, validEmployee())
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) || validationErr.Field != "password" {
		t.Fatalf("expected password validation error, got %v", err)
	}
}

func TestUpdateEmployeeKeepsDigestWithoutNewPassword(t *testing.T) {
	store := newFakeStore()
	service := NewService(store)

	in := validEmployee()
	in.Password = "secret"
	if _, err := service.CreateEmployee(context.Background(), admin, in); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	oldHash := store.employees["EMP001"].PasswordHash

	update := validEmployee()
	update.Name = "John Q. Doe"
	if _, err := service.UpdateEmployee(context.Background(), admin, update); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	stored := store.employees["EMP001"]
	if stored.Name != "John Q. Doe" {
		t.Fatalf("expected updated name, got %s", stored.Name)
	}
	if stored.PasswordHash != oldHash {
		t.Fatal("expected password digest to be preserved")
	}
}

func TestUpdateEmployeeRehashesNewPassword(t *testing.T) {
	store := newFakeStore()
	service := NewService(store)

	in := validEmployee()
	in.Password = "secret"
	if _, err := service.CreateEmployee(context.Background(), admin, in); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	oldHash := store.employees["EMP001"].PasswordHash

	update := validEmployee()
	update.Password = "changed"
	if _, err := service.UpdateEmployee(context.Background(), admin, update); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	newHash := store.employees["EMP001"].PasswordHash
	if newHash == oldHash {
		t.Fatal("expected password digest to change")
	}
	if err := auth.CheckPassword(newHash, "changed"); err != nil {
		t.Fatalf("new digest does not verify: %v", err)
	}
}

func TestEmployeeRoleCannotMutate(t *testing.T) {
	store := newFakeStore()
	service := NewService(store)
	employee := auth.Identity{Role: auth.RoleEmployee, EmployeeID: "EMP001"}

	in := validEmployee()
	in.Password = "secret"
	if _, err := service.CreateEmployee(context.Background(), employee, in); !errors.Is(err, auth.ErrPermissionDenied) {
		t.Fatalf("expected permission denied on create, got %v", err)
	}
	if _, err := service.UpdateEmployee(context.Background(), employee, in); !errors.Is(err, auth.ErrPermissionDenied) {
		t.Fatalf("expected permission denied on update, got %v", err)
	}
	if err := service.DeleteEmployee(context.Background(), employee, "EMP001"); !errors.Is(err, auth.ErrPermissionDenied) {
		t.Fatalf("expected permission denied on delete, got %v", err)
	}
	if store.calls != 0 {
		t.Fatalf("expected no store mutations, got %d", store.calls)
	}
}

func TestDeleteEmployeeNotFound(t *testing.T) {
	service := NewService(newFakeStore())
	if err := service.DeleteEmployee(context.Background(), admin, "EMP404"); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGetEmployeeMapsNoRows(t *testing.T) {
	service := NewService(newFakeStore())
	if _, err := service.GetEmployee(context.Background(), admin, "EMP404"); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
