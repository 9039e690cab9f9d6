package auth

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
)

type fakeStore struct {
	admins    map[string]string
	employees map[string]string
}

func (f *fakeStore) AdminPasswordHash(_ context.Context, username string) (string, error) {
	hash, ok := f.admins[username]
	if !ok {
		return "", pgx.ErrNoRows
	}
	return hash, nil
}

func (f *fakeStore) EmployeePasswordHash(_ context.Context, empID string) (string, error) {
	hash, ok := f.employees[empID]
	if !ok {
		return "", pgx.ErrNoRows
	}
	return hash, nil
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	adminHash, err := HashPassword("12345")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	empHash, err := HashPassword("54321")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	return NewService(&fakeStore{
		admins:    map[string]string{"admin": adminHash},
		employees: map[string]string{"EMP001": empHash},
	})
}

func TestLoginAdmin(t *testing.T) {
	service := newTestService(t)

	identity, err := service.LoginAdmin(context.Background(), "admin", "12345")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if identity.Role != RoleAdmin || identity.EmployeeID != "" {
		t.Fatalf("unexpected identity %+v", identity)
	}
}

func TestLoginAdminUsernameIsCaseInsensitive(t *testing.T) {
	service := newTestService(t)

	if _, err := service.LoginAdmin(context.Background(), "  ADMIN ", "12345"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
}

func TestLoginAdminWrongPassword(t *testing.T) {
	service := newTestService(t)

	if _, err := service.LoginAdmin(context.Background(), "admin", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginAdminUnknownUsername(t *testing.T) {
	service := newTestService(t)

	if _, err := service.LoginAdmin(context.Background(), "nobody", "12345"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginEmployeeNormalizesID(t *testing.T) {
	service := newTestService(t)

	identity, err := service.LoginEmployee(context.Background(), " emp001 ", "54321")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if identity.Role != RoleEmployee || identity.EmployeeID != "EMP001" {
		t.Fatalf("unexpected identity %+v", identity)
	}
}

func TestLoginEmployeeWrongPassword(t *testing.T) {
	service := newTestService(t)

	if _, err := service.LoginEmployee(context.Background(), "EMP001", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
