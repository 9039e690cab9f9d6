package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
)

type StoreAPI interface {
	AdminPasswordHash(ctx context.Context, username string) (string, error)
	EmployeePasswordHash(ctx context.Context, empID string) (string, error)
}

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

// LoginAdmin matches the admin username case-insensitively.
func (s *Service) LoginAdmin(ctx context.Context, username, password string) (Identity, error) {
	hash, err := s.store.AdminPasswordHash(ctx, strings.ToLower(strings.TrimSpace(username)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Identity{}, ErrInvalidCredentials
		}
		return Identity{}, err
	}
	if CheckPassword(hash, password) != nil {
		return Identity{}, ErrInvalidCredentials
	}
	return Identity{Role: RoleAdmin}, nil
}

// LoginEmployee uppercases the employee id before lookup, so emp001 and
// EMP001 name the same account.
func (s *Service) LoginEmployee(ctx context.Context, empID, password string) (Identity, error) {
	normalized := strings.ToUpper(strings.TrimSpace(empID))
	hash, err := s.store.EmployeePasswordHash(ctx, normalized)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Identity{}, ErrInvalidCredentials
		}
		return Identity{}, err
	}
	if CheckPassword(hash, password) != nil {
		return Identity{}, ErrInvalidCredentials
	}
	return Identity{Role: RoleEmployee, EmployeeID: normalized}, nil
}
