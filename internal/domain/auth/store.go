package auth

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) AdminPasswordHash(ctx context.Context, username string) (string, error) {
	var hash string
	err := s.DB.QueryRow(ctx, `
    SELECT password FROM admins WHERE LOWER(username) = $1
  `, username).Scan(&hash)
	if err != nil {
		return "", err
	}
	return hash, nil
}

func (s *Store) EmployeePasswordHash(ctx context.Context, empID string) (string, error) {
	var hash string
	err := s.DB.QueryRow(ctx, `
    SELECT password FROM employees WHERE emp_id = $1
  `, empID).Scan(&hash)
	if err != nil {
		return "", err
	}
	return hash, nil
}
