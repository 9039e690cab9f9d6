package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"paydesk/internal/domain/auth"
	"paydesk/internal/platform/config"
)

// Seed inserts the default admin account and a sample employee with one
// salary row. Each insert is skipped when the row already exists, so the
// seed is safe to run on every boot.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if err := seedAdmin(ctx, pool, cfg); err != nil {
		return err
	}
	return seedSampleEmployee(ctx, pool)
}

func seedAdmin(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM admins WHERE username = $1", cfg.SeedAdminUsername).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	password := cfg.SeedAdminPassword
	if password == "" {
		password = "12345"
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	if _, err := pool.Exec(ctx, "INSERT INTO admins (username, password) VALUES ($1, $2)", cfg.SeedAdminUsername, hash); err != nil {
		return err
	}
	log.Info().Str("username", cfg.SeedAdminUsername).Msg("default admin account created")
	return nil
}

func seedSampleEmployee(ctx context.Context, pool *pgxpool.Pool) error {
	const empID = "EMP001"

	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM employees WHERE emp_id = $1", empID).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword("54321")
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `
    INSERT INTO employees (emp_id, name, email, phone, address, gender, department, designation, doj, password)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
  `, empID, "John Doe", "john.doe@example.com", "1234567890", "123 Main St, City", "Male", "IT", "Developer", "2023-01-01", hash)
	if err != nil {
		return err
	}

	var salaryCount int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM salaries WHERE emp_id = $1", empID).Scan(&salaryCount); err != nil {
		return err
	}
	if salaryCount == 0 {
		_, err = pool.Exec(ctx, `
      INSERT INTO salaries (emp_id, name, department, basic_salary, da, hra, ma, pf, insurance, tax, net_salary, date)
      VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
    `, empID, "John Doe", "IT", 50000.0, 5000.0, 10000.0, 2000.0, 3000.0, 1500.0, 2500.0, 60000.0, "2023-04-19")
		if err != nil {
			return err
		}
	}

	log.Info().Str("empId", empID).Msg("sample employee account created")
	return nil
}
