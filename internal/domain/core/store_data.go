package core

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const employeeColumns = `
    emp_id, name,
    COALESCE(email, ''), COALESCE(phone, ''), COALESCE(address, ''),
    COALESCE(gender, ''), COALESCE(department, ''), COALESCE(designation, ''),
    COALESCE(doj, ''), password`

func (s *Store) GetEmployee(ctx context.Context, empID string) (*Employee, error) {
	row := s.DB.QueryRow(ctx, `SELECT`+employeeColumns+` FROM employees WHERE emp_id = $1`, empID)
	var emp Employee
	if err := scanEmployee(row, &emp); err != nil {
		return nil, err
	}
	return &emp, nil
}

func (s *Store) ListEmployees(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `SELECT`+employeeColumns+` FROM employees ORDER BY emp_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEmployees(rows)
}

func (s *Store) SearchEmployees(ctx context.Context, query string) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT`+employeeColumns+`
    FROM employees
    WHERE emp_id ILIKE '%' || $1 || '%' OR name ILIKE '%' || $1 || '%'
    ORDER BY emp_id
  `, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEmployees(rows)
}

func (s *Store) CreateEmployee(ctx context.Context, emp Employee) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO employees (emp_id, name, email, phone, address, gender, department, designation, doj, password)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
  `, emp.EmpID, emp.Name, emp.Email, emp.Phone, emp.Address, emp.Gender, emp.Department, emp.Designation, emp.DateOfJoining, emp.PasswordHash)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrEmployeeExists
	}
	return err
}

func (s *Store) UpdateEmployee(ctx context.Context, emp Employee, updatePassword bool) error {
	var tag pgconn.CommandTag
	var err error
	if updatePassword {
		tag, err = s.DB.Exec(ctx, `
      UPDATE employees SET
        name=$2, email=$3, phone=$4, address=$5, gender=$6,
        department=$7, designation=$8, doj=$9, password=$10
      WHERE emp_id=$1
    `, emp.EmpID, emp.Name, emp.Email, emp.Phone, emp.Address, emp.Gender, emp.Department, emp.Designation, emp.DateOfJoining, emp.PasswordHash)
	} else {
		tag, err = s.DB.Exec(ctx, `
      UPDATE employees SET
        name=$2, email=$3, phone=$4, address=$5, gender=$6,
        department=$7, designation=$8, doj=$9
      WHERE emp_id=$1
    `, emp.EmpID, emp.Name, emp.Email, emp.Phone, emp.Address, emp.Gender, emp.Department, emp.Designation, emp.DateOfJoining)
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

// DeleteEmployeeCascade removes the employee row and its salary records
// in one transaction, so a failure leaves both tables untouched.
func (s *Store) DeleteEmployeeCascade(ctx context.Context, empID string) error {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, "DELETE FROM employees WHERE emp_id = $1", empID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEmployeeNotFound
	}
	if _, err := tx.Exec(ctx, "DELETE FROM salaries WHERE emp_id = $1", empID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func scanEmployee(row pgx.Row, emp *Employee) error {
	return row.Scan(
		&emp.EmpID, &emp.Name, &emp.Email, &emp.Phone, &emp.Address,
		&emp.Gender, &emp.Department, &emp.Designation, &emp.DateOfJoining, &emp.PasswordHash,
	)
}

func collectEmployees(rows pgx.Rows) ([]Employee, error) {
	var out []Employee
	for rows.Next() {
		var emp Employee
		if err := scanEmployee(rows, &emp); err != nil {
			return nil, err
		}
		out = append(out, emp)
	}
	return out, rows.Err()
}
