package payroll

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) EmployeeNameDepartment(ctx context.Context, empID string) (string, string, error) {
	var name, department string
	err := s.DB.QueryRow(ctx, `
    SELECT name, COALESCE(department, '') FROM employees WHERE emp_id = $1
  `, empID).Scan(&name, &department)
	if err != nil {
		return "", "", err
	}
	return name, department, nil
}

func (s *Store) CreateSalary(ctx context.Context, rec SalaryRecord) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO salaries (emp_id, name, department, basic_salary, da, hra, ma, pf, insurance, tax, net_salary, date)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
    RETURNING id
  `, rec.EmpID, rec.Name, rec.Department, rec.Basic, rec.DA, rec.HRA, rec.MA, rec.PF, rec.Insurance, rec.Tax, rec.Net, rec.Date).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Store) UpdateSalary(ctx context.Context, rec SalaryRecord) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE salaries SET
      emp_id=$2, basic_salary=$3, da=$4, hra=$5, ma=$6,
      pf=$7, insurance=$8, tax=$9, net_salary=$10
    WHERE id=$1
  `, rec.ID, rec.EmpID, rec.Basic, rec.DA, rec.HRA, rec.MA, rec.PF, rec.Insurance, rec.Tax, rec.Net)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSalaryNotFound
	}
	return nil
}

func (s *Store) DeleteSalary(ctx context.Context, id int64) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM salaries WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSalaryNotFound
	}
	return nil
}

const salaryColumns = `
    id, emp_id, name, COALESCE(department, ''),
    basic_salary, da, hra, ma, pf, insurance, tax, net_salary, date`

func (s *Store) GetSalary(ctx context.Context, id int64) (*SalaryRecord, error) {
	row := s.DB.QueryRow(ctx, `SELECT`+salaryColumns+` FROM salaries WHERE id = $1`, id)
	var rec SalaryRecord
	if err := scanSalary(row, &rec); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrSalaryNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (s *Store) ListSalaries(ctx context.Context) ([]SalaryRecord, error) {
	rows, err := s.DB.Query(ctx, `SELECT`+salaryColumns+` FROM salaries ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSalaries(rows)
}

func (s *Store) ListSalariesForEmployee(ctx context.Context, empID string) ([]SalaryRecord, error) {
	rows, err := s.DB.Query(ctx, `SELECT`+salaryColumns+` FROM salaries WHERE emp_id = $1 ORDER BY id`, empID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSalaries(rows)
}

// ReceiptRow joins one salary record with its employee's attributes,
// keyed by the salary surrogate id.
func (s *Store) ReceiptRow(ctx context.Context, id int64) (*ReceiptRow, error) {
	var row ReceiptRow
	err := s.DB.QueryRow(ctx, `
    SELECT s.id, s.emp_id, s.name, COALESCE(s.department, ''),
           s.basic_salary, s.da, s.hra, s.ma, s.pf, s.insurance, s.tax,
           s.net_salary, s.date,
           COALESCE(e.address, ''), COALESCE(e.designation, ''), COALESCE(e.phone, '')
    FROM salaries s
    JOIN employees e ON s.emp_id = e.emp_id
    WHERE s.id = $1
  `, id).Scan(
		&row.SalaryID, &row.EmpID, &row.Name, &row.Department,
		&row.Basic, &row.DA, &row.HRA, &row.MA, &row.PF, &row.Insurance, &row.Tax,
		&row.Net, &row.Date,
		&row.Address, &row.Designation, &row.Phone,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrSalaryNotFound
		}
		return nil, err
	}
	return &row, nil
}

func scanSalary(row pgx.Row, rec *SalaryRecord) error {
	return row.Scan(
		&rec.ID, &rec.EmpID, &rec.Name, &rec.Department,
		&rec.Basic, &rec.DA, &rec.HRA, &rec.MA, &rec.PF, &rec.Insurance, &rec.Tax,
		&rec.Net, &rec.Date,
	)
}

func collectSalaries(rows pgx.Rows) ([]SalaryRecord, error) {
	var out []SalaryRecord
	for rows.Next() {
		var rec SalaryRecord
		if err := scanSalary(rows, &rec); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
