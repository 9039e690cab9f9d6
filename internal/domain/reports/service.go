package reports

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"paydesk/internal/domain/auth"
	"paydesk/internal/domain/payroll"
)

// RegisterStore supplies the rows of the salary register. The payroll
// store satisfies it.
type RegisterStore interface {
	ListSalaries(ctx context.Context) ([]payroll.SalaryRecord, error)
}

type Service struct {
	store RegisterStore
}

func NewService(store RegisterStore) *Service {
	return &Service{store: store}
}

var registerHeader = []string{
	"ID", "Employee ID", "Name", "Department",
	"Basic Salary", "DA", "HRA", "MA", "PF", "Insurance", "Tax",
	"Net Salary", "Date",
}

// WriteRegisterCSV streams the full salary register as CSV.
func (s *Service) WriteRegisterCSV(ctx context.Context, identity auth.Identity, w io.Writer) error {
	if err := auth.Require(identity, auth.OpRegisterExport); err != nil {
		return err
	}
	records, err := s.store.ListSalaries(ctx)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(registerHeader); err != nil {
		return err
	}
	for _, rec := range records {
		row := []string{
			strconv.FormatInt(rec.ID, 10), rec.EmpID, rec.Name, rec.Department,
			amount(rec.Basic), amount(rec.DA), amount(rec.HRA), amount(rec.MA),
			amount(rec.PF), amount(rec.Insurance), amount(rec.Tax),
			amount(rec.Net), rec.Date,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteRegisterXLSX writes the register as a single-sheet workbook with
// the amount columns in a two-decimal number format.
func (s *Service) WriteRegisterXLSX(ctx context.Context, identity auth.Identity, w io.Writer) error {
	if err := auth.Require(identity, auth.OpRegisterExport); err != nil {
		return err
	}
	records, err := s.store.ListSalaries(ctx)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Salary Register"
	f.SetSheetName("Sheet1", sheet)

	for col, title := range registerHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return err
		}
	}

	for i, rec := range records {
		values := []any{
			rec.ID, rec.EmpID, rec.Name, rec.Department,
			rec.Basic, rec.DA, rec.HRA, rec.MA, rec.PF, rec.Insurance, rec.Tax,
			rec.Net, rec.Date,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	if len(records) > 0 {
		// NumFmt 4 is the built-in #,##0.00 format.
		amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4})
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, "E2", fmt.Sprintf("L%d", len(records)+1), amountStyle); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func amount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
