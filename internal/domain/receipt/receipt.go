package receipt

import (
	"fmt"
	"strings"

	"paydesk/internal/domain/payroll"
)

const (
	companyName = "COMPANY NAME"
	titleLine   = "EMPLOYEE SALARY RECEIPT"
	footerLine  = "This is a computer-generated receipt and does not require a signature."
)

// Field is one labelled line of the employee block.
type Field struct {
	Label string
	Value string
}

// Table is the four-column earnings/deductions block. Amounts are
// pre-formatted strings so both renderings share one numeric format.
type Table struct {
	Header [4]string
	Rows   [][4]string
	Totals [4]string
}

// Document is the format-independent content model of one receipt. Both
// the text and the PDF rendering consume it unchanged.
type Document struct {
	ReceiptNo int64
	Date      string
	Employee  []Field
	Table     Table
	NetSalary string
}

// Build assembles the content model from a joined salary row. The totals
// row is recomputed from the components rather than trusted from the
// stored net, while the net line prints the stored value unchanged; an
// edited record can therefore show a net that disagrees with the totals.
func Build(row payroll.ReceiptRow) Document {
	b := payroll.Compute(payroll.Components{
		Basic:     row.Basic,
		DA:        row.DA,
		HRA:       row.HRA,
		MA:        row.MA,
		PF:        row.PF,
		Insurance: row.Insurance,
		Tax:       row.Tax,
	})

	return Document{
		ReceiptNo: row.SalaryID,
		Date:      row.Date,
		Employee: []Field{
			{"Employee ID", row.EmpID},
			{"Employee Name", row.Name},
			{"Department", row.Department},
			{"Designation", row.Designation},
			{"Address", row.Address},
			{"Phone", row.Phone},
		},
		Table: Table{
			Header: [4]string{"EARNINGS", "AMOUNT", "DEDUCTIONS", "AMOUNT"},
			Rows: [][4]string{
				{"Basic Salary", amount(row.Basic), "Provident Fund", amount(row.PF)},
				{"Dearness Allowance", amount(row.DA), "Insurance", amount(row.Insurance)},
				{"House Rent Allowance", amount(row.HRA), "Tax", amount(row.Tax)},
				{"Medical Allowance", amount(row.MA), "", ""},
			},
			Totals: [4]string{"Total Earnings", amount(b.Earnings), "Total Deductions", amount(b.Deductions)},
		},
		NetSalary: amount(row.Net),
	}
}

// amount is the one numeric format of the receipt: two decimals, no
// currency symbol.
func amount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// RenderText produces the 80-column plain-text receipt. Rendering the
// same document twice yields byte-identical output.
func RenderText(doc Document) string {
	rule := strings.Repeat("-", 80)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s%s\n", strings.Repeat(" ", 20), companyName)
	fmt.Fprintf(&sb, "%s%s\n", strings.Repeat(" ", 15), titleLine)
	sb.WriteString(rule + "\n\n")

	fmt.Fprintf(&sb, "Receipt No: %d%sDate: %s\n\n", doc.ReceiptNo, strings.Repeat(" ", 20), doc.Date)

	for _, field := range doc.Employee {
		fmt.Fprintf(&sb, "%s: %s\n", field.Label, field.Value)
	}
	sb.WriteString("\n")

	sb.WriteString(rule + "\n")
	writeTableRow(&sb, doc.Table.Header)
	sb.WriteString(rule + "\n")
	for _, row := range doc.Table.Rows {
		writeTableRow(&sb, row)
	}
	sb.WriteString(rule + "\n")
	writeTableRow(&sb, doc.Table.Totals)
	sb.WriteString(rule + "\n\n")

	fmt.Fprintf(&sb, "Net Salary: %s\n\n", doc.NetSalary)

	sb.WriteString(rule + "\n")
	sb.WriteString(footerLine + "\n")
	return sb.String()
}

// Columns: label 30, amount 15, label 20, amount 15. Amounts are
// left-justified in their field like the labels.
func writeTableRow(sb *strings.Builder, cells [4]string) {
	fmt.Fprintf(sb, "%-30s%-15s%-20s%-15s\n", cells[0], cells[1], cells[2], cells[3])
}
