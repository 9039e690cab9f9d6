package receipt

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// RenderPDF produces the single-page letter-size rendering of the
// receipt. The creation date is pinned so the same document renders to
// byte-identical output.
func RenderPDF(doc Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetCreationDate(time.Unix(0, 0).UTC())
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, companyName, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 10, titleLine, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Receipt No: %d                  Date: %s", doc.ReceiptNo, doc.Date), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	for _, field := range doc.Employee {
		pdf.CellFormat(0, 7, fmt.Sprintf("%s: %s", field.Label, field.Value), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	colWidths := [4]float64{60, 30, 55, 30}
	aligns := [4]string{"L", "R", "L", "R"}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetFillColor(128, 128, 128)
	pdf.SetTextColor(255, 255, 255)
	for i, cell := range doc.Table.Header {
		pdf.CellFormat(colWidths[i], 9, cell, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range doc.Table.Rows {
		for i, cell := range row {
			pdf.CellFormat(colWidths[i], 8, cell, "1", 0, aligns[i], false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetFillColor(245, 245, 220)
	for i, cell := range doc.Table.Totals {
		pdf.CellFormat(colWidths[i], 9, cell, "1", 0, aligns[i], true, 0, "")
	}
	pdf.Ln(-1)
	pdf.Ln(6)

	pdf.CellFormat(0, 8, "Net Salary: "+doc.NetSalary, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "I", 11)
	pdf.CellFormat(0, 7, footerLine, "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
