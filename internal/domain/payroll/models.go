package payroll

type SalaryRecord struct {
	ID         int64   `json:"id"`
	EmpID      string  `json:"empId"`
	Name       string  `json:"name"`
	Department string  `json:"department"`
	Basic      float64 `json:"basicSalary"`
	DA         float64 `json:"da"`
	HRA        float64 `json:"hra"`
	MA         float64 `json:"ma"`
	PF         float64 `json:"pf"`
	Insurance  float64 `json:"insurance"`
	Tax        float64 `json:"tax"`
	Net        float64 `json:"netSalary"`
	Date       string  `json:"date"`
}

// SalaryInput carries the raw form fields of a save or update. The
// amounts stay strings until ParseComponents has read them, so a bad
// value fails loudly instead of defaulting to zero.
type SalaryInput struct {
	EmpID     string `json:"empId"`
	Basic     string `json:"basicSalary"`
	DA        string `json:"da"`
	HRA       string `json:"hra"`
	MA        string `json:"ma"`
	PF        string `json:"pf"`
	Insurance string `json:"insurance"`
	Tax       string `json:"tax"`
}

// ReceiptRow is one salary record joined with its employee's attributes,
// keyed by the salary surrogate id. The store computes the join; the
// receipt renderer consumes it as-is.
type ReceiptRow struct {
	SalaryID    int64
	EmpID       string
	Name        string
	Department  string
	Basic       float64
	DA          float64
	HRA         float64
	MA          float64
	PF          float64
	Insurance   float64
	Tax         float64
	Net         float64
	Date        string
	Address     string
	Designation string
	Phone       string
}
