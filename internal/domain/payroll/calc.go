package payroll

// Components are the seven scalar inputs of one salary record: four
// earnings, three deductions.
type Components struct {
	Basic     float64
	DA        float64
	HRA       float64
	MA        float64
	PF        float64
	Insurance float64
	Tax       float64
}

type Breakdown struct {
	Earnings   float64
	Deductions float64
	Net        float64
}

// Compute derives the net salary. Pure arithmetic, no range limits:
// negative components are accepted as-is.
func Compute(c Components) Breakdown {
	earnings := c.Basic + c.DA + c.HRA + c.MA
	deductions := c.PF + c.Insurance + c.Tax
	return Breakdown{
		Earnings:   earnings,
		Deductions: deductions,
		Net:        earnings - deductions,
	}
}
