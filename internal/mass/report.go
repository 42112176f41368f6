package mass

import "github.com/shopspring/decimal"

// Report is the rounded, display-ready total. Grams are rounded toward
// positive infinity and pounds toward negative infinity, so the two figures
// bracket the exact total from above and below.
type Report struct {
	Grams  decimal.Decimal
	Pounds decimal.Decimal
}

// NewReport rounds the exact total for display at two decimal places.
func NewReport(total decimal.Decimal, units UnitTable) Report {
	// QuoRem truncates toward zero; the total is never negative, so this is
	// the floor of the exact quotient at two decimal places.
	pounds, _ := total.QuoRem(units[UnitPound], 2)

	return Report{
		Grams:  total.RoundCeil(2),
		Pounds: pounds,
	}
}

func (r Report) GramsDisplay() string {
	return r.Grams.StringFixed(2)
}

func (r Report) PoundsDisplay() string {
	return r.Pounds.StringFixed(2)
}
