// Package mass normalizes mixture entries denominated in heterogeneous units
// into grams and sums them with exact decimal arithmetic.
package mass

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// UnitMol is reserved: it converts through the element table instead of
	// the unit table and is never stored as a table entry.
	UnitMol = "mol"

	// UnitPound must be present in every UnitTable, the final report depends
	// on it.
	UnitPound = "pound"
)

// ElementTable maps a lowercase element name to its molar mass in grams/mole.
// Molar masses are kept as float approximations and widened to decimal at
// conversion time.
type ElementTable map[string]float64

// UnitTable maps a lowercase unit name to its gram-equivalent factor.
type UnitTable map[string]decimal.Decimal

// Entry is one component of the input mixture, as extracted from the
// document.
type Entry struct {
	Element  string
	Quantity decimal.Decimal
	Unit     string
}

type Validation int

const (
	Valid Validation = iota
	InvalidUnit
	InvalidElement
)

// Validate checks the unit first; an unknown unit short-circuits and the
// element is not inspected.
func Validate(e Entry, elements ElementTable, units UnitTable) Validation {
	unit := strings.ToLower(e.Unit)
	if unit != UnitMol {
		if _, ok := units[unit]; !ok {
			return InvalidUnit
		}
	}

	if _, ok := elements[strings.ToLower(e.Element)]; !ok {
		return InvalidElement
	}

	return Valid
}

// ToGrams converts a validated entry's quantity to grams. Mole-denominated
// entries go through the molar mass of their element, everything else through
// the unit table factor.
func ToGrams(e Entry, elements ElementTable, units UnitTable) decimal.Decimal {
	if strings.ToLower(e.Unit) == UnitMol {
		molar := decimal.NewFromFloat(elements[strings.ToLower(e.Element)])
		return molar.Mul(e.Quantity)
	}

	return e.Quantity.Mul(units[strings.ToLower(e.Unit)])
}

// SkipFunc receives every entry rejected by validation, together with the
// reason.
type SkipFunc func(e Entry, reason Validation)

// Sum converts and accumulates all valid entries. Invalid entries are handed
// to onSkip and left out of the total; they never abort the pass.
func Sum(entries []Entry, elements ElementTable, units UnitTable, onSkip SkipFunc) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if v := Validate(e, elements, units); v != Valid {
			if onSkip != nil {
				onSkip(e, v)
			}
			continue
		}

		total = total.Add(ToGrams(e, elements, units))
	}

	return total
}
