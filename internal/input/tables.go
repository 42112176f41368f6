// Package input reads the reference tables and mixture documents the
// calculator consumes. Any error returned here is fatal for the run.
package input

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"code.selman.me/totalmass/internal/mass"
)

// Elements reads the molar mass table, one `molarmass,name` row per element.
// Names are lowercased on the way in.
func Elements(r io.Reader) (mass.ElementTable, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	table := make(mass.ElementTable)
	for {
		record, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return nil, fmt.Errorf("elements: %w", err)
		}

		molar, err := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("elements: molar mass for %q: %w", record[1], err)
		}

		table[strings.ToLower(strings.TrimSpace(record[1]))] = molar
	}

	return table, nil
}

// Units reads the unit conversion table, one `name,factor` row per unit, with
// factors parsed as exact decimals. A table without a pound entry is rejected
// since the report cannot be rendered without it.
func Units(r io.Reader) (mass.UnitTable, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	table := make(mass.UnitTable)
	for {
		record, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return nil, fmt.Errorf("units: %w", err)
		}

		name := strings.ToLower(strings.TrimSpace(record[0]))
		if name == mass.UnitMol {
			// reserved, converts through the element table; a stored factor
			// would be shadowed forever
			continue
		}

		factor, err := decimal.NewFromString(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, fmt.Errorf("units: factor for %q: %w", name, err)
		}

		table[name] = factor
	}

	if _, ok := table[mass.UnitPound]; !ok {
		return nil, fmt.Errorf("units: missing %q entry", mass.UnitPound)
	}

	return table, nil
}
