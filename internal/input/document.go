package input

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"code.selman.me/totalmass/internal/mass"
)

type component struct {
	Name  string           `json:"name"`
	Units string           `json:"units"`
	Mass  *decimal.Decimal `json:"mass"`
}

type document struct {
	Components *[]component `json:"components"`
}

// Mixture decodes a mixture document of the form
//
//	{"components": [{"name": "carbon", "units": "mol", "mass": 2}, ...]}
//
// The whole document is decoded before any entry is returned, so a structural
// failure never yields a partial entry stream.
func Mixture(r io.Reader) ([]mass.Entry, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("mixture: %w", err)
	}

	if doc.Components == nil {
		return nil, fmt.Errorf("mixture: no components array")
	}

	entries := make([]mass.Entry, 0, len(*doc.Components))
	for i, c := range *doc.Components {
		if c.Mass == nil {
			return nil, fmt.Errorf("mixture: component #%d (%v): missing mass", i, c.Name)
		}

		entries = append(entries, mass.Entry{
			Element:  c.Name,
			Quantity: *c.Mass,
			Unit:     c.Units,
		})
	}

	return entries, nil
}
