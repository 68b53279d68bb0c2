// Package tax implements progressive income-tax computation over a slab
// table and GST computation over a category rate table. The tables are
// built from configuration at startup and passed in explicitly.
package tax

import (
	"fmt"
	"math"

	"github.com/dukaforge/fincalc/pkg/types"
)

// CessRatePercent is the flat health-and-education surcharge applied on
// top of the computed income tax.
const CessRatePercent = 4.0

// SlabTax is the contribution of one slab to the total income tax.
type SlabTax struct {
	Range       string  `json:"range"`
	RatePercent float64 `json:"rate"`
	Tax         float64 `json:"tax"`
}

// IncomeTaxResult is the complete outcome of an income-tax computation.
type IncomeTaxResult struct {
	Income    float64   `json:"income"`
	Breakdown []SlabTax `json:"breakdown"`
	TotalTax  float64   `json:"total_tax"`
	Cess      float64   `json:"cess"`
	FinalTax  float64   `json:"final_tax"`
}

// ComputeIncomeTax walks the slab table in ascending order of upper bound,
// taxing the portion of income that falls inside each slab at that slab's
// marginal rate, then applies the cess surcharge. Non-positive income
// yields zero tax and an empty breakdown.
func ComputeIncomeTax(income float64, slabs types.SlabTable) (*IncomeTaxResult, error) {
	if err := slabs.Validate(); err != nil {
		return nil, err
	}

	result := &IncomeTaxResult{Income: income}
	if income <= 0 {
		return result, nil
	}

	prev := 0.0
	for _, slab := range slabs {
		bound := slab.Bound()
		if income > prev {
			taxable := math.Min(income, bound) - prev
			amount := taxable * slab.RatePercent / 100
			result.TotalTax += amount
			result.Breakdown = append(result.Breakdown, SlabTax{
				Range:       slabRange(prev, bound),
				RatePercent: slab.RatePercent,
				Tax:         amount,
			})
		}
		prev = bound
	}

	result.Cess = result.TotalTax * CessRatePercent / 100
	result.FinalTax = result.TotalTax + result.Cess
	return result, nil
}

// slabRange renders a slab's income interval for the breakdown.
func slabRange(from, to float64) string {
	if math.IsInf(to, 1) {
		return fmt.Sprintf("above %.0f", from)
	}
	return fmt.Sprintf("%.0f to %.0f", from, to)
}

// GSTResult is the outcome of a GST computation. The tax is split evenly
// into central (CGST) and state (SGST) halves.
type GSTResult struct {
	Amount      float64 `json:"amount"`
	RatePercent float64 `json:"rate"`
	CGST        float64 `json:"cgst"`
	SGST        float64 `json:"sgst"`
	TotalGST    float64 `json:"total_gst"`
	FinalAmount float64 `json:"final_amount"`
}

// ComputeGST looks up the rate for the given category and computes the
// two-authority split. Returns ErrUnknownCategory when the category is
// absent from the table.
func ComputeGST(amount float64, category string, table types.GSTTable) (*GSTResult, error) {
	rate, ok := table[category]
	if !ok {
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownCategory, category)
	}
	total := amount * rate / 100
	return &GSTResult{
		Amount:      amount,
		RatePercent: rate,
		CGST:        total / 2,
		SGST:        total / 2,
		TotalGST:    total,
		FinalAmount: amount + total,
	}, nil
}
