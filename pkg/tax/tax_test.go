package tax

import (
	"errors"
	"math"
	"testing"

	"github.com/dukaforge/fincalc/pkg/types"
)

// newRegime mirrors the FY 2023-24 new-regime slab table.
var newRegime = types.SlabTable{
	{UpTo: 300000, RatePercent: 0},
	{UpTo: 600000, RatePercent: 5},
	{UpTo: 900000, RatePercent: 10},
	{UpTo: 1200000, RatePercent: 15},
	{UpTo: 1500000, RatePercent: 20},
	{UpTo: 0, RatePercent: 30},
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-6
}

func TestComputeIncomeTax(t *testing.T) {
	t.Run("income inside third slab", func(t *testing.T) {
		result, err := ComputeIncomeTax(750000, newRegime)
		if err != nil {
			t.Fatal(err)
		}
		// 0% on 3L, 5% on 3L = 15000, 10% on 1.5L = 15000.
		if !almostEqual(result.TotalTax, 30000) {
			t.Fatalf("expected total tax 30000, got %v", result.TotalTax)
		}
		if !almostEqual(result.Cess, 1200) {
			t.Fatalf("expected cess 1200, got %v", result.Cess)
		}
		if !almostEqual(result.FinalTax, 31200) {
			t.Fatalf("expected final tax 31200, got %v", result.FinalTax)
		}
		if len(result.Breakdown) != 3 {
			t.Fatalf("expected 3 slabs in breakdown, got %d", len(result.Breakdown))
		}
	})

	t.Run("income in the unbounded slab", func(t *testing.T) {
		result, err := ComputeIncomeTax(2000000, newRegime)
		if err != nil {
			t.Fatal(err)
		}
		// 15000 + 30000 + 45000 + 60000 + 150000 on the 5L above 15L.
		if !almostEqual(result.TotalTax, 300000) {
			t.Fatalf("expected total tax 300000, got %v", result.TotalTax)
		}
	})

	t.Run("non-positive income yields zero tax", func(t *testing.T) {
		for _, income := range []float64{0, -50000} {
			result, err := ComputeIncomeTax(income, newRegime)
			if err != nil {
				t.Fatal(err)
			}
			if result.FinalTax != 0 || result.TotalTax != 0 {
				t.Fatalf("income %v: expected zero tax, got %+v", income, result)
			}
			if len(result.Breakdown) != 0 {
				t.Fatalf("income %v: expected empty breakdown", income)
			}
		}
	})

	t.Run("tax is monotonic in income", func(t *testing.T) {
		prev := 0.0
		for income := 0.0; income <= 3000000; income += 50000 {
			result, err := ComputeIncomeTax(income, newRegime)
			if err != nil {
				t.Fatal(err)
			}
			if result.FinalTax < prev {
				t.Fatalf("tax decreased at income %v: %v < %v", income, result.FinalTax, prev)
			}
			prev = result.FinalTax
		}
	})

	t.Run("per-slab taxable amounts cover the income", func(t *testing.T) {
		income := 1100000.0
		result, err := ComputeIncomeTax(income, newRegime)
		if err != nil {
			t.Fatal(err)
		}
		// Recover each slab's taxable amount from its tax and rate; the 0%
		// slab contributes its full width.
		taxable := 300000.0
		for _, st := range result.Breakdown[1:] {
			taxable += st.Tax * 100 / st.RatePercent
		}
		if !almostEqual(taxable, income) {
			t.Fatalf("slab amounts sum to %v, expected %v", taxable, income)
		}
	})

	t.Run("invalid table is rejected", func(t *testing.T) {
		bad := types.SlabTable{{UpTo: 500000, RatePercent: 5}, {UpTo: 250000, RatePercent: 20}}
		if _, err := ComputeIncomeTax(100000, bad); !errors.Is(err, types.ErrSlabOrder) {
			t.Fatalf("expected ErrSlabOrder, got %v", err)
		}
	})
}

func TestComputeGST(t *testing.T) {
	table := types.GSTTable{"nil": 0, "low": 5, "medium": 12, "standard": 18, "high": 28}

	t.Run("standard rate splits evenly", func(t *testing.T) {
		result, err := ComputeGST(1000, "standard", table)
		if err != nil {
			t.Fatal(err)
		}
		if !almostEqual(result.CGST, 90) || !almostEqual(result.SGST, 90) {
			t.Fatalf("expected 90/90 split, got %v/%v", result.CGST, result.SGST)
		}
		if !almostEqual(result.TotalGST, 180) {
			t.Fatalf("expected total 180, got %v", result.TotalGST)
		}
		if !almostEqual(result.FinalAmount, 1180) {
			t.Fatalf("expected final amount 1180, got %v", result.FinalAmount)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		if _, err := ComputeGST(1000, "luxury", table); !errors.Is(err, types.ErrUnknownCategory) {
			t.Fatalf("expected ErrUnknownCategory, got %v", err)
		}
	})
}
