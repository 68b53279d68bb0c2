package invest

import (
	"errors"
	"math"
	"testing"

	"github.com/dukaforge/fincalc/pkg/types"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestCompoundInterest(t *testing.T) {
	t.Run("monthly compounding", func(t *testing.T) {
		result, err := CompoundInterest(10000, 12, 2, 12)
		if err != nil {
			t.Fatal(err)
		}
		want := 10000 * math.Pow(1.01, 24)
		if !almostEqual(result.Amount, want, 1e-6) {
			t.Fatalf("expected %v, got %v", want, result.Amount)
		}
		if !almostEqual(result.InterestEarned, want-10000, 1e-6) {
			t.Fatalf("interest earned mismatch: %v", result.InterestEarned)
		}
	})

	t.Run("zero rate returns the principal", func(t *testing.T) {
		result, err := CompoundInterest(10000, 0, 5, 12)
		if err != nil {
			t.Fatal(err)
		}
		if !almostEqual(result.Amount, 10000, 1e-9) {
			t.Fatalf("expected 10000, got %v", result.Amount)
		}
	})

	t.Run("invalid inputs", func(t *testing.T) {
		cases := []struct {
			p, r, y float64
			n       int
		}{
			{0, 5, 5, 12},
			{1000, -1, 5, 12},
			{1000, 5, 0, 12},
			{1000, 5, 5, 0},
		}
		for _, c := range cases {
			if _, err := CompoundInterest(c.p, c.r, c.y, c.n); !errors.Is(err, types.ErrInvestDomain) {
				t.Fatalf("expected ErrInvestDomain for %+v, got %v", c, err)
			}
		}
	})
}

func TestFixedDeposit(t *testing.T) {
	result, err := FixedDeposit(100000, 7, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := 100000 * math.Pow(1.07, 3)
	if !almostEqual(result.Amount, want, 1e-6) {
		t.Fatalf("expected maturity %v, got %v", want, result.Amount)
	}
}

func TestAnnualContributionProjection(t *testing.T) {
	t.Run("zero rate is pure accumulation", func(t *testing.T) {
		result, err := AnnualContributionProjection(1000, 0, 5)
		if err != nil {
			t.Fatal(err)
		}
		if !almostEqual(result.FinalBalance, 5000, 1e-9) {
			t.Fatalf("expected 5000, got %v", result.FinalBalance)
		}
		if !almostEqual(result.TotalInterest, 0, 1e-9) {
			t.Fatalf("expected zero interest, got %v", result.TotalInterest)
		}
	})

	t.Run("interest accrues before the year's contribution", func(t *testing.T) {
		result, err := AnnualContributionProjection(100000, 10, 3)
		if err != nil {
			t.Fatal(err)
		}
		// Year 1: 0 interest, balance 100000.
		// Year 2: 10000 interest, balance 210000.
		// Year 3: 21000 interest, balance 331000.
		if len(result.Breakdown) != 3 {
			t.Fatalf("expected 3 rows, got %d", len(result.Breakdown))
		}
		if !almostEqual(result.Breakdown[0].Interest, 0, 1e-9) {
			t.Fatalf("year 1 interest should be 0, got %v", result.Breakdown[0].Interest)
		}
		if !almostEqual(result.Breakdown[1].Interest, 10000, 1e-6) {
			t.Fatalf("year 2 interest should be 10000, got %v", result.Breakdown[1].Interest)
		}
		if !almostEqual(result.FinalBalance, 331000, 1e-6) {
			t.Fatalf("expected 331000, got %v", result.FinalBalance)
		}
	})

	t.Run("invalid inputs", func(t *testing.T) {
		if _, err := AnnualContributionProjection(0, 7, 15); !errors.Is(err, types.ErrInvestDomain) {
			t.Fatalf("expected ErrInvestDomain, got %v", err)
		}
		if _, err := AnnualContributionProjection(1000, 7, 0); !errors.Is(err, types.ErrInvestDomain) {
			t.Fatalf("expected ErrInvestDomain, got %v", err)
		}
	})
}

func TestMonthlyContributionFutureValue(t *testing.T) {
	t.Run("annuity-due closed form", func(t *testing.T) {
		result, err := MonthlyContributionFutureValue(5000, 12, 10)
		if err != nil {
			t.Fatal(err)
		}
		r := 0.01
		n := 120.0
		want := 5000 * ((1 + r) * (math.Pow(1+r, n) - 1) / r)
		if !almostEqual(result.FinalAmount, want, 1e-6) {
			t.Fatalf("expected %v, got %v", want, result.FinalAmount)
		}
		if !almostEqual(result.TotalInvestment, 600000, 1e-9) {
			t.Fatalf("expected invested 600000, got %v", result.TotalInvestment)
		}
		if !almostEqual(result.WealthGained, want-600000, 1e-6) {
			t.Fatalf("wealth gained mismatch: %v", result.WealthGained)
		}
	})

	t.Run("zero rate is pure accumulation", func(t *testing.T) {
		result, err := MonthlyContributionFutureValue(1000, 0, 2)
		if err != nil {
			t.Fatal(err)
		}
		if !almostEqual(result.FinalAmount, 24000, 1e-9) {
			t.Fatalf("expected 24000, got %v", result.FinalAmount)
		}
	})

	t.Run("invalid inputs", func(t *testing.T) {
		if _, err := MonthlyContributionFutureValue(-1, 12, 10); !errors.Is(err, types.ErrInvestDomain) {
			t.Fatalf("expected ErrInvestDomain, got %v", err)
		}
		if _, err := MonthlyContributionFutureValue(1000, 12, 0); !errors.Is(err, types.ErrInvestDomain) {
			t.Fatalf("expected ErrInvestDomain, got %v", err)
		}
	})
}

func TestBlendedPensionProjection(t *testing.T) {
	t.Run("sums the two buckets", func(t *testing.T) {
		result, err := BlendedPensionProjection(10000, 60, 12, 8, 20)
		if err != nil {
			t.Fatal(err)
		}
		equity, err := MonthlyContributionFutureValue(6000, 12, 20)
		if err != nil {
			t.Fatal(err)
		}
		debt, err := MonthlyContributionFutureValue(4000, 8, 20)
		if err != nil {
			t.Fatal(err)
		}
		if !almostEqual(result.FinalAmount, equity.FinalAmount+debt.FinalAmount, 1e-6) {
			t.Fatalf("expected %v, got %v", equity.FinalAmount+debt.FinalAmount, result.FinalAmount)
		}
		if !almostEqual(result.EquityComponent, equity.FinalAmount, 1e-6) {
			t.Fatalf("equity component mismatch")
		}
		if !almostEqual(result.DebtRatioPercent, 40, 1e-9) {
			t.Fatalf("expected debt ratio 40, got %v", result.DebtRatioPercent)
		}
	})

	t.Run("all-debt allocation is allowed", func(t *testing.T) {
		if _, err := BlendedPensionProjection(10000, 0, 12, 8, 20); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("equity ratio above the cap", func(t *testing.T) {
		if _, err := BlendedPensionProjection(10000, 80, 12, 8, 20); !errors.Is(err, types.ErrEquityRatio) {
			t.Fatalf("expected ErrEquityRatio, got %v", err)
		}
	})

	t.Run("negative equity ratio", func(t *testing.T) {
		if _, err := BlendedPensionProjection(10000, -5, 12, 8, 20); !errors.Is(err, types.ErrEquityRatio) {
			t.Fatalf("expected ErrEquityRatio, got %v", err)
		}
	})
}
