// Package invest implements compounding investment projections: compound
// interest, fixed deposits, iterative annual-contribution accounts, the
// monthly-contribution annuity-due, and the blended two-bucket pension
// projection that delegates into it.
package invest

import (
	"math"

	"github.com/dukaforge/fincalc/pkg/types"
)

// EquityRatioCap is the highest equity allocation the blended pension
// projection accepts, in percent.
const EquityRatioCap = 75.0

// CompoundResult is the outcome of a compound-interest computation.
type CompoundResult struct {
	Principal      float64 `json:"principal"`
	RatePercent    float64 `json:"rate"`
	Years          float64 `json:"years"`
	Compounds      int     `json:"compounds_per_year"`
	Amount         float64 `json:"amount"`
	InterestEarned float64 `json:"interest_earned"`
}

// CompoundInterest grows the principal at the annual rate compounded the
// given number of times per year.
func CompoundInterest(principal, ratePercent, years float64, compoundsPerYear int) (*CompoundResult, error) {
	if principal <= 0 || years <= 0 || ratePercent < 0 || compoundsPerYear < 1 {
		return nil, types.ErrInvestDomain
	}
	n := float64(compoundsPerYear)
	amount := principal * math.Pow(1+ratePercent/100/n, n*years)
	return &CompoundResult{
		Principal:      principal,
		RatePercent:    ratePercent,
		Years:          years,
		Compounds:      compoundsPerYear,
		Amount:         amount,
		InterestEarned: amount - principal,
	}, nil
}

// FixedDeposit is the annual-compounding special case of CompoundInterest.
func FixedDeposit(principal, ratePercent, years float64) (*CompoundResult, error) {
	return CompoundInterest(principal, ratePercent, years, 1)
}

// YearRow is one year of an annual-contribution projection.
type YearRow struct {
	Year       int     `json:"year"`
	Investment float64 `json:"investment"`
	Interest   float64 `json:"interest"`
	Balance    float64 `json:"balance"`
}

// AnnualResult is the outcome of an annual-contribution projection.
type AnnualResult struct {
	YearlyAmount    float64   `json:"yearly_amount"`
	RatePercent     float64   `json:"rate"`
	Years           int       `json:"years"`
	TotalInvestment float64   `json:"total_investment"`
	FinalBalance    float64   `json:"final_balance"`
	TotalInterest   float64   `json:"total_interest"`
	Breakdown       []YearRow `json:"breakdown"`
}

// AnnualContributionProjection simulates an account (a provident fund, for
// example) year by year: interest accrues on the balance carried into the
// year, then the year's contribution is added. The year's own contribution
// earns nothing until the following year, so this is not the closed-form
// annuity.
func AnnualContributionProjection(yearlyAmount, ratePercent float64, years int) (*AnnualResult, error) {
	if yearlyAmount <= 0 || years <= 0 || ratePercent < 0 {
		return nil, types.ErrInvestDomain
	}

	result := &AnnualResult{
		YearlyAmount:    yearlyAmount,
		RatePercent:     ratePercent,
		Years:           years,
		TotalInvestment: yearlyAmount * float64(years),
		Breakdown:       make([]YearRow, 0, years),
	}

	balance := 0.0
	for year := 1; year <= years; year++ {
		interest := balance * ratePercent / 100
		balance += yearlyAmount + interest
		result.Breakdown = append(result.Breakdown, YearRow{
			Year:       year,
			Investment: yearlyAmount,
			Interest:   interest,
			Balance:    balance,
		})
	}

	result.FinalBalance = balance
	result.TotalInterest = balance - result.TotalInvestment
	return result, nil
}

// MonthlyResult is the outcome of a monthly-contribution future value.
type MonthlyResult struct {
	MonthlyAmount   float64 `json:"monthly_amount"`
	RatePercent     float64 `json:"rate"`
	Years           float64 `json:"years"`
	TotalInvestment float64 `json:"total_investment"`
	FinalAmount     float64 `json:"final_amount"`
	WealthGained    float64 `json:"wealth_gained"`
}

// MonthlyContributionFutureValue returns the annuity-due future value of a
// fixed monthly contribution compounded monthly at the annual rate. A zero
// rate is a valid input and degenerates to pure accumulation.
func MonthlyContributionFutureValue(monthlyAmount, annualRatePercent, years float64) (*MonthlyResult, error) {
	if monthlyAmount < 0 || years <= 0 || annualRatePercent < 0 {
		return nil, types.ErrInvestDomain
	}

	r := annualRatePercent / 1200
	n := years * 12

	var amount float64
	if r == 0 {
		amount = monthlyAmount * n
	} else {
		amount = monthlyAmount * ((1 + r) * (math.Pow(1+r, n) - 1) / r)
	}

	invested := monthlyAmount * n
	return &MonthlyResult{
		MonthlyAmount:   monthlyAmount,
		RatePercent:     annualRatePercent,
		Years:           years,
		TotalInvestment: invested,
		FinalAmount:     amount,
		WealthGained:    amount - invested,
	}, nil
}

// BlendedResult is the outcome of a blended pension projection.
type BlendedResult struct {
	MonthlyAmount      float64 `json:"monthly_amount"`
	EquityRatioPercent float64 `json:"equity_ratio"`
	DebtRatioPercent   float64 `json:"debt_ratio"`
	Years              float64 `json:"years"`
	TotalInvestment    float64 `json:"total_investment"`
	EquityComponent    float64 `json:"equity_component"`
	DebtComponent      float64 `json:"debt_component"`
	FinalAmount        float64 `json:"final_amount"`
	WealthGained       float64 `json:"wealth_gained"`
}

// BlendedPensionProjection splits the monthly contribution into an equity
// bucket and a debt bucket by the given ratio, grows each independently via
// MonthlyContributionFutureValue, and sums the two maturities. The equity
// ratio is capped at EquityRatioCap percent; outside [0, cap] the
// projection fails with ErrEquityRatio.
func BlendedPensionProjection(monthlyAmount, equityRatioPercent, equityReturn, debtReturn, years float64) (*BlendedResult, error) {
	if equityRatioPercent < 0 || equityRatioPercent > EquityRatioCap {
		return nil, types.ErrEquityRatio
	}
	if monthlyAmount <= 0 || years <= 0 {
		return nil, types.ErrInvestDomain
	}

	debtRatio := 100 - equityRatioPercent
	equity, err := MonthlyContributionFutureValue(monthlyAmount*equityRatioPercent/100, equityReturn, years)
	if err != nil {
		return nil, err
	}
	debt, err := MonthlyContributionFutureValue(monthlyAmount*debtRatio/100, debtReturn, years)
	if err != nil {
		return nil, err
	}

	final := equity.FinalAmount + debt.FinalAmount
	invested := monthlyAmount * 12 * years
	return &BlendedResult{
		MonthlyAmount:      monthlyAmount,
		EquityRatioPercent: equityRatioPercent,
		DebtRatioPercent:   debtRatio,
		Years:              years,
		TotalInvestment:    invested,
		EquityComponent:    equity.FinalAmount,
		DebtComponent:      debt.FinalAmount,
		FinalAmount:        final,
		WealthGained:       final - invested,
	}, nil
}
