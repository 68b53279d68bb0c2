// Package loan implements amortizing-loan computations: the equal monthly
// installment (EMI) and its interest/payment totals.
package loan

import (
	"math"

	"github.com/dukaforge/fincalc/pkg/types"
)

// EMIResult is the outcome of an EMI computation.
type EMIResult struct {
	Principal     float64 `json:"principal"`
	RatePercent   float64 `json:"rate"`
	TenureYears   float64 `json:"tenure_years"`
	EMI           float64 `json:"emi"`
	TotalInterest float64 `json:"total_interest"`
	TotalPayment  float64 `json:"total_payment"`
}

// ComputeEMI returns the equal monthly installment that amortizes the
// principal to zero over the tenure at the given annual percentage rate.
// A zero rate is a valid input and degenerates to linear repayment,
// principal divided by the number of payments.
func ComputeEMI(principal, annualRatePercent, tenureYears float64) (*EMIResult, error) {
	if principal <= 0 || tenureYears <= 0 || annualRatePercent < 0 {
		return nil, types.ErrLoanDomain
	}

	monthlyRate := annualRatePercent / 1200
	numPayments := tenureYears * 12

	var emi float64
	if monthlyRate == 0 {
		emi = principal / numPayments
	} else {
		growth := math.Pow(1+monthlyRate, numPayments)
		emi = principal * monthlyRate * growth / (growth - 1)
	}

	total := emi * numPayments
	return &EMIResult{
		Principal:     principal,
		RatePercent:   annualRatePercent,
		TenureYears:   tenureYears,
		EMI:           emi,
		TotalInterest: total - principal,
		TotalPayment:  total,
	}, nil
}
