// Package mathops implements the primitive arithmetic operations of the
// calculator: stateless pure functions over float64 with domain-error
// checks on division, roots, logarithms, and factorials.
package mathops

import (
	"math"

	"github.com/dukaforge/fincalc/pkg/types"
)

// Add returns the sum of its arguments. Add() is 0.
func Add(xs ...float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum
}

// Subtract returns x - y.
func Subtract(x, y float64) float64 {
	return x - y
}

// Multiply returns the product of its arguments. Multiply() is 1.
func Multiply(xs ...float64) float64 {
	product := 1.0
	for _, x := range xs {
		product *= x
	}
	return product
}

// Divide returns x / y. Returns ErrDivideByZero when y == 0.
func Divide(x, y float64) (float64, error) {
	if y == 0 {
		return 0, types.ErrDivideByZero
	}
	return x / y, nil
}

// Power returns x raised to y.
func Power(x, y float64) float64 {
	return math.Pow(x, y)
}

// SquareRoot returns the square root of x.
// Returns ErrNegativeRoot when x < 0.
func SquareRoot(x float64) (float64, error) {
	return Root(x, 2)
}

// Root returns the nth root of x. An even root of a negative number has no
// real result and returns ErrNegativeRoot; odd roots of negatives are real
// and computed on the magnitude with the sign restored.
func Root(x, n float64) (float64, error) {
	if n == 0 {
		return 0, types.ErrDivideByZero
	}
	if x < 0 {
		if math.Mod(n, 2) == 0 {
			return 0, types.ErrNegativeRoot
		}
		return -math.Pow(-x, 1/n), nil
	}
	return math.Pow(x, 1/n), nil
}

// Log returns the logarithm of x in the given base. The argument must be
// positive and the base must be positive and not 1; otherwise ErrLogDomain.
func Log(x, base float64) (float64, error) {
	if x <= 0 || base <= 0 || base == 1 {
		return 0, types.ErrLogDomain
	}
	return math.Log(x) / math.Log(base), nil
}

// factorialMax is the largest n whose factorial fits in a uint64.
const factorialMax = 20

// Factorial returns n!. Factorial(0) is 1. Returns ErrFactorialDomain for
// negative n and ErrFactorialRange for n > 20, where the result no longer
// fits in 64 bits.
func Factorial(n int) (uint64, error) {
	if n < 0 {
		return 0, types.ErrFactorialDomain
	}
	if n > factorialMax {
		return 0, types.ErrFactorialRange
	}
	result := uint64(1)
	for i := 2; i <= n; i++ {
		result *= uint64(i)
	}
	return result, nil
}

// Percent returns x percent of y.
func Percent(x, y float64) float64 {
	return x * y / 100
}
