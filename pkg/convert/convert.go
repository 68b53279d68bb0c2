// Package convert implements unit and currency conversion. Length and
// weight use a canonical base-unit factor table (meters, kilograms), which
// makes every same-dimension conversion exact and invertible. Temperature
// and currency use explicit pairwise tables: only pairs that are
// registered convert, nothing is derived.
package convert

import (
	"fmt"
	"sort"

	"github.com/dukaforge/fincalc/pkg/types"
)

// lengthFactors expresses each length unit in meters.
var lengthFactors = map[string]float64{
	"km": 1000,
	"m":  1,
	"cm": 0.01,
	"mm": 0.001,
	"mi": 1609.344,
	"yd": 0.9144,
	"ft": 0.3048,
	"in": 0.0254,
}

// weightFactors expresses each weight unit in kilograms.
var weightFactors = map[string]float64{
	"kg": 1,
	"g":  0.001,
	"mg": 0.000001,
	"lb": 0.45359237,
	"oz": 0.028349523125,
}

// convertByFactor converts through the canonical base unit:
// v * factor[from] / factor[to].
func convertByFactor(value float64, from, to string, factors map[string]float64) (float64, error) {
	ff, ok := factors[from]
	if !ok {
		return 0, fmt.Errorf("%w: %q", types.ErrUnknownUnit, from)
	}
	tf, ok := factors[to]
	if !ok {
		return 0, fmt.Errorf("%w: %q", types.ErrUnknownUnit, to)
	}
	return value * ff / tf, nil
}

// Length converts a value between length units.
func Length(value float64, from, to string) (float64, error) {
	return convertByFactor(value, from, to, lengthFactors)
}

// Weight converts a value between weight units.
func Weight(value float64, from, to string) (float64, error) {
	return convertByFactor(value, from, to, weightFactors)
}

// LengthUnits returns the registered length unit symbols, sorted.
func LengthUnits() []string { return sortedKeys(lengthFactors) }

// WeightUnits returns the registered weight unit symbols, sorted.
func WeightUnits() []string { return sortedKeys(weightFactors) }

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Currency converts an amount using the forex table. Identity when the
// currencies match; otherwise only the exact (from, to) pair converts.
// No cross rate is derived even when both legs are individually known.
func Currency(amount float64, from, to string, table types.ForexTable) (float64, float64, error) {
	if from == to {
		return amount, 1, nil
	}
	rate, ok := table[types.CurrencyPair{From: from, To: to}]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %s to %s", types.ErrUnknownPair, from, to)
	}
	return amount * rate, rate, nil
}
