package convert

import (
	"fmt"

	"github.com/dukaforge/fincalc/pkg/types"
)

// TempUnit identifies a temperature scale.
type TempUnit int

// Recognized temperature scales.
const (
	Celsius TempUnit = iota
	Fahrenheit
	Kelvin
)

// String returns the display symbol for the scale.
func (u TempUnit) String() string {
	switch u {
	case Celsius:
		return "C"
	case Fahrenheit:
		return "F"
	case Kelvin:
		return "K"
	default:
		return "?"
	}
}

// ParseTempUnit maps a unit symbol to a TempUnit.
// Returns ErrUnknownUnit for anything else.
func ParseTempUnit(s string) (TempUnit, error) {
	switch s {
	case "C", "c", "celsius":
		return Celsius, nil
	case "F", "f", "fahrenheit":
		return Fahrenheit, nil
	case "K", "k", "kelvin":
		return Kelvin, nil
	default:
		return 0, fmt.Errorf("%w: %q", types.ErrUnknownUnit, s)
	}
}

// tempPair keys the explicit conversion table.
type tempPair struct {
	from, to TempUnit
}

// tempConversions holds the six registered conversions. Any pair not in
// this table (other than identity) is not convertible; a new scale needs
// its pairs added explicitly.
var tempConversions = map[tempPair]func(float64) float64{
	{Celsius, Fahrenheit}: func(x float64) float64 { return x*9/5 + 32 },
	{Fahrenheit, Celsius}: func(x float64) float64 { return (x - 32) * 5 / 9 },
	{Celsius, Kelvin}:     func(x float64) float64 { return x + 273.15 },
	{Kelvin, Celsius}:     func(x float64) float64 { return x - 273.15 },
	{Fahrenheit, Kelvin}:  func(x float64) float64 { return (x-32)*5/9 + 273.15 },
	{Kelvin, Fahrenheit}:  func(x float64) float64 { return (x-273.15)*9/5 + 32 },
}

// Temperature converts a value between temperature scales. Identity when
// from == to; ErrUnknownConversion for a pair with no registered function.
func Temperature(value float64, from, to TempUnit) (float64, error) {
	if from == to {
		return value, nil
	}
	f, ok := tempConversions[tempPair{from, to}]
	if !ok {
		return 0, fmt.Errorf("%w: %s to %s", types.ErrUnknownConversion, from, to)
	}
	return f(value), nil
}
