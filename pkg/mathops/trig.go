package mathops

import (
	"math"

	"github.com/dukaforge/fincalc/pkg/types"
)

// Angle identifies the unit an angle argument is expressed in.
type Angle int

// Recognized angle units.
const (
	Degrees Angle = iota
	Radians
)

// ParseAngle maps the user-facing unit names to an Angle.
// Returns ErrUnknownAngleUnit for anything else.
func ParseAngle(s string) (Angle, error) {
	switch s {
	case "deg", "degrees":
		return Degrees, nil
	case "rad", "radians":
		return Radians, nil
	default:
		return 0, types.ErrUnknownAngleUnit
	}
}

// toRadians normalizes an angle to radians.
func toRadians(x float64, unit Angle) float64 {
	if unit == Degrees {
		return x * math.Pi / 180
	}
	return x
}

// Sin returns the sine of the angle.
func Sin(x float64, unit Angle) float64 {
	return math.Sin(toRadians(x, unit))
}

// Cos returns the cosine of the angle.
func Cos(x float64, unit Angle) float64 {
	return math.Cos(toRadians(x, unit))
}

// Tan returns the tangent of the angle. Near the asymptote (90°, 270°, ...)
// the result is whatever the float representation yields, a very large
// magnitude rather than an error.
func Tan(x float64, unit Angle) float64 {
	return math.Tan(toRadians(x, unit))
}
