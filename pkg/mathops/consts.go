package mathops

import "math"

// Named constants exposed by the calculator shell.
const (
	Pi              = math.Pi
	E               = math.E
	SpeedOfLight    = 299792458.0 // m/s
	StandardGravity = 9.80665     // m/s²
)

// GoldenRatio is (1 + √5) / 2.
var GoldenRatio = (1 + math.Sqrt(5)) / 2

// Constants returns the named constants keyed by their display symbol.
func Constants() map[string]float64 {
	return map[string]float64{
		"pi":  Pi,
		"e":   E,
		"phi": GoldenRatio,
		"c":   SpeedOfLight,
		"g":   StandardGravity,
	}
}
