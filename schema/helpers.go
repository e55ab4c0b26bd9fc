package schema

import "math"

// RoundTwo rounds to two decimal places, half away from zero.
// Every percentage-valued metric in the engine passes through this.
func RoundTwo(v float64) float64 {
	return math.Round(v*100) / 100
}

// Percentage returns part/total*100 rounded to two decimals, and the
// documented neutral value 0 when total is zero.
func Percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return RoundTwo(float64(part) / float64(total) * 100)
}
