package service

import (
	"math"

	"gcc-tools/domain"
)

// amount reads a form value. Negative, NaN and infinite inputs count as 0.
func amount(n domain.Number) float64 {
	v := n.Float()
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// checkFinite fails with ErrResultOutOfRange when any computed figure
// overflowed to an infinity or NaN.
func checkFinite(values ...float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return domain.ErrResultOutOfRange
		}
	}
	return nil
}

// roundTo2Decimals rounds a float64 to 2 decimals
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}
