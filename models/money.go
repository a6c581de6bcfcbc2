package models

import (
	"math"

	"github.com/shopspring/decimal"
)

// RoundMoney rounds v to 2 decimal places, half away from zero.
// Rounding works on the shortest decimal representation of v, so 1000.005 becomes 1000.01.
func RoundMoney(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
