// Package engine implements the pure budget computation core: income
// normalization, rent splitting, category allocation, debt payoff
// scheduling, and savings projection. Every function is a stateless
// transformation of validated inputs; nothing here touches storage,
// config, or the terminal.
package engine

import "math"

// RoundCents rounds to two decimal places, half-up, the usual currency
// convention. Non-finite input rounds to 0 so a single bad intermediate
// can never poison a whole series.
func RoundCents(amount float64) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}
	return math.Floor(amount*100+0.5) / 100
}

// ClampAmount maps any non-finite or negative value to 0. Currency
// inputs pass through this before arithmetic.
func ClampAmount(amount float64) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return 0
	}
	return amount
}

// Clamp01 restricts a rate slider to [0, 1]. Non-finite values clamp to 0.
func Clamp01(rate float64) float64 {
	if math.IsNaN(rate) || rate < 0 {
		return 0
	}
	if rate > 1 {
		return 1
	}
	return rate
}

// roundPercent rounds a percentage to two decimals and caps it at 100.
// The cap guards float drift, not a semantic limit.
func roundPercent(pct float64) float64 {
	pct = RoundCents(pct)
	if pct > 100 {
		return 100
	}
	return pct
}
