package engine

// SavingsPoint is one entry in a savings projection, months numbered
// from 1. The starting balance itself is never emitted as a point.
type SavingsPoint struct {
	Month   int
	Balance float64
}

// Project builds a month-by-month savings series over the given horizon.
// Each month adds monthlySavings; once the payoff schedule says the debt
// is retired, the freed debt payment is redirected into savings for the
// rest of the horizon (the snowball). With Months == 0 the contribution
// folds in from month 1: there is nothing to wait for.
//
// Caller contract: monthlySavings and debtContribution are disjoint
// allocations (the budget allocator produces them as separate totals),
// otherwise the fold-in would double-count.
func Project(startingSavings, monthlySavings float64, months int, debtContribution float64, payoff Schedule) []SavingsPoint {
	balance := ClampAmount(startingSavings)
	monthly := ClampAmount(monthlySavings)
	contribution := ClampAmount(debtContribution)

	if months <= 0 {
		return nil
	}

	points := make([]SavingsPoint, 0, months)
	for m := 1; m <= months; m++ {
		balance = RoundCents(balance + monthly)
		if !payoff.Never() && contribution > 0 && m > payoff.Months {
			balance = RoundCents(balance + contribution)
		}
		points = append(points, SavingsPoint{Month: m, Balance: balance})
	}
	return points
}
