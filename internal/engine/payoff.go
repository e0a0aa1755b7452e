package engine

import "math"

// MonthsNever is the Schedule.Months sentinel for debt that never pays
// off at the given rate. Callers must render it specially ("never at
// this rate"), not treat it as a failure.
const MonthsNever = -1

// maxPayoffMonths caps the schedule at a century. Anything longer
// renders as never, and the cap bounds the series allocation.
const maxPayoffMonths = 1200

// DebtPoint is one entry in a payoff balance series.
type DebtPoint struct {
	Month   int
	Balance float64
}

// Schedule is the result of a debt payoff computation.
type Schedule struct {
	Months int         // months to zero, 0 if already debt-free, MonthsNever if unreachable
	Series []DebtPoint // month 0..Months inclusive; empty for the two degenerate cases
}

// Never reports whether the debt never reaches zero at this payment rate.
func (s Schedule) Never() bool {
	return s.Months == MonthsNever
}

// Payoff computes how long a fixed monthly payment takes to clear a debt
// balance, with a month-by-month series for charting. The final series
// entry is forced to exactly zero so rounding residue can't leave a
// chart terminating at a small positive epsilon. Debts that would take
// more than a century report MonthsNever.
func Payoff(startingDebt, monthlyPayment float64) Schedule {
	debt := ClampAmount(startingDebt)
	payment := ClampAmount(monthlyPayment)

	if debt <= 0 {
		return Schedule{Months: 0}
	}
	if payment <= 0 {
		return Schedule{Months: MonthsNever}
	}

	ratio := math.Ceil(debt / payment)
	if ratio > maxPayoffMonths {
		return Schedule{Months: MonthsNever}
	}

	months := int(ratio)
	series := make([]DebtPoint, 0, months+1)
	for m := 0; m <= months; m++ {
		balance := debt - payment*float64(m)
		if balance < 0 || m == months {
			balance = 0
		}
		series = append(series, DebtPoint{Month: m, Balance: RoundCents(balance)})
	}

	return Schedule{Months: months, Series: series}
}
