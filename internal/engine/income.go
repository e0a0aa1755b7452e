package engine

import (
	"fmt"

	"github.com/hearthbudget/hearth/internal/model"
)

// Paycheck-to-month conversion factors per pay period.
const (
	semimonthlyFactor = 2.0
	weeklyFactor      = 52.0 / 12.0
	biweeklyFactor    = 26.0 / 12.0
)

// Average returns the arithmetic mean of the paycheck amounts.
// Negative or non-finite entries count as 0; an empty slice averages to 0.
func Average(paychecks []float64) float64 {
	if len(paychecks) == 0 {
		return 0
	}
	var sum float64
	for _, p := range paychecks {
		sum += ClampAmount(p)
	}
	return sum / float64(len(paychecks))
}

// MonthlyIncome converts an average paycheck into a monthly figure,
// rounded to cents. An unknown pay period is a programmer error: store
// sanitation guarantees a valid period, so this path is unreachable
// through sanctioned input.
func MonthlyIncome(avgPaycheck float64, period model.PayPeriod) (float64, error) {
	avg := ClampAmount(avgPaycheck)
	switch period {
	case model.Semimonthly:
		return RoundCents(avg * semimonthlyFactor), nil
	case model.Weekly:
		return RoundCents(avg * weeklyFactor), nil
	case model.Biweekly:
		return RoundCents(avg * biweeklyFactor), nil
	}
	return 0, fmt.Errorf("unsupported pay period %q", period)
}
