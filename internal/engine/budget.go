package engine

import "github.com/hearthbudget/hearth/internal/model"

// ComputePerson derives one person's full budget breakdown from their
// profile and an already-resolved rent share.
//
// Debt is never a direct input: it is whatever income remains after
// every other category is funded, floored at zero. When the named
// categories consume income exactly, the seven totals conserve income
// to the cent.
//
// The only error path is an invalid pay period, which sanitized input
// cannot produce.
func ComputePerson(p model.Person, rentShare float64) (model.Breakdown, error) {
	income, err := MonthlyIncome(Average(p.Paychecks), p.PayPeriod)
	if err != nil {
		return model.Breakdown{}, err
	}

	b := model.Breakdown{
		MonthlyIncome: income,
		Rent:          RoundCents(ClampAmount(rentShare)),
		Bills:         RoundCents(p.BillsTotal()),
		Groceries:     RoundCents(ClampAmount(p.Groceries)),
		Gas:           RoundCents(ClampAmount(p.Gas)),
		Savings:       RoundCents(income * Clamp01(p.SavingsRate)),
		Wants:         RoundCents(income * Clamp01(p.WantsRate)),
	}

	allocated := b.Rent + b.Bills + b.Groceries + b.Gas + b.Savings + b.Wants
	if residual := income - allocated; residual > 0 {
		b.Debt = RoundCents(residual)
	}

	// max(income, 1) guards the zero-income division; percentages of a
	// zero income are reported as 0, not an error.
	divisor := income
	if divisor < 1 {
		divisor = 1
	}
	b.Percent = make(map[model.Category]float64, len(model.Categories))
	for _, c := range model.Categories {
		b.Percent[c] = roundPercent(b.Amount(c) / divisor * 100)
	}

	if income > 0 {
		b.NeedsPercent = roundPercent((b.Rent + b.Bills + b.Groceries + b.Gas) / income * 100)
		b.WantsPercent = roundPercent(b.Wants / income * 100)
		b.SavingsDebtPercent = roundPercent((b.Savings + b.Debt) / income * 100)
	}

	return b, nil
}
