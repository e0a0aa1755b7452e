// Package plan orchestrates the engine across a whole household:
// normalize each income, resolve rent shares, allocate budgets, and
// project debt and savings. Like the engine itself it is pure; callers
// rebuild the plan from the household on every input change.
package plan

import (
	"fmt"

	"github.com/hearthbudget/hearth/internal/engine"
	"github.com/hearthbudget/hearth/internal/model"
)

// PersonPlan bundles every derived result for one household member.
type PersonPlan struct {
	Person    model.Person
	Breakdown model.Breakdown
	Share     engine.RentShare
	Payoff    engine.Schedule
	Savings   []engine.SavingsPoint
}

// ActiveShare returns the share amount under the household's active mode.
func (pp PersonPlan) ActiveShare(mode model.RentMode) float64 {
	if mode == model.RentEqual {
		return pp.Share.Equal
	}
	return pp.Share.Fair
}

// Plan is a complete recomputed budget for the household.
type Plan struct {
	Household *model.Household
	Months    int
	Split     engine.RentSplit
	People    []PersonPlan

	TotalIncome float64
	TotalDebt   float64
}

// Build derives the full plan over the given projection horizon.
// The only error path is an invalid pay period, unreachable when the
// household came through a store.
func Build(h *model.Household, months int) (*Plan, error) {
	incomes := make([]float64, len(h.People))
	for i, p := range h.People {
		income, err := engine.MonthlyIncome(engine.Average(p.Paychecks), p.PayPeriod)
		if err != nil {
			return nil, fmt.Errorf("person %q: %w", p.Name, err)
		}
		incomes[i] = income
	}

	pl := &Plan{
		Household: h,
		Months:    months,
		Split:     engine.SplitRent(incomes, h.Rent),
	}

	for i, p := range h.People {
		share := pl.Split.Shares[i]
		active := share.Fair
		if h.RentMode == model.RentEqual {
			active = share.Equal
		}

		breakdown, err := engine.ComputePerson(p, active)
		if err != nil {
			return nil, fmt.Errorf("person %q: %w", p.Name, err)
		}

		payoff := engine.Payoff(p.StartingDebt, breakdown.Debt)
		savings := engine.Project(p.StartingSavings, breakdown.Savings, months, breakdown.Debt, payoff)

		pl.People = append(pl.People, PersonPlan{
			Person:    p,
			Breakdown: breakdown,
			Share:     share,
			Payoff:    payoff,
			Savings:   savings,
		})

		pl.TotalIncome = engine.RoundCents(pl.TotalIncome + breakdown.MonthlyIncome)
		pl.TotalDebt = engine.RoundCents(pl.TotalDebt + p.StartingDebt)
	}

	return pl, nil
}
