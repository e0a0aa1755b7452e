package engine

// Rent affordability guideline: rent at or under 30% of monthly income.
const affordabilityRate = 0.30

// RentShare holds both split policies for one person, so callers can
// render a comparison table regardless of which mode is active.
type RentShare struct {
	Income float64
	Fair   float64 // rent * income / totalIncome
	Equal  float64 // rent / personCount
	Cap    float64 // 30% affordability guideline
}

// RentSplit is the full rent allocation across a household.
type RentSplit struct {
	Rent       float64
	Shares     []RentShare
	CapTotal   float64
	Affordable bool // rent <= sum of 30% caps
}

// SplitRent allocates rent across the given monthly incomes under both
// policies. When total income is zero the fair split degrades to an
// equal split; a zero-person household is treated as one person so the
// arithmetic stays total. The affordability verdict is a guideline only,
// it never blocks anything.
func SplitRent(incomes []float64, rent float64) RentSplit {
	rent = ClampAmount(rent)
	count := len(incomes)
	if count < 1 {
		count = 1
	}
	equal := RoundCents(rent / float64(count))

	var total float64
	for _, inc := range incomes {
		total += ClampAmount(inc)
	}

	split := RentSplit{Rent: rent, Shares: make([]RentShare, 0, len(incomes))}
	for _, inc := range incomes {
		inc = ClampAmount(inc)
		fair := equal
		if total > 0 {
			fair = RoundCents(rent * inc / total)
		}
		cap := RoundCents(inc * affordabilityRate)
		split.CapTotal = RoundCents(split.CapTotal + cap)
		split.Shares = append(split.Shares, RentShare{
			Income: inc,
			Fair:   fair,
			Equal:  equal,
			Cap:    cap,
		})
	}

	split.Affordable = rent <= split.CapTotal
	return split
}
