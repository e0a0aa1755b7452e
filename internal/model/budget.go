package model

// Category identifies one budget allocation bucket.
type Category string

const (
	CategoryRent      Category = "rent"
	CategoryBills     Category = "bills"
	CategoryGroceries Category = "groceries"
	CategoryGas       Category = "gas"
	CategorySavings   Category = "savings"
	CategoryWants     Category = "wants"
	CategoryDebt      Category = "debt"
)

// Categories lists all buckets in display order.
var Categories = []Category{
	CategoryRent, CategoryBills, CategoryGroceries, CategoryGas,
	CategorySavings, CategoryWants, CategoryDebt,
}

// Breakdown is one person's complete monthly budget allocation.
// It is a transient computation result: derived from a Person plus a
// resolved rent share, recomputed on every input change, never persisted.
type Breakdown struct {
	MonthlyIncome float64

	Rent      float64
	Bills     float64
	Groceries float64
	Gas       float64
	Savings   float64
	Wants     float64
	Debt      float64 // snowball residual, never negative

	// Percent maps each category to its share of income, 0-100 with
	// two decimal places, capped at 100.
	Percent map[Category]float64

	NeedsPercent       float64 // rent + bills + groceries + gas
	WantsPercent       float64
	SavingsDebtPercent float64
}

// Amount returns the allocated total for the given category.
func (b Breakdown) Amount(c Category) float64 {
	switch c {
	case CategoryRent:
		return b.Rent
	case CategoryBills:
		return b.Bills
	case CategoryGroceries:
		return b.Groceries
	case CategoryGas:
		return b.Gas
	case CategorySavings:
		return b.Savings
	case CategoryWants:
		return b.Wants
	case CategoryDebt:
		return b.Debt
	}
	return 0
}
