// Package model defines domain types for hearth households and budgets.
package model

// PayPeriod is the recurrence pattern of a paycheck.
type PayPeriod string

const (
	Semimonthly PayPeriod = "semimonthly" // 2 checks per month
	Weekly      PayPeriod = "weekly"      // 52 checks per year
	Biweekly    PayPeriod = "biweekly"    // 26 checks per year
)

// Valid reports whether p is one of the known pay periods.
func (p PayPeriod) Valid() bool {
	switch p {
	case Semimonthly, Weekly, Biweekly:
		return true
	}
	return false
}

// RentMode selects which rent split policy is active.
type RentMode string

const (
	RentFair  RentMode = "fair"  // proportional to income
	RentEqual RentMode = "equal" // same amount per person
)

// Valid reports whether m is a known rent mode.
func (m RentMode) Valid() bool {
	return m == RentFair || m == RentEqual
}

// Bill is a named fixed monthly expense. Labels are display-only and
// not required to be unique.
type Bill struct {
	Label  string
	Amount float64
}

// Person holds one household member's validated financial inputs.
// All currency fields are non-negative by the time a Person exists;
// sanitation happens at the store boundary, never here.
type Person struct {
	ID   string
	Name string

	Paychecks []float64
	PayPeriod PayPeriod

	Bills     []Bill
	Groceries float64
	Gas       float64

	SavingsRate float64 // fraction of income, [0,1]
	WantsRate   float64 // fraction of income, [0,1]

	StartingDebt    float64
	StartingSavings float64
}

// BillsTotal returns the sum of all fixed bill amounts.
func (p Person) BillsTotal() float64 {
	var sum float64
	for _, b := range p.Bills {
		sum += b.Amount
	}
	return sum
}

// Household is the root document: shared rent plus every member's profile.
type Household struct {
	Rent     float64
	RentMode RentMode
	People   []Person
}

// Clone returns a deep copy, safe to hand to another goroutine.
func (h *Household) Clone() *Household {
	cp := &Household{Rent: h.Rent, RentMode: h.RentMode}
	cp.People = make([]Person, len(h.People))
	for i, p := range h.People {
		p.Paychecks = append([]float64(nil), p.Paychecks...)
		p.Bills = append([]Bill(nil), p.Bills...)
		cp.People[i] = p
	}
	return cp
}
