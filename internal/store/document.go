package store

import (
	"fmt"
	"math"

	"github.com/hearthbudget/hearth/internal/model"
)

// Document is the persisted household schema. Every field is validated
// independently on load against the same clamp rules as live input;
// a document that cannot be parsed at all falls back to the templates
// wholesale. Computed results are never part of this schema.
type Document struct {
	Rent     float64          `json:"rent"`
	RentMode string           `json:"rentMode"`
	People   []PersonDocument `json:"people"`
}

// PersonDocument is one member's persisted profile.
type PersonDocument struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Paychecks       []float64      `json:"paychecks"`
	PayPeriod       string         `json:"payPeriod"`
	Bills           []BillDocument `json:"bills"`
	Groceries       float64        `json:"groceries"`
	Gas             float64        `json:"gas"`
	SavingsRate     float64        `json:"savingsRate"`
	WantsRate       float64        `json:"wantsRate"`
	StartingDebt    float64        `json:"startingDebt"`
	StartingSavings float64        `json:"startingSavings"`
}

// BillDocument is one persisted bill line item.
type BillDocument struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// Substitution records one field-level repair made during sanitation.
// Callers log these rather than failing the load: the domain favors
// graceful degradation over rejecting input.
type Substitution struct {
	Field  string
	Reason string
}

// Sanitize validates every field of the document and returns a clean
// Household plus the list of substitutions applied. It never fails.
func Sanitize(doc Document) (*model.Household, []Substitution) {
	var subs []Substitution

	h := &model.Household{
		Rent:     sanitizeAmount(doc.Rent, "rent", &subs),
		RentMode: model.RentMode(doc.RentMode),
	}
	if !h.RentMode.Valid() {
		subs = append(subs, Substitution{
			Field:  "rentMode",
			Reason: fmt.Sprintf("unknown mode %q, using fair", doc.RentMode),
		})
		h.RentMode = model.RentFair
	}

	for i, pd := range doc.People {
		h.People = append(h.People, sanitizePerson(pd, i, &subs))
	}
	return h, subs
}

func sanitizePerson(pd PersonDocument, idx int, subs *[]Substitution) model.Person {
	field := func(name string) string { return fmt.Sprintf("people[%d].%s", idx, name) }

	p := model.Person{
		ID:              pd.ID,
		Name:            pd.Name,
		PayPeriod:       model.PayPeriod(pd.PayPeriod),
		Groceries:       sanitizeAmount(pd.Groceries, field("groceries"), subs),
		Gas:             sanitizeAmount(pd.Gas, field("gas"), subs),
		SavingsRate:     sanitizeRate(pd.SavingsRate, field("savingsRate"), subs),
		WantsRate:       sanitizeRate(pd.WantsRate, field("wantsRate"), subs),
		StartingDebt:    sanitizeAmount(pd.StartingDebt, field("startingDebt"), subs),
		StartingSavings: sanitizeAmount(pd.StartingSavings, field("startingSavings"), subs),
	}

	if p.Name == "" {
		p.Name = fmt.Sprintf("Person %d", idx+1)
		*subs = append(*subs, Substitution{Field: field("name"), Reason: "empty name"})
	}
	if !p.PayPeriod.Valid() {
		*subs = append(*subs, Substitution{
			Field:  field("payPeriod"),
			Reason: fmt.Sprintf("unknown period %q, using semimonthly", pd.PayPeriod),
		})
		p.PayPeriod = model.Semimonthly
	}

	for j, amt := range pd.Paychecks {
		p.Paychecks = append(p.Paychecks,
			sanitizeAmount(amt, field(fmt.Sprintf("paychecks[%d]", j)), subs))
	}
	for j, bd := range pd.Bills {
		label := bd.Label
		if label == "" {
			label = fmt.Sprintf("Bill %d", j+1)
		}
		p.Bills = append(p.Bills, model.Bill{
			Label:  label,
			Amount: sanitizeAmount(bd.Amount, field(fmt.Sprintf("bills[%d].amount", j)), subs),
		})
	}
	return p
}

func sanitizeAmount(v float64, field string, subs *[]Substitution) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		*subs = append(*subs, Substitution{
			Field:  field,
			Reason: fmt.Sprintf("invalid amount %v, using 0", v),
		})
		return 0
	}
	return v
}

func sanitizeRate(v float64, field string, subs *[]Substitution) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > 1 {
		*subs = append(*subs, Substitution{
			Field:  field,
			Reason: fmt.Sprintf("rate %v outside [0,1], using 0", v),
		})
		return 0
	}
	return v
}

// FromHousehold converts a validated household back into document form.
func FromHousehold(h *model.Household) Document {
	doc := Document{
		Rent:     h.Rent,
		RentMode: string(h.RentMode),
	}
	for _, p := range h.People {
		pd := PersonDocument{
			ID:              p.ID,
			Name:            p.Name,
			Paychecks:       p.Paychecks,
			PayPeriod:       string(p.PayPeriod),
			Groceries:       p.Groceries,
			Gas:             p.Gas,
			SavingsRate:     p.SavingsRate,
			WantsRate:       p.WantsRate,
			StartingDebt:    p.StartingDebt,
			StartingSavings: p.StartingSavings,
		}
		for _, b := range p.Bills {
			pd.Bills = append(pd.Bills, BillDocument{Label: b.Label, Amount: b.Amount})
		}
		doc.People = append(doc.People, pd)
	}
	return doc
}

// TemplateHousehold is the wholesale fallback used when no document
// exists or the persisted one cannot be parsed: two starter profiles
// with plausible numbers the user edits in place.
func TemplateHousehold() *model.Household {
	return &model.Household{
		Rent:     1800,
		RentMode: model.RentFair,
		People: []model.Person{
			{
				Name:      "Avery",
				Paychecks: []float64{2342.97, 2342.97, 2342.97, 2342.97, 2342.97},
				PayPeriod: model.Semimonthly,
				Bills: []model.Bill{
					{Label: "Internet", Amount: 89.99},
					{Label: "Phone", Amount: 106.64},
					{Label: "Car Insurance", Amount: 260.00},
				},
				Groceries:       400,
				Gas:             120,
				SavingsRate:     0.2,
				WantsRate:       0.2,
				StartingDebt:    2500,
				StartingSavings: 500,
			},
			{
				Name:      "Rowan",
				Paychecks: []float64{1850, 1850, 1850, 1850},
				PayPeriod: model.Biweekly,
				Bills: []model.Bill{
					{Label: "Student Loan", Amount: 180},
					{Label: "Gym", Amount: 45},
				},
				Groceries:       350,
				Gas:             90,
				SavingsRate:     0.15,
				WantsRate:       0.25,
				StartingDebt:    12000,
				StartingSavings: 1200,
			},
		},
	}
}
