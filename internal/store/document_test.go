package store

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthbudget/hearth/internal/model"
)

func TestSanitizeCleanDocumentPassesThrough(t *testing.T) {
	doc := Document{
		Rent:     1500,
		RentMode: "equal",
		People: []PersonDocument{{
			Name:        "Avery",
			Paychecks:   []float64{2000, 2100},
			PayPeriod:   "biweekly",
			Bills:       []BillDocument{{Label: "Internet", Amount: 80}},
			Groceries:   300,
			Gas:         100,
			SavingsRate: 0.1,
			WantsRate:   0.2,
		}},
	}

	h, subs := Sanitize(doc)
	assert.Empty(t, subs, "clean document should need no repairs")
	assert.Equal(t, 1500.0, h.Rent)
	assert.Equal(t, model.RentEqual, h.RentMode)
	require.Len(t, h.People, 1)
	assert.Equal(t, model.Biweekly, h.People[0].PayPeriod)
	assert.Equal(t, []float64{2000, 2100}, h.People[0].Paychecks)
}

func TestSanitizeRepairsInvalidFields(t *testing.T) {
	doc := Document{
		Rent:     -200,
		RentMode: "split-by-vibes",
		People: []PersonDocument{{
			Name:        "",
			Paychecks:   []float64{1000, -50, math.NaN()},
			PayPeriod:   "quarterly",
			Groceries:   math.Inf(1),
			Gas:         -10,
			SavingsRate: 1.5,
			WantsRate:   -0.1,
		}},
	}

	h, subs := Sanitize(doc)
	assert.NotEmpty(t, subs)

	assert.Equal(t, 0.0, h.Rent, "negative rent clamps to 0")
	assert.Equal(t, model.RentFair, h.RentMode, "unknown mode falls back to fair")

	require.Len(t, h.People, 1)
	p := h.People[0]
	assert.Equal(t, "Person 1", p.Name)
	assert.Equal(t, model.Semimonthly, p.PayPeriod)
	assert.Equal(t, []float64{1000, 0, 0}, p.Paychecks)
	assert.Equal(t, 0.0, p.Groceries)
	assert.Equal(t, 0.0, p.Gas)
	assert.Equal(t, 0.0, p.SavingsRate)
	assert.Equal(t, 0.0, p.WantsRate)
}

func TestSanitizeRecordsFieldPaths(t *testing.T) {
	doc := Document{
		RentMode: "fair",
		People: []PersonDocument{
			{Name: "A", PayPeriod: "weekly"},
			{Name: "B", PayPeriod: "weekly", Gas: -5},
		},
	}
	_, subs := Sanitize(doc)
	require.Len(t, subs, 1)
	assert.Equal(t, "people[1].gas", subs[0].Field)
}

func TestFromHouseholdRoundTrip(t *testing.T) {
	h := TemplateHousehold()
	doc := FromHousehold(h)
	back, subs := Sanitize(doc)

	assert.Empty(t, subs, "templates must survive their own clamp rules")
	assert.Equal(t, h, back)
}

func TestTemplateHouseholdIsValid(t *testing.T) {
	h := TemplateHousehold()
	require.Len(t, h.People, 2)
	assert.True(t, h.RentMode.Valid())
	for _, p := range h.People {
		assert.True(t, p.PayPeriod.Valid(), "template %s has invalid period", p.Name)
		assert.GreaterOrEqual(t, p.SavingsRate, 0.0)
		assert.LessOrEqual(t, p.SavingsRate+p.WantsRate, 1.0,
			"template %s rates should leave room for needs", p.Name)
	}
}
