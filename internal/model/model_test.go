package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayPeriodValid(t *testing.T) {
	for _, p := range []PayPeriod{Semimonthly, Weekly, Biweekly} {
		assert.True(t, p.Valid(), string(p))
	}
	assert.False(t, PayPeriod("monthly").Valid())
	assert.False(t, PayPeriod("").Valid())
}

func TestRentModeValid(t *testing.T) {
	assert.True(t, RentFair.Valid())
	assert.True(t, RentEqual.Valid())
	assert.False(t, RentMode("split").Valid())
}

func TestBillsTotal(t *testing.T) {
	p := Person{Bills: []Bill{
		{Label: "Internet", Amount: 89.99},
		{Label: "Phone", Amount: 45},
	}}
	assert.InDelta(t, 134.99, p.BillsTotal(), 0.001)
	assert.Zero(t, Person{}.BillsTotal())
}

func TestHouseholdCloneIsDeep(t *testing.T) {
	h := &Household{
		Rent:     1800,
		RentMode: RentFair,
		People: []Person{{
			Name:      "Avery",
			Paychecks: []float64{2342.97, 2342.97},
			PayPeriod: Semimonthly,
			Bills:     []Bill{{Label: "Internet", Amount: 89.99}},
		}},
	}

	cp := h.Clone()
	require.Equal(t, h, cp)

	cp.Rent = 2000
	cp.People[0].Name = "Blake"
	cp.People[0].Paychecks[0] = 1
	cp.People[0].Bills[0].Amount = 1

	assert.Equal(t, 1800.0, h.Rent)
	assert.Equal(t, "Avery", h.People[0].Name)
	assert.Equal(t, 2342.97, h.People[0].Paychecks[0])
	assert.Equal(t, 89.99, h.People[0].Bills[0].Amount)
}
