package engine

import (
	"math"
	"reflect"
	"testing"

	"github.com/hearthbudget/hearth/internal/model"
)

func samplePerson() model.Person {
	return model.Person{
		Name:      "Sam",
		Paychecks: []float64{2342.97, 2342.97, 2342.97, 2342.97, 2342.97},
		PayPeriod: model.Semimonthly,
		Bills: []model.Bill{
			{Label: "Internet", Amount: 89.99},
			{Label: "Phone", Amount: 106.64},
			{Label: "Insurance", Amount: 260.00},
		},
		Groceries:   400,
		Gas:         120,
		SavingsRate: 0.2,
		WantsRate:   0.2,
	}
}

func TestComputePersonScenario(t *testing.T) {
	p := samplePerson()
	b, err := ComputePerson(p, 1000)
	if err != nil {
		t.Fatalf("ComputePerson: %v", err)
	}

	if b.MonthlyIncome != 4685.94 {
		t.Errorf("MonthlyIncome = %v, want 4685.94", b.MonthlyIncome)
	}
	if b.Bills != 456.63 {
		t.Errorf("Bills = %v, want 456.63", b.Bills)
	}
	if b.Savings != 937.19 {
		t.Errorf("Savings = %v, want 937.19", b.Savings)
	}
	if b.Wants != 937.19 {
		t.Errorf("Wants = %v, want 937.19", b.Wants)
	}
	// 4685.94 - (1000 + 456.63 + 400 + 120 + 937.19 + 937.19)
	if b.Debt != 834.93 {
		t.Errorf("Debt = %v, want 834.93", b.Debt)
	}
}

func TestComputePersonConservesIncome(t *testing.T) {
	b, err := ComputePerson(samplePerson(), 1000)
	if err != nil {
		t.Fatalf("ComputePerson: %v", err)
	}
	total := b.Rent + b.Bills + b.Groceries + b.Gas + b.Savings + b.Wants + b.Debt
	if math.Abs(total-b.MonthlyIncome) > 0.01 {
		t.Errorf("categories sum to %v, want income %v", total, b.MonthlyIncome)
	}
}

func TestComputePersonDebtNeverNegative(t *testing.T) {
	p := samplePerson()
	b, err := ComputePerson(p, 10000) // rent alone exceeds income
	if err != nil {
		t.Fatalf("ComputePerson: %v", err)
	}
	if b.Debt != 0 {
		t.Errorf("Debt = %v, want 0 when categories exceed income", b.Debt)
	}
}

func TestComputePersonZeroIncome(t *testing.T) {
	p := model.Person{PayPeriod: model.Weekly}
	b, err := ComputePerson(p, 0)
	if err != nil {
		t.Fatalf("ComputePerson: %v", err)
	}
	if b.MonthlyIncome != 0 || b.Debt != 0 {
		t.Errorf("zero profile should produce zero breakdown, got income %v debt %v",
			b.MonthlyIncome, b.Debt)
	}
	if b.NeedsPercent != 0 || b.WantsPercent != 0 || b.SavingsDebtPercent != 0 {
		t.Error("aggregate percentages should be 0 at zero income")
	}
	for c, pct := range b.Percent {
		if pct != 0 {
			t.Errorf("Percent[%s] = %v, want 0", c, pct)
		}
	}
}

func TestComputePersonRateClamping(t *testing.T) {
	p := samplePerson()
	p.SavingsRate = 1.7
	p.WantsRate = -0.4
	b, err := ComputePerson(p, 0)
	if err != nil {
		t.Fatalf("ComputePerson: %v", err)
	}
	if b.Savings != b.MonthlyIncome {
		t.Errorf("savings rate >1 should clamp to full income, got %v", b.Savings)
	}
	if b.Wants != 0 {
		t.Errorf("negative wants rate should clamp to 0, got %v", b.Wants)
	}
}

func TestComputePersonPercentages(t *testing.T) {
	b, err := ComputePerson(samplePerson(), 1000)
	if err != nil {
		t.Fatalf("ComputePerson: %v", err)
	}
	for c, pct := range b.Percent {
		if pct < 0 || pct > 100 {
			t.Errorf("Percent[%s] = %v, outside [0,100]", c, pct)
		}
	}
	// needs = (1000 + 456.63 + 400 + 120) / 4685.94
	wantNeeds := RoundCents(1976.63 / 4685.94 * 100)
	if b.NeedsPercent != wantNeeds {
		t.Errorf("NeedsPercent = %v, want %v", b.NeedsPercent, wantNeeds)
	}
}

func TestComputePersonIdempotent(t *testing.T) {
	p := samplePerson()
	first, err := ComputePerson(p, 1000)
	if err != nil {
		t.Fatalf("ComputePerson: %v", err)
	}
	second, err := ComputePerson(p, 1000)
	if err != nil {
		t.Fatalf("ComputePerson: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different breakdowns")
	}
}
