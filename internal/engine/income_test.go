package engine

import (
	"math"
	"testing"

	"github.com/hearthbudget/hearth/internal/model"
)

func TestAverage(t *testing.T) {
	tests := []struct {
		name      string
		paychecks []float64
		want      float64
	}{
		{"empty", nil, 0},
		{"single", []float64{1200}, 1200},
		{"mean of several", []float64{100, 200, 300}, 200},
		{"negative counts as zero", []float64{-50, 100}, 50},
		{"NaN counts as zero", []float64{math.NaN(), 100}, 50},
		{"Inf counts as zero", []float64{math.Inf(1), 100}, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Average(tt.paychecks); got != tt.want {
				t.Errorf("Average(%v) = %v, want %v", tt.paychecks, got, tt.want)
			}
		})
	}
}

func TestMonthlyIncome(t *testing.T) {
	tests := []struct {
		name   string
		avg    float64
		period model.PayPeriod
		want   float64
	}{
		{"semimonthly doubles", 2342.97, model.Semimonthly, 4685.94},
		{"weekly x52/12", 1000, model.Weekly, 4333.33},
		{"biweekly x26/12", 1000, model.Biweekly, 2166.67},
		{"negative average clamps to zero", -500, model.Weekly, 0},
		{"zero average", 0, model.Semimonthly, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MonthlyIncome(tt.avg, tt.period)
			if err != nil {
				t.Fatalf("MonthlyIncome(%v, %q) error: %v", tt.avg, tt.period, err)
			}
			if got != tt.want {
				t.Errorf("MonthlyIncome(%v, %q) = %v, want %v", tt.avg, tt.period, got, tt.want)
			}
		})
	}
}

func TestMonthlyIncomeUnknownPeriod(t *testing.T) {
	if _, err := MonthlyIncome(1000, model.PayPeriod("quarterly")); err == nil {
		t.Fatal("expected error for unknown pay period, got nil")
	}
}

func TestRoundCents(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.125, 0.13}, // exact half rounds up
		{0.124, 0.12},
		{0, 0},
		{math.NaN(), 0},
		{math.Inf(1), 0},
	}
	for _, tt := range tests {
		if got := RoundCents(tt.in); got != tt.want {
			t.Errorf("RoundCents(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
