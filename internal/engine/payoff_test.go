package engine

import "testing"

func TestPayoffAlreadyDebtFree(t *testing.T) {
	s := Payoff(0, 250)
	if s.Months != 0 {
		t.Errorf("Months = %d, want 0", s.Months)
	}
	if len(s.Series) != 0 {
		t.Errorf("Series length = %d, want empty", len(s.Series))
	}
	if s.Never() {
		t.Error("zero debt must not report Never")
	}
}

func TestPayoffZeroPaymentNeverPaysOff(t *testing.T) {
	s := Payoff(1000, 0)
	if !s.Never() {
		t.Errorf("Months = %d, want the never sentinel", s.Months)
	}
	if len(s.Series) != 0 {
		t.Errorf("Series length = %d, want empty", len(s.Series))
	}
}

func TestPayoffExactDivision(t *testing.T) {
	s := Payoff(1200, 100)
	if s.Months != 12 {
		t.Fatalf("Months = %d, want 12", s.Months)
	}
	if len(s.Series) != 13 {
		t.Fatalf("Series length = %d, want 13 (month 0..12)", len(s.Series))
	}
	if s.Series[0].Balance != 1200 {
		t.Errorf("Series[0].Balance = %v, want 1200", s.Series[0].Balance)
	}
	if s.Series[12].Balance != 0 {
		t.Errorf("Series[12].Balance = %v, want exactly 0", s.Series[12].Balance)
	}
	if s.Series[6].Balance != 600 {
		t.Errorf("Series[6].Balance = %v, want 600", s.Series[6].Balance)
	}
}

func TestPayoffRoundsUpPartialMonth(t *testing.T) {
	s := Payoff(1000, 300)
	if s.Months != 4 {
		t.Fatalf("Months = %d, want ceil(1000/300) = 4", s.Months)
	}
	if got := s.Series[3].Balance; got != 100 {
		t.Errorf("Series[3].Balance = %v, want 100", got)
	}
	if got := s.Series[4].Balance; got != 0 {
		t.Errorf("final balance = %v, want forced to 0", got)
	}
}

func TestPayoffNegativeInputsClamp(t *testing.T) {
	if s := Payoff(-500, 100); s.Months != 0 {
		t.Errorf("negative debt: Months = %d, want 0", s.Months)
	}
	if s := Payoff(500, -100); !s.Never() {
		t.Error("negative payment with positive debt should report Never")
	}
}

func TestPayoffExtremeRatioReportsNever(t *testing.T) {
	// Huge but finite debt/payment ratios must degrade to the never
	// sentinel, not overflow the month count or allocate a giant series.
	for _, tt := range []struct {
		name    string
		debt    float64
		payment float64
	}{
		{"overflowing ratio", 1e18, 0.01},
		{"giant series", 1e9, 0.01},
		{"just past the horizon", 120100, 100},
	} {
		t.Run(tt.name, func(t *testing.T) {
			s := Payoff(tt.debt, tt.payment)
			if !s.Never() {
				t.Errorf("Months = %d, want the never sentinel", s.Months)
			}
			if len(s.Series) != 0 {
				t.Errorf("Series length = %d, want empty", len(s.Series))
			}
		})
	}
}

func TestPayoffHorizonBoundary(t *testing.T) {
	s := Payoff(120000, 100) // exactly a century of payments
	if s.Months != 1200 {
		t.Fatalf("Months = %d, want 1200", s.Months)
	}
	if len(s.Series) != 1201 {
		t.Errorf("Series length = %d, want 1201", len(s.Series))
	}
}

func TestPayoffSeriesMonotonic(t *testing.T) {
	s := Payoff(2573.44, 834.93)
	prev := s.Series[0].Balance
	for _, pt := range s.Series[1:] {
		if pt.Balance > prev {
			t.Fatalf("balance increased at month %d: %v -> %v", pt.Month, prev, pt.Balance)
		}
		prev = pt.Balance
	}
}
