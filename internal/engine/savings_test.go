package engine

import "testing"

func TestProjectSimpleAccumulation(t *testing.T) {
	points := Project(500, 100, 12, 0, Schedule{Months: 0})
	if len(points) != 12 {
		t.Fatalf("got %d points, want 12", len(points))
	}
	if points[0].Month != 1 {
		t.Errorf("first point month = %d, want 1", points[0].Month)
	}
	if points[11].Balance != 1700 {
		t.Errorf("final balance = %v, want 500 + 12*100 = 1700", points[11].Balance)
	}
}

func TestProjectSnowballAfterPayoff(t *testing.T) {
	payoff := Schedule{Months: 3}
	points := Project(0, 100, 6, 50, payoff)

	// Months 1-3: savings only. Months 4-6: savings plus freed debt payment.
	want := []float64{100, 200, 300, 450, 600, 750}
	for i, w := range want {
		if points[i].Balance != w {
			t.Errorf("month %d balance = %v, want %v", i+1, points[i].Balance, w)
		}
	}
}

func TestProjectDebtFreeAtStartFoldsInImmediately(t *testing.T) {
	// Months == 0 means the freed amount is available from month 1.
	points := Project(0, 100, 3, 50, Schedule{Months: 0})
	want := []float64{150, 300, 450}
	for i, w := range want {
		if points[i].Balance != w {
			t.Errorf("month %d balance = %v, want %v", i+1, points[i].Balance, w)
		}
	}
}

func TestProjectNeverPayoffNoFoldIn(t *testing.T) {
	points := Project(0, 100, 4, 50, Schedule{Months: MonthsNever})
	if points[3].Balance != 400 {
		t.Errorf("final balance = %v, want 400 (no snowball while debt persists)", points[3].Balance)
	}
}

func TestProjectZeroContributionNoFoldIn(t *testing.T) {
	points := Project(0, 100, 4, 0, Schedule{Months: 1})
	if points[3].Balance != 400 {
		t.Errorf("final balance = %v, want 400", points[3].Balance)
	}
}

func TestProjectDegenerateHorizon(t *testing.T) {
	if points := Project(500, 100, 0, 0, Schedule{}); points != nil {
		t.Errorf("zero horizon should produce no points, got %d", len(points))
	}
}

func TestProjectRoundsEachStep(t *testing.T) {
	// Contributions with sub-cent noise must never leak fractional cents
	// into any point: every balance is already rounded.
	points := Project(500.004, 937.188, 12, 834.931, Schedule{Months: 3})
	for _, pt := range points {
		if pt.Balance != RoundCents(pt.Balance) {
			t.Errorf("month %d balance %v carries sub-cent residue", pt.Month, pt.Balance)
		}
	}
}
