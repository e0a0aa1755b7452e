package cli

import (
	"testing"

	"github.com/hearthbudget/hearth/internal/engine"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{4685.94, "$4,685.94"},
		{1234567.5, "$1,234,567.50"},
		{0.5, "$0.50"},
	}
	for _, tt := range tests {
		if got := FormatCurrency(tt.in); got != tt.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatMonths(t *testing.T) {
	tests := []struct {
		name string
		s    engine.Schedule
		want string
	}{
		{"never", engine.Schedule{Months: engine.MonthsNever}, "never at this rate"},
		{"zero", engine.Schedule{Months: 0}, "debt-free"},
		{"one", engine.Schedule{Months: 1}, "1 month"},
		{"several", engine.Schedule{Months: 7}, "7 months"},
		{"exact years", engine.Schedule{Months: 24}, "24 months (2y)"},
		{"years and months", engine.Schedule{Months: 15}, "15 months (1y 3m)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatMonths(tt.s); got != tt.want {
				t.Errorf("FormatMonths(%+v) = %q, want %q", tt.s, got, tt.want)
			}
		})
	}
}

func TestFormatRate(t *testing.T) {
	if got := FormatRate(0.2); got != "20%" {
		t.Errorf("FormatRate(0.2) = %q, want 20%%", got)
	}
}

func TestRenderSparklineBounds(t *testing.T) {
	if got := RenderSparkline(nil); got != "" {
		t.Errorf("empty series should render empty, got %q", got)
	}
	got := RenderSparkline([]float64{0, 0, 0})
	if len([]rune(got)) != 3 {
		t.Errorf("all-zero series should still render 3 cells, got %q", got)
	}
}
