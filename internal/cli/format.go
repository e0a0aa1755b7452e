// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hearthbudget/hearth/internal/engine"
)

// printer localizes number output (grouping separators, decimal mark).
var printer = message.NewPrinter(language.AmericanEnglish)

// SetLocale switches currency formatting to the given BCP 47 tag.
// Unparseable tags keep the current locale.
func SetLocale(tag string) {
	t, err := language.Parse(tag)
	if err != nil {
		return
	}
	printer = message.NewPrinter(t)
}

// FormatCurrency formats a USD amount with two decimal places and
// locale-aware grouping, e.g. 4685.94 -> "$4,685.94".
func FormatCurrency(amount float64) string {
	return printer.Sprintf("$%.2f", amount)
}

// FormatPercent formats a 0-100 percentage with one decimal place.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatRate formats a 0-1 fraction as a percentage, e.g. 0.2 -> "20%".
func FormatRate(rate float64) string {
	return fmt.Sprintf("%.0f%%", rate*100)
}

// FormatMonths renders a payoff horizon, including the never sentinel.
func FormatMonths(s engine.Schedule) string {
	if s.Never() {
		return "never at this rate"
	}
	switch s.Months {
	case 0:
		return "debt-free"
	case 1:
		return "1 month"
	}
	if s.Months >= 12 {
		years := s.Months / 12
		rem := s.Months % 12
		if rem == 0 {
			return fmt.Sprintf("%d months (%dy)", s.Months, years)
		}
		return fmt.Sprintf("%d months (%dy %dm)", s.Months, years, rem)
	}
	return fmt.Sprintf("%d months", s.Months)
}

// FormatPayPeriod returns a display label for a pay period value.
func FormatPayPeriod(period string) string {
	switch period {
	case "semimonthly":
		return "Semimonthly (2/mo)"
	case "weekly":
		return "Weekly"
	case "biweekly":
		return "Biweekly"
	}
	return period
}
