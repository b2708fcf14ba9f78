// Package rates supplies versioned tax rates and thresholds keyed by tax
// year. Rate changes land here as data, never as engine code changes.
package rates

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Rates are the per-tax-year constants consumed by calculation engines.
type Rates struct {
	Year string

	// Cents-per-kilometre method.
	CentsPerKM      decimal.Decimal
	CentsPerKMMaxKM float64

	// Home office fixed-rate method, per hour.
	HomeOfficeHourly decimal.Decimal

	// Motor vehicle depreciation under the actual expenses method. The
	// declining rates derive from the 8-year effective life; the car limit
	// caps the depreciable cost base.
	DiminishingValueRate decimal.Decimal
	PrimeCostRate        decimal.Decimal
	CarDepreciationLimit decimal.Decimal

	// GST rate, e.g. 0.10. The cents/km GST credit divisor derives from it:
	// 1/(1+rate)*rate == deduction/11 at 10%.
	GST decimal.Decimal
}

// GSTDivisor is the divisor applied to a GST-inclusive amount to extract
// the GST portion (11 at a 10% GST rate).
func (r Rates) GSTDivisor() decimal.Decimal {
	one := decimal.NewFromInt(1)
	return one.Add(r.GST).Div(r.GST)
}

// Provider resolves rates for a job's tax year.
type Provider interface {
	ForYear(year string) (Rates, bool)
}

// Static is an in-memory Provider backed by a year-keyed table.
type Static map[string]Rates

// ForYear returns the rates for the given year. When the year has no
// published entry the latest known year is returned with ok=false so
// callers can surface a warning.
func (s Static) ForYear(year string) (Rates, bool) {
	if r, ok := s[year]; ok {
		return r, true
	}

	return s.latest(), false
}

func (s Static) latest() Rates {
	years := make([]string, 0, len(s))
	for y := range s {
		years = append(years, y)
	}

	sort.Strings(years)

	if len(years) == 0 {
		return Rates{}
	}

	return s[years[len(years)-1]]
}

// Default returns the built-in rate table. Deployments override via
// configuration when new determinations are published.
func Default() Static {
	return Static{
		"2023-24": {
			Year:                 "2023-24",
			CentsPerKM:           decimal.NewFromFloat(0.85),
			CentsPerKMMaxKM:      5000,
			HomeOfficeHourly:     decimal.NewFromFloat(0.67),
			GST:                  decimal.NewFromFloat(0.10),
			DiminishingValueRate: decimal.NewFromFloat(0.25),
			PrimeCostRate:        decimal.NewFromFloat(0.125),
			CarDepreciationLimit: decimal.NewFromInt(68108),
		},
		"2024-25": {
			Year:                 "2024-25",
			CentsPerKM:           decimal.NewFromFloat(0.85),
			CentsPerKMMaxKM:      5000,
			HomeOfficeHourly:     decimal.NewFromFloat(0.67),
			GST:                  decimal.NewFromFloat(0.10),
			DiminishingValueRate: decimal.NewFromFloat(0.25),
			PrimeCostRate:        decimal.NewFromFloat(0.125),
			CarDepreciationLimit: decimal.NewFromInt(68108),
		},
	}
}
