package importer

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseAmountString parses a formatted amount into a decimal.
// Handles "$1,234.56", "(45.00)" as negative, and plain "-588.74".
func parseAmountString(s string) (decimal.Decimal, error) {
	clean := strings.TrimSpace(s)
	clean = strings.TrimPrefix(clean, "$")

	negative := false
	if strings.HasPrefix(clean, "(") && strings.HasSuffix(clean, ")") {
		negative = true
		clean = clean[1 : len(clean)-1]
		clean = strings.TrimPrefix(clean, "$")
	}

	clean = strings.ReplaceAll(clean, ",", "")

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, err
	}

	if negative {
		d = d.Neg()
	}

	return d, nil
}
