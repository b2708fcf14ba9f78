// Package importer parses transaction CSV exports and records them as
// immutable transactions against a job.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	enc "github.com/FDCTax/fdctax-core-api-sub002/internal/encoding"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/transaction"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/workpaper"
)

// Parser reads transaction CSV exports and produces transaction params.
// It auto-detects which format is being used by matching column headers
// against known profiles.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// ParsedRow pairs created params with the source row number for error
// reporting.
type ParsedRow struct {
	Row    int
	Params transaction.CreateParams
}

func (p *Parser) Parse(r io.Reader) ([]ParsedRow, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, cols, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, workpaper.NewValidationError("file",
			"no matching CSV format found: expected a header with date, description and amount columns")
	}

	return parseRows(profile, cols, rows[headerIdx+1:], headerIdx+1)
}

// colIndex maps lower-cased column names to their index in the row.
type colIndex map[string]int

// detectProfile scans rows for a header that matches a known profile.
// Returns the matched profile, column index map, and header row index.
func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.ToLower(strings.TrimSpace(cell))
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

// matchesProfile checks if all required columns of a profile are present.
func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows extracts transactions from data rows using the matched
// profile. Rows without a parseable date or amount are skipped, which
// covers footers and running-balance lines.
func parseRows(p *Profile, cols colIndex, rows [][]string, headerRowNum int) ([]ParsedRow, error) {
	var parsed []ParsedRow

	for i, row := range rows {
		rowNum := headerRowNum + i + 1 // 1-based line in the source file

		date, ok := parseDate(p, row, cols[p.DateCol])
		if !ok {
			continue
		}

		desc := cellValue(row, cols[p.DescCol])
		if desc == "" {
			return nil, workpaper.NewValidationError("file",
				fmt.Sprintf("row %d: missing description", rowNum))
		}

		amount, ok := parseAmount(p, cols, row)
		if !ok {
			continue
		}

		params := transaction.CreateParams{
			Source: workpaper.SourceImport,
			Date:   date,
			Amount: amount,
			Vendor: desc,
		}

		if p.GSTCol != "" {
			if s := cellValue(row, colOrMissing(cols, p.GSTCol)); s != "" {
				gst, err := parseAmountString(s)
				if err != nil {
					return nil, workpaper.NewValidationError("file",
						fmt.Sprintf("row %d: invalid gst amount %q", rowNum, s))
				}

				params.GSTAmount = &gst
			}
		}

		if p.CategoryCol != "" {
			params.Category = mapCategory(cellValue(row, colOrMissing(cols, p.CategoryCol)))
		}

		if p.RefCol != "" {
			params.Reference = cellValue(row, colOrMissing(cols, p.RefCol))
		}

		parsed = append(parsed, ParsedRow{Row: rowNum, Params: params})
	}

	return parsed, nil
}

// parseDate tries the profile's date layouts in order. Returns false for
// empty cells or unparseable values.
func parseDate(p *Profile, row []string, idx int) (time.Time, bool) {
	s := cellValue(row, idx)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range p.DateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// parseAmount extracts the signed amount from a row based on the
// profile's amount mode. Debits come out negative under amountSplit so
// both modes share a sign convention.
func parseAmount(p *Profile, cols colIndex, row []string) (decimal.Decimal, bool) {
	switch p.AmountMode {
	case amountSingle:
		s := cellValue(row, cols[p.AmountCol])
		if s == "" {
			return decimal.Zero, false
		}

		d, err := parseAmountString(s)
		if err != nil || d.IsZero() {
			return decimal.Zero, false
		}

		return d, true
	case amountSplit:
		if s := cellValue(row, cols[p.DebitCol]); s != "" {
			if d, err := parseAmountString(s); err == nil && !d.IsZero() {
				return d.Abs().Neg(), true
			}
		}

		if s := cellValue(row, cols[p.CreditCol]); s != "" {
			if d, err := parseAmountString(s); err == nil && !d.IsZero() {
				return d.Abs(), true
			}
		}
	}

	return decimal.Zero, false
}

// categoryAliases maps common export spellings to domain categories.
var categoryAliases = map[string]workpaper.Category{
	"fuel":         workpaper.CategoryVehicleFuel,
	"petrol":       workpaper.CategoryVehicleFuel,
	"registration": workpaper.CategoryVehicleRegistration,
	"rego":         workpaper.CategoryVehicleRegistration,
	"insurance":    workpaper.CategoryVehicleInsurance,
	"repairs":      workpaper.CategoryVehicleRepairs,
	"electricity":  workpaper.CategoryHomeElectricity,
	"gas":          workpaper.CategoryHomeGas,
	"cleaning":     workpaper.CategoryHomeCleaning,
	"internet":     workpaper.CategoryInternet,
	"mobile":       workpaper.CategoryMobile,
	"phone":        workpaper.CategoryMobile,
	"landline":     workpaper.CategoryLandline,
	"income":       workpaper.CategoryFDCIncome,
	"fdc income":   workpaper.CategoryFDCIncome,
	"food":         workpaper.CategoryFDCFood,
	"groceries":    workpaper.CategoryFDCFood,
	"supplies":     workpaper.CategoryFDCSupplies,
}

func mapCategory(s string) workpaper.Category {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return workpaper.CategoryUncategorized
	}

	if c, ok := categoryAliases[key]; ok {
		return c
	}

	// Exports using domain category names pass straight through.
	for _, known := range append(append([]workpaper.Category{}, workpaper.VehicleCategories...), workpaper.HomeCategories...) {
		if key == string(known) {
			return known
		}
	}

	switch workpaper.Category(key) {
	case workpaper.CategoryInternet, workpaper.CategoryMobile, workpaper.CategoryLandline,
		workpaper.CategoryFDCIncome, workpaper.CategoryFDCFood, workpaper.CategoryFDCSupplies,
		workpaper.CategoryOther:
		return workpaper.Category(key)
	}

	return workpaper.CategoryUncategorized
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func colOrMissing(cols colIndex, name string) int {
	if idx, ok := cols[name]; ok {
		return idx
	}

	return -1
}
