package importer

// amountMode determines how amounts are extracted from a row.
type amountMode int

const (
	// amountSingle means one signed amount column.
	amountSingle amountMode = iota
	// amountSplit means separate debit and credit columns.
	amountSplit
)

// Profile describes the column layout of a supported CSV export format.
// Adding a new format is just adding a new Profile to the profiles slice.
// Column names are matched case-insensitively.
type Profile struct {
	Name        string
	DateCol     string
	DateLayouts []string
	DescCol     string
	AmountMode  amountMode
	AmountCol   string // used when AmountMode == amountSingle
	DebitCol    string // used when AmountMode == amountSplit
	CreditCol   string // used when AmountMode == amountSplit
	GSTCol      string // optional
	CategoryCol string // optional
	RefCol      string // optional
}

// requiredCols returns the column names that must be present for this
// profile to match.
func (p Profile) requiredCols() []string {
	cols := []string{p.DateCol, p.DescCol}

	switch p.AmountMode {
	case amountSingle:
		cols = append(cols, p.AmountCol)
	case amountSplit:
		cols = append(cols, p.DebitCol, p.CreditCol)
	}

	return cols
}

// profiles is the ordered list of export formats to try during
// auto-detection. More specific profiles come first to avoid false
// matches.
var profiles = []Profile{
	{
		Name:        "myfdc",
		DateCol:     "date",
		DateLayouts: []string{"2006-01-02", "02/01/2006"},
		DescCol:     "description",
		AmountMode:  amountSingle,
		AmountCol:   "amount",
		GSTCol:      "gst",
		CategoryCol: "category",
		RefCol:      "reference",
	},
	{
		Name:        "bank-statement",
		DateCol:     "date",
		DateLayouts: []string{"02/01/2006", "02-01-2006"},
		DescCol:     "description",
		AmountMode:  amountSplit,
		DebitCol:    "debit",
		CreditCol:   "credit",
	},
	{
		Name:        "generic",
		DateCol:     "date",
		DateLayouts: []string{"2006-01-02", "02/01/2006", "02-01-2006"},
		DescCol:     "description",
		AmountMode:  amountSingle,
		AmountCol:   "amount",
	},
}
