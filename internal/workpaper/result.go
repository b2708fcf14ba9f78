package workpaper

import "github.com/shopspring/decimal"

// CategoryTotal accumulates effective amounts for one category.
type CategoryTotal struct {
	Amount decimal.Decimal `json:"amount"`
	GST    decimal.Decimal `json:"gst"`
	Count  int             `json:"count"`
}

// ModuleTotal is one module's contribution to a job summary.
type ModuleTotal struct {
	Label     string          `json:"label"`
	Deduction decimal.Decimal `json:"deduction"`
	GSTCredit decimal.Decimal `json:"gst_credit"`
	Income    decimal.Decimal `json:"income"`
	Status    Status          `json:"status"`
}

// Result is a module engine's output summary. Deduction modules populate
// Deduction/GSTCredit, income modules NetIncome, and the summary module the
// job-wide totals and ByModule breakdown. Details carries method-specific
// scalars echoed into freeze snapshots.
type Result struct {
	Method Method `json:"method,omitempty"`

	Deduction decimal.Decimal `json:"deduction"`
	GSTCredit decimal.Decimal `json:"gst_credit"`
	NetIncome decimal.Decimal `json:"net_income"`

	TotalIncome     decimal.Decimal `json:"total_income,omitempty"`
	TotalDeductions decimal.Decimal `json:"total_deductions,omitempty"`
	TotalGSTCredits decimal.Decimal `json:"total_gst_credits,omitempty"`
	NetTaxable      decimal.Decimal `json:"net_taxable,omitempty"`

	TransactionCount int                        `json:"transaction_count,omitempty"`
	ByCategory       map[Category]CategoryTotal `json:"by_category,omitempty"`
	ByModule         map[ModuleType]ModuleTotal `json:"by_module,omitempty"`

	Details map[string]any `json:"details,omitempty"`

	Warnings []string `json:"warnings,omitempty"`
	Errors   []string `json:"errors,omitempty"`
}

// Failed reports whether the calculation produced errors.
func (r *Result) Failed() bool {
	return len(r.Errors) > 0
}

// ErrorResult builds a Result carrying a single engine error. Engines
// report failure this way instead of returning Go errors so one broken
// module never blocks a batch.
func ErrorResult(msg string) Result {
	return Result{Errors: []string{msg}}
}
