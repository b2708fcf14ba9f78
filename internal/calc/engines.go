package calc

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/FDCTax/fdctax-core-api-sub002/internal/workpaper"
)

var hundred = decimal.NewFromInt(100)

// sumEffective totals effective amounts and GST over a transaction set.
func sumEffective(effs []workpaper.EffectiveTransaction) (amount, gst decimal.Decimal) {
	for _, e := range effs {
		amount = amount.Add(e.EffectiveAmount)

		if e.EffectiveGSTAmount != nil {
			gst = gst.Add(*e.EffectiveGSTAmount)
		}
	}

	return amount, gst
}

// pctOf applies a 0-100 percentage to an amount.
func pctOf(amount decimal.Decimal, pct float64) decimal.Decimal {
	return amount.Mul(decimal.NewFromFloat(pct)).Div(hundred)
}

// categoryTotals breaks a transaction set down by effective category.
func categoryTotals(effs []workpaper.EffectiveTransaction) map[workpaper.Category]workpaper.CategoryTotal {
	byCategory := make(map[workpaper.Category]workpaper.CategoryTotal)

	for _, eff := range effs {
		ct := byCategory[eff.EffectiveCategory]
		ct.Amount = ct.Amount.Add(eff.EffectiveAmount)

		if eff.EffectiveGSTAmount != nil {
			ct.GST = ct.GST.Add(*eff.EffectiveGSTAmount)
		}

		ct.Count++
		byCategory[eff.EffectiveCategory] = ct
	}

	return byCategory
}

// MotorVehicleEngine implements the cents-per-km, logbook and actual
// expenses methods.
type MotorVehicleEngine struct{}

func (e *MotorVehicleEngine) Calculate(ctx context.Context, in Inputs) workpaper.Result {
	switch method := in.Resolver.Method(); method {
	case workpaper.MethodCentsPerKM:
		return e.centsPerKM(in)
	case workpaper.MethodLogbook:
		return e.logbook(ctx, in)
	case workpaper.MethodActual:
		return e.actual(ctx, in)
	default:
		return workpaper.ErrorResult(fmt.Sprintf("unknown method %q for motor vehicle", method))
	}
}

func (e *MotorVehicleEngine) centsPerKM(in Inputs) workpaper.Result {
	res := workpaper.Result{Method: workpaper.MethodCentsPerKM}

	businessKM := in.Resolver.Float("business_km", 0)

	claimedKM := businessKM
	if claimedKM > in.Rates.CentsPerKMMaxKM {
		claimedKM = in.Rates.CentsPerKMMaxKM
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("business km (%v) capped at %v", businessKM, in.Rates.CentsPerKMMaxKM))
	}

	res.Deduction = decimal.NewFromFloat(claimedKM).Mul(in.Rates.CentsPerKM).Round(2)
	// The ATO allows 1/11 of the claim as a GST credit for this method.
	res.GSTCredit = res.Deduction.Div(in.Rates.GSTDivisor()).Round(2)

	res.Details = map[string]any{
		"business_km":         businessKM,
		"business_km_claimed": claimedKM,
		"rate_per_km":         in.Rates.CentsPerKM,
	}

	return res
}

func (e *MotorVehicleEngine) logbook(ctx context.Context, in Inputs) workpaper.Result {
	res := workpaper.Result{Method: workpaper.MethodLogbook}

	logbookPct := in.Resolver.Float("logbook_pct", 0)

	effs, err := in.Transactions.EffectiveForCategories(ctx, in.Job.ID, workpaper.VehicleCategories)
	if err != nil {
		return workpaper.ErrorResult(fmt.Sprintf("loading vehicle transactions: %v", err))
	}

	total, totalGST := sumEffective(effs)

	res.Deduction = pctOf(total, logbookPct).Round(2)
	res.GSTCredit = pctOf(totalGST, logbookPct).Round(2)
	res.TransactionCount = len(effs)
	res.ByCategory = categoryTotals(effs)

	res.Details = map[string]any{
		"logbook_pct":    logbookPct,
		"total_expenses": total.Round(2),
		"total_gst":      totalGST.Round(2),
	}

	return res
}

// actual claims vehicle running costs at the business percentage, plus
// depreciation on the vehicle asset and a balancing adjustment when it was
// sold during the year.
func (e *MotorVehicleEngine) actual(ctx context.Context, in Inputs) workpaper.Result {
	res := workpaper.Result{Method: workpaper.MethodActual}

	businessPct := in.Resolver.Float("business_pct", 100)
	if businessPct > 100 {
		return workpaper.ErrorResult(fmt.Sprintf("business percentage %v exceeds 100", businessPct))
	}

	effs, err := in.Transactions.EffectiveForCategories(ctx, in.Job.ID, workpaper.VehicleCategories)
	if err != nil {
		return workpaper.ErrorResult(fmt.Sprintf("loading vehicle transactions: %v", err))
	}

	total, totalGST := sumEffective(effs)

	res.Deduction = pctOf(total, businessPct).Round(2)
	res.GSTCredit = pctOf(totalGST, businessPct).Round(2)
	res.TransactionCount = len(effs)
	res.ByCategory = categoryTotals(effs)

	res.Details = map[string]any{
		"business_pct":   businessPct,
		"total_expenses": total.Round(2),
		"total_gst":      totalGST.Round(2),
	}

	if len(effs) == 0 {
		res.Warnings = append(res.Warnings, "no vehicle expenses found")
	}

	mv := in.Module.Config.MotorVehicle
	if mv == nil || mv.Purchase == nil {
		return res
	}

	closing := e.depreciate(in, mv, businessPct, &res)
	e.balance(mv, closing, businessPct, &res)

	return res
}

// depreciate adds the business share of the year's decline in value to the
// deduction and returns the closing adjustable value.
func (e *MotorVehicleEngine) depreciate(in Inputs, mv *workpaper.MotorVehicleConfig, businessPct float64, res *workpaper.Result) decimal.Decimal {
	costBase := decimal.NewFromFloat(mv.Purchase.CostBase())

	if costBase.GreaterThan(in.Rates.CarDepreciationLimit) {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("vehicle cost %s exceeds car limit %s, depreciation capped",
				costBase.StringFixed(2), in.Rates.CarDepreciationLimit.StringFixed(2)))
		costBase = in.Rates.CarDepreciationLimit
	}

	opening := costBase
	if mv.OpeningAdjustableValue != nil {
		opening = decimal.NewFromFloat(*mv.OpeningAdjustableValue)
	}

	method := mv.DepreciationMethod
	if method == "" {
		method = workpaper.DepreciationDiminishingValue
	}

	var annual decimal.Decimal

	switch method {
	case workpaper.DepreciationPrimeCost:
		annual = costBase.Mul(in.Rates.PrimeCostRate)
	default:
		annual = opening.Mul(in.Rates.DiminishingValueRate)
	}

	daysHeld := 365
	if mv.DaysHeld != nil && *mv.DaysHeld > 0 && *mv.DaysHeld < 365 {
		daysHeld = *mv.DaysHeld
	}

	amount := annual.Mul(decimal.NewFromInt(int64(daysHeld))).Div(decimal.NewFromInt(365)).Round(2)

	closing := opening.Sub(amount)
	if closing.IsNegative() {
		closing = decimal.Zero
	}

	businessShare := pctOf(amount, businessPct).Round(2)
	res.Deduction = res.Deduction.Add(businessShare)

	res.Details["depreciation"] = map[string]any{
		"method":                   string(method),
		"opening_value":            opening,
		"days_held":                daysHeld,
		"amount":                   amount,
		"business_amount":          businessShare,
		"closing_adjustable_value": closing,
	}

	return closing
}

// balance applies the balancing adjustment on sale: proceeds above the
// closing adjustable value are assessable income, below it an extra
// deduction.
func (e *MotorVehicleEngine) balance(mv *workpaper.MotorVehicleConfig, closing decimal.Decimal, businessPct float64, res *workpaper.Result) {
	if mv.Sale == nil {
		return
	}

	termination := decimal.NewFromFloat(mv.Sale.Price)
	if mv.Sale.GST != nil {
		termination = termination.Sub(decimal.NewFromFloat(*mv.Sale.GST))
	}

	diff := termination.Sub(closing)
	isProfit := diff.IsPositive()
	share := pctOf(diff.Abs(), businessPct).Round(2)

	if isProfit {
		res.NetIncome = res.NetIncome.Add(share)
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("balancing adjustment: %s profit on sale is assessable income", share.StringFixed(2)))
	} else {
		res.Deduction = res.Deduction.Add(share)
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("balancing adjustment: %s loss on sale claimed as deduction", share.StringFixed(2)))
	}

	res.Details["balancing_adjustment"] = map[string]any{
		"termination_value": termination,
		"adjustable_value":  closing,
		"amount":            share,
		"is_profit":         isProfit,
	}
}

// HomeOfficeEngine implements the fixed-rate and actual-expenses methods.
type HomeOfficeEngine struct{}

func (e *HomeOfficeEngine) Calculate(ctx context.Context, in Inputs) workpaper.Result {
	switch method := in.Resolver.Method(); method {
	case workpaper.MethodFixedRate:
		return e.fixedRate(in)
	case workpaper.MethodActual:
		return e.actual(ctx, in)
	default:
		return workpaper.ErrorResult(fmt.Sprintf("unknown method %q for home office", method))
	}
}

func (e *HomeOfficeEngine) fixedRate(in Inputs) workpaper.Result {
	res := workpaper.Result{Method: workpaper.MethodFixedRate}

	hours := in.Resolver.Float("hours_worked", 0)

	res.Deduction = decimal.NewFromFloat(hours).Mul(in.Rates.HomeOfficeHourly).Round(2)
	// No GST credit under the fixed rate method.
	res.GSTCredit = decimal.Zero

	res.Details = map[string]any{
		"hours_worked":  hours,
		"rate_per_hour": in.Rates.HomeOfficeHourly,
	}

	return res
}

func (e *HomeOfficeEngine) actual(ctx context.Context, in Inputs) workpaper.Result {
	res := workpaper.Result{Method: workpaper.MethodActual}

	floorAreaPct := in.Resolver.Float("floor_area_pct", 0)
	businessUsePct := in.Resolver.Float("business_use_pct", 100)

	effs, err := in.Transactions.EffectiveForCategories(ctx, in.Job.ID, workpaper.HomeCategories)
	if err != nil {
		return workpaper.ErrorResult(fmt.Sprintf("loading home office transactions: %v", err))
	}

	total, totalGST := sumEffective(effs)

	effectivePct := floorAreaPct / 100 * businessUsePct / 100

	res.Deduction = total.Mul(decimal.NewFromFloat(effectivePct)).Round(2)
	res.GSTCredit = totalGST.Mul(decimal.NewFromFloat(effectivePct)).Round(2)
	res.TransactionCount = len(effs)

	res.Details = map[string]any{
		"floor_area_pct":   floorAreaPct,
		"business_use_pct": businessUsePct,
		"effective_pct":    effectivePct * 100,
		"total_expenses":   total.Round(2),
	}

	return res
}

// CommsEngine covers the internet and mobile module types; the expense
// category follows the module type.
type CommsEngine struct{}

func (e *CommsEngine) Calculate(ctx context.Context, in Inputs) workpaper.Result {
	res := workpaper.Result{Method: in.Resolver.Method()}

	category := workpaper.CategoryInternet
	if in.Module.Type == workpaper.ModuleMobile {
		category = workpaper.CategoryMobile
	}

	businessPct := in.Resolver.Float("business_pct", 50)

	effs, err := in.Transactions.EffectiveForCategories(ctx, in.Job.ID, []workpaper.Category{category})
	if err != nil {
		return workpaper.ErrorResult(fmt.Sprintf("loading %s transactions: %v", category, err))
	}

	total, totalGST := sumEffective(effs)

	res.Deduction = pctOf(total, businessPct).Round(2)
	res.GSTCredit = pctOf(totalGST, businessPct).Round(2)
	res.TransactionCount = len(effs)

	res.Details = map[string]any{
		"category":       category,
		"business_pct":   businessPct,
		"total_expenses": total.Round(2),
	}

	return res
}

// FDCIncomeEngine sums family day care income and nets out GST when the
// carer is GST registered.
type FDCIncomeEngine struct{}

func (e *FDCIncomeEngine) Calculate(ctx context.Context, in Inputs) workpaper.Result {
	var res workpaper.Result

	effs, err := in.Transactions.EffectiveForCategories(ctx, in.Job.ID, []workpaper.Category{workpaper.CategoryFDCIncome})
	if err != nil {
		return workpaper.ErrorResult(fmt.Sprintf("loading income transactions: %v", err))
	}

	total, totalGST := sumEffective(effs)

	gstRegistered := in.Resolver.Bool("gst_registered", false)

	res.NetIncome = total.Round(2)
	if gstRegistered {
		res.NetIncome = total.Sub(totalGST).Round(2)
	}

	res.TransactionCount = len(effs)
	res.Details = map[string]any{
		"total_income":        total.Round(2),
		"total_gst_collected": totalGST.Round(2),
		"gst_registered":      gstRegistered,
	}

	return res
}

// FoodGSTEngine applies the FDC percentage to food expenses.
type FoodGSTEngine struct{}

func (e *FoodGSTEngine) Calculate(ctx context.Context, in Inputs) workpaper.Result {
	var res workpaper.Result

	effs, err := in.Transactions.EffectiveForCategories(ctx, in.Job.ID, []workpaper.Category{workpaper.CategoryFDCFood})
	if err != nil {
		return workpaper.ErrorResult(fmt.Sprintf("loading food transactions: %v", err))
	}

	total, totalGST := sumEffective(effs)

	fdcPct := in.Resolver.Float("fdc_pct", 0)

	res.Deduction = pctOf(total, fdcPct).Round(2)
	res.GSTCredit = pctOf(totalGST, fdcPct).Round(2)
	res.TransactionCount = len(effs)

	res.Details = map[string]any{
		"fdc_pct":             fdcPct,
		"total_food_expenses": total.Round(2),
	}

	return res
}

// SummaryEngine reduces every sibling module's stored output summary into
// job totals. It is not transaction-driven and must run after all other
// modules have calculated in the current pass.
type SummaryEngine struct{}

func (e *SummaryEngine) Calculate(_ context.Context, in Inputs) workpaper.Result {
	var res workpaper.Result

	res.ByModule = make(map[workpaper.ModuleType]workpaper.ModuleTotal)

	count := 0

	for _, m := range in.Siblings {
		if m.Type == workpaper.ModuleSummary {
			continue
		}

		count++

		if m.OutputSummary == nil {
			continue
		}

		out := m.OutputSummary

		res.TotalDeductions = res.TotalDeductions.Add(out.Deduction)
		res.TotalGSTCredits = res.TotalGSTCredits.Add(out.GSTCredit)
		res.TotalIncome = res.TotalIncome.Add(out.NetIncome)

		res.ByModule[m.Type] = workpaper.ModuleTotal{
			Label:     m.Label,
			Deduction: out.Deduction,
			GSTCredit: out.GSTCredit,
			Income:    out.NetIncome,
			Status:    m.Status,
		}
	}

	res.TotalIncome = res.TotalIncome.Round(2)
	res.TotalDeductions = res.TotalDeductions.Round(2)
	res.TotalGSTCredits = res.TotalGSTCredits.Round(2)
	res.NetTaxable = res.TotalIncome.Sub(res.TotalDeductions).Round(2)

	res.Details = map[string]any{"module_count": count}

	return res
}
