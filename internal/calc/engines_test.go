package calc_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/FDCTax/fdctax-core-api-sub002/internal/calc"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/rates"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/workpaper"
)

func testRates() rates.Rates {
	return rates.Rates{
		Year:                 "2024-25",
		CentsPerKM:           decimal.NewFromFloat(0.85),
		CentsPerKMMaxKM:      5000,
		HomeOfficeHourly:     decimal.NewFromFloat(0.67),
		GST:                  decimal.NewFromFloat(0.10),
		DiminishingValueRate: decimal.NewFromFloat(0.25),
		PrimeCostRate:        decimal.NewFromFloat(0.125),
		CarDepreciationLimit: decimal.NewFromInt(68108),
	}
}

func floatPtr(f float64) *float64 { return &f }

func intPtr(i int) *int { return &i }

func engineInputs(t *testing.T, m *workpaper.ModuleInstance, txs calc.TransactionSource) calc.Inputs {
	t.Helper()

	return calc.Inputs{
		Job:          &workpaper.Job{ID: uuid.New(), Year: "2024-25"},
		Module:       m,
		Rates:        testRates(),
		Resolver:     calc.NewResolver(m, nil),
		Transactions: txs,
	}
}

func effectiveFixture(amount, gst float64, category workpaper.Category) workpaper.EffectiveTransaction {
	g := decimal.NewFromFloat(gst)

	return workpaper.EffectiveTransaction{
		TransactionID:      uuid.New(),
		EffectiveAmount:    decimal.NewFromFloat(amount),
		EffectiveGSTAmount: &g,
		EffectiveCategory:  category,
	}
}

func TestMotorVehicleEngine_CentsPerKM_Capped(t *testing.T) {
	m := &workpaper.ModuleInstance{
		Type:  workpaper.ModuleMotorVehicle,
		Label: "Vehicle 1",
		Config: workpaper.Config{
			Method:       workpaper.MethodCentsPerKM,
			MotorVehicle: &workpaper.MotorVehicleConfig{BusinessKM: floatPtr(6000)},
		},
	}

	res := (&calc.MotorVehicleEngine{}).Calculate(context.Background(), engineInputs(t, m, nil))

	require.Empty(t, res.Errors)
	assert.Equal(t, workpaper.MethodCentsPerKM, res.Method)

	// 5000 km cap * $0.85, then 1/11 of the claim as GST credit.
	assert.Equal(t, "4250", res.Deduction.String())
	assert.Equal(t, "386.36", res.GSTCredit.String())
	assert.Equal(t, float64(5000), res.Details["business_km_claimed"])

	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "capped")
}

func TestMotorVehicleEngine_CentsPerKM_UnderCap(t *testing.T) {
	m := &workpaper.ModuleInstance{
		Type: workpaper.ModuleMotorVehicle,
		Config: workpaper.Config{
			Method:       workpaper.MethodCentsPerKM,
			MotorVehicle: &workpaper.MotorVehicleConfig{BusinessKM: floatPtr(3000)},
		},
	}

	res := (&calc.MotorVehicleEngine{}).Calculate(context.Background(), engineInputs(t, m, nil))

	require.Empty(t, res.Errors)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, "2550", res.Deduction.String())
}

func TestMotorVehicleEngine_Logbook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := &workpaper.ModuleInstance{
		Type: workpaper.ModuleMotorVehicle,
		Config: workpaper.Config{
			Method:       workpaper.MethodLogbook,
			MotorVehicle: &workpaper.MotorVehicleConfig{LogbookPct: floatPtr(80)},
		},
	}

	txs := calc.NewMockTransactionSource(ctrl)
	in := engineInputs(t, m, txs)

	txs.EXPECT().
		EffectiveForCategories(gomock.Any(), in.Job.ID, workpaper.VehicleCategories).
		Return([]workpaper.EffectiveTransaction{
			effectiveFixture(1000, 90.91, workpaper.CategoryVehicleFuel),
			effectiveFixture(500, 45.45, workpaper.CategoryVehicleRegistration),
		}, nil)

	res := (&calc.MotorVehicleEngine{}).Calculate(context.Background(), in)

	require.Empty(t, res.Errors)
	assert.Equal(t, "1200", res.Deduction.String())
	assert.Equal(t, "109.09", res.GSTCredit.String())
	assert.Equal(t, 2, res.TransactionCount)
	assert.Equal(t, 1, res.ByCategory[workpaper.CategoryVehicleFuel].Count)
}

func TestMotorVehicleEngine_Actual(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := &workpaper.ModuleInstance{
		Type: workpaper.ModuleMotorVehicle,
		Config: workpaper.Config{
			Method:       workpaper.MethodActual,
			MotorVehicle: &workpaper.MotorVehicleConfig{BusinessPct: floatPtr(80)},
		},
	}

	txs := calc.NewMockTransactionSource(ctrl)
	in := engineInputs(t, m, txs)

	txs.EXPECT().
		EffectiveForCategories(gomock.Any(), in.Job.ID, workpaper.VehicleCategories).
		Return([]workpaper.EffectiveTransaction{
			effectiveFixture(1000, 90.91, workpaper.CategoryVehicleFuel),
			effectiveFixture(500, 45.45, workpaper.CategoryVehicleRegistration),
		}, nil)

	res := (&calc.MotorVehicleEngine{}).Calculate(context.Background(), in)

	require.Empty(t, res.Errors)
	assert.Equal(t, "1200", res.Deduction.String())
	assert.Equal(t, "109.09", res.GSTCredit.String())
	assert.Equal(t, 2, res.TransactionCount)
	assert.Equal(t, float64(80), res.Details["business_pct"])
	assert.Equal(t, 1, res.ByCategory[workpaper.CategoryVehicleFuel].Count)
}

func TestMotorVehicleEngine_Actual_Depreciation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := &workpaper.ModuleInstance{
		Type: workpaper.ModuleMotorVehicle,
		Config: workpaper.Config{
			Method: workpaper.MethodActual,
			MotorVehicle: &workpaper.MotorVehicleConfig{
				Purchase: &workpaper.AssetPurchase{
					Date:          "2024-07-01",
					Price:         33000,
					GST:           floatPtr(3000),
					GSTRegistered: true,
				},
			},
		},
	}

	txs := calc.NewMockTransactionSource(ctrl)
	in := engineInputs(t, m, txs)

	txs.EXPECT().
		EffectiveForCategories(gomock.Any(), in.Job.ID, workpaper.VehicleCategories).
		Return(nil, nil)

	res := (&calc.MotorVehicleEngine{}).Calculate(context.Background(), in)

	require.Empty(t, res.Errors)

	// GST-registered, so the cost base drops to $30,000; a full year of
	// diminishing value at 25% claims $7,500.
	assert.Equal(t, "7500", res.Deduction.String())

	dep, ok := res.Details["depreciation"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "diminishing_value", dep["method"])
	assert.Equal(t, 365, dep["days_held"])
	assert.Equal(t, "22500", dep["closing_adjustable_value"].(decimal.Decimal).String())
}

func TestMotorVehicleEngine_Actual_DepreciationCarLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := &workpaper.ModuleInstance{
		Type: workpaper.ModuleMotorVehicle,
		Config: workpaper.Config{
			Method: workpaper.MethodActual,
			MotorVehicle: &workpaper.MotorVehicleConfig{
				Purchase:           &workpaper.AssetPurchase{Date: "2025-04-01", Price: 80000},
				DepreciationMethod: workpaper.DepreciationPrimeCost,
				DaysHeld:           intPtr(73),
			},
		},
	}

	txs := calc.NewMockTransactionSource(ctrl)
	in := engineInputs(t, m, txs)

	txs.EXPECT().
		EffectiveForCategories(gomock.Any(), in.Job.ID, workpaper.VehicleCategories).
		Return(nil, nil)

	res := (&calc.MotorVehicleEngine{}).Calculate(context.Background(), in)

	require.Empty(t, res.Errors)

	// Cost base capped at the $68,108 car limit: prime cost at 12.5%
	// pro-rated over 73 of 365 days is $1,702.70.
	assert.Equal(t, "1702.7", res.Deduction.String())

	require.Len(t, res.Warnings, 2)
	assert.Contains(t, res.Warnings[1], "car limit")
}

func TestMotorVehicleEngine_Actual_SaleProfit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := &workpaper.ModuleInstance{
		Type: workpaper.ModuleMotorVehicle,
		Config: workpaper.Config{
			Method: workpaper.MethodActual,
			MotorVehicle: &workpaper.MotorVehicleConfig{
				Purchase:               &workpaper.AssetPurchase{Date: "2022-07-01", Price: 30000},
				OpeningAdjustableValue: floatPtr(10000),
				Sale:                   &workpaper.AssetSale{Date: "2025-06-30", Price: 12000},
			},
		},
	}

	txs := calc.NewMockTransactionSource(ctrl)
	in := engineInputs(t, m, txs)

	txs.EXPECT().
		EffectiveForCategories(gomock.Any(), in.Job.ID, workpaper.VehicleCategories).
		Return(nil, nil)

	res := (&calc.MotorVehicleEngine{}).Calculate(context.Background(), in)

	require.Empty(t, res.Errors)

	// Opening $10,000 declines by $2,500 to $7,500; selling for $12,000
	// makes the $4,500 excess assessable.
	assert.Equal(t, "2500", res.Deduction.String())
	assert.Equal(t, "4500", res.NetIncome.String())

	ba, ok := res.Details["balancing_adjustment"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, ba["is_profit"])
}

func TestMotorVehicleEngine_Actual_SaleLoss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := &workpaper.ModuleInstance{
		Type: workpaper.ModuleMotorVehicle,
		Config: workpaper.Config{
			Method: workpaper.MethodActual,
			MotorVehicle: &workpaper.MotorVehicleConfig{
				Purchase:               &workpaper.AssetPurchase{Date: "2022-07-01", Price: 30000},
				OpeningAdjustableValue: floatPtr(10000),
				Sale:                   &workpaper.AssetSale{Date: "2025-06-30", Price: 5000},
			},
		},
	}

	txs := calc.NewMockTransactionSource(ctrl)
	in := engineInputs(t, m, txs)

	txs.EXPECT().
		EffectiveForCategories(gomock.Any(), in.Job.ID, workpaper.VehicleCategories).
		Return(nil, nil)

	res := (&calc.MotorVehicleEngine{}).Calculate(context.Background(), in)

	require.Empty(t, res.Errors)

	// The $2,500 shortfall against the closing value of $7,500 adds to the
	// depreciation claim.
	assert.Equal(t, "5000", res.Deduction.String())
	assert.True(t, res.NetIncome.IsZero())
}

func TestMotorVehicleEngine_Actual_BusinessPctTooHigh(t *testing.T) {
	m := &workpaper.ModuleInstance{
		Type: workpaper.ModuleMotorVehicle,
		Config: workpaper.Config{
			Method:       workpaper.MethodActual,
			MotorVehicle: &workpaper.MotorVehicleConfig{BusinessPct: floatPtr(120)},
		},
	}

	res := (&calc.MotorVehicleEngine{}).Calculate(context.Background(), engineInputs(t, m, nil))

	assert.True(t, res.Failed())
}

func TestMotorVehicleEngine_UnknownMethod(t *testing.T) {
	m := &workpaper.ModuleInstance{
		Type:   workpaper.ModuleMotorVehicle,
		Config: workpaper.Config{Method: workpaper.Method("teleport")},
	}

	// Config validation happens upstream; the engine still reports the
	// fault through the result rather than panicking.
	res := (&calc.MotorVehicleEngine{}).Calculate(context.Background(), engineInputs(t, m, nil))

	assert.True(t, res.Failed())
}

func TestHomeOfficeEngine_FixedRate(t *testing.T) {
	m := &workpaper.ModuleInstance{
		Type: workpaper.ModuleHomeOffice,
		Config: workpaper.Config{
			Method:     workpaper.MethodFixedRate,
			HomeOffice: &workpaper.HomeOfficeConfig{HoursWorked: floatPtr(2100)},
		},
	}

	res := (&calc.HomeOfficeEngine{}).Calculate(context.Background(), engineInputs(t, m, nil))

	require.Empty(t, res.Errors)
	assert.Equal(t, "1407", res.Deduction.String())
	assert.True(t, res.GSTCredit.IsZero())
}

func TestHomeOfficeEngine_Actual(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := &workpaper.ModuleInstance{
		Type: workpaper.ModuleHomeOffice,
		Config: workpaper.Config{
			Method: workpaper.MethodActual,
			HomeOffice: &workpaper.HomeOfficeConfig{
				FloorAreaPct:   floatPtr(20),
				BusinessUsePct: floatPtr(50),
			},
		},
	}

	txs := calc.NewMockTransactionSource(ctrl)
	in := engineInputs(t, m, txs)

	txs.EXPECT().
		EffectiveForCategories(gomock.Any(), in.Job.ID, workpaper.HomeCategories).
		Return([]workpaper.EffectiveTransaction{
			effectiveFixture(2000, 181.82, workpaper.CategoryHomeElectricity),
		}, nil)

	res := (&calc.HomeOfficeEngine{}).Calculate(context.Background(), in)

	require.Empty(t, res.Errors)
	assert.Equal(t, "200", res.Deduction.String())
	assert.Equal(t, "18.18", res.GSTCredit.String())
}

func TestCommsEngine_MobileDefaultPct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := &workpaper.ModuleInstance{Type: workpaper.ModuleMobile}

	txs := calc.NewMockTransactionSource(ctrl)
	in := engineInputs(t, m, txs)

	// No business_pct configured; the engine claims the 50% default
	// against the mobile category only.
	txs.EXPECT().
		EffectiveForCategories(gomock.Any(), in.Job.ID, []workpaper.Category{workpaper.CategoryMobile}).
		Return([]workpaper.EffectiveTransaction{
			effectiveFixture(1200, 109.09, workpaper.CategoryMobile),
		}, nil)

	res := (&calc.CommsEngine{}).Calculate(context.Background(), in)

	require.Empty(t, res.Errors)
	assert.Equal(t, "600", res.Deduction.String())
	assert.Equal(t, float64(50), res.Details["business_pct"])
}

func TestFDCIncomeEngine_GSTRegistered(t *testing.T) {
	gstRegistered := true

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := &workpaper.ModuleInstance{
		Type:   workpaper.ModuleFDCIncome,
		Config: workpaper.Config{FDCIncome: &workpaper.FDCIncomeConfig{GSTRegistered: &gstRegistered}},
	}

	txs := calc.NewMockTransactionSource(ctrl)
	in := engineInputs(t, m, txs)

	txs.EXPECT().
		EffectiveForCategories(gomock.Any(), in.Job.ID, []workpaper.Category{workpaper.CategoryFDCIncome}).
		Return([]workpaper.EffectiveTransaction{
			effectiveFixture(55000, 5000, workpaper.CategoryFDCIncome),
		}, nil)

	res := (&calc.FDCIncomeEngine{}).Calculate(context.Background(), in)

	require.Empty(t, res.Errors)
	assert.Equal(t, "50000", res.NetIncome.String())
}

func TestFoodGSTEngine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := &workpaper.ModuleInstance{
		Type:   workpaper.ModuleFoodGST,
		Config: workpaper.Config{FoodGST: &workpaper.FoodGSTConfig{FDCPct: floatPtr(70)}},
	}

	txs := calc.NewMockTransactionSource(ctrl)
	in := engineInputs(t, m, txs)

	txs.EXPECT().
		EffectiveForCategories(gomock.Any(), in.Job.ID, []workpaper.Category{workpaper.CategoryFDCFood}).
		Return([]workpaper.EffectiveTransaction{
			effectiveFixture(10000, 0, workpaper.CategoryFDCFood),
		}, nil)

	res := (&calc.FoodGSTEngine{}).Calculate(context.Background(), in)

	require.Empty(t, res.Errors)
	assert.Equal(t, "7000", res.Deduction.String())
}

func TestSummaryEngine(t *testing.T) {
	mv := &workpaper.ModuleInstance{
		Type:  workpaper.ModuleMotorVehicle,
		Label: "Vehicle 1",
		OutputSummary: &workpaper.Result{
			Deduction: decimal.NewFromInt(4250),
			GSTCredit: decimal.NewFromFloat(386.36),
		},
	}

	income := &workpaper.ModuleInstance{
		Type:          workpaper.ModuleFDCIncome,
		Label:         "FDC Income",
		OutputSummary: &workpaper.Result{NetIncome: decimal.NewFromInt(50000)},
	}

	// Never calculated; contributes nothing but still counts as a module.
	pending := &workpaper.ModuleInstance{Type: workpaper.ModuleHomeOffice, Label: "Home Office"}

	summary := &workpaper.ModuleInstance{Type: workpaper.ModuleSummary, Label: "Summary"}

	in := calc.Inputs{
		Job:      &workpaper.Job{ID: uuid.New(), Year: "2024-25"},
		Module:   summary,
		Rates:    testRates(),
		Resolver: calc.NewResolver(summary, nil),
		Siblings: []*workpaper.ModuleInstance{mv, income, pending, summary},
	}

	res := (&calc.SummaryEngine{}).Calculate(context.Background(), in)

	require.Empty(t, res.Errors)
	assert.Equal(t, "4250", res.TotalDeductions.String())
	assert.Equal(t, "50000", res.TotalIncome.String())
	assert.Equal(t, "45750", res.NetTaxable.String())
	assert.Equal(t, 3, res.Details["module_count"])

	assert.Contains(t, res.ByModule, workpaper.ModuleMotorVehicle)
	assert.NotContains(t, res.ByModule, workpaper.ModuleSummary)
	assert.NotContains(t, res.ByModule, workpaper.ModuleHomeOffice)
}

func TestResolver_Precedence(t *testing.T) {
	m := &workpaper.ModuleInstance{
		Type: workpaper.ModuleMotorVehicle,
		Config: workpaper.Config{
			Method:       workpaper.MethodLogbook,
			MotorVehicle: &workpaper.MotorVehicleConfig{BusinessKM: floatPtr(3000)},
		},
	}

	overrides := []*workpaper.OverrideRecord{
		{FieldKey: "method", EffectiveValue: "cents_per_km", Reason: "client has no logbook"},
		{FieldKey: "business_km", EffectiveValue: 4000.0, Reason: "diary evidence"},
	}

	r := calc.NewResolver(m, overrides)

	// Override beats config.
	assert.Equal(t, workpaper.MethodCentsPerKM, r.Method())
	assert.Equal(t, float64(4000), r.Float("business_km", 0))

	// Config beats default when no override exists.
	plain := calc.NewResolver(m, nil)
	assert.Equal(t, workpaper.MethodLogbook, plain.Method())
	assert.Equal(t, float64(3000), plain.Float("business_km", 0))

	// Module-type default when nothing is set.
	empty := calc.NewResolver(&workpaper.ModuleInstance{Type: workpaper.ModuleMotorVehicle}, nil)
	assert.Equal(t, workpaper.MethodCentsPerKM, empty.Method())
}
