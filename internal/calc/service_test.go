package calc_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/FDCTax/fdctax-core-api-sub002/internal/calc"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/rates"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/workpaper"
)

func testProvider() rates.Provider {
	return rates.Static{"2024-25": testRates()}
}

func TestService_CalculateModule(t *testing.T) {
	jobID := uuid.New()
	moduleID := uuid.New()

	job := &workpaper.Job{ID: jobID, ClientID: "client-1", Year: "2024-25"}

	module := &workpaper.ModuleInstance{
		ID:     moduleID,
		JobID:  jobID,
		Type:   workpaper.ModuleMotorVehicle,
		Label:  "Vehicle 1",
		Status: workpaper.StatusInProgress,
		Config: workpaper.Config{
			Method:       workpaper.MethodCentsPerKM,
			MotorVehicle: &workpaper.MotorVehicleConfig{BusinessKM: floatPtr(4000)},
		},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	modules := calc.NewMockModuleSource(ctrl)
	txs := calc.NewMockTransactionSource(ctrl)

	modules.EXPECT().GetModule(gomock.Any(), moduleID).Return(module, nil)
	modules.EXPECT().GetJob(gomock.Any(), jobID).Return(job, nil)
	modules.EXPECT().ListFieldOverrides(gomock.Any(), moduleID).Return(nil, nil)
	modules.EXPECT().
		SaveModuleOutput(gomock.Any(), moduleID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, out *workpaper.Result, inputs map[string]any) error {
			assert.Equal(t, "3400", out.Deduction.String())

			// The resolved inputs are persisted alongside the output.
			assert.Equal(t, string(workpaper.MethodCentsPerKM), inputs["method"])
			assert.Equal(t, float64(4000), inputs["business_km"])

			return nil
		})

	svc := calc.NewService(modules, txs, calc.NewRegistry(), testProvider())

	res, err := svc.CalculateModule(context.Background(), moduleID)
	require.NoError(t, err)
	assert.Equal(t, "3400", res.Deduction.String())
	assert.Empty(t, res.Warnings)
}

func TestService_CalculateModule_Frozen(t *testing.T) {
	moduleID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	modules := calc.NewMockModuleSource(ctrl)
	txs := calc.NewMockTransactionSource(ctrl)

	// Frozen modules are rejected before any engine runs, so no further
	// repository calls are expected.
	modules.EXPECT().
		GetModule(gomock.Any(), moduleID).
		Return(&workpaper.ModuleInstance{ID: moduleID, Status: workpaper.StatusFrozen}, nil)

	svc := calc.NewService(modules, txs, calc.NewRegistry(), testProvider())

	res, err := svc.CalculateModule(context.Background(), moduleID)
	assert.Nil(t, res)
	assert.True(t, workpaper.IsConflict(err))
}

func TestService_CalculateModule_UnknownYearWarns(t *testing.T) {
	jobID := uuid.New()
	moduleID := uuid.New()

	module := &workpaper.ModuleInstance{
		ID:     moduleID,
		JobID:  jobID,
		Type:   workpaper.ModuleHomeOffice,
		Status: workpaper.StatusInProgress,
		Config: workpaper.Config{
			Method:     workpaper.MethodFixedRate,
			HomeOffice: &workpaper.HomeOfficeConfig{HoursWorked: floatPtr(100)},
		},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	modules := calc.NewMockModuleSource(ctrl)
	txs := calc.NewMockTransactionSource(ctrl)

	modules.EXPECT().GetModule(gomock.Any(), moduleID).Return(module, nil)
	modules.EXPECT().
		GetJob(gomock.Any(), jobID).
		Return(&workpaper.Job{ID: jobID, Year: "2031-32"}, nil)
	modules.EXPECT().ListFieldOverrides(gomock.Any(), moduleID).Return(nil, nil)
	modules.EXPECT().SaveModuleOutput(gomock.Any(), moduleID, gomock.Any(), gomock.Any()).Return(nil)

	svc := calc.NewService(modules, txs, calc.NewRegistry(), testProvider())

	res, err := svc.CalculateModule(context.Background(), moduleID)
	require.NoError(t, err)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "no published rates")
}

func TestService_CalculateModule_UnregisteredType(t *testing.T) {
	jobID := uuid.New()
	moduleID := uuid.New()

	module := &workpaper.ModuleInstance{
		ID:     moduleID,
		JobID:  jobID,
		Type:   workpaper.ModuleType("crypto"),
		Status: workpaper.StatusInProgress,
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	modules := calc.NewMockModuleSource(ctrl)
	txs := calc.NewMockTransactionSource(ctrl)

	modules.EXPECT().GetModule(gomock.Any(), moduleID).Return(module, nil)
	modules.EXPECT().GetJob(gomock.Any(), jobID).Return(&workpaper.Job{ID: jobID, Year: "2024-25"}, nil)
	modules.EXPECT().ListFieldOverrides(gomock.Any(), moduleID).Return(nil, nil)
	modules.EXPECT().SaveModuleOutput(gomock.Any(), moduleID, gomock.Any(), gomock.Any()).Return(nil)

	svc := calc.NewService(modules, txs, calc.NewRegistry(), testProvider())

	// The fault lands in the stored result, not in the Go error.
	res, err := svc.CalculateModule(context.Background(), moduleID)
	require.NoError(t, err)
	assert.True(t, res.Failed())
	assert.Contains(t, res.Errors[0], "no engine registered")
}

func TestService_CalculateAll_SummaryLast(t *testing.T) {
	jobID := uuid.New()
	job := &workpaper.Job{ID: jobID, ClientID: "client-1", Year: "2024-25"}

	mv := &workpaper.ModuleInstance{
		ID:     uuid.New(),
		JobID:  jobID,
		Type:   workpaper.ModuleMotorVehicle,
		Status: workpaper.StatusInProgress,
		Config: workpaper.Config{
			Method:       workpaper.MethodCentsPerKM,
			MotorVehicle: &workpaper.MotorVehicleConfig{BusinessKM: floatPtr(1000)},
		},
	}

	summary := &workpaper.ModuleInstance{
		ID:     uuid.New(),
		JobID:  jobID,
		Type:   workpaper.ModuleSummary,
		Status: workpaper.StatusInProgress,
	}

	// Summary is listed first but must calculate after the motor vehicle
	// module so it reduces fresh output.
	all := []*workpaper.ModuleInstance{summary, mv}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	modules := calc.NewMockModuleSource(ctrl)
	txs := calc.NewMockTransactionSource(ctrl)

	modules.EXPECT().GetJob(gomock.Any(), jobID).Return(job, nil).AnyTimes()
	modules.EXPECT().ListModules(gomock.Any(), jobID).Return(all, nil).AnyTimes()
	modules.EXPECT().GetModule(gomock.Any(), mv.ID).Return(mv, nil)
	modules.EXPECT().GetModule(gomock.Any(), summary.ID).Return(summary, nil)
	modules.EXPECT().ListFieldOverrides(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	var order []uuid.UUID

	modules.EXPECT().
		SaveModuleOutput(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID, out *workpaper.Result, _ map[string]any) error {
			order = append(order, id)

			// Feed the batch's own output back, the way the store does.
			for _, m := range all {
				if m.ID == id {
					m.OutputSummary = out
				}
			}

			return nil
		}).
		Times(2)

	svc := calc.NewService(modules, txs, calc.NewRegistry(), testProvider())

	results, err := svc.CalculateAll(context.Background(), jobID)
	require.NoError(t, err)
	require.Len(t, results, 2)

	require.Equal(t, []uuid.UUID{mv.ID, summary.ID}, order)

	sumRes := results[summary.ID]
	require.NoError(t, sumRes.Err)
	assert.Equal(t, "850", sumRes.Result.TotalDeductions.String())
}

func TestService_CalculateAll_CapturesFailures(t *testing.T) {
	jobID := uuid.New()
	job := &workpaper.Job{ID: jobID, Year: "2024-25"}

	broken := &workpaper.ModuleInstance{
		ID:     uuid.New(),
		JobID:  jobID,
		Type:   workpaper.ModuleHomeOffice,
		Status: workpaper.StatusInProgress,
	}

	healthy := &workpaper.ModuleInstance{
		ID:     uuid.New(),
		JobID:  jobID,
		Type:   workpaper.ModuleMotorVehicle,
		Status: workpaper.StatusInProgress,
		Config: workpaper.Config{
			Method:       workpaper.MethodCentsPerKM,
			MotorVehicle: &workpaper.MotorVehicleConfig{BusinessKM: floatPtr(1000)},
		},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	modules := calc.NewMockModuleSource(ctrl)
	txs := calc.NewMockTransactionSource(ctrl)

	modules.EXPECT().GetJob(gomock.Any(), jobID).Return(job, nil).AnyTimes()
	modules.EXPECT().
		ListModules(gomock.Any(), jobID).
		Return([]*workpaper.ModuleInstance{broken, healthy}, nil)
	modules.EXPECT().
		GetModule(gomock.Any(), broken.ID).
		Return(nil, errors.New("db error"))
	modules.EXPECT().GetModule(gomock.Any(), healthy.ID).Return(healthy, nil)
	modules.EXPECT().ListFieldOverrides(gomock.Any(), healthy.ID).Return(nil, nil)
	modules.EXPECT().SaveModuleOutput(gomock.Any(), healthy.ID, gomock.Any(), gomock.Any()).Return(nil)

	svc := calc.NewService(modules, txs, calc.NewRegistry(), testProvider())

	// One module failing never aborts the batch.
	results, err := svc.CalculateAll(context.Background(), jobID)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Error(t, results[broken.ID].Err)
	assert.NoError(t, results[healthy.ID].Err)
	assert.Equal(t, "850", results[healthy.ID].Result.Deduction.String())
}
