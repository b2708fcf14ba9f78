package calc

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/FDCTax/fdctax-core-api-sub002/internal/rates"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/workpaper"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=calc

// ModuleSource provides module/job state and persists calculation output.
// *job.Service satisfies it.
type ModuleSource interface {
	GetJob(ctx context.Context, id uuid.UUID) (*workpaper.Job, error)
	GetModule(ctx context.Context, id uuid.UUID) (*workpaper.ModuleInstance, error)
	ListModules(ctx context.Context, jobID uuid.UUID) ([]*workpaper.ModuleInstance, error)
	ListFieldOverrides(ctx context.Context, moduleID uuid.UUID) ([]*workpaper.OverrideRecord, error)
	SaveModuleOutput(ctx context.Context, moduleID uuid.UUID, out *workpaper.Result, inputs map[string]any) error
}

type Service struct {
	modules  ModuleSource
	txs      TransactionSource
	registry *Registry
	rates    rates.Provider
}

func NewService(modules ModuleSource, txs TransactionSource, registry *Registry, provider rates.Provider) *Service {
	if registry == nil {
		registry = NewRegistry()
	}

	return &Service{modules: modules, txs: txs, registry: registry, rates: provider}
}

// CalculateModule runs the module's engine and persists the output summary.
// Frozen modules are rejected before any engine runs. Engine-level faults
// (unknown method, unregistered type) come back inside the result's errors
// list, not as a Go error.
func (s *Service) CalculateModule(ctx context.Context, moduleID uuid.UUID) (*workpaper.Result, error) {
	m, err := s.modules.GetModule(ctx, moduleID)
	if err != nil {
		return nil, err
	}

	if m.Frozen() {
		return nil, workpaper.NewConflictError("cannot calculate frozen module %s", moduleID)
	}

	j, err := s.modules.GetJob(ctx, m.JobID)
	if err != nil {
		return nil, err
	}

	overrides, err := s.modules.ListFieldOverrides(ctx, moduleID)
	if err != nil {
		return nil, fmt.Errorf("listing field overrides: %w", err)
	}

	yearRates, known := s.rates.ForYear(j.Year)

	in := Inputs{
		Job:          j,
		Module:       m,
		Rates:        yearRates,
		Resolver:     NewResolver(m, overrides),
		Transactions: s.txs,
	}

	if m.Type == workpaper.ModuleSummary {
		siblings, err := s.modules.ListModules(ctx, m.JobID)
		if err != nil {
			return nil, fmt.Errorf("listing sibling modules: %w", err)
		}

		in.Siblings = siblings
	}

	var result workpaper.Result

	engine, ok := s.registry.Engine(m.Type)
	if !ok {
		result = workpaper.ErrorResult(fmt.Sprintf("no engine registered for module type %q", m.Type))
	} else {
		result = engine.Calculate(ctx, in)
	}

	if !known {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("no published rates for tax year %s, using %s", j.Year, yearRates.Year))
	}

	inputs := resolvedInputs(m.Type, in.Resolver)
	m.CalculationInputs = inputs

	if err := s.modules.SaveModuleOutput(ctx, moduleID, &result, inputs); err != nil {
		return nil, fmt.Errorf("saving output: %w", err)
	}

	slog.Info("calculated module",
		"module_id", moduleID,
		"module_type", string(m.Type),
		"deduction", result.Deduction,
		"errors", len(result.Errors),
	)

	return &result, nil
}

// resolvedInputs records what the calculation consumed: the resolved
// method and every resolvable input field that carried a value. Snapshotted
// with the module so a frozen result stays explainable.
func resolvedInputs(t workpaper.ModuleType, r Resolver) map[string]any {
	inputs := make(map[string]any)

	if method := r.Method(); method != "" {
		inputs["method"] = string(method)
	}

	for _, key := range workpaper.InputFields(t) {
		if v, ok := r.Value(key); ok {
			inputs[key] = v
		}
	}

	return inputs
}

// ModuleResult is one slot in a batch calculation: a result or the error
// that prevented it.
type ModuleResult struct {
	Result *workpaper.Result
	Err    error
}

// CalculateAll runs every non-summary module for the job, capturing
// per-module failures without aborting the batch, then runs the summary
// module last so it reduces fresh outputs.
func (s *Service) CalculateAll(ctx context.Context, jobID uuid.UUID) (map[uuid.UUID]ModuleResult, error) {
	if _, err := s.modules.GetJob(ctx, jobID); err != nil {
		return nil, err
	}

	modules, err := s.modules.ListModules(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("listing modules: %w", err)
	}

	results := make(map[uuid.UUID]ModuleResult, len(modules))

	var summary *workpaper.ModuleInstance

	for _, m := range modules {
		if m.Type == workpaper.ModuleSummary {
			summary = m
			continue
		}

		res, err := s.CalculateModule(ctx, m.ID)
		if err != nil {
			slog.Error("module calculation failed", "module_id", m.ID, "error", err)
		}

		results[m.ID] = ModuleResult{Result: res, Err: err}
	}

	if summary != nil {
		res, err := s.CalculateModule(ctx, summary.ID)
		if err != nil {
			slog.Error("summary calculation failed", "module_id", summary.ID, "error", err)
		}

		results[summary.ID] = ModuleResult{Result: res, Err: err}
	}

	return results, nil
}
