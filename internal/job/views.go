package job

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/FDCTax/fdctax-core-api-sub002/internal/workpaper"
)

// ModuleSummary is one module's row on the job dashboard.
type ModuleSummary struct {
	ID             uuid.UUID            `json:"id"`
	Type           workpaper.ModuleType `json:"module_type"`
	Label          string               `json:"label"`
	Status         workpaper.Status     `json:"status"`
	OpenQueryCount int                  `json:"open_query_count"`
	OutputSummary  *workpaper.Result    `json:"output_summary,omitempty"`
	FrozenAt       *time.Time           `json:"frozen_at,omitempty"`
}

// Dashboard is the job-level view: the job plus per-module summaries and
// aggregate totals.
type Dashboard struct {
	Job            *workpaper.Job  `json:"job"`
	Modules        []ModuleSummary `json:"modules"`
	TotalDeduction decimal.Decimal `json:"total_deduction"`
	TotalIncome    decimal.Decimal `json:"total_income"`
	OpenQueries    int             `json:"open_queries"`
}

// Detail is the module-level view: the module with its available methods,
// overrides, queries and effective transactions.
type Detail struct {
	Module                *workpaper.ModuleInstance        `json:"module"`
	AvailableMethods      []workpaper.MethodOption         `json:"available_methods,omitempty"`
	Overrides             []*workpaper.OverrideRecord      `json:"overrides"`
	Queries               []*workpaper.Query               `json:"queries"`
	EffectiveTransactions []workpaper.EffectiveTransaction `json:"effective_transactions"`
}

// Dashboard assembles the job dashboard view.
func (s *Service) Dashboard(ctx context.Context, jobID uuid.UUID) (*Dashboard, error) {
	j, err := s.repo.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	modules, err := s.repo.ListModulesByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("listing modules: %w", err)
	}

	queries, err := s.queries.ListByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("listing queries: %w", err)
	}

	openByModule := make(map[uuid.UUID]int)

	openTotal := 0

	for _, q := range queries {
		if !q.Status.Open() {
			continue
		}

		openTotal++

		if q.ModuleID != nil {
			openByModule[*q.ModuleID]++
		}
	}

	d := &Dashboard{
		Job:         j,
		Modules:     make([]ModuleSummary, 0, len(modules)),
		OpenQueries: openTotal,
	}

	for _, m := range modules {
		d.Modules = append(d.Modules, ModuleSummary{
			ID:             m.ID,
			Type:           m.Type,
			Label:          m.Label,
			Status:         m.Status,
			OpenQueryCount: openByModule[m.ID],
			OutputSummary:  m.OutputSummary,
			FrozenAt:       m.FrozenAt,
		})

		if m.Type == workpaper.ModuleSummary || m.OutputSummary == nil {
			continue
		}

		d.TotalDeduction = d.TotalDeduction.Add(m.OutputSummary.Deduction)
		d.TotalIncome = d.TotalIncome.Add(m.OutputSummary.NetIncome)
	}

	return d, nil
}

// ModuleDetail assembles the module detail view.
func (s *Service) ModuleDetail(ctx context.Context, moduleID uuid.UUID) (*Detail, error) {
	m, err := s.repo.GetModule(ctx, moduleID)
	if err != nil {
		return nil, err
	}

	overrides, err := s.repo.ListFieldOverrides(ctx, moduleID)
	if err != nil {
		return nil, fmt.Errorf("listing overrides: %w", err)
	}

	queries, err := s.queries.ListByModule(ctx, moduleID)
	if err != nil {
		return nil, fmt.Errorf("listing queries: %w", err)
	}

	effs, err := s.effs.EffectiveForModule(ctx, moduleID, m.JobID)
	if err != nil {
		return nil, fmt.Errorf("building effective transactions: %w", err)
	}

	return &Detail{
		Module:                m,
		AvailableMethods:      workpaper.MethodOptions(m.Type),
		Overrides:             overrides,
		Queries:               queries,
		EffectiveTransactions: effs,
	}, nil
}
