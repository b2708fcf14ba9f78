// Package freeze snapshots calculated workpaper state, enforces
// immutability of frozen modules and jobs, and supports audited reopen.
package freeze

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/FDCTax/fdctax-core-api-sub002/internal/audit"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/calc"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/workpaper"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=freeze
type Repository interface {
	// Begin opens the atomic unit for a freeze or reopen. Snapshot write
	// and status flips either all commit or none do.
	Begin(ctx context.Context) (Tx, error)

	GetSnapshot(ctx context.Context, id uuid.UUID) (*workpaper.FreezeSnapshot, error)
	ListSnapshotsByJob(ctx context.Context, jobID uuid.UUID) ([]*workpaper.FreezeSnapshot, error)
	ListSnapshotsByModule(ctx context.Context, moduleID uuid.UUID) ([]*workpaper.FreezeSnapshot, error)
	// LatestSnapshot returns the newest snapshot for a job, optionally
	// narrowed to one type.
	LatestSnapshot(ctx context.Context, jobID uuid.UUID, snapshotType *workpaper.SnapshotType) (*workpaper.FreezeSnapshot, error)
}

// Tx is one freeze-engine commit unit. LockJob takes a row lock that
// serializes concurrent freezes of the same job.
type Tx interface {
	LockJob(ctx context.Context, jobID uuid.UUID) (*workpaper.Job, error)
	ListModules(ctx context.Context, jobID uuid.UUID) ([]*workpaper.ModuleInstance, error)
	CreateSnapshot(ctx context.Context, snap *workpaper.FreezeSnapshot) error
	FreezeModule(ctx context.Context, moduleID uuid.UUID, at time.Time) error
	ReopenModule(ctx context.Context, moduleID uuid.UUID) error
	SetJobStatus(ctx context.Context, jobID uuid.UUID, status workpaper.Status, frozenAt *time.Time) error
	Commit() error
	Rollback() error
}

// ModuleSource is the slice of the job service the freeze engine reads.
type ModuleSource interface {
	GetJob(ctx context.Context, id uuid.UUID) (*workpaper.Job, error)
	GetModule(ctx context.Context, id uuid.UUID) (*workpaper.ModuleInstance, error)
	ListModules(ctx context.Context, jobID uuid.UUID) ([]*workpaper.ModuleInstance, error)
	ListFieldOverrides(ctx context.Context, moduleID uuid.UUID) ([]*workpaper.OverrideRecord, error)
}

// Calculator forces recalculation so a snapshot never captures stale
// numbers.
type Calculator interface {
	CalculateModule(ctx context.Context, moduleID uuid.UUID) (*workpaper.Result, error)
	CalculateAll(ctx context.Context, jobID uuid.UUID) (map[uuid.UUID]calc.ModuleResult, error)
}

// EffectiveSource supplies the effective transactions captured in module
// payloads.
type EffectiveSource interface {
	EffectiveForModule(ctx context.Context, moduleID, jobID uuid.UUID) ([]workpaper.EffectiveTransaction, error)
	ListOverrides(ctx context.Context, jobID uuid.UUID) ([]*workpaper.TransactionOverride, error)
}

// QuerySource supplies the queries captured in module payloads.
type QuerySource interface {
	ListByModule(ctx context.Context, moduleID uuid.UUID) ([]*workpaper.Query, error)
}

type Service struct {
	repo    Repository
	modules ModuleSource
	calc    Calculator
	effs    EffectiveSource
	queries QuerySource
	audit   audit.Sink
}

func NewService(repo Repository, modules ModuleSource, calculator Calculator, effs EffectiveSource, queries QuerySource, sink audit.Sink) *Service {
	if sink == nil {
		sink = audit.Nop{}
	}

	return &Service{
		repo:    repo,
		modules: modules,
		calc:    calculator,
		effs:    effs,
		queries: queries,
		audit:   sink,
	}
}

// FreezeModule snapshots one module and marks it frozen. Recalculates
// first when no output is cached, so a snapshot never captures empty
// state.
func (s *Service) FreezeModule(ctx context.Context, moduleID uuid.UUID, actor workpaper.Actor) (*workpaper.FreezeSnapshot, error) {
	if actor.ID == "" {
		return nil, workpaper.NewValidationError("actor", "required")
	}

	m, err := s.modules.GetModule(ctx, moduleID)
	if err != nil {
		return nil, err
	}

	if m.Frozen() {
		return nil, workpaper.NewConflictError("module %s is already frozen", moduleID)
	}

	if m.OutputSummary == nil {
		if _, err := s.calc.CalculateModule(ctx, moduleID); err != nil {
			return nil, fmt.Errorf("calculating module before freeze: %w", err)
		}

		if m, err = s.modules.GetModule(ctx, moduleID); err != nil {
			return nil, err
		}
	}

	payload, err := s.modulePayload(ctx, m)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	snap := &workpaper.FreezeSnapshot{
		JobID:    m.JobID,
		ModuleID: &m.ID,
		Type:     workpaper.SnapshotModule,
		Data:     payload,
		Summary:  resultSummary(m.OutputSummary),
		Actor:    actor,
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.LockJob(ctx, m.JobID); err != nil {
		return nil, err
	}

	siblings, err := tx.ListModules(ctx, m.JobID)
	if err != nil {
		return nil, err
	}

	for _, sib := range siblings {
		if sib.ID == m.ID && sib.Frozen() {
			return nil, workpaper.NewConflictError("module %s is already frozen", moduleID)
		}
	}

	if err := tx.CreateSnapshot(ctx, snap); err != nil {
		return nil, err
	}

	if err := tx.FreezeModule(ctx, m.ID, now); err != nil {
		return nil, err
	}

	for _, sib := range siblings {
		if sib.ID == m.ID {
			sib.Status = workpaper.StatusFrozen
		}
	}

	derived := workpaper.DeriveJobStatus(siblings)

	var jobFrozenAt *time.Time
	if derived == workpaper.StatusFrozen {
		jobFrozenAt = &now
	}

	if err := tx.SetJobStatus(ctx, m.JobID, derived, jobFrozenAt); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing module freeze: %w", err)
	}

	s.audit.Log(ctx, audit.Entry{
		Action:       audit.ActionModuleFreeze,
		ResourceType: audit.ResourceModule,
		ResourceID:   moduleID.String(),
		Actor:        actor,
		Details: map[string]any{
			"job_id":      m.JobID.String(),
			"snapshot_id": snap.ID.String(),
			"label":       m.Label,
		},
	})

	slog.Info("module frozen", "module_id", moduleID, "job_id", m.JobID, "snapshot_id", snap.ID)

	return snap, nil
}

type FreezeJobParams struct {
	JobID uuid.UUID
	Type  workpaper.SnapshotType
	Actor workpaper.Actor
	// RequireAllCompleted rejects the freeze unless every module is
	// completed, frozen or not applicable.
	RequireAllCompleted bool
}

// FreezeJob recalculates every module, snapshots the whole job and
// freezes it together with every applicable module.
func (s *Service) FreezeJob(ctx context.Context, params FreezeJobParams) (*workpaper.FreezeSnapshot, error) {
	if params.Actor.ID == "" {
		return nil, workpaper.NewValidationError("actor", "required")
	}

	switch params.Type {
	case workpaper.SnapshotBAS, workpaper.SnapshotITR, workpaper.SnapshotSummary:
	default:
		return nil, workpaper.NewValidationError("snapshot_type",
			fmt.Sprintf("unknown job snapshot type %q", params.Type))
	}

	j, err := s.modules.GetJob(ctx, params.JobID)
	if err != nil {
		return nil, err
	}

	if j.Status == workpaper.StatusFrozen {
		return nil, workpaper.NewConflictError("job %s is already frozen", params.JobID)
	}

	modules, err := s.modules.ListModules(ctx, params.JobID)
	if err != nil {
		return nil, err
	}

	if params.RequireAllCompleted {
		var offending []string

		for _, m := range modules {
			switch m.Status {
			case workpaper.StatusCompleted, workpaper.StatusFrozen, workpaper.StatusNA:
			default:
				offending = append(offending, m.Label)
			}
		}

		if len(offending) > 0 {
			return nil, workpaper.NewValidationError("modules",
				"must be completed before freeze: "+strings.Join(offending, ", "))
		}
	}

	// Freeze reflects current numbers, so recalculate everything first.
	// Per-module calculation errors land in that module's stored result
	// and are carried into the snapshot rather than aborting the freeze.
	results, err := s.calc.CalculateAll(ctx, params.JobID)
	if err != nil {
		return nil, fmt.Errorf("recalculating before freeze: %w", err)
	}

	for id, r := range results {
		if r.Err != nil {
			slog.Warn("module failed to recalculate before freeze", "module_id", id, "error", r.Err)
		}
	}

	if modules, err = s.modules.ListModules(ctx, params.JobID); err != nil {
		return nil, err
	}

	modulePayloads := make([]map[string]any, 0, len(modules))
	summary := jobSummary(modules)

	for _, m := range modules {
		payload, err := s.modulePayload(ctx, m)
		if err != nil {
			return nil, err
		}

		modulePayloads = append(modulePayloads, payload)
	}

	txOverrides, err := s.effs.ListOverrides(ctx, params.JobID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	snap := &workpaper.FreezeSnapshot{
		JobID: params.JobID,
		Type:  params.Type,
		Data: map[string]any{
			"job": map[string]any{
				"id":        j.ID.String(),
				"client_id": j.ClientID,
				"year":      j.Year,
				"status":    string(j.Status),
				"notes":     j.Notes,
			},
			"modules":               modulePayloads,
			"transaction_overrides": txOverrides,
		},
		Summary: summary,
		Actor:   params.Actor,
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	locked, err := tx.LockJob(ctx, params.JobID)
	if err != nil {
		return nil, err
	}

	if locked.Status == workpaper.StatusFrozen {
		return nil, workpaper.NewConflictError("job %s is already frozen", params.JobID)
	}

	if err := tx.CreateSnapshot(ctx, snap); err != nil {
		return nil, err
	}

	for _, m := range modules {
		if m.Status == workpaper.StatusNA || m.Frozen() {
			continue
		}

		if err := tx.FreezeModule(ctx, m.ID, now); err != nil {
			return nil, err
		}
	}

	if err := tx.SetJobStatus(ctx, params.JobID, workpaper.StatusFrozen, &now); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing job freeze: %w", err)
	}

	s.audit.Log(ctx, audit.Entry{
		Action:       audit.ActionJobFreeze,
		ResourceType: audit.ResourceJob,
		ResourceID:   params.JobID.String(),
		Actor:        params.Actor,
		Details: map[string]any{
			"snapshot_id":   snap.ID.String(),
			"snapshot_type": string(params.Type),
			"totals":        summary,
		},
	})

	slog.Info("job frozen", "job_id", params.JobID, "snapshot_type", params.Type, "snapshot_id", snap.ID)

	return snap, nil
}

// ReopenModule moves a frozen module back to IN_PROGRESS. A frozen job
// cannot coexist with a non-frozen module, so a frozen owning job reopens
// with it.
func (s *Service) ReopenModule(ctx context.Context, moduleID uuid.UUID, actor workpaper.Actor, reason string) (*workpaper.ModuleInstance, error) {
	if reason == "" {
		return nil, workpaper.NewValidationError("reason", "required to reopen a frozen module")
	}

	if actor.ID == "" {
		return nil, workpaper.NewValidationError("actor", "required")
	}

	m, err := s.modules.GetModule(ctx, moduleID)
	if err != nil {
		return nil, err
	}

	if !m.Frozen() {
		return nil, workpaper.NewConflictError("module %s is not frozen", moduleID)
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.LockJob(ctx, m.JobID); err != nil {
		return nil, err
	}

	if err := tx.ReopenModule(ctx, moduleID); err != nil {
		return nil, err
	}

	modules, err := tx.ListModules(ctx, m.JobID)
	if err != nil {
		return nil, err
	}

	for _, sib := range modules {
		if sib.ID == moduleID {
			sib.Status = workpaper.StatusInProgress
			sib.FrozenAt = nil
		}
	}

	derived := workpaper.DeriveJobStatus(modules)

	if err := tx.SetJobStatus(ctx, m.JobID, derived, nil); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing module reopen: %w", err)
	}

	s.audit.Log(ctx, audit.Entry{
		Action:       audit.ActionModuleReopen,
		ResourceType: audit.ResourceModule,
		ResourceID:   moduleID.String(),
		Actor:        actor,
		Details: map[string]any{
			"job_id": m.JobID.String(),
			"reason": reason,
		},
	})

	m.Status = workpaper.StatusInProgress
	m.FrozenAt = nil

	return m, nil
}

func (s *Service) GetSnapshot(ctx context.Context, id uuid.UUID) (*workpaper.FreezeSnapshot, error) {
	return s.repo.GetSnapshot(ctx, id)
}

func (s *Service) ListSnapshotsByJob(ctx context.Context, jobID uuid.UUID) ([]*workpaper.FreezeSnapshot, error) {
	return s.repo.ListSnapshotsByJob(ctx, jobID)
}

func (s *Service) ListSnapshotsByModule(ctx context.Context, moduleID uuid.UUID) ([]*workpaper.FreezeSnapshot, error) {
	return s.repo.ListSnapshotsByModule(ctx, moduleID)
}

func (s *Service) LatestSnapshot(ctx context.Context, jobID uuid.UUID, snapshotType *workpaper.SnapshotType) (*workpaper.FreezeSnapshot, error) {
	return s.repo.LatestSnapshot(ctx, jobID, snapshotType)
}

// modulePayload gathers everything a module snapshot captures: the module
// record, config, output, calculation inputs, effective transactions,
// field overrides and queries.
func (s *Service) modulePayload(ctx context.Context, m *workpaper.ModuleInstance) (map[string]any, error) {
	effs, err := s.effs.EffectiveForModule(ctx, m.ID, m.JobID)
	if err != nil {
		return nil, fmt.Errorf("gathering effective transactions: %w", err)
	}

	overrides, err := s.modules.ListFieldOverrides(ctx, m.ID)
	if err != nil {
		return nil, fmt.Errorf("gathering field overrides: %w", err)
	}

	queries, err := s.queries.ListByModule(ctx, m.ID)
	if err != nil {
		return nil, fmt.Errorf("gathering queries: %w", err)
	}

	return map[string]any{
		"module": map[string]any{
			"id":     m.ID.String(),
			"type":   string(m.Type),
			"label":  m.Label,
			"status": string(m.Status),
		},
		"config":                 m.Config,
		"output_summary":         m.OutputSummary,
		"calculation_inputs":     m.CalculationInputs,
		"effective_transactions": effs,
		"field_overrides":        overrides,
		"queries":                queries,
	}, nil
}

// resultSummary flattens a calculation result into the snapshot summary.
func resultSummary(r *workpaper.Result) map[string]any {
	if r == nil {
		return nil
	}

	return map[string]any{
		"method":     string(r.Method),
		"deduction":  r.Deduction.String(),
		"gst_credit": r.GSTCredit.String(),
		"net_income": r.NetIncome.String(),
		"warnings":   r.Warnings,
		"errors":     r.Errors,
	}
}

// jobSummary computes job totals plus a by-module breakdown from the
// modules' stored outputs.
func jobSummary(modules []*workpaper.ModuleInstance) map[string]any {
	var (
		totalDeductions = decimal.Zero
		totalGSTCredits = decimal.Zero
		totalIncome     = decimal.Zero
	)

	byModule := make([]map[string]any, 0, len(modules))

	for _, m := range modules {
		if m.Type == workpaper.ModuleSummary || m.OutputSummary == nil {
			continue
		}

		out := m.OutputSummary
		totalDeductions = totalDeductions.Add(out.Deduction)
		totalGSTCredits = totalGSTCredits.Add(out.GSTCredit)
		totalIncome = totalIncome.Add(out.NetIncome)

		byModule = append(byModule, map[string]any{
			"module_id":  m.ID.String(),
			"type":       string(m.Type),
			"label":      m.Label,
			"deduction":  out.Deduction.String(),
			"gst_credit": out.GSTCredit.String(),
			"net_income": out.NetIncome.String(),
		})
	}

	return map[string]any{
		"total_deductions":  totalDeductions.Round(2).String(),
		"total_gst_credits": totalGSTCredits.Round(2).String(),
		"net_income":        totalIncome.Round(2).String(),
		"by_module":         byModule,
	}
}
