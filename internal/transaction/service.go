package transaction

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/FDCTax/fdctax-core-api-sub002/internal/audit"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/workpaper"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *workpaper.Transaction) error
	GetTransaction(ctx context.Context, id uuid.UUID) (*workpaper.Transaction, error)
	ListTransactions(ctx context.Context, filter ListFilter) ([]*workpaper.Transaction, error)

	// CreateOverride is an atomic create-or-reject: a second override for
	// the same (transaction, job) pair fails with a ConflictError.
	CreateOverride(ctx context.Context, ov *workpaper.TransactionOverride) error
	GetOverride(ctx context.Context, transactionID, jobID uuid.UUID) (*workpaper.TransactionOverride, error)
	ListOverridesByJob(ctx context.Context, jobID uuid.UUID) ([]*workpaper.TransactionOverride, error)
}

type Service struct {
	repo  Repository
	audit audit.Sink
}

func NewService(repo Repository, sink audit.Sink) *Service {
	if sink == nil {
		sink = audit.Nop{}
	}

	return &Service{repo: repo, audit: sink}
}

type CreateParams struct {
	ClientID   string
	JobID      *uuid.UUID
	ModuleID   *uuid.UUID
	Source     workpaper.Source
	Date       time.Time
	Amount     decimal.Decimal
	GSTAmount  *decimal.Decimal
	Category   workpaper.Category
	Vendor     string
	ReceiptURL string
	Reference  string
}

type ListFilter struct {
	ClientID   *string
	JobID      *uuid.UUID
	ModuleID   *uuid.UUID
	Categories []workpaper.Category
}

// Create records a new immutable transaction. There is no update path.
func (s *Service) Create(ctx context.Context, params CreateParams) (*workpaper.Transaction, error) {
	if params.ClientID == "" {
		return nil, workpaper.NewValidationError("client_id", "required")
	}

	if params.Date.IsZero() {
		return nil, workpaper.NewValidationError("date", "required")
	}

	tx := &workpaper.Transaction{
		ClientID:   params.ClientID,
		JobID:      params.JobID,
		ModuleID:   params.ModuleID,
		Source:     params.Source,
		Date:       params.Date,
		Amount:     params.Amount,
		GSTAmount:  params.GSTAmount,
		Category:   params.Category,
		Vendor:     params.Vendor,
		ReceiptURL: params.ReceiptURL,
		Reference:  params.Reference,
	}

	if tx.Source == "" {
		tx.Source = workpaper.SourceManual
	}

	if tx.Category == "" {
		tx.Category = workpaper.CategoryUncategorized
	}

	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*workpaper.Transaction, error) {
	return s.repo.GetTransaction(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*workpaper.Transaction, error) {
	return s.repo.ListTransactions(ctx, filter)
}

type OverrideParams struct {
	TransactionID uuid.UUID
	JobID         uuid.UUID
	Amount        *decimal.Decimal
	GSTAmount     *decimal.Decimal
	Category      *workpaper.Category
	BusinessPct   *decimal.Decimal
	Reason        string
	Actor         workpaper.Actor
}

// CreateOverride records a job-scoped correction for a transaction. The
// source transaction is never touched; at most one override may exist per
// (transaction, job) pair.
func (s *Service) CreateOverride(ctx context.Context, params OverrideParams) (*workpaper.TransactionOverride, error) {
	if params.Reason == "" {
		return nil, workpaper.NewValidationError("reason", "required for any override")
	}

	if params.Actor.ID == "" {
		return nil, workpaper.NewValidationError("actor", "required")
	}

	if params.Amount == nil && params.GSTAmount == nil && params.Category == nil && params.BusinessPct == nil {
		return nil, workpaper.NewValidationError("override", "at least one field must be set")
	}

	if params.BusinessPct != nil {
		pct := *params.BusinessPct
		if pct.IsNegative() || pct.GreaterThan(decimal.NewFromInt(100)) {
			return nil, workpaper.NewValidationError("business_pct", "must be between 0 and 100")
		}
	}

	if _, err := s.repo.GetTransaction(ctx, params.TransactionID); err != nil {
		return nil, fmt.Errorf("loading transaction: %w", err)
	}

	ov := &workpaper.TransactionOverride{
		TransactionID: params.TransactionID,
		JobID:         params.JobID,
		Amount:        params.Amount,
		GSTAmount:     params.GSTAmount,
		Category:      params.Category,
		BusinessPct:   params.BusinessPct,
		Reason:        params.Reason,
		Actor:         params.Actor,
	}

	if err := s.repo.CreateOverride(ctx, ov); err != nil {
		return nil, err
	}

	s.audit.Log(ctx, audit.Entry{
		Action:       audit.ActionOverrideCreate,
		ResourceType: audit.ResourceTransaction,
		ResourceID:   params.TransactionID.String(),
		Actor:        params.Actor,
		Details: map[string]any{
			"job_id":      params.JobID.String(),
			"override_id": ov.ID.String(),
			"reason":      params.Reason,
		},
	})

	return ov, nil
}

func (s *Service) ListOverrides(ctx context.Context, jobID uuid.UUID) ([]*workpaper.TransactionOverride, error) {
	return s.repo.ListOverridesByJob(ctx, jobID)
}

// Effective builds the computed view for one transaction within a job.
func (s *Service) Effective(ctx context.Context, transactionID, jobID uuid.UUID) (workpaper.EffectiveTransaction, error) {
	tx, err := s.repo.GetTransaction(ctx, transactionID)
	if err != nil {
		return workpaper.EffectiveTransaction{}, err
	}

	ov, err := s.repo.GetOverride(ctx, transactionID, jobID)
	if err != nil && !errors.Is(err, workpaper.ErrOverrideNotFound) {
		return workpaper.EffectiveTransaction{}, err
	}

	return workpaper.BuildEffective(tx, ov), nil
}

// EffectiveForJob builds effective transactions for every transaction
// linked to a job, in stable (date, id) order.
func (s *Service) EffectiveForJob(ctx context.Context, jobID uuid.UUID) ([]workpaper.EffectiveTransaction, error) {
	return s.effectiveList(ctx, jobID, ListFilter{JobID: &jobID})
}

// EffectiveForModule builds effective transactions linked to one module.
func (s *Service) EffectiveForModule(ctx context.Context, moduleID, jobID uuid.UUID) ([]workpaper.EffectiveTransaction, error) {
	return s.effectiveList(ctx, jobID, ListFilter{ModuleID: &moduleID})
}

// EffectiveForCategories builds effective transactions for a job narrowed
// to the given categories.
func (s *Service) EffectiveForCategories(ctx context.Context, jobID uuid.UUID, categories []workpaper.Category) ([]workpaper.EffectiveTransaction, error) {
	return s.effectiveList(ctx, jobID, ListFilter{JobID: &jobID, Categories: categories})
}

func (s *Service) effectiveList(ctx context.Context, jobID uuid.UUID, filter ListFilter) ([]workpaper.EffectiveTransaction, error) {
	txs, err := s.repo.ListTransactions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	overrides, err := s.repo.ListOverridesByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("listing overrides: %w", err)
	}

	byTx := make(map[uuid.UUID]*workpaper.TransactionOverride, len(overrides))
	for _, ov := range overrides {
		byTx[ov.TransactionID] = ov
	}

	sort.Slice(txs, func(i, j int) bool {
		if !txs[i].Date.Equal(txs[j].Date) {
			return txs[i].Date.Before(txs[j].Date)
		}

		return txs[i].ID.String() < txs[j].ID.String()
	})

	effs := make([]workpaper.EffectiveTransaction, len(txs))
	for i, tx := range txs {
		effs[i] = workpaper.BuildEffective(tx, byTx[tx.ID])
	}

	return effs, nil
}
