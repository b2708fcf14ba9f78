package importer

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/FDCTax/fdctax-core-api-sub002/internal/transaction"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/workpaper"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=importer

// TransactionCreator is the slice of the transaction service the importer
// writes through.
type TransactionCreator interface {
	Create(ctx context.Context, params transaction.CreateParams) (*workpaper.Transaction, error)
}

// JobSource gates imports on the target job's freeze state.
type JobSource interface {
	GetJob(ctx context.Context, id uuid.UUID) (*workpaper.Job, error)
}

type Service struct {
	parser *Parser
	txs    TransactionCreator
	jobs   JobSource
}

func NewService(txs TransactionCreator, jobs JobSource) *Service {
	return &Service{parser: NewParser(), txs: txs, jobs: jobs}
}

type ImportParams struct {
	ClientID string
	JobID    *uuid.UUID
	ModuleID *uuid.UUID
}

// Result reports what an import run did.
type Result struct {
	Created      int                      `json:"created"`
	Transactions []*workpaper.Transaction `json:"transactions"`
}

// Import parses the CSV and records every parsed row as an immutable
// transaction. A frozen target job rejects the whole import before any
// row is written.
func (s *Service) Import(ctx context.Context, r io.Reader, params ImportParams) (*Result, error) {
	if params.ClientID == "" {
		return nil, workpaper.NewValidationError("client_id", "required")
	}

	if params.JobID != nil {
		j, err := s.jobs.GetJob(ctx, *params.JobID)
		if err != nil {
			return nil, err
		}

		if j.Status == workpaper.StatusFrozen {
			return nil, workpaper.NewConflictError("job %s is frozen", j.ID)
		}
	}

	rows, err := s.parser.Parse(r)
	if err != nil {
		return nil, err
	}

	result := &Result{Transactions: make([]*workpaper.Transaction, 0, len(rows))}

	for _, row := range rows {
		p := row.Params
		p.ClientID = params.ClientID
		p.JobID = params.JobID
		p.ModuleID = params.ModuleID

		tx, err := s.txs.Create(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row.Row, err)
		}

		result.Created++
		result.Transactions = append(result.Transactions, tx)
	}

	slog.Info("csv import complete", "client_id", params.ClientID, "created", result.Created)

	return result, nil
}
