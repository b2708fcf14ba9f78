package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/FDCTax/fdctax-core-api-sub002/internal/transaction"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/workpaper"
)

const uniqueViolation = "23505"

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectTransactionColumns = `
	id, client_id, job_id, module_id, source, date, amount, gst_amount,
	category, vendor, receipt_url, reference, created_at
`

func scanTransaction(s scanner) (*workpaper.Transaction, error) {
	var tx workpaper.Transaction

	var (
		sourceStr, categoryStr string
		gst                    sql.NullString
		vendor, receipt, ref   sql.NullString
	)

	if err := s.Scan(
		&tx.ID, &tx.ClientID, &tx.JobID, &tx.ModuleID, &sourceStr, &tx.Date,
		&tx.Amount, &gst, &categoryStr, &vendor, &receipt, &ref, &tx.CreatedAt,
	); err != nil {
		return nil, err
	}

	tx.Source = workpaper.Source(sourceStr)
	tx.Category = workpaper.Category(categoryStr)
	tx.Vendor = vendor.String
	tx.ReceiptURL = receipt.String
	tx.Reference = ref.String

	if gst.Valid {
		d, err := decimal.NewFromString(gst.String)
		if err != nil {
			return nil, fmt.Errorf("parsing gst_amount: %w", err)
		}

		tx.GSTAmount = &d
	}

	return &tx, nil
}

func (s *Store) CreateTransaction(ctx context.Context, tx *workpaper.Transaction) error {
	query := `
		INSERT INTO transactions (client_id, job_id, module_id, source, date, amount, gst_amount, category, vendor, receipt_url, reference, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		RETURNING id, created_at
	`

	var gst any
	if tx.GSTAmount != nil {
		gst = tx.GSTAmount.String()
	}

	err := s.db.QueryRowContext(ctx, query,
		tx.ClientID,
		tx.JobID,
		tx.ModuleID,
		string(tx.Source),
		tx.Date,
		tx.Amount.String(),
		gst,
		string(tx.Category),
		nullString(tx.Vendor),
		nullString(tx.ReceiptURL),
		nullString(tx.Reference),
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

func (s *Store) GetTransaction(ctx context.Context, id uuid.UUID) (*workpaper.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + ` FROM transactions WHERE id = $1`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, workpaper.ErrTransactionNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

func (s *Store) ListTransactions(ctx context.Context, filter transaction.ListFilter) ([]*workpaper.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + ` FROM transactions WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.ClientID != nil {
		query += fmt.Sprintf(" AND client_id = $%d", argIdx)
		args = append(args, *filter.ClientID)
		argIdx++
	}

	if filter.JobID != nil {
		query += fmt.Sprintf(" AND job_id = $%d", argIdx)
		args = append(args, *filter.JobID)
		argIdx++
	}

	if filter.ModuleID != nil {
		query += fmt.Sprintf(" AND module_id = $%d", argIdx)
		args = append(args, *filter.ModuleID)
		argIdx++
	}

	if len(filter.Categories) > 0 {
		placeholders := make([]string, len(filter.Categories))
		for i, c := range filter.Categories {
			placeholders[i] = fmt.Sprintf("$%d", argIdx)
			args = append(args, string(c))
			argIdx++
		}

		query += " AND category IN (" + strings.Join(placeholders, ", ") + ")"
	}

	query += " ORDER BY date, id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*workpaper.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	return txs, rows.Err()
}

const selectOverrideColumns = `
	id, transaction_id, job_id, overridden_amount, overridden_gst_amount,
	overridden_category, overridden_business_pct, reason, admin_id, admin_email, created_at
`

func scanOverride(s scanner) (*workpaper.TransactionOverride, error) {
	var ov workpaper.TransactionOverride

	var (
		amount, gst, category, pct sql.NullString
		email                      sql.NullString
	)

	if err := s.Scan(
		&ov.ID, &ov.TransactionID, &ov.JobID, &amount, &gst, &category, &pct,
		&ov.Reason, &ov.Actor.ID, &email, &ov.CreatedAt,
	); err != nil {
		return nil, err
	}

	ov.Actor.Email = email.String

	var err error
	if ov.Amount, err = nullDecimal(amount); err != nil {
		return nil, err
	}

	if ov.GSTAmount, err = nullDecimal(gst); err != nil {
		return nil, err
	}

	if ov.BusinessPct, err = nullDecimal(pct); err != nil {
		return nil, err
	}

	if category.Valid {
		c := workpaper.Category(category.String)
		ov.Category = &c
	}

	return &ov, nil
}

// CreateOverride inserts the override, relying on the unique index over
// (transaction_id, job_id) to reject concurrent duplicates atomically.
func (s *Store) CreateOverride(ctx context.Context, ov *workpaper.TransactionOverride) error {
	query := `
		INSERT INTO transaction_overrides (transaction_id, job_id, overridden_amount, overridden_gst_amount, overridden_category, overridden_business_pct, reason, admin_id, admin_email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		ov.TransactionID,
		ov.JobID,
		decimalString(ov.Amount),
		decimalString(ov.GSTAmount),
		categoryString(ov.Category),
		decimalString(ov.BusinessPct),
		ov.Reason,
		ov.Actor.ID,
		nullString(ov.Actor.Email),
	).Scan(&ov.ID, &ov.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return workpaper.NewConflictError(
				"override already exists for transaction %s in job %s", ov.TransactionID, ov.JobID)
		}

		return fmt.Errorf("creating override: %w", err)
	}

	return nil
}

func (s *Store) GetOverride(ctx context.Context, transactionID, jobID uuid.UUID) (*workpaper.TransactionOverride, error) {
	query := `SELECT ` + selectOverrideColumns + `
		FROM transaction_overrides WHERE transaction_id = $1 AND job_id = $2`

	ov, err := scanOverride(s.db.QueryRowContext(ctx, query, transactionID, jobID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, workpaper.ErrOverrideNotFound
		}

		return nil, fmt.Errorf("getting override: %w", err)
	}

	return ov, nil
}

func (s *Store) ListOverridesByJob(ctx context.Context, jobID uuid.UUID) ([]*workpaper.TransactionOverride, error) {
	query := `SELECT ` + selectOverrideColumns + `
		FROM transaction_overrides WHERE job_id = $1 ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query, jobID)
	if err != nil {
		return nil, fmt.Errorf("listing overrides: %w", err)
	}
	defer rows.Close()

	var overrides []*workpaper.TransactionOverride

	for rows.Next() {
		ov, err := scanOverride(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning override: %w", err)
		}

		overrides = append(overrides, ov)
	}

	return overrides, rows.Err()
}

func nullString(s string) any {
	if s == "" {
		return nil
	}

	return s
}

func decimalString(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}

	return d.String()
}

func categoryString(c *workpaper.Category) any {
	if c == nil {
		return nil
	}

	return string(*c)
}

func nullDecimal(ns sql.NullString) (*decimal.Decimal, error) {
	if !ns.Valid {
		return nil, nil
	}

	d, err := decimal.NewFromString(ns.String)
	if err != nil {
		return nil, fmt.Errorf("parsing decimal: %w", err)
	}

	return &d, nil
}
