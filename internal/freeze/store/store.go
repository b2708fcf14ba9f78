package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/FDCTax/fdctax-core-api-sub002/internal/freeze"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/workpaper"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

// Begin opens the atomic unit for a freeze or reopen.
func (s *Store) Begin(ctx context.Context) (freeze.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning freeze transaction: %w", err)
	}

	return &freezeTx{tx: tx}, nil
}

type freezeTx struct {
	tx *sql.Tx
}

// LockJob takes the row lock that serializes concurrent freezes of one
// job.
func (f *freezeTx) LockJob(ctx context.Context, jobID uuid.UUID) (*workpaper.Job, error) {
	query := `
		SELECT id, client_id, year, status, frozen_at, notes, created_at, updated_at
		FROM workpaper_jobs WHERE id = $1 FOR UPDATE
	`

	var j workpaper.Job

	var (
		statusStr string
		notes     sql.NullString
	)

	err := f.tx.QueryRowContext(ctx, query, jobID).Scan(
		&j.ID, &j.ClientID, &j.Year, &statusStr, &j.FrozenAt, &notes,
		&j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, workpaper.ErrJobNotFound
		}

		return nil, fmt.Errorf("locking job: %w", err)
	}

	j.Status = workpaper.Status(statusStr)
	j.Notes = notes.String

	return &j, nil
}

func (f *freezeTx) ListModules(ctx context.Context, jobID uuid.UUID) ([]*workpaper.ModuleInstance, error) {
	query := `
		SELECT id, job_id, module_type, label, status, config, output_summary, frozen_at, created_at, updated_at
		FROM workpaper_modules WHERE job_id = $1 ORDER BY created_at, id
	`

	rows, err := f.tx.QueryContext(ctx, query, jobID)
	if err != nil {
		return nil, fmt.Errorf("listing modules: %w", err)
	}
	defer rows.Close()

	var modules []*workpaper.ModuleInstance

	for rows.Next() {
		var m workpaper.ModuleInstance

		var (
			typeStr, statusStr string
			configRaw          []byte
			outputRaw          []byte
		)

		if err := rows.Scan(
			&m.ID, &m.JobID, &typeStr, &m.Label, &statusStr, &configRaw, &outputRaw,
			&m.FrozenAt, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning module: %w", err)
		}

		m.Type = workpaper.ModuleType(typeStr)
		m.Status = workpaper.Status(statusStr)

		if len(configRaw) > 0 {
			if err := json.Unmarshal(configRaw, &m.Config); err != nil {
				return nil, fmt.Errorf("decoding config: %w", err)
			}
		}

		if len(outputRaw) > 0 {
			var out workpaper.Result
			if err := json.Unmarshal(outputRaw, &out); err != nil {
				return nil, fmt.Errorf("decoding output summary: %w", err)
			}

			m.OutputSummary = &out
		}

		modules = append(modules, &m)
	}

	return modules, rows.Err()
}

func (f *freezeTx) CreateSnapshot(ctx context.Context, snap *workpaper.FreezeSnapshot) error {
	dataRaw, err := json.Marshal(snap.Data)
	if err != nil {
		return fmt.Errorf("encoding snapshot data: %w", err)
	}

	summaryRaw, err := json.Marshal(snap.Summary)
	if err != nil {
		return fmt.Errorf("encoding snapshot summary: %w", err)
	}

	query := `
		INSERT INTO freeze_snapshots (job_id, module_id, snapshot_type, data, summary, admin_id, admin_email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	err = f.tx.QueryRowContext(ctx, query,
		snap.JobID,
		snap.ModuleID,
		string(snap.Type),
		dataRaw,
		summaryRaw,
		snap.Actor.ID,
		nullString(snap.Actor.Email),
	).Scan(&snap.ID, &snap.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}

	return nil
}

func (f *freezeTx) FreezeModule(ctx context.Context, moduleID uuid.UUID, at time.Time) error {
	res, err := f.tx.ExecContext(ctx,
		`UPDATE workpaper_modules SET status = $2, frozen_at = $3, updated_at = NOW() WHERE id = $1`,
		moduleID, string(workpaper.StatusFrozen), at,
	)
	if err != nil {
		return fmt.Errorf("freezing module: %w", err)
	}

	return checkAffected(res, workpaper.ErrModuleNotFound)
}

func (f *freezeTx) ReopenModule(ctx context.Context, moduleID uuid.UUID) error {
	res, err := f.tx.ExecContext(ctx,
		`UPDATE workpaper_modules SET status = $2, frozen_at = NULL, updated_at = NOW() WHERE id = $1`,
		moduleID, string(workpaper.StatusInProgress),
	)
	if err != nil {
		return fmt.Errorf("reopening module: %w", err)
	}

	return checkAffected(res, workpaper.ErrModuleNotFound)
}

func (f *freezeTx) SetJobStatus(ctx context.Context, jobID uuid.UUID, status workpaper.Status, frozenAt *time.Time) error {
	res, err := f.tx.ExecContext(ctx,
		`UPDATE workpaper_jobs SET status = $2, frozen_at = $3, updated_at = NOW() WHERE id = $1`,
		jobID, string(status), frozenAt,
	)
	if err != nil {
		return fmt.Errorf("setting job status: %w", err)
	}

	return checkAffected(res, workpaper.ErrJobNotFound)
}

func (f *freezeTx) Commit() error {
	return f.tx.Commit()
}

func (f *freezeTx) Rollback() error {
	return f.tx.Rollback()
}

func checkAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if n == 0 {
		return notFound
	}

	return nil
}

const selectSnapshotColumns = `
	id, job_id, module_id, snapshot_type, data, summary, admin_id, admin_email, created_at
`

func scanSnapshot(s scanner) (*workpaper.FreezeSnapshot, error) {
	var snap workpaper.FreezeSnapshot

	var (
		typeStr         string
		dataRaw, sumRaw []byte
		email           sql.NullString
	)

	if err := s.Scan(
		&snap.ID, &snap.JobID, &snap.ModuleID, &typeStr, &dataRaw, &sumRaw,
		&snap.Actor.ID, &email, &snap.CreatedAt,
	); err != nil {
		return nil, err
	}

	snap.Type = workpaper.SnapshotType(typeStr)
	snap.Actor.Email = email.String

	if len(dataRaw) > 0 {
		if err := json.Unmarshal(dataRaw, &snap.Data); err != nil {
			return nil, fmt.Errorf("decoding snapshot data: %w", err)
		}
	}

	if len(sumRaw) > 0 {
		if err := json.Unmarshal(sumRaw, &snap.Summary); err != nil {
			return nil, fmt.Errorf("decoding snapshot summary: %w", err)
		}
	}

	return &snap, nil
}

func (s *Store) GetSnapshot(ctx context.Context, id uuid.UUID) (*workpaper.FreezeSnapshot, error) {
	query := `SELECT ` + selectSnapshotColumns + ` FROM freeze_snapshots WHERE id = $1`

	snap, err := scanSnapshot(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, workpaper.ErrSnapshotNotFound
		}

		return nil, fmt.Errorf("getting snapshot: %w", err)
	}

	return snap, nil
}

func (s *Store) ListSnapshotsByJob(ctx context.Context, jobID uuid.UUID) ([]*workpaper.FreezeSnapshot, error) {
	query := `SELECT ` + selectSnapshotColumns + `
		FROM freeze_snapshots WHERE job_id = $1 ORDER BY created_at DESC, id`

	return s.listSnapshots(ctx, query, jobID)
}

func (s *Store) ListSnapshotsByModule(ctx context.Context, moduleID uuid.UUID) ([]*workpaper.FreezeSnapshot, error) {
	query := `SELECT ` + selectSnapshotColumns + `
		FROM freeze_snapshots WHERE module_id = $1 ORDER BY created_at DESC, id`

	return s.listSnapshots(ctx, query, moduleID)
}

func (s *Store) LatestSnapshot(ctx context.Context, jobID uuid.UUID, snapshotType *workpaper.SnapshotType) (*workpaper.FreezeSnapshot, error) {
	query := `SELECT ` + selectSnapshotColumns + ` FROM freeze_snapshots WHERE job_id = $1`
	args := []any{jobID}

	if snapshotType != nil {
		query += ` AND snapshot_type = $2`
		args = append(args, string(*snapshotType))
	}

	query += ` ORDER BY created_at DESC, id LIMIT 1`

	snap, err := scanSnapshot(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, workpaper.ErrSnapshotNotFound
		}

		return nil, fmt.Errorf("getting latest snapshot: %w", err)
	}

	return snap, nil
}

func (s *Store) listSnapshots(ctx context.Context, query string, args ...any) ([]*workpaper.FreezeSnapshot, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []*workpaper.FreezeSnapshot

	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning snapshot: %w", err)
		}

		snaps = append(snaps, snap)
	}

	return snaps, rows.Err()
}

func nullString(s string) any {
	if s == "" {
		return nil
	}

	return s
}
