package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/FDCTax/fdctax-core-api-sub002/internal/workpaper"
)

const uniqueViolation = "23505"

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectJobColumns = `
	id, client_id, year, status, frozen_at, notes, created_at, updated_at
`

func scanJob(s scanner) (*workpaper.Job, error) {
	var j workpaper.Job

	var (
		statusStr string
		notes     sql.NullString
	)

	if err := s.Scan(
		&j.ID, &j.ClientID, &j.Year, &statusStr, &j.FrozenAt, &notes,
		&j.CreatedAt, &j.UpdatedAt,
	); err != nil {
		return nil, err
	}

	j.Status = workpaper.Status(statusStr)
	j.Notes = notes.String

	return &j, nil
}

func (s *Store) CreateJob(ctx context.Context, j *workpaper.Job) error {
	query := `
		INSERT INTO workpaper_jobs (client_id, year, status, notes, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		j.ClientID, j.Year, string(j.Status), nullString(j.Notes),
	).Scan(&j.ID, &j.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return workpaper.NewConflictError("job already exists for client %s year %s", j.ClientID, j.Year)
		}

		return fmt.Errorf("creating job: %w", err)
	}

	return nil
}

func (s *Store) GetJob(ctx context.Context, id uuid.UUID) (*workpaper.Job, error) {
	query := `SELECT ` + selectJobColumns + ` FROM workpaper_jobs WHERE id = $1`

	j, err := scanJob(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, workpaper.ErrJobNotFound
		}

		return nil, fmt.Errorf("getting job: %w", err)
	}

	return j, nil
}

func (s *Store) GetJobByClientYear(ctx context.Context, clientID, year string) (*workpaper.Job, error) {
	query := `SELECT ` + selectJobColumns + ` FROM workpaper_jobs WHERE client_id = $1 AND year = $2`

	j, err := scanJob(s.db.QueryRowContext(ctx, query, clientID, year))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, workpaper.ErrJobNotFound
		}

		return nil, fmt.Errorf("getting job by client/year: %w", err)
	}

	return j, nil
}

func (s *Store) ListJobsByClient(ctx context.Context, clientID string) ([]*workpaper.Job, error) {
	query := `SELECT ` + selectJobColumns + ` FROM workpaper_jobs WHERE client_id = $1 ORDER BY year DESC`

	rows, err := s.db.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*workpaper.Job

	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning job: %w", err)
		}

		jobs = append(jobs, j)
	}

	return jobs, rows.Err()
}

func (s *Store) UpdateJob(ctx context.Context, j *workpaper.Job) error {
	query := `
		UPDATE workpaper_jobs
		SET status = $2, frozen_at = $3, notes = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		j.ID, string(j.Status), j.FrozenAt, nullString(j.Notes),
	).Scan(&j.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return workpaper.ErrJobNotFound
		}

		return fmt.Errorf("updating job: %w", err)
	}

	return nil
}

const selectModuleColumns = `
	id, job_id, module_type, label, status, config, output_summary, calculation_inputs, frozen_at, created_at, updated_at
`

func scanModule(s scanner) (*workpaper.ModuleInstance, error) {
	var m workpaper.ModuleInstance

	var (
		typeStr, statusStr string
		configRaw          []byte
		outputRaw          []byte
		inputsRaw          []byte
	)

	if err := s.Scan(
		&m.ID, &m.JobID, &typeStr, &m.Label, &statusStr, &configRaw, &outputRaw,
		&inputsRaw, &m.FrozenAt, &m.CreatedAt, &m.UpdatedAt,
	); err != nil {
		return nil, err
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

	if len(inputsRaw) > 0 {
		if err := json.Unmarshal(inputsRaw, &m.CalculationInputs); err != nil {
			return nil, fmt.Errorf("decoding calculation inputs: %w", err)
		}
	}

	return &m, nil
}

func (s *Store) CreateModule(ctx context.Context, m *workpaper.ModuleInstance) error {
	configRaw, err := json.Marshal(m.Config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	query := `
		INSERT INTO workpaper_modules (job_id, module_type, label, status, config, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err = s.db.QueryRowContext(ctx, query,
		m.JobID, string(m.Type), m.Label, string(m.Status), configRaw,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating module: %w", err)
	}

	return nil
}

func (s *Store) GetModule(ctx context.Context, id uuid.UUID) (*workpaper.ModuleInstance, error) {
	query := `SELECT ` + selectModuleColumns + ` FROM workpaper_modules WHERE id = $1`

	m, err := scanModule(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, workpaper.ErrModuleNotFound
		}

		return nil, fmt.Errorf("getting module: %w", err)
	}

	return m, nil
}

func (s *Store) ListModulesByJob(ctx context.Context, jobID uuid.UUID) ([]*workpaper.ModuleInstance, error) {
	query := `SELECT ` + selectModuleColumns + ` FROM workpaper_modules WHERE job_id = $1 ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query, jobID)
	if err != nil {
		return nil, fmt.Errorf("listing modules: %w", err)
	}
	defer rows.Close()

	var modules []*workpaper.ModuleInstance

	for rows.Next() {
		m, err := scanModule(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning module: %w", err)
		}

		modules = append(modules, m)
	}

	return modules, rows.Err()
}

func (s *Store) UpdateModule(ctx context.Context, m *workpaper.ModuleInstance) error {
	configRaw, err := json.Marshal(m.Config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	query := `
		UPDATE workpaper_modules
		SET label = $2, status = $3, config = $4, frozen_at = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err = s.db.QueryRowContext(ctx, query,
		m.ID, m.Label, string(m.Status), configRaw, m.FrozenAt,
	).Scan(&m.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return workpaper.ErrModuleNotFound
		}

		return fmt.Errorf("updating module: %w", err)
	}

	return nil
}

// SaveModuleOutput persists the calculation cache and the inputs it was
// computed from in a single statement so a partially-written output can
// never be observed.
func (s *Store) SaveModuleOutput(ctx context.Context, moduleID uuid.UUID, out *workpaper.Result, inputs map[string]any) error {
	outputRaw, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("encoding output summary: %w", err)
	}

	if inputs == nil {
		inputs = map[string]any{}
	}

	inputsRaw, err := json.Marshal(inputs)
	if err != nil {
		return fmt.Errorf("encoding calculation inputs: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE workpaper_modules SET output_summary = $2, calculation_inputs = $3, updated_at = NOW() WHERE id = $1`,
		moduleID, outputRaw, inputsRaw,
	)
	if err != nil {
		return fmt.Errorf("saving output summary: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("saving output summary: %w", err)
	}

	if n == 0 {
		return workpaper.ErrModuleNotFound
	}

	return nil
}

const selectFieldOverrideColumns = `
	id, module_id, field_key, original_value, effective_value, reason, admin_id, admin_email, created_at
`

func scanFieldOverride(s scanner) (*workpaper.OverrideRecord, error) {
	var ov workpaper.OverrideRecord

	var (
		originalRaw, effectiveRaw []byte
		email                     sql.NullString
	)

	if err := s.Scan(
		&ov.ID, &ov.ModuleID, &ov.FieldKey, &originalRaw, &effectiveRaw,
		&ov.Reason, &ov.Actor.ID, &email, &ov.CreatedAt,
	); err != nil {
		return nil, err
	}

	ov.Actor.Email = email.String

	if len(originalRaw) > 0 {
		if err := json.Unmarshal(originalRaw, &ov.OriginalValue); err != nil {
			return nil, fmt.Errorf("decoding original value: %w", err)
		}
	}

	if len(effectiveRaw) > 0 {
		if err := json.Unmarshal(effectiveRaw, &ov.EffectiveValue); err != nil {
			return nil, fmt.Errorf("decoding effective value: %w", err)
		}
	}

	return &ov, nil
}

func (s *Store) CreateFieldOverride(ctx context.Context, ov *workpaper.OverrideRecord) error {
	originalRaw, err := json.Marshal(ov.OriginalValue)
	if err != nil {
		return fmt.Errorf("encoding original value: %w", err)
	}

	effectiveRaw, err := json.Marshal(ov.EffectiveValue)
	if err != nil {
		return fmt.Errorf("encoding effective value: %w", err)
	}

	query := `
		INSERT INTO module_overrides (module_id, field_key, original_value, effective_value, reason, admin_id, admin_email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	err = s.db.QueryRowContext(ctx, query,
		ov.ModuleID, ov.FieldKey, originalRaw, effectiveRaw,
		ov.Reason, ov.Actor.ID, nullString(ov.Actor.Email),
	).Scan(&ov.ID, &ov.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return workpaper.NewConflictError(
				"override already exists for module %s field %q", ov.ModuleID, ov.FieldKey)
		}

		return fmt.Errorf("creating field override: %w", err)
	}

	return nil
}

func (s *Store) GetFieldOverride(ctx context.Context, moduleID uuid.UUID, fieldKey string) (*workpaper.OverrideRecord, error) {
	query := `SELECT ` + selectFieldOverrideColumns + `
		FROM module_overrides WHERE module_id = $1 AND field_key = $2`

	ov, err := scanFieldOverride(s.db.QueryRowContext(ctx, query, moduleID, fieldKey))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, workpaper.ErrOverrideNotFound
		}

		return nil, fmt.Errorf("getting field override: %w", err)
	}

	return ov, nil
}

func (s *Store) ListFieldOverrides(ctx context.Context, moduleID uuid.UUID) ([]*workpaper.OverrideRecord, error) {
	query := `SELECT ` + selectFieldOverrideColumns + `
		FROM module_overrides WHERE module_id = $1 ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query, moduleID)
	if err != nil {
		return nil, fmt.Errorf("listing field overrides: %w", err)
	}
	defer rows.Close()

	var overrides []*workpaper.OverrideRecord

	for rows.Next() {
		ov, err := scanFieldOverride(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning field override: %w", err)
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
