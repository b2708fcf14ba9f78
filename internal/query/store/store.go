package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

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

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectQueryColumns = `
	id, client_id, job_id, module_id, transaction_id, status, title, query_type,
	request_config, response_data, created_by_id, created_by_email,
	resolved_by_id, resolved_by_email, resolved_at, created_at, updated_at
`

func scanQuery(s scanner) (*workpaper.Query, error) {
	var q workpaper.Query

	var (
		statusStr, typeStr        string
		reqConfig, respData       []byte
		createdEmail              sql.NullString
		resolvedID, resolvedEmail sql.NullString
	)

	if err := s.Scan(
		&q.ID, &q.ClientID, &q.JobID, &q.ModuleID, &q.TransactionID,
		&statusStr, &q.Title, &typeStr, &reqConfig, &respData,
		&q.CreatedBy.ID, &createdEmail, &resolvedID, &resolvedEmail,
		&q.ResolvedAt, &q.CreatedAt, &q.UpdatedAt,
	); err != nil {
		return nil, err
	}

	q.Status = workpaper.QueryStatus(statusStr)
	q.Type = workpaper.QueryType(typeStr)
	q.CreatedBy.Email = createdEmail.String

	if resolvedID.Valid {
		q.ResolvedBy = &workpaper.Actor{ID: resolvedID.String, Email: resolvedEmail.String}
	}

	if len(reqConfig) > 0 {
		if err := json.Unmarshal(reqConfig, &q.RequestConfig); err != nil {
			return nil, fmt.Errorf("parsing request_config: %w", err)
		}
	}

	if len(respData) > 0 {
		if err := json.Unmarshal(respData, &q.ResponseData); err != nil {
			return nil, fmt.Errorf("parsing response_data: %w", err)
		}
	}

	return &q, nil
}

func (s *Store) CreateQuery(ctx context.Context, q *workpaper.Query) error {
	query := `
		INSERT INTO queries (client_id, job_id, module_id, transaction_id, status, title, query_type, request_config, created_by_id, created_by_email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		RETURNING id, created_at
	`

	reqConfig, err := nullJSON(q.RequestConfig)
	if err != nil {
		return fmt.Errorf("encoding request_config: %w", err)
	}

	err = s.db.QueryRowContext(ctx, query,
		q.ClientID,
		q.JobID,
		q.ModuleID,
		q.TransactionID,
		string(q.Status),
		q.Title,
		string(q.Type),
		reqConfig,
		q.CreatedBy.ID,
		nullString(q.CreatedBy.Email),
	).Scan(&q.ID, &q.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating query: %w", err)
	}

	return nil
}

func (s *Store) GetQuery(ctx context.Context, id uuid.UUID) (*workpaper.Query, error) {
	query := `SELECT ` + selectQueryColumns + ` FROM queries WHERE id = $1`

	q, err := scanQuery(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, workpaper.ErrQueryNotFound
		}

		return nil, fmt.Errorf("getting query: %w", err)
	}

	return q, nil
}

func (s *Store) UpdateQuery(ctx context.Context, q *workpaper.Query) error {
	query := `
		UPDATE queries
		SET status = $2, response_data = $3, resolved_by_id = $4, resolved_by_email = $5, resolved_at = $6, updated_at = NOW()
		WHERE id = $1
	`

	respData, err := nullJSON(q.ResponseData)
	if err != nil {
		return fmt.Errorf("encoding response_data: %w", err)
	}

	var resolvedID, resolvedEmail any
	if q.ResolvedBy != nil {
		resolvedID = q.ResolvedBy.ID
		resolvedEmail = nullString(q.ResolvedBy.Email)
	}

	res, err := s.db.ExecContext(ctx, query, q.ID, string(q.Status), respData, resolvedID, resolvedEmail, q.ResolvedAt)
	if err != nil {
		return fmt.Errorf("updating query: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating query: %w", err)
	}

	if affected == 0 {
		return workpaper.ErrQueryNotFound
	}

	return nil
}

func (s *Store) ListByJob(ctx context.Context, jobID uuid.UUID) ([]*workpaper.Query, error) {
	query := `SELECT ` + selectQueryColumns + ` FROM queries WHERE job_id = $1 ORDER BY created_at, id`

	return s.listQueries(ctx, query, jobID)
}

func (s *Store) ListByModule(ctx context.Context, moduleID uuid.UUID) ([]*workpaper.Query, error) {
	query := `SELECT ` + selectQueryColumns + ` FROM queries WHERE module_id = $1 ORDER BY created_at, id`

	return s.listQueries(ctx, query, moduleID)
}

func (s *Store) ListOpenByJob(ctx context.Context, jobID uuid.UUID) ([]*workpaper.Query, error) {
	placeholders := make([]string, len(workpaper.OpenQueryStatuses))
	args := []any{jobID}

	for i, st := range workpaper.OpenQueryStatuses {
		placeholders[i] = fmt.Sprintf("$%d", i+2)
		args = append(args, string(st))
	}

	query := `SELECT ` + selectQueryColumns + ` FROM queries
		WHERE job_id = $1 AND status IN (` + strings.Join(placeholders, ", ") + `)
		ORDER BY created_at, id`

	return s.listQueries(ctx, query, args...)
}

func (s *Store) listQueries(ctx context.Context, query string, args ...any) ([]*workpaper.Query, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing queries: %w", err)
	}
	defer rows.Close()

	var queries []*workpaper.Query

	for rows.Next() {
		q, err := scanQuery(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning query: %w", err)
		}

		queries = append(queries, q)
	}

	return queries, rows.Err()
}

func (s *Store) CreateMessage(ctx context.Context, m *workpaper.QueryMessage) error {
	query := `
		INSERT INTO query_messages (query_id, sender, sender_id, sender_email, message_text, attachment_url, attachment_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		m.QueryID,
		string(m.Sender),
		m.SenderID,
		nullString(m.SenderEmail),
		m.Text,
		nullString(m.AttachmentURL),
		nullString(m.AttachmentName),
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating query message: %w", err)
	}

	return nil
}

func (s *Store) ListMessages(ctx context.Context, queryID uuid.UUID) ([]*workpaper.QueryMessage, error) {
	query := `
		SELECT id, query_id, sender, sender_id, sender_email, message_text, attachment_url, attachment_name, created_at
		FROM query_messages WHERE query_id = $1 ORDER BY created_at, id
	`

	rows, err := s.db.QueryContext(ctx, query, queryID)
	if err != nil {
		return nil, fmt.Errorf("listing query messages: %w", err)
	}
	defer rows.Close()

	var messages []*workpaper.QueryMessage

	for rows.Next() {
		var m workpaper.QueryMessage

		var (
			senderStr                    string
			email, attachURL, attachName sql.NullString
		)

		if err := rows.Scan(
			&m.ID, &m.QueryID, &senderStr, &m.SenderID, &email,
			&m.Text, &attachURL, &attachName, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning query message: %w", err)
		}

		m.Sender = workpaper.Sender(senderStr)
		m.SenderEmail = email.String
		m.AttachmentURL = attachURL.String
		m.AttachmentName = attachName.String

		messages = append(messages, &m)
	}

	return messages, rows.Err()
}

const selectTaskColumns = `
	id, client_id, job_id, task_type, status, title, description,
	query_count, query_ids, completed_at, created_at, updated_at
`

func scanTask(s scanner) (*workpaper.Task, error) {
	var t workpaper.Task

	var (
		typeStr, statusStr string
		description        sql.NullString
		queryIDs           []byte
	)

	if err := s.Scan(
		&t.ID, &t.ClientID, &t.JobID, &typeStr, &statusStr, &t.Title,
		&description, &t.QueryCount, &queryIDs, &t.CompletedAt,
		&t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return nil, err
	}

	t.Type = workpaper.TaskType(typeStr)
	t.Status = workpaper.TaskStatus(statusStr)
	t.Description = description.String

	if len(queryIDs) > 0 {
		if err := json.Unmarshal(queryIDs, &t.QueryIDs); err != nil {
			return nil, fmt.Errorf("parsing query_ids: %w", err)
		}
	}

	return &t, nil
}

func (s *Store) GetQueriesTask(ctx context.Context, clientID string, jobID uuid.UUID) (*workpaper.Task, error) {
	query := `SELECT ` + selectTaskColumns + `
		FROM client_tasks WHERE client_id = $1 AND job_id = $2 AND task_type = $3`

	t, err := scanTask(s.db.QueryRowContext(ctx, query, clientID, jobID, string(workpaper.TaskQueries)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, workpaper.ErrTaskNotFound
		}

		return nil, fmt.Errorf("getting queries task: %w", err)
	}

	return t, nil
}

// CreateTask inserts the task, relying on the unique index over
// (client_id, job_id, task_type) to keep the queries task singular under
// concurrent resyncs.
func (s *Store) CreateTask(ctx context.Context, t *workpaper.Task) error {
	query := `
		INSERT INTO client_tasks (client_id, job_id, task_type, status, title, description, query_count, query_ids, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at
	`

	ids, err := nullJSON(t.QueryIDs)
	if err != nil {
		return fmt.Errorf("encoding query_ids: %w", err)
	}

	err = s.db.QueryRowContext(ctx, query,
		t.ClientID,
		t.JobID,
		string(t.Type),
		string(t.Status),
		t.Title,
		nullString(t.Description),
		t.QueryCount,
		ids,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return workpaper.NewConflictError(
				"task %s already exists for client %s job %s", t.Type, t.ClientID, t.JobID)
		}

		return fmt.Errorf("creating task: %w", err)
	}

	return nil
}

func (s *Store) UpdateTask(ctx context.Context, t *workpaper.Task) error {
	query := `
		UPDATE client_tasks
		SET status = $2, title = $3, query_count = $4, query_ids = $5, completed_at = $6, updated_at = NOW()
		WHERE id = $1
	`

	ids, err := nullJSON(t.QueryIDs)
	if err != nil {
		return fmt.Errorf("encoding query_ids: %w", err)
	}

	res, err := s.db.ExecContext(ctx, query, t.ID, string(t.Status), t.Title, t.QueryCount, ids, t.CompletedAt)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}

	if affected == 0 {
		return workpaper.ErrTaskNotFound
	}

	return nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}

	return s
}

func nullJSON(v any) (any, error) {
	if v == nil {
		return nil, nil
	}

	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	return b, nil
}
