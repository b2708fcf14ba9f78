// Package query implements the structured admin↔client communication
// state machine and the client-visible task bundling derived from it.
package query

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/FDCTax/fdctax-core-api-sub002/internal/audit"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/workpaper"
)

// validTransitions is the authoritative query status transition table. Any
// move outside it fails with a ConflictError, never silently coerced.
//
// RESOLVED → AWAITING_CLIENT is deliberate: a resolved query can be put
// back to the client when they have a follow-up.
var validTransitions = map[workpaper.QueryStatus][]workpaper.QueryStatus{
	workpaper.QueryDraft:           {workpaper.QuerySentToClient},
	workpaper.QuerySentToClient:    {workpaper.QueryAwaitingClient, workpaper.QueryResolved},
	workpaper.QueryAwaitingClient:  {workpaper.QueryClientResponded, workpaper.QueryResolved},
	workpaper.QueryClientResponded: {workpaper.QueryAwaitingClient, workpaper.QueryResolved},
	workpaper.QueryResolved:        {workpaper.QueryClosed, workpaper.QueryAwaitingClient},
	workpaper.QueryClosed:          {},
}

// CanTransition reports whether the move is in the transition table.
func CanTransition(current, target workpaper.QueryStatus) bool {
	for _, t := range validTransitions[current] {
		if t == target {
			return true
		}
	}

	return false
}

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=query
type Repository interface {
	CreateQuery(ctx context.Context, q *workpaper.Query) error
	GetQuery(ctx context.Context, id uuid.UUID) (*workpaper.Query, error)
	UpdateQuery(ctx context.Context, q *workpaper.Query) error
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]*workpaper.Query, error)
	ListByModule(ctx context.Context, moduleID uuid.UUID) ([]*workpaper.Query, error)
	ListOpenByJob(ctx context.Context, jobID uuid.UUID) ([]*workpaper.Query, error)

	CreateMessage(ctx context.Context, m *workpaper.QueryMessage) error
	ListMessages(ctx context.Context, queryID uuid.UUID) ([]*workpaper.QueryMessage, error)
}

type TaskRepository interface {
	GetQueriesTask(ctx context.Context, clientID string, jobID uuid.UUID) (*workpaper.Task, error)
	CreateTask(ctx context.Context, t *workpaper.Task) error
	UpdateTask(ctx context.Context, t *workpaper.Task) error
}

type Service struct {
	repo  Repository
	tasks TaskRepository
	audit audit.Sink
}

func NewService(repo Repository, tasks TaskRepository, sink audit.Sink) *Service {
	if sink == nil {
		sink = audit.Nop{}
	}

	return &Service{repo: repo, tasks: tasks, audit: sink}
}

type CreateParams struct {
	ClientID      string
	JobID         uuid.UUID
	ModuleID      *uuid.UUID
	TransactionID *uuid.UUID
	Title         string
	Type          workpaper.QueryType
	RequestConfig map[string]any
	// InitialMessage seeds the thread with an admin message.
	InitialMessage string
	Actor          workpaper.Actor
}

// Create starts a new query in DRAFT.
func (s *Service) Create(ctx context.Context, params CreateParams) (*workpaper.Query, error) {
	if params.Title == "" {
		return nil, workpaper.NewValidationError("title", "required")
	}

	if params.Actor.ID == "" {
		return nil, workpaper.NewValidationError("actor", "required")
	}

	q := &workpaper.Query{
		ClientID:      params.ClientID,
		JobID:         params.JobID,
		ModuleID:      params.ModuleID,
		TransactionID: params.TransactionID,
		Status:        workpaper.QueryDraft,
		Title:         params.Title,
		Type:          params.Type,
		RequestConfig: params.RequestConfig,
		CreatedBy:     params.Actor,
	}

	if q.Type == "" {
		q.Type = workpaper.QueryText
	}

	if err := s.repo.CreateQuery(ctx, q); err != nil {
		return nil, err
	}

	if params.InitialMessage != "" {
		_, err := s.AddMessage(ctx, q.ID, MessageParams{
			Sender:      workpaper.SenderAdmin,
			SenderID:    params.Actor.ID,
			SenderEmail: params.Actor.Email,
			Text:        params.InitialMessage,
		})
		if err != nil {
			return nil, fmt.Errorf("seeding initial message: %w", err)
		}
	}

	s.audit.Log(ctx, audit.Entry{
		Action:       audit.ActionQueryCreate,
		ResourceType: audit.ResourceQuery,
		ResourceID:   q.ID.String(),
		Actor:        params.Actor,
		Details: map[string]any{
			"job_id": params.JobID.String(),
			"title":  params.Title,
			"type":   string(q.Type),
		},
	})

	return q, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*workpaper.Query, error) {
	return s.repo.GetQuery(ctx, id)
}

// Send moves a DRAFT query to SENT_TO_CLIENT, optionally appending an
// admin message first, and resyncs the client task.
func (s *Service) Send(ctx context.Context, id uuid.UUID, message string, actor workpaper.Actor) (*workpaper.Query, error) {
	q, err := s.repo.GetQuery(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanTransition(q.Status, workpaper.QuerySentToClient) {
		return nil, workpaper.NewConflictError(
			"cannot send query in status %q, only drafts can be sent", q.Status)
	}

	if message != "" {
		_, err := s.AddMessage(ctx, id, MessageParams{
			Sender:      workpaper.SenderAdmin,
			SenderID:    actor.ID,
			SenderEmail: actor.Email,
			Text:        message,
		})
		if err != nil {
			return nil, err
		}
	}

	q.Status = workpaper.QuerySentToClient
	if err := s.repo.UpdateQuery(ctx, q); err != nil {
		return nil, err
	}

	if err := s.resyncTask(ctx, q.ClientID, q.JobID); err != nil {
		return nil, err
	}

	s.audit.Log(ctx, audit.Entry{
		Action:       audit.ActionQuerySend,
		ResourceType: audit.ResourceQuery,
		ResourceID:   id.String(),
		Actor:        actor,
		Details:      map[string]any{"status": string(q.Status)},
	})

	return q, nil
}

// SendBulk sends several drafts, skipping failures.
func (s *Service) SendBulk(ctx context.Context, ids []uuid.UUID, actor workpaper.Actor) []*workpaper.Query {
	sent := make([]*workpaper.Query, 0, len(ids))

	for _, id := range ids {
		q, err := s.Send(ctx, id, "", actor)
		if err != nil {
			slog.Error("bulk send failed for query", "query_id", id, "error", err)
			continue
		}

		sent = append(sent, q)
	}

	return sent
}

type MessageParams struct {
	Sender         workpaper.Sender
	SenderID       string
	SenderEmail    string
	Text           string
	AttachmentURL  string
	AttachmentName string
}

// AddMessage appends a message to the thread. Whose turn it is is entirely
// encoded by whose message landed last: a client message while
// SENT_TO_CLIENT or AWAITING_CLIENT flips the query to CLIENT_RESPONDED,
// an admin message while CLIENT_RESPONDED flips it back to
// AWAITING_CLIENT.
func (s *Service) AddMessage(ctx context.Context, queryID uuid.UUID, params MessageParams) (*workpaper.QueryMessage, error) {
	if params.Text == "" {
		return nil, workpaper.NewValidationError("message_text", "required")
	}

	q, err := s.repo.GetQuery(ctx, queryID)
	if err != nil {
		return nil, err
	}

	msg := &workpaper.QueryMessage{
		QueryID:        queryID,
		Sender:         params.Sender,
		SenderID:       params.SenderID,
		SenderEmail:    params.SenderEmail,
		Text:           params.Text,
		AttachmentURL:  params.AttachmentURL,
		AttachmentName: params.AttachmentName,
	}

	if err := s.repo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}

	switch params.Sender {
	case workpaper.SenderClient:
		if q.Status == workpaper.QuerySentToClient || q.Status == workpaper.QueryAwaitingClient {
			q.Status = workpaper.QueryClientResponded
			if err := s.repo.UpdateQuery(ctx, q); err != nil {
				return nil, err
			}

			if err := s.resyncTask(ctx, q.ClientID, q.JobID); err != nil {
				return nil, err
			}
		}
	case workpaper.SenderAdmin:
		if q.Status == workpaper.QueryClientResponded {
			q.Status = workpaper.QueryAwaitingClient
			if err := s.repo.UpdateQuery(ctx, q); err != nil {
				return nil, err
			}
		}
	}

	return msg, nil
}

func (s *Service) Messages(ctx context.Context, queryID uuid.UUID) ([]*workpaper.QueryMessage, error) {
	return s.repo.ListMessages(ctx, queryID)
}

type RespondParams struct {
	ClientID      string
	ClientEmail   string
	Text          string
	ResponseData  map[string]any
	AttachmentURL string
}

// ClientRespond records a structured client response. Legal only from
// SENT_TO_CLIENT or AWAITING_CLIENT; always lands CLIENT_RESPONDED.
func (s *Service) ClientRespond(ctx context.Context, queryID uuid.UUID, params RespondParams) (*workpaper.Query, error) {
	q, err := s.repo.GetQuery(ctx, queryID)
	if err != nil {
		return nil, err
	}

	if q.ClientID != params.ClientID {
		return nil, workpaper.NewValidationError("client_id", "query does not belong to this client")
	}

	if q.Status != workpaper.QuerySentToClient && q.Status != workpaper.QueryAwaitingClient {
		return nil, workpaper.NewConflictError("cannot respond to query in status %q", q.Status)
	}

	if err := validateResponse(q, params.ResponseData); err != nil {
		return nil, err
	}

	if params.Text != "" {
		_, err := s.AddMessage(ctx, queryID, MessageParams{
			Sender:        workpaper.SenderClient,
			SenderID:      params.ClientID,
			SenderEmail:   params.ClientEmail,
			Text:          params.Text,
			AttachmentURL: params.AttachmentURL,
		})
		if err != nil {
			return nil, err
		}
	}

	q.Status = workpaper.QueryClientResponded
	if params.ResponseData != nil {
		q.ResponseData = params.ResponseData
	}

	if err := s.repo.UpdateQuery(ctx, q); err != nil {
		return nil, err
	}

	if err := s.resyncTask(ctx, q.ClientID, q.JobID); err != nil {
		return nil, err
	}

	s.audit.Log(ctx, audit.Entry{
		Action:       audit.ActionQueryRespond,
		ResourceType: audit.ResourceQuery,
		ResourceID:   queryID.String(),
		Actor:        workpaper.Actor{ID: params.ClientID, Email: params.ClientEmail},
		Details: map[string]any{
			"has_response_data": params.ResponseData != nil,
			"has_attachment":    params.AttachmentURL != "",
		},
	})

	return q, nil
}

// validateResponse checks structured response data against the query's
// request config.
func validateResponse(q *workpaper.Query, data map[string]any) error {
	if data == nil {
		return nil
	}

	value, ok := data["value"]
	if !ok {
		return nil
	}

	switch q.Type {
	case workpaper.QueryRequestSelection:
		options, _ := q.RequestConfig["options"].([]any)
		for _, opt := range options {
			if opt == value {
				return nil
			}
		}

		if len(options) > 0 {
			return workpaper.NewValidationError("response_data", "value is not one of the offered options")
		}
	case workpaper.QueryRequestPercentage, workpaper.QueryRequestNumber:
		f, ok := value.(float64)
		if !ok {
			return workpaper.NewValidationError("response_data", "value must be numeric")
		}

		if min, ok := q.RequestConfig["min"].(float64); ok && f < min {
			return workpaper.NewValidationError("response_data", fmt.Sprintf("value below minimum %v", min))
		}

		if max, ok := q.RequestConfig["max"].(float64); ok && f > max {
			return workpaper.NewValidationError("response_data", fmt.Sprintf("value above maximum %v", max))
		}
	case workpaper.QueryRequestConfirmation:
		if _, ok := value.(bool); !ok {
			return workpaper.NewValidationError("response_data", "value must be a boolean")
		}
	}

	return nil
}

// Resolve marks a query resolved. Legal from any state that is not
// already resolved or closed.
func (s *Service) Resolve(ctx context.Context, queryID uuid.UUID, resolutionMessage string, actor workpaper.Actor) (*workpaper.Query, error) {
	q, err := s.repo.GetQuery(ctx, queryID)
	if err != nil {
		return nil, err
	}

	if q.Status == workpaper.QueryResolved || q.Status == workpaper.QueryClosed {
		return nil, workpaper.NewConflictError("query is already %s", q.Status)
	}

	if resolutionMessage != "" {
		_, err := s.AddMessage(ctx, queryID, MessageParams{
			Sender:      workpaper.SenderAdmin,
			SenderID:    actor.ID,
			SenderEmail: actor.Email,
			Text:        resolutionMessage,
		})
		if err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	q.Status = workpaper.QueryResolved
	q.ResolvedBy = &actor
	q.ResolvedAt = &now

	if err := s.repo.UpdateQuery(ctx, q); err != nil {
		return nil, err
	}

	if err := s.resyncTask(ctx, q.ClientID, q.JobID); err != nil {
		return nil, err
	}

	s.audit.Log(ctx, audit.Entry{
		Action:       audit.ActionQueryResolve,
		ResourceType: audit.ResourceQuery,
		ResourceID:   queryID.String(),
		Actor:        actor,
	})

	return q, nil
}

// Close closes a resolved query. CLOSED is terminal.
func (s *Service) Close(ctx context.Context, queryID uuid.UUID, actor workpaper.Actor) (*workpaper.Query, error) {
	q, err := s.repo.GetQuery(ctx, queryID)
	if err != nil {
		return nil, err
	}

	if !CanTransition(q.Status, workpaper.QueryClosed) {
		return nil, workpaper.NewConflictError("only resolved queries can be closed, query is %q", q.Status)
	}

	q.Status = workpaper.QueryClosed
	if err := s.repo.UpdateQuery(ctx, q); err != nil {
		return nil, err
	}

	if err := s.resyncTask(ctx, q.ClientID, q.JobID); err != nil {
		return nil, err
	}

	s.audit.Log(ctx, audit.Entry{
		Action:       audit.ActionQueryClose,
		ResourceType: audit.ResourceQuery,
		ResourceID:   queryID.String(),
		Actor:        actor,
	})

	return q, nil
}

func (s *Service) ListByJob(ctx context.Context, jobID uuid.UUID) ([]*workpaper.Query, error) {
	return s.repo.ListByJob(ctx, jobID)
}

func (s *Service) ListByModule(ctx context.Context, moduleID uuid.UUID) ([]*workpaper.Query, error) {
	return s.repo.ListByModule(ctx, moduleID)
}

func (s *Service) ListOpen(ctx context.Context, jobID uuid.UUID) ([]*workpaper.Query, error) {
	return s.repo.ListOpenByJob(ctx, jobID)
}

// Summary aggregates query counts for a job.
type Summary struct {
	Total         int                           `json:"total"`
	Open          int                           `json:"open"`
	ByStatus      map[workpaper.QueryStatus]int `json:"by_status"`
	NeedsResponse int                           `json:"needs_response"`
}

func (s *Service) JobSummary(ctx context.Context, jobID uuid.UUID) (*Summary, error) {
	queries, err := s.repo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	sum := &Summary{ByStatus: make(map[workpaper.QueryStatus]int)}

	for _, q := range queries {
		sum.Total++
		sum.ByStatus[q.Status]++

		if q.Status.Open() {
			sum.Open++
		}

		if q.Status == workpaper.QueryClientResponded {
			sum.NeedsResponse++
		}
	}

	return sum, nil
}

// GetQueriesTask returns the single QUERIES task for a (client, job).
func (s *Service) GetQueriesTask(ctx context.Context, clientID string, jobID uuid.UUID) (*workpaper.Task, error) {
	return s.tasks.GetQueriesTask(ctx, clientID, jobID)
}

// resyncTask recomputes the single QUERIES task from current query state
// after every transition that can change the open set.
func (s *Service) resyncTask(ctx context.Context, clientID string, jobID uuid.UUID) error {
	open, err := s.repo.ListOpenByJob(ctx, jobID)
	if err != nil {
		return fmt.Errorf("listing open queries: %w", err)
	}

	task, err := s.tasks.GetQueriesTask(ctx, clientID, jobID)
	if err != nil && !errors.Is(err, workpaper.ErrTaskNotFound) {
		return fmt.Errorf("loading queries task: %w", err)
	}

	if len(open) == 0 {
		if task == nil || task.Status == workpaper.TaskCompleted {
			return nil
		}

		now := time.Now().UTC()
		task.Status = workpaper.TaskCompleted
		task.CompletedAt = &now
		task.QueryCount = 0
		task.QueryIDs = nil

		return s.tasks.UpdateTask(ctx, task)
	}

	ids := make([]uuid.UUID, len(open))
	for i, q := range open {
		ids[i] = q.ID
	}

	title := taskTitle(len(open))

	if task == nil {
		return s.tasks.CreateTask(ctx, &workpaper.Task{
			ClientID:   clientID,
			JobID:      jobID,
			Type:       workpaper.TaskQueries,
			Status:     workpaper.TaskOpen,
			Title:      title,
			QueryCount: len(open),
			QueryIDs:   ids,
		})
	}

	task.Status = workpaper.TaskOpen
	task.Title = title
	task.QueryCount = len(open)
	task.QueryIDs = ids
	task.CompletedAt = nil

	return s.tasks.UpdateTask(ctx, task)
}

func taskTitle(n int) string {
	if n == 1 {
		return "You have 1 open query"
	}

	return fmt.Sprintf("You have %d open queries", n)
}
