package query_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/FDCTax/fdctax-core-api-sub002/internal/query"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/workpaper"
)

var admin = workpaper.Actor{ID: "admin-1", Email: "admin@fdctax.com.au"}

func TestCanTransition(t *testing.T) {
	type testCase struct {
		name    string
		from    workpaper.QueryStatus
		to      workpaper.QueryStatus
		allowed bool
	}

	tests := []testCase{
		{"DraftToSent", workpaper.QueryDraft, workpaper.QuerySentToClient, true},
		{"DraftToResolved", workpaper.QueryDraft, workpaper.QueryResolved, false},
		{"SentToAwaiting", workpaper.QuerySentToClient, workpaper.QueryAwaitingClient, true},
		{"SentToResolved", workpaper.QuerySentToClient, workpaper.QueryResolved, true},
		{"AwaitingToResponded", workpaper.QueryAwaitingClient, workpaper.QueryClientResponded, true},
		{"RespondedToAwaiting", workpaper.QueryClientResponded, workpaper.QueryAwaitingClient, true},
		{"RespondedToResolved", workpaper.QueryClientResponded, workpaper.QueryResolved, true},
		{"ResolvedToClosed", workpaper.QueryResolved, workpaper.QueryClosed, true},
		{"ResolvedReopenedToAwaiting", workpaper.QueryResolved, workpaper.QueryAwaitingClient, true},
		{"ClosedIsTerminal", workpaper.QueryClosed, workpaper.QueryAwaitingClient, false},
		{"ClosedToResolved", workpaper.QueryClosed, workpaper.QueryResolved, false},
		{"NoSkippingDraft", workpaper.QueryDraft, workpaper.QueryClientResponded, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, query.CanTransition(tt.from, tt.to))
		})
	}
}

func TestService_Create(t *testing.T) {
	type args struct {
		params query.CreateParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *query.MockRepository)
		wantErr   bool
	}

	jobID := uuid.New()

	tests := []testCase{
		{
			name: "Success",
			args: args{
				params: query.CreateParams{
					ClientID: "client-1",
					JobID:    jobID,
					Title:    "Confirm vehicle business use",
					Actor:    admin,
				},
			},
			setupMock: func(m *query.MockRepository) {
				m.EXPECT().
					CreateQuery(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, q *workpaper.Query) error {
						q.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name: "MissingTitle",
			args: args{
				params: query.CreateParams{ClientID: "client-1", JobID: jobID, Actor: admin},
			},
			wantErr: true,
		},
		{
			name: "MissingActor",
			args: args{
				params: query.CreateParams{ClientID: "client-1", JobID: jobID, Title: "Title"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := query.NewMockRepository(ctrl)
			tasks := query.NewMockTaskRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := query.NewService(repo, tasks, nil)
			got, err := svc.Create(context.Background(), tt.args.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, workpaper.QueryDraft, got.Status)
			assert.Equal(t, workpaper.QueryText, got.Type)
		})
	}
}

func TestService_Create_SeedsInitialMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := query.NewMockRepository(ctrl)
	tasks := query.NewMockTaskRepository(ctrl)

	var queryID uuid.UUID

	repo.EXPECT().
		CreateQuery(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q *workpaper.Query) error {
			q.ID = uuid.New()
			queryID = q.ID
			return nil
		})
	repo.EXPECT().
		GetQuery(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID) (*workpaper.Query, error) {
			return &workpaper.Query{ID: id, Status: workpaper.QueryDraft}, nil
		})
	repo.EXPECT().
		CreateMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m *workpaper.QueryMessage) error {
			assert.Equal(t, workpaper.SenderAdmin, m.Sender)
			assert.Equal(t, "Please confirm your odometer readings.", m.Text)
			return nil
		})

	svc := query.NewService(repo, tasks, nil)

	got, err := svc.Create(context.Background(), query.CreateParams{
		ClientID:       "client-1",
		JobID:          uuid.New(),
		Title:          "Odometer readings",
		InitialMessage: "Please confirm your odometer readings.",
		Actor:          admin,
	})
	require.NoError(t, err)
	assert.Equal(t, queryID, got.ID)
}

func draftQuery(jobID uuid.UUID) *workpaper.Query {
	return &workpaper.Query{
		ID:       uuid.New(),
		ClientID: "client-1",
		JobID:    jobID,
		Status:   workpaper.QueryDraft,
		Title:    "Confirm vehicle business use",
		Type:     workpaper.QueryText,
	}
}

func TestService_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jobID := uuid.New()
	q := draftQuery(jobID)

	repo := query.NewMockRepository(ctrl)
	tasks := query.NewMockTaskRepository(ctrl)

	repo.EXPECT().GetQuery(gomock.Any(), q.ID).Return(q, nil)
	repo.EXPECT().
		UpdateQuery(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, updated *workpaper.Query) error {
			assert.Equal(t, workpaper.QuerySentToClient, updated.Status)
			return nil
		})

	// First open query for the job; the QUERIES task is created fresh.
	repo.EXPECT().ListOpenByJob(gomock.Any(), jobID).Return([]*workpaper.Query{q}, nil)
	tasks.EXPECT().GetQueriesTask(gomock.Any(), "client-1", jobID).Return(nil, workpaper.ErrTaskNotFound)
	tasks.EXPECT().
		CreateTask(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, task *workpaper.Task) error {
			assert.Equal(t, workpaper.TaskQueries, task.Type)
			assert.Equal(t, workpaper.TaskOpen, task.Status)
			assert.Equal(t, "You have 1 open query", task.Title)
			assert.Equal(t, []uuid.UUID{q.ID}, task.QueryIDs)
			return nil
		})

	svc := query.NewService(repo, tasks, nil)

	got, err := svc.Send(context.Background(), q.ID, "", admin)
	require.NoError(t, err)
	assert.Equal(t, workpaper.QuerySentToClient, got.Status)
}

func TestService_Send_NotDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	q := draftQuery(uuid.New())
	q.Status = workpaper.QueryResolved

	repo := query.NewMockRepository(ctrl)
	tasks := query.NewMockTaskRepository(ctrl)

	repo.EXPECT().GetQuery(gomock.Any(), q.ID).Return(q, nil)

	svc := query.NewService(repo, tasks, nil)

	got, err := svc.Send(context.Background(), q.ID, "", admin)
	assert.Nil(t, got)
	assert.True(t, workpaper.IsConflict(err))
}

func TestService_AddMessage_ClientFlipsStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jobID := uuid.New()
	q := draftQuery(jobID)
	q.Status = workpaper.QuerySentToClient

	repo := query.NewMockRepository(ctrl)
	tasks := query.NewMockTaskRepository(ctrl)

	repo.EXPECT().GetQuery(gomock.Any(), q.ID).Return(q, nil)
	repo.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().
		UpdateQuery(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, updated *workpaper.Query) error {
			assert.Equal(t, workpaper.QueryClientResponded, updated.Status)
			return nil
		})

	// A client message changes the open set composition, so the task
	// resyncs with the query still counted as open.
	repo.EXPECT().ListOpenByJob(gomock.Any(), jobID).Return([]*workpaper.Query{q}, nil)
	tasks.EXPECT().
		GetQueriesTask(gomock.Any(), "client-1", jobID).
		Return(&workpaper.Task{
			ID:       uuid.New(),
			ClientID: "client-1",
			JobID:    jobID,
			Type:     workpaper.TaskQueries,
			Status:   workpaper.TaskOpen,
		}, nil)
	tasks.EXPECT().UpdateTask(gomock.Any(), gomock.Any()).Return(nil)

	svc := query.NewService(repo, tasks, nil)

	_, err := svc.AddMessage(context.Background(), q.ID, query.MessageParams{
		Sender:   workpaper.SenderClient,
		SenderID: "client-1",
		Text:     "Here are the readings.",
	})
	require.NoError(t, err)
}

func TestService_AddMessage_AdminFlipsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	q := draftQuery(uuid.New())
	q.Status = workpaper.QueryClientResponded

	repo := query.NewMockRepository(ctrl)
	tasks := query.NewMockTaskRepository(ctrl)

	repo.EXPECT().GetQuery(gomock.Any(), q.ID).Return(q, nil)
	repo.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().
		UpdateQuery(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, updated *workpaper.Query) error {
			assert.Equal(t, workpaper.QueryAwaitingClient, updated.Status)
			return nil
		})

	svc := query.NewService(repo, tasks, nil)

	_, err := svc.AddMessage(context.Background(), q.ID, query.MessageParams{
		Sender:   workpaper.SenderAdmin,
		SenderID: admin.ID,
		Text:     "Thanks, one more thing.",
	})
	require.NoError(t, err)
}

func TestService_AddMessage_EmptyText(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := query.NewMockRepository(ctrl)
	tasks := query.NewMockTaskRepository(ctrl)

	svc := query.NewService(repo, tasks, nil)

	_, err := svc.AddMessage(context.Background(), uuid.New(), query.MessageParams{
		Sender: workpaper.SenderClient,
	})
	assert.True(t, workpaper.IsValidation(err))
}

func TestService_ClientRespond(t *testing.T) {
	type testCase struct {
		name    string
		status  workpaper.QueryStatus
		qtype   workpaper.QueryType
		config  map[string]any
		params  query.RespondParams
		wantErr bool
	}

	tests := []testCase{
		{
			name:   "SelectionValid",
			status: workpaper.QuerySentToClient,
			qtype:  workpaper.QueryRequestSelection,
			config: map[string]any{"options": []any{"yes", "no"}},
			params: query.RespondParams{
				ClientID:     "client-1",
				ResponseData: map[string]any{"value": "yes"},
			},
		},
		{
			name:   "SelectionOutsideOptions",
			status: workpaper.QuerySentToClient,
			qtype:  workpaper.QueryRequestSelection,
			config: map[string]any{"options": []any{"yes", "no"}},
			params: query.RespondParams{
				ClientID:     "client-1",
				ResponseData: map[string]any{"value": "maybe"},
			},
			wantErr: true,
		},
		{
			name:   "PercentageInRange",
			status: workpaper.QueryAwaitingClient,
			qtype:  workpaper.QueryRequestPercentage,
			config: map[string]any{"min": float64(0), "max": float64(100)},
			params: query.RespondParams{
				ClientID:     "client-1",
				ResponseData: map[string]any{"value": float64(80)},
			},
		},
		{
			name:   "PercentageAboveMax",
			status: workpaper.QueryAwaitingClient,
			qtype:  workpaper.QueryRequestPercentage,
			config: map[string]any{"min": float64(0), "max": float64(100)},
			params: query.RespondParams{
				ClientID:     "client-1",
				ResponseData: map[string]any{"value": float64(120)},
			},
			wantErr: true,
		},
		{
			name:   "ConfirmationNotBool",
			status: workpaper.QuerySentToClient,
			qtype:  workpaper.QueryRequestConfirmation,
			params: query.RespondParams{
				ClientID:     "client-1",
				ResponseData: map[string]any{"value": "yes"},
			},
			wantErr: true,
		},
		{
			name:   "WrongClient",
			status: workpaper.QuerySentToClient,
			qtype:  workpaper.QueryText,
			params: query.RespondParams{
				ClientID: "client-2",
			},
			wantErr: true,
		},
		{
			name:   "RespondToDraft",
			status: workpaper.QueryDraft,
			qtype:  workpaper.QueryText,
			params: query.RespondParams{
				ClientID: "client-1",
			},
			wantErr: true,
		},
		{
			name:   "RespondToClosed",
			status: workpaper.QueryClosed,
			qtype:  workpaper.QueryText,
			params: query.RespondParams{
				ClientID: "client-1",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			jobID := uuid.New()
			q := &workpaper.Query{
				ID:            uuid.New(),
				ClientID:      "client-1",
				JobID:         jobID,
				Status:        tt.status,
				Title:         "Question",
				Type:          tt.qtype,
				RequestConfig: tt.config,
			}

			repo := query.NewMockRepository(ctrl)
			tasks := query.NewMockTaskRepository(ctrl)

			repo.EXPECT().GetQuery(gomock.Any(), q.ID).Return(q, nil)

			if !tt.wantErr {
				repo.EXPECT().
					UpdateQuery(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, updated *workpaper.Query) error {
						assert.Equal(t, workpaper.QueryClientResponded, updated.Status)
						assert.Equal(t, tt.params.ResponseData, updated.ResponseData)
						return nil
					})
				repo.EXPECT().ListOpenByJob(gomock.Any(), jobID).Return([]*workpaper.Query{q}, nil)
				tasks.EXPECT().
					GetQueriesTask(gomock.Any(), "client-1", jobID).
					Return(&workpaper.Task{Status: workpaper.TaskOpen}, nil)
				tasks.EXPECT().UpdateTask(gomock.Any(), gomock.Any()).Return(nil)
			}

			svc := query.NewService(repo, tasks, nil)

			got, err := svc.ClientRespond(context.Background(), q.ID, tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, workpaper.QueryClientResponded, got.Status)
		})
	}
}

func TestService_Resolve_CompletesTask(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jobID := uuid.New()
	q := draftQuery(jobID)
	q.Status = workpaper.QueryClientResponded

	repo := query.NewMockRepository(ctrl)
	tasks := query.NewMockTaskRepository(ctrl)

	repo.EXPECT().GetQuery(gomock.Any(), q.ID).Return(q, nil)
	repo.EXPECT().
		UpdateQuery(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, updated *workpaper.Query) error {
			assert.Equal(t, workpaper.QueryResolved, updated.Status)
			require.NotNil(t, updated.ResolvedBy)
			assert.Equal(t, admin.ID, updated.ResolvedBy.ID)
			assert.NotNil(t, updated.ResolvedAt)
			return nil
		})

	// Resolving the last open query completes the QUERIES task.
	repo.EXPECT().ListOpenByJob(gomock.Any(), jobID).Return(nil, nil)
	tasks.EXPECT().
		GetQueriesTask(gomock.Any(), "client-1", jobID).
		Return(&workpaper.Task{
			ID:         uuid.New(),
			ClientID:   "client-1",
			JobID:      jobID,
			Type:       workpaper.TaskQueries,
			Status:     workpaper.TaskOpen,
			QueryCount: 1,
			QueryIDs:   []uuid.UUID{q.ID},
		}, nil)
	tasks.EXPECT().
		UpdateTask(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, task *workpaper.Task) error {
			assert.Equal(t, workpaper.TaskCompleted, task.Status)
			assert.NotNil(t, task.CompletedAt)
			assert.Zero(t, task.QueryCount)
			assert.Empty(t, task.QueryIDs)
			return nil
		})

	svc := query.NewService(repo, tasks, nil)

	got, err := svc.Resolve(context.Background(), q.ID, "", admin)
	require.NoError(t, err)
	assert.Equal(t, workpaper.QueryResolved, got.Status)
}

func TestService_Resolve_AlreadyResolved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	q := draftQuery(uuid.New())
	q.Status = workpaper.QueryResolved

	repo := query.NewMockRepository(ctrl)
	tasks := query.NewMockTaskRepository(ctrl)

	repo.EXPECT().GetQuery(gomock.Any(), q.ID).Return(q, nil)

	svc := query.NewService(repo, tasks, nil)

	_, err := svc.Resolve(context.Background(), q.ID, "", admin)
	assert.True(t, workpaper.IsConflict(err))
}

func TestService_Close(t *testing.T) {
	type testCase struct {
		name    string
		status  workpaper.QueryStatus
		wantErr bool
	}

	tests := []testCase{
		{name: "FromResolved", status: workpaper.QueryResolved},
		{name: "FromOpen", status: workpaper.QueryAwaitingClient, wantErr: true},
		{name: "AlreadyClosed", status: workpaper.QueryClosed, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			jobID := uuid.New()
			q := draftQuery(jobID)
			q.Status = tt.status

			repo := query.NewMockRepository(ctrl)
			tasks := query.NewMockTaskRepository(ctrl)

			repo.EXPECT().GetQuery(gomock.Any(), q.ID).Return(q, nil)

			if !tt.wantErr {
				repo.EXPECT().UpdateQuery(gomock.Any(), gomock.Any()).Return(nil)
				repo.EXPECT().ListOpenByJob(gomock.Any(), jobID).Return(nil, nil)
				tasks.EXPECT().
					GetQueriesTask(gomock.Any(), "client-1", jobID).
					Return(&workpaper.Task{Status: workpaper.TaskCompleted}, nil)
			}

			svc := query.NewService(repo, tasks, nil)

			got, err := svc.Close(context.Background(), q.ID, admin)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, workpaper.QueryClosed, got.Status)
		})
	}
}

func TestService_SendBulk_SkipsFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jobID := uuid.New()
	sendable := draftQuery(jobID)
	alreadySent := draftQuery(jobID)
	alreadySent.Status = workpaper.QuerySentToClient

	repo := query.NewMockRepository(ctrl)
	tasks := query.NewMockTaskRepository(ctrl)

	repo.EXPECT().GetQuery(gomock.Any(), sendable.ID).Return(sendable, nil)
	repo.EXPECT().UpdateQuery(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().ListOpenByJob(gomock.Any(), jobID).Return([]*workpaper.Query{sendable}, nil)
	tasks.EXPECT().GetQueriesTask(gomock.Any(), "client-1", jobID).Return(nil, workpaper.ErrTaskNotFound)
	tasks.EXPECT().CreateTask(gomock.Any(), gomock.Any()).Return(nil)

	repo.EXPECT().GetQuery(gomock.Any(), alreadySent.ID).Return(alreadySent, nil)

	svc := query.NewService(repo, tasks, nil)

	sent := svc.SendBulk(context.Background(), []uuid.UUID{sendable.ID, alreadySent.ID}, admin)
	require.Len(t, sent, 1)
	assert.Equal(t, sendable.ID, sent[0].ID)
}

func TestService_JobSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jobID := uuid.New()

	repo := query.NewMockRepository(ctrl)
	tasks := query.NewMockTaskRepository(ctrl)

	repo.EXPECT().
		ListByJob(gomock.Any(), jobID).
		Return([]*workpaper.Query{
			{Status: workpaper.QueryDraft},
			{Status: workpaper.QuerySentToClient},
			{Status: workpaper.QueryClientResponded},
			{Status: workpaper.QueryClientResponded},
			{Status: workpaper.QueryResolved},
			{Status: workpaper.QueryClosed},
		}, nil)

	svc := query.NewService(repo, tasks, nil)

	sum, err := svc.JobSummary(context.Background(), jobID)
	require.NoError(t, err)
	assert.Equal(t, 6, sum.Total)
	assert.Equal(t, 3, sum.Open)
	assert.Equal(t, 2, sum.NeedsResponse)
	assert.Equal(t, 2, sum.ByStatus[workpaper.QueryClientResponded])
}
