package transaction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/FDCTax/fdctax-core-api-sub002/internal/transaction"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/workpaper"
)

func TestService_Create(t *testing.T) {
	type args struct {
		params transaction.CreateParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *transaction.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{
				params: transaction.CreateParams{
					ClientID: "client-1",
					Date:     time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC),
					Amount:   decimal.NewFromInt(100),
					Category: workpaper.CategoryVehicleFuel,
					Vendor:   "Shell",
				},
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *workpaper.Transaction) error {
						tx.ID = uuid.New()
						tx.CreatedAt = time.Now()
						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "MissingClientID",
			args: args{
				params: transaction.CreateParams{
					Date:   time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC),
					Amount: decimal.NewFromInt(100),
				},
			},
			wantErr: true,
		},
		{
			name: "MissingDate",
			args: args{
				params: transaction.CreateParams{
					ClientID: "client-1",
					Amount:   decimal.NewFromInt(100),
				},
			},
			wantErr: true,
		},
		{
			name: "RepoError",
			args: args{
				params: transaction.CreateParams{
					ClientID: "client-1",
					Date:     time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC),
				},
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transaction.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := transaction.NewService(repo, nil)
			got, err := svc.Create(context.Background(), tt.args.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
		})
	}
}

func TestService_Create_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)

	svc := transaction.NewService(repo, nil)

	got, err := svc.Create(context.Background(), transaction.CreateParams{
		ClientID: "client-1",
		Date:     time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC),
		Amount:   decimal.NewFromInt(42),
	})
	require.NoError(t, err)
	assert.Equal(t, workpaper.SourceManual, got.Source)
	assert.Equal(t, workpaper.CategoryUncategorized, got.Category)
}

func TestService_CreateOverride(t *testing.T) {
	amount := decimal.NewFromInt(80)
	badPct := decimal.NewFromInt(120)
	actor := workpaper.Actor{ID: "admin-1", Email: "admin@fdctax.com.au"}

	type args struct {
		params transaction.OverrideParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *transaction.MockRepository)
		wantErr   bool
	}

	txID := uuid.New()
	jobID := uuid.New()

	tests := []testCase{
		{
			name: "Success",
			args: args{
				params: transaction.OverrideParams{
					TransactionID: txID,
					JobID:         jobID,
					Amount:        &amount,
					Reason:        "personal portion removed",
					Actor:         actor,
				},
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					GetTransaction(gomock.Any(), txID).
					Return(&workpaper.Transaction{ID: txID, ClientID: "client-1"}, nil)
				m.EXPECT().
					CreateOverride(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, ov *workpaper.TransactionOverride) error {
						ov.ID = uuid.New()
						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "MissingReason",
			args: args{
				params: transaction.OverrideParams{
					TransactionID: txID,
					JobID:         jobID,
					Amount:        &amount,
					Actor:         actor,
				},
			},
			wantErr: true,
		},
		{
			name: "MissingActor",
			args: args{
				params: transaction.OverrideParams{
					TransactionID: txID,
					JobID:         jobID,
					Amount:        &amount,
					Reason:        "adjusted",
				},
			},
			wantErr: true,
		},
		{
			name: "NoFieldsSet",
			args: args{
				params: transaction.OverrideParams{
					TransactionID: txID,
					JobID:         jobID,
					Reason:        "adjusted",
					Actor:         actor,
				},
			},
			wantErr: true,
		},
		{
			name: "BusinessPctOutOfRange",
			args: args{
				params: transaction.OverrideParams{
					TransactionID: txID,
					JobID:         jobID,
					BusinessPct:   &badPct,
					Reason:        "adjusted",
					Actor:         actor,
				},
			},
			wantErr: true,
		},
		{
			name: "TransactionMissing",
			args: args{
				params: transaction.OverrideParams{
					TransactionID: txID,
					JobID:         jobID,
					Amount:        &amount,
					Reason:        "adjusted",
					Actor:         actor,
				},
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					GetTransaction(gomock.Any(), txID).
					Return(nil, workpaper.ErrTransactionNotFound)
			},
			wantErr: true,
		},
		{
			name: "DuplicateConflict",
			args: args{
				params: transaction.OverrideParams{
					TransactionID: txID,
					JobID:         jobID,
					Amount:        &amount,
					Reason:        "adjusted",
					Actor:         actor,
				},
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					GetTransaction(gomock.Any(), txID).
					Return(&workpaper.Transaction{ID: txID}, nil)
				m.EXPECT().
					CreateOverride(gomock.Any(), gomock.Any()).
					Return(workpaper.NewConflictError("override already exists"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transaction.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := transaction.NewService(repo, nil)
			got, err := svc.CreateOverride(context.Background(), tt.args.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, got)
		})
	}
}

func TestService_Effective_NoOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txID := uuid.New()
	jobID := uuid.New()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		GetTransaction(gomock.Any(), txID).
		Return(&workpaper.Transaction{
			ID:       txID,
			ClientID: "client-1",
			Amount:   decimal.NewFromInt(100),
			Category: workpaper.CategoryInternet,
		}, nil)
	repo.EXPECT().
		GetOverride(gomock.Any(), txID, jobID).
		Return(nil, workpaper.ErrOverrideNotFound)

	svc := transaction.NewService(repo, nil)

	eff, err := svc.Effective(context.Background(), txID, jobID)
	require.NoError(t, err)
	assert.False(t, eff.HasOverride)
	assert.True(t, eff.BusinessAmount.Equal(decimal.NewFromInt(100)))
}

func TestService_EffectiveForJob_StableOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jobID := uuid.New()

	early := &workpaper.Transaction{
		ID:     uuid.New(),
		Date:   time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		Amount: decimal.NewFromInt(10),
	}
	late := &workpaper.Transaction{
		ID:     uuid.New(),
		Date:   time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		Amount: decimal.NewFromInt(20),
	}

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		ListTransactions(gomock.Any(), transaction.ListFilter{JobID: &jobID}).
		Return([]*workpaper.Transaction{late, early}, nil)
	repo.EXPECT().
		ListOverridesByJob(gomock.Any(), jobID).
		Return(nil, nil)

	svc := transaction.NewService(repo, nil)

	effs, err := svc.EffectiveForJob(context.Background(), jobID)
	require.NoError(t, err)
	require.Len(t, effs, 2)
	assert.Equal(t, early.ID, effs[0].TransactionID)
	assert.Equal(t, late.ID, effs[1].TransactionID)
}

func TestService_EffectiveForJob_AppliesOverrides(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jobID := uuid.New()
	amount := decimal.NewFromInt(80)

	tx := &workpaper.Transaction{
		ID:     uuid.New(),
		Date:   time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		Amount: decimal.NewFromInt(100),
	}

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		ListTransactions(gomock.Any(), transaction.ListFilter{JobID: &jobID}).
		Return([]*workpaper.Transaction{tx}, nil)
	repo.EXPECT().
		ListOverridesByJob(gomock.Any(), jobID).
		Return([]*workpaper.TransactionOverride{
			{
				ID:            uuid.New(),
				TransactionID: tx.ID,
				JobID:         jobID,
				Amount:        &amount,
				Reason:        "adjusted",
			},
		}, nil)

	svc := transaction.NewService(repo, nil)

	effs, err := svc.EffectiveForJob(context.Background(), jobID)
	require.NoError(t, err)
	require.Len(t, effs, 1)
	assert.True(t, effs[0].HasOverride)
	assert.True(t, effs[0].EffectiveAmount.Equal(amount))
}
