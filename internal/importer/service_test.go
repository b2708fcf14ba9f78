package importer_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/FDCTax/fdctax-core-api-sub002/internal/importer"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/transaction"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/workpaper"
)

func TestService_Import(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txs := importer.NewMockTransactionCreator(ctrl)
	jobs := importer.NewMockJobSource(ctrl)
	svc := importer.NewService(txs, jobs)

	csv := `date,description,amount
2025-07-01,Shell fuel,-45.50
2025-07-02,Toy shop,-20.00
`

	txs.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p transaction.CreateParams) (*workpaper.Transaction, error) {
			assert.Equal(t, "client-1", p.ClientID)
			assert.Equal(t, workpaper.SourceImport, p.Source)
			assert.Nil(t, p.JobID)

			return &workpaper.Transaction{ID: uuid.New(), ClientID: p.ClientID}, nil
		}).
		Times(2)

	res, err := svc.Import(context.Background(), strings.NewReader(csv), importer.ImportParams{
		ClientID: "client-1",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Created)
	assert.Len(t, res.Transactions, 2)
}

func TestService_Import_StampsJobAndModule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txs := importer.NewMockTransactionCreator(ctrl)
	jobs := importer.NewMockJobSource(ctrl)
	svc := importer.NewService(txs, jobs)

	jobID := uuid.New()
	moduleID := uuid.New()

	jobs.EXPECT().GetJob(gomock.Any(), jobID).
		Return(&workpaper.Job{ID: jobID, Status: workpaper.StatusInProgress}, nil)

	txs.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p transaction.CreateParams) (*workpaper.Transaction, error) {
			require.NotNil(t, p.JobID)
			assert.Equal(t, jobID, *p.JobID)
			require.NotNil(t, p.ModuleID)
			assert.Equal(t, moduleID, *p.ModuleID)

			return &workpaper.Transaction{ID: uuid.New()}, nil
		})

	csv := `date,description,amount
2025-07-01,Shell fuel,-45.50
`

	_, err := svc.Import(context.Background(), strings.NewReader(csv), importer.ImportParams{
		ClientID: "client-1",
		JobID:    &jobID,
		ModuleID: &moduleID,
	})
	require.NoError(t, err)
}

func TestService_Import_MissingClientID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := importer.NewService(importer.NewMockTransactionCreator(ctrl), importer.NewMockJobSource(ctrl))

	_, err := svc.Import(context.Background(), strings.NewReader("date,description,amount\n"), importer.ImportParams{})
	require.Error(t, err)
	assert.True(t, workpaper.IsValidation(err))
}

func TestService_Import_FrozenJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txs := importer.NewMockTransactionCreator(ctrl)
	jobs := importer.NewMockJobSource(ctrl)
	svc := importer.NewService(txs, jobs)

	jobID := uuid.New()

	jobs.EXPECT().GetJob(gomock.Any(), jobID).
		Return(&workpaper.Job{ID: jobID, Status: workpaper.StatusFrozen}, nil)

	csv := `date,description,amount
2025-07-01,Shell fuel,-45.50
`

	_, err := svc.Import(context.Background(), strings.NewReader(csv), importer.ImportParams{
		ClientID: "client-1",
		JobID:    &jobID,
	})
	require.Error(t, err)
	assert.True(t, workpaper.IsConflict(err))
}

func TestService_Import_RowErrorAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txs := importer.NewMockTransactionCreator(ctrl)
	jobs := importer.NewMockJobSource(ctrl)
	svc := importer.NewService(txs, jobs)

	csv := `date,description,amount
2025-07-01,Shell fuel,-45.50
2025-07-02,Toy shop,-20.00
`

	txs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&workpaper.Transaction{ID: uuid.New()}, nil)
	txs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

	_, err := svc.Import(context.Background(), strings.NewReader(csv), importer.ImportParams{
		ClientID: "client-1",
	})
	require.Error(t, err)
	assert.EqualError(t, err, "row 3: boom")
}
