package workpaper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FDCTax/fdctax-core-api-sub002/internal/workpaper"
)

func TestDeriveJobStatus(t *testing.T) {
	type testCase struct {
		name     string
		statuses []workpaper.Status
		want     workpaper.Status
	}

	tests := []testCase{
		{
			name:     "NoModules",
			statuses: nil,
			want:     workpaper.StatusNotStarted,
		},
		{
			name:     "LeastCompleteWins",
			statuses: []workpaper.Status{workpaper.StatusCompleted, workpaper.StatusNotStarted},
			want:     workpaper.StatusNotStarted,
		},
		{
			name:     "InProgressBelowCompleted",
			statuses: []workpaper.Status{workpaper.StatusInProgress, workpaper.StatusCompleted},
			want:     workpaper.StatusInProgress,
		},
		{
			name:     "NAExcluded",
			statuses: []workpaper.Status{workpaper.StatusCompleted, workpaper.StatusFrozen, workpaper.StatusNA},
			want:     workpaper.StatusCompleted,
		},
		{
			name:     "AllNA",
			statuses: []workpaper.Status{workpaper.StatusNA, workpaper.StatusNA},
			want:     workpaper.StatusNotStarted,
		},
		{
			name:     "AllFrozen",
			statuses: []workpaper.Status{workpaper.StatusFrozen, workpaper.StatusFrozen},
			want:     workpaper.StatusFrozen,
		},
		{
			name:     "FrozenWithNA",
			statuses: []workpaper.Status{workpaper.StatusFrozen, workpaper.StatusNA},
			want:     workpaper.StatusFrozen,
		},
		{
			name: "AwaitingClientAmongReviewStates",
			statuses: []workpaper.Status{
				workpaper.StatusReadyForFinalReview,
				workpaper.StatusAwaitingClient,
				workpaper.StatusReadyForReview,
			},
			want: workpaper.StatusAwaitingClient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			modules := make([]*workpaper.ModuleInstance, len(tt.statuses))
			for i, s := range tt.statuses {
				modules[i] = &workpaper.ModuleInstance{Status: s}
			}

			assert.Equal(t, tt.want, workpaper.DeriveJobStatus(modules))
		})
	}
}

func TestDeriveJobStatus_Recompute(t *testing.T) {
	modules := []*workpaper.ModuleInstance{
		{Status: workpaper.StatusCompleted},
		{Status: workpaper.StatusNotStarted},
	}

	assert.Equal(t, workpaper.StatusNotStarted, workpaper.DeriveJobStatus(modules))

	// Completing the lagging module moves the whole job forward.
	modules[1].Status = workpaper.StatusCompleted
	assert.Equal(t, workpaper.StatusCompleted, workpaper.DeriveJobStatus(modules))
}

func TestValidStatus(t *testing.T) {
	assert.True(t, workpaper.ValidStatus(workpaper.StatusInProgress))
	assert.True(t, workpaper.ValidStatus(workpaper.StatusNA))
	assert.False(t, workpaper.ValidStatus(workpaper.Status("archived")))
}
