// Package export produces workpaper data bundles for downstream audit
// export and document generation. Rendering (PDF etc.) happens outside
// the core; this only assembles structured data.
package export

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/FDCTax/fdctax-core-api-sub002/internal/workpaper"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=export

// EffectiveSource supplies the job's effective transactions.
type EffectiveSource interface {
	EffectiveForJob(ctx context.Context, jobID uuid.UUID) ([]workpaper.EffectiveTransaction, error)
}

// SnapshotSource supplies freeze snapshots for the bundle.
type SnapshotSource interface {
	ListSnapshotsByJob(ctx context.Context, jobID uuid.UUID) ([]*workpaper.FreezeSnapshot, error)
	LatestSnapshot(ctx context.Context, jobID uuid.UUID, snapshotType *workpaper.SnapshotType) (*workpaper.FreezeSnapshot, error)
}

type JobSource interface {
	GetJob(ctx context.Context, id uuid.UUID) (*workpaper.Job, error)
}

type Service struct {
	jobs  JobSource
	effs  EffectiveSource
	snaps SnapshotSource
}

func NewService(jobs JobSource, effs EffectiveSource, snaps SnapshotSource) *Service {
	return &Service{jobs: jobs, effs: effs, snaps: snaps}
}

var effectiveCSVHeader = []string{
	"date", "vendor", "source", "original_amount", "original_category",
	"effective_amount", "effective_category", "business_pct",
	"business_amount", "gst_amount", "has_override", "override_reason",
}

// WriteEffectiveCSV streams the job's effective transactions as CSV,
// one row per transaction in stable (date, id) order.
func (s *Service) WriteEffectiveCSV(ctx context.Context, w io.Writer, jobID uuid.UUID) error {
	if _, err := s.jobs.GetJob(ctx, jobID); err != nil {
		return err
	}

	effs, err := s.effs.EffectiveForJob(ctx, jobID)
	if err != nil {
		return fmt.Errorf("building effective transactions: %w", err)
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(effectiveCSVHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, e := range effs {
		gst := ""
		if e.EffectiveGSTAmount != nil {
			gst = e.EffectiveGSTAmount.StringFixed(2)
		}

		row := []string{
			e.Date.Format("2006-01-02"),
			e.Vendor,
			string(e.Source),
			e.OriginalAmount.StringFixed(2),
			string(e.OriginalCategory),
			e.EffectiveAmount.StringFixed(2),
			string(e.EffectiveCategory),
			e.EffectiveBusinessPct.String(),
			e.BusinessAmount.StringFixed(2),
			gst,
			fmt.Sprintf("%t", e.HasOverride),
			e.OverrideReason,
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// Bundle is the structured export payload for one job.
type Bundle struct {
	Job                   *workpaper.Job                   `json:"job"`
	EffectiveTransactions []workpaper.EffectiveTransaction `json:"effective_transactions"`
	LatestSnapshot        *workpaper.FreezeSnapshot        `json:"latest_snapshot,omitempty"`
	Snapshots             []*workpaper.FreezeSnapshot      `json:"snapshots"`
}

// BuildBundle assembles a job's full export payload: job record,
// effective transactions and every freeze snapshot.
func (s *Service) BuildBundle(ctx context.Context, jobID uuid.UUID) (*Bundle, error) {
	j, err := s.jobs.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	effs, err := s.effs.EffectiveForJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("building effective transactions: %w", err)
	}

	snaps, err := s.snaps.ListSnapshotsByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}

	latest, err := s.snaps.LatestSnapshot(ctx, jobID, nil)
	if err != nil && !errors.Is(err, workpaper.ErrSnapshotNotFound) {
		return nil, fmt.Errorf("loading latest snapshot: %w", err)
	}

	return &Bundle{
		Job:                   j,
		EffectiveTransactions: effs,
		LatestSnapshot:        latest,
		Snapshots:             snaps,
	}, nil
}
