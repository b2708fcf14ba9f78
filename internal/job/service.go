package job

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/FDCTax/fdctax-core-api-sub002/internal/audit"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/workpaper"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=job
type Repository interface {
	// CreateJob enforces the unique (client_id, year) constraint and fails
	// with a ConflictError on a duplicate.
	CreateJob(ctx context.Context, j *workpaper.Job) error
	GetJob(ctx context.Context, id uuid.UUID) (*workpaper.Job, error)
	GetJobByClientYear(ctx context.Context, clientID, year string) (*workpaper.Job, error)
	ListJobsByClient(ctx context.Context, clientID string) ([]*workpaper.Job, error)
	UpdateJob(ctx context.Context, j *workpaper.Job) error

	CreateModule(ctx context.Context, m *workpaper.ModuleInstance) error
	GetModule(ctx context.Context, id uuid.UUID) (*workpaper.ModuleInstance, error)
	ListModulesByJob(ctx context.Context, jobID uuid.UUID) ([]*workpaper.ModuleInstance, error)
	UpdateModule(ctx context.Context, m *workpaper.ModuleInstance) error
	SaveModuleOutput(ctx context.Context, moduleID uuid.UUID, out *workpaper.Result, inputs map[string]any) error

	// CreateFieldOverride is an atomic create-or-reject on the unique
	// (module_id, field_key) pair.
	CreateFieldOverride(ctx context.Context, ov *workpaper.OverrideRecord) error
	GetFieldOverride(ctx context.Context, moduleID uuid.UUID, fieldKey string) (*workpaper.OverrideRecord, error)
	ListFieldOverrides(ctx context.Context, moduleID uuid.UUID) ([]*workpaper.OverrideRecord, error)
}

// QuerySource provides query listings for the dashboard and detail views.
type QuerySource interface {
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]*workpaper.Query, error)
	ListByModule(ctx context.Context, moduleID uuid.UUID) ([]*workpaper.Query, error)
}

// EffectiveSource provides effective transactions for the detail view.
type EffectiveSource interface {
	EffectiveForModule(ctx context.Context, moduleID, jobID uuid.UUID) ([]workpaper.EffectiveTransaction, error)
}

type Service struct {
	repo    Repository
	queries QuerySource
	effs    EffectiveSource
	audit   audit.Sink
}

func NewService(repo Repository, queries QuerySource, effs EffectiveSource, sink audit.Sink) *Service {
	if sink == nil {
		sink = audit.Nop{}
	}

	return &Service{repo: repo, queries: queries, effs: effs, audit: sink}
}

type CreateJobParams struct {
	ClientID string
	Year     string
	Notes    string
	// AutoCreateModules seeds the standard module set with default labels.
	AutoCreateModules bool
}

func (s *Service) CreateJob(ctx context.Context, params CreateJobParams) (*workpaper.Job, error) {
	if params.ClientID == "" {
		return nil, workpaper.NewValidationError("client_id", "required")
	}

	if params.Year == "" {
		return nil, workpaper.NewValidationError("year", "required")
	}

	j := &workpaper.Job{
		ClientID: params.ClientID,
		Year:     params.Year,
		Status:   workpaper.StatusNotStarted,
		Notes:    params.Notes,
	}

	if err := s.repo.CreateJob(ctx, j); err != nil {
		return nil, err
	}

	if params.AutoCreateModules {
		for _, t := range workpaper.StandardModuleTypes {
			m := &workpaper.ModuleInstance{
				JobID:  j.ID,
				Type:   t,
				Label:  defaultLabel(t),
				Status: workpaper.StatusNotStarted,
			}

			if err := s.repo.CreateModule(ctx, m); err != nil {
				return nil, fmt.Errorf("seeding %s module: %w", t, err)
			}
		}
	}

	return j, nil
}

func defaultLabel(t workpaper.ModuleType) string {
	switch t {
	case workpaper.ModuleMotorVehicle:
		return "Vehicle 1"
	case workpaper.ModuleHomeOffice:
		return "Home Office"
	case workpaper.ModuleInternet:
		return "Internet"
	case workpaper.ModuleMobile:
		return "Mobile"
	case workpaper.ModuleFDCIncome:
		return "FDC Income"
	case workpaper.ModuleFoodGST:
		return "Food & GST"
	case workpaper.ModuleSummary:
		return "Summary"
	default:
		return string(t)
	}
}

func (s *Service) GetJob(ctx context.Context, id uuid.UUID) (*workpaper.Job, error) {
	return s.repo.GetJob(ctx, id)
}

func (s *Service) GetJobByClientYear(ctx context.Context, clientID, year string) (*workpaper.Job, error) {
	return s.repo.GetJobByClientYear(ctx, clientID, year)
}

func (s *Service) ListJobsByClient(ctx context.Context, clientID string) ([]*workpaper.Job, error) {
	return s.repo.ListJobsByClient(ctx, clientID)
}

// UpdateJobNotes changes the free-text notes. Job status is never set
// through this path; it is always derived from modules.
func (s *Service) UpdateJobNotes(ctx context.Context, id uuid.UUID, notes string) (*workpaper.Job, error) {
	j, err := s.repo.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}

	j.Notes = notes
	if err := s.repo.UpdateJob(ctx, j); err != nil {
		return nil, err
	}

	return j, nil
}

type CreateModuleParams struct {
	JobID  uuid.UUID
	Type   workpaper.ModuleType
	Label  string
	Config workpaper.Config
}

func (s *Service) CreateModule(ctx context.Context, params CreateModuleParams) (*workpaper.ModuleInstance, error) {
	if params.Label == "" {
		return nil, workpaper.NewValidationError("label", "required")
	}

	if params.Config.Method != "" && !workpaper.KnownMethod(params.Type, params.Config.Method) {
		return nil, workpaper.NewValidationError("method",
			fmt.Sprintf("unknown method %q for module type %q", params.Config.Method, params.Type))
	}

	job, err := s.repo.GetJob(ctx, params.JobID)
	if err != nil {
		return nil, err
	}

	if job.Status == workpaper.StatusFrozen {
		return nil, workpaper.NewConflictError("job %s is frozen", job.ID)
	}

	m := &workpaper.ModuleInstance{
		JobID:  params.JobID,
		Type:   params.Type,
		Label:  params.Label,
		Status: workpaper.StatusNotStarted,
		Config: params.Config,
	}

	if err := s.repo.CreateModule(ctx, m); err != nil {
		return nil, err
	}

	if err := s.RecomputeJobStatus(ctx, params.JobID); err != nil {
		return nil, err
	}

	return m, nil
}

func (s *Service) GetModule(ctx context.Context, id uuid.UUID) (*workpaper.ModuleInstance, error) {
	return s.repo.GetModule(ctx, id)
}

func (s *Service) ListModules(ctx context.Context, jobID uuid.UUID) ([]*workpaper.ModuleInstance, error) {
	return s.repo.ListModulesByJob(ctx, jobID)
}

type UpdateModuleParams struct {
	Label  *string
	Config *workpaper.Config
	Status *workpaper.Status
}

// UpdateModule changes label, config or status. Frozen modules reject any
// mutation until reopened. A status change triggers a full job status
// recompute.
func (s *Service) UpdateModule(ctx context.Context, id uuid.UUID, params UpdateModuleParams) (*workpaper.ModuleInstance, error) {
	m, err := s.repo.GetModule(ctx, id)
	if err != nil {
		return nil, err
	}

	if m.Frozen() {
		return nil, workpaper.NewConflictError("module %s is frozen", id)
	}

	if params.Label != nil {
		m.Label = *params.Label
	}

	if params.Config != nil {
		if params.Config.Method != "" && !workpaper.KnownMethod(m.Type, params.Config.Method) {
			return nil, workpaper.NewValidationError("method",
				fmt.Sprintf("unknown method %q for module type %q", params.Config.Method, m.Type))
		}

		m.Config = *params.Config
	}

	statusChanged := false

	if params.Status != nil {
		if !workpaper.ValidStatus(*params.Status) {
			return nil, workpaper.NewValidationError("status", fmt.Sprintf("unknown status %q", *params.Status))
		}

		if *params.Status == workpaper.StatusFrozen {
			return nil, workpaper.NewConflictError("modules freeze through the freeze engine, not status updates")
		}

		statusChanged = m.Status != *params.Status
		m.Status = *params.Status
	}

	if err := s.repo.UpdateModule(ctx, m); err != nil {
		return nil, err
	}

	if statusChanged {
		if err := s.RecomputeJobStatus(ctx, m.JobID); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// RecomputeJobStatus derives the job status from its modules in full and
// persists it when changed. Never incrementally patched.
func (s *Service) RecomputeJobStatus(ctx context.Context, jobID uuid.UUID) error {
	j, err := s.repo.GetJob(ctx, jobID)
	if err != nil {
		return err
	}

	modules, err := s.repo.ListModulesByJob(ctx, jobID)
	if err != nil {
		return err
	}

	derived := workpaper.DeriveJobStatus(modules)
	if derived == j.Status {
		return nil
	}

	j.Status = derived
	if derived != workpaper.StatusFrozen {
		j.FrozenAt = nil
	}

	return s.repo.UpdateJob(ctx, j)
}

type FieldOverrideParams struct {
	ModuleID       uuid.UUID
	FieldKey       string
	OriginalValue  any
	EffectiveValue any
	Reason         string
	Actor          workpaper.Actor
}

// CreateFieldOverride records a module-level override, at most one per
// (module, field key). Rejected while the module is frozen.
func (s *Service) CreateFieldOverride(ctx context.Context, params FieldOverrideParams) (*workpaper.OverrideRecord, error) {
	if params.FieldKey == "" {
		return nil, workpaper.NewValidationError("field_key", "required")
	}

	if params.Reason == "" {
		return nil, workpaper.NewValidationError("reason", "required for any override")
	}

	if params.Actor.ID == "" {
		return nil, workpaper.NewValidationError("actor", "required")
	}

	m, err := s.repo.GetModule(ctx, params.ModuleID)
	if err != nil {
		return nil, err
	}

	if m.Frozen() {
		return nil, workpaper.NewConflictError("module %s is frozen", m.ID)
	}

	ov := &workpaper.OverrideRecord{
		ModuleID:       params.ModuleID,
		FieldKey:       params.FieldKey,
		OriginalValue:  params.OriginalValue,
		EffectiveValue: params.EffectiveValue,
		Reason:         params.Reason,
		Actor:          params.Actor,
	}

	if err := s.repo.CreateFieldOverride(ctx, ov); err != nil {
		return nil, err
	}

	s.audit.Log(ctx, audit.Entry{
		Action:       audit.ActionOverrideCreate,
		ResourceType: audit.ResourceModule,
		ResourceID:   params.ModuleID.String(),
		Actor:        params.Actor,
		Details: map[string]any{
			"field_key":   params.FieldKey,
			"override_id": ov.ID.String(),
			"reason":      params.Reason,
		},
	})

	return ov, nil
}

func (s *Service) GetFieldOverride(ctx context.Context, moduleID uuid.UUID, fieldKey string) (*workpaper.OverrideRecord, error) {
	return s.repo.GetFieldOverride(ctx, moduleID, fieldKey)
}

func (s *Service) ListFieldOverrides(ctx context.Context, moduleID uuid.UUID) ([]*workpaper.OverrideRecord, error) {
	return s.repo.ListFieldOverrides(ctx, moduleID)
}

func (s *Service) SaveModuleOutput(ctx context.Context, moduleID uuid.UUID, out *workpaper.Result, inputs map[string]any) error {
	return s.repo.SaveModuleOutput(ctx, moduleID, out, inputs)
}
