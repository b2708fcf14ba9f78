package job

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/FDCTax/fdctax-core-api-sub002/internal/calc"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/http/actor"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/http/respond"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/job"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/workpaper"
)

type Handler struct {
	jobs *job.Service
	calc *calc.Service
}

func NewHandler(jobs *job.Service, calculator *calc.Service) *Handler {
	return &Handler{jobs: jobs, calc: calculator}
}

func (h *Handler) JobRoutes(r chi.Router) {
	r.Post("/", h.createJob)
	r.Get("/", h.listJobs)
	r.Get("/{id}", h.getJob)
	r.Patch("/{id}/notes", h.updateNotes)
	r.Get("/{id}/dashboard", h.dashboard)
	r.Post("/{id}/modules", h.createModule)
	r.Post("/{id}/calculate", h.calculateAll)
}

func (h *Handler) ModuleRoutes(r chi.Router) {
	r.Get("/{id}", h.moduleDetail)
	r.Patch("/{id}", h.updateModule)
	r.Get("/{id}/overrides", h.listFieldOverrides)
	r.Post("/{id}/overrides", h.createFieldOverride)
	r.Post("/{id}/calculate", h.calculateModule)
}

type createJobRequest struct {
	ClientID          string `json:"client_id"`
	Year              string `json:"year"`
	Notes             string `json:"notes,omitempty"`
	AutoCreateModules bool   `json:"auto_create_modules"`
}

func (h *Handler) createJob(w http.ResponseWriter, r *http.Request) {
	var req createJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	j, err := h.jobs.CreateJob(r.Context(), job.CreateJobParams{
		ClientID:          req.ClientID,
		Year:              req.Year,
		Notes:             req.Notes,
		AutoCreateModules: req.AutoCreateModules,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, j)
}

func (h *Handler) listJobs(w http.ResponseWriter, r *http.Request) {
	clientID := r.URL.Query().Get("client_id")
	if clientID == "" {
		respond.BadRequest(w, "client_id query parameter required")
		return
	}

	if year := r.URL.Query().Get("year"); year != "" {
		j, err := h.jobs.GetJobByClientYear(r.Context(), clientID, year)
		if err != nil {
			respond.Error(w, err)
			return
		}

		respond.JSON(w, http.StatusOK, []*workpaper.Job{j})

		return
	}

	jobs, err := h.jobs.ListJobsByClient(r.Context(), clientID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, jobs)
}

func (h *Handler) getJob(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	j, err := h.jobs.GetJob(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, j)
}

type updateNotesRequest struct {
	Notes string `json:"notes"`
}

func (h *Handler) updateNotes(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	var req updateNotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	j, err := h.jobs.UpdateJobNotes(r.Context(), id, req.Notes)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, j)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	d, err := h.jobs.Dashboard(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, d)
}

type createModuleRequest struct {
	Type   workpaper.ModuleType `json:"module_type"`
	Label  string               `json:"label"`
	Config workpaper.Config     `json:"config"`
}

func (h *Handler) createModule(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	var req createModuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	m, err := h.jobs.CreateModule(r.Context(), job.CreateModuleParams{
		JobID:  jobID,
		Type:   req.Type,
		Label:  req.Label,
		Config: req.Config,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, m)
}

func (h *Handler) moduleDetail(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	d, err := h.jobs.ModuleDetail(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, d)
}

type updateModuleRequest struct {
	Label  *string           `json:"label,omitempty"`
	Config *workpaper.Config `json:"config,omitempty"`
	Status *workpaper.Status `json:"status,omitempty"`
}

func (h *Handler) updateModule(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	var req updateModuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	m, err := h.jobs.UpdateModule(r.Context(), id, job.UpdateModuleParams{
		Label:  req.Label,
		Config: req.Config,
		Status: req.Status,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, m)
}

type createFieldOverrideRequest struct {
	FieldKey       string `json:"field_key"`
	OriginalValue  any    `json:"original_value,omitempty"`
	EffectiveValue any    `json:"effective_value"`
	Reason         string `json:"reason"`
}

func (h *Handler) createFieldOverride(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	var req createFieldOverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	ov, err := h.jobs.CreateFieldOverride(r.Context(), job.FieldOverrideParams{
		ModuleID:       id,
		FieldKey:       req.FieldKey,
		OriginalValue:  req.OriginalValue,
		EffectiveValue: req.EffectiveValue,
		Reason:         req.Reason,
		Actor:          actor.FromContext(r.Context()),
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, ov)
}

func (h *Handler) listFieldOverrides(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	overrides, err := h.jobs.ListFieldOverrides(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, overrides)
}

func (h *Handler) calculateModule(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	result, err := h.calc.CalculateModule(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, result)
}

type batchResultResponse struct {
	Results map[string]*workpaper.Result `json:"results"`
	Errors  map[string]string            `json:"errors,omitempty"`
}

// calculateAll runs the whole job. Per-module failures come back in their
// own slot, never as a failed request.
func (h *Handler) calculateAll(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	results, err := h.calc.CalculateAll(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	resp := batchResultResponse{Results: make(map[string]*workpaper.Result, len(results))}

	for moduleID, res := range results {
		if res.Err != nil {
			if resp.Errors == nil {
				resp.Errors = make(map[string]string)
			}

			resp.Errors[moduleID.String()] = res.Err.Error()

			continue
		}

		resp.Results[moduleID.String()] = res.Result
	}

	respond.JSON(w, http.StatusOK, resp)
}
