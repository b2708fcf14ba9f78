package freeze

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/FDCTax/fdctax-core-api-sub002/internal/freeze"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/http/actor"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/http/respond"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/workpaper"
)

type Handler struct {
	svc *freeze.Service
	// requireAllCompleted is the default gate for job freezes; requests
	// can override it explicitly.
	requireAllCompleted bool
}

func NewHandler(svc *freeze.Service, requireAllCompleted bool) *Handler {
	return &Handler{svc: svc, requireAllCompleted: requireAllCompleted}
}

func (h *Handler) ModuleRoutes(r chi.Router) {
	r.Post("/{id}/freeze", h.freezeModule)
	r.Post("/{id}/reopen", h.reopenModule)
	r.Get("/{id}/snapshots", h.listModuleSnapshots)
}

func (h *Handler) JobRoutes(r chi.Router) {
	r.Post("/{id}/freeze", h.freezeJob)
	r.Get("/{id}/snapshots", h.listJobSnapshots)
	r.Get("/{id}/snapshots/latest", h.latestSnapshot)
}

func (h *Handler) SnapshotRoutes(r chi.Router) {
	r.Get("/{id}", h.getSnapshot)
}

func (h *Handler) freezeModule(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	snap, err := h.svc.FreezeModule(r.Context(), id, actor.FromContext(r.Context()))
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, snap)
}

type freezeJobRequest struct {
	SnapshotType        workpaper.SnapshotType `json:"snapshot_type"`
	RequireAllCompleted *bool                  `json:"require_all_completed,omitempty"`
}

func (h *Handler) freezeJob(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	var req freezeJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	required := h.requireAllCompleted
	if req.RequireAllCompleted != nil {
		required = *req.RequireAllCompleted
	}

	snap, err := h.svc.FreezeJob(r.Context(), freeze.FreezeJobParams{
		JobID:               id,
		Type:                req.SnapshotType,
		Actor:               actor.FromContext(r.Context()),
		RequireAllCompleted: required,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, snap)
}

type reopenRequest struct {
	Reason string `json:"reason"`
}

func (h *Handler) reopenModule(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	var req reopenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	m, err := h.svc.ReopenModule(r.Context(), id, actor.FromContext(r.Context()), req.Reason)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, m)
}

func (h *Handler) getSnapshot(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	snap, err := h.svc.GetSnapshot(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, snap)
}

func (h *Handler) listJobSnapshots(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	snaps, err := h.svc.ListSnapshotsByJob(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, snaps)
}

func (h *Handler) listModuleSnapshots(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	snaps, err := h.svc.ListSnapshotsByModule(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, snaps)
}

func (h *Handler) latestSnapshot(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	var snapType *workpaper.SnapshotType

	if s := r.URL.Query().Get("type"); s != "" {
		t := workpaper.SnapshotType(s)
		snapType = &t
	}

	snap, err := h.svc.LatestSnapshot(r.Context(), id, snapType)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, snap)
}
