package export

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/FDCTax/fdctax-core-api-sub002/internal/export"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/http/respond"
)

type Handler struct {
	svc *export.Service
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/jobs/{id}", h.bundle)
	r.Get("/jobs/{id}/transactions.csv", h.effectiveCSV)
	r.Get("/jobs/{id}/download", h.download)
}

func (h *Handler) bundle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	b, err := h.svc.BuildBundle(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, b)
}

func (h *Handler) effectiveCSV(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"transactions_%s.csv\"", id))

	if err := h.svc.WriteEffectiveCSV(r.Context(), w, id); err != nil {
		slog.Error("failed to write effective csv", "job_id", id, "error", err)
	}
}

// download streams a zip with the bundle JSON and the effective
// transaction CSV.
func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	b, err := h.svc.BuildBundle(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"workpaper_%s_%s.zip\"", id, time.Now().Format("20060102")))

	zw := zip.NewWriter(w)
	defer zw.Close()

	jf, err := zw.Create("bundle.json")
	if err != nil {
		slog.Error("failed to create zip entry", "error", err)
		return
	}

	if err := json.NewEncoder(jf).Encode(b); err != nil {
		slog.Error("failed to encode bundle", "error", err)
		return
	}

	cf, err := zw.Create("transactions.csv")
	if err != nil {
		slog.Error("failed to create zip entry", "error", err)
		return
	}

	if err := h.svc.WriteEffectiveCSV(r.Context(), cf, id); err != nil {
		slog.Error("failed to write effective csv", "job_id", id, "error", err)
	}
}
