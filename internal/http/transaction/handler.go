package transaction

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/FDCTax/fdctax-core-api-sub002/internal/http/actor"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/http/respond"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/transaction"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/workpaper"
)

type Handler struct {
	svc *transaction.Service
}

func NewHandler(svc *transaction.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Get("/{id}/effective", h.effective)
	r.Post("/{id}/overrides", h.createOverride)
}

type createTransactionRequest struct {
	ClientID   string             `json:"client_id"`
	JobID      *uuid.UUID         `json:"job_id,omitempty"`
	ModuleID   *uuid.UUID         `json:"module_id,omitempty"`
	Source     workpaper.Source   `json:"source,omitempty"`
	Date       time.Time          `json:"date"`
	Amount     decimal.Decimal    `json:"amount"`
	GSTAmount  *decimal.Decimal   `json:"gst_amount,omitempty"`
	Category   workpaper.Category `json:"category,omitempty"`
	Vendor     string             `json:"vendor,omitempty"`
	ReceiptURL string             `json:"receipt_url,omitempty"`
	Reference  string             `json:"reference,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	tx, err := h.svc.Create(r.Context(), transaction.CreateParams{
		ClientID:   req.ClientID,
		JobID:      req.JobID,
		ModuleID:   req.ModuleID,
		Source:     req.Source,
		Date:       req.Date,
		Amount:     req.Amount,
		GSTAmount:  req.GSTAmount,
		Category:   req.Category,
		Vendor:     req.Vendor,
		ReceiptURL: req.ReceiptURL,
		Reference:  req.Reference,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(tx))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := transaction.ListFilter{}

	if s := r.URL.Query().Get("client_id"); s != "" {
		filter.ClientID = &s
	}

	if s := r.URL.Query().Get("job_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			respond.BadRequest(w, "invalid job_id")
			return
		}

		filter.JobID = &id
	}

	if s := r.URL.Query().Get("module_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			respond.BadRequest(w, "invalid module_id")
			return
		}

		filter.ModuleID = &id
	}

	txs, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(txs))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	tx, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(tx))
}

// effective returns the computed view of one transaction within a job.
func (h *Handler) effective(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	jobID, err := uuid.Parse(r.URL.Query().Get("job_id"))
	if err != nil {
		respond.BadRequest(w, "job_id query parameter required")
		return
	}

	eff, err := h.svc.Effective(r.Context(), id, jobID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, eff)
}

type createOverrideRequest struct {
	JobID       uuid.UUID           `json:"job_id"`
	Amount      *decimal.Decimal    `json:"overridden_amount,omitempty"`
	GSTAmount   *decimal.Decimal    `json:"overridden_gst_amount,omitempty"`
	Category    *workpaper.Category `json:"overridden_category,omitempty"`
	BusinessPct *decimal.Decimal    `json:"overridden_business_pct,omitempty"`
	Reason      string              `json:"reason"`
}

func (h *Handler) createOverride(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	var req createOverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	ov, err := h.svc.CreateOverride(r.Context(), transaction.OverrideParams{
		TransactionID: id,
		JobID:         req.JobID,
		Amount:        req.Amount,
		GSTAmount:     req.GSTAmount,
		Category:      req.Category,
		BusinessPct:   req.BusinessPct,
		Reason:        req.Reason,
		Actor:         actor.FromContext(r.Context()),
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toOverrideResponse(ov))
}
