package query

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/FDCTax/fdctax-core-api-sub002/internal/http/actor"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/http/respond"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/query"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/workpaper"
)

type Handler struct {
	svc *query.Service
}

func NewHandler(svc *query.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Post("/send", h.sendBulk)
	r.Get("/{id}", h.get)
	r.Post("/{id}/send", h.send)
	r.Get("/{id}/messages", h.messages)
	r.Post("/{id}/messages", h.addMessage)
	r.Post("/{id}/respond", h.clientRespond)
	r.Post("/{id}/resolve", h.resolve)
	r.Post("/{id}/close", h.close)
}

func (h *Handler) JobRoutes(r chi.Router) {
	r.Get("/{id}/queries", h.listByJob)
	r.Get("/{id}/queries/summary", h.jobSummary)
}

func (h *Handler) TaskRoutes(r chi.Router) {
	r.Get("/", h.getTask)
}

type createRequest struct {
	ClientID       string              `json:"client_id"`
	JobID          uuid.UUID           `json:"job_id"`
	ModuleID       *uuid.UUID          `json:"module_id,omitempty"`
	TransactionID  *uuid.UUID          `json:"transaction_id,omitempty"`
	Title          string              `json:"title"`
	Type           workpaper.QueryType `json:"query_type,omitempty"`
	RequestConfig  map[string]any      `json:"request_config,omitempty"`
	InitialMessage string              `json:"initial_message,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	q, err := h.svc.Create(r.Context(), query.CreateParams{
		ClientID:       req.ClientID,
		JobID:          req.JobID,
		ModuleID:       req.ModuleID,
		TransactionID:  req.TransactionID,
		Title:          req.Title,
		Type:           req.Type,
		RequestConfig:  req.RequestConfig,
		InitialMessage: req.InitialMessage,
		Actor:          actor.FromContext(r.Context()),
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, q)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	q, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, q)
}

type sendRequest struct {
	Message string `json:"message,omitempty"`
}

func (h *Handler) send(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	var req sendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	q, err := h.svc.Send(r.Context(), id, req.Message, actor.FromContext(r.Context()))
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, q)
}

type sendBulkRequest struct {
	QueryIDs []uuid.UUID `json:"query_ids"`
}

func (h *Handler) sendBulk(w http.ResponseWriter, r *http.Request) {
	var req sendBulkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	sent := h.svc.SendBulk(r.Context(), req.QueryIDs, actor.FromContext(r.Context()))

	respond.JSON(w, http.StatusOK, map[string]any{
		"sent":    len(sent),
		"queries": sent,
	})
}

func (h *Handler) messages(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	msgs, err := h.svc.Messages(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, msgs)
}

type addMessageRequest struct {
	Sender         workpaper.Sender `json:"sender"`
	Text           string           `json:"text"`
	AttachmentURL  string           `json:"attachment_url,omitempty"`
	AttachmentName string           `json:"attachment_name,omitempty"`
}

func (h *Handler) addMessage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	var req addMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	a := actor.FromContext(r.Context())

	sender := req.Sender
	if sender == "" {
		sender = workpaper.SenderAdmin
	}

	msg, err := h.svc.AddMessage(r.Context(), id, query.MessageParams{
		Sender:         sender,
		SenderID:       a.ID,
		SenderEmail:    a.Email,
		Text:           req.Text,
		AttachmentURL:  req.AttachmentURL,
		AttachmentName: req.AttachmentName,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, msg)
}

type respondRequest struct {
	Text          string         `json:"text,omitempty"`
	ResponseData  map[string]any `json:"response_data,omitempty"`
	AttachmentURL string         `json:"attachment_url,omitempty"`
}

// clientRespond records a structured client response. The actor headers
// carry the client identity on this route.
func (h *Handler) clientRespond(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	var req respondRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	a := actor.FromContext(r.Context())

	q, err := h.svc.ClientRespond(r.Context(), id, query.RespondParams{
		ClientID:      a.ID,
		ClientEmail:   a.Email,
		Text:          req.Text,
		ResponseData:  req.ResponseData,
		AttachmentURL: req.AttachmentURL,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, q)
}

type resolveRequest struct {
	Message string `json:"message,omitempty"`
}

func (h *Handler) resolve(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	q, err := h.svc.Resolve(r.Context(), id, req.Message, actor.FromContext(r.Context()))
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, q)
}

func (h *Handler) close(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	q, err := h.svc.Close(r.Context(), id, actor.FromContext(r.Context()))
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, q)
}

func (h *Handler) listByJob(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	var (
		queries []*workpaper.Query
	)

	if r.URL.Query().Get("open") == "true" {
		queries, err = h.svc.ListOpen(r.Context(), id)
	} else {
		queries, err = h.svc.ListByJob(r.Context(), id)
	}

	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, queries)
}

func (h *Handler) jobSummary(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	sum, err := h.svc.JobSummary(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, sum)
}

func (h *Handler) getTask(w http.ResponseWriter, r *http.Request) {
	clientID := r.URL.Query().Get("client_id")
	if clientID == "" {
		respond.BadRequest(w, "client_id query parameter required")
		return
	}

	jobID, err := uuid.Parse(r.URL.Query().Get("job_id"))
	if err != nil {
		respond.BadRequest(w, "job_id query parameter required")
		return
	}

	task, err := h.svc.GetQueriesTask(r.Context(), clientID, jobID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, task)
}
