// Package respond writes JSON responses and maps domain errors to HTTP
// status codes.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/FDCTax/fdctax-core-api-sub002/internal/workpaper"
)

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// Error maps the domain error taxonomy onto status codes: validation 422,
// conflict 409, not found 404, anything else 500.
func Error(w http.ResponseWriter, err error) {
	switch {
	case workpaper.IsValidation(err):
		JSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	case workpaper.IsConflict(err):
		JSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case isNotFound(err):
		JSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		slog.Error("internal error", "error", err)
		JSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func BadRequest(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

func isNotFound(err error) bool {
	for _, sentinel := range []error{
		workpaper.ErrJobNotFound,
		workpaper.ErrModuleNotFound,
		workpaper.ErrTransactionNotFound,
		workpaper.ErrOverrideNotFound,
		workpaper.ErrQueryNotFound,
		workpaper.ErrTaskNotFound,
		workpaper.ErrSnapshotNotFound,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}

	return false
}
