package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/comforty/storefront/internal/domain"
)

// ErrorResponse is the JSON error body every endpoint uses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondJSON writes v as a JSON response with the given status.
func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are gone; nothing left to do but note it.
		slog.Error("failed to encode response", "error", err)
	}
}

// RespondError maps a domain error to its HTTP status and writes the
// user-facing message. Internal details stay in the log.
func RespondError(w http.ResponseWriter, logger *slog.Logger, err error) {
	code := domain.ErrorCode(err)
	status := statusForCode(code)

	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "code", code, "error", err)
	} else {
		logger.Info("request rejected", "code", code, "error", err)
	}

	RespondJSON(w, status, ErrorResponse{Error: domain.ErrorMessage(err)})
}

func statusForCode(code string) int {
	switch code {
	case domain.EINVALID:
		return http.StatusBadRequest
	case domain.ENOTFOUND:
		return http.StatusNotFound
	case domain.EPAYMENT:
		return http.StatusBadGateway
	case domain.EUNAVAILABLE:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
