package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"food-ordering/internal/domain"
)

// ErrorResponse is the error payload for every failing request.
type ErrorResponse struct {
	Detail    string `json:"detail"`
	ErrorCode string `json:"error_code,omitempty"`
}

const (
	codeValidation        = "VALIDATION_ERROR"
	codeNotFound          = "NOT_FOUND"
	codeItemUnavailable   = "ITEM_UNAVAILABLE"
	codeInvalidTransition = "INVALID_TRANSITION"
	codeInternal          = "INTERNAL_ERROR"
)

// mapError translates a service-level failure into an HTTP status
// and a stable error code: validation failures are client-input
// errors (422), absent resources 404, and failed preconditions
// (unavailable item, forbidden transition) 400.
func mapError(err error) (int, string) {
	var vErr domain.ValidationError

	switch {
	case errors.As(err, &vErr):
		return http.StatusUnprocessableEntity, codeValidation
	case errors.Is(err, domain.ErrMenuItemNotFound), errors.Is(err, domain.ErrOrderNotFound):
		return http.StatusNotFound, codeNotFound
	case errors.Is(err, domain.ErrItemUnavailable):
		return http.StatusBadRequest, codeItemUnavailable
	case errors.Is(err, domain.ErrInvalidStatusTransition):
		return http.StatusBadRequest, codeInvalidTransition
	default:
		return http.StatusInternalServerError, codeInternal
	}
}

func respondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err error) {
	statusCode, errorCode := mapError(err)
	respondJSON(w, statusCode, ErrorResponse{
		Detail:    err.Error(),
		ErrorCode: errorCode,
	})
}

func respondErrorMessage(w http.ResponseWriter, statusCode int, errorCode, detail string) {
	respondJSON(w, statusCode, ErrorResponse{
		Detail:    detail,
		ErrorCode: errorCode,
	})
}
