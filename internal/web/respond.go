package web

import (
	"encoding/json"
	"net/http"

	apperrors "belleza/internal/errors"

	"go.uber.org/zap"
)

type errorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details,omitempty"`
}

func WriteJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

func WriteValidationError(w http.ResponseWriter, logger *zap.Logger, message string, details ...apperrors.ValidationDetail) {
	WriteJSON(w, logger, http.StatusBadRequest, errorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

// WriteError maps typed application errors to their HTTP representation.
// Unknown errors become 500 and are logged; their message is not leaked.
func WriteError(w http.ResponseWriter, logger *zap.Logger, err error) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		WriteValidationError(w, logger, ve.Message, ve.Details...)
		return
	}

	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		WriteJSON(w, logger, http.StatusNotFound, errorResponse{Error: "NOT_FOUND", Message: nfe.Message})
		return
	}

	if ue, ok := apperrors.IsUnauthorizedError(err); ok {
		WriteJSON(w, logger, http.StatusUnauthorized, errorResponse{Error: "UNAUTHORIZED", Message: ue.Message})
		return
	}

	if fe, ok := apperrors.IsForbiddenError(err); ok {
		WriteJSON(w, logger, http.StatusForbidden, errorResponse{Error: "FORBIDDEN", Message: fe.Message})
		return
	}

	if ce, ok := apperrors.IsConflictError(err); ok {
		WriteJSON(w, logger, http.StatusConflict, errorResponse{Error: "CONFLICT", Message: ce.Message})
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	WriteJSON(w, logger, http.StatusInternalServerError, errorResponse{
		Error:   "INTERNAL_ERROR",
		Message: "an unexpected error occurred",
	})
}
