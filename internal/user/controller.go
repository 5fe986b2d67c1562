package user

import (
	"encoding/json"
	"net/http"

	apperrors "belleza/internal/errors"
	"belleza/internal/web"

	"go.uber.org/zap"
)

type Controller struct {
	service Service
	logger  *zap.Logger
}

func NewController(service Service, logger *zap.Logger) *Controller {
	return &Controller{
		service: service,
		logger:  logger,
	}
}

func (c *Controller) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.WriteValidationError(w, c.logger, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	resp, err := c.service.Register(r.Context(), req)
	if err != nil {
		web.WriteError(w, c.logger, err)
		return
	}

	web.WriteJSON(w, c.logger, http.StatusCreated, resp)
}

func (c *Controller) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.WriteValidationError(w, c.logger, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	resp, err := c.service.Login(r.Context(), req)
	if err != nil {
		web.WriteError(w, c.logger, err)
		return
	}

	web.WriteJSON(w, c.logger, http.StatusOK, resp)
}
