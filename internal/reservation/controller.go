package reservation

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"belleza/internal/auth"
	apperrors "belleza/internal/errors"
	"belleza/internal/web"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReserveRequest struct {
	ProductID int `json:"productId"`
}

type ReservationDTO struct {
	ProductID int       `json:"productId"`
	UserID    int       `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

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

func (c *Controller) HandleReserve(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		web.WriteError(w, c.logger, apperrors.NewUnauthorizedError("authentication required"))
		return
	}

	var req ReserveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.WriteValidationError(w, c.logger, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if req.ProductID <= 0 {
		web.WriteValidationError(w, c.logger, "invalid productId", apperrors.ValidationDetail{
			Field:   "productId",
			Message: "productId must be a positive integer",
		})
		return
	}

	if err := c.service.Reserve(r.Context(), req.ProductID, claims.UserID); err != nil {
		web.WriteError(w, c.logger, err)
		return
	}

	web.WriteJSON(w, c.logger, http.StatusCreated, map[string]string{"message": "reservation registered"})
}

func (c *Controller) HandleListMine(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		web.WriteError(w, c.logger, apperrors.NewUnauthorizedError("authentication required"))
		return
	}

	reservations, err := c.service.ListByUser(r.Context(), claims.UserID)
	if err != nil {
		web.WriteError(w, c.logger, err)
		return
	}

	dtos := make([]ReservationDTO, 0, len(reservations))
	for _, res := range reservations {
		dtos = append(dtos, ReservationDTO{
			ProductID: res.ProductID,
			UserID:    res.UserID,
			CreatedAt: res.CreatedAt,
		})
	}

	web.WriteJSON(w, c.logger, http.StatusOK, dtos)
}

func (c *Controller) HandleStatus(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		web.WriteError(w, c.logger, apperrors.NewUnauthorizedError("authentication required"))
		return
	}

	productID, ok := c.productID(w, r)
	if !ok {
		return
	}

	reserved, err := c.service.HasReserved(r.Context(), productID, claims.UserID)
	if err != nil {
		web.WriteError(w, c.logger, err)
		return
	}

	web.WriteJSON(w, c.logger, http.StatusOK, map[string]bool{"reserved": reserved})
}

func (c *Controller) HandleCancel(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		web.WriteError(w, c.logger, apperrors.NewUnauthorizedError("authentication required"))
		return
	}

	productID, ok := c.productID(w, r)
	if !ok {
		return
	}

	if err := c.service.Cancel(r.Context(), productID, claims.UserID); err != nil {
		web.WriteError(w, c.logger, err)
		return
	}

	web.WriteJSON(w, c.logger, http.StatusOK, map[string]string{"message": "reservation canceled"})
}

func (c *Controller) productID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "productId"))
	if err != nil || id <= 0 {
		web.WriteValidationError(w, c.logger, "invalid product id", apperrors.ValidationDetail{
			Field:   "productId",
			Message: "productId must be a positive integer",
		})
		return 0, false
	}
	return id, true
}
