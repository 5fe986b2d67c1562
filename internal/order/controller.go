package order

import (
	"encoding/json"
	"net/http"

	"belleza/internal/auth"
	"belleza/internal/domain"
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

func (c *Controller) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		web.WriteError(w, c.logger, apperrors.NewUnauthorizedError("authentication required"))
		return
	}

	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.WriteValidationError(w, c.logger, "invalid request body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	resp, err := c.service.Checkout(r.Context(), claims.UserID, req)
	if err != nil {
		web.WriteError(w, c.logger, err)
		return
	}

	web.WriteJSON(w, c.logger, http.StatusCreated, resp)
}

func (c *Controller) HandleListMine(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		web.WriteError(w, c.logger, apperrors.NewUnauthorizedError("authentication required"))
		return
	}

	orders, err := c.service.ListByUser(r.Context(), claims.UserID)
	if err != nil {
		web.WriteError(w, c.logger, err)
		return
	}

	web.WriteJSON(w, c.logger, http.StatusOK, toOrderDTOs(orders))
}

func toOrderDTOs(orders []domain.Order) []OrderDTO {
	dtos := make([]OrderDTO, 0, len(orders))
	for _, o := range orders {
		dtos = append(dtos, toOrderDTO(o))
	}
	return dtos
}

func toOrderDTO(o domain.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemDTO{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	return OrderDTO{
		ID:         o.ID,
		FirstName:  o.FirstName,
		LastName:   o.LastName,
		Phone:      o.Phone,
		Address:    o.Address,
		Status:     o.Status,
		TotalPrice: o.TotalPrice,
		Items:      items,
		CreatedAt:  o.CreatedAt,
	}
}
