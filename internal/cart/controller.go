package cart

import (
	"encoding/json"
	"net/http"
	"strconv"

	"belleza/internal/auth"
	"belleza/internal/domain"
	apperrors "belleza/internal/errors"
	"belleza/internal/web"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AddItemRequest struct {
	ProductID int `json:"productId"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type CartLineDTO struct {
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"imageUrl"`
	Quantity  int     `json:"quantity"`
	Stock     int     `json:"stock"`
	LineTotal float64 `json:"lineTotal"`
}

type CartResponse struct {
	Lines     []CartLineDTO `json:"lines"`
	Total     float64       `json:"total"`
	ItemCount int           `json:"itemCount"`
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

func (c *Controller) HandleGet(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		web.WriteError(w, c.logger, apperrors.NewUnauthorizedError("authentication required"))
		return
	}

	userCart, err := c.service.Get(r.Context(), claims.UserID)
	if err != nil {
		web.WriteError(w, c.logger, err)
		return
	}

	web.WriteJSON(w, c.logger, http.StatusOK, toCartResponse(userCart))
}

func (c *Controller) HandleAddItem(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		web.WriteError(w, c.logger, apperrors.NewUnauthorizedError("authentication required"))
		return
	}

	var req AddItemRequest
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

	if err := c.service.AddItem(r.Context(), claims.UserID, req.ProductID); err != nil {
		web.WriteError(w, c.logger, err)
		return
	}

	web.WriteJSON(w, c.logger, http.StatusOK, map[string]string{"message": "item added to cart"})
}

func (c *Controller) HandleUpdateQuantity(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		web.WriteError(w, c.logger, apperrors.NewUnauthorizedError("authentication required"))
		return
	}

	productID, ok := c.productID(w, r)
	if !ok {
		return
	}

	var req UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.WriteValidationError(w, c.logger, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := c.service.UpdateQuantity(r.Context(), claims.UserID, productID, req.Quantity); err != nil {
		web.WriteError(w, c.logger, err)
		return
	}

	web.WriteJSON(w, c.logger, http.StatusOK, map[string]string{"message": "cart updated"})
}

func (c *Controller) HandleRemoveItem(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		web.WriteError(w, c.logger, apperrors.NewUnauthorizedError("authentication required"))
		return
	}

	productID, ok := c.productID(w, r)
	if !ok {
		return
	}

	if err := c.service.RemoveItem(r.Context(), claims.UserID, productID); err != nil {
		web.WriteError(w, c.logger, err)
		return
	}

	web.WriteJSON(w, c.logger, http.StatusOK, map[string]string{"message": "item removed from cart"})
}

func (c *Controller) HandleClear(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		web.WriteError(w, c.logger, apperrors.NewUnauthorizedError("authentication required"))
		return
	}

	if err := c.service.Clear(r.Context(), claims.UserID); err != nil {
		web.WriteError(w, c.logger, err)
		return
	}

	web.WriteJSON(w, c.logger, http.StatusOK, map[string]string{"message": "cart cleared"})
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

func toCartResponse(userCart *domain.Cart) CartResponse {
	lines := make([]CartLineDTO, 0, len(userCart.Lines))
	for _, l := range userCart.Lines {
		lines = append(lines, CartLineDTO{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     l.Price,
			ImageURL:  l.ImageURL,
			Quantity:  l.Quantity,
			Stock:     l.Stock,
			LineTotal: l.LineTotal(),
		})
	}
	return CartResponse{
		Lines:     lines,
		Total:     userCart.Total(),
		ItemCount: userCart.ItemCount(),
	}
}
