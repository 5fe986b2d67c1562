package inventory

import (
	"encoding/json"
	"net/http"
	"strconv"

	apperrors "belleza/internal/errors"
	"belleza/internal/web"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SetStockRequest struct {
	Stock int `json:"stock"`
}

type SetStockResponse struct {
	TraceID       string `json:"traceId"`
	ProductID     int    `json:"productId"`
	PreviousStock int    `json:"previousStock"`
	Stock         int    `json:"stock"`
	NotifiedUsers int    `json:"notifiedUsers"`
}

type Controller struct {
	ledger Ledger
	logger *zap.Logger
}

func NewController(ledger Ledger, logger *zap.Logger) *Controller {
	return &Controller{
		ledger: ledger,
		logger: logger,
	}
}

func (c *Controller) HandleSetStock(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	productID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || productID <= 0 {
		web.WriteValidationError(w, logger, "invalid product id", apperrors.ValidationDetail{
			Field:   "id",
			Message: "id must be a positive integer",
		})
		return
	}

	var req SetStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.WriteValidationError(w, logger, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	// The stock value itself is never invalid; negative input is clamped
	// by the ledger.
	update, err := c.ledger.SetStock(r.Context(), productID, req.Stock)
	if err != nil {
		web.WriteError(w, logger, err)
		return
	}

	web.WriteJSON(w, logger, http.StatusOK, SetStockResponse{
		TraceID:       traceID,
		ProductID:     update.ProductID,
		PreviousStock: update.PreviousStock,
		Stock:         update.Stock,
		NotifiedUsers: len(update.NotifiedUserIDs),
	})
}
