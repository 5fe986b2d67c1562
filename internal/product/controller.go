package product

import (
	"encoding/json"
	"net/http"
	"strconv"

	apperrors "belleza/internal/errors"
	"belleza/internal/web"

	"github.com/go-chi/chi/v5"
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

func (c *Controller) HandleListActive(w http.ResponseWriter, r *http.Request) {
	products, err := c.service.ListActive(r.Context())
	if err != nil {
		web.WriteError(w, c.logger, err)
		return
	}
	web.WriteJSON(w, c.logger, http.StatusOK, toDTOs(products))
}

func (c *Controller) HandleListAll(w http.ResponseWriter, r *http.Request) {
	products, err := c.service.ListAll(r.Context())
	if err != nil {
		web.WriteError(w, c.logger, err)
		return
	}
	web.WriteJSON(w, c.logger, http.StatusOK, toDTOs(products))
}

func (c *Controller) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := c.productID(w, r)
	if !ok {
		return
	}

	p, err := c.service.GetByID(r.Context(), id, false)
	if err != nil {
		web.WriteError(w, c.logger, err)
		return
	}
	web.WriteJSON(w, c.logger, http.StatusOK, toDTO(*p))
}

func (c *Controller) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.invalidBody(w)
		return
	}

	p, err := c.service.Create(r.Context(), req)
	if err != nil {
		web.WriteError(w, c.logger, err)
		return
	}
	web.WriteJSON(w, c.logger, http.StatusCreated, toDTO(*p))
}

func (c *Controller) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := c.productID(w, r)
	if !ok {
		return
	}

	var req UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.invalidBody(w)
		return
	}

	p, err := c.service.Update(r.Context(), id, req)
	if err != nil {
		web.WriteError(w, c.logger, err)
		return
	}
	web.WriteJSON(w, c.logger, http.StatusOK, toDTO(*p))
}

func (c *Controller) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := c.productID(w, r)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.invalidBody(w)
		return
	}

	if err := c.service.UpdateStatus(r.Context(), id, req.Status); err != nil {
		web.WriteError(w, c.logger, err)
		return
	}
	web.WriteJSON(w, c.logger, http.StatusOK, map[string]string{"message": "product status updated"})
}

func (c *Controller) HandleSoftDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := c.productID(w, r)
	if !ok {
		return
	}

	if err := c.service.SoftDelete(r.Context(), id); err != nil {
		web.WriteError(w, c.logger, err)
		return
	}
	web.WriteJSON(w, c.logger, http.StatusOK, map[string]string{"message": "product soft deleted"})
}

func (c *Controller) HandleRestore(w http.ResponseWriter, r *http.Request) {
	id, ok := c.productID(w, r)
	if !ok {
		return
	}

	if err := c.service.Restore(r.Context(), id); err != nil {
		web.WriteError(w, c.logger, err)
		return
	}
	web.WriteJSON(w, c.logger, http.StatusOK, map[string]string{"message": "product restored"})
}

func (c *Controller) HandlePermanentDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := c.productID(w, r)
	if !ok {
		return
	}

	if err := c.service.PermanentDelete(r.Context(), id); err != nil {
		web.WriteError(w, c.logger, err)
		return
	}
	web.WriteJSON(w, c.logger, http.StatusOK, map[string]string{"message": "product permanently deleted"})
}

func (c *Controller) productID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		web.WriteValidationError(w, c.logger, "invalid product id", apperrors.ValidationDetail{
			Field:   "id",
			Message: "id must be a positive integer",
		})
		return 0, false
	}
	return id, true
}

func (c *Controller) invalidBody(w http.ResponseWriter) {
	web.WriteValidationError(w, c.logger, "invalid JSON body", apperrors.ValidationDetail{
		Field:   "body",
		Message: "request body must be valid JSON",
	})
}
