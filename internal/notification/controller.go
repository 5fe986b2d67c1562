package notification

import (
	"net/http"
	"strconv"
	"time"

	"belleza/internal/auth"
	"belleza/internal/domain"
	apperrors "belleza/internal/errors"
	"belleza/internal/web"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type NotificationDTO struct {
	ID        int64     `json:"id"`
	ProductID int       `json:"productId"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

type FeedResponse struct {
	Notifications []NotificationDTO `json:"notifications"`
	UnreadCount   int               `json:"unreadCount"`
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

func (c *Controller) HandleList(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		web.WriteError(w, c.logger, apperrors.NewUnauthorizedError("authentication required"))
		return
	}

	feed, err := c.service.ListByUser(r.Context(), claims.UserID)
	if err != nil {
		web.WriteError(w, c.logger, err)
		return
	}

	web.WriteJSON(w, c.logger, http.StatusOK, toFeedResponse(feed))
}

func (c *Controller) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		web.WriteError(w, c.logger, apperrors.NewUnauthorizedError("authentication required"))
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		web.WriteValidationError(w, c.logger, "invalid notification id", apperrors.ValidationDetail{
			Field:   "id",
			Message: "id must be a positive integer",
		})
		return
	}

	if err := c.service.MarkRead(r.Context(), id, claims.UserID); err != nil {
		web.WriteError(w, c.logger, err)
		return
	}

	web.WriteJSON(w, c.logger, http.StatusOK, map[string]string{"message": "notification marked as read"})
}

func (c *Controller) HandleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		web.WriteError(w, c.logger, apperrors.NewUnauthorizedError("authentication required"))
		return
	}

	if err := c.service.MarkAllRead(r.Context(), claims.UserID); err != nil {
		web.WriteError(w, c.logger, err)
		return
	}

	web.WriteJSON(w, c.logger, http.StatusOK, map[string]string{"message": "all notifications marked as read"})
}

func toFeedResponse(feed *Feed) FeedResponse {
	dtos := make([]NotificationDTO, 0, len(feed.Notifications))
	for _, n := range feed.Notifications {
		dtos = append(dtos, toDTO(n))
	}
	return FeedResponse{
		Notifications: dtos,
		UnreadCount:   feed.UnreadCount,
	}
}

func toDTO(n domain.Notification) NotificationDTO {
	return NotificationDTO{
		ID:        n.ID,
		ProductID: n.ProductID,
		Message:   n.Message,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}
