package inventory

import (
	"database/sql"

	"belleza/internal/inventory/store"

	"go.uber.org/zap"
)

func NewModule(db *sql.DB, events EventPublisher, logger *zap.Logger) *Controller {
	svc := NewService(store.NewMySQLStore(db), events, logger)
	return NewController(svc, logger)
}
