package product

import (
	"database/sql"

	"belleza/internal/product/repository"

	"go.uber.org/zap"
)

func NewModule(db *sql.DB, reservations ReservationClearer, logger *zap.Logger) *Controller {
	repo := repository.NewMySQLRepository(db)
	svc := NewService(repo, reservations, logger)
	return NewController(svc, logger)
}
