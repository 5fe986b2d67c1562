package order

import (
	"database/sql"

	"belleza/internal/config"
	"belleza/internal/order/repository"

	"go.uber.org/zap"
)

type Module struct {
	Controller *Controller
}

func NewModule(db *sql.DB, carts CartAccess, cfg config.CheckoutConfig, logger *zap.Logger) *Module {
	repo := repository.NewMySQLRepository(db)
	svc := NewService(db, repo, carts, cfg, logger)
	return &Module{
		Controller: NewController(svc, logger),
	}
}
