package reservation

import (
	"database/sql"

	productrepo "belleza/internal/product/repository"
	"belleza/internal/reservation/repository"

	"go.uber.org/zap"
)

type Module struct {
	Controller *Controller
	Service    Service
}

func NewModule(db *sql.DB, logger *zap.Logger) *Module {
	repo := repository.NewMySQLRepository(db)
	products := productrepo.NewMySQLRepository(db)
	svc := NewService(repo, products, logger)
	return &Module{
		Controller: NewController(svc, logger),
		Service:    svc,
	}
}
