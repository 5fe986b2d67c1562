package cart

import (
	"database/sql"

	cartstore "belleza/internal/cart/store"
	productrepo "belleza/internal/product/repository"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Module struct {
	Controller *Controller
	Service    Service
}

func NewModule(db *sql.DB, client *redis.Client, logger *zap.Logger) *Module {
	store := cartstore.NewRedisStore(client)
	products := productrepo.NewMySQLRepository(db)
	svc := NewService(store, products, logger)
	return &Module{
		Controller: NewController(svc, logger),
		Service:    svc,
	}
}
