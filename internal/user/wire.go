package user

import (
	"database/sql"

	"belleza/internal/auth"
	"belleza/internal/user/repository"

	"go.uber.org/zap"
)

func NewModule(db *sql.DB, jwtManager *auth.JWTManager, logger *zap.Logger) *Controller {
	repo := repository.NewMySQLRepository(db)
	svc := NewService(repo, jwtManager, logger)
	return NewController(svc, logger)
}
