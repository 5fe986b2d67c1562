package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"belleza/internal/domain"

	"go.uber.org/zap"
)

type contextKey string

const claimsKey contextKey = "authClaims"

// ClaimsFromContext returns the authenticated user's claims, if any.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*Claims)
	return claims, ok
}

type Middleware struct {
	jwtManager *JWTManager
	logger     *zap.Logger
}

func NewMiddleware(jwtManager *JWTManager, logger *zap.Logger) *Middleware {
	return &Middleware{
		jwtManager: jwtManager,
		logger:     logger,
	}
}

// RequireUser rejects requests without a valid Bearer token and stores
// the claims in the request context.
func (m *Middleware) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			m.writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing bearer token")
			return
		}

		claims, err := m.jwtManager.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			m.logger.Warn("token rejected", zap.Error(err))
			m.writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin must be mounted inside RequireUser.
func (m *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			m.writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing bearer token")
			return
		}

		if claims.Role != domain.RoleAdmin {
			m.writeError(w, http.StatusForbidden, "FORBIDDEN", "admin access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"error":   code,
		"message": message,
	}); err != nil {
		m.logger.Error("failed to encode response", zap.Error(err))
	}
}
