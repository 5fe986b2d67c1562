package server

import (
	"net/http"
	"time"

	"belleza/internal/auth"
	"belleza/internal/cart"
	"belleza/internal/inventory"
	"belleza/internal/notification"
	"belleza/internal/order"
	"belleza/internal/product"
	"belleza/internal/reservation"
	"belleza/internal/user"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Controllers struct {
	Users         *user.Controller
	Products      *product.Controller
	Carts         *cart.Controller
	Reservations  *reservation.Controller
	Inventory     *inventory.Controller
	Notifications *notification.Controller
	Orders        *order.Controller
}

func NewRouter(ctrls Controllers, authMw *auth.Middleware, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		// Public catalog and account entry points.
		r.Get("/products", ctrls.Products.HandleListActive)
		r.Get("/products/{id}", ctrls.Products.HandleGet)
		r.Post("/users/register", ctrls.Users.HandleRegister)
		r.Post("/users/login", ctrls.Users.HandleLogin)

		// Authenticated customer surface.
		r.Group(func(r chi.Router) {
			r.Use(authMw.RequireUser)

			r.Get("/cart", ctrls.Carts.HandleGet)
			r.Post("/cart/items", ctrls.Carts.HandleAddItem)
			r.Put("/cart/items/{productId}", ctrls.Carts.HandleUpdateQuantity)
			r.Delete("/cart/items/{productId}", ctrls.Carts.HandleRemoveItem)
			r.Delete("/cart", ctrls.Carts.HandleClear)

			r.Post("/reservations", ctrls.Reservations.HandleReserve)
			r.Get("/reservations", ctrls.Reservations.HandleListMine)
			r.Get("/reservations/{productId}", ctrls.Reservations.HandleStatus)
			r.Delete("/reservations/{productId}", ctrls.Reservations.HandleCancel)

			r.Get("/notifications", ctrls.Notifications.HandleList)
			r.Put("/notifications/read", ctrls.Notifications.HandleMarkAllRead)
			r.Put("/notifications/{id}/read", ctrls.Notifications.HandleMarkRead)

			r.Post("/checkout", ctrls.Orders.HandleCheckout)
			r.Get("/orders", ctrls.Orders.HandleListMine)
		})

		// Admin surface.
		r.Group(func(r chi.Router) {
			r.Use(authMw.RequireUser)
			r.Use(authMw.RequireAdmin)

			r.Get("/products/all", ctrls.Products.HandleListAll)
			r.Post("/products", ctrls.Products.HandleCreate)
			r.Put("/products/{id}", ctrls.Products.HandleUpdate)
			r.Put("/products/{id}/status", ctrls.Products.HandleUpdateStatus)
			r.Delete("/products/{id}", ctrls.Products.HandleSoftDelete)
			r.Put("/products/{id}/restore", ctrls.Products.HandleRestore)
			r.Delete("/products/{id}/permanent", ctrls.Products.HandlePermanentDelete)
			r.Put("/products/{id}/stock", ctrls.Inventory.HandleSetStock)
		})
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request completed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("requestId", middleware.GetReqID(r.Context())),
			)
		})
	}
}
