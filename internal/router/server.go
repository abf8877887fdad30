package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/damian3262-dot/device-repair-hub/internal/auth"
	"github.com/damian3262-dot/device-repair-hub/internal/config"
	"github.com/damian3262-dot/device-repair-hub/internal/handlers"
)

const (
	compressLevel = 5
)

type Middleware interface {
	Handle(h http.Handler) http.Handler
}

type Router struct {
	address string
	router  *chi.Mux
}

func NewRouter(conf *config.ServerConfig, h *handlers.HandlerSet, middlewares ...Middleware) *Router {

	r := chi.NewRouter()

	for _, m := range middlewares {
		r.Use(m.Handle)
	}
	r.Use(chimiddleware.Compress(compressLevel))

	authMiddleware := &auth.AuthenticateMiddleware{Secret: conf.Secret}

	r.Route("/api", func(r chi.Router) {

		r.Post("/auth/login", h.HandleLogin)
		r.Post("/auth/logout", h.HandleLogout)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Handle)

			r.Get("/auth/me", h.HandleMe)

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", h.HandleGetOrders)
				r.Post("/", h.HandleCreateOrder)
				r.Get("/stats", h.HandleGetStats)
				r.Get("/dni/{dni}", h.HandleGetOrdersByDni)
				r.Get("/{id}", h.HandleGetOrder)
				r.Patch("/{id}", h.HandleUpdateOrder)
				r.Delete("/{id}", h.HandleDeleteOrder)
			})
		})
	})

	return &Router{router: r, address: conf.RunAddress}
}

func (r *Router) Handler() http.Handler {
	return r.router
}

func (r *Router) ListenAndServe() error {
	err := http.ListenAndServe(r.address, r.router)
	return err
}
