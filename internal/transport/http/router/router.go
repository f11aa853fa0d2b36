package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/developerUmair/ecommerce-backend/internal/config"
	"github.com/developerUmair/ecommerce-backend/internal/metrics"
	"github.com/developerUmair/ecommerce-backend/internal/transport/http/handlers"
	appmw "github.com/developerUmair/ecommerce-backend/internal/transport/http/middleware"
)

func New(
	authH *handlers.AuthHandler,
	categoriesH *handlers.CategoriesHandler,
	productsH *handlers.ProductsHandler,
	healthH *handlers.HealthHandler,
	auth *appmw.AuthMiddleware,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	r.Use(appmw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(appmw.AccessLog)

	if cfg.RLEnabled {
		r.Use(httprate.LimitByIP(cfg.RLLimit, cfg.RLWindow))
	}

	r.Get("/healthz", healthH.Healthz)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authH.Register)
			r.Post("/login", authH.Login)

			r.Group(func(r chi.Router) {
				r.Use(auth.Require)
				r.Get("/me", authH.Me)
			})
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", categoriesH.List)
			r.Get("/{id}", categoriesH.Get)

			r.Group(func(r chi.Router) {
				r.Use(auth.Require, auth.RequireAdmin)
				r.Post("/add", categoriesH.Create)
				r.Patch("/{id}", categoriesH.Update)
			})
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/getAll", productsH.List)
			r.Get("/category/{categoryId}", productsH.ListByCategory)
			r.Get("/{id}", productsH.Get)

			r.Group(func(r chi.Router) {
				r.Use(auth.Require, auth.RequireAdmin)
				r.Post("/add", productsH.Create)
				r.Patch("/{id}", productsH.Update)
				r.Delete("/{id}", productsH.Delete)
			})
		})
	})

	return r
}
