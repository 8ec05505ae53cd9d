package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// Media files are served outside the gzip wrapper: http.FileServer sets
	// Content-Length to the on-disk size and answers Range requests, both of
	// which a recompressing writer would falsify.
	router.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.mediaDir))))

	// routes without authorization: login, health, and the public catalog
	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Post("/api/auth/login", h.login)

		r.Get("/", h.health)
		r.Get("/api/products", h.listProducts)
		r.Get("/api/creations", h.listCreations)
		r.Get("/api/tutorials", h.listTutorials)
	})

	// admin routes behind the auth gate
	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Use(h.auth)

		r.Post("/api/products", h.createProduct)
		r.Put("/api/products/{id}", h.updateProduct)
		r.Delete("/api/products/{id}", h.deleteProduct)

		r.Post("/api/creations", h.createCreation)
		r.Put("/api/creations/{id}", h.updateCreation)
		r.Delete("/api/creations/{id}", h.deleteCreation)

		r.Post("/api/tutorials", h.createTutorial)
		r.Put("/api/tutorials/{id}", h.updateTutorial)
		r.Delete("/api/tutorials/{id}", h.deleteTutorial)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
