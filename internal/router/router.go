package router

import (
	"net/http"

	"order-desk/internal/handler"
	"order-desk/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

// New creates the HTTP router with all routes and middleware configured.
func New(
	orderHandler *handler.OrderHandler,
	printHandler *handler.PrintHandler,
	allowedOrigins []string,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CorrelationID)
	r.Use(middleware.Logging(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Correlation-Id"},
		ExposedHeaders:   []string{"X-Correlation-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(middleware.BearerAuth(logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/orders", func(r chi.Router) {
			r.Get("/", orderHandler.List)
			r.Get("/search", orderHandler.Search)
			r.Post("/bulk/status", orderHandler.BulkStatus)
			r.Post("/bulk/delete", orderHandler.BulkDelete)
			r.Post("/selection/toggle", orderHandler.ToggleSelection)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", orderHandler.Get)
				r.Delete("/", orderHandler.Delete)
				r.Post("/status", orderHandler.Transition)
				r.Post("/courier", orderHandler.AssignCourier)
				r.Get("/history", orderHandler.History)
				r.Post("/history", orderHandler.AddNote)
			})
		})

		r.Route("/print", func(r chi.Router) {
			r.Post("/invoice", printHandler.Invoice)
			r.Post("/sticker", printHandler.Sticker)
		})
	})

	return r
}
