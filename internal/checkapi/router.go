// Package checkapi exposes the address validation HTTP API served by
// mailcheckd: single and batch syntax checks plus service metadata. Checks
// are purely structural; nothing here touches DNS or SMTP.
package checkapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/mailaddr/internal/httpserver"
)

// NewRouter assembles the service routes with the standard middleware chain.
func NewRouter(log *slog.Logger, cfg Config) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	r.Get("/healthz", httpserver.HealthHandler(log))
	r.Route("/v1", func(r chi.Router) {
		r.Post("/validate", handleValidate(log))
		r.Post("/validate/batch", handleValidateBatch(log, cfg.MaxBatchSize))
		r.Get("/about", handleAbout(cfg.Contact))
	})
	return r
}
