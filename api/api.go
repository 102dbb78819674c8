package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/getgantry/gantry/api/types"
	"github.com/getgantry/gantry/internal/pkg/metrics"
)

type ApplicationHandler struct {
	Router http.Handler
	A      *types.APIOptions
}

func NewApplicationHandler(a *types.APIOptions) (*ApplicationHandler, error) {
	return &ApplicationHandler{A: a}, nil
}

func (a *ApplicationHandler) BuildRoutes() *chi.Mux {
	router := chi.NewMux()

	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.Recoverer)

	// Ingestion API.
	router.Route("/ingest", func(ingestRouter chi.Router) {
		ingestRouter.Post("/github", a.IngestEvent)
	})

	// Management API.
	router.Route("/api", func(apiRouter chi.Router) {
		apiRouter.Route("/v1", func(v1Router chi.Router) {
			v1Router.Route("/webhooks", func(webhookRouter chi.Router) {
				webhookRouter.Post("/", a.RegisterWebhook)
				webhookRouter.Get("/", a.ListWebhookRegistrations)
				webhookRouter.Delete("/{webhookID}", a.DeactivateWebhookRegistration)
			})
		})
	})

	router.Handle("/metrics", metrics.Handler())
	router.Get("/health", a.HealthCheck)

	a.Router = router

	return router
}

func (a *ApplicationHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
