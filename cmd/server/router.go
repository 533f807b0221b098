package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/phrazzld/contentgen-api/internal/api"
	apiMiddleware "github.com/phrazzld/contentgen-api/internal/api/middleware"
	"github.com/phrazzld/contentgen-api/internal/api/shared"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.Server.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{shared.TraceIDHeader},
		MaxAge:         300,
	}))
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.NewRecoverer(api.GenerateFailureMessage))

	contentHandler := api.NewContentHandler(app.contentService, app.logger)

	r.Get("/", api.Status)

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate-content", contentHandler.GenerateContent)
	})

	return r
}
