// Package router sets up all HTTP routes and middleware chains for the
// trivia API. Every API route lives under /api with CORS and, when
// configured, per-client rate limiting.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"trivia/internal/apierr"
	"trivia/internal/handlers"
	"trivia/internal/middleware"
)

// Options configures the cross-cutting behavior of the /api group.
type Options struct {
	// CORSOrigins lists the allowed origins; "*" allows any.
	CORSOrigins []string
	// RateLimiter limits requests per client. Nil disables rate limiting.
	RateLimiter *middleware.RateLimiter
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(api *handlers.API, health http.HandlerFunc, opts Options) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		apierr.Write(w, http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		apierr.Write(w, http.StatusMethodNotAllowed)
	})

	r.Get("/health", health)

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   opts.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
		if opts.RateLimiter != nil {
			r.Use(opts.RateLimiter.Middleware)
		}

		r.Get("/categories", api.GetCategories)
		r.Get("/categories/{categoryID:[0-9]+}/questions", api.ListCategoryQuestions)

		r.Route("/questions", func(r chi.Router) {
			r.Get("/", api.ListQuestions)
			r.Post("/", api.CreateQuestion)
			r.Post("/search", api.SearchQuestions)
			r.Delete("/{questionID:[0-9]+}", api.DeleteQuestion)
		})

		r.Post("/quizzes", api.NextQuizQuestion)
	})

	return r
}
