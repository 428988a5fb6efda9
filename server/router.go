// Package server assembles the HTTP router and runs the HTTP server.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/MehradEsmaeilZad81/TodoList/apperror"
	"github.com/MehradEsmaeilZad81/TodoList/auth"
	_ "github.com/MehradEsmaeilZad81/TodoList/docs" // registers the Swagger document
	"github.com/MehradEsmaeilZad81/TodoList/logging"
	"github.com/MehradEsmaeilZad81/TodoList/ratelimit"
	"github.com/MehradEsmaeilZad81/TodoList/todos"
)

const (
	requestTimeout = 60 * time.Second
	healthTimeout  = 2 * time.Second
)

// Pinger reports whether the database answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the collaborators the router wires together.
type Deps struct {
	Auth    *auth.Service
	Todos   *todos.Service
	Limiter *ratelimit.Limiter
	DB      Pinger
	Log     logging.Logger

	// GeneralLimit applies to every route, AuthLimit additionally to /auth.
	GeneralLimit ratelimit.Policy
	AuthLimit    ratelimit.Policy
	CORSOrigins  []string
}

// NewRouter builds the application's http.Handler.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	// Sub-routers created below inherit these.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		apperror.WriteError(w, r, apperror.NewNotFoundError("Cannot "+r.Method+" "+r.URL.Path, nil))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		apperror.WriteError(w, r, apperror.NewMethodNotAllowedError("Method Not Allowed"))
	})

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(d.Log))
	r.Use(Recoverer(d.Log))
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: d.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders: []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After"},
		MaxAge:         300,
	}))
	r.Use(d.Limiter.Middleware(d.GeneralLimit))

	r.Get("/health", healthHandler(d.DB))
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/auth", func(r chi.Router) {
		r.Use(d.Limiter.Middleware(d.AuthLimit))
		auth.NewHandlers(d.Auth).RegisterRoutes(r)
	})

	r.Route("/todos", func(r chi.Router) {
		r.Use(auth.JWTMiddleware(d.Auth))
		todos.NewHandler(d.Todos).RegisterRoutes(r)
	})

	return r
}

// HealthResponse is the body of a healthy /health answer.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// healthHandler godoc
// @Summary Health check
// @Description Reports whether the API can reach its database.
// @Tags Health
// @Produce json
// @Success 200 {object} server.HealthResponse
// @Failure 503 {object} apperror.ErrorResponse
// @Router /health [get]
func healthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			apperror.WriteError(w, r, apperror.NewUnavailableError("Database unavailable", err))
			return
		}
		apperror.WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
