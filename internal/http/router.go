package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/invierteya/funds/internal/http/auth"
	"github.com/invierteya/funds/internal/http/fund"
	"github.com/invierteya/funds/internal/http/health"
	authmw "github.com/invierteya/funds/internal/http/middleware"
	"github.com/invierteya/funds/internal/http/user"
	"github.com/invierteya/funds/internal/metrics"
)

type Options struct {
	AllowedOrigins []string
	// SeedEndpoint exposes POST /init-funds.
	SeedEndpoint bool
}

func New(
	opts Options,
	verifier authmw.Verifier,
	limiter *authmw.RateLimiter,
	healthV1 *health.Handler,
	authV1 *auth.Handler,
	usersV1 *user.Handler,
	fundsV1 *fund.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(metrics.Instrument)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	requireAccount := authmw.RequireAccount(verifier)

	healthV1.Routes(router)
	router.Handle("/metrics", metrics.Handler())

	router.Route("/auth", func(r chi.Router) {
		r.Use(limiter.Handler)
		r.Use(middleware.AllowContentType("application/json"))
		authV1.Routes(r)
	})

	router.Route("/users", func(r chi.Router) {
		r.Use(requireAccount)
		usersV1.Routes(r)
	})

	router.Route("/funds", func(r chi.Router) {
		fundsV1.Routes(r, requireAccount)
	})

	if opts.SeedEndpoint {
		router.Post("/init-funds", fundsV1.Seed)
	}

	return router
}
