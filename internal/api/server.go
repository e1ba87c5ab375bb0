// Palate - Cuisine Exploration Analytics Engine
// Copyright 2026 Kedar Bhide
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Kedar-Bhide/palate-app-sub003

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/Kedar-Bhide/palate-app-sub003/internal/achievement"
	"github.com/Kedar-Bhide/palate-app-sub003/internal/recommend"
)

// Options configures the HTTP server.
type Options struct {
	// CORSOrigins lists allowed origins; empty allows none.
	CORSOrigins []string

	// RateLimitRequests is the per-IP request budget per window.
	RateLimitRequests int

	// RateLimitWindow is the rate limit window.
	RateLimitWindow time.Duration
}

// Server wires the engine components into an HTTP surface.
type Server struct {
	detector    *achievement.Detector
	recommender *recommend.Engine
	validate    *validator.Validate
	logger      zerolog.Logger
	opts        Options

	// now is the clock for derived results; swapped in tests.
	now func() time.Time
}

// NewServer creates an HTTP server around the given engine components.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewServer(detector *achievement.Detector, recommender *recommend.Engine, opts Options, logger zerolog.Logger) *Server {
	if opts.RateLimitRequests <= 0 {
		opts.RateLimitRequests = 300
	}
	if opts.RateLimitWindow <= 0 {
		opts.RateLimitWindow = time.Minute
	}
	return &Server{
		detector:    detector,
		recommender: recommender,
		validate:    validator.New(),
		logger:      logger.With().Str("component", "api").Logger(),
		opts:        opts,
		now:         time.Now,
	}
}

// Router builds the chi routing tree with the full middleware stack.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.opts.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(s.requestLogger)

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Get("/live", s.handleHealthLive)
		r.Get("/ready", s.handleHealthReady)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(httprate.LimitByIP(s.opts.RateLimitRequests, s.opts.RateLimitWindow))
		r.Use(metricsMiddleware)

		r.Post("/stats", s.handleStats)
		r.Post("/trends", s.handleTrends)
		r.Post("/streaks", s.handleStreaks)
		r.Post("/achievements", s.handleAchievements)
		r.Post("/recommendations", s.handleRecommendations)
	})

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	return r
}
