// Palate - Cuisine Exploration Analytics Engine
// Copyright 2026 Kedar Bhide
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Kedar-Bhide/palate-app-sub003

// Package api exposes the analytics engine over HTTP for the
// surrounding application.
//
// # Architecture
//
// The engine packages (stats, achievement, recommend) stay pure; this
// package owns everything transport-shaped: routing, request decoding,
// payload validation, request IDs, rate limiting, CORS, and metrics.
// Every endpoint takes the catalog and progress snapshots in the
// request body and returns derived results, so the host holds no state
// between calls.
//
// # Endpoints
//
//	POST /api/v1/stats            aggregate progress statistics
//	POST /api/v1/trends           month-over-month trend summary
//	POST /api/v1/streaks          day and week exploration streaks
//	POST /api/v1/achievements     before/after achievement detection
//	POST /api/v1/recommendations  ranked untried cuisines
//	GET  /api/v1/health/live      liveness probe
//	GET  /api/v1/health/ready     readiness probe
//	GET  /metrics                 Prometheus metrics
package api
