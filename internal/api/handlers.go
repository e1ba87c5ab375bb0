// Palate - Cuisine Exploration Analytics Engine
// Copyright 2026 Kedar Bhide
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Kedar-Bhide/palate-app-sub003

package api

import (
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/Kedar-Bhide/palate-app-sub003/internal/models"
	"github.com/Kedar-Bhide/palate-app-sub003/internal/stats"
)

// maxBodyBytes bounds request bodies; snapshots for realistic catalogs
// are well under this.
const maxBodyBytes = 4 << 20

// snapshotRequest carries the catalog and progress snapshots every
// computation endpoint consumes.
type snapshotRequest struct {
	Catalog  []models.Cuisine       `json:"catalog"`
	Progress []models.ProgressEntry `json:"progress"`
}

// achievementsRequest carries the before/after snapshot pair.
type achievementsRequest struct {
	Catalog     []models.Cuisine       `json:"catalog"`
	OldProgress []models.ProgressEntry `json:"old_progress"`
	NewProgress []models.ProgressEntry `json:"new_progress"`
}

// recommendationsRequest adds the result cap to a snapshot.
type recommendationsRequest struct {
	Catalog  []models.Cuisine       `json:"catalog"`
	Progress []models.ProgressEntry `json:"progress"`
	Limit    int                    `json:"limit" validate:"min=0,max=100"`
}

type streaksResponse struct {
	DayStreak  int `json:"day_streak"`
	WeekStreak int `json:"week_streak"`
}

type achievementsResponse struct {
	Achievements []models.Achievement `json:"achievements"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	var req snapshotRequest
	if !s.decode(w, r, &req) {
		return
	}
	s.respond(w, http.StatusOK, stats.Aggregate(req.Progress, req.Catalog, s.now()))
}

func (s *Server) handleTrends(w http.ResponseWriter, r *http.Request) {
	var req snapshotRequest
	if !s.decode(w, r, &req) {
		return
	}
	s.respond(w, http.StatusOK, stats.MonthlyTrend(req.Progress, s.now()))
}

func (s *Server) handleStreaks(w http.ResponseWriter, r *http.Request) {
	var req snapshotRequest
	if !s.decode(w, r, &req) {
		return
	}
	now := s.now()
	s.respond(w, http.StatusOK, streaksResponse{
		DayStreak:  stats.DayStreak(req.Progress, now),
		WeekStreak: stats.WeekStreak(req.Progress, now),
	})
}

func (s *Server) handleAchievements(w http.ResponseWriter, r *http.Request) {
	var req achievementsRequest
	if !s.decode(w, r, &req) {
		return
	}
	unlocked := s.detector.Detect(req.OldProgress, req.NewProgress, req.Catalog, s.now())
	s.respond(w, http.StatusOK, achievementsResponse{Achievements: unlocked})
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	var req recommendationsRequest
	if !s.decode(w, r, &req) {
		return
	}
	s.respond(w, http.StatusOK, s.recommender.Recommend(req.Progress, req.Catalog, req.Limit))
}

func (s *Server) handleHealthLive(w http.ResponseWriter, _ *http.Request) {
	s.respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleHealthReady(w http.ResponseWriter, _ *http.Request) {
	s.respond(w, http.StatusOK, map[string]string{"status": "ready"})
}

// decode reads, parses, and validates a JSON request body. On failure
// it writes the error response and returns false.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		s.respond(w, http.StatusBadRequest, errorResponse{Error: "malformed request body: " + err.Error()})
		return false
	}

	if err := s.validate.Struct(dst); err != nil {
		s.respond(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return false
	}
	return true
}

// respond writes a JSON response with the given status.
func (s *Server) respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error().Err(err).Msg("encoding response")
	}
}
