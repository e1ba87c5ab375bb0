// Palate - Cuisine Exploration Analytics Engine
// Copyright 2026 Kedar Bhide
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Kedar-Bhide/palate-app-sub003

package recommend

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Kedar-Bhide/palate-app-sub003/internal/catalog"
	"github.com/Kedar-Bhide/palate-app-sub003/internal/models"
)

// Category preference blends tried-frequency against recorded ratings.
const (
	frequencyWeight = 0.6
	ratingWeight    = 0.4

	// neutralRating is assumed when a category has no rated entries.
	neutralRating = 3.0
)

// ScoredCuisine pairs a recommendation with its score breakdown.
type ScoredCuisine struct {
	// Cuisine is the recommended catalog entry.
	Cuisine models.Cuisine `json:"cuisine"`

	// Score is the blended recommendation score, higher is better.
	Score float64 `json:"score"`

	// Signals is the per-signal breakdown (category, diversity,
	// country, exploration) before weighting.
	Signals map[string]float64 `json:"signals,omitempty"`

	// Reason is an interpretable explanation for the ranking.
	Reason string `json:"reason,omitempty"`
}

// Engine scores untried cuisines against a user's try history.
// It is safe for concurrent use; the jitter PRNG is mutex-guarded.
type Engine struct {
	cfg    Config
	logger zerolog.Logger

	rng   *rand.Rand
	rngMu sync.Mutex
}

// NewEngine creates a recommendation engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg Config, logger zerolog.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if cfg.DefaultLimit == 0 {
		cfg.DefaultLimit = DefaultConfig().DefaultLimit
	}
	if cfg.RecencyWindow == 0 {
		cfg.RecencyWindow = DefaultConfig().RecencyWindow
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = 42
	}

	return &Engine{
		cfg:    cfg,
		logger: logger.With().Str("component", "recommend").Logger(),
		rng:    rand.New(rand.NewSource(seed)), //nolint:gosec // jitter only, not security-sensitive
	}, nil
}

// PredictNext returns up to limit untried cuisines ranked best-first.
// A non-positive limit falls back to the configured default.
func (e *Engine) PredictNext(progress []models.ProgressEntry, cuisines []models.Cuisine, limit int) []models.Cuisine {
	scored := e.Recommend(progress, cuisines, limit)
	out := make([]models.Cuisine, len(scored))
	for i, s := range scored {
		out[i] = s.Cuisine
	}
	return out
}

// Recommend scores every untried cuisine and returns the top candidates
// with their score breakdowns.
func (e *Engine) Recommend(progress []models.ProgressEntry, cuisines []models.Cuisine, limit int) []ScoredCuisine {
	if limit <= 0 {
		limit = e.cfg.DefaultLimit
	}

	idx := catalog.NewIndex(cuisines)
	tried := catalog.TriedSet(progress)
	prefs := categoryPreferences(progress, idx)
	affinity := countryAffinity(progress, idx, e.cfg.RecencyWindow)
	triedByCat := idx.TriedByCategory(progress)

	w := e.cfg.Weights
	candidates := make([]ScoredCuisine, 0, len(cuisines))
	for _, c := range cuisines {
		if _, ok := tried[c.ID]; ok {
			continue
		}

		categoryScore := prefs[c.Category]
		diversityScore := 1.0 / float64(1+triedByCat[c.Category])
		countryScore := affinity[c.OriginCountry]
		jitter := e.jitter()

		score := w.Category*categoryScore +
			w.Diversity*diversityScore +
			w.Country*countryScore +
			w.Exploration*jitter

		candidates = append(candidates, ScoredCuisine{
			Cuisine: c,
			Score:   score,
			Signals: map[string]float64{
				"category":    categoryScore,
				"diversity":   diversityScore,
				"country":     countryScore,
				"exploration": jitter,
			},
			Reason: reasonFor(c, categoryScore, diversityScore, countryScore),
		})
	}

	// Stable ordering: score descending, catalog ID ascending on ties,
	// so a fixed seed always yields the same ranking.
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Cuisine.ID < candidates[j].Cuisine.ID
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	e.logger.Debug().
		Int("progress", len(progress)).
		Int("catalog", len(cuisines)).
		Int("returned", len(candidates)).
		Msg("recommendations computed")

	return candidates
}

// jitter draws the exploration term from the engine's seeded PRNG.
func (e *Engine) jitter() float64 {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	return e.rng.Float64()
}

// categoryPreferences builds a per-category preference in [0,1] from
// how often and how favorably the user tried each category.
func categoryPreferences(progress []models.ProgressEntry, idx *catalog.Index) map[models.Category]float64 {
	tries := make(map[models.Category]int)
	ratingSum := make(map[models.Category]int)
	ratingCount := make(map[models.Category]int)

	for _, p := range progress {
		cat := idx.CategoryOf(p)
		if !cat.IsValid() {
			continue
		}
		n := p.TimesTried
		if n < 1 {
			n = 1
		}
		tries[cat] += n
		if p.Rated() {
			ratingSum[cat] += p.Rating
			ratingCount[cat]++
		}
	}

	maxTries := 0
	for _, n := range tries {
		if n > maxTries {
			maxTries = n
		}
	}

	prefs := make(map[models.Category]float64, len(tries))
	for cat, n := range tries {
		frequency := 0.0
		if maxTries > 0 {
			frequency = float64(n) / float64(maxTries)
		}

		mean := neutralRating
		if ratingCount[cat] > 0 {
			mean = float64(ratingSum[cat]) / float64(ratingCount[cat])
		}
		rating := (mean - 1) / 4

		prefs[cat] = frequencyWeight*frequency + ratingWeight*rating
	}
	return prefs
}

// countryAffinity maps origin countries of the window most recent tries
// to a max-normalized affinity in (0,1].
func countryAffinity(progress []models.ProgressEntry, idx *catalog.Index, window int) map[string]float64 {
	recent := make([]models.ProgressEntry, len(progress))
	copy(recent, progress)
	sort.Slice(recent, func(i, j int) bool {
		return recent[i].FirstTriedAt.After(recent[j].FirstTriedAt)
	})
	if len(recent) > window {
		recent = recent[:window]
	}

	counts := make(map[string]int)
	maxCount := 0
	for _, p := range recent {
		c, ok := idx.Lookup(p.CuisineID)
		if !ok || c.OriginCountry == "" {
			continue
		}
		counts[c.OriginCountry]++
		if counts[c.OriginCountry] > maxCount {
			maxCount = counts[c.OriginCountry]
		}
	}

	affinity := make(map[string]float64, len(counts))
	for country, n := range counts {
		affinity[country] = float64(n) / float64(maxCount)
	}
	return affinity
}

// reasonFor picks the dominant signal for display.
func reasonFor(c models.Cuisine, category, diversity, country float64) string {
	switch {
	case country > category && country > diversity && c.OriginCountry != "":
		return fmt.Sprintf("you have been enjoying food from %s", c.OriginCountry)
	case category >= diversity:
		return fmt.Sprintf("you often try %s cuisines", c.Category)
	default:
		return fmt.Sprintf("branch out into %s cuisine", c.Category)
	}
}
