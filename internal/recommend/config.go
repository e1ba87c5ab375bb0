// Palate - Cuisine Exploration Analytics Engine
// Copyright 2026 Kedar Bhide
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Kedar-Bhide/palate-app-sub003

package recommend

import "fmt"

// Weights defines the relative contribution of each scoring signal.
type Weights struct {
	// Category weighs per-category preference from try history.
	Category float64 `json:"category" koanf:"category"`

	// Diversity weighs pressure toward least-explored categories.
	Diversity float64 `json:"diversity" koanf:"diversity"`

	// Country weighs origin-country affinity from recent tries.
	Country float64 `json:"country" koanf:"country"`

	// Exploration weighs the random tie-breaking jitter.
	Exploration float64 `json:"exploration" koanf:"exploration"`
}

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Weights blends the scoring signals. They should sum to roughly
	// 1.0 so scores stay comparable across configs.
	Weights Weights `json:"weights" koanf:"weights"`

	// DefaultLimit is the result count when the caller passes limit <= 0.
	DefaultLimit int `json:"default_limit" koanf:"default_limit"`

	// RecencyWindow is how many of the most recent entries feed the
	// origin-country affinity map.
	RecencyWindow int `json:"recency_window" koanf:"recency_window"`

	// Seed is the PRNG seed for the exploration jitter. Zero selects a
	// fixed default so tests are deterministic by default; production
	// callers pass a time-derived seed.
	Seed int64 `json:"seed" koanf:"seed"`
}

// DefaultConfig returns the standard scoring configuration.
func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			Category:    0.4,
			Diversity:   0.3,
			Country:     0.2,
			Exploration: 0.1,
		},
		DefaultLimit:  5,
		RecencyWindow: 10,
	}
}

// Validate checks the configuration for values that would corrupt
// scoring.
func (c Config) Validate() error {
	for name, w := range map[string]float64{
		"category":    c.Weights.Category,
		"diversity":   c.Weights.Diversity,
		"country":     c.Weights.Country,
		"exploration": c.Weights.Exploration,
	} {
		if w < 0 || w > 1 {
			return fmt.Errorf("weight %s out of range [0,1]: %v", name, w)
		}
	}
	if c.DefaultLimit < 0 {
		return fmt.Errorf("default_limit must be >= 0, got %d", c.DefaultLimit)
	}
	if c.RecencyWindow < 0 {
		return fmt.Errorf("recency_window must be >= 0, got %d", c.RecencyWindow)
	}
	return nil
}
