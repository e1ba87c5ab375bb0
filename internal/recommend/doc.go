// Palate - Cuisine Exploration Analytics Engine
// Copyright 2026 Kedar Bhide
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Kedar-Bhide/palate-app-sub003

// Package recommend ranks untried cuisines with a weighted preference
// model.
//
// # Scoring
//
// Each untried cuisine is scored as a weighted blend of four signals:
//
//	0.4 * category preference  (tried-frequency and rating affinity)
//	0.3 * diversity pressure   (favors least-explored categories)
//	0.2 * country affinity     (origin countries of recent tries)
//	0.1 * exploration jitter   (breaks near-ties to surface variety)
//
// # Determinism
//
// The jitter term comes from an explicit seeded PRNG owned by the
// engine, never a package-level global. Tests construct the engine with
// a fixed seed and get reproducible rankings; production callers seed
// from the clock so repeated calls may reorder near-tied candidates.
//
// # Usage
//
//	eng, err := recommend.NewEngine(recommend.DefaultConfig(), logger)
//	if err != nil {
//		return err
//	}
//	next := eng.PredictNext(progress, cuisines, 5)
package recommend
