// Palate - Cuisine Exploration Analytics Engine
// Copyright 2026 Kedar Bhide
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Kedar-Bhide/palate-app-sub003

// Package stats computes aggregate progress statistics, exploration
// streaks, and monthly trend summaries.
//
// # Design Principles
//
// Every function here is a pure function of its inputs:
//
//   - Deterministic: no hidden clock — callers pass "now" explicitly
//   - Total: empty or degenerate input returns zero values, never panics
//   - Stateless: inputs are never mutated; sorting works on copies
//
// # Diversity Score
//
// The 0-100 diversity score is a weighted blend of four signals:
//
//	0.4 * categoryDiversity  (share of categories touched)
//	0.3 * cuisineProgress    (share of catalog tried)
//	0.2 * depthBonus         (mean completion depth of touched categories)
//	0.1 * consistencyBonus   (regularity of exploration over time)
//
// # Streak Variants
//
// Two streak calculators exist with intentionally different semantics.
// DayStreak uses a sliding allowance that tolerates week-long gaps and
// is suited to headline stats. WeekStreak counts consecutive calendar
// weeks with at least one entry and backs streak achievements. Callers
// needing strict-daily semantics must not use DayStreak.
package stats
