// Palate - Cuisine Exploration Analytics Engine
// Copyright 2026 Kedar Bhide
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Kedar-Bhide/palate-app-sub003

// Package achievement detects newly unlocked achievements by diffing a
// before/after pair of progress snapshots.
//
// # Contract
//
// The caller snapshots progress strictly before applying a tried-event
// mutation and calls Detect with both snapshots. Every achievement
// family emits only on a threshold crossing between the two snapshots,
// so Detect(x, x, ...) is always empty and a threshold crossed entirely
// within one batched mutation is still detected.
//
// # Achievement Families
//
//   - Milestone: distinct-cuisine count crosses a goal-table threshold
//   - Category: first try, half completion, and full completion per category
//   - Streak: the week-granularity streak crosses 7/30/90/365
//   - Velocity: 10 cuisines within 30 days, 20 within 60 days
//
// IDs are deterministic functions of the trigger ("cuisine_10",
// "category_complete_asian", "streak_30"), so callers persisting granted
// IDs dedupe for free. Detect never returns an error; entries with
// unresolvable cuisines or categories are excluded from the relevant
// bucket instead.
package achievement
