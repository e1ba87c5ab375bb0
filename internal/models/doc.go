// Palate - Cuisine Exploration Analytics Engine
// Copyright 2026 Kedar Bhide
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Kedar-Bhide/palate-app-sub003

// Package models defines the shared data model for the analytics engine.
//
// # Architecture
//
// The engine operates on two caller-supplied snapshots:
//
//   - Cuisine: an immutable catalog entry, seeded externally
//   - ProgressEntry: one row per (user, cuisine) pairing; repeat tries
//     increment TimesTried rather than creating new entries
//
// Everything else in this package is derived output: ProgressStats,
// TrendSummary, and Achievement values are recomputed on every call and
// never stored by the engine itself.
//
// # Design Principles
//
//   - Category is a closed enum, not a free-form string, so grouping code
//     cannot silently create a new bucket from a typo
//   - Achievement IDs are deterministic functions of their trigger, so a
//     caller that tracks granted IDs never sees duplicates
//   - All types are plain data with no behavior beyond formatting and
//     parsing; the engine packages hold the algorithms
package models
