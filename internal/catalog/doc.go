// Palate - Cuisine Exploration Analytics Engine
// Copyright 2026 Kedar Bhide
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Kedar-Bhide/palate-app-sub003

// Package catalog builds a read-only index over a cuisine catalog snapshot.
//
// An Index is constructed once per computation pass from the caller's
// []models.Cuisine slice and answers the lookups every engine component
// needs: cuisine by ID, grouping by category, per-category sizes, and
// per-category tried counts for a progress set. Cuisines with
// CategoryUnknown still count toward catalog size but are excluded from
// category grouping, so malformed category data degrades to exclusion
// rather than a phantom bucket.
package catalog
