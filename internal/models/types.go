// Palate - Cuisine Exploration Analytics Engine
// Copyright 2026 Kedar Bhide
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Kedar-Bhide/palate-app-sub003

package models

import "time"

// Cuisine is an immutable catalog entry. Catalog seeding happens outside
// the engine; the engine only ever reads these.
type Cuisine struct {
	// ID is the stable catalog identifier.
	ID int `json:"id"`

	// Name is unique within the catalog.
	Name string `json:"name"`

	// Category is the culinary region bucket.
	Category Category `json:"category"`

	// OriginCountry is the primary country of origin, if known.
	OriginCountry string `json:"origin_country,omitempty"`

	// Description is optional display copy.
	Description string `json:"description,omitempty"`
}

// ProgressEntry records a user's history with a single cuisine.
//
// At most one entry exists per (UserID, CuisineID) pair; repeat tries
// increment TimesTried on the existing entry. Entries are created and
// mutated by the calling layer and never deleted by the engine.
type ProgressEntry struct {
	// UserID identifies the owner of this entry.
	UserID int `json:"user_id"`

	// CuisineID references a Cuisine in the catalog.
	CuisineID int `json:"cuisine_id"`

	// FirstTriedAt is when the cuisine was first tried.
	FirstTriedAt time.Time `json:"first_tried_at"`

	// TimesTried is the total try count, always >= 1.
	TimesTried int `json:"times_tried"`

	// FavoriteRestaurant is an optional venue note.
	FavoriteRestaurant string `json:"favorite_restaurant,omitempty"`

	// Rating is 1-5 when set, 0 when the user has not rated.
	Rating int `json:"rating,omitempty"`

	// Cuisine is an optional back-reference for caller convenience.
	// The engine resolves cuisines through the catalog, not this field.
	Cuisine *Cuisine `json:"cuisine,omitempty"`
}

// Rated reports whether the entry carries a valid 1-5 rating.
func (p ProgressEntry) Rated() bool {
	return p.Rating >= 1 && p.Rating <= 5
}

// Achievement is a derived unlock. The engine emits achievements; the
// calling layer persists which IDs have been granted and must not
// re-present an ID it has already shown.
type Achievement struct {
	// ID is a deterministic key derived from the trigger, e.g.
	// "cuisine_10", "category_complete_asian", "streak_30". The same
	// trigger always produces the same ID.
	ID string `json:"id"`

	// Name is the display title.
	Name string `json:"name"`

	// Description explains what was accomplished.
	Description string `json:"description"`

	// Icon is an emoji or icon key for display.
	Icon string `json:"icon"`

	// Threshold is the numeric value that triggered the unlock.
	Threshold int `json:"threshold"`

	// UnlockedAt is when the detector observed the crossing.
	UnlockedAt time.Time `json:"unlocked_at"`
}
