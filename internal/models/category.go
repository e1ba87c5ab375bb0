// Palate - Cuisine Exploration Analytics Engine
// Copyright 2026 Kedar Bhide
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Kedar-Bhide/palate-app-sub003

package models

import (
	"fmt"
	"strings"
)

// Category classifies a cuisine into one of a small closed set of
// culinary regions. The zero value is CategoryUnknown, which is excluded
// from category grouping and scoring.
type Category int

const (
	// CategoryUnknown is the zero value for unclassified cuisines.
	CategoryUnknown Category = iota
	// CategoryEuropean covers European cuisines.
	CategoryEuropean
	// CategoryAsian covers East, South, and Southeast Asian cuisines.
	CategoryAsian
	// CategoryMiddleEastern covers Middle Eastern and North African cuisines.
	CategoryMiddleEastern
	// CategoryAmerican covers North, Central, and South American cuisines.
	CategoryAmerican
	// CategoryAfrican covers Sub-Saharan African cuisines.
	CategoryAfrican
	// CategoryOceanian covers Pacific and Oceanian cuisines.
	CategoryOceanian
)

// String returns the display name for the category.
func (c Category) String() string {
	switch c {
	case CategoryEuropean:
		return "European"
	case CategoryAsian:
		return "Asian"
	case CategoryMiddleEastern:
		return "Middle Eastern"
	case CategoryAmerican:
		return "American"
	case CategoryAfrican:
		return "African"
	case CategoryOceanian:
		return "Oceanian"
	default:
		return "unknown"
	}
}

// Slug returns the stable lowercase identifier used in achievement IDs
// and JSON payloads (e.g. "middle_eastern").
func (c Category) Slug() string {
	switch c {
	case CategoryEuropean:
		return "european"
	case CategoryAsian:
		return "asian"
	case CategoryMiddleEastern:
		return "middle_eastern"
	case CategoryAmerican:
		return "american"
	case CategoryAfrican:
		return "african"
	case CategoryOceanian:
		return "oceanian"
	default:
		return "unknown"
	}
}

// IsValid reports whether the category is a known member of the closed set.
func (c Category) IsValid() bool {
	return c > CategoryUnknown && c <= CategoryOceanian
}

// AllCategories returns the closed set of valid categories in stable order.
func AllCategories() []Category {
	return []Category{
		CategoryEuropean,
		CategoryAsian,
		CategoryMiddleEastern,
		CategoryAmerican,
		CategoryAfrican,
		CategoryOceanian,
	}
}

// ParseCategory converts an external string (display name or slug,
// case-insensitive) into a Category. Unrecognized input returns
// CategoryUnknown with an error; callers treating category data as
// best-effort can ignore the error and let grouping exclude the entry.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "european":
		return CategoryEuropean, nil
	case "asian":
		return CategoryAsian, nil
	case "middle eastern", "middle_eastern", "middle-eastern":
		return CategoryMiddleEastern, nil
	case "american":
		return CategoryAmerican, nil
	case "african":
		return CategoryAfrican, nil
	case "oceanian":
		return CategoryOceanian, nil
	default:
		return CategoryUnknown, fmt.Errorf("unknown cuisine category %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler using the slug form.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.Slug()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values
// decode to CategoryUnknown without error so that a stale client payload
// degrades to exclusion rather than a rejected request.
func (c *Category) UnmarshalText(b []byte) error {
	parsed, err := ParseCategory(string(b))
	if err != nil {
		*c = CategoryUnknown
		return nil
	}
	*c = parsed
	return nil
}
