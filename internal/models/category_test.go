// Palate - Cuisine Exploration Analytics Engine
// Copyright 2026 Kedar Bhide
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Kedar-Bhide/palate-app-sub003

package models

import "testing"

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Category
		wantErr bool
	}{
		{"display name", "Asian", CategoryAsian, false},
		{"lowercase", "european", CategoryEuropean, false},
		{"slug with underscore", "middle_eastern", CategoryMiddleEastern, false},
		{"display with space", "Middle Eastern", CategoryMiddleEastern, false},
		{"hyphenated", "middle-eastern", CategoryMiddleEastern, false},
		{"surrounding whitespace", "  African  ", CategoryAfrican, false},
		{"american", "American", CategoryAmerican, false},
		{"oceanian", "oceanian", CategoryOceanian, false},
		{"typo creates no bucket", "asain", CategoryUnknown, true},
		{"empty string", "", CategoryUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if got != tt.want {
				t.Errorf("ParseCategory(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseCategory(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestCategory_Slug(t *testing.T) {
	for _, cat := range AllCategories() {
		t.Run(cat.String(), func(t *testing.T) {
			parsed, err := ParseCategory(cat.Slug())
			if err != nil {
				t.Fatalf("slug %q does not round-trip: %v", cat.Slug(), err)
			}
			if parsed != cat {
				t.Errorf("ParseCategory(%q) = %v, want %v", cat.Slug(), parsed, cat)
			}
		})
	}
}

func TestCategory_IsValid(t *testing.T) {
	if CategoryUnknown.IsValid() {
		t.Error("CategoryUnknown.IsValid() = true, want false")
	}
	if Category(99).IsValid() {
		t.Error("Category(99).IsValid() = true, want false")
	}
	for _, cat := range AllCategories() {
		if !cat.IsValid() {
			t.Errorf("%v.IsValid() = false, want true", cat)
		}
	}
}

func TestCategory_UnmarshalText(t *testing.T) {
	var c Category
	if err := c.UnmarshalText([]byte("asian")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if c != CategoryAsian {
		t.Errorf("got %v, want CategoryAsian", c)
	}

	// Unknown values degrade to CategoryUnknown rather than failing the
	// whole payload.
	if err := c.UnmarshalText([]byte("klingon")); err != nil {
		t.Fatalf("UnmarshalText unknown: %v", err)
	}
	if c != CategoryUnknown {
		t.Errorf("got %v, want CategoryUnknown", c)
	}
}
