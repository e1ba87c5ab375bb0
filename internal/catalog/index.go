// Palate - Cuisine Exploration Analytics Engine
// Copyright 2026 Kedar Bhide
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Kedar-Bhide/palate-app-sub003

package catalog

import (
	"github.com/Kedar-Bhide/palate-app-sub003/internal/models"
)

// Index is an immutable view over a catalog snapshot. Build one per
// computation pass; it holds no state beyond what NewIndex derives.
type Index struct {
	byID       map[int]models.Cuisine
	byCategory map[models.Category][]models.Cuisine
	total      int
}

// NewIndex builds an index from a catalog slice. The input is not
// mutated and may be in any order.
func NewIndex(cuisines []models.Cuisine) *Index {
	idx := &Index{
		byID:       make(map[int]models.Cuisine, len(cuisines)),
		byCategory: make(map[models.Category][]models.Cuisine),
		total:      len(cuisines),
	}
	for _, c := range cuisines {
		idx.byID[c.ID] = c
		if c.Category.IsValid() {
			idx.byCategory[c.Category] = append(idx.byCategory[c.Category], c)
		}
	}
	return idx
}

// Total returns the catalog size, including unclassified cuisines.
func (idx *Index) Total() int {
	return idx.total
}

// Lookup returns the cuisine with the given ID.
func (idx *Index) Lookup(id int) (models.Cuisine, bool) {
	c, ok := idx.byID[id]
	return c, ok
}

// Categories returns the categories present in the catalog, in the
// stable models.AllCategories order.
func (idx *Index) Categories() []models.Category {
	out := make([]models.Category, 0, len(idx.byCategory))
	for _, cat := range models.AllCategories() {
		if len(idx.byCategory[cat]) > 0 {
			out = append(out, cat)
		}
	}
	return out
}

// CategorySize returns the number of catalog cuisines in a category.
func (idx *Index) CategorySize(cat models.Category) int {
	return len(idx.byCategory[cat])
}

// InCategory returns the cuisines in a category, in catalog order.
func (idx *Index) InCategory(cat models.Category) []models.Cuisine {
	return idx.byCategory[cat]
}

// CategoryOf resolves a progress entry's category through the catalog.
// Entries referencing unknown cuisine IDs resolve to CategoryUnknown.
func (idx *Index) CategoryOf(entry models.ProgressEntry) models.Category {
	if c, ok := idx.byID[entry.CuisineID]; ok {
		return c.Category
	}
	return models.CategoryUnknown
}

// TriedByCategory counts distinct tried cuisines per category for a
// progress set. Entries that do not resolve to a cataloged, classified
// cuisine are excluded.
func (idx *Index) TriedByCategory(progress []models.ProgressEntry) map[models.Category]int {
	counts := make(map[models.Category]int, len(idx.byCategory))
	for _, p := range progress {
		cat := idx.CategoryOf(p)
		if cat.IsValid() {
			counts[cat]++
		}
	}
	return counts
}

// TriedSet returns the set of cuisine IDs present in a progress slice.
func TriedSet(progress []models.ProgressEntry) map[int]struct{} {
	set := make(map[int]struct{}, len(progress))
	for _, p := range progress {
		set[p.CuisineID] = struct{}{}
	}
	return set
}
