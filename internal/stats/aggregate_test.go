// Palate - Cuisine Exploration Analytics Engine
// Copyright 2026 Kedar Bhide
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Kedar-Bhide/palate-app-sub003

package stats

import (
	"testing"
	"time"

	"github.com/Kedar-Bhide/palate-app-sub003/internal/catalog"
	"github.com/Kedar-Bhide/palate-app-sub003/internal/models"
)

// fixedNow anchors time-dependent assertions.
var fixedNow = time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

// twoCategoryCatalog builds 10 cuisines split evenly across two
// categories: IDs 1-5 European, 6-10 Asian.
func twoCategoryCatalog() []models.Cuisine {
	out := make([]models.Cuisine, 0, 10)
	for i := 1; i <= 5; i++ {
		out = append(out, models.Cuisine{ID: i, Category: models.CategoryEuropean})
	}
	for i := 6; i <= 10; i++ {
		out = append(out, models.Cuisine{ID: i, Category: models.CategoryAsian})
	}
	return out
}

func entry(cuisineID int, triedAt time.Time) models.ProgressEntry {
	return models.ProgressEntry{UserID: 1, CuisineID: cuisineID, FirstTriedAt: triedAt, TimesTried: 1}
}

func TestAggregate_WorkedExample(t *testing.T) {
	// 10 cuisines across 2 categories, 3 tried, none rated.
	progress := []models.ProgressEntry{
		entry(6, fixedNow.AddDate(0, 0, -40)),
		entry(7, fixedNow.AddDate(0, 0, -30)),
		entry(8, fixedNow.AddDate(0, 0, -20)),
	}

	got := Aggregate(progress, twoCategoryCatalog(), fixedNow)

	if got.TotalCuisines != 10 || got.TriedCuisines != 3 {
		t.Errorf("counts = %d/%d, want 3/10", got.TriedCuisines, got.TotalCuisines)
	}
	if got.Percentage != 30 {
		t.Errorf("Percentage = %d, want 30", got.Percentage)
	}
	if got.NextGoal.Goal.Threshold != 5 || got.NextGoal.Remaining != 2 {
		t.Errorf("NextGoal = %d/%d remaining, want goal 5 remaining 2",
			got.NextGoal.Goal.Threshold, got.NextGoal.Remaining)
	}
}

func TestAggregate_EmptyInputs(t *testing.T) {
	t.Run("empty catalog zeroes percentage and diversity", func(t *testing.T) {
		progress := []models.ProgressEntry{
			entry(1, fixedNow.AddDate(0, 0, -2)),
			entry(2, fixedNow.AddDate(0, 0, -1)),
		}
		got := Aggregate(progress, nil, fixedNow)
		if got.Percentage != 0 {
			t.Errorf("Percentage = %d, want 0", got.Percentage)
		}
		if got.DiversityScore != 0 {
			t.Errorf("DiversityScore = %d, want 0", got.DiversityScore)
		}
	})

	t.Run("empty progress", func(t *testing.T) {
		got := Aggregate(nil, twoCategoryCatalog(), fixedNow)
		if got.TriedCuisines != 0 || got.Percentage != 0 || got.DiversityScore != 0 || got.CurrentStreak != 0 {
			t.Errorf("empty progress produced non-zero stats: %+v", got)
		}
	})
}

func TestAggregate_PercentageClampedWithStaleEntries(t *testing.T) {
	// Progress can reference cuisines that have left the catalog; the
	// percentage must still honor the 0-100 bound.
	smallCatalog := []models.Cuisine{
		{ID: 1, Category: models.CategoryEuropean},
		{ID: 2, Category: models.CategoryEuropean},
	}
	progress := []models.ProgressEntry{
		entry(101, fixedNow.AddDate(0, 0, -3)),
		entry(102, fixedNow.AddDate(0, 0, -2)),
		entry(103, fixedNow.AddDate(0, 0, -1)),
	}

	got := Aggregate(progress, smallCatalog, fixedNow)
	if got.Percentage != 100 {
		t.Errorf("Percentage = %d, want 100 (clamped)", got.Percentage)
	}
	if got.DiversityScore < 0 || got.DiversityScore > 100 {
		t.Errorf("DiversityScore = %d, out of [0,100]", got.DiversityScore)
	}
}

func TestAggregate_MonthlyProgress(t *testing.T) {
	progress := []models.ProgressEntry{
		entry(1, time.Date(2026, time.June, 2, 0, 0, 0, 0, time.UTC)),
		entry(2, time.Date(2026, time.June, 14, 0, 0, 0, 0, time.UTC)),
		entry(3, time.Date(2026, time.May, 30, 0, 0, 0, 0, time.UTC)),
		entry(4, time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC)), // same month, wrong year
	}
	got := Aggregate(progress, twoCategoryCatalog(), fixedNow)
	if got.MonthlyProgress != 2 {
		t.Errorf("MonthlyProgress = %d, want 2", got.MonthlyProgress)
	}
}

func TestDiversityScore_ExactBlend(t *testing.T) {
	// One of two categories touched (0.5), 3/10 of the catalog (0.3),
	// depth (3/5)/2 = 0.3, consistency 3/(2*3) = 0.5:
	// 100 * (0.4*0.5 + 0.3*0.3 + 0.2*0.3 + 0.1*0.5) = 40.
	progress := []models.ProgressEntry{
		entry(6, fixedNow.AddDate(0, 0, -20)),
		entry(7, fixedNow.AddDate(0, 0, -10)),
		entry(8, fixedNow),
	}
	got := DiversityScore(progress, catalog.NewIndex(twoCategoryCatalog()))
	if got != 40 {
		t.Errorf("DiversityScore = %d, want 40", got)
	}
}

func TestDiversityScore_Bounds(t *testing.T) {
	cat := twoCategoryCatalog()
	idx := catalog.NewIndex(cat)

	// Full completion with dense, consistent history.
	full := make([]models.ProgressEntry, 0, len(cat))
	for i, c := range cat {
		full = append(full, entry(c.ID, fixedNow.AddDate(0, 0, -len(cat)+i)))
	}

	cases := map[string][]models.ProgressEntry{
		"empty":    nil,
		"single":   {entry(1, fixedNow)},
		"sparse":   {entry(1, fixedNow.AddDate(-1, 0, 0)), entry(6, fixedNow)},
		"complete": full,
	}
	for name, progress := range cases {
		t.Run(name, func(t *testing.T) {
			got := DiversityScore(progress, idx)
			if got < 0 || got > 100 {
				t.Errorf("DiversityScore = %d, out of [0,100]", got)
			}
		})
	}
}

func TestDiversityScore_Monotonicity(t *testing.T) {
	cat := twoCategoryCatalog()

	progress := []models.ProgressEntry{
		entry(6, fixedNow.AddDate(0, 0, -10)),
		entry(7, fixedNow.AddDate(0, 0, -5)),
	}
	before := Aggregate(progress, cat, fixedNow)

	// Adding an untried cuisine must never shrink the counting stats.
	progress = append(progress, entry(1, fixedNow))
	after := Aggregate(progress, cat, fixedNow)

	if after.TriedCuisines < before.TriedCuisines {
		t.Errorf("TriedCuisines shrank: %d -> %d", before.TriedCuisines, after.TriedCuisines)
	}
	if after.Percentage < before.Percentage {
		t.Errorf("Percentage shrank: %d -> %d", before.Percentage, after.Percentage)
	}
}

func TestConsistencyBonus(t *testing.T) {
	tests := []struct {
		name    string
		entries []models.ProgressEntry
		want    float64
	}{
		{"no entries", nil, 0},
		{"single entry", []models.ProgressEntry{entry(1, fixedNow)}, 0},
		{
			"gap resets the counter",
			[]models.ProgressEntry{
				entry(1, fixedNow.AddDate(0, 0, -100)),
				entry(2, fixedNow.AddDate(0, 0, -90)),
				entry(3, fixedNow), // 90-day gap
			},
			// counter 1 then reset to 0: accumulated 1 / (2*3)
			1.0 / 6.0,
		},
		{
			"steady pace",
			[]models.ProgressEntry{
				entry(1, fixedNow.AddDate(0, 0, -20)),
				entry(2, fixedNow.AddDate(0, 0, -10)),
				entry(3, fixedNow),
			},
			0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := consistencyBonus(tt.entries)
			if got != tt.want {
				t.Errorf("consistencyBonus = %v, want %v", got, tt.want)
			}
		})
	}
}
