// Palate - Cuisine Exploration Analytics Engine
// Copyright 2026 Kedar Bhide
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Kedar-Bhide/palate-app-sub003

package stats

import (
	"testing"
	"time"

	"github.com/Kedar-Bhide/palate-app-sub003/internal/models"
)

func TestMonthlyTrend(t *testing.T) {
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		progress   []models.ProgressEntry
		wantThis   int
		wantLast   int
		wantTrend  models.TrendDirection
		wantWeekly [4]int
	}{
		{
			name:      "empty progress is stable",
			progress:  nil,
			wantTrend: models.TrendStable,
		},
		{
			name: "increasing with weekly buckets",
			progress: []models.ProgressEntry{
				entry(1, time.Date(2026, time.August, 3, 0, 0, 0, 0, time.UTC)),  // week 0
				entry(2, time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC)), // week 1
				entry(3, time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)), // day 30 folds into week 3
				entry(4, time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)), // day 31 folds into week 3
				entry(5, time.Date(2026, time.July, 20, 0, 0, 0, 0, time.UTC)),
				entry(6, time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)), // neither month
			},
			wantThis:   4,
			wantLast:   1,
			wantTrend:  models.TrendIncreasing,
			wantWeekly: [4]int{1, 1, 0, 2},
		},
		{
			name: "decreasing",
			progress: []models.ProgressEntry{
				entry(1, time.Date(2026, time.July, 5, 0, 0, 0, 0, time.UTC)),
				entry(2, time.Date(2026, time.July, 12, 0, 0, 0, 0, time.UTC)),
				entry(3, time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)),
			},
			wantThis:   1,
			wantLast:   2,
			wantTrend:  models.TrendDecreasing,
			wantWeekly: [4]int{1, 0, 0, 0},
		},
		{
			name: "equal counts are stable",
			progress: []models.ProgressEntry{
				entry(1, time.Date(2026, time.July, 5, 0, 0, 0, 0, time.UTC)),
				entry(2, time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)),
			},
			wantThis:   1,
			wantLast:   1,
			wantTrend:  models.TrendStable,
			wantWeekly: [4]int{0, 0, 1, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthlyTrend(tt.progress, now)
			if got.ThisMonth != tt.wantThis {
				t.Errorf("ThisMonth = %d, want %d", got.ThisMonth, tt.wantThis)
			}
			if got.LastMonth != tt.wantLast {
				t.Errorf("LastMonth = %d, want %d", got.LastMonth, tt.wantLast)
			}
			if got.Trend != tt.wantTrend {
				t.Errorf("Trend = %v, want %v", got.Trend, tt.wantTrend)
			}
			if got.WeeklyBreakdown != tt.wantWeekly {
				t.Errorf("WeeklyBreakdown = %v, want %v", got.WeeklyBreakdown, tt.wantWeekly)
			}
		})
	}
}

func TestMonthlyTrend_JanuaryLooksAtPriorDecember(t *testing.T) {
	now := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	progress := []models.ProgressEntry{
		entry(1, time.Date(2025, time.December, 28, 0, 0, 0, 0, time.UTC)),
		entry(2, time.Date(2026, time.January, 4, 0, 0, 0, 0, time.UTC)),
	}

	got := MonthlyTrend(progress, now)
	if got.LastMonth != 1 {
		t.Errorf("LastMonth = %d, want 1 (December 2025)", got.LastMonth)
	}
	if got.ThisMonth != 1 {
		t.Errorf("ThisMonth = %d, want 1", got.ThisMonth)
	}
}
