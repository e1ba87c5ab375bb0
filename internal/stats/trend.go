// Palate - Cuisine Exploration Analytics Engine
// Copyright 2026 Kedar Bhide
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Kedar-Bhide/palate-app-sub003

package stats

import (
	"time"

	"github.com/Kedar-Bhide/palate-app-sub003/internal/models"
)

// MonthlyTrend buckets progress into current-month and previous-month
// counts, classifies the direction, and breaks the current month down
// by week of month. Days 29-31 fold into the final weekly bucket.
func MonthlyTrend(progress []models.ProgressEntry, now time.Time) models.TrendSummary {
	thisYear, thisMonth := now.Year(), now.Month()
	// AddDate can skid past short months (e.g. Mar 31 -> Mar 3); anchor
	// on the first of the month instead.
	prev := time.Date(thisYear, thisMonth, 1, 0, 0, 0, 0, now.Location()).AddDate(0, -1, 0)
	lastYear, lastMonth := prev.Year(), prev.Month()

	var summary models.TrendSummary
	for _, p := range progress {
		y, m, d := p.FirstTriedAt.Date()
		switch {
		case y == thisYear && m == thisMonth:
			summary.ThisMonth++
			week := (d - 1) / 7
			if week > 3 {
				week = 3
			}
			summary.WeeklyBreakdown[week]++
		case y == lastYear && m == lastMonth:
			summary.LastMonth++
		}
	}

	switch {
	case summary.ThisMonth > summary.LastMonth:
		summary.Trend = models.TrendIncreasing
	case summary.ThisMonth < summary.LastMonth:
		summary.Trend = models.TrendDecreasing
	default:
		summary.Trend = models.TrendStable
	}
	return summary
}
