// Palate - Cuisine Exploration Analytics Engine
// Copyright 2026 Kedar Bhide
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Kedar-Bhide/palate-app-sub003

package models

// ProgressStats is the aggregate view recomputed on every call.
type ProgressStats struct {
	// TotalCuisines is the catalog size.
	TotalCuisines int `json:"total_cuisines"`

	// TriedCuisines is the number of distinct cuisines tried.
	TriedCuisines int `json:"tried_cuisines"`

	// Percentage is round(tried/total*100), 0 when the catalog is empty.
	Percentage int `json:"percentage"`

	// DiversityScore is the weighted 0-100 exploration diversity score.
	DiversityScore int `json:"diversity_score"`

	// CurrentStreak is the day-granularity exploration streak.
	CurrentStreak int `json:"current_streak"`

	// MonthlyProgress is the number of cuisines first tried this month.
	MonthlyProgress int `json:"monthly_progress"`

	// NextGoal is the next milestone and the distance to it.
	NextGoal NextGoal `json:"next_goal"`
}

// TrendDirection classifies month-over-month movement.
type TrendDirection int

const (
	// TrendStable means this month matches last month.
	TrendStable TrendDirection = iota
	// TrendIncreasing means this month exceeds last month.
	TrendIncreasing
	// TrendDecreasing means this month trails last month.
	TrendDecreasing
)

// String returns the wire name for the trend direction.
func (d TrendDirection) String() string {
	switch d {
	case TrendIncreasing:
		return "increasing"
	case TrendDecreasing:
		return "decreasing"
	case TrendStable:
		return "stable"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d TrendDirection) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// TrendSummary is the month-over-month trend view.
type TrendSummary struct {
	// ThisMonth counts entries first tried in the current calendar month.
	ThisMonth int `json:"this_month"`

	// LastMonth counts entries first tried in the previous calendar month.
	LastMonth int `json:"last_month"`

	// Trend classifies ThisMonth against LastMonth.
	Trend TrendDirection `json:"trend"`

	// WeeklyBreakdown buckets this month's entries by week of month.
	// Days 29-31 fold into the final bucket.
	WeeklyBreakdown [4]int `json:"weekly_breakdown"`
}
