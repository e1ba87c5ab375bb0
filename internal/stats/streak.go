// Palate - Cuisine Exploration Analytics Engine
// Copyright 2026 Kedar Bhide
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Kedar-Bhide/palate-app-sub003

package stats

import (
	"sort"
	"time"

	"github.com/Kedar-Bhide/palate-app-sub003/internal/models"
)

// dayStreakAllowance is the sliding gap tolerance for DayStreak: the
// n-th entry may lag "now" by up to n+7 days before the streak breaks.
const dayStreakAllowance = 7

// DayStreak computes the day-granularity exploration streak.
//
// Entries are walked newest-first on date boundaries; the streak grows
// while each successive entry falls within streak+7 days of now. The
// allowance widens as the streak grows, so week-long gaps do not break
// an established streak. Empty progress returns 0.
func DayStreak(progress []models.ProgressEntry, now time.Time) int {
	if len(progress) == 0 {
		return 0
	}

	sorted := sortedDescending(progress)
	today := dateOnly(now)

	streak := 0
	for _, p := range sorted {
		days := int(today.Sub(dateOnly(p.FirstTriedAt)).Hours() / 24)
		if days < 0 {
			// Future-dated entries cannot extend a streak.
			continue
		}
		if days > streak+dayStreakAllowance {
			break
		}
		streak++
	}
	return streak
}

// WeekStreak computes the week-granularity exploration streak: the
// number of consecutive calendar weeks, ending at the current or
// previous week, with at least one entry.
//
// Week numbering is ceil((daysSinceJan1 + jan1Weekday + 1) / 7), so week
// boundaries fall on Sundays. If the current week has no entry yet, the
// count starts from the previous week, so an active streak is not
// penalized mid-week. Empty progress returns 0.
func WeekStreak(progress []models.ProgressEntry, now time.Time) int {
	if len(progress) == 0 {
		return 0
	}

	sorted := sortedDescending(progress)

	// Deduplicate to unique (year, week) pairs, newest first.
	weeks := make([]yearWeek, 0, len(sorted))
	for _, p := range sorted {
		yw := yearWeekOf(p.FirstTriedAt)
		if len(weeks) == 0 || weeks[len(weeks)-1] != yw {
			weeks = append(weeks, yw)
		}
	}

	expected := yearWeekOf(now)
	if weeks[0] != expected {
		expected = expected.previous()
	}

	streak := 0
	for _, yw := range weeks {
		if yw != expected {
			break
		}
		streak++
		expected = expected.previous()
	}
	return streak
}

// yearWeek identifies a calendar week within a year.
type yearWeek struct {
	year int
	week int
}

// previous returns the preceding calendar week, rolling into the last
// week of the prior year at the boundary.
func (yw yearWeek) previous() yearWeek {
	if yw.week > 1 {
		return yearWeek{year: yw.year, week: yw.week - 1}
	}
	prior := yw.year - 1
	return yearWeek{year: prior, week: weeksInYear(prior)}
}

// yearWeekOf computes the calendar week for a timestamp using
// ceil((daysSinceJan1 + jan1Weekday + 1) / 7).
func yearWeekOf(t time.Time) yearWeek {
	jan1 := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	days := int(dateOnly(t).Sub(dateOnly(jan1)).Hours() / 24)
	week := (days + int(jan1.Weekday()) + 1 + 6) / 7
	if week < 1 {
		week = 1
	}
	return yearWeek{year: t.Year(), week: week}
}

// weeksInYear returns the week number of December 31st for a year.
func weeksInYear(year int) int {
	dec31 := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	return yearWeekOf(dec31).week
}

// dateOnly truncates a timestamp to its calendar date in UTC.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// sortedDescending returns a copy of progress sorted newest-first by
// FirstTriedAt.
func sortedDescending(progress []models.ProgressEntry) []models.ProgressEntry {
	sorted := make([]models.ProgressEntry, len(progress))
	copy(sorted, progress)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].FirstTriedAt.After(sorted[j].FirstTriedAt)
	})
	return sorted
}
