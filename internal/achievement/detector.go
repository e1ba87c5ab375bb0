// Palate - Cuisine Exploration Analytics Engine
// Copyright 2026 Kedar Bhide
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Kedar-Bhide/palate-app-sub003

package achievement

import (
	"fmt"
	"time"

	"github.com/Kedar-Bhide/palate-app-sub003/internal/catalog"
	"github.com/Kedar-Bhide/palate-app-sub003/internal/models"
	"github.com/Kedar-Bhide/palate-app-sub003/internal/stats"
)

// VelocityRule defines a try-count-within-window achievement.
type VelocityRule struct {
	// Count is the minimum number of distinct cuisines.
	Count int

	// WindowDays is the maximum span in days between the first and the
	// most recent entry.
	WindowDays int

	// Name and Icon are the display attributes for the unlock.
	Name string
	Icon string
}

// Config holds the detector's threshold tables.
type Config struct {
	// Goals is the ascending milestone table.
	Goals []models.ProgressGoal

	// StreakThresholds are the week-streak values that unlock streak
	// achievements, ascending.
	StreakThresholds []int

	// Velocity lists the velocity rules, ascending by Count.
	Velocity []VelocityRule
}

// DefaultConfig returns the standard threshold tables.
func DefaultConfig() Config {
	return Config{
		Goals:            models.DefaultGoals,
		StreakThresholds: []int{7, 30, 90, 365},
		Velocity: []VelocityRule{
			{Count: 10, WindowDays: 30, Name: "Speed Taster", Icon: "⚡"},
			{Count: 20, WindowDays: 60, Name: "Culinary Sprinter", Icon: "🚀"},
		},
	}
}

// Detector diffs progress snapshots against the configured thresholds.
// It holds only configuration and is safe for concurrent use.
type Detector struct {
	cfg Config
}

// NewDetector creates a detector, filling empty config sections from
// DefaultConfig.
func NewDetector(cfg Config) *Detector {
	def := DefaultConfig()
	if len(cfg.Goals) == 0 {
		cfg.Goals = def.Goals
	}
	if len(cfg.StreakThresholds) == 0 {
		cfg.StreakThresholds = def.StreakThresholds
	}
	if len(cfg.Velocity) == 0 {
		cfg.Velocity = def.Velocity
	}
	return &Detector{cfg: cfg}
}

// Detect returns the achievements newly unlocked between the old and
// new progress snapshots. The old snapshot must have been captured
// strictly before the mutation that produced the new one. Detect never
// returns an error; malformed entries are excluded from their bucket.
func (d *Detector) Detect(oldProgress, newProgress []models.ProgressEntry, cuisines []models.Cuisine, now time.Time) []models.Achievement {
	out := []models.Achievement{}
	out = append(out, d.milestones(oldProgress, newProgress, now)...)
	out = append(out, d.categories(oldProgress, newProgress, cuisines, now)...)
	out = append(out, d.streaks(oldProgress, newProgress, now)...)
	out = append(out, d.velocity(oldProgress, newProgress, now)...)
	return out
}

// milestones emits one achievement per goal threshold crossed by the
// distinct-cuisine count.
func (d *Detector) milestones(oldProgress, newProgress []models.ProgressEntry, now time.Time) []models.Achievement {
	oldCount, newCount := len(oldProgress), len(newProgress)

	var out []models.Achievement
	for _, g := range d.cfg.Goals {
		if oldCount < g.Threshold && newCount >= g.Threshold {
			out = append(out, models.Achievement{
				ID:          fmt.Sprintf("cuisine_%d", g.Threshold),
				Name:        g.Name,
				Description: g.Description,
				Icon:        g.Icon,
				Threshold:   g.Threshold,
				UnlockedAt:  now,
			})
		}
	}
	return out
}

// categories emits first-try, half-completion, and full-completion
// achievements per category whose tried count crossed the boundary.
func (d *Detector) categories(oldProgress, newProgress []models.ProgressEntry, cuisines []models.Cuisine, now time.Time) []models.Achievement {
	idx := catalog.NewIndex(cuisines)
	oldByCat := idx.TriedByCategory(oldProgress)
	newByCat := idx.TriedByCategory(newProgress)

	var out []models.Achievement
	for _, cat := range idx.Categories() {
		size := idx.CategorySize(cat)
		o, n := oldByCat[cat], newByCat[cat]

		if o == 0 && n >= 1 {
			out = append(out, models.Achievement{
				ID:          "category_first_" + cat.Slug(),
				Name:        fmt.Sprintf("First Taste of %s", cat),
				Description: fmt.Sprintf("Try your first %s cuisine", cat),
				Icon:        "🌱",
				Threshold:   1,
				UnlockedAt:  now,
			})
		}

		if size >= 2 {
			half := float64(size) / 2
			if float64(o) < half && float64(n) >= half {
				out = append(out, models.Achievement{
					ID:          "category_half_" + cat.Slug(),
					Name:        fmt.Sprintf("%s Halfway There", cat),
					Description: fmt.Sprintf("Try half of all %s cuisines", cat),
					Icon:        "🌗",
					Threshold:   (size + 1) / 2,
					UnlockedAt:  now,
				})
			}
		}

		if o < size && n >= size {
			out = append(out, models.Achievement{
				ID:          "category_complete_" + cat.Slug(),
				Name:        fmt.Sprintf("%s Completionist", cat),
				Description: fmt.Sprintf("Try every %s cuisine in the catalog", cat),
				Icon:        "🏅",
				Threshold:   size,
				UnlockedAt:  now,
			})
		}
	}
	return out
}

// streaks emits achievements for week-streak thresholds newly crossed
// between the snapshots, mirroring the milestone semantics so a caller
// never sees the same streak unlock twice for one crossing.
func (d *Detector) streaks(oldProgress, newProgress []models.ProgressEntry, now time.Time) []models.Achievement {
	oldStreak := stats.WeekStreak(oldProgress, now)
	newStreak := stats.WeekStreak(newProgress, now)

	var out []models.Achievement
	for _, threshold := range d.cfg.StreakThresholds {
		if oldStreak < threshold && newStreak >= threshold {
			out = append(out, models.Achievement{
				ID:          fmt.Sprintf("streak_%d", threshold),
				Name:        streakName(threshold),
				Description: fmt.Sprintf("Keep an exploration streak going for %d weeks", threshold),
				Icon:        "🔥",
				Threshold:   threshold,
				UnlockedAt:  now,
			})
		}
	}
	return out
}

func streakName(threshold int) string {
	switch threshold {
	case 7:
		return "Week After Week"
	case 30:
		return "Relentless Explorer"
	case 90:
		return "Season of Flavor"
	case 365:
		return "Year of Discovery"
	default:
		return fmt.Sprintf("%d-Week Streak", threshold)
	}
}

// velocity emits speed achievements when a tried-event just occurred
// and the whole progress set fits inside the rule's window.
func (d *Detector) velocity(oldProgress, newProgress []models.ProgressEntry, now time.Time) []models.Achievement {
	if len(newProgress) <= len(oldProgress) {
		return nil
	}

	first, last := timeSpan(newProgress)
	span := last.Sub(first)

	var out []models.Achievement
	for _, rule := range d.cfg.Velocity {
		// Compared as durations: truncating to whole days would let a
		// span a few hours past the window slip through.
		window := time.Duration(rule.WindowDays) * 24 * time.Hour
		if len(newProgress) >= rule.Count && span <= window {
			out = append(out, models.Achievement{
				ID:          fmt.Sprintf("velocity_%d_%d", rule.Count, rule.WindowDays),
				Name:        rule.Name,
				Description: fmt.Sprintf("Try %d cuisines within %d days", rule.Count, rule.WindowDays),
				Icon:        rule.Icon,
				Threshold:   rule.Count,
				UnlockedAt:  now,
			})
		}
	}
	return out
}

// timeSpan returns the earliest and latest FirstTriedAt in a snapshot.
func timeSpan(progress []models.ProgressEntry) (first, last time.Time) {
	for i, p := range progress {
		if i == 0 {
			first, last = p.FirstTriedAt, p.FirstTriedAt
			continue
		}
		if p.FirstTriedAt.Before(first) {
			first = p.FirstTriedAt
		}
		if p.FirstTriedAt.After(last) {
			last = p.FirstTriedAt
		}
	}
	return first, last
}
