// Palate - Cuisine Exploration Analytics Engine
// Copyright 2026 Kedar Bhide
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Kedar-Bhide/palate-app-sub003

package stats

import (
	"math"
	"sort"
	"time"

	"github.com/Kedar-Bhide/palate-app-sub003/internal/catalog"
	"github.com/Kedar-Bhide/palate-app-sub003/internal/models"
)

// Weights for the blended diversity score.
const (
	weightCategoryDiversity = 0.4
	weightCuisineProgress   = 0.3
	weightDepthBonus        = 0.2
	weightConsistencyBonus  = 0.1
)

// consistencyGap is the maximum gap between consecutive tries that
// still counts as consistent exploration.
const consistencyGap = 30 * 24 * time.Hour

// Aggregate computes the full ProgressStats view for a progress set
// against a catalog snapshot. Pure function of its inputs; "now" anchors
// the streak and monthly-progress fields.
func Aggregate(progress []models.ProgressEntry, cuisines []models.Cuisine, now time.Time) models.ProgressStats {
	idx := catalog.NewIndex(cuisines)

	tried := len(progress)
	total := idx.Total()

	// Clamped like DiversityScore: progress may reference cuisines no
	// longer in the catalog, which would push the raw ratio past 100.
	percentage := 0
	if total > 0 {
		percentage = clampScore(int(math.Round(float64(tried) / float64(total) * 100)))
	}

	monthly := 0
	for _, p := range progress {
		if p.FirstTriedAt.Year() == now.Year() && p.FirstTriedAt.Month() == now.Month() {
			monthly++
		}
	}

	return models.ProgressStats{
		TotalCuisines:   total,
		TriedCuisines:   tried,
		Percentage:      percentage,
		DiversityScore:  DiversityScore(progress, idx),
		CurrentStreak:   DayStreak(progress, now),
		MonthlyProgress: monthly,
		NextGoal:        models.NextGoalFor(tried, models.DefaultGoals),
	}
}

// DiversityScore blends category coverage, catalog progress, per-category
// depth, and temporal consistency into a 0-100 integer score.
func DiversityScore(progress []models.ProgressEntry, idx *catalog.Index) int {
	total := idx.Total()
	if total == 0 {
		// An empty catalog scores 0 regardless of progress.
		return 0
	}
	cats := idx.Categories()
	triedByCat := idx.TriedByCategory(progress)

	var categoryDiversity, cuisineProgress, depthBonus float64

	if len(cats) > 0 {
		touched := 0
		depthSum := 0.0
		for _, cat := range cats {
			n := triedByCat[cat]
			if n == 0 {
				continue
			}
			touched++
			depthSum += float64(n) / float64(idx.CategorySize(cat))
		}
		categoryDiversity = float64(touched) / float64(len(cats))
		depthBonus = depthSum / float64(len(cats))
	}

	if total > 0 {
		cuisineProgress = float64(len(progress)) / float64(total)
	}

	score := weightCategoryDiversity*categoryDiversity +
		weightCuisineProgress*cuisineProgress +
		weightDepthBonus*depthBonus +
		weightConsistencyBonus*consistencyBonus(progress)

	return clampScore(int(math.Round(score * 100)))
}

// consistencyBonus rewards steady exploration. Walking entries in
// ascending FirstTriedAt order, a running counter increments for each
// consecutive pair within consistencyGap and resets on larger gaps; the
// accumulated counter values are normalized by 2*len(progress) and
// clamped to [0,1]. Fewer than two entries score 0.
func consistencyBonus(progress []models.ProgressEntry) float64 {
	if len(progress) < 2 {
		return 0
	}

	sorted := make([]models.ProgressEntry, len(progress))
	copy(sorted, progress)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].FirstTriedAt.Before(sorted[j].FirstTriedAt)
	})

	counter := 0
	accumulated := 0
	for i := 1; i < len(sorted); i++ {
		if sorted[i].FirstTriedAt.Sub(sorted[i-1].FirstTriedAt) <= consistencyGap {
			counter++
		} else {
			counter = 0
		}
		accumulated += counter
	}

	bonus := float64(accumulated) / float64(2*len(sorted))
	if bonus > 1 {
		return 1
	}
	return bonus
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
