// Palate - Cuisine Exploration Analytics Engine
// Copyright 2026 Kedar Bhide
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Kedar-Bhide/palate-app-sub003

package models

import "fmt"

// ProgressGoal is a static milestone definition keyed by a distinct-cuisine
// count. The fixed ascending goal table drives both next-goal computation
// and milestone achievement detection.
type ProgressGoal struct {
	// Threshold is the distinct-cuisine count that satisfies the goal.
	Threshold int `json:"threshold"`

	// Name is the display title.
	Name string `json:"name"`

	// Description explains the goal.
	Description string `json:"description"`

	// Icon is an emoji or icon key for display.
	Icon string `json:"icon"`
}

// DefaultGoals is the fixed milestone table, ascending by threshold.
var DefaultGoals = []ProgressGoal{
	{Threshold: 5, Name: "Taste Tester", Description: "Try 5 different cuisines", Icon: "🍴"},
	{Threshold: 10, Name: "Curious Palate", Description: "Try 10 different cuisines", Icon: "🥢"},
	{Threshold: 20, Name: "Food Explorer", Description: "Try 20 different cuisines", Icon: "🧭"},
	{Threshold: 50, Name: "Globe Trotter", Description: "Try 50 different cuisines", Icon: "🌍"},
	{Threshold: 100, Name: "Culinary Master", Description: "Try 100 different cuisines", Icon: "👑"},
}

// NextGoal pairs the next uncompleted goal with the remaining count.
type NextGoal struct {
	// Goal is the first table goal with Threshold > tried count, or a
	// synthesized goal beyond the table.
	Goal ProgressGoal `json:"goal"`

	// Remaining is max(0, Goal.Threshold - tried count).
	Remaining int `json:"remaining"`
}

// NextGoalFor scans the goal table for the first threshold strictly
// greater than tried. When every table goal is exceeded it synthesizes
// a goal at the next multiple of 25 above the current count.
func NextGoalFor(tried int, goals []ProgressGoal) NextGoal {
	for _, g := range goals {
		if g.Threshold > tried {
			return NextGoal{Goal: g, Remaining: g.Threshold - tried}
		}
	}

	next := (tried/25 + 1) * 25
	return NextGoal{
		Goal: ProgressGoal{
			Threshold:   next,
			Name:        fmt.Sprintf("Culinary Legend %d", next),
			Description: fmt.Sprintf("Try %d different cuisines", next),
			Icon:        "🏆",
		},
		Remaining: next - tried,
	}
}
