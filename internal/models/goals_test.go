// Palate - Cuisine Exploration Analytics Engine
// Copyright 2026 Kedar Bhide
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Kedar-Bhide/palate-app-sub003

package models

import (
	"sort"
	"testing"
)

func TestDefaultGoals_Ascending(t *testing.T) {
	if !sort.SliceIsSorted(DefaultGoals, func(i, j int) bool {
		return DefaultGoals[i].Threshold < DefaultGoals[j].Threshold
	}) {
		t.Error("DefaultGoals must be ascending by threshold")
	}
}

func TestNextGoalFor(t *testing.T) {
	tests := []struct {
		name          string
		tried         int
		wantThreshold int
		wantRemaining int
	}{
		{"zero progress targets first goal", 0, 5, 5},
		{"three tried targets first goal", 3, 5, 2},
		{"at threshold moves to next goal", 5, 10, 5},
		{"mid table", 12, 20, 8},
		{"just under last goal", 99, 100, 1},
		{"table exhausted synthesizes next 25", 100, 125, 25},
		{"synthesis rounds up", 130, 150, 20},
		{"synthesis at multiple of 25", 150, 175, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextGoalFor(tt.tried, DefaultGoals)
			if got.Goal.Threshold != tt.wantThreshold {
				t.Errorf("NextGoalFor(%d) threshold = %d, want %d", tt.tried, got.Goal.Threshold, tt.wantThreshold)
			}
			if got.Remaining != tt.wantRemaining {
				t.Errorf("NextGoalFor(%d) remaining = %d, want %d", tt.tried, got.Remaining, tt.wantRemaining)
			}
		})
	}
}

func TestTrendDirection_String(t *testing.T) {
	tests := []struct {
		direction TrendDirection
		want      string
	}{
		{TrendIncreasing, "increasing"},
		{TrendDecreasing, "decreasing"},
		{TrendStable, "stable"},
		{TrendDirection(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.direction.String(); got != tt.want {
			t.Errorf("TrendDirection(%d).String() = %q, want %q", tt.direction, got, tt.want)
		}
	}
}
