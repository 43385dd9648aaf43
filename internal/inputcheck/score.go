// Package inputcheck analyzes raw travel-input records.
package inputcheck

import (
	"strings"

	"github.com/jonathan/travel-planner/internal/types"
)

// Completeness score weights. Categories: destinations 20, experiences 20,
// preferences 40 (10 per facet), timeframe 20.
const (
	presencePoints    = 15
	specificityBonus  = 5
	preferenceFacet   = 10
	timeframePresence = 10
	fixedDatesBonus   = 10
	flexibilityBonus  = 5

	// minSpecificLen is the shortest trimmed entry that can earn the
	// specificity bonus; one- or two-letter placeholders do not count.
	minSpecificLen = 3
)

// CompletenessScore rates how plannable a travel input is, from 0 to 100.
//
// The denominator is fixed at 100: absent optional sections score zero rather
// than shrinking the applicable maximum, so supplying more information never
// lowers the score and omitting a section never raises it.
func CompletenessScore(input types.TravelInputData) int {
	score := 0

	if len(input.Destinations) > 0 {
		score += presencePoints
		if anySpecific(input.Destinations, isVagueDestination) {
			score += specificityBonus
		}
	}

	if len(input.Experiences) > 0 {
		score += presencePoints
		if anySpecific(input.Experiences, isVagueExperience) {
			score += specificityBonus
		}
	}

	if prefs := input.Preferences; prefs != nil {
		if prefs.TravelStyle != "" {
			score += preferenceFacet
		}
		if len(prefs.Interests) > 0 {
			score += preferenceFacet
		}
		if b := prefs.BudgetRange; b != nil && b.Min > 0 && b.Max > b.Min {
			score += preferenceFacet
		}
		if prefs.GroupSize > 0 && prefs.TravelDuration != "" {
			score += preferenceFacet
		}
	}

	if tf := input.Timeframe; tf != nil {
		score += timeframePresence
		if tf.Flexibility == types.FlexibilityFixed && tf.StartDate != nil && tf.EndDate != nil {
			score += fixedDatesBonus
		} else if tf.Flexibility != "" && tf.Flexibility != types.FlexibilityFlexible {
			score += flexibilityBonus
		}
	}

	return score
}

// anySpecific reports whether at least one entry is both non-vague and long
// enough to be meaningful.
func anySpecific(entries []string, isVague func(string) bool) bool {
	for _, entry := range entries {
		trimmed := strings.TrimSpace(entry)
		if len(trimmed) >= minSpecificLen && !isVague(trimmed) {
			return true
		}
	}
	return false
}
