// Package inputcheck analyzes raw travel-input records.
package inputcheck

import (
	"strings"

	"github.com/jonathan/travel-planner/internal/types"
)

// vagueDestinationTerms flag destinations too broad to plan against.
var vagueDestinationTerms = []string{
	"europe", "asia", "africa", "america", "world", "everywhere", "anywhere",
}

// vagueExperienceTerms flag experiences that describe a mood rather than an
// activity. Only short entries count: a longer sentence containing one of
// these usually carries enough detail already.
var vagueExperienceTerms = []string{
	"fun", "adventure", "culture", "relaxing", "nice", "interesting",
	"stuff", "things", "anything", "everything",
}

const vagueExperienceMaxLen = 15

// Incomplete-area names. Each maps to exactly one suggestion.
const (
	areaDestinations = "destinations"
	areaExperiences  = "experiences"
	areaTravelStyle  = "travel_style"
	areaInterests    = "interests"
	areaBudget       = "budget"
	areaDates        = "dates"
)

// DetectIncompleteInput flags vague or missing areas of a travel input and
// pairs each with a suggestion. Purely heuristic; never fails.
func DetectIncompleteInput(input types.TravelInputData) types.IncompletenessReport {
	var areas []string
	var suggestions []string

	add := func(area, suggestion string) {
		areas = append(areas, area)
		suggestions = append(suggestions, suggestion)
	}

	if anyVagueDestination(input.Destinations) {
		add(areaDestinations, "Name specific cities or countries instead of broad regions")
	}
	if anyVagueExperience(input.Experiences) {
		add(areaExperiences, "Describe concrete activities instead of general moods")
	}

	prefs := input.Preferences
	if prefs == nil || prefs.TravelStyle == "" {
		add(areaTravelStyle, "Pick a travel style (budget, mid-range, luxury) so estimates match how you travel")
	}
	if prefs == nil || len(prefs.Interests) == 0 {
		add(areaInterests, "List a few interests to tailor suggested experiences")
	}
	if prefs == nil || prefs.BudgetRange == nil || (prefs.BudgetRange.Min == 0 && prefs.BudgetRange.Max == 0) {
		add(areaBudget, "Set an approximate budget range to keep the plan realistic")
	}

	if tf := input.Timeframe; tf != nil && tf.Flexibility == types.FlexibilityFixed &&
		(tf.StartDate == nil || tf.EndDate == nil) {
		add(areaDates, "Fixed dates need explicit start and end dates")
	}

	return types.IncompletenessReport{
		NeedsFollowUp:   len(areas) > 0,
		IncompleteAreas: areas,
		Suggestions:     suggestions,
	}
}

func isVagueDestination(dest string) bool {
	lowered := strings.ToLower(strings.TrimSpace(dest))
	for _, term := range vagueDestinationTerms {
		if strings.Contains(lowered, term) {
			return true
		}
	}
	return false
}

func anyVagueDestination(destinations []string) bool {
	for _, dest := range destinations {
		if isVagueDestination(dest) {
			return true
		}
	}
	return false
}

func isVagueExperience(exp string) bool {
	trimmed := strings.TrimSpace(exp)
	if len(trimmed) >= vagueExperienceMaxLen {
		return false
	}
	lowered := strings.ToLower(trimmed)
	for _, term := range vagueExperienceTerms {
		if strings.Contains(lowered, term) {
			return true
		}
	}
	return false
}

func anyVagueExperience(experiences []string) bool {
	for _, exp := range experiences {
		if isVagueExperience(exp) {
			return true
		}
	}
	return false
}
