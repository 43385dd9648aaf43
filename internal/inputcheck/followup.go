// Package inputcheck analyzes raw travel-input records.
package inputcheck

import (
	"fmt"
	"strings"

	"github.com/jonathan/travel-planner/internal/types"
)

// GenerateFollowUpQuestions emits clarifying questions for the vague or
// missing parts of a travel input. IDs are derived from the triggering field
// and index, so regenerating from the same input yields identical questions.
func GenerateFollowUpQuestions(input types.TravelInputData) []types.FollowUpQuestion {
	var questions []types.FollowUpQuestion

	for i, dest := range input.Destinations {
		if !isVagueDestination(dest) {
			continue
		}
		questions = append(questions, destinationQuestion(i, dest))
	}

	if anyVagueExperience(input.Experiences) {
		questions = append(questions, types.FollowUpQuestion{
			ID:       "experiences-clarify",
			Question: "What kind of activities do you enjoy most when traveling?",
			Type:     types.QuestionMultipleChoice,
			Options: []string{
				"Museums and historical sites",
				"Food and local markets",
				"Outdoor activities and nature",
				"Nightlife and entertainment",
				"Relaxation and wellness",
			},
			Context: "experiences",
		})
	}

	prefs := input.Preferences
	if prefs == nil || prefs.BudgetRange == nil || (prefs.BudgetRange.Min == 0 && prefs.BudgetRange.Max == 0) {
		questions = append(questions, types.FollowUpQuestion{
			ID:       "budget-missing",
			Question: "What is your approximate budget per person for this trip?",
			Type:     types.QuestionRange,
			Options: []string{
				"Under $1,000",
				"$1,000 - $3,000",
				"$3,000 - $7,000",
				"Over $7,000",
			},
			Context: "budget",
		})
	}

	if prefs == nil || prefs.TravelStyle == "" {
		questions = append(questions, types.FollowUpQuestion{
			ID:       "travel-style-missing",
			Question: "How would you describe your travel style?",
			Type:     types.QuestionMultipleChoice,
			Options:  []string{"budget", "mid-range", "luxury"},
			Context:  "travel_style",
		})
	}

	return questions
}

// destinationQuestion builds the clarifying question for one vague
// destination. Europe and Asia get dedicated templates; everything else a
// generic narrowing question.
func destinationQuestion(index int, dest string) types.FollowUpQuestion {
	q := types.FollowUpQuestion{
		ID:      fmt.Sprintf("destination-%d", index),
		Type:    types.QuestionMultipleChoice,
		Context: dest,
	}

	lowered := strings.ToLower(dest)
	switch {
	case strings.Contains(lowered, "europe"):
		q.Question = "Which part of Europe interests you most?"
		q.Options = []string{
			"Western Europe (France, Germany, Netherlands)",
			"Southern Europe (Italy, Spain, Greece)",
			"Northern Europe (Scandinavia, Iceland)",
			"Eastern Europe (Poland, Czech Republic, Hungary)",
		}
	case strings.Contains(lowered, "asia"):
		q.Question = "Which part of Asia interests you most?"
		q.Options = []string{
			"East Asia (Japan, Korea, China)",
			"Southeast Asia (Thailand, Vietnam, Indonesia)",
			"South Asia (India, Nepal, Sri Lanka)",
		}
	default:
		q.Question = fmt.Sprintf("Could you narrow down where in %q you would like to go?", strings.TrimSpace(dest))
		q.Options = []string{
			"A specific country",
			"A few specific cities",
			"A themed route",
			"Not sure yet",
		}
	}
	return q
}
