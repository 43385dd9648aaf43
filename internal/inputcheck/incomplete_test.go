package inputcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/travel-planner/internal/types"
)

func completeInput() types.TravelInputData {
	return types.TravelInputData{
		Destinations: []string{"Kyoto, Japan"},
		Experiences:  []string{"temple visits and tea ceremonies"},
		Preferences: &types.TravelPreferences{
			TravelStyle: types.StyleMidRange,
			Interests:   []string{"history"},
			BudgetRange: &types.CostRange{Min: 1000, Max: 4000, Currency: "USD"},
		},
	}
}

func TestDetectIncompleteInput_CompleteInput(t *testing.T) {
	report := DetectIncompleteInput(completeInput())

	assert.False(t, report.NeedsFollowUp)
	assert.Empty(t, report.IncompleteAreas)
	assert.Empty(t, report.Suggestions)
}

func TestDetectIncompleteInput_VagueDestination(t *testing.T) {
	input := completeInput()
	input.Destinations = []string{"somewhere in Europe"}

	report := DetectIncompleteInput(input)

	assert.True(t, report.NeedsFollowUp)
	assert.Contains(t, report.IncompleteAreas, "destinations")
	assert.Len(t, report.Suggestions, len(report.IncompleteAreas))
}

func TestDetectIncompleteInput_VagueExperienceNeedsShortText(t *testing.T) {
	input := completeInput()

	// Short and vague: flagged.
	input.Experiences = []string{"fun stuff"}
	assert.Contains(t, DetectIncompleteInput(input).IncompleteAreas, "experiences")

	// Same vague word inside a long, detailed entry: not flagged.
	input.Experiences = []string{"fun cooking classes with local chefs"}
	assert.NotContains(t, DetectIncompleteInput(input).IncompleteAreas, "experiences")
}

func TestDetectIncompleteInput_MissingPreferenceAreas(t *testing.T) {
	input := types.TravelInputData{
		Destinations: []string{"Kyoto, Japan"},
		Experiences:  []string{"temple visits and tea ceremonies"},
	}

	report := DetectIncompleteInput(input)

	assert.True(t, report.NeedsFollowUp)
	assert.Contains(t, report.IncompleteAreas, "travel_style")
	assert.Contains(t, report.IncompleteAreas, "interests")
	assert.Contains(t, report.IncompleteAreas, "budget")
}

func TestDetectIncompleteInput_ZeroBudgetCountsAsMissing(t *testing.T) {
	input := completeInput()
	input.Preferences.BudgetRange = &types.CostRange{Currency: "USD"}

	report := DetectIncompleteInput(input)
	assert.Contains(t, report.IncompleteAreas, "budget")
}

func TestDetectIncompleteInput_FixedTimeframeWithoutDates(t *testing.T) {
	input := completeInput()
	input.Timeframe = &types.Timeframe{Flexibility: types.FlexibilityFixed}

	report := DetectIncompleteInput(input)
	assert.Contains(t, report.IncompleteAreas, "dates")

	// Flexible timeframes do not require dates.
	input.Timeframe = &types.Timeframe{Flexibility: types.FlexibilityFlexible}
	report = DetectIncompleteInput(input)
	assert.NotContains(t, report.IncompleteAreas, "dates")
}

func TestGenerateFollowUpQuestions_Deterministic(t *testing.T) {
	input := types.TravelInputData{
		Destinations: []string{"Europe", "Kyoto, Japan", "somewhere in asia"},
		Experiences:  []string{"fun"},
	}

	first := GenerateFollowUpQuestions(input)
	second := GenerateFollowUpQuestions(input)
	assert.Equal(t, first, second, "regeneration from the same input must be idempotent")
}

func TestGenerateFollowUpQuestions_DestinationTemplates(t *testing.T) {
	input := types.TravelInputData{
		Destinations: []string{"Europe", "somewhere in asia", "anywhere warm"},
		Experiences:  []string{"temple visits and tea ceremonies"},
		Preferences: &types.TravelPreferences{
			TravelStyle: types.StyleBudget,
			BudgetRange: &types.CostRange{Min: 500, Max: 2000, Currency: "USD"},
		},
	}

	questions := GenerateFollowUpQuestions(input)
	require.Len(t, questions, 3)

	assert.Equal(t, "destination-0", questions[0].ID)
	assert.Contains(t, questions[0].Question, "Europe")
	assert.Equal(t, types.QuestionMultipleChoice, questions[0].Type)
	assert.NotEmpty(t, questions[0].Options)

	assert.Equal(t, "destination-1", questions[1].ID)
	assert.Contains(t, questions[1].Question, "Asia")
	assert.NotEqual(t, questions[0].Options, questions[1].Options, "Europe and Asia templates differ")

	// Vague but neither Europe nor Asia: generic narrowing template.
	assert.Equal(t, "destination-2", questions[2].ID)
	assert.Contains(t, questions[2].Question, "anywhere warm")
}

func TestGenerateFollowUpQuestions_MissingBudgetAndStyle(t *testing.T) {
	input := types.TravelInputData{
		Destinations: []string{"Kyoto, Japan"},
		Experiences:  []string{"temple visits and tea ceremonies"},
	}

	questions := GenerateFollowUpQuestions(input)
	require.Len(t, questions, 2)
	assert.Equal(t, "budget-missing", questions[0].ID)
	assert.Equal(t, types.QuestionRange, questions[0].Type)
	assert.Equal(t, "travel-style-missing", questions[1].ID)
}

func TestGenerateFollowUpQuestions_CompleteInputAsksNothing(t *testing.T) {
	assert.Empty(t, GenerateFollowUpQuestions(completeInput()))
}
