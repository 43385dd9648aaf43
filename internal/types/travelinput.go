// Package types provides type definitions for structured data used throughout the travel-planner system.
package types

import "time"

// Flexibility describes how movable a trip's dates are.
type Flexibility string

// Known timeframe flexibility values.
const (
	FlexibilityFixed        Flexibility = "fixed"
	FlexibilityFlexible     Flexibility = "flexible"
	FlexibilityVeryFlexible Flexibility = "very-flexible"
)

// Timeframe represents when a trip should happen.
type Timeframe struct {
	Flexibility Flexibility `json:"flexibility,omitempty"`
	StartDate   *time.Time  `json:"start_date,omitempty"`
	EndDate     *time.Time  `json:"end_date,omitempty"`
	Duration    int         `json:"duration,omitempty"` // days
}

// TravelInputData represents a raw travel-input record before planning.
type TravelInputData struct {
	Destinations []string           `json:"destinations"`
	Experiences  []string           `json:"experiences"`
	Preferences  *TravelPreferences `json:"preferences,omitempty"`
	Timeframe    *Timeframe         `json:"timeframe,omitempty"`
}

// ValidationResult carries the outcome of validating a travel-input record.
// Errors is the sole failure signal; validation itself never fails.
type ValidationResult struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// IncompletenessReport flags vague or missing areas of a travel input
// that warrant follow-up questions.
type IncompletenessReport struct {
	NeedsFollowUp   bool     `json:"needs_follow_up"`
	IncompleteAreas []string `json:"incomplete_areas"`
	Suggestions     []string `json:"suggestions"`
}

// QuestionType classifies how a follow-up question should be answered.
type QuestionType string

// Known follow-up question types.
const (
	QuestionMultipleChoice QuestionType = "multiple-choice"
	QuestionText           QuestionType = "text"
	QuestionRange          QuestionType = "range"
	QuestionDate           QuestionType = "date"
)

// FollowUpQuestion is a single clarifying question generated from a travel input.
// IDs are deterministic for a given input, so regeneration is idempotent.
type FollowUpQuestion struct {
	ID       string       `json:"id"`
	Question string       `json:"question"`
	Type     QuestionType `json:"type"`
	Options  []string     `json:"options,omitempty"`
	Context  string       `json:"context"`
}
