// Package types provides type definitions for structured data used throughout the travel-planner system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// PlanTripRequest represents the request body for trip planning.
type PlanTripRequest struct {
	Destinations []string           `json:"destinations" validate:"required,min=1,dive,min=1"`
	Preferences  *TravelPreferences `json:"preferences,omitempty"`
}

// EstimateCostsRequest represents the request body for a cost estimate.
type EstimateCostsRequest struct {
	Trip        TripData     `json:"trip"`
	Home        LocationData `json:"home"`
	TravelStyle TravelStyle  `json:"travel_style,omitempty"`
}

// AnalyzeInputResponse bundles every validator output for a travel input.
type AnalyzeInputResponse struct {
	Validation        ValidationResult     `json:"validation"`
	Incompleteness    IncompletenessReport `json:"incompleteness"`
	FollowUpQuestions []FollowUpQuestion   `json:"follow_up_questions"`
	CompletenessScore int                  `json:"completeness_score"`
}

// Validate validates the PlanTripRequest using the validator.
func (r *PlanTripRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
