// Package types provides type definitions for structured data used throughout the travel-planner system.
package types

// TripData represents the ephemeral inputs to a cost estimate,
// constructed per planning request.
type TripData struct {
	Destinations []string `json:"destinations"`
	Experiences  []string `json:"experiences"`
	Duration     int      `json:"duration"` // days
	Travelers    int      `json:"travelers"`
}

// DestinationPlan represents the per-destination slice of a trip plan.
// SuggestedDuration is in days at half-day granularity.
type DestinationPlan struct {
	Destination       string       `json:"destination"`
	SuggestedDuration float64      `json:"suggested_duration"`
	Experiences       []string     `json:"experiences"`
	BestTimeToVisit   string       `json:"best_time_to_visit"`
	EstimatedCost     CostEstimate `json:"estimated_cost"`
}

// TripPlan represents a complete plan for a multi-destination trip.
// TravelTimes keys are route segment keys of the form "<from> -> <to>",
// values are estimated hours. Built fresh per request; never persisted.
type TripPlan struct {
	Destinations   []DestinationPlan  `json:"destinations"`
	TotalDuration  float64            `json:"total_duration"`
	TotalCost      CostEstimate       `json:"total_cost"`
	SuggestedRoute []string           `json:"suggested_route"`
	TravelTimes    map[string]float64 `json:"travel_times"`
}
