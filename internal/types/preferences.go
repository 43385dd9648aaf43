// Package types provides type definitions for structured data used throughout the travel-planner system.
package types

// TravelStyle categorizes how a traveler spends.
type TravelStyle string

// Known travel styles. StyleAdventure is accepted in stored preferences but
// carries no cost multipliers of its own; it prices as mid-range.
const (
	StyleBudget    TravelStyle = "budget"
	StyleMidRange  TravelStyle = "mid-range"
	StyleLuxury    TravelStyle = "luxury"
	StyleAdventure TravelStyle = "adventure"
)

// TravelDuration is a coarse trip-length preference.
type TravelDuration string

// Known travel duration buckets.
const (
	DurationShort  TravelDuration = "short"
	DurationMedium TravelDuration = "medium"
	DurationLong   TravelDuration = "long"
)

// TravelPreferences represents a user's saved travel preferences.
// Created and edited by the caller; read-only within the core.
type TravelPreferences struct {
	BudgetRange    *CostRange     `json:"budget_range,omitempty"`
	TravelStyle    TravelStyle    `json:"travel_style,omitempty"`
	Interests      []string       `json:"interests,omitempty"`
	TravelDuration TravelDuration `json:"travel_duration,omitempty"`
	GroupSize      int            `json:"group_size,omitempty"`
	HomeLocation   *LocationData  `json:"home_location,omitempty"`
}
