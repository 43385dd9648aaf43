// Package types provides type definitions for structured data used throughout the travel-planner system.
package types

import "time"

// DefaultCurrency is the only currency the estimator produces.
// Currency conversion is out of scope.
const DefaultCurrency = "USD"

// CostRange represents a min/max cost band in a single currency.
// Invariant: Min <= Max and both are non-negative after computation.
type CostRange struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

// CostEstimate represents a four-category cost breakdown plus a total.
// Invariant: Total.Min equals the sum of the component mins, likewise for Max.
type CostEstimate struct {
	Transportation CostRange `json:"transportation"`
	Accommodation  CostRange `json:"accommodation"`
	Activities     CostRange `json:"activities"`
	Food           CostRange `json:"food"`
	Total          CostRange `json:"total"`
	Currency       string    `json:"currency"`
	LastUpdated    time.Time `json:"last_updated"`
}
