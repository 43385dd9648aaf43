// Package types provides type definitions for structured data used throughout the travel-planner system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Coordinates represents a latitude/longitude pair.
// Values are heuristic placeholders; no real geocoding is performed.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// LocationData represents a resolved location. It is produced by an external
// location-resolution service and treated as immutable by the core.
type LocationData struct {
	City        string      `json:"city"`
	Country     string      `json:"country"`
	Coordinates Coordinates `json:"coordinates"`
	AirportCode string      `json:"airport_code,omitempty"`
}

// IsZero reports whether the location carries no identifying information.
func (l LocationData) IsZero() bool {
	return l.City == "" && l.Country == "" && l.AirportCode == ""
}

// DisplayName returns the "City, Country" form used for classification and leg keys.
func (l LocationData) DisplayName() string {
	switch {
	case l.City != "" && l.Country != "":
		return l.City + ", " + l.Country
	case l.City != "":
		return l.City
	default:
		return l.Country
	}
}
