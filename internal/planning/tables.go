// Package planning turns destination lists and preferences into trip plans.
package planning

import "github.com/jonathan/travel-planner/internal/region"

// Default experiences applied when preferences carry no interests.
var defaultExperiences = []string{"sightseeing", "local culture"}

// experienceDuration maps an experience keyword to the days it adds to a
// destination's suggested stay. Evaluated in order; the first matching
// keyword wins per experience, and unmatched experiences add a full day.
type experienceDuration struct {
	keyword string
	days    float64
}

var experienceDurations = []experienceDuration{
	{"trekking", 3},
	{"safari", 2},
	{"climbing", 2},
	{"skiing", 2},
	{"diving", 1.5},
	{"hiking", 1},
	{"beach", 1},
	{"museum", 0.5},
	{"gallery", 0.5},
	{"tour", 0.5},
	{"shopping", 0.5},
	{"food", 0.5},
}

const (
	baseDestinationDays   = 3.0
	defaultExperienceDays = 1.0
)

// bestTimeByRegion holds the fixed best-time-to-visit strings.
var bestTimeByRegion = map[region.Region]string{
	region.Europe:   "May to September",
	region.Asia:     "October to April",
	region.Americas: "December to April",
	region.Africa:   "May to October",
	region.Oceania:  "December to February",
	region.Other:    "Year-round",
}

// Travel-time heuristics for consecutive route segments, in hours.
// A segment between two city-like names reads as a short (domestic-style)
// hop; everything else as a long (international-style) one.
const (
	shortHopHours = 4.0
	longHopHours  = 8.0
)

var cityLikeTokens = []string{"city", "town", "village"}
