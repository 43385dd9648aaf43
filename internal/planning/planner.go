// Package planning turns destination lists and preferences into trip plans.
//
// PlanTrip is a single-pass, side-effect-free transform: per-destination
// plans, a region-grouped visiting order, pairwise travel-time estimates and
// an aggregate cost. No state is kept between calls.
package planning

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/travel-planner/internal/clock"
	"github.com/jonathan/travel-planner/internal/estimation"
	"github.com/jonathan/travel-planner/internal/region"
	"github.com/jonathan/travel-planner/internal/types"
)

// PlanTrip builds a complete trip plan for the given destinations.
// Fails with InvalidInputError when destinations is empty.
func PlanTrip(destinations []string, prefs types.TravelPreferences, clk clock.Clock) (types.TripPlan, error) {
	if len(destinations) == 0 {
		return types.TripPlan{}, &InvalidInputError{Field: "destinations", Message: "at least one destination is required"}
	}

	experiences := prefs.Interests
	if len(experiences) == 0 {
		experiences = defaultExperiences
	}
	style := prefs.TravelStyle
	if style == "" {
		style = types.StyleMidRange
	}

	plans := make([]types.DestinationPlan, 0, len(destinations))
	estimates := make([]types.CostEstimate, 0, len(destinations))
	totalDuration := 0.0
	for _, dest := range destinations {
		duration := CalculateDestinationDuration(experiences)
		est := estimation.EstimateDestination(dest, duration, experiences, style, clk)
		plans = append(plans, types.DestinationPlan{
			Destination:       dest,
			SuggestedDuration: duration,
			Experiences:       experiences,
			BestTimeToVisit:   bestTimeByRegion[region.Classify(dest)],
			EstimatedCost:     est,
		})
		estimates = append(estimates, est)
		totalDuration += duration
	}

	route := OptimizeRoute(destinations)
	if len(destinations) > 1 {
		// One buffer day per hop between destinations.
		totalDuration += float64(len(destinations) - 1)
	}

	return types.TripPlan{
		Destinations:   plans,
		TotalDuration:  totalDuration,
		TotalCost:      estimation.SumEstimates(estimates, clk),
		SuggestedRoute: route,
		TravelTimes:    estimateTravelTimes(route),
	}, nil
}

// CalculateDestinationDuration suggests a stay length in days for a set of
// experiences: a 3-day base plus a per-experience increment from the keyword
// table (1 day for unmatched experiences), rounded up to the nearest half
// day. Adding an experience never reduces the suggestion.
func CalculateDestinationDuration(experiences []string) float64 {
	days := baseDestinationDays
	for _, exp := range experiences {
		days += experienceDays(exp)
	}
	// Round up to half-day granularity.
	days = math.Ceil(days*2) / 2
	if days < baseDestinationDays {
		days = baseDestinationDays
	}
	return days
}

// OptimizeRoute orders destinations by grouping them per region in the fixed
// Priority order and concatenating the groups. This is the complete routing
// heuristic; no intra-group ordering is attempted. A single destination is
// returned unchanged.
func OptimizeRoute(destinations []string) []string {
	if len(destinations) <= 1 {
		return append([]string(nil), destinations...)
	}

	groups := make(map[region.Region][]string, len(region.Priority))
	for _, dest := range destinations {
		r := region.Classify(dest)
		groups[r] = append(groups[r], dest)
	}

	route := make([]string, 0, len(destinations))
	for _, r := range region.Priority {
		route = append(route, groups[r]...)
	}
	return route
}

// estimateTravelTimes estimates hours for each consecutive pair of the
// optimized route. Two city-like names read as a short hop, anything else as
// a long one (a domestic-vs-international proxy).
func estimateTravelTimes(route []string) map[string]float64 {
	times := make(map[string]float64, len(route))
	for i := 0; i < len(route)-1; i++ {
		from, to := route[i], route[i+1]
		hours := longHopHours
		if cityLike(from) && cityLike(to) {
			hours = shortHopHours
		}
		times[SegmentKey(from, to)] = hours
	}
	return times
}

// SegmentKey builds the travel-time map key for a route segment.
func SegmentKey(from, to string) string {
	return fmt.Sprintf("%s -> %s", from, to)
}

func cityLike(name string) bool {
	lowered := strings.ToLower(name)
	for _, token := range cityLikeTokens {
		if strings.Contains(lowered, token) {
			return true
		}
	}
	return false
}

// experienceDays returns the stay increment for one experience.
func experienceDays(experience string) float64 {
	lowered := strings.ToLower(experience)
	for _, entry := range experienceDurations {
		if strings.Contains(lowered, entry.keyword) {
			return entry.days
		}
	}
	return defaultExperienceDays
}
