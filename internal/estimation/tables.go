// Package estimation produces multi-category trip cost estimates.
package estimation

import (
	"strings"

	"github.com/jonathan/travel-planner/internal/region"
	"github.com/jonathan/travel-planner/internal/types"
)

// legCategory is a coarse distance class for a flight leg.
type legCategory string

const (
	legDomestic         legCategory = "domestic"
	legRegional         legCategory = "regional"
	legIntercontinental legCategory = "intercontinental"
)

// costBand is a raw min/max band before currency tagging.
type costBand struct {
	min float64
	max float64
}

// flightBase holds the per-leg base cost range by distance category, in USD.
var flightBase = map[legCategory]costBand{
	legDomestic:         {200, 600},
	legRegional:         {400, 1200},
	legIntercontinental: {800, 2500},
}

// Demand lists drive the per-leg popularity multiplier. High-demand
// destinations price at 1.3x, medium at 1.1x, everything else at 1.0x.
var (
	highDemandDestinations = []string{
		"paris", "london", "tokyo", "new york", "dubai", "singapore", "rome", "bali",
	}
	mediumDemandDestinations = []string{
		"barcelona", "amsterdam", "bangkok", "sydney", "los angeles",
		"prague", "lisbon", "seoul", "istanbul",
	}
)

// dailyBase holds per-person daily base costs for one region, in USD.
type dailyBase struct {
	accommodation float64
	activities    float64
	food          float64
}

// regionalDailyBase maps each region to its daily cost profile. Regions
// without an explicit row (including Other) fall back to defaultDailyBase.
var regionalDailyBase = map[region.Region]dailyBase{
	region.Europe:   {80, 45, 60},
	region.Asia:     {45, 30, 25},
	region.Americas: {70, 40, 45},
	region.Africa:   {40, 35, 25},
	region.Oceania:  {85, 50, 55},
}

var defaultDailyBase = dailyBase{60, 35, 40}

// experienceAdjustment maps keyword groups to activity-multiplier deltas.
// The first matching group wins per experience.
type experienceAdjustment struct {
	keywords []string
	delta    float64
}

var experienceAdjustments = []experienceAdjustment{
	{[]string{"luxury", "private", "helicopter"}, 0.5},
	{[]string{"safari", "diving", "climbing"}, 0.3},
	{[]string{"tour", "museum", "cultural"}, 0.1},
	{[]string{"hiking", "walking", "free"}, -0.1},
}

const (
	experienceMultiplierMin = 0.5
	experienceMultiplierMax = 3.0
)

// styleFactors are per-category multipliers for a travel style.
type styleFactors struct {
	accommodation  float64
	food           float64
	activities     float64
	transportation float64
}

// styleMultipliers holds the fixed per-style adjustment table. Styles not
// listed here (including adventure) price as mid-range.
var styleMultipliers = map[types.TravelStyle]styleFactors{
	types.StyleBudget:   {accommodation: 0.6, food: 0.7, activities: 0.5, transportation: 0.8},
	types.StyleMidRange: {accommodation: 1.0, food: 1.0, activities: 1.0, transportation: 1.0},
	types.StyleLuxury:   {accommodation: 2.5, food: 1.8, activities: 2.0, transportation: 1.5},
}

// transportStyleFactor scales the planner's fixed per-destination
// transportation base by travel style.
var transportStyleFactor = map[types.TravelStyle]float64{
	types.StyleBudget:   0.7,
	types.StyleMidRange: 1.0,
	types.StyleLuxury:   1.8,
}

// dailyBaseFor looks up the daily cost profile for a region, falling back to
// the default profile for regions without an explicit row.
func dailyBaseFor(r region.Region) dailyBase {
	if base, ok := regionalDailyBase[r]; ok {
		return base
	}
	return defaultDailyBase
}

// popularityMultiplier returns the demand multiplier for a destination name.
func popularityMultiplier(destination string) float64 {
	dest := strings.ToLower(destination)
	for _, name := range highDemandDestinations {
		if strings.Contains(dest, name) {
			return 1.3
		}
	}
	for _, name := range mediumDemandDestinations {
		if strings.Contains(dest, name) {
			return 1.1
		}
	}
	return 1.0
}

// experienceMultiplier derives the activity cost multiplier from the
// requested experiences. Each experience contributes the delta of the first
// keyword group it matches; the result is clamped to [0.5, 3.0].
func experienceMultiplier(experiences []string) float64 {
	multiplier := 1.0
	for _, exp := range experiences {
		lowered := strings.ToLower(exp)
		for _, adj := range experienceAdjustments {
			if containsAny(lowered, adj.keywords) {
				multiplier += adj.delta
				break
			}
		}
	}
	if multiplier < experienceMultiplierMin {
		return experienceMultiplierMin
	}
	if multiplier > experienceMultiplierMax {
		return experienceMultiplierMax
	}
	return multiplier
}

// styleFactorsFor returns the adjustment factors for a style, defaulting to
// mid-range for unknown styles.
func styleFactorsFor(style types.TravelStyle) styleFactors {
	if f, ok := styleMultipliers[style]; ok {
		return f
	}
	return styleMultipliers[types.StyleMidRange]
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
