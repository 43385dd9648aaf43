// Package estimation produces multi-category trip cost estimates.
//
// All functions are pure transforms over immutable inputs apart from the
// injected clock used for the LastUpdated stamp. Estimates carry four
// categories (transportation, accommodation, activities, food) plus a total
// that always equals the component-wise sum.
package estimation

import (
	"math"

	"github.com/jonathan/travel-planner/internal/clock"
	"github.com/jonathan/travel-planner/internal/region"
	"github.com/jonathan/travel-planner/internal/types"
)

// fixedTransportBase is the per-destination transportation base used by the
// planner's per-destination model, before style scaling and widening.
const fixedTransportBase = 800.0

// EstimateCosts estimates the full cost of a trip from a home location.
// Fails with InvalidInputError when the trip has no destinations or the home
// location is empty; no other failure mode exists since every lookup has a
// default fallback.
func EstimateCosts(trip types.TripData, home types.LocationData, clk clock.Clock) (types.CostEstimate, error) {
	if len(trip.Destinations) == 0 {
		return types.CostEstimate{}, &InvalidInputError{Field: "destinations", Message: "at least one destination is required"}
	}
	if home.IsZero() {
		return types.CostEstimate{}, &InvalidInputError{Field: "home", Message: "home location is required"}
	}

	transportation := estimateTransportation(trip.Destinations, home)

	// Days are split evenly across destinations, rounded up.
	days := math.Ceil(float64(trip.Duration) / float64(len(trip.Destinations)))
	expMultiplier := experienceMultiplier(trip.Experiences)

	var acc, act, food costBand
	for _, dest := range trip.Destinations {
		base := dailyBaseFor(region.Classify(dest))
		acc.min += base.accommodation * days * 0.8
		acc.max += base.accommodation * days * 1.2
		act.min += base.activities * days * expMultiplier * 0.7
		act.max += base.activities * days * expMultiplier * 1.3
		food.min += base.food * days * 0.75
		food.max += base.food * days * 1.25
	}

	est := types.CostEstimate{
		Transportation: roundRange(transportation),
		Accommodation:  roundRange(acc),
		Activities:     roundRange(act),
		Food:           roundRange(food),
		Currency:       types.DefaultCurrency,
		LastUpdated:    clk.Now(),
	}
	est.Total = sumComponents(est)
	return est, nil
}

// EstimateDestination prices a single destination for the planner: a fixed
// transportation base scaled by travel style and widened to [0.8, 1.3], plus
// the regional daily costs over the suggested stay, style-adjusted.
func EstimateDestination(destination string, days float64, experiences []string, style types.TravelStyle, clk clock.Clock) types.CostEstimate {
	base := dailyBaseFor(region.Classify(destination))
	expMultiplier := experienceMultiplier(experiences)
	factors := styleFactorsFor(style)

	transportFactor, ok := transportStyleFactor[style]
	if !ok {
		transportFactor = 1.0
	}
	transport := fixedTransportBase * transportFactor

	est := types.CostEstimate{
		Transportation: roundRange(costBand{transport * 0.8, transport * 1.3}),
		Accommodation: roundRange(costBand{
			base.accommodation * days * 0.8 * factors.accommodation,
			base.accommodation * days * 1.2 * factors.accommodation,
		}),
		Activities: roundRange(costBand{
			base.activities * days * expMultiplier * 0.7 * factors.activities,
			base.activities * days * expMultiplier * 1.3 * factors.activities,
		}),
		Food: roundRange(costBand{
			base.food * days * 0.75 * factors.food,
			base.food * days * 1.25 * factors.food,
		}),
		Currency:    types.DefaultCurrency,
		LastUpdated: clk.Now(),
	}
	est.Total = sumComponents(est)
	return est
}

// ApplyTravelStyleAdjustments rescales each category of an estimate by the
// style's multiplier table and recomputes the total, returning a new
// estimate. Mid-range (and unknown styles) return identical values. The
// input is never mutated.
func ApplyTravelStyleAdjustments(est types.CostEstimate, style types.TravelStyle) types.CostEstimate {
	factors := styleFactorsFor(style)

	out := est
	out.Transportation = scaleRange(est.Transportation, factors.transportation)
	out.Accommodation = scaleRange(est.Accommodation, factors.accommodation)
	out.Activities = scaleRange(est.Activities, factors.activities)
	out.Food = scaleRange(est.Food, factors.food)
	out.Total = sumComponents(out)
	return out
}

// SumEstimates aggregates several estimates component-wise into one.
// The total keeps the sum-of-components invariant.
func SumEstimates(estimates []types.CostEstimate, clk clock.Clock) types.CostEstimate {
	out := types.CostEstimate{
		Transportation: types.CostRange{Currency: types.DefaultCurrency},
		Accommodation:  types.CostRange{Currency: types.DefaultCurrency},
		Activities:     types.CostRange{Currency: types.DefaultCurrency},
		Food:           types.CostRange{Currency: types.DefaultCurrency},
		Currency:       types.DefaultCurrency,
		LastUpdated:    clk.Now(),
	}
	for _, est := range estimates {
		out.Transportation = addRanges(out.Transportation, est.Transportation)
		out.Accommodation = addRanges(out.Accommodation, est.Accommodation)
		out.Activities = addRanges(out.Activities, est.Activities)
		out.Food = addRanges(out.Food, est.Food)
	}
	out.Total = sumComponents(out)
	return out
}

// estimateTransportation sums flight legs home -> first destination,
// consecutive destination pairs, and last destination -> home. Each leg's
// base band comes from the distance-category table, scaled by the arrival
// location's popularity and widened asymmetrically.
func estimateTransportation(destinations []string, home types.LocationData) costBand {
	homeName := home.DisplayName()
	stops := make([]string, 0, len(destinations)+2)
	stops = append(stops, homeName)
	stops = append(stops, destinations...)
	stops = append(stops, homeName)

	var total costBand
	for i := 0; i < len(stops)-1; i++ {
		from, to := stops[i], stops[i+1]
		base := flightBase[legCategoryFor(from, to)]
		pop := popularityMultiplier(to)
		total.min += base.min * pop * 0.9
		total.max += base.max * pop * 1.1
	}
	return total
}

// legCategoryFor classifies a flight leg by distance: domestic when both ends
// share a country, regional when both classify to the same region, otherwise
// intercontinental.
func legCategoryFor(from, to string) legCategory {
	if region.SameCountry(from, to) {
		return legDomestic
	}
	if region.Classify(from) == region.Classify(to) {
		return legRegional
	}
	return legIntercontinental
}

// roundRange rounds a band to whole currency units. Rounding happens once per
// category total, not per leg, to avoid cumulative bias.
func roundRange(b costBand) types.CostRange {
	r := types.CostRange{
		Min:      math.Round(b.min),
		Max:      math.Round(b.max),
		Currency: types.DefaultCurrency,
	}
	if r.Min < 0 {
		r.Min = 0
	}
	if r.Max < r.Min {
		r.Max = r.Min
	}
	return r
}

func scaleRange(r types.CostRange, factor float64) types.CostRange {
	return types.CostRange{
		Min:      math.Round(r.Min * factor),
		Max:      math.Round(r.Max * factor),
		Currency: r.Currency,
	}
}

func addRanges(a, b types.CostRange) types.CostRange {
	return types.CostRange{Min: a.Min + b.Min, Max: a.Max + b.Max, Currency: a.Currency}
}

// sumComponents recomputes the total band from the four categories.
func sumComponents(est types.CostEstimate) types.CostRange {
	return types.CostRange{
		Min:      est.Transportation.Min + est.Accommodation.Min + est.Activities.Min + est.Food.Min,
		Max:      est.Transportation.Max + est.Accommodation.Max + est.Activities.Max + est.Food.Max,
		Currency: types.DefaultCurrency,
	}
}
