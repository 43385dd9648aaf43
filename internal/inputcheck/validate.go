// Package inputcheck analyzes raw travel-input records: hard validation,
// vague-input detection, follow-up question generation, a completeness score
// and normalization.
//
// Nothing here returns an error: validation outcomes are carried in result
// objects whose Errors slice is the sole failure signal, leaving the boundary
// layer free to decide how to surface them.
package inputcheck

import (
	"fmt"
	"strings"

	"github.com/jonathan/travel-planner/internal/clock"
	"github.com/jonathan/travel-planner/internal/types"
)

const (
	minEntryLength = 2
	maxGroupSize   = 50
	largeGroupSize = 10
	lowBudgetMin   = 100
	highBudgetMax  = 50000
	maxTripDays    = 365
	hoursPerDay    = 24
)

// Validate checks a travel-input record against the business rules and
// accumulates errors and warnings. The record is invalid when any error is
// present; warnings never invalidate.
func Validate(input types.TravelInputData, clk clock.Clock) types.ValidationResult {
	var errs []string
	var warnings []string

	if len(input.Destinations) == 0 {
		errs = append(errs, "at least one destination is required")
	} else {
		seen := make(map[string]bool, len(input.Destinations))
		for i, dest := range input.Destinations {
			trimmed := strings.TrimSpace(dest)
			if len(trimmed) < minEntryLength {
				errs = append(errs, fmt.Sprintf("destination %d is too short", i+1))
			}
			key := strings.ToLower(trimmed)
			if seen[key] {
				warnings = append(warnings, fmt.Sprintf("duplicate destination: %s", trimmed))
			}
			seen[key] = true
		}
	}

	if len(input.Experiences) == 0 {
		errs = append(errs, "at least one experience is required")
	} else {
		for i, exp := range input.Experiences {
			if len(strings.TrimSpace(exp)) < minEntryLength {
				errs = append(errs, fmt.Sprintf("experience %d is too short", i+1))
			}
		}
	}

	if prefs := input.Preferences; prefs != nil {
		prefErrs, prefWarnings := validatePreferences(prefs)
		errs = append(errs, prefErrs...)
		warnings = append(warnings, prefWarnings...)
	}

	if tf := input.Timeframe; tf != nil {
		tfErrs, tfWarnings := validateTimeframe(tf, clk)
		errs = append(errs, tfErrs...)
		warnings = append(warnings, tfWarnings...)
	}

	return types.ValidationResult{
		IsValid:  len(errs) == 0,
		Errors:   errs,
		Warnings: warnings,
	}
}

func validatePreferences(prefs *types.TravelPreferences) (errs, warnings []string) {
	switch prefs.TravelStyle {
	case "", types.StyleBudget, types.StyleMidRange, types.StyleLuxury:
	default:
		errs = append(errs, fmt.Sprintf("travel style must be one of budget, mid-range, luxury; got %q", prefs.TravelStyle))
	}

	switch prefs.TravelDuration {
	case "", types.DurationShort, types.DurationMedium, types.DurationLong:
	default:
		errs = append(errs, fmt.Sprintf("travel duration must be one of short, medium, long; got %q", prefs.TravelDuration))
	}

	if prefs.GroupSize != 0 {
		if prefs.GroupSize < 1 || prefs.GroupSize > maxGroupSize {
			errs = append(errs, fmt.Sprintf("group size must be between 1 and %d", maxGroupSize))
		} else if prefs.GroupSize > largeGroupSize {
			warnings = append(warnings, fmt.Sprintf("group size %d is large; group bookings may need special arrangements", prefs.GroupSize))
		}
	}

	if budget := prefs.BudgetRange; budget != nil {
		if budget.Min < 0 || budget.Max < 0 {
			errs = append(errs, "budget values must be positive")
		}
		if budget.Min >= budget.Max {
			errs = append(errs, "budget minimum must be less than budget maximum")
		}
		if budget.Min >= 0 && budget.Min < lowBudgetMin {
			warnings = append(warnings, "budget minimum is very low; estimates may exceed it")
		}
		if budget.Max > highBudgetMax {
			warnings = append(warnings, "budget maximum is very high; consider narrowing it")
		}
	}

	return errs, warnings
}

func validateTimeframe(tf *types.Timeframe, clk clock.Clock) (errs, warnings []string) {
	switch tf.Flexibility {
	case "", types.FlexibilityFixed, types.FlexibilityFlexible, types.FlexibilityVeryFlexible:
	default:
		errs = append(errs, fmt.Sprintf("flexibility must be one of fixed, flexible, very-flexible; got %q", tf.Flexibility))
	}

	if tf.StartDate != nil && tf.EndDate != nil {
		start, end := *tf.StartDate, *tf.EndDate
		if !start.Before(end) {
			errs = append(errs, "start date must be before end date")
		}
		if start.Before(clk.Now()) {
			warnings = append(warnings, "start date is in the past")
		}
		days := end.Sub(start).Hours() / hoursPerDay
		if days < 1 {
			errs = append(errs, "trip duration must be at least 1 day")
		} else if days > maxTripDays {
			warnings = append(warnings, "trip duration exceeds one year")
		}
	}

	return errs, warnings
}
