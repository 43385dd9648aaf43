package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/travel-planner/internal/clock"
	"github.com/jonathan/travel-planner/internal/estimation"
	"github.com/jonathan/travel-planner/internal/observability"
	"github.com/jonathan/travel-planner/internal/types"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate trip costs from a home location",
	Long:  "Estimates transportation, accommodation, activity and food costs for a trip using regional daily rates and flight distance categories. Prints the estimate as JSON.",
	RunE:  runEstimate,
}

var (
	estimateDestinations []string
	estimateExperiences  []string
	estimateDays         int
	estimateTravelers    int
	estimateHomeCity     string
	estimateHomeCountry  string
	estimateStyle        string
	estimateVerbose      bool
)

func init() {
	estimateCmd.Flags().StringSliceVarP(&estimateDestinations, "destination", "d", nil, "Destination, e.g. \"Paris, France\" (repeatable, required)")
	estimateCmd.Flags().StringSliceVar(&estimateExperiences, "experience", nil, "Planned experience (repeatable)")
	estimateCmd.Flags().IntVar(&estimateDays, "days", 0, "Total trip duration in days (required)")
	estimateCmd.Flags().IntVar(&estimateTravelers, "travelers", 1, "Number of travelers")
	estimateCmd.Flags().StringVar(&estimateHomeCity, "home-city", "", "Home city (required)")
	estimateCmd.Flags().StringVar(&estimateHomeCountry, "home-country", "", "Home country (required)")
	estimateCmd.Flags().StringVar(&estimateStyle, "style", "", "Travel style adjustment: budget, mid-range or luxury")
	estimateCmd.Flags().BoolVarP(&estimateVerbose, "verbose", "v", false, "Print a human-readable summary to stderr")

	if err := estimateCmd.MarkFlagRequired("destination"); err != nil {
		panic(fmt.Sprintf("failed to mark destination flag as required: %v", err))
	}
	if err := estimateCmd.MarkFlagRequired("days"); err != nil {
		panic(fmt.Sprintf("failed to mark days flag as required: %v", err))
	}
	if err := estimateCmd.MarkFlagRequired("home-city"); err != nil {
		panic(fmt.Sprintf("failed to mark home-city flag as required: %v", err))
	}
	if err := estimateCmd.MarkFlagRequired("home-country"); err != nil {
		panic(fmt.Sprintf("failed to mark home-country flag as required: %v", err))
	}

	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(_ *cobra.Command, _ []string) error {
	if estimateDays <= 0 {
		return fmt.Errorf("days must be greater than 0, got %d", estimateDays)
	}

	trip := types.TripData{
		Destinations: estimateDestinations,
		Experiences:  estimateExperiences,
		Duration:     estimateDays,
		Travelers:    estimateTravelers,
	}
	home := types.LocationData{
		City:    estimateHomeCity,
		Country: estimateHomeCountry,
	}

	est, err := estimation.EstimateCosts(trip, home, clock.System{})
	if err != nil {
		return fmt.Errorf("failed to estimate costs: %w", err)
	}
	if estimateStyle != "" {
		est = estimation.ApplyTravelStyleAdjustments(est, types.TravelStyle(estimateStyle))
	}

	if estimateVerbose {
		observability.NewPrinter(os.Stderr).PrintCostEstimate(&est)
	}

	return printJSON(os.Stdout, est)
}
