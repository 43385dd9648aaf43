package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/travel-planner/internal/clock"
	"github.com/jonathan/travel-planner/internal/observability"
	"github.com/jonathan/travel-planner/internal/planning"
	"github.com/jonathan/travel-planner/internal/types"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build a trip plan for a list of destinations",
	Long:  "Builds a per-destination itinerary with suggested durations, a region-grouped route, travel time estimates and a cost estimate. Prints the plan as JSON.",
	RunE:  runPlan,
}

var (
	planDestinations []string
	planInterests    []string
	planStyle        string
	planGroupSize    int
	planVerbose      bool
)

func init() {
	planCmd.Flags().StringSliceVarP(&planDestinations, "destination", "d", nil, "Destination, e.g. \"Paris, France\" (repeatable, required)")
	planCmd.Flags().StringSliceVar(&planInterests, "interest", nil, "Interest used as a planned experience (repeatable)")
	planCmd.Flags().StringVar(&planStyle, "style", "", "Travel style: budget, mid-range or luxury")
	planCmd.Flags().IntVar(&planGroupSize, "group-size", 0, "Number of travelers")
	planCmd.Flags().BoolVarP(&planVerbose, "verbose", "v", false, "Print a human-readable summary to stderr")

	if err := planCmd.MarkFlagRequired("destination"); err != nil {
		panic(fmt.Sprintf("failed to mark destination flag as required: %v", err))
	}

	rootCmd.AddCommand(planCmd)
}

func runPlan(_ *cobra.Command, _ []string) error {
	prefs := types.TravelPreferences{
		TravelStyle: types.TravelStyle(planStyle),
		Interests:   planInterests,
		GroupSize:   planGroupSize,
	}

	plan, err := planning.PlanTrip(planDestinations, prefs, clock.System{})
	if err != nil {
		return fmt.Errorf("failed to plan trip: %w", err)
	}

	if planVerbose {
		observability.NewPrinter(os.Stderr).PrintTripPlan(&plan)
	}

	return printJSON(os.Stdout, plan)
}

// printJSON writes v as indented JSON followed by a newline.
func printJSON(w *os.File, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
