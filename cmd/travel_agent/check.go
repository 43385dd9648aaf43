package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/travel-planner/internal/clock"
	"github.com/jonathan/travel-planner/internal/inputcheck"
	"github.com/jonathan/travel-planner/internal/observability"
	"github.com/jonathan/travel-planner/internal/types"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Analyze a raw travel input file",
	Long:  "Validates a travel input JSON file, detects vague or missing areas, generates follow-up questions and scores completeness. Prints the analysis as JSON.",
	RunE:  runCheck,
}

var (
	checkInputPath string
	checkVerbose   bool
)

func init() {
	checkCmd.Flags().StringVarP(&checkInputPath, "input", "i", "", "Path to a travel input JSON file (required)")
	checkCmd.Flags().BoolVarP(&checkVerbose, "verbose", "v", false, "Print a human-readable summary to stderr")

	if err := checkCmd.MarkFlagRequired("input"); err != nil {
		panic(fmt.Sprintf("failed to mark input flag as required: %v", err))
	}

	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, _ []string) error {
	resp, err := analyzeInputFile(checkInputPath, clock.System{})
	if err != nil {
		return err
	}

	if checkVerbose {
		observability.NewPrinter(os.Stderr).PrintInputAnalysis(&resp)
	}

	return printJSON(os.Stdout, resp)
}

// analyzeInputFile loads a travel input from a JSON file and runs the full
// analysis on its normalized form.
func analyzeInputFile(path string, clk clock.Clock) (types.AnalyzeInputResponse, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.AnalyzeInputResponse{}, fmt.Errorf("failed to read input file: %w", err)
	}

	var input types.TravelInputData
	if err := json.Unmarshal(data, &input); err != nil {
		return types.AnalyzeInputResponse{}, fmt.Errorf("failed to parse input JSON: %w", err)
	}

	normalized := inputcheck.Normalize(input)
	return types.AnalyzeInputResponse{
		Validation:        inputcheck.Validate(normalized, clk),
		Incompleteness:    inputcheck.DetectIncompleteInput(normalized),
		FollowUpQuestions: inputcheck.GenerateFollowUpQuestions(normalized),
		CompletenessScore: inputcheck.CompletenessScore(normalized),
	}, nil
}
