// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/travel-planner/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintTripPlan outputs a human-readable summary of a trip plan.
func (p *Printer) PrintTripPlan(plan *types.TripPlan) {
	if plan == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Duration: %.1f days\n", plan.TotalDuration))
	sb.WriteString(fmt.Sprintf("Budget:   %.0f - %.0f %s\n",
		plan.TotalCost.Total.Min, plan.TotalCost.Total.Max, plan.TotalCost.Currency))
	sb.WriteString("\n")

	if len(plan.SuggestedRoute) > 0 {
		sb.WriteString("Route:\n")
		count := min(len(plan.SuggestedRoute), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, plan.SuggestedRoute[i]))
		}
		if len(plan.SuggestedRoute) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(plan.SuggestedRoute)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	for _, dest := range plan.Destinations {
		sb.WriteString(fmt.Sprintf("%s: %.1f days", dest.Destination, dest.SuggestedDuration))
		if dest.BestTimeToVisit != "" {
			sb.WriteString(fmt.Sprintf(" (best: %s)", dest.BestTimeToVisit))
		}
		sb.WriteString("\n")
	}

	p.printBox("TRIP PLAN", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCostEstimate outputs a human-readable summary of a cost estimate.
func (p *Printer) PrintCostEstimate(est *types.CostEstimate) {
	if est == nil {
		return
	}

	var sb strings.Builder

	writeRange := func(label string, r types.CostRange) {
		sb.WriteString(fmt.Sprintf("%-16s %8.0f - %8.0f %s\n", label, r.Min, r.Max, est.Currency))
	}
	writeRange("Transportation:", est.Transportation)
	writeRange("Accommodation:", est.Accommodation)
	writeRange("Activities:", est.Activities)
	writeRange("Food:", est.Food)
	sb.WriteString("\n")
	writeRange("Total:", est.Total)

	p.printBox("COST ESTIMATE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintInputAnalysis outputs a human-readable summary of an input analysis.
func (p *Printer) PrintInputAnalysis(resp *types.AnalyzeInputResponse) {
	if resp == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Valid:        %t\n", resp.Validation.IsValid))
	sb.WriteString(fmt.Sprintf("Completeness: %d/100\n", resp.CompletenessScore))

	if len(resp.Validation.Errors) > 0 {
		sb.WriteString("\nErrors:\n")
		count := min(len(resp.Validation.Errors), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", resp.Validation.Errors[i]))
		}
		if len(resp.Validation.Errors) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resp.Validation.Errors)-maxItemsToShow))
		}
	}

	if len(resp.Incompleteness.IncompleteAreas) > 0 {
		sb.WriteString("\nNeeds follow-up:\n")
		for _, area := range resp.Incompleteness.IncompleteAreas {
			sb.WriteString(fmt.Sprintf("  • %s\n", area))
		}
	}

	p.printBox("INPUT ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}
