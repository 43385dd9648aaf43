// Package main provides the entry point for the Travel Planner CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "travel_agent",
	Short: "Travel Planner HTTP API Server and CLI",
	Long:  "Travel Planner builds destination itineraries, estimates trip costs from regional tables, and analyzes raw travel input for completeness via REST API or directly from the command line.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
