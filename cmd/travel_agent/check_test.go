package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/travel-planner/internal/clock"
	"github.com/jonathan/travel-planner/internal/types"
)

var checkTestClock = clock.At(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

func writeInputFile(t *testing.T, input types.TravelInputData) string {
	t.Helper()

	data, err := json.Marshal(input)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "input.json")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestAnalyzeInputFile(t *testing.T) {
	path := writeInputFile(t, types.TravelInputData{
		Destinations: []string{"  Paris, France "},
		Experiences:  []string{"museum tour"},
	})

	resp, err := analyzeInputFile(path, checkTestClock)
	require.NoError(t, err)

	assert.True(t, resp.Validation.IsValid)
	assert.Greater(t, resp.CompletenessScore, 0)
}

func TestAnalyzeInputFile_VagueDestination(t *testing.T) {
	path := writeInputFile(t, types.TravelInputData{
		Destinations: []string{"Europe"},
		Experiences:  []string{"sightseeing tours"},
	})

	resp, err := analyzeInputFile(path, checkTestClock)
	require.NoError(t, err)

	assert.True(t, resp.Incompleteness.NeedsFollowUp)
	require.NotEmpty(t, resp.FollowUpQuestions)
	assert.Equal(t, "destination-0", resp.FollowUpQuestions[0].ID)
}

func TestAnalyzeInputFile_MissingFile(t *testing.T) {
	_, err := analyzeInputFile(filepath.Join(t.TempDir(), "missing.json"), checkTestClock)
	assert.Error(t, err)
}

func TestAnalyzeInputFile_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.json")
	require.NoError(t, os.WriteFile(path, []byte("{nope"), 0644))

	_, err := analyzeInputFile(path, checkTestClock)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}
