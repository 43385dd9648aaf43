package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/travel-planner/internal/clock"
	"github.com/jonathan/travel-planner/internal/types"
)

func newTestServer() *Server {
	return New(Config{
		Port:  0,
		Clock: clock.At(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)),
	})
}

func doJSON(t *testing.T, s *Server, method, path string, body any) (*httptest.ResponseRecorder, Envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestHandlePlanTrip(t *testing.T) {
	s := newTestServer()

	rec, env := doJSON(t, s, http.MethodPost, "/api/plan-trip", types.PlanTripRequest{
		Destinations: []string{"Paris, France", "Tokyo, Japan"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)

	var plan types.TripPlan
	raw, err := json.Marshal(env.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &plan))

	assert.Equal(t, []string{"Paris, France", "Tokyo, Japan"}, plan.SuggestedRoute)
	assert.Len(t, plan.TravelTimes, 1)
	assert.Equal(t, plan.TotalCost.Total.Min,
		plan.TotalCost.Transportation.Min+plan.TotalCost.Accommodation.Min+plan.TotalCost.Activities.Min+plan.TotalCost.Food.Min)
}

func TestHandlePlanTrip_EmptyDestinations(t *testing.T) {
	s := newTestServer()

	rec, env := doJSON(t, s, http.MethodPost, "/api/plan-trip", types.PlanTripRequest{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}

func TestHandlePlanTrip_MalformedBody(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/plan-trip", bytes.NewBufferString("{nope"))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleEstimateCosts(t *testing.T) {
	s := newTestServer()

	rec, env := doJSON(t, s, http.MethodPost, "/api/estimate-costs", types.EstimateCostsRequest{
		Trip: types.TripData{
			Destinations: []string{"Paris, France"},
			Experiences:  []string{"museum tour"},
			Duration:     5,
			Travelers:    2,
		},
		Home: types.LocationData{City: "New York", Country: "United States"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)

	var est types.CostEstimate
	raw, err := json.Marshal(env.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &est))

	assert.Equal(t, 320.0, est.Accommodation.Min)
	assert.Equal(t, 480.0, est.Accommodation.Max)
	assert.Equal(t, "USD", est.Currency)
}

func TestHandleEstimateCosts_MissingHome(t *testing.T) {
	s := newTestServer()

	rec, env := doJSON(t, s, http.MethodPost, "/api/estimate-costs", types.EstimateCostsRequest{
		Trip: types.TripData{Destinations: []string{"Paris, France"}, Duration: 5},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Message, "home")
}

func TestHandleValidateInput_InvalidStillOK(t *testing.T) {
	s := newTestServer()

	// Business-rule failures are data, not transport errors.
	rec, env := doJSON(t, s, http.MethodPost, "/api/validate-input", types.TravelInputData{})

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)

	var result types.ValidationResult
	raw, err := json.Marshal(env.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &result))
	assert.False(t, result.IsValid)
	assert.GreaterOrEqual(t, len(result.Errors), 2)
}

func TestHandleAnalyzeInput(t *testing.T) {
	s := newTestServer()

	rec, env := doJSON(t, s, http.MethodPost, "/api/analyze-input", types.TravelInputData{
		Destinations: []string{" Europe "},
		Experiences:  []string{"fun"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)

	var resp types.AnalyzeInputResponse
	raw, err := json.Marshal(env.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &resp))

	assert.True(t, resp.Incompleteness.NeedsFollowUp)
	assert.NotEmpty(t, resp.FollowUpQuestions)
	assert.Equal(t, "destination-0", resp.FollowUpQuestions[0].ID)
	assert.Less(t, resp.CompletenessScore, 50)
}

func TestProfilePreferencesRoundTrip(t *testing.T) {
	s := newTestServer()
	id := uuid.New()
	path := fmt.Sprintf("/api/profiles/%s/preferences", id)

	prefs := types.TravelPreferences{
		TravelStyle: types.StyleLuxury,
		Interests:   []string{"art"},
	}

	rec, env := doJSON(t, s, http.MethodPut, path, prefs)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)

	rec, env = doJSON(t, s, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var got types.TravelPreferences
	raw, err := json.Marshal(env.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, prefs, got)
}

func TestProfilePreferences_NotFound(t *testing.T) {
	s := newTestServer()

	rec, env := doJSON(t, s, http.MethodGet, fmt.Sprintf("/api/profiles/%s/preferences", uuid.New()), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestProfilePreferences_BadID(t *testing.T) {
	s := newTestServer()

	rec, _ := doJSON(t, s, http.MethodGet, "/api/profiles/not-a-uuid/preferences", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPutTravelInputNormalizes(t *testing.T) {
	s := newTestServer()
	id := uuid.New()
	path := fmt.Sprintf("/api/profiles/%s/travel-input", id)

	_, env := doJSON(t, s, http.MethodPut, path, types.TravelInputData{
		Destinations: []string{"  Lisbon, Portugal ", "  "},
		Experiences:  []string{" food markets "},
	})
	require.True(t, env.Success)

	var stored types.TravelInputData
	raw, err := json.Marshal(env.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &stored))
	assert.Equal(t, []string{"Lisbon, Portugal"}, stored.Destinations)
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer()

	rec, env := doJSON(t, s, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
}
