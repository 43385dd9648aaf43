package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/travel-planner/internal/estimation"
	"github.com/jonathan/travel-planner/internal/inputcheck"
	"github.com/jonathan/travel-planner/internal/planning"
	"github.com/jonathan/travel-planner/internal/types"
)

// handlePlanTrip plans a trip from a destination list and optional preferences.
func (s *Server) handlePlanTrip(w http.ResponseWriter, r *http.Request) {
	var req types.PlanTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, codeInvalidInput, "invalid request body: "+err.Error(), nil)
		return
	}
	if err := req.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, codeInvalidInput, "invalid request: "+err.Error(), nil)
		return
	}

	prefs := types.TravelPreferences{}
	if req.Preferences != nil {
		prefs = *req.Preferences
	}

	plan, err := planning.PlanTrip(req.Destinations, prefs, s.clk)
	if err != nil {
		s.respondCoreError(w, err)
		return
	}
	s.respondData(w, http.StatusOK, plan)
}

// handleEstimateCosts produces a cost estimate for a trip from a home
// location, optionally adjusted for travel style.
func (s *Server) handleEstimateCosts(w http.ResponseWriter, r *http.Request) {
	var req types.EstimateCostsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, codeInvalidInput, "invalid request body: "+err.Error(), nil)
		return
	}

	est, err := estimation.EstimateCosts(req.Trip, req.Home, s.clk)
	if err != nil {
		s.respondCoreError(w, err)
		return
	}
	if req.TravelStyle != "" {
		est = estimation.ApplyTravelStyleAdjustments(est, req.TravelStyle)
	}
	s.respondData(w, http.StatusOK, est)
}

// handleValidateInput validates a raw travel input. Validation outcomes are
// data, not errors: an invalid input still yields a 200 with the result.
func (s *Server) handleValidateInput(w http.ResponseWriter, r *http.Request) {
	var input types.TravelInputData
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.respondError(w, http.StatusBadRequest, codeInvalidInput, "invalid request body: "+err.Error(), nil)
		return
	}

	result := inputcheck.Validate(inputcheck.Normalize(input), s.clk)
	s.respondData(w, http.StatusOK, result)
}

// handleAnalyzeInput runs the full input analysis: validation, vague-input
// detection, follow-up questions and the completeness score.
func (s *Server) handleAnalyzeInput(w http.ResponseWriter, r *http.Request) {
	var input types.TravelInputData
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.respondError(w, http.StatusBadRequest, codeInvalidInput, "invalid request body: "+err.Error(), nil)
		return
	}

	normalized := inputcheck.Normalize(input)
	resp := types.AnalyzeInputResponse{
		Validation:        inputcheck.Validate(normalized, s.clk),
		Incompleteness:    inputcheck.DetectIncompleteInput(normalized),
		FollowUpQuestions: inputcheck.GenerateFollowUpQuestions(normalized),
		CompletenessScore: inputcheck.CompletenessScore(normalized),
	}
	s.respondData(w, http.StatusOK, resp)
}

// handleGetPreferences returns the saved preferences for a profile.
func (s *Server) handleGetPreferences(w http.ResponseWriter, r *http.Request) {
	profileID, ok := s.profileID(w, r)
	if !ok {
		return
	}

	prefs, err := s.profiles.GetPreferences(r.Context(), profileID)
	if err != nil {
		s.respondCoreError(w, err)
		return
	}
	s.respondData(w, http.StatusOK, prefs)
}

// handlePutPreferences stores preferences for a profile.
func (s *Server) handlePutPreferences(w http.ResponseWriter, r *http.Request) {
	profileID, ok := s.profileID(w, r)
	if !ok {
		return
	}

	var prefs types.TravelPreferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		s.respondError(w, http.StatusBadRequest, codeInvalidInput, "invalid request body: "+err.Error(), nil)
		return
	}

	if err := s.profiles.PutPreferences(r.Context(), profileID, prefs); err != nil {
		s.respondCoreError(w, err)
		return
	}
	s.respondData(w, http.StatusOK, prefs)
}

// handleGetTravelInput returns the latest raw travel input for a profile.
func (s *Server) handleGetTravelInput(w http.ResponseWriter, r *http.Request) {
	profileID, ok := s.profileID(w, r)
	if !ok {
		return
	}

	input, err := s.profiles.GetTravelInput(r.Context(), profileID)
	if err != nil {
		s.respondCoreError(w, err)
		return
	}
	s.respondData(w, http.StatusOK, input)
}

// handlePutTravelInput stores a raw travel input for a profile after
// normalizing it.
func (s *Server) handlePutTravelInput(w http.ResponseWriter, r *http.Request) {
	profileID, ok := s.profileID(w, r)
	if !ok {
		return
	}

	var input types.TravelInputData
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.respondError(w, http.StatusBadRequest, codeInvalidInput, "invalid request body: "+err.Error(), nil)
		return
	}

	normalized := inputcheck.Normalize(input)
	if err := s.profiles.PutTravelInput(r.Context(), profileID, normalized); err != nil {
		s.respondCoreError(w, err)
		return
	}
	s.respondData(w, http.StatusOK, normalized)
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.respondData(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// profileID parses the {id} path segment; on failure it writes the error
// response and returns ok=false.
func (s *Server) profileID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := r.PathValue("id")
	profileID, err := uuid.Parse(idStr)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, codeInvalidInput, "invalid profile id: "+idStr, nil)
		return uuid.Nil, false
	}
	return profileID, true
}
