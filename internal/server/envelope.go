package server

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorBody is the error half of the response envelope.
type ErrorBody struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
}

// Envelope is the uniform response shape for every endpoint. The planning
// core never sees it; only this package constructs envelopes.
type Envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

// respondData writes a success envelope.
func (s *Server) respondData(w http.ResponseWriter, status int, data any) {
	s.writeJSON(w, status, Envelope{Success: true, Data: data})
}

// respondError writes an error envelope.
func (s *Server) respondError(w http.ResponseWriter, status int, code, message string, details any) {
	s.writeJSON(w, status, Envelope{Success: false, Error: &ErrorBody{Message: message, Code: code, Details: details}})
}

// respondCoreError maps a typed core error onto the envelope.
func (s *Server) respondCoreError(w http.ResponseWriter, err error) {
	s.respondError(w, HTTPStatus(err), errorCode(err), err.Error(), nil)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}
