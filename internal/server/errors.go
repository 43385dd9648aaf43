package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/travel-planner/internal/estimation"
	"github.com/jonathan/travel-planner/internal/planning"
	"github.com/jonathan/travel-planner/internal/profilestore"
)

// Error codes surfaced in the response envelope.
const (
	codeInvalidInput = "INVALID_INPUT"
	codeNotFound     = "NOT_FOUND"
	codeInternal     = "INTERNAL"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var estInvalid *estimation.InvalidInputError
	var planInvalid *planning.InvalidInputError
	var notFound *profilestore.NotFoundError

	switch {
	case errors.As(err, &estInvalid), errors.As(err, &planInvalid):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// errorCode returns the envelope error code for an error.
func errorCode(err error) string {
	switch HTTPStatus(err) {
	case http.StatusBadRequest:
		return codeInvalidInput
	case http.StatusNotFound:
		return codeNotFound
	default:
		return codeInternal
	}
}
