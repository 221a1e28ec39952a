package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/store"
)

// HTTPStatus maps domain errors to response status codes.
func HTTPStatus(err error) int {
	var scoringErr *scoring.ValidationError
	var schemaErr *schemas.ValidationError
	var tooLargeErr *http.MaxBytesError

	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &scoringErr), errors.As(err, &schemaErr):
		return http.StatusBadRequest
	case errors.As(err, &tooLargeErr):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}
