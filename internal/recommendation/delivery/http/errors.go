package http

import (
	"errors"
	"net/http"

	"project-planner/internal/recommendation"
	pkgErrors "project-planner/pkg/errors"
)

const logPrefix = "internal.recommendation.delivery.http"

var (
	errWrongBody      = pkgErrors.NewHTTPError(http.StatusBadRequest, "Wrong body")
	errEmptyUserID    = pkgErrors.NewHTTPError(http.StatusBadRequest, "user_id is required")
	errEmptyUserInput = pkgErrors.NewHTTPError(http.StatusBadRequest, "user_input is required")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
// Anything unrecognised is reported as 500 without leaking the cause.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, recommendation.ErrEmptyUserID):
		return errEmptyUserID
	case errors.Is(err, recommendation.ErrEmptyInput):
		return errEmptyUserInput
	case errors.Is(err, recommendation.ErrNoPriorRecommendation):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "No recommendation found for the user. Please generate recommendations first.")
	case errors.Is(err, recommendation.ErrGenerationFailed):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to generate recommendation")
	case errors.Is(err, recommendation.ErrExtractionFailed):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to extract structured data")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
