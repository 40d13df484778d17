package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/light-bringer/lingua-booking/internal/app/booking/domain"
	"github.com/light-bringer/lingua-booking/internal/app/booking/gateway"
	"github.com/light-bringer/lingua-booking/internal/pkg/listing"
)

type errorResponse struct {
	Error  string            `json:"error"`
	Field  string            `json:"field,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

// mapDomainErrorToHTTP converts request and domain errors to a status code
// and response body.
func (h *Handler) mapDomainErrorToHTTP(err error) (int, errorResponse) {
	var (
		verrs validator.ValidationErrors
		verr  *domain.ValidationError
		berr  *badRequestError
	)

	switch {
	case errors.As(err, &verrs):
		return http.StatusBadRequest, errorResponse{Error: "invalid request", Fields: h.validator.fieldErrors(verrs)}

	case errors.As(err, &berr):
		return http.StatusBadRequest, errorResponse{Error: berr.Error()}

	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity, errorResponse{Error: verr.Error(), Field: verr.Field}

	case errors.Is(err, domain.ErrStartNotOffered),
		errors.Is(err, domain.ErrOrderTargetMismatch):
		return http.StatusUnprocessableEntity, errorResponse{Error: err.Error()}

	case errors.Is(err, domain.ErrUnknownOption),
		errors.Is(err, domain.ErrInvalidTimeOfDay),
		errors.Is(err, domain.ErrOrderTargetMissing),
		errors.Is(err, listing.ErrInvalidPageToken):
		return http.StatusBadRequest, errorResponse{Error: err.Error()}

	case errors.Is(err, domain.ErrCatalogInconsistency):
		return http.StatusConflict, errorResponse{Error: err.Error()}

	case errors.Is(err, domain.ErrCourseNotFound):
		return http.StatusNotFound, errorResponse{Error: "course not found"}

	case errors.Is(err, domain.ErrTutorNotFound):
		return http.StatusNotFound, errorResponse{Error: "tutor not found"}

	case errors.Is(err, domain.ErrOrderNotFound):
		return http.StatusNotFound, errorResponse{Error: "order not found"}

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, errorResponse{Error: "deadline exceeded"}

	case gateway.IsUpstream(err):
		return http.StatusBadGateway, errorResponse{Error: "school api unavailable"}

	default:
		return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
	}
}
