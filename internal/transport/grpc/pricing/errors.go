package pricing

import (
	"context"
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/lingua-booking/internal/app/booking/domain"
	"github.com/light-bringer/lingua-booking/internal/app/booking/gateway"
	"github.com/light-bringer/lingua-booking/internal/pkg/listing"
)

// mapDomainErrorToGRPC converts domain errors to gRPC status codes.
func mapDomainErrorToGRPC(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		st := status.New(codes.InvalidArgument, verr.Error())
		detailed, derr := st.WithDetails(&errdetails.BadRequest{
			FieldViolations: []*errdetails.BadRequest_FieldViolation{
				{Field: verr.Field, Description: verr.Reason},
			},
		})
		if derr != nil {
			return st.Err()
		}
		return detailed.Err()

	case errors.Is(err, domain.ErrCatalogInconsistency):
		return status.Error(codes.FailedPrecondition, err.Error())

	case errors.Is(err, domain.ErrCourseNotFound):
		return status.Error(codes.NotFound, "course not found")

	case errors.Is(err, domain.ErrTutorNotFound):
		return status.Error(codes.NotFound, "tutor not found")

	case errors.Is(err, domain.ErrOrderNotFound):
		return status.Error(codes.NotFound, "order not found")

	case errors.Is(err, domain.ErrUnknownOption),
		errors.Is(err, domain.ErrInvalidTimeOfDay),
		errors.Is(err, domain.ErrStartNotOffered),
		errors.Is(err, listing.ErrInvalidPageToken):
		return status.Error(codes.InvalidArgument, err.Error())

	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")

	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")

	case gateway.IsUpstream(err):
		return status.Error(codes.Unavailable, "school api unavailable")

	default:
		// Unknown error - return Internal
		return status.Error(codes.Internal, "internal server error")
	}
}
