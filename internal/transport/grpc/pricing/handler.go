package pricing

import (
	"context"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/light-bringer/lingua-booking/internal/app/booking/queries/list_courses"
	"github.com/light-bringer/lingua-booking/internal/app/booking/usecases/quote_course"
	"github.com/light-bringer/lingua-booking/internal/app/booking/usecases/quote_tutor"
)

// Handler implements PricingServiceServer.
// It's a thin coordinator that delegates to use cases and queries.
type Handler struct {
	quoteCourse *quote_course.Interactor
	quoteTutor  *quote_tutor.Interactor
	listCourses *list_courses.Query

	// loc interprets start_date values.
	loc *time.Location
}

// NewHandler creates a new gRPC pricing handler.
func NewHandler(
	quoteCourse *quote_course.Interactor,
	quoteTutor *quote_tutor.Interactor,
	listCourses *list_courses.Query,
	loc *time.Location,
) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		quoteCourse: quoteCourse,
		quoteTutor:  quoteTutor,
		listCourses: listCourses,
		loc:         loc,
	}
}

var _ PricingServiceServer = (*Handler)(nil)

// QuoteCourse prices a course booking.
func (h *Handler) QuoteCourse(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	// 1. Validate request
	if err := validateQuoteCourseRequest(req); err != nil {
		return nil, err
	}

	// 2. Map request document → application request
	appReq, err := toQuoteCourseRequest(req, h.loc)
	if err != nil {
		return nil, err
	}

	// 3. Call usecase
	resp, err := h.quoteCourse.Execute(ctx, appReq)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	// 4. Return reply
	reply, err := quoteCourseReply(resp)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to encode reply")
	}
	return reply, nil
}

// QuoteTutor prices a tutor booking.
func (h *Handler) QuoteTutor(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := validateQuoteTutorRequest(req); err != nil {
		return nil, err
	}

	appReq, err := toQuoteTutorRequest(req)
	if err != nil {
		return nil, err
	}

	resp, err := h.quoteTutor.Execute(ctx, appReq)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	reply, err := quoteTutorReply(resp)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to encode reply")
	}
	return reply, nil
}

// ListCourses returns one page of courses matching the search term.
func (h *Handler) ListCourses(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := validateListCoursesRequest(req); err != nil {
		return nil, err
	}

	search, err := stringField(req, fieldSearch)
	if err != nil {
		return nil, err
	}
	size, _, err := intField(req, fieldPageSize)
	if err != nil {
		return nil, err
	}
	token, err := stringField(req, fieldPageToken)
	if err != nil {
		return nil, err
	}

	res, err := h.listCourses.Execute(ctx, &list_courses.Request{
		Search:    search,
		PageSize:  int(size),
		PageToken: token,
	})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	reply, err := listCoursesReply(res)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to encode reply")
	}
	return reply, nil
}
