package pricing

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// validateQuoteCourseRequest validates the QuoteCourse request.
func validateQuoteCourseRequest(req *structpb.Struct) error {
	if req == nil {
		return status.Error(codes.InvalidArgument, "request is required")
	}
	id, ok, err := intField(req, fieldCourseID)
	if err != nil {
		return err
	}
	if !ok || id <= 0 {
		return status.Error(codes.InvalidArgument, "course_id is required")
	}
	return nil
}

// validateQuoteTutorRequest validates the QuoteTutor request.
func validateQuoteTutorRequest(req *structpb.Struct) error {
	if req == nil {
		return status.Error(codes.InvalidArgument, "request is required")
	}
	id, ok, err := intField(req, fieldTutorID)
	if err != nil {
		return err
	}
	if !ok || id <= 0 {
		return status.Error(codes.InvalidArgument, "tutor_id is required")
	}
	return nil
}

// validateListCoursesRequest validates the ListCourses request.
func validateListCoursesRequest(req *structpb.Struct) error {
	if req == nil {
		return nil
	}
	size, _, err := intField(req, fieldPageSize)
	if err != nil {
		return err
	}
	if size < 0 {
		return status.Error(codes.InvalidArgument, "page_size cannot be negative")
	}
	return nil
}
