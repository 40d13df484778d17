package pricing

import (
	"fmt"
	"math"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/light-bringer/lingua-booking/internal/app/booking/contracts"
	"github.com/light-bringer/lingua-booking/internal/app/booking/domain"
	"github.com/light-bringer/lingua-booking/internal/app/booking/usecases/quote_course"
	"github.com/light-bringer/lingua-booking/internal/app/booking/usecases/quote_tutor"
)

// Request and reply field names.
const (
	fieldCourseID      = "course_id"
	fieldTutorID       = "tutor_id"
	fieldStartDate     = "start_date"
	fieldStartTime     = "start_time"
	fieldPersons       = "persons"
	fieldDurationHours = "duration_hours"
	fieldOptions       = "options"
	fieldDeriveOptions = "derive_options"
	fieldSearch        = "search"
	fieldPageSize      = "page_size"
	fieldPageToken     = "page_token"
)

func invalidField(key, format string, args ...any) error {
	return status.Errorf(codes.InvalidArgument, "%s %s", key, fmt.Sprintf(format, args...))
}

// stringField returns the string at key, or "" when absent.
func stringField(s *structpb.Struct, key string) (string, error) {
	v, ok := s.GetFields()[key]
	if !ok {
		return "", nil
	}
	if _, isNull := v.GetKind().(*structpb.Value_NullValue); isNull {
		return "", nil
	}
	sv, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", invalidField(key, "must be a string")
	}
	return sv.StringValue, nil
}

// intField returns the whole number at key and whether it was present.
func intField(s *structpb.Struct, key string) (int64, bool, error) {
	v, ok := s.GetFields()[key]
	if !ok {
		return 0, false, nil
	}
	nv, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, false, invalidField(key, "must be a number")
	}
	n := nv.NumberValue
	if n != math.Trunc(n) || math.Abs(n) > 1<<53 {
		return 0, false, invalidField(key, "must be a whole number")
	}
	return int64(n), true, nil
}

func boolField(s *structpb.Struct, key string) (bool, error) {
	v, ok := s.GetFields()[key]
	if !ok {
		return false, nil
	}
	bv, ok := v.GetKind().(*structpb.Value_BoolValue)
	if !ok {
		return false, invalidField(key, "must be a boolean")
	}
	return bv.BoolValue, nil
}

func stringListField(s *structpb.Struct, key string) ([]string, error) {
	v, ok := s.GetFields()[key]
	if !ok {
		return nil, nil
	}
	lv, ok := v.GetKind().(*structpb.Value_ListValue)
	if !ok {
		return nil, invalidField(key, "must be a list of strings")
	}
	out := make([]string, 0, len(lv.ListValue.GetValues()))
	for _, item := range lv.ListValue.GetValues() {
		sv, ok := item.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return nil, invalidField(key, "must be a list of strings")
		}
		out = append(out, sv.StringValue)
	}
	return out, nil
}

// toQuoteCourseRequest maps a QuoteCourse request document. Missing date,
// time and persons are left for the pricing engine to reject.
func toQuoteCourseRequest(s *structpb.Struct, loc *time.Location) (*quote_course.Request, error) {
	courseID, _, err := intField(s, fieldCourseID)
	if err != nil {
		return nil, err
	}
	req := &quote_course.Request{CourseID: courseID}

	date, err := stringField(s, fieldStartDate)
	if err != nil {
		return nil, err
	}
	if date != "" {
		req.StartDate, err = time.ParseInLocation(time.DateOnly, date, loc)
		if err != nil {
			return nil, invalidField(fieldStartDate, "must be YYYY-MM-DD")
		}
	}

	tod, err := stringField(s, fieldStartTime)
	if err != nil {
		return nil, err
	}
	if tod != "" {
		parsed, err := domain.ParseTimeOfDay(tod)
		if err != nil {
			return nil, invalidField(fieldStartTime, "must be HH:MM")
		}
		req.StartTime = &parsed
	}

	persons, _, err := intField(s, fieldPersons)
	if err != nil {
		return nil, err
	}
	req.PersonCount = int(persons)

	names, err := stringListField(s, fieldOptions)
	if err != nil {
		return nil, err
	}
	if req.Options, err = domain.ParseOptions(names); err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	if req.DeriveOptions, err = boolField(s, fieldDeriveOptions); err != nil {
		return nil, err
	}
	return req, nil
}

func toQuoteTutorRequest(s *structpb.Struct) (*quote_tutor.Request, error) {
	tutorID, _, err := intField(s, fieldTutorID)
	if err != nil {
		return nil, err
	}
	duration, _, err := intField(s, fieldDurationHours)
	if err != nil {
		return nil, err
	}
	persons, _, err := intField(s, fieldPersons)
	if err != nil {
		return nil, err
	}
	return &quote_tutor.Request{
		TutorID:       tutorID,
		DurationHours: int(duration),
		PersonCount:   int(persons),
	}, nil
}

func timestampString(t time.Time) string {
	return timestamppb.New(t).AsTime().Format(time.RFC3339)
}

func stringList(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func resultFields(res *domain.PricingResult) map[string]any {
	return map[string]any{
		"total_price":   res.TotalPrice,
		"exact_price":   res.Exact.String(),
		"applied_rules": stringList(res.AppliedRules),
	}
}

func quoteCourseReply(resp *quote_course.Response) (*structpb.Struct, error) {
	fields := resultFields(resp.Result)
	fields["quote_id"] = resp.QuoteID
	fields[fieldCourseID] = resp.Course.ID
	fields["course_name"] = resp.Course.Name
	fields[fieldStartDate] = resp.Input.StartDate.Format(time.DateOnly)
	fields[fieldStartTime] = resp.Input.StartTime.String()
	fields[fieldPersons] = resp.Input.PersonCount
	fields[fieldOptions] = stringList(resp.Input.Options.Enabled())
	fields["end_date"] = resp.EndDate.Format(time.DateOnly)
	fields["quoted_at"] = timestampString(resp.QuotedAt)
	return structpb.NewStruct(fields)
}

func quoteTutorReply(resp *quote_tutor.Response) (*structpb.Struct, error) {
	fields := resultFields(resp.Result)
	fields["quote_id"] = resp.QuoteID
	fields[fieldTutorID] = resp.Tutor.ID
	fields["tutor_name"] = resp.Tutor.Name
	fields["price_per_hour"] = resp.Tutor.PricePerHour.String()
	fields["quoted_at"] = timestampString(resp.QuotedAt)
	return structpb.NewStruct(fields)
}

func courseFields(c *domain.Course) map[string]any {
	starts := make([]any, len(c.StartDates))
	for i, d := range c.StartDates {
		starts[i] = timestampString(d)
	}
	return map[string]any{
		"id":                 c.ID,
		"name":               c.Name,
		"teacher":            c.Teacher,
		"level":              c.Level,
		"fee_per_hour":       c.FeePerHour.String(),
		"total_length_weeks": c.TotalLengthWeeks,
		"week_length_hours":  c.WeekLengthHours,
		"start_dates":        starts,
	}
}

func listCoursesReply(res *contracts.CourseListResult) (*structpb.Struct, error) {
	courses := make([]any, len(res.Courses))
	for i, c := range res.Courses {
		courses[i] = courseFields(c)
	}
	return structpb.NewStruct(map[string]any{
		"courses":         courses,
		"next_page_token": res.NextPageToken,
		"total_count":     res.TotalCount,
	})
}
