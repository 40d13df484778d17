package contracts

import (
	"time"

	"github.com/light-bringer/lingua-booking/internal/app/booking/domain"
)

// Listing limits shared by the catalog and order queries.
const (
	DefaultPageSize = 5
	MaxPageSize     = 50
)

// CourseListResult is one page of courses.
type CourseListResult struct {
	Courses       []*domain.Course
	NextPageToken string
	TotalCount    int
}

// TutorListResult holds the tutors matching a filter, plus every language
// offered by any tutor so callers can build filter choices.
type TutorListResult struct {
	Tutors    []*domain.Tutor
	Languages []string
	Levels    []string
}

// OrderRow is an order with the booked course or tutor resolved to a name.
type OrderRow struct {
	Order    *domain.Order
	ItemName string
	ItemKind string // "course" or "tutor"
	EndDate  time.Time
}

// OrderListResult is one page of order rows.
type OrderListResult struct {
	Rows          []*OrderRow
	NextPageToken string
	TotalCount    int
}
