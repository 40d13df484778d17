package list_courses

import (
	"context"

	"github.com/light-bringer/lingua-booking/internal/app/booking/contracts"
	"github.com/light-bringer/lingua-booking/internal/app/booking/domain"
	"github.com/light-bringer/lingua-booking/internal/pkg/listing"
)

// Request contains search and pagination parameters.
type Request struct {
	Search    string
	PageSize  int
	PageToken string
}

// Query handles the list courses query use case.
type Query struct {
	catalog         contracts.CatalogGateway
	defaultPageSize int
}

// NewQuery creates a new list courses query. defaultPageSize applies when a
// request does not set one.
func NewQuery(catalog contracts.CatalogGateway, defaultPageSize int) *Query {
	if defaultPageSize <= 0 {
		defaultPageSize = contracts.DefaultPageSize
	}
	return &Query{
		catalog:         catalog,
		defaultPageSize: defaultPageSize,
	}
}

// Execute retrieves one page of courses whose name or level contains the
// search term, ignoring case.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.CourseListResult, error) {
	courses, err := q.catalog.ListCourses(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*domain.Course, 0, len(courses))
	for _, c := range courses {
		if c.MatchesSearch(req.Search) {
			matched = append(matched, c)
		}
	}

	pageSize := listing.ClampPageSize(req.PageSize, q.defaultPageSize, contracts.MaxPageSize)
	page, next, err := listing.Page(matched, pageSize, req.PageToken)
	if err != nil {
		return nil, err
	}

	return &contracts.CourseListResult{
		Courses:       page,
		NextPageToken: next,
		TotalCount:    len(matched),
	}, nil
}
