package list_orders

import (
	"context"

	"github.com/light-bringer/lingua-booking/internal/app/booking/contracts"
	"github.com/light-bringer/lingua-booking/internal/app/booking/domain"
	"github.com/light-bringer/lingua-booking/internal/pkg/listing"
)

// Names shown for orders whose course or tutor no longer exists.
const (
	RemovedCourseName = "course removed"
	RemovedTutorName  = "tutor removed"
	UnknownItemName   = "unknown"
)

// Request contains pagination parameters.
type Request struct {
	PageSize  int
	PageToken string
}

// Query handles the list orders query use case.
type Query struct {
	orders          contracts.OrderGateway
	catalog         contracts.CatalogGateway
	defaultPageSize int
}

// NewQuery creates a new list orders query.
func NewQuery(orders contracts.OrderGateway, catalog contracts.CatalogGateway, defaultPageSize int) *Query {
	if defaultPageSize <= 0 {
		defaultPageSize = contracts.DefaultPageSize
	}
	return &Query{
		orders:          orders,
		catalog:         catalog,
		defaultPageSize: defaultPageSize,
	}
}

// Execute retrieves one page of orders with their course or tutor names.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.OrderListResult, error) {
	orders, err := q.orders.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	pageSize := listing.ClampPageSize(req.PageSize, q.defaultPageSize, contracts.MaxPageSize)
	page, next, err := listing.Page(orders, pageSize, req.PageToken)
	if err != nil {
		return nil, err
	}

	courses, err := q.catalog.ListCourses(ctx)
	if err != nil {
		return nil, err
	}
	tutors, err := q.catalog.ListTutors(ctx)
	if err != nil {
		return nil, err
	}

	resolver := NewResolver(courses, tutors)
	rows := make([]*contracts.OrderRow, 0, len(page))
	for _, o := range page {
		rows = append(rows, resolver.Row(o))
	}

	return &contracts.OrderListResult{
		Rows:          rows,
		NextPageToken: next,
		TotalCount:    len(orders),
	}, nil
}

// Resolver maps orders to display rows against a catalog snapshot.
type Resolver struct {
	courses map[int64]*domain.Course
	tutors  map[int64]*domain.Tutor
}

// NewResolver indexes the given catalog.
func NewResolver(courses []*domain.Course, tutors []*domain.Tutor) *Resolver {
	r := &Resolver{
		courses: make(map[int64]*domain.Course, len(courses)),
		tutors:  make(map[int64]*domain.Tutor, len(tutors)),
	}
	for _, c := range courses {
		r.courses[c.ID] = c
	}
	for _, t := range tutors {
		r.tutors[t.ID] = t
	}
	return r
}

// Row resolves the booked item of o.
func (r *Resolver) Row(o *domain.Order) *contracts.OrderRow {
	row := &contracts.OrderRow{Order: o, ItemName: UnknownItemName}

	switch {
	case o.IsCourse():
		row.ItemKind = "course"
		row.ItemName = RemovedCourseName
		if c, ok := r.courses[o.CourseID]; ok {
			row.ItemName = c.Name
			if !o.StartDate.IsZero() {
				row.EndDate = c.EndDate(o.StartDate)
			}
		}
	case o.IsTutor():
		row.ItemKind = "tutor"
		row.ItemName = RemovedTutorName
		if t, ok := r.tutors[o.TutorID]; ok {
			row.ItemName = t.Name
		}
	}

	return row
}
