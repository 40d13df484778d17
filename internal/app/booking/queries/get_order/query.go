package get_order

import (
	"context"
	"errors"

	"github.com/light-bringer/lingua-booking/internal/app/booking/contracts"
	"github.com/light-bringer/lingua-booking/internal/app/booking/domain"
	"github.com/light-bringer/lingua-booking/internal/app/booking/queries/list_orders"
)

// Request identifies the order.
type Request struct {
	OrderID int64
}

// Query handles the get order query use case.
type Query struct {
	orders  contracts.OrderGateway
	catalog contracts.CatalogGateway
}

// NewQuery creates a new get order query.
func NewQuery(orders contracts.OrderGateway, catalog contracts.CatalogGateway) *Query {
	return &Query{
		orders:  orders,
		catalog: catalog,
	}
}

// Execute retrieves an order with its course or tutor resolved.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.OrderRow, error) {
	order, err := q.orders.GetOrder(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}

	var courses []*domain.Course
	var tutors []*domain.Tutor

	switch {
	case order.IsCourse():
		course, err := q.catalog.GetCourse(ctx, order.CourseID)
		if err != nil && !errors.Is(err, domain.ErrCourseNotFound) {
			return nil, err
		}
		if course != nil {
			courses = append(courses, course)
		}
	case order.IsTutor():
		tutor, err := q.catalog.GetTutor(ctx, order.TutorID)
		if err != nil && !errors.Is(err, domain.ErrTutorNotFound) {
			return nil, err
		}
		if tutor != nil {
			tutors = append(tutors, tutor)
		}
	}

	return list_orders.NewResolver(courses, tutors).Row(order), nil
}
