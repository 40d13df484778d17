package contracts

import (
	"context"

	"github.com/light-bringer/lingua-booking/internal/app/booking/domain"
)

// CatalogGateway reads the course and tutor catalog from the school API.
type CatalogGateway interface {
	// ListCourses returns every published course
	ListCourses(ctx context.Context) ([]*domain.Course, error)

	// GetCourse returns one course, or domain.ErrCourseNotFound
	GetCourse(ctx context.Context, courseID int64) (*domain.Course, error)

	// ListTutors returns every published tutor
	ListTutors(ctx context.Context) ([]*domain.Tutor, error)

	// GetTutor returns one tutor, or domain.ErrTutorNotFound
	GetTutor(ctx context.Context, tutorID int64) (*domain.Tutor, error)
}

// OrderGateway reads and writes orders through the school API.
// The API owns persistence; the returned orders carry the server-assigned
// ID and timestamps.
type OrderGateway interface {
	ListOrders(ctx context.Context) ([]*domain.Order, error)

	// GetOrder returns one order, or domain.ErrOrderNotFound
	GetOrder(ctx context.Context, orderID int64) (*domain.Order, error)

	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	UpdateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	DeleteOrder(ctx context.Context, orderID int64) error
}
