package place_order

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/light-bringer/lingua-booking/internal/app/booking/contracts"
	"github.com/light-bringer/lingua-booking/internal/app/booking/domain"
	"github.com/light-bringer/lingua-booking/internal/pkg/clock"
)

// Request contains the data to place an order. Exactly one of CourseID and
// TutorID must be set. The price is always computed here; callers cannot
// supply one.
type Request struct {
	CourseID      int64
	TutorID       int64
	StartDate     time.Time
	StartTime     *domain.TimeOfDay
	PersonCount   int
	DurationHours int // tutor orders only
	Options       domain.CourseOptions
	DeriveOptions bool
	StudentID     int64
}

// Interactor handles the place order use case.
type Interactor struct {
	catalog     contracts.CatalogGateway
	orders      contracts.OrderGateway
	clock       clock.Clock
	autoOptions bool
	logger      *zap.Logger
}

// NewInteractor creates a new place order interactor.
func NewInteractor(
	catalog contracts.CatalogGateway,
	orders contracts.OrderGateway,
	clock clock.Clock,
	autoOptions bool,
	logger *zap.Logger,
) *Interactor {
	return &Interactor{
		catalog:     catalog,
		orders:      orders,
		clock:       clock,
		autoOptions: autoOptions,
		logger:      logger,
	}
}

// Execute prices and submits a new order.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Order, error) {
	// 1. Build the priced aggregate
	order, err := i.buildOrder(ctx, req)
	if err != nil {
		return nil, err
	}
	order.StudentID = req.StudentID

	// 2. Submit
	stored, err := i.orders.CreateOrder(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("failed to submit order: %w", err)
	}

	i.logger.Info("order placed",
		zap.Int64("order_id", stored.ID),
		zap.Int64("course_id", stored.CourseID),
		zap.Int64("tutor_id", stored.TutorID),
		zap.Int64("price", stored.Price),
	)
	return stored, nil
}

func (i *Interactor) buildOrder(ctx context.Context, req *Request) (*domain.Order, error) {
	input := domain.PricingInput{
		StartDate:     req.StartDate,
		StartTime:     req.StartTime,
		PersonCount:   req.PersonCount,
		DurationHours: req.DurationHours,
		Options:       req.Options,
	}

	switch {
	case req.CourseID != 0 && req.TutorID == 0:
		course, err := i.catalog.GetCourse(ctx, req.CourseID)
		if err != nil {
			return nil, err
		}
		input.DurationHours = 0
		if req.DeriveOptions || i.autoOptions {
			input = domain.WithAutomaticOptions(course, input, i.clock.Now())
		}
		return domain.NewCourseOrder(course, input)

	case req.TutorID != 0 && req.CourseID == 0:
		tutor, err := i.catalog.GetTutor(ctx, req.TutorID)
		if err != nil {
			return nil, err
		}
		return domain.NewTutorOrder(tutor, input)

	default:
		return nil, domain.ErrOrderTargetMissing
	}
}
