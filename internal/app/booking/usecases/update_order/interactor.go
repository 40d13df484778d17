package update_order

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/light-bringer/lingua-booking/internal/app/booking/contracts"
	"github.com/light-bringer/lingua-booking/internal/app/booking/domain"
	"github.com/light-bringer/lingua-booking/internal/pkg/clock"
)

// Request contains the edits to apply to an order. Nil fields keep the
// stored value.
type Request struct {
	OrderID       int64
	StartDate     *time.Time
	StartTime     *domain.TimeOfDay
	PersonCount   *int
	DurationHours *int
	Options       *domain.CourseOptions
	DeriveOptions bool
}

// Interactor handles the update order use case.
type Interactor struct {
	catalog     contracts.CatalogGateway
	orders      contracts.OrderGateway
	clock       clock.Clock
	autoOptions bool
	logger      *zap.Logger
}

// NewInteractor creates a new update order interactor.
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

// Execute re-prices an existing order with the edits applied and saves it.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Order, error) {
	// 1. Load aggregate
	order, err := i.orders.GetOrder(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}

	// 2. Start from the stored input
	input := order.PricingInput()
	if req.StartDate != nil {
		input.StartDate = *req.StartDate
	}
	if req.StartTime != nil {
		t := *req.StartTime
		input.StartTime = &t
	}
	if req.PersonCount != nil {
		input.PersonCount = *req.PersonCount
	}
	if req.DurationHours != nil {
		input.DurationHours = *req.DurationHours
	}
	if req.Options != nil {
		input.Options = *req.Options
	}

	// 3. Re-price with the same engine as the create flow
	previous := order.Price
	if order.IsCourse() {
		course, err := i.catalog.GetCourse(ctx, order.CourseID)
		if err != nil {
			return nil, err
		}
		if req.DeriveOptions || i.autoOptions {
			input = domain.WithAutomaticOptions(course, input, i.clock.Now())
		}
		if err := order.RepriceForCourse(course, input); err != nil {
			return nil, err
		}
	} else {
		tutor, err := i.catalog.GetTutor(ctx, order.TutorID)
		if err != nil {
			return nil, err
		}
		if err := order.RepriceForTutor(tutor, input); err != nil {
			return nil, err
		}
	}

	// 4. Save
	stored, err := i.orders.UpdateOrder(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	i.logger.Info("order updated",
		zap.Int64("order_id", stored.ID),
		zap.Int64("previous_price", previous),
		zap.Int64("price", stored.Price),
	)
	return stored, nil
}
