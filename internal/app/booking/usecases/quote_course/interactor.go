package quote_course

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/light-bringer/lingua-booking/internal/app/booking/contracts"
	"github.com/light-bringer/lingua-booking/internal/app/booking/domain"
	"github.com/light-bringer/lingua-booking/internal/pkg/clock"
)

// Request contains the data to price a course booking.
type Request struct {
	CourseID    int64
	StartDate   time.Time
	StartTime   *domain.TimeOfDay
	PersonCount int
	Options     domain.CourseOptions

	// DeriveOptions switches on the options that follow from the date,
	// head count and course intensity. Options are only ever added.
	DeriveOptions bool
}

// Response is a priced course quote.
type Response struct {
	QuoteID  string
	Course   *domain.Course
	Input    domain.PricingInput // after automatic options
	Result   *domain.PricingResult
	EndDate  time.Time
	QuotedAt time.Time
}

// Interactor handles the quote course use case.
type Interactor struct {
	catalog     contracts.CatalogGateway
	engine      *domain.CoursePricingEngine
	clock       clock.Clock
	autoOptions bool
}

// NewInteractor creates a new quote course interactor. autoOptions derives
// options on every request regardless of Request.DeriveOptions.
func NewInteractor(
	catalog contracts.CatalogGateway,
	engine *domain.CoursePricingEngine,
	clock clock.Clock,
	autoOptions bool,
) *Interactor {
	return &Interactor{
		catalog:     catalog,
		engine:      engine,
		clock:       clock,
		autoOptions: autoOptions,
	}
}

// Execute loads the course and prices the request.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Load catalog entry
	course, err := i.catalog.GetCourse(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}

	// 2. Build input, deriving options outside the engine
	now := i.clock.Now()
	input := domain.PricingInput{
		StartDate:   req.StartDate,
		StartTime:   req.StartTime,
		PersonCount: req.PersonCount,
		Options:     req.Options,
	}
	if req.DeriveOptions || i.autoOptions {
		input = domain.WithAutomaticOptions(course, input, now)
	}

	// 3. Price
	result, err := i.engine.Compute(course, input)
	if err != nil {
		return nil, err
	}

	return &Response{
		QuoteID:  uuid.New().String(),
		Course:   course,
		Input:    input,
		Result:   result,
		EndDate:  course.EndDate(input.StartDate),
		QuotedAt: now,
	}, nil
}
