package quote_tutor

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/light-bringer/lingua-booking/internal/app/booking/contracts"
	"github.com/light-bringer/lingua-booking/internal/app/booking/domain"
	"github.com/light-bringer/lingua-booking/internal/pkg/clock"
)

// Request contains the data to price a tutor booking.
type Request struct {
	TutorID       int64
	DurationHours int
	PersonCount   int
}

// Response is a priced tutor quote.
type Response struct {
	QuoteID  string
	Tutor    *domain.Tutor
	Result   *domain.PricingResult
	QuotedAt time.Time
}

// Interactor handles the quote tutor use case.
type Interactor struct {
	catalog contracts.CatalogGateway
	engine  *domain.TutorPricingEngine
	clock   clock.Clock
}

// NewInteractor creates a new quote tutor interactor.
func NewInteractor(catalog contracts.CatalogGateway, engine *domain.TutorPricingEngine, clock clock.Clock) *Interactor {
	return &Interactor{
		catalog: catalog,
		engine:  engine,
		clock:   clock,
	}
}

// Execute loads the tutor and prices the request.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Response, error) {
	tutor, err := i.catalog.GetTutor(ctx, req.TutorID)
	if err != nil {
		return nil, err
	}

	result, err := i.engine.Compute(tutor, domain.PricingInput{
		DurationHours: req.DurationHours,
		PersonCount:   req.PersonCount,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		QuoteID:  uuid.New().String(),
		Tutor:    tutor,
		Result:   result,
		QuotedAt: i.clock.Now(),
	}, nil
}
