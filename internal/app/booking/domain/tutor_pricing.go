package domain

import "fmt"

// TutorPricingEngine prices tutor bookings: hours x hourly rate x persons.
type TutorPricingEngine struct{}

// NewTutorPricingEngine creates a TutorPricingEngine.
func NewTutorPricingEngine() *TutorPricingEngine {
	return &TutorPricingEngine{}
}

var defaultTutorEngine = NewTutorPricingEngine()

// ComputeTutorPrice prices a tutor booking with the default engine.
func ComputeTutorPrice(tutor *Tutor, input PricingInput) (*PricingResult, error) {
	return defaultTutorEngine.Compute(tutor, input)
}

// Compute returns the price of booking tutor with input. Date, time and
// course options are ignored.
func (e *TutorPricingEngine) Compute(tutor *Tutor, input PricingInput) (*PricingResult, error) {
	if tutor == nil {
		return nil, fmt.Errorf("%w: no tutor given", ErrCatalogInconsistency)
	}
	if err := tutor.Validate(); err != nil {
		return nil, err
	}
	if err := input.validateTutor(); err != nil {
		return nil, err
	}

	total := tutor.PricePerHour.
		MultiplyInt(int64(input.DurationHours)).
		MultiplyInt(int64(input.PersonCount))

	return &PricingResult{
		TotalPrice:   total.RoundHalfUp(),
		Exact:        total,
		AppliedRules: []string{RuleHourlyRate},
	}, nil
}
