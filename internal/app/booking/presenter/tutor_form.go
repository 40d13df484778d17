package presenter

import (
	"fmt"
	"time"

	"github.com/light-bringer/lingua-booking/internal/app/booking/domain"
)

// DefaultTutorHours is the duration a new tutor booking starts with.
const DefaultTutorHours = 10

// TutorForm is the state of one tutor booking form.
type TutorForm struct {
	tutor  *domain.Tutor
	engine *domain.TutorPricingEngine
	format *Formatter
	order  *domain.Order

	input  domain.PricingInput
	result *domain.PricingResult
	err    error
}

// NewTutorForm starts a booking for tutor: one person, ten hours.
func NewTutorForm(tutor *domain.Tutor, engine *domain.TutorPricingEngine, format *Formatter) *TutorForm {
	f := &TutorForm{
		tutor:  tutor,
		engine: engine,
		format: format,
		input:  domain.PricingInput{PersonCount: domain.MinPersons, DurationHours: DefaultTutorHours},
	}
	f.recompute()
	return f
}

// EditTutorForm starts from an existing tutor order.
func EditTutorForm(tutor *domain.Tutor, order *domain.Order, engine *domain.TutorPricingEngine, format *Formatter) (*TutorForm, error) {
	if !order.IsTutor() || order.TutorID != tutor.ID {
		return nil, domain.ErrOrderTargetMismatch
	}
	f := &TutorForm{
		tutor:  tutor,
		engine: engine,
		format: format,
		order:  order,
		input:  order.PricingInput(),
	}
	f.recompute()
	return f, nil
}

// TimeSlots are the fixed tutor session start times.
func (f *TutorForm) TimeSlots() []domain.TimeOfDay {
	return domain.TutorTimeSlots
}

// SelectDate picks the first session date.
func (f *TutorForm) SelectDate(date time.Time) {
	f.input.StartDate = date
	f.recompute()
}

// SelectTime picks one of the tutor time slots.
func (f *TutorForm) SelectTime(tod domain.TimeOfDay) error {
	for _, slot := range domain.TutorTimeSlots {
		if slot == tod {
			f.input.StartTime = &tod
			f.recompute()
			return nil
		}
	}
	return fmt.Errorf("%w: %s", domain.ErrStartNotOffered, tod)
}

// SetDuration sets the number of hours.
func (f *TutorForm) SetDuration(hours int) {
	f.input.DurationHours = hours
	f.recompute()
}

// SetPersons sets the head count.
func (f *TutorForm) SetPersons(n int) {
	f.input.PersonCount = n
	f.recompute()
}

// Input returns the current pricing input.
func (f *TutorForm) Input() domain.PricingInput {
	return f.input
}

// Result returns the latest computation.
func (f *TutorForm) Result() (*domain.PricingResult, error) {
	return f.result, f.err
}

// PriceLabel is the formatted price or the placeholder.
func (f *TutorForm) PriceLabel() string {
	return f.format.Result(f.result, f.err)
}

// RateLabel is the formatted hourly rate.
func (f *TutorForm) RateLabel() string {
	if f.tutor.PricePerHour == nil {
		return domain.PricePlaceholder
	}
	return f.format.Price(f.tutor.PricePerHour.RoundHalfUp()) + "/h"
}

// Order builds the order to submit. An edited order is returned as a
// repriced copy.
func (f *TutorForm) Order() (*domain.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.order == nil {
		return domain.NewTutorOrder(f.tutor, f.input)
	}
	edited := *f.order
	if err := edited.RepriceForTutor(f.tutor, f.input); err != nil {
		return nil, err
	}
	return &edited, nil
}

func (f *TutorForm) recompute() {
	f.result, f.err = f.engine.Compute(f.tutor, f.input)
}
