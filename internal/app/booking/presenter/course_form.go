package presenter

import (
	"fmt"
	"time"

	"github.com/light-bringer/lingua-booking/internal/app/booking/domain"
)

// CourseForm is the state of one course booking form.
type CourseForm struct {
	course *domain.Course
	engine *domain.CoursePricingEngine
	format *Formatter
	order  *domain.Order

	input  domain.PricingInput
	result *domain.PricingResult
	err    error
}

// NewCourseForm starts an empty booking for course with one person.
func NewCourseForm(course *domain.Course, engine *domain.CoursePricingEngine, format *Formatter) *CourseForm {
	f := &CourseForm{
		course: course,
		engine: engine,
		format: format,
		input:  domain.PricingInput{PersonCount: domain.MinPersons},
	}
	f.recompute()
	return f
}

// EditCourseForm starts from an existing course order.
func EditCourseForm(course *domain.Course, order *domain.Order, engine *domain.CoursePricingEngine, format *Formatter) (*CourseForm, error) {
	if !order.IsCourse() || order.CourseID != course.ID {
		return nil, domain.ErrOrderTargetMismatch
	}
	f := &CourseForm{
		course: course,
		engine: engine,
		format: format,
		order:  order,
		input:  order.PricingInput(),
	}
	f.recompute()
	return f, nil
}

// AvailableDates are the days the course starts on.
func (f *CourseForm) AvailableDates() []time.Time {
	return f.course.StartDays()
}

// TimeSlots are the start times offered on the selected date. Editing an
// order offers the fixed session times instead.
func (f *CourseForm) TimeSlots() []domain.TimeOfDay {
	if f.input.StartDate.IsZero() {
		return nil
	}
	if f.order != nil {
		return domain.TutorTimeSlots
	}
	return f.course.TimeSlotsOn(f.input.StartDate)
}

// SelectDate picks the start date. A previously chosen time that the new
// date does not offer is cleared.
func (f *CourseForm) SelectDate(date time.Time) {
	f.input.StartDate = date
	if f.input.StartTime != nil && !f.offers(date, *f.input.StartTime) {
		f.input.StartTime = nil
	}
	f.recompute()
}

// SelectTime picks a start time offered on the selected date.
func (f *CourseForm) SelectTime(tod domain.TimeOfDay) error {
	if f.input.StartDate.IsZero() || !f.offers(f.input.StartDate, tod) {
		return fmt.Errorf("%w: %s", domain.ErrStartNotOffered, tod)
	}
	f.input.StartTime = &tod
	f.recompute()
	return nil
}

func (f *CourseForm) offers(date time.Time, tod domain.TimeOfDay) bool {
	if f.order != nil {
		return f.order.CanMoveTo(f.course, date)
	}
	return f.course.OffersStart(date, tod)
}

// SetPersons sets the head count. Out-of-range values are kept so the form
// can show the validation error.
func (f *CourseForm) SetPersons(n int) {
	f.input.PersonCount = n
	f.recompute()
}

// Toggle switches a named option.
func (f *CourseForm) Toggle(option string, on bool) error {
	if err := f.input.Options.Set(option, on); err != nil {
		return err
	}
	f.recompute()
	return nil
}

// ApplyAutomaticOptions switches on the options derived from now.
func (f *CourseForm) ApplyAutomaticOptions(now time.Time) {
	f.input = domain.WithAutomaticOptions(f.course, f.input, now)
	f.recompute()
}

// Input returns the current pricing input.
func (f *CourseForm) Input() domain.PricingInput {
	return f.input
}

// Result returns the latest computation.
func (f *CourseForm) Result() (*domain.PricingResult, error) {
	return f.result, f.err
}

// PriceLabel is the formatted price or the placeholder.
func (f *CourseForm) PriceLabel() string {
	return f.format.Result(f.result, f.err)
}

// EndDateLabel is the formatted end date for the selected start.
func (f *CourseForm) EndDateLabel() string {
	if f.input.StartDate.IsZero() {
		return ""
	}
	return f.format.Date(f.course.EndDate(f.input.StartDate))
}

// Order builds the order to submit. It fails when the form cannot be priced.
// An edited order keeps its identity and is returned as a repriced copy.
func (f *CourseForm) Order() (*domain.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.order == nil {
		return domain.NewCourseOrder(f.course, f.input)
	}
	edited := *f.order
	if err := edited.RepriceForCourse(f.course, f.input); err != nil {
		return nil, err
	}
	return &edited, nil
}

func (f *CourseForm) recompute() {
	f.result, f.err = f.engine.Compute(f.course, f.input)
}
