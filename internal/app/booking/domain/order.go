package domain

import (
	"fmt"
	"time"
)

// TutorTimeSlots are the start times offered for tutor sessions.
var TutorTimeSlots = []TimeOfDay{
	{Hour: 9}, {Hour: 10}, {Hour: 12}, {Hour: 15}, {Hour: 18}, {Hour: 19},
}

// Order is a booking of either a course or a tutor. Exactly one of CourseID
// and TutorID is non-zero.
type Order struct {
	ID            int64
	CourseID      int64
	TutorID       int64
	StartDate     time.Time
	StartTime     TimeOfDay
	DurationHours int
	Persons       int
	Price         int64
	Options       CourseOptions
	StudentID     int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewCourseOrder prices input against course and returns an unsaved order.
func NewCourseOrder(course *Course, input PricingInput) (*Order, error) {
	if course == nil {
		return nil, fmt.Errorf("%w: no course given", ErrCatalogInconsistency)
	}
	o := &Order{CourseID: course.ID}
	if err := o.repriceCourse(course, input, true); err != nil {
		return nil, err
	}
	return o, nil
}

// NewTutorOrder prices input against tutor and returns an unsaved order.
func NewTutorOrder(tutor *Tutor, input PricingInput) (*Order, error) {
	if tutor == nil {
		return nil, fmt.Errorf("%w: no tutor given", ErrCatalogInconsistency)
	}
	o := &Order{TutorID: tutor.ID}
	if err := o.RepriceForTutor(tutor, input); err != nil {
		return nil, err
	}
	return o, nil
}

// IsCourse reports whether the order books a course.
func (o *Order) IsCourse() bool {
	return o.CourseID != 0 && o.TutorID == 0
}

// IsTutor reports whether the order books a tutor.
func (o *Order) IsTutor() bool {
	return o.TutorID != 0 && o.CourseID == 0
}

// Validate checks that the order references exactly one catalog entry.
func (o *Order) Validate() error {
	if o.IsCourse() == o.IsTutor() {
		return fmt.Errorf("%w: course_id=%d tutor_id=%d", ErrOrderTargetMissing, o.CourseID, o.TutorID)
	}
	return nil
}

// PricingInput rebuilds the input the order was priced from. Edit flows
// start from this snapshot.
func (o *Order) PricingInput() PricingInput {
	in := PricingInput{
		StartDate:   o.StartDate,
		PersonCount: o.Persons,
		Options:     o.Options,
	}
	if !o.StartDate.IsZero() {
		t := o.StartTime
		in.StartTime = &t
	}
	if o.IsTutor() {
		in.DurationHours = o.DurationHours
		in.Options = CourseOptions{}
	}
	return in
}

// CanMoveTo reports whether an edit may move the course order to date. Its
// current start day is always allowed.
func (o *Order) CanMoveTo(course *Course, date time.Time) bool {
	return len(course.StartDates) == 0 || sameDay(date, o.StartDate) || course.OffersDate(date)
}

// RepriceForCourse applies an edit to the order and recomputes its price.
// A new start date must be one of the course's start days; the time may be
// any valid time of day. An unchanged start is accepted even if the course
// no longer lists it. The order is left untouched on error.
func (o *Order) RepriceForCourse(course *Course, input PricingInput) error {
	return o.repriceCourse(course, input, false)
}

func (o *Order) repriceCourse(course *Course, input PricingInput, exactStart bool) error {
	if course == nil || !o.IsCourse() || o.CourseID != course.ID {
		return ErrOrderTargetMismatch
	}
	result, err := ComputeCoursePrice(course, input)
	if err != nil {
		return err
	}
	offered := o.CanMoveTo(course, input.StartDate)
	if exactStart && len(course.StartDates) > 0 {
		offered = course.OffersStart(input.StartDate, *input.StartTime)
	}
	if !offered {
		return fmt.Errorf("%w: %s %s", ErrStartNotOffered, input.StartDate.Format(time.DateOnly), input.StartTime)
	}

	o.StartDate = input.StartDate
	o.StartTime = *input.StartTime
	o.DurationHours = course.DurationHours()
	o.Persons = input.PersonCount
	o.Options = input.Options
	o.Price = result.TotalPrice
	return nil
}

// RepriceForTutor applies input to the order and recomputes its price.
// Tutor orders also need a start date and time even though the price does
// not depend on them.
func (o *Order) RepriceForTutor(tutor *Tutor, input PricingInput) error {
	if tutor == nil || !o.IsTutor() || o.TutorID != tutor.ID {
		return ErrOrderTargetMismatch
	}
	result, err := ComputeTutorPrice(tutor, input)
	if err != nil {
		return err
	}
	if input.StartDate.IsZero() {
		return newValidationError(FieldStartDate, "is required")
	}
	if input.StartTime == nil {
		return newValidationError(FieldStartTime, "is required")
	}

	o.StartDate = input.StartDate
	o.StartTime = *input.StartTime
	o.DurationHours = input.DurationHours
	o.Persons = input.PersonCount
	o.Options = CourseOptions{}
	o.Price = result.TotalPrice
	return nil
}
