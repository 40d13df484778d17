package domain

import (
	"math"
	"time"
)

// EarlyRegistrationLeadDays is how far ahead a course must be booked for the
// early registration discount to be derived automatically.
const EarlyRegistrationLeadDays = 30

// DeriveAutomaticOptions returns the options that follow from the booking
// itself: early registration when the start date is at least 30 days after
// now (rounded up to whole days), group enrollment from 5 persons and the
// intensive surcharge for courses of 5 or more hours a week.
//
// The result is meant to be merged into the caller's options; it never
// switches an option off. now is passed in so pricing stays reproducible.
func DeriveAutomaticOptions(course *Course, input PricingInput, now time.Time) CourseOptions {
	var opts CourseOptions

	if !input.StartDate.IsZero() && leadDays(input.StartDate, now) >= EarlyRegistrationLeadDays {
		opts.EarlyRegistrationDiscount = true
	}
	if input.PersonCount >= GroupEnrollmentMinPersons {
		opts.GroupEnrollmentDiscount = true
	}
	if course != nil && course.WeekLengthHours >= IntensiveMinWeekHours {
		opts.IntensiveCourseSurcharge = true
	}

	return opts
}

// WithAutomaticOptions returns input with the derived options merged in.
func WithAutomaticOptions(course *Course, input PricingInput, now time.Time) PricingInput {
	input.Options = input.Options.Merge(DeriveAutomaticOptions(course, input, now))
	return input
}

func leadDays(start, now time.Time) int {
	return int(math.Ceil(start.Sub(now).Hours() / 24))
}
