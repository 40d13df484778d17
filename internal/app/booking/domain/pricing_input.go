package domain

import (
	"fmt"
	"time"
)

// Bounds enforced by the pricing engines.
const (
	MinPersons       = 1
	MaxCoursePersons = 20
	MaxTutorPersons  = 5
	MinTutorHours    = 1
	MaxTutorHours    = 40
)

// CourseOptions are the named toggles a course booking can carry.
type CourseOptions struct {
	SupplementaryMaterials    bool
	PersonalizedSessions      bool
	CulturalExcursions        bool
	LevelAssessment           bool
	InteractivePlatform       bool
	EarlyRegistrationDiscount bool
	GroupEnrollmentDiscount   bool
	IntensiveCourseSurcharge  bool
}

// Course option names as used in order payloads and requests.
const (
	OptionSupplementary     = "supplementary"
	OptionPersonalized      = "personalized"
	OptionExcursions        = "excursions"
	OptionAssessment        = "assessment"
	OptionInteractive       = "interactive"
	OptionEarlyRegistration = "early_registration"
	OptionGroupEnrollment   = "group_enrollment"
	OptionIntensiveCourse   = "intensive_course"
)

// OptionNames lists every option name in pricing order.
var OptionNames = []string{
	OptionSupplementary,
	OptionPersonalized,
	OptionAssessment,
	OptionExcursions,
	OptionInteractive,
	OptionEarlyRegistration,
	OptionGroupEnrollment,
	OptionIntensiveCourse,
}

func (o *CourseOptions) field(name string) *bool {
	switch name {
	case OptionSupplementary:
		return &o.SupplementaryMaterials
	case OptionPersonalized:
		return &o.PersonalizedSessions
	case OptionExcursions:
		return &o.CulturalExcursions
	case OptionAssessment:
		return &o.LevelAssessment
	case OptionInteractive:
		return &o.InteractivePlatform
	case OptionEarlyRegistration:
		return &o.EarlyRegistrationDiscount
	case OptionGroupEnrollment:
		return &o.GroupEnrollmentDiscount
	case OptionIntensiveCourse:
		return &o.IntensiveCourseSurcharge
	}
	return nil
}

// Set switches the named option on or off.
func (o *CourseOptions) Set(name string, on bool) error {
	f := o.field(name)
	if f == nil {
		return fmt.Errorf("%w: %q", ErrUnknownOption, name)
	}
	*f = on
	return nil
}

// Enabled returns the names of the options that are on, in pricing order.
func (o CourseOptions) Enabled() []string {
	names := make([]string, 0, len(OptionNames))
	for _, name := range OptionNames {
		if *o.field(name) {
			names = append(names, name)
		}
	}
	return names
}

// ParseOptions builds CourseOptions from a list of option names.
func ParseOptions(names []string) (CourseOptions, error) {
	var o CourseOptions
	for _, name := range names {
		if err := o.Set(name, true); err != nil {
			return CourseOptions{}, err
		}
	}
	return o, nil
}

// Merge returns o with every option set in other also set.
func (o CourseOptions) Merge(other CourseOptions) CourseOptions {
	return CourseOptions{
		SupplementaryMaterials:    o.SupplementaryMaterials || other.SupplementaryMaterials,
		PersonalizedSessions:      o.PersonalizedSessions || other.PersonalizedSessions,
		CulturalExcursions:        o.CulturalExcursions || other.CulturalExcursions,
		LevelAssessment:           o.LevelAssessment || other.LevelAssessment,
		InteractivePlatform:       o.InteractivePlatform || other.InteractivePlatform,
		EarlyRegistrationDiscount: o.EarlyRegistrationDiscount || other.EarlyRegistrationDiscount,
		GroupEnrollmentDiscount:   o.GroupEnrollmentDiscount || other.GroupEnrollmentDiscount,
		IntensiveCourseSurcharge:  o.IntensiveCourseSurcharge || other.IntensiveCourseSurcharge,
	}
}

// PricingInput is one snapshot of a pricing request.
// A zero StartDate or nil StartTime means the value has not been chosen yet.
type PricingInput struct {
	StartDate     time.Time
	StartTime     *TimeOfDay
	PersonCount   int
	DurationHours int // tutor mode only
	Options       CourseOptions
}

// HasSchedule reports whether both start date and start time are set.
func (in PricingInput) HasSchedule() bool {
	return !in.StartDate.IsZero() && in.StartTime != nil
}

func (in PricingInput) validateCourse() error {
	if in.StartDate.IsZero() {
		return newValidationError(FieldStartDate, "is required")
	}
	if in.StartTime == nil {
		return newValidationError(FieldStartTime, "is required")
	}
	if !in.StartTime.valid() {
		return newValidationError(FieldStartTime, "%s is not a valid time of day", in.StartTime)
	}
	return validateRange(FieldPersonCount, in.PersonCount, MinPersons, MaxCoursePersons)
}

func (in PricingInput) validateTutor() error {
	if err := validateRange(FieldPersonCount, in.PersonCount, MinPersons, MaxTutorPersons); err != nil {
		return err
	}
	return validateRange(FieldDurationHours, in.DurationHours, MinTutorHours, MaxTutorHours)
}

func validateRange(field string, value, lo, hi int) error {
	if value < lo || value > hi {
		return newValidationError(field, "must be between %d and %d, got %d", lo, hi, value)
	}
	return nil
}
