package domain

import (
	"fmt"
	"math/big"
	"time"
)

// Flat amounts and factors used by the course engine.
var (
	weekendFactor = big.NewRat(3, 2)

	morningSurcharge = Units(400)
	eveningSurcharge = Units(1000)

	supplementaryPerPerson = Units(2000)
	personalizedPerWeek    = Units(1500)
	assessmentFee          = Units(300)

	excursionsFactor  = big.NewRat(5, 4)
	interactiveFactor = big.NewRat(3, 2)
	earlyFactor       = big.NewRat(9, 10)
	groupFactor       = big.NewRat(17, 20)
	intensiveFactor   = big.NewRat(6, 5)
)

// Thresholds that gate the group and intensive rules.
const (
	GroupEnrollmentMinPersons = 5
	IntensiveMinWeekHours     = 5
)

// adjustment is one option rule applied to the running total.
type adjustment struct {
	name    string
	applies func(c *Course, in PricingInput) bool
	apply   func(total *Money, c *Course, in PricingInput) *Money
}

func multiplier(factor *big.Rat) func(*Money, *Course, PricingInput) *Money {
	return func(total *Money, _ *Course, _ PricingInput) *Money {
		return total.MultiplyByRat(factor)
	}
}

// courseAdjustments lists the option rules in application order: additive
// options first, then multiplicative ones.
var courseAdjustments = []adjustment{
	{
		name:    RuleSupplementaryMaterials,
		applies: func(_ *Course, in PricingInput) bool { return in.Options.SupplementaryMaterials },
		apply: func(total *Money, _ *Course, in PricingInput) *Money {
			return total.Add(supplementaryPerPerson.MultiplyInt(int64(in.PersonCount)))
		},
	},
	{
		name:    RulePersonalizedSessions,
		applies: func(_ *Course, in PricingInput) bool { return in.Options.PersonalizedSessions },
		apply: func(total *Money, c *Course, _ PricingInput) *Money {
			return total.Add(personalizedPerWeek.MultiplyInt(int64(c.TotalLengthWeeks)))
		},
	},
	{
		name:    RuleLevelAssessment,
		applies: func(_ *Course, in PricingInput) bool { return in.Options.LevelAssessment },
		apply: func(total *Money, _ *Course, _ PricingInput) *Money {
			return total.Add(assessmentFee)
		},
	},
	{
		name:    RuleCulturalExcursions,
		applies: func(_ *Course, in PricingInput) bool { return in.Options.CulturalExcursions },
		apply:   multiplier(excursionsFactor),
	},
	{
		name:    RuleInteractivePlatform,
		applies: func(_ *Course, in PricingInput) bool { return in.Options.InteractivePlatform },
		apply:   multiplier(interactiveFactor),
	},
	{
		name:    RuleEarlyRegistrationDiscount,
		applies: func(_ *Course, in PricingInput) bool { return in.Options.EarlyRegistrationDiscount },
		apply:   multiplier(earlyFactor),
	},
	{
		name: RuleGroupEnrollmentDiscount,
		applies: func(_ *Course, in PricingInput) bool {
			return in.Options.GroupEnrollmentDiscount && in.PersonCount >= GroupEnrollmentMinPersons
		},
		apply: multiplier(groupFactor),
	},
	{
		name: RuleIntensiveCourseSurcharge,
		applies: func(c *Course, in PricingInput) bool {
			return in.Options.IntensiveCourseSurcharge && c.WeekLengthHours >= IntensiveMinWeekHours
		},
		apply: multiplier(intensiveFactor),
	},
}

// CoursePricingEngine prices course bookings. It holds no mutable state and
// never reads the wall clock, so one instance can be shared freely.
type CoursePricingEngine struct {
	adjustments []adjustment
}

// NewCoursePricingEngine creates a CoursePricingEngine.
func NewCoursePricingEngine() *CoursePricingEngine {
	return &CoursePricingEngine{adjustments: courseAdjustments}
}

var defaultCourseEngine = NewCoursePricingEngine()

// ComputeCoursePrice prices a course booking with the default engine.
func ComputeCoursePrice(course *Course, input PricingInput) (*PricingResult, error) {
	return defaultCourseEngine.Compute(course, input)
}

// Compute returns the price of booking course with input.
// The catalog entry is checked before the input.
func (e *CoursePricingEngine) Compute(course *Course, input PricingInput) (*PricingResult, error) {
	if course == nil {
		return nil, fmt.Errorf("%w: no course given", ErrCatalogInconsistency)
	}
	if err := course.Validate(); err != nil {
		return nil, err
	}
	if err := input.validateCourse(); err != nil {
		return nil, err
	}

	applied := make([]string, 0, len(e.adjustments)+2)

	rate := course.FeePerHour.MultiplyInt(int64(course.DurationHours()))
	if isWeekend(input.StartDate) {
		rate = rate.MultiplyByRat(weekendFactor)
		applied = append(applied, RuleWeekendRate)
	}

	surcharge, rule := timeOfDaySurcharge(*input.StartTime)
	if rule != "" {
		applied = append(applied, rule)
	}

	total := rate.Add(surcharge).MultiplyInt(int64(input.PersonCount))

	for _, adj := range e.adjustments {
		if !adj.applies(course, input) {
			continue
		}
		total = adj.apply(total, course, input)
		applied = append(applied, adj.name)
	}

	return &PricingResult{
		TotalPrice:   total.RoundHalfUp(),
		Exact:        total,
		AppliedRules: applied,
	}, nil
}

func isWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// timeOfDaySurcharge returns the flat per-person surcharge for a start time.
// The ranges [9,12) and [18,20) are disjoint, so at most one applies.
func timeOfDaySurcharge(t TimeOfDay) (*Money, string) {
	switch {
	case t.Hour >= 9 && t.Hour < 12:
		return morningSurcharge, RuleMorningSurcharge
	case t.Hour >= 18 && t.Hour < 20:
		return eveningSurcharge, RuleEveningSurcharge
	default:
		return Units(0), ""
	}
}
