package domain

// PricePlaceholder is shown instead of a price that cannot be computed.
const PricePlaceholder = "—"

// Rule names reported in PricingResult.AppliedRules.
const (
	RuleWeekendRate               = "weekend_rate"
	RuleMorningSurcharge          = "morning_surcharge"
	RuleEveningSurcharge          = "evening_surcharge"
	RuleSupplementaryMaterials    = "supplementary_materials"
	RulePersonalizedSessions      = "personalized_sessions"
	RuleLevelAssessment           = "level_assessment"
	RuleCulturalExcursions        = "cultural_excursions"
	RuleInteractivePlatform       = "interactive_platform"
	RuleEarlyRegistrationDiscount = "early_registration_discount"
	RuleGroupEnrollmentDiscount   = "group_enrollment_discount"
	RuleIntensiveCourseSurcharge  = "intensive_course_surcharge"
	RuleHourlyRate                = "hourly_rate"
)

// PricingResult is the outcome of one pricing computation.
type PricingResult struct {
	TotalPrice   int64  // rounded half-up to whole currency units
	Exact        *Money // unrounded total
	AppliedRules []string
}

// Applied reports whether the named rule changed the price.
func (r *PricingResult) Applied(rule string) bool {
	for _, name := range r.AppliedRules {
		if name == rule {
			return true
		}
	}
	return false
}
