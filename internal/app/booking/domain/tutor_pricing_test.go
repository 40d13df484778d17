package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTutor() *Tutor {
	return &Tutor{
		ID:               3,
		Name:             "Irina",
		LanguageLevel:    "Advanced",
		LanguagesOffered: []string{"English", "German"},
		WorkExperience:   7,
		PricePerHour:     Units(500),
	}
}

func TestTutorPricingEngine_Compute(t *testing.T) {
	engine := NewTutorPricingEngine()

	t.Run("literal scenario", func(t *testing.T) {
		result, err := engine.Compute(testTutor(), PricingInput{DurationHours: 10, PersonCount: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(5000), result.TotalPrice)
		assert.Equal(t, []string{RuleHourlyRate}, result.AppliedRules)
	})

	t.Run("ignores date, time and options", func(t *testing.T) {
		result, err := engine.Compute(testTutor(), PricingInput{
			StartDate:     saturday,
			StartTime:     at(18),
			DurationHours: 10,
			PersonCount:   1,
			Options:       CourseOptions{CulturalExcursions: true, InteractivePlatform: true},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(5000), result.TotalPrice)
	})

	t.Run("strictly increasing in persons", func(t *testing.T) {
		prev := int64(0)
		for persons := MinPersons; persons <= MaxTutorPersons; persons++ {
			result, err := ComputeTutorPrice(testTutor(), PricingInput{DurationHours: 4, PersonCount: persons})
			require.NoError(t, err)
			assert.Greater(t, result.TotalPrice, prev)
			prev = result.TotalPrice
		}
		assert.Equal(t, int64(10000), prev) // 4 * 500 * 5
	})
}

func TestTutorPricingEngine_Validation(t *testing.T) {
	cases := []struct {
		name  string
		input PricingInput
		field string
	}{
		{"zero persons", PricingInput{DurationHours: 10, PersonCount: 0}, FieldPersonCount},
		{"too many persons", PricingInput{DurationHours: 10, PersonCount: 6}, FieldPersonCount},
		{"zero hours", PricingInput{DurationHours: 0, PersonCount: 1}, FieldDurationHours},
		{"too many hours", PricingInput{DurationHours: 41, PersonCount: 1}, FieldDurationHours},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ComputeTutorPrice(testTutor(), tc.input)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.Is(err, ErrValidation))

			field, ok := ValidationField(err)
			require.True(t, ok)
			assert.Equal(t, tc.field, field)
		})
	}

	t.Run("bounds are inclusive", func(t *testing.T) {
		_, err := ComputeTutorPrice(testTutor(), PricingInput{DurationHours: MaxTutorHours, PersonCount: MaxTutorPersons})
		assert.NoError(t, err)
		_, err = ComputeTutorPrice(testTutor(), PricingInput{DurationHours: MinTutorHours, PersonCount: MinPersons})
		assert.NoError(t, err)
	})
}

func TestTutorPricingEngine_CatalogInconsistency(t *testing.T) {
	tutor := testTutor()
	tutor.PricePerHour = Units(0)

	_, err := ComputeTutorPrice(tutor, PricingInput{DurationHours: 10, PersonCount: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCatalogInconsistency))
	assert.Contains(t, err.Error(), "tutor 3")

	_, err = ComputeTutorPrice(nil, PricingInput{DurationHours: 10, PersonCount: 1})
	assert.True(t, errors.Is(err, ErrCatalogInconsistency))
}
