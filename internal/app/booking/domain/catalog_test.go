package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("09:30")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 9, Minute: 30}, tod)
	assert.Equal(t, "09:30", tod.String())

	for _, bad := range []string{"", "9", "25:00", "10:75", "ten"} {
		_, err := ParseTimeOfDay(bad)
		assert.True(t, errors.Is(err, ErrInvalidTimeOfDay), bad)
	}
}

func TestNewTimeOfDay(t *testing.T) {
	tod, err := NewTimeOfDay(18, 0)
	require.NoError(t, err)
	assert.Equal(t, "18:00", tod.String())

	_, err = NewTimeOfDay(24, 0)
	assert.True(t, errors.Is(err, ErrInvalidTimeOfDay))
}

func TestTimeOfDay_SameRangeForPricing(t *testing.T) {
	course := testCourse(8, 4)
	cases := []struct {
		tod   TimeOfDay
		valid bool
	}{
		{TimeOfDay{Hour: 0, Minute: 0}, true},
		{TimeOfDay{Hour: 23, Minute: 59}, true},
		{TimeOfDay{Hour: -1, Minute: 0}, false},
		{TimeOfDay{Hour: 24, Minute: 0}, false},
		{TimeOfDay{Hour: 9, Minute: -1}, false},
		{TimeOfDay{Hour: 9, Minute: 60}, false},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d:%d", tc.tod.Hour, tc.tod.Minute), func(t *testing.T) {
			_, err := NewTimeOfDay(tc.tod.Hour, tc.tod.Minute)
			assert.Equal(t, tc.valid, err == nil)

			tod := tc.tod
			_, err = ComputeCoursePrice(course, PricingInput{StartDate: monday, StartTime: &tod, PersonCount: 1})
			if tc.valid {
				assert.NoError(t, err)
				return
			}
			field, ok := ValidationField(err)
			require.True(t, ok)
			assert.Equal(t, FieldStartTime, field)
		})
	}
}

func TestCourse_Schedule(t *testing.T) {
	loc := time.FixedZone("MSK", 3*60*60)
	course := testCourse(4, 3)
	course.StartDates = []time.Time{
		time.Date(2025, 3, 10, 18, 0, 0, 0, loc),
		time.Date(2025, 3, 8, 10, 0, 0, 0, loc),
		time.Date(2025, 3, 10, 9, 0, 0, 0, loc),
	}

	t.Run("start days are distinct and sorted", func(t *testing.T) {
		days := course.StartDays()
		require.Len(t, days, 2)
		assert.Equal(t, "2025-03-08", days[0].Format(time.DateOnly))
		assert.Equal(t, "2025-03-10", days[1].Format(time.DateOnly))
	})

	t.Run("time slots on a date", func(t *testing.T) {
		slots := course.TimeSlotsOn(time.Date(2025, 3, 10, 0, 0, 0, 0, loc))
		assert.Equal(t, []TimeOfDay{{Hour: 9}, {Hour: 18}}, slots)

		assert.Empty(t, course.TimeSlotsOn(time.Date(2025, 3, 9, 0, 0, 0, 0, loc)))
	})

	t.Run("offers start", func(t *testing.T) {
		day := time.Date(2025, 3, 8, 0, 0, 0, 0, loc)
		assert.True(t, course.OffersStart(day, TimeOfDay{Hour: 10}))
		assert.False(t, course.OffersStart(day, TimeOfDay{Hour: 9}))
	})

	t.Run("offers date", func(t *testing.T) {
		assert.True(t, course.OffersDate(time.Date(2025, 3, 8, 0, 0, 0, 0, loc)))
		assert.False(t, course.OffersDate(time.Date(2025, 3, 9, 0, 0, 0, 0, loc)))
	})

	t.Run("end date", func(t *testing.T) {
		start := time.Date(2025, 3, 8, 0, 0, 0, 0, loc)
		assert.Equal(t, "2025-04-05", course.EndDate(start).Format(time.DateOnly))
	})

	t.Run("duration hours", func(t *testing.T) {
		assert.Equal(t, 12, course.DurationHours())
	})
}

func TestCourse_MatchesSearch(t *testing.T) {
	course := &Course{Name: "Business English", Level: "Intermediate"}

	assert.True(t, course.MatchesSearch(""))
	assert.True(t, course.MatchesSearch("english"))
	assert.True(t, course.MatchesSearch("  INTER "))
	assert.False(t, course.MatchesSearch("german"))
}

func TestTutor_Offers(t *testing.T) {
	tutor := testTutor()

	assert.True(t, tutor.Offers(""))
	assert.True(t, tutor.Offers("German"))
	assert.False(t, tutor.Offers("French"))
}

func TestTutor_Validate(t *testing.T) {
	assert.NoError(t, testTutor().Validate())

	tutor := testTutor()
	tutor.PricePerHour = nil
	err := tutor.Validate()
	var cerr *CatalogInconsistencyError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, FieldPricePerHour, cerr.Field)
}

func TestCourseOptions_Names(t *testing.T) {
	opts, err := ParseOptions([]string{OptionExcursions, OptionAssessment})
	require.NoError(t, err)
	assert.True(t, opts.CulturalExcursions)
	assert.True(t, opts.LevelAssessment)
	assert.Equal(t, []string{OptionAssessment, OptionExcursions}, opts.Enabled())

	require.NoError(t, opts.Set(OptionExcursions, false))
	assert.False(t, opts.CulturalExcursions)

	_, err = ParseOptions([]string{"free_lunch"})
	assert.True(t, errors.Is(err, ErrUnknownOption))
}
