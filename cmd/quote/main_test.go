package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/light-bringer/lingua-booking/internal/app/booking/domain"
	"github.com/light-bringer/lingua-booking/internal/app/booking/presenter"
	"github.com/light-bringer/lingua-booking/internal/testutil"
)

func TestRenderCourse(t *testing.T) {
	format := presenter.NewFormatter(language.English)
	course := testutil.Course(1, "English B2")

	t.Run("without a start lists the dates", func(t *testing.T) {
		form := presenter.NewCourseForm(course, domain.NewCoursePricingEngine(), format)

		var buf bytes.Buffer
		require.NoError(t, renderCourse(&buf, course, form, format))
		assert.Contains(t, buf.String(), "Start dates:")
		assert.Contains(t, buf.String(), "2025-03-08, 2025-03-10")
		assert.Contains(t, buf.String(), domain.PricePlaceholder)
	})

	t.Run("priced quote", func(t *testing.T) {
		form := presenter.NewCourseForm(course, domain.NewCoursePricingEngine(), format)
		form.SelectDate(testutil.Saturday)
		require.NoError(t, form.SelectTime(domain.TimeOfDay{Hour: 10}))
		form.SetPersons(2)
		require.NoError(t, form.Toggle(domain.OptionExcursions, true))

		var buf bytes.Buffer
		require.NoError(t, renderCourse(&buf, course, form, format))
		out := buf.String()
		assert.Contains(t, out, "2025-03-08 10:00")
		assert.Contains(t, out, "Ends:")
		assert.Contains(t, out, "excursions")
		assert.Contains(t, out, "25,000 ₽")
	})
}

func TestRenderTutor(t *testing.T) {
	format := presenter.NewFormatter(language.English)
	tutor := testutil.Tutor(7, "Irina", "English", "German")

	form := presenter.NewTutorForm(tutor, domain.NewTutorPricingEngine(), format)
	form.SetDuration(10)

	var buf bytes.Buffer
	require.NoError(t, renderTutor(&buf, tutor, form))
	assert.Contains(t, buf.String(), "English, German")
	assert.Contains(t, buf.String(), "5,000 ₽")
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a, ,b "))
	assert.Nil(t, splitList(""))
}
