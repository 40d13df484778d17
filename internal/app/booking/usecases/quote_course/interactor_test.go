package quote_course

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/lingua-booking/internal/app/booking/domain"
	"github.com/light-bringer/lingua-booking/internal/testutil"
)

func newInteractor(autoOptions bool, now time.Time) *Interactor {
	catalog := testutil.NewFakeCatalog(
		[]*domain.Course{testutil.Course(1, "English B2")},
		nil,
	)
	return NewInteractor(catalog, domain.NewCoursePricingEngine(), testutil.NewFixedClock(now), autoOptions)
}

func TestInteractor_Execute(t *testing.T) {
	now := testutil.Saturday.AddDate(0, 0, -10)
	ctx := context.Background()

	t.Run("prices the literal scenario", func(t *testing.T) {
		resp, err := newInteractor(false, now).Execute(ctx, &Request{
			CourseID:    1,
			StartDate:   testutil.Saturday,
			StartTime:   testutil.At(10),
			PersonCount: 2,
			Options:     domain.CourseOptions{CulturalExcursions: true},
		})
		require.NoError(t, err)

		assert.Equal(t, int64(25000), resp.Result.TotalPrice)
		assert.NotEmpty(t, resp.QuoteID)
		assert.Equal(t, now, resp.QuotedAt)
		assert.Equal(t, testutil.Saturday.AddDate(0, 0, 56), resp.EndDate)
	})

	t.Run("derives options on request", func(t *testing.T) {
		farAhead := testutil.Saturday.AddDate(0, -2, 0)
		resp, err := newInteractor(false, farAhead).Execute(ctx, &Request{
			CourseID:      1,
			StartDate:     testutil.Saturday,
			StartTime:     testutil.At(10),
			PersonCount:   2,
			DeriveOptions: true,
		})
		require.NoError(t, err)

		assert.True(t, resp.Input.Options.EarlyRegistrationDiscount)
		assert.Equal(t, int64(18000), resp.Result.TotalPrice)
	})

	t.Run("config enables derivation for every request", func(t *testing.T) {
		resp, err := newInteractor(true, now).Execute(ctx, &Request{
			CourseID:    1,
			StartDate:   testutil.Saturday,
			StartTime:   testutil.At(10),
			PersonCount: 5,
		})
		require.NoError(t, err)

		assert.True(t, resp.Input.Options.GroupEnrollmentDiscount)
		assert.False(t, resp.Input.Options.EarlyRegistrationDiscount)
		assert.Equal(t, int64(42500), resp.Result.TotalPrice) // 50000 * 0.85
	})

	t.Run("missing schedule is a validation error", func(t *testing.T) {
		_, err := newInteractor(false, now).Execute(ctx, &Request{CourseID: 1, PersonCount: 2})
		assert.True(t, errors.Is(err, domain.ErrValidation))
	})

	t.Run("unknown course", func(t *testing.T) {
		_, err := newInteractor(false, now).Execute(ctx, &Request{CourseID: 9})
		assert.True(t, errors.Is(err, domain.ErrCourseNotFound))
	})
}
