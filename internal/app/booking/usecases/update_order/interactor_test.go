package update_order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/light-bringer/lingua-booking/internal/app/booking/domain"
	"github.com/light-bringer/lingua-booking/internal/testutil"
)

func setup(t *testing.T) (*Interactor, *testutil.FakeOrders, *testutil.FakeCatalog) {
	t.Helper()
	course := testutil.Course(1, "English B2")
	catalog := testutil.NewFakeCatalog([]*domain.Course{course}, []*domain.Tutor{testutil.Tutor(3, "Irina")})

	courseOrder, err := domain.NewCourseOrder(course, domain.PricingInput{
		StartDate: testutil.Saturday, StartTime: testutil.At(10), PersonCount: 2,
	})
	require.NoError(t, err)
	courseOrder.ID = 10

	tutorOrder := &domain.Order{
		ID: 11, TutorID: 3, StartDate: testutil.Monday, StartTime: domain.TimeOfDay{Hour: 9},
		DurationHours: 2, Persons: 1, Price: 1000,
	}

	orders := testutil.NewFakeOrders(courseOrder, tutorOrder)
	clk := testutil.NewFixedClock(testutil.Saturday.AddDate(0, 0, -1))
	return NewInteractor(catalog, orders, clk, false, zap.NewNop()), orders, catalog
}

func TestInteractor_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("re-prices a course order", func(t *testing.T) {
		interactor, orders, _ := setup(t)
		persons := 3
		opts := domain.CourseOptions{LevelAssessment: true}

		order, err := interactor.Execute(ctx, &Request{OrderID: 10, PersonCount: &persons, Options: &opts})
		require.NoError(t, err)
		assert.Equal(t, int64(30300), order.Price)

		stored, err := orders.GetOrder(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(30300), stored.Price)
		assert.Equal(t, 3, stored.Persons)
	})

	t.Run("moves a course order to another offered slot", func(t *testing.T) {
		interactor, _, _ := setup(t)
		evening := domain.TimeOfDay{Hour: 18}

		order, err := interactor.Execute(ctx, &Request{OrderID: 10, StartTime: &evening})
		require.NoError(t, err)
		assert.Equal(t, int64(21200), order.Price) // (9600 + 1000) * 2
	})

	t.Run("changes head count after the start was withdrawn", func(t *testing.T) {
		interactor, orders, catalog := setup(t)
		course, err := catalog.GetCourse(ctx, 1)
		require.NoError(t, err)
		course.StartDates = []time.Time{testutil.Monday.Add(9 * time.Hour)}
		persons := 3

		order, err := interactor.Execute(ctx, &Request{OrderID: 10, PersonCount: &persons})
		require.NoError(t, err)
		assert.Equal(t, int64(30000), order.Price)

		stored, err := orders.GetOrder(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, 3, stored.Persons)
		assert.Equal(t, domain.TimeOfDay{Hour: 10}, stored.StartTime)
	})

	t.Run("moves a course order to an unlisted time", func(t *testing.T) {
		interactor, _, _ := setup(t)
		afternoon := domain.TimeOfDay{Hour: 15}

		order, err := interactor.Execute(ctx, &Request{OrderID: 10, StartTime: &afternoon})
		require.NoError(t, err)
		assert.Equal(t, int64(19200), order.Price)
	})

	t.Run("rejects a day the course does not start on", func(t *testing.T) {
		interactor, orders, _ := setup(t)
		sunday := testutil.Saturday.AddDate(0, 0, 1)

		_, err := interactor.Execute(ctx, &Request{OrderID: 10, StartDate: &sunday})
		assert.True(t, errors.Is(err, domain.ErrStartNotOffered))

		stored, err := orders.GetOrder(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, testutil.Saturday, stored.StartDate)
	})

	t.Run("re-prices a tutor order", func(t *testing.T) {
		interactor, _, _ := setup(t)
		hours := 6

		order, err := interactor.Execute(ctx, &Request{OrderID: 11, DurationHours: &hours})
		require.NoError(t, err)
		assert.Equal(t, int64(3000), order.Price)
	})

	t.Run("invalid edit leaves stored order alone", func(t *testing.T) {
		interactor, orders, _ := setup(t)
		persons := 21

		_, err := interactor.Execute(ctx, &Request{OrderID: 10, PersonCount: &persons})
		assert.True(t, errors.Is(err, domain.ErrValidation))

		stored, err := orders.GetOrder(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(20000), stored.Price)
	})

	t.Run("unknown order", func(t *testing.T) {
		interactor, _, _ := setup(t)
		_, err := interactor.Execute(ctx, &Request{OrderID: 99})
		assert.True(t, errors.Is(err, domain.ErrOrderNotFound))
	})

	t.Run("course removed from catalog", func(t *testing.T) {
		interactor, _, catalog := setup(t)
		catalog.Err = domain.ErrCourseNotFound
		_, err := interactor.Execute(ctx, &Request{OrderID: 10})
		assert.True(t, errors.Is(err, domain.ErrCourseNotFound))
	})
}
