package place_order

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/light-bringer/lingua-booking/internal/app/booking/domain"
	"github.com/light-bringer/lingua-booking/internal/testutil"
)

func setup() (*Interactor, *testutil.FakeOrders) {
	catalog := testutil.NewFakeCatalog(
		[]*domain.Course{testutil.Course(1, "English B2")},
		[]*domain.Tutor{testutil.Tutor(3, "Irina")},
	)
	orders := testutil.NewFakeOrders()
	clk := testutil.NewFixedClock(testutil.Saturday.AddDate(0, 0, -3))
	return NewInteractor(catalog, orders, clk, false, zap.NewNop()), orders
}

func TestInteractor_Execute_Course(t *testing.T) {
	interactor, orders := setup()

	order, err := interactor.Execute(context.Background(), &Request{
		CourseID:    1,
		StartDate:   testutil.Saturday,
		StartTime:   testutil.At(10),
		PersonCount: 2,
		Options:     domain.CourseOptions{CulturalExcursions: true},
		StudentID:   77,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), order.ID)
	assert.Equal(t, int64(25000), order.Price)
	assert.Equal(t, 32, order.DurationHours)
	assert.Equal(t, int64(77), order.StudentID)
	assert.Equal(t, 1, orders.Len())
}

func TestInteractor_Execute_Tutor(t *testing.T) {
	interactor, _ := setup()

	order, err := interactor.Execute(context.Background(), &Request{
		TutorID:       3,
		StartDate:     testutil.Monday,
		StartTime:     testutil.At(15),
		PersonCount:   2,
		DurationHours: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4000), order.Price)
	assert.True(t, order.IsTutor())
}

func TestInteractor_Execute_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("no target", func(t *testing.T) {
		interactor, _ := setup()
		_, err := interactor.Execute(ctx, &Request{PersonCount: 1})
		assert.True(t, errors.Is(err, domain.ErrOrderTargetMissing))
	})

	t.Run("both targets", func(t *testing.T) {
		interactor, _ := setup()
		_, err := interactor.Execute(ctx, &Request{CourseID: 1, TutorID: 3, PersonCount: 1})
		assert.True(t, errors.Is(err, domain.ErrOrderTargetMissing))
	})

	t.Run("slot not offered", func(t *testing.T) {
		interactor, orders := setup()
		_, err := interactor.Execute(ctx, &Request{
			CourseID: 1, StartDate: testutil.Saturday, StartTime: testutil.At(12), PersonCount: 1,
		})
		assert.True(t, errors.Is(err, domain.ErrStartNotOffered))
		assert.Zero(t, orders.Len())
	})

	t.Run("validation failure is never submitted", func(t *testing.T) {
		interactor, orders := setup()
		_, err := interactor.Execute(ctx, &Request{
			CourseID: 1, StartDate: testutil.Saturday, StartTime: testutil.At(10), PersonCount: 0,
		})
		assert.True(t, errors.Is(err, domain.ErrValidation))
		assert.Zero(t, orders.Len())
	})

	t.Run("upstream failure is wrapped", func(t *testing.T) {
		interactor, orders := setup()
		boom := errors.New("connection refused")
		orders.Err = boom
		_, err := interactor.Execute(ctx, &Request{
			CourseID: 1, StartDate: testutil.Saturday, StartTime: testutil.At(10), PersonCount: 1,
		})
		assert.ErrorIs(t, err, boom)
	})
}
