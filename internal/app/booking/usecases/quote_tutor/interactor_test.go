package quote_tutor

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

func TestInteractor_Execute(t *testing.T) {
	catalog := testutil.NewFakeCatalog(nil, []*domain.Tutor{testutil.Tutor(3, "Irina")})
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	interactor := NewInteractor(catalog, domain.NewTutorPricingEngine(), testutil.NewFixedClock(now))

	t.Run("prices hours times rate times persons", func(t *testing.T) {
		resp, err := interactor.Execute(context.Background(), &Request{TutorID: 3, DurationHours: 10, PersonCount: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(5000), resp.Result.TotalPrice)
		assert.Equal(t, "Irina", resp.Tutor.Name)
		assert.Equal(t, now, resp.QuotedAt)
	})

	t.Run("zero persons", func(t *testing.T) {
		_, err := interactor.Execute(context.Background(), &Request{TutorID: 3, DurationHours: 10})
		field, ok := domain.ValidationField(err)
		require.True(t, ok)
		assert.Equal(t, domain.FieldPersonCount, field)
	})

	t.Run("unknown tutor", func(t *testing.T) {
		_, err := interactor.Execute(context.Background(), &Request{TutorID: 4, DurationHours: 1, PersonCount: 1})
		assert.True(t, errors.Is(err, domain.ErrTutorNotFound))
	})
}
