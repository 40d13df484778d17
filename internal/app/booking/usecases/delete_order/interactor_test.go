package delete_order

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

func TestInteractor_Execute(t *testing.T) {
	orders := testutil.NewFakeOrders(&domain.Order{ID: 5, TutorID: 1})
	interactor := NewInteractor(orders, zap.NewNop())

	require.NoError(t, interactor.Execute(context.Background(), &Request{OrderID: 5}))
	assert.Zero(t, orders.Len())

	err := interactor.Execute(context.Background(), &Request{OrderID: 5})
	assert.True(t, errors.Is(err, domain.ErrOrderNotFound))
}
