package delete_order

import (
	"context"

	"go.uber.org/zap"

	"github.com/light-bringer/lingua-booking/internal/app/booking/contracts"
)

// Request identifies the order to delete.
type Request struct {
	OrderID int64
}

// Interactor handles the delete order use case.
type Interactor struct {
	orders contracts.OrderGateway
	logger *zap.Logger
}

// NewInteractor creates a new delete order interactor.
func NewInteractor(orders contracts.OrderGateway, logger *zap.Logger) *Interactor {
	return &Interactor{
		orders: orders,
		logger: logger,
	}
}

// Execute deletes the order.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	if err := i.orders.DeleteOrder(ctx, req.OrderID); err != nil {
		return err
	}
	i.logger.Info("order deleted", zap.Int64("order_id", req.OrderID))
	return nil
}
