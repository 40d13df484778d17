package gateway

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/light-bringer/lingua-booking/internal/app/booking/contracts"
	"github.com/light-bringer/lingua-booking/internal/app/booking/domain"
)

var _ contracts.OrderGateway = (*Client)(nil)

func orderPath(orderID int64) string {
	return "/api/orders/" + strconv.FormatInt(orderID, 10)
}

// ListOrders fetches GET /api/orders.
func (c *Client) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	var dtos []orderDTO
	if err := c.do(ctx, http.MethodGet, "/api/orders", nil, &dtos); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	orders := make([]*domain.Order, 0, len(dtos))
	for i := range dtos {
		order, err := c.toOrder(&dtos[i])
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// GetOrder fetches GET /api/orders/{id}.
func (c *Client) GetOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	var dto orderDTO
	if err := c.do(ctx, http.MethodGet, orderPath(orderID), nil, &dto); err != nil {
		return nil, c.orderError(err, "get", orderID)
	}
	return c.toOrder(&dto)
}

// CreateOrder sends POST /api/orders and returns the stored order.
func (c *Client) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	body := fromOrder(order)
	body.ID = 0

	var dto orderDTO
	if err := c.do(ctx, http.MethodPost, "/api/orders", body, &dto); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return c.toOrder(&dto)
}

// UpdateOrder sends PUT /api/orders/{id} and returns the stored order.
func (c *Client) UpdateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	var dto orderDTO
	if err := c.do(ctx, http.MethodPut, orderPath(order.ID), fromOrder(order), &dto); err != nil {
		return nil, c.orderError(err, "update", order.ID)
	}
	return c.toOrder(&dto)
}

// DeleteOrder sends DELETE /api/orders/{id}.
func (c *Client) DeleteOrder(ctx context.Context, orderID int64) error {
	if err := c.do(ctx, http.MethodDelete, orderPath(orderID), nil, nil); err != nil {
		return c.orderError(err, "delete", orderID)
	}
	return nil
}

func (c *Client) orderError(err error, op string, orderID int64) error {
	if StatusCode(err) == http.StatusNotFound {
		return fmt.Errorf("%w: %d", domain.ErrOrderNotFound, orderID)
	}
	return fmt.Errorf("failed to %s order %d: %w", op, orderID, err)
}
