package oanda

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/STTM-NSU/forex-cli/internal/model"
	"resty.dev/v3"
)

const (
	_ordersURL        = "/v3/accounts/{accountID}/orders"
	_pendingOrdersURL = "/v3/accounts/{accountID}/pendingOrders"
	_cancelOrderURL   = "/v3/accounts/{accountID}/orders/{orderSpecifier}/cancel"
)

// Orders lists orders in the given state (PENDING, FILLED, TRIGGERED,
// CANCELLED or ALL), newest first.
func (c *Client) Orders(ctx context.Context, state string, count int) ([]model.Order, error) {
	var resp model.OrdersResponse
	err := c.send(ctx, http.MethodGet, _ordersURL, &resp, func(r *resty.Request) {
		r.SetQueryParams(map[string]string{
			"state": state,
			"count": strconv.Itoa(count),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("%w: can't list orders", err)
	}
	return resp.Orders, nil
}

func (c *Client) PendingOrders(ctx context.Context) ([]model.Order, error) {
	var resp model.OrdersResponse
	if err := c.send(ctx, http.MethodGet, _pendingOrdersURL, &resp, nil); err != nil {
		return nil, fmt.Errorf("%w: can't list pending orders", err)
	}
	return resp.Orders, nil
}

func (c *Client) CreateLimitOrder(ctx context.Context, order model.LimitOrder) (model.CreateOrderResponse, error) {
	var resp model.CreateOrderResponse
	err := c.send(ctx, http.MethodPost, _ordersURL, &resp, func(r *resty.Request) {
		r.SetBody(model.CreateOrderRequest{Order: order})
	})
	if err != nil {
		return model.CreateOrderResponse{}, fmt.Errorf("%w: can't create order", err)
	}
	return resp, nil
}

func (c *Client) CancelOrder(ctx context.Context, orderID string) (model.Transaction, error) {
	var resp model.CancelOrderResponse
	err := c.send(ctx, http.MethodPut, _cancelOrderURL, &resp, func(r *resty.Request) {
		r.SetPathParam("orderSpecifier", orderID)
	})
	if err != nil {
		return model.Transaction{}, fmt.Errorf("%w: can't cancel order %s", err, orderID)
	}
	return resp.OrderCancelTransaction, nil
}
