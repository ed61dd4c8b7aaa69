package dhan

import (
	"context"
	"fmt"

	"github.com/vikkysarswat/dhan-mcp-server/internal/models"
)

// PlaceOrder submits a new order. The client id from configuration is
// injected when the request leaves it empty.
func (c *Client) PlaceOrder(ctx context.Context, req *models.OrderRequest) (*models.OrderResponse, error) {
	if req.DhanClientID == "" {
		req.DhanClientID = c.clientID
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var resp models.OrderResponse
	if err := c.post(ctx, "/orders", req, &resp); err != nil {
		return nil, fmt.Errorf("placing order: %w", err)
	}
	return &resp, nil
}

// SliceOrder submits an order sliced into multiple legs over the freeze
// limit. The broker answers with one acknowledgement per leg.
func (c *Client) SliceOrder(ctx context.Context, req *models.SliceOrderRequest) ([]models.OrderResponse, error) {
	if req.DhanClientID == "" {
		req.DhanClientID = c.clientID
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var resp []models.OrderResponse
	if err := c.post(ctx, "/orders/slicing", req, &resp); err != nil {
		return nil, fmt.Errorf("slicing order: %w", err)
	}
	return resp, nil
}

// ModifyOrder amends a pending order.
func (c *Client) ModifyOrder(ctx context.Context, req *models.ModifyOrderRequest) (*models.OrderResponse, error) {
	if req.DhanClientID == "" {
		req.DhanClientID = c.clientID
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var resp models.OrderResponse
	if err := c.put(ctx, "/orders/"+req.OrderID, req, &resp); err != nil {
		return nil, fmt.Errorf("modifying order %s: %w", req.OrderID, err)
	}
	return &resp, nil
}

// CancelOrder cancels a pending order by broker order id.
func (c *Client) CancelOrder(ctx context.Context, orderID string) (*models.OrderResponse, error) {
	if err := models.ValidateOrderID("orderId", orderID); err != nil {
		return nil, err
	}
	var resp models.OrderResponse
	if err := c.delete(ctx, "/orders/"+orderID, &resp); err != nil {
		return nil, fmt.Errorf("cancelling order %s: %w", orderID, err)
	}
	return &resp, nil
}

// GetOrders returns the order book for the day.
func (c *Client) GetOrders(ctx context.Context) ([]models.OrderDetail, error) {
	var orders []models.OrderDetail
	if err := c.get(ctx, "/orders", nil, &orders); err != nil {
		return nil, fmt.Errorf("fetching orders: %w", err)
	}
	return orders, nil
}

// GetOrderByID returns the status of one order.
func (c *Client) GetOrderByID(ctx context.Context, orderID string) (*models.OrderDetail, error) {
	if err := models.ValidateOrderID("orderId", orderID); err != nil {
		return nil, err
	}
	var order models.OrderDetail
	if err := c.get(ctx, "/orders/"+orderID, nil, &order); err != nil {
		return nil, fmt.Errorf("fetching order %s: %w", orderID, err)
	}
	return &order, nil
}

// GetOrderByCorrelationID looks an order up by the caller-supplied tag.
func (c *Client) GetOrderByCorrelationID(ctx context.Context, correlationID string) (*models.OrderDetail, error) {
	if err := models.ValidateOrderID("correlationId", correlationID); err != nil {
		return nil, err
	}
	var order models.OrderDetail
	if err := c.get(ctx, "/orders/external/"+correlationID, nil, &order); err != nil {
		return nil, fmt.Errorf("fetching order by correlation id %s: %w", correlationID, err)
	}
	return &order, nil
}
