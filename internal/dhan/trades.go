package dhan

import (
	"context"
	"fmt"

	"github.com/vikkysarswat/dhan-mcp-server/internal/models"
)

// GetTrades returns all trades executed today.
func (c *Client) GetTrades(ctx context.Context) ([]models.Trade, error) {
	var trades []models.Trade
	if err := c.get(ctx, "/trades", nil, &trades); err != nil {
		return nil, fmt.Errorf("fetching trades: %w", err)
	}
	return trades, nil
}

// GetTradesByOrderID returns the trades of one order.
func (c *Client) GetTradesByOrderID(ctx context.Context, orderID string) ([]models.Trade, error) {
	if err := models.ValidateOrderID("orderId", orderID); err != nil {
		return nil, err
	}
	var trades []models.Trade
	if err := c.get(ctx, "/trades/"+orderID, nil, &trades); err != nil {
		return nil, fmt.Errorf("fetching trades for order %s: %w", orderID, err)
	}
	return trades, nil
}

// GetHistoricalTrades returns a page of trades for a past date range.
func (c *Client) GetHistoricalTrades(ctx context.Context, rng *models.DateRangeRequest) ([]models.Trade, error) {
	if err := rng.Validate(); err != nil {
		return nil, err
	}
	endpoint := fmt.Sprintf("/trades/%s/%s/%d", rng.FromDate, rng.ToDate, rng.Page)
	var trades []models.Trade
	if err := c.get(ctx, endpoint, nil, &trades); err != nil {
		return nil, fmt.Errorf("fetching historical trades: %w", err)
	}
	return trades, nil
}
