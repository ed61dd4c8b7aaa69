package dhan

import (
	"context"
	"fmt"

	"github.com/vikkysarswat/dhan-mcp-server/internal/models"
)

// feedPayload is the bare segment-to-ids map the market feed endpoints take.
func feedPayload(req *models.MarketFeedRequest) map[models.ExchangeSegment][]int {
	return req.Instruments
}

// MarketLTP returns last traded prices for the requested instruments.
func (c *Client) MarketLTP(ctx context.Context, req *models.MarketFeedRequest) (*models.MarketFeedResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var resp models.MarketFeedResponse
	if err := c.postFeed(ctx, "/marketfeed/ltp", feedPayload(req), &resp); err != nil {
		return nil, fmt.Errorf("fetching ltp: %w", err)
	}
	return &resp, nil
}

// MarketOHLC returns open/high/low/close snapshots for the requested
// instruments.
func (c *Client) MarketOHLC(ctx context.Context, req *models.MarketFeedRequest) (*models.MarketFeedResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var resp models.MarketFeedResponse
	if err := c.postFeed(ctx, "/marketfeed/ohlc", feedPayload(req), &resp); err != nil {
		return nil, fmt.Errorf("fetching ohlc: %w", err)
	}
	return &resp, nil
}

// MarketDepth returns full quotes including the five-level order book.
func (c *Client) MarketDepth(ctx context.Context, req *models.MarketFeedRequest) (*models.MarketFeedResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var resp models.MarketFeedResponse
	if err := c.postFeed(ctx, "/marketfeed/quote", feedPayload(req), &resp); err != nil {
		return nil, fmt.Errorf("fetching market depth: %w", err)
	}
	return &resp, nil
}
