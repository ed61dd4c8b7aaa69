package dhan

import (
	"context"
	"fmt"

	"github.com/vikkysarswat/dhan-mcp-server/internal/models"
)

// HistoricalCharts returns daily OHLC candles for an instrument.
func (c *Client) HistoricalCharts(ctx context.Context, req *models.HistoricalDataRequest) (*models.ChartsResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var resp models.ChartsResponse
	if err := c.post(ctx, "/charts/historical", req, &resp); err != nil {
		return nil, fmt.Errorf("fetching historical charts: %w", err)
	}
	return &resp, nil
}

// IntradayCharts returns minute-level OHLC candles for an instrument.
func (c *Client) IntradayCharts(ctx context.Context, req *models.IntradayDataRequest) (*models.ChartsResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var resp models.ChartsResponse
	if err := c.post(ctx, "/charts/intraday", req, &resp); err != nil {
		return nil, fmt.Errorf("fetching intraday charts: %w", err)
	}
	return &resp, nil
}
