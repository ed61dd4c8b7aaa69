package dhan

import (
	"context"
	"fmt"

	"github.com/vikkysarswat/dhan-mcp-server/internal/models"
)

// GetProfile returns the account profile, which doubles as a token check:
// an expired token fails here with a 401.
func (c *Client) GetProfile(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile
	if err := c.get(ctx, "/profile", nil, &profile); err != nil {
		return nil, fmt.Errorf("fetching profile: %w", err)
	}
	return &profile, nil
}

// GetPositions returns all open positions.
func (c *Client) GetPositions(ctx context.Context) ([]models.Position, error) {
	var positions []models.Position
	if err := c.get(ctx, "/positions", nil, &positions); err != nil {
		return nil, fmt.Errorf("fetching positions: %w", err)
	}
	return positions, nil
}

// GetHoldings returns demat holdings.
func (c *Client) GetHoldings(ctx context.Context) ([]models.Holding, error) {
	var holdings []models.Holding
	if err := c.get(ctx, "/holdings", nil, &holdings); err != nil {
		return nil, fmt.Errorf("fetching holdings: %w", err)
	}
	return holdings, nil
}

// GetFundLimits returns available balance and margin utilization.
func (c *Client) GetFundLimits(ctx context.Context) (*models.FundLimit, error) {
	var funds models.FundLimit
	if err := c.get(ctx, "/fundlimit", nil, &funds); err != nil {
		return nil, fmt.Errorf("fetching fund limits: %w", err)
	}
	return &funds, nil
}

// CalculateMargin asks the broker for the margin a prospective order needs.
func (c *Client) CalculateMargin(ctx context.Context, req *models.MarginRequest) (*models.MarginResponse, error) {
	if req.DhanClientID == "" {
		req.DhanClientID = c.clientID
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var resp models.MarginResponse
	if err := c.post(ctx, "/margincalculator", req, &resp); err != nil {
		return nil, fmt.Errorf("calculating margin: %w", err)
	}
	return &resp, nil
}
