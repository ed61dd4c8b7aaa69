package dhan

import (
	"context"
	"fmt"

	"github.com/vikkysarswat/dhan-mcp-server/internal/models"
	"github.com/vikkysarswat/dhan-mcp-server/pkg/utils"
)

// GetLedger returns the account credit/debit ledger for a date range.
func (c *Client) GetLedger(ctx context.Context, rng *models.DateRangeRequest) ([]models.LedgerEntry, error) {
	if err := rng.Validate(); err != nil {
		return nil, err
	}
	params, err := utils.DateRangeParams{FromDate: rng.FromDate, ToDate: rng.ToDate}.Values()
	if err != nil {
		return nil, fmt.Errorf("encoding ledger params: %w", err)
	}
	var entries []models.LedgerEntry
	if err := c.get(ctx, "/ledger", params, &entries); err != nil {
		return nil, fmt.Errorf("fetching ledger: %w", err)
	}
	return entries, nil
}
