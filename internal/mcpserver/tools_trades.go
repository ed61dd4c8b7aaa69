package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/vikkysarswat/dhan-mcp-server/internal/models"
)

func (s *Server) registerTradeTools() {
	s.mcp.AddTool(mcp.NewTool("get_trades",
		mcp.WithDescription("Get all trades executed today"),
	), s.handleGetTrades)

	s.mcp.AddTool(mcp.NewTool("get_trades_by_order_id",
		mcp.WithDescription("Get the trades of a specific order"),
		mcp.WithString("order_id",
			mcp.Required(),
			mcp.Description("Broker order id"),
		),
	), s.handleGetTradesByOrderID)

	s.mcp.AddTool(mcp.NewTool("get_historical_trades",
		mcp.WithDescription("Get trade history for a past date range, paginated"),
		mcp.WithString("from_date",
			mcp.Required(),
			mcp.Description("Start date, YYYY-MM-DD"),
		),
		mcp.WithString("to_date",
			mcp.Required(),
			mcp.Description("End date, YYYY-MM-DD"),
		),
		mcp.WithNumber("page",
			mcp.Description("Page number, starting at 0"),
		),
	), s.handleGetHistoricalTrades)

	s.mcp.AddTool(mcp.NewTool("get_ledger",
		mcp.WithDescription("Get the account credit/debit ledger for a date range"),
		mcp.WithString("from_date",
			mcp.Required(),
			mcp.Description("Start date, YYYY-MM-DD"),
		),
		mcp.WithString("to_date",
			mcp.Required(),
			mcp.Description("End date, YYYY-MM-DD"),
		),
	), s.handleGetLedger)
}

func (s *Server) handleGetTrades(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	trades, err := s.api.GetTrades(ctx)
	if err != nil {
		return s.toolError("get_trades", err)
	}
	return jsonResult(trades)
}

func (s *Server) handleGetTradesByOrderID(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	orderID, err := requireString(req.GetArguments(), "order_id")
	if err != nil {
		return s.toolError("get_trades_by_order_id", err)
	}
	trades, err := s.api.GetTradesByOrderID(ctx, orderID)
	if err != nil {
		return s.toolError("get_trades_by_order_id", err)
	}
	return jsonResult(trades)
}

func bindDateRange(args map[string]any, withPage bool) (*models.DateRangeRequest, error) {
	rng := &models.DateRangeRequest{}

	var err error
	if rng.FromDate, err = requireString(args, "from_date"); err != nil {
		return nil, err
	}
	if rng.ToDate, err = requireString(args, "to_date"); err != nil {
		return nil, err
	}
	if withPage {
		if rng.Page, err = optInt(args, "page", 0); err != nil {
			return nil, err
		}
	}
	return rng, nil
}

func (s *Server) handleGetHistoricalTrades(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rng, err := bindDateRange(req.GetArguments(), true)
	if err != nil {
		return s.toolError("get_historical_trades", err)
	}
	trades, err := s.api.GetHistoricalTrades(ctx, rng)
	if err != nil {
		return s.toolError("get_historical_trades", err)
	}
	return jsonResult(trades)
}

func (s *Server) handleGetLedger(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rng, err := bindDateRange(req.GetArguments(), false)
	if err != nil {
		return s.toolError("get_ledger", err)
	}
	entries, err := s.api.GetLedger(ctx, rng)
	if err != nil {
		return s.toolError("get_ledger", err)
	}
	return jsonResult(entries)
}
