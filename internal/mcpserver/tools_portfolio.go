package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/vikkysarswat/dhan-mcp-server/internal/models"
)

func (s *Server) registerPortfolioTools() {
	s.mcp.AddTool(mcp.NewTool("get_positions",
		mcp.WithDescription("Get all open trading positions"),
	), s.handleGetPositions)

	s.mcp.AddTool(mcp.NewTool("get_holdings",
		mcp.WithDescription("Get long-term demat holdings"),
	), s.handleGetHoldings)

	s.mcp.AddTool(mcp.NewTool("calculate_margin",
		mcp.WithDescription("Calculate the margin required for a prospective order"),
		mcp.WithString("exchange_segment",
			mcp.Required(),
			mcp.Enum(segmentValues()...),
		),
		mcp.WithString("transaction_type",
			mcp.Required(),
			mcp.Enum("BUY", "SELL"),
		),
		mcp.WithString("product_type",
			mcp.Required(),
			mcp.Enum(productValues()...),
		),
		mcp.WithString("security_id",
			mcp.Required(),
			mcp.Description("Numeric security id of the instrument"),
		),
		mcp.WithNumber("quantity",
			mcp.Required(),
		),
		mcp.WithNumber("price",
			mcp.Required(),
			mcp.Description("Order price used for the calculation"),
		),
		mcp.WithNumber("trigger_price",
			mcp.Description("Trigger price for stop loss orders"),
		),
	), s.handleCalculateMargin)
}

func (s *Server) handleGetPositions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	positions, err := s.api.GetPositions(ctx)
	if err != nil {
		return s.toolError("get_positions", err)
	}
	return jsonResult(positions)
}

func (s *Server) handleGetHoldings(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	holdings, err := s.api.GetHoldings(ctx)
	if err != nil {
		return s.toolError("get_holdings", err)
	}
	return jsonResult(holdings)
}

func (s *Server) handleCalculateMargin(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	margin := &models.MarginRequest{}

	segment, err := requireString(args, "exchange_segment")
	if err != nil {
		return s.toolError("calculate_margin", err)
	}
	margin.ExchangeSegment = models.ExchangeSegment(segment)

	txn, err := requireString(args, "transaction_type")
	if err != nil {
		return s.toolError("calculate_margin", err)
	}
	margin.TransactionType = models.TransactionType(txn)

	product, err := requireString(args, "product_type")
	if err != nil {
		return s.toolError("calculate_margin", err)
	}
	margin.ProductType = models.ProductType(product)

	if margin.SecurityID, err = requireString(args, "security_id"); err != nil {
		return s.toolError("calculate_margin", err)
	}
	if margin.Quantity, err = requireInt(args, "quantity"); err != nil {
		return s.toolError("calculate_margin", err)
	}
	if margin.Price, err = requireFloat(args, "price"); err != nil {
		return s.toolError("calculate_margin", err)
	}
	if margin.TriggerPrice, err = optFloat(args, "trigger_price", 0); err != nil {
		return s.toolError("calculate_margin", err)
	}

	resp, err := s.api.CalculateMargin(ctx, margin)
	if err != nil {
		return s.toolError("calculate_margin", err)
	}
	return jsonResult(resp)
}
