package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/vikkysarswat/dhan-mcp-server/internal/models"
)

func (s *Server) registerMarketTools() {
	instrumentsArg := func() mcp.ToolOption {
		return mcp.WithObject("instruments",
			mcp.Required(),
			mcp.Description(`Exchange segment to security id lists, e.g. {"NSE_EQ": [1333, 11536]}`),
		)
	}

	s.mcp.AddTool(mcp.NewTool("get_market_ltp",
		mcp.WithDescription("Get last traded prices for up to 1000 instruments"),
		instrumentsArg(),
	), s.handleMarketLTP)

	s.mcp.AddTool(mcp.NewTool("get_market_ohlc",
		mcp.WithDescription("Get open/high/low/close snapshots for instruments"),
		instrumentsArg(),
	), s.handleMarketOHLC)

	s.mcp.AddTool(mcp.NewTool("get_market_depth",
		mcp.WithDescription("Get full quotes with five-level market depth for instruments"),
		instrumentsArg(),
	), s.handleMarketDepth)

	s.mcp.AddTool(mcp.NewTool("get_ltp_by_symbol",
		mcp.WithDescription("Get the last traded price of an instrument by trading symbol or company name"),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Trading symbol or company name, e.g. RELIANCE or Tata Consultancy"),
		),
		mcp.WithString("exchange_segment",
			mcp.Description("Segment to search in, defaults to NSE_EQ"),
			mcp.Enum(segmentValues()...),
		),
	), s.handleLTPBySymbol)
}

func (s *Server) bindFeedRequest(args map[string]any) (*models.MarketFeedRequest, error) {
	instruments, err := parseInstrumentsArg(args)
	if err != nil {
		return nil, err
	}
	return &models.MarketFeedRequest{Instruments: instruments}, nil
}

func (s *Server) handleMarketLTP(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	feed, err := s.bindFeedRequest(req.GetArguments())
	if err != nil {
		return s.toolError("get_market_ltp", err)
	}
	resp, err := s.api.MarketLTP(ctx, feed)
	if err != nil {
		return s.toolError("get_market_ltp", err)
	}
	return jsonResult(resp)
}

func (s *Server) handleMarketOHLC(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	feed, err := s.bindFeedRequest(req.GetArguments())
	if err != nil {
		return s.toolError("get_market_ohlc", err)
	}
	resp, err := s.api.MarketOHLC(ctx, feed)
	if err != nil {
		return s.toolError("get_market_ohlc", err)
	}
	return jsonResult(resp)
}

func (s *Server) handleMarketDepth(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	feed, err := s.bindFeedRequest(req.GetArguments())
	if err != nil {
		return s.toolError("get_market_depth", err)
	}
	resp, err := s.api.MarketDepth(ctx, feed)
	if err != nil {
		return s.toolError("get_market_depth", err)
	}
	return jsonResult(resp)
}

// symbolQuote is the shaped get_ltp_by_symbol result.
type symbolQuote struct {
	Symbol          string  `json:"symbol"`
	SecurityID      string  `json:"securityId"`
	ExchangeSegment string  `json:"exchangeSegment"`
	LastPrice       float64 `json:"lastPrice"`
}

func (s *Server) handleLTPBySymbol(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	symbol, err := requireString(args, "symbol")
	if err != nil {
		return s.toolError("get_ltp_by_symbol", err)
	}
	segmentStr, err := optString(args, "exchange_segment", string(models.SegmentNSEEquity))
	if err != nil {
		return s.toolError("get_ltp_by_symbol", err)
	}
	segment := models.ExchangeSegment(segmentStr)
	if !segment.Valid() {
		return s.toolError("get_ltp_by_symbol", &models.ValidationError{
			Field: "exchange_segment", Message: "invalid exchange segment " + segmentStr,
		})
	}

	securityID, err := s.instruments.Resolve(ctx, symbol, segment)
	if err != nil {
		return s.toolError("get_ltp_by_symbol", err)
	}
	numericID, err := parseNumericID(securityID)
	if err != nil {
		return s.toolError("get_ltp_by_symbol", err)
	}

	resp, err := s.api.MarketLTP(ctx, &models.MarketFeedRequest{
		Instruments: map[models.ExchangeSegment][]int{segment: {numericID}},
	})
	if err != nil {
		return s.toolError("get_ltp_by_symbol", err)
	}

	quote, ok := resp.Data[string(segment)][securityID]
	if !ok {
		return s.toolError("get_ltp_by_symbol", &models.ValidationError{
			Field: "symbol", Message: "no quote returned for " + symbol,
		})
	}
	return jsonResult(symbolQuote{
		Symbol:          symbol,
		SecurityID:      securityID,
		ExchangeSegment: string(segment),
		LastPrice:       quote.LastPrice,
	})
}
