package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/vikkysarswat/dhan-mcp-server/internal/models"
)

func (s *Server) registerChartTools() {
	s.mcp.AddTool(mcp.NewTool("get_historical_data",
		mcp.WithDescription("Get daily OHLC candles for an instrument over a date range"),
		mcp.WithString("security_id",
			mcp.Required(),
			mcp.Description("Numeric security id of the instrument"),
		),
		mcp.WithString("exchange_segment",
			mcp.Required(),
			mcp.Enum(segmentValues()...),
		),
		mcp.WithString("instrument",
			mcp.Description("EQUITY or DERIVATIVES, defaults to EQUITY"),
			mcp.Enum("EQUITY", "DERIVATIVES"),
		),
		mcp.WithString("from_date",
			mcp.Required(),
			mcp.Description("Start date, YYYY-MM-DD"),
		),
		mcp.WithString("to_date",
			mcp.Required(),
			mcp.Description("End date, YYYY-MM-DD"),
		),
		mcp.WithNumber("expiry_code",
			mcp.Description("Expiry code for derivatives"),
		),
		mcp.WithBoolean("oi",
			mcp.Description("Include open interest"),
		),
	), s.handleHistoricalData)

	s.mcp.AddTool(mcp.NewTool("get_intraday_data",
		mcp.WithDescription("Get minute-level OHLC candles for an instrument"),
		mcp.WithString("security_id",
			mcp.Required(),
			mcp.Description("Numeric security id of the instrument"),
		),
		mcp.WithString("exchange_segment",
			mcp.Required(),
			mcp.Enum(segmentValues()...),
		),
		mcp.WithString("instrument",
			mcp.Description("EQUITY or DERIVATIVES, defaults to EQUITY"),
			mcp.Enum("EQUITY", "DERIVATIVES"),
		),
		mcp.WithString("interval",
			mcp.Description("Candle interval in minutes, defaults to 1"),
			mcp.Enum(intervalValues()...),
		),
		mcp.WithString("from_date",
			mcp.Required(),
			mcp.Description("Start timestamp, YYYY-MM-DD HH:MM:SS"),
		),
		mcp.WithString("to_date",
			mcp.Required(),
			mcp.Description("End timestamp, YYYY-MM-DD HH:MM:SS"),
		),
		mcp.WithBoolean("oi",
			mcp.Description("Include open interest"),
		),
	), s.handleIntradayData)
}

func (s *Server) handleHistoricalData(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	hist := &models.HistoricalDataRequest{}

	var err error
	if hist.SecurityID, err = requireString(args, "security_id"); err != nil {
		return s.toolError("get_historical_data", err)
	}
	segment, err := requireString(args, "exchange_segment")
	if err != nil {
		return s.toolError("get_historical_data", err)
	}
	hist.ExchangeSegment = models.ExchangeSegment(segment)

	instrument, err := optString(args, "instrument", string(models.KindEquity))
	if err != nil {
		return s.toolError("get_historical_data", err)
	}
	hist.Instrument = models.InstrumentKind(instrument)

	if hist.FromDate, err = requireString(args, "from_date"); err != nil {
		return s.toolError("get_historical_data", err)
	}
	if hist.ToDate, err = requireString(args, "to_date"); err != nil {
		return s.toolError("get_historical_data", err)
	}
	if hist.ExpiryCode, err = optInt(args, "expiry_code", 0); err != nil {
		return s.toolError("get_historical_data", err)
	}
	if hist.OI, err = optBool(args, "oi", false); err != nil {
		return s.toolError("get_historical_data", err)
	}

	resp, err := s.api.HistoricalCharts(ctx, hist)
	if err != nil {
		return s.toolError("get_historical_data", err)
	}
	return jsonResult(resp)
}

func (s *Server) handleIntradayData(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	intra := &models.IntradayDataRequest{}

	var err error
	if intra.SecurityID, err = requireString(args, "security_id"); err != nil {
		return s.toolError("get_intraday_data", err)
	}
	segment, err := requireString(args, "exchange_segment")
	if err != nil {
		return s.toolError("get_intraday_data", err)
	}
	intra.ExchangeSegment = models.ExchangeSegment(segment)

	instrument, err := optString(args, "instrument", string(models.KindEquity))
	if err != nil {
		return s.toolError("get_intraday_data", err)
	}
	intra.Instrument = models.InstrumentKind(instrument)

	interval, err := optString(args, "interval", string(models.Interval1))
	if err != nil {
		return s.toolError("get_intraday_data", err)
	}
	intra.Interval = models.Interval(interval)

	if intra.FromDate, err = requireString(args, "from_date"); err != nil {
		return s.toolError("get_intraday_data", err)
	}
	if intra.ToDate, err = requireString(args, "to_date"); err != nil {
		return s.toolError("get_intraday_data", err)
	}
	if intra.OI, err = optBool(args, "oi", false); err != nil {
		return s.toolError("get_intraday_data", err)
	}

	resp, err := s.api.IntradayCharts(ctx, intra)
	if err != nil {
		return s.toolError("get_intraday_data", err)
	}
	return jsonResult(resp)
}
